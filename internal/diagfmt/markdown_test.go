package diagfmt

import (
	"strings"
	"testing"
)

// TestRenderMarkdownPlain проверяет текстовый режим: маркеры жирного и
// курсива отбрасываются, backticks вокруг кода остаются.
func TestRenderMarkdownPlain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "unexpected token", "unexpected token"},
		{"inline code keeps backticks", "expected `;` after statement", "expected `;` after statement"},
		{"strong drops markers", "this is **important** here", "this is important here"},
		{"emphasis drops markers", "read *carefully* now", "read carefully now"},
		{"link keeps text only", "see [the guide](https://example.invalid/x) for details", "see the guide for details"},
		{"unterminated backtick literal", "a ` b", "a ` b"},
		{"unterminated strong literal", "2 ** 3", "2 ** 3"},
		{"multiline preserved", "line one\nline two", "line one\nline two"},
		{"trailing newlines stripped", "message\n\n", "message"},
		{"nested code in strong", "**use `let` here**", "use `let` here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderMarkdown(tt.in, PlainStyle())
			if got != tt.want {
				t.Errorf("renderMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestRenderMarkdownStyled проверяет ANSI-режим.
func TestRenderMarkdownStyled(t *testing.T) {
	style := DefaultStyle()

	got := renderMarkdown("expected `;` after **this**", style)
	if !strings.Contains(got, "\x1b[36m;\x1b[0m") {
		t.Errorf("inline code not cyan: %q", got)
	}
	if strings.Contains(got, "`") {
		t.Errorf("backticks should be consumed in styled mode: %q", got)
	}
	if !strings.Contains(got, "\x1b[1mthis\x1b[0m") {
		t.Errorf("strong not bold: %q", got)
	}

	got = renderMarkdown("read *this* and [docs](https://example.invalid)", style)
	if !strings.Contains(got, "\x1b[3mthis\x1b[0m") {
		t.Errorf("emphasis not italic: %q", got)
	}
	if !strings.Contains(got, "\x1b[34;4mdocs\x1b[0m") {
		t.Errorf("link not blue underline: %q", got)
	}
	if strings.Contains(got, "example.invalid") {
		t.Errorf("link URL should be dropped: %q", got)
	}
}

// TestRenderMarkdownFencedBlock проверяет блоки кода.
func TestRenderMarkdownFencedBlock(t *testing.T) {
	in := "erroneous code example:\n```flint\nlet s = \"oops;\n```\nclose the string"

	got := renderMarkdown(in, PlainStyle())
	want := "erroneous code example:\n    let s = \"oops;\nclose the string"
	if got != want {
		t.Errorf("plain fenced block:\n got %q\nwant %q", got, want)
	}

	// Метка языка не должна просочиться в вывод.
	if strings.Contains(got, "flint") {
		t.Errorf("fence info string leaked: %q", got)
	}

	styled := renderMarkdown(in, DefaultStyle())
	if !strings.Contains(styled, "\x1b[36m    let s = \"oops;\n\x1b[0m") {
		t.Errorf("styled block not cyan-indented: %q", styled)
	}
}

// TestRenderMarkdownUnclosedFence проверяет блок без закрывающего забора.
func TestRenderMarkdownUnclosedFence(t *testing.T) {
	got := renderMarkdown("try:\n```\nlet x = 1;", PlainStyle())
	want := "try:\n    let x = 1;"
	if got != want {
		t.Errorf("unclosed fence: got %q, want %q", got, want)
	}
}
