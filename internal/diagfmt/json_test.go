package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"flint/internal/diag"
)

// TestJSONEmitterDocument проверяет полный документ: диагностики,
// разрешённые позиции и итоговая статистика.
func TestJSONEmitterDocument(t *testing.T) {
	locator := stubLocator{
		1: {name: "main.fl", content: "let s = \"oops\nlet t = 2\n"},
	}

	var buf bytes.Buffer
	emitter := NewJSONEmitter(&buf, false)

	d := diag.NewError(diag.NewErrorCode(diag.CatLexer, 1012), "unterminated string literal").
		SpanLabel(diag.NewSpan(1, 8, 13), "string starts here").
		Note("string started on line 1").
		Suggest(diag.NewSpan(1, 13, 13), "\"", "close the string", diag.MaybeIncorrect).
		Build()
	emitter.Emit(&d, locator)

	spanless := diag.NewNote("7 timings recorded").Build()
	emitter.Emit(&spanless, locator)

	emitter.EmitSummary(diag.Stats{
		Errors:      1,
		Warnings:    0,
		Notes:       1,
		UniqueCodes: []diag.ErrorCode{diag.NewErrorCode(diag.CatLexer, 1012)},
	})
	if err := emitter.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	var doc DiagnosticsDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput: %s", err, buf.String())
	}

	if len(doc.Diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(doc.Diagnostics))
	}

	first := doc.Diagnostics[0]
	if first.Level != "error" {
		t.Errorf("level = %q, want error", first.Level)
	}
	if first.Code != "L1012" {
		t.Errorf("code = %q, want L1012", first.Code)
	}
	if first.Message != "unterminated string literal" {
		t.Errorf("message = %q", first.Message)
	}
	if len(first.Spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(first.Spans))
	}
	span := first.Spans[0]
	if span.FileID != 1 || span.Start != 8 || span.End != 13 {
		t.Errorf("span offsets = %d/%d/%d", span.FileID, span.Start, span.End)
	}
	if span.File != "main.fl" || span.Line != 1 || span.Column != 9 {
		t.Errorf("resolved position = %s:%d:%d, want main.fl:1:9", span.File, span.Line, span.Column)
	}
	if len(first.Children) != 1 || first.Children[0].Level != "note" {
		t.Errorf("children = %+v", first.Children)
	}
	if len(first.Suggestions) != 1 || first.Suggestions[0].Replacement != "\"" {
		t.Errorf("suggestions = %+v", first.Suggestions)
	}

	second := doc.Diagnostics[1]
	if second.Level != "note" || second.Code != "" {
		t.Errorf("spanless note = %+v", second)
	}

	if doc.Stats.ErrorCount != 1 || doc.Stats.NoteCount != 1 {
		t.Errorf("stats = %+v", doc.Stats)
	}
	if len(doc.Stats.UniqueErrorCodes) != 1 || doc.Stats.UniqueErrorCodes[0] != "L1012" {
		t.Errorf("unique codes = %v", doc.Stats.UniqueErrorCodes)
	}

	// Пустые наборы сериализуются как [], не null.
	if strings.Contains(buf.String(), "null") {
		t.Errorf("document must not contain null arrays: %s", buf.String())
	}
}

// TestJSONEmitterEmptyDocument проверяет, что без диагностик и без
// EmitSummary всё равно выходит валидный документ.
func TestJSONEmitterEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewJSONEmitter(&buf, false)
	if err := emitter.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got := strings.TrimSpace(buf.String())
	want := `{"diagnostics":[],"stats":{"error_count":0,"warning_count":0,"note_count":0,"unique_error_codes":[]}}`
	if got != want {
		t.Errorf("empty document = %s, want %s", got, want)
	}
}

// TestJSONEmitterFlushOnce проверяет, что повторный Flush не дублирует
// документ.
func TestJSONEmitterFlushOnce(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewJSONEmitter(&buf, false)
	if err := emitter.Flush(); err != nil {
		t.Fatalf("first Flush: %v", err)
	}
	size := buf.Len()
	if err := emitter.Flush(); err != nil {
		t.Fatalf("second Flush: %v", err)
	}
	if buf.Len() != size {
		t.Errorf("second Flush wrote %d extra bytes", buf.Len()-size)
	}
}

// TestBuildDiagnosticJSONWithoutLocator проверяет, что без локатора
// позиции опускаются, а байтовые смещения остаются.
func TestBuildDiagnosticJSONWithoutLocator(t *testing.T) {
	d := diag.NewError(diag.NewErrorCode(diag.CatLexer, 1021), "invalid character").
		Span(diag.NewSpan(2, 4, 5)).
		Build()

	out := BuildDiagnosticJSON(&d, nil)
	if len(out.Spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(out.Spans))
	}
	span := out.Spans[0]
	if span.FileID != 2 || span.Start != 4 || span.End != 5 {
		t.Errorf("offsets = %d/%d/%d", span.FileID, span.Start, span.End)
	}
	if span.File != "" || span.Line != 0 || span.Column != 0 {
		t.Errorf("resolved fields should stay empty without a locator: %+v", span)
	}

	raw, err := json.Marshal(span)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(raw), `"file"`) || strings.Contains(string(raw), `"line"`) {
		t.Errorf("unresolved position fields must be omitted: %s", raw)
	}
}

// TestJSONEmitterPrettyIndents проверяет режим с отступами.
func TestJSONEmitterPrettyIndents(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewJSONEmitter(&buf, true)
	d := diag.NewError(diag.NewErrorCode(diag.CatLexer, 1021), "invalid character").Build()
	emitter.Emit(&d, nil)
	if err := emitter.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"diagnostics\"") {
		t.Errorf("pretty output should be indented: %s", buf.String())
	}
}
