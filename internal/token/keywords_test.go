package token_test

import (
	"testing"

	"flint/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  token.Kind
		ok    bool
	}{
		{"let", token.KwLet, true},
		{"var", token.KwVar, true},
		{"fn", token.KwFn, true},
		{"struct", token.KwStruct, true},
		{"enum", token.KwEnum, true},
		{"type", token.KwType, true},
		{"impl", token.KwImpl, true},
		{"trait", token.KwTrait, true},
		{"return", token.KwReturn, true},
		{"if", token.KwIf, true},
		{"else", token.KwElse, true},
		{"while", token.KwWhile, true},
		{"for", token.KwFor, true},
		{"in", token.KwIn, true},
		{"break", token.KwBreak, true},
		{"continue", token.KwContinue, true},
		{"match", token.KwMatch, true},
		{"import", token.KwImport, true},
		{"as", token.KwAs, true},
		{"true", token.LitTrue, true},
		{"false", token.LitFalse, true},
		{"null", token.LitNull, true},
		// регистр имеет значение
		{"Let", 0, false},
		{"LET", 0, false},
		{"letx", 0, false},
		{"", 0, false},
		{"identifier", 0, false},
	}
	for _, tt := range tests {
		got, ok := token.LookupKeyword(tt.ident)
		if ok != tt.ok {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}
