package lexer_test

import (
	"testing"

	"flint/internal/diag"
	"flint/internal/lexer"
	"flint/internal/source"
)

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code lexer.ErrorCode
		want string
	}{
		{lexer.MissingHexDigits, "L1001"},
		{lexer.UnterminatedString, "L1012"},
		{lexer.InvalidCharacter, "L1021"},
		{lexer.UnterminatedBlockComment, "L1031"},
		{lexer.TokenTooLong, "L1041"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestErrorCodesRegistered(t *testing.T) {
	codes := []lexer.ErrorCode{
		lexer.MissingHexDigits, lexer.MissingBinaryDigits,
		lexer.MissingOctalDigits, lexer.MissingExponentDigits,
		lexer.InvalidTrailingChar, lexer.InvalidNumberSuffix,
		lexer.InvalidEscapeSequence, lexer.UnterminatedString,
		lexer.InvalidHexEscape, lexer.InvalidUnicodeEscape,
		lexer.UnterminatedRawString, lexer.InvalidCharacter,
		lexer.InvalidUtf8Sequence, lexer.UnterminatedBlockComment,
		lexer.TokenTooLong,
	}
	for _, code := range codes {
		entry, ok := diag.LookupError(code.Diag())
		if !ok {
			t.Errorf("%s is not in the global registry", code)
			continue
		}
		if entry.Brief == "" {
			t.Errorf("%s has no brief", code)
		}
	}
}

func TestErrorFormat(t *testing.T) {
	m := source.NewManager()
	id := m.AddBufferString("?", "main.fl")

	err := lexer.Error{
		Code:    lexer.InvalidCharacter,
		Loc:     source.Location{Buffer: id, Line: 3, Column: 7},
		Length:  1,
		Message: `invalid character '?'`,
	}
	want := `main.fl:3:7: L1021: invalid character '?'`
	if got := err.Format(m); got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}

	err.Loc.Buffer = 99
	if got := err.Format(m); got != `<unknown>:3:7: L1021: invalid character '?'` {
		t.Errorf("Format with unknown buffer = %q", got)
	}
}

func TestCollectorAccumulatesInOrder(t *testing.T) {
	var c lexer.Collector
	if c.HasErrors() || c.Count() != 0 {
		t.Fatal("new collector must be empty")
	}

	c.Add(lexer.Error{Code: lexer.MissingHexDigits})
	c.Add(lexer.Error{Code: lexer.InvalidCharacter})

	if !c.HasErrors() || c.Count() != 2 {
		t.Fatalf("Count = %d, want 2", c.Count())
	}
	errs := c.Errors()
	if errs[0].Code != lexer.MissingHexDigits || errs[1].Code != lexer.InvalidCharacter {
		t.Fatalf("errors out of order: %+v", errs)
	}

	c.Clear()
	if c.HasErrors() || c.Count() != 0 {
		t.Fatal("Clear must drop everything")
	}
}
