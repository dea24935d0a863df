package token_test

import (
	"testing"

	"flint/internal/source"
	"flint/internal/token"
)

func TestValueAndRawLiteralResolveThroughArena(t *testing.T) {
	m := source.NewManager()
	//                0123456789
	id := m.AddBufferString(`"hello"`, "s.fl")

	tok := token.Token{
		Kind:     token.LitString,
		Buffer:   id,
		ValueOff: 1,
		ValueLen: 5,
		RawOff:   0,
		RawLen:   7,
		Loc:      source.Location{Buffer: id, Line: 1, Column: 1, Offset: 0},
	}

	if got := tok.Value(m); got != "hello" {
		t.Errorf("Value = %q, want %q", got, "hello")
	}
	if got := tok.RawLiteral(m); got != `"hello"` {
		t.Errorf("RawLiteral = %q, want %q", got, `"hello"`)
	}
	if got := tok.End(); got != 7 {
		t.Errorf("End = %d, want 7", got)
	}
}

func TestNewCoincidentWindows(t *testing.T) {
	m := source.NewManager()
	id := m.AddBufferString("let", "k.fl")

	tok := token.New(token.KwLet, id, 0, 3, source.Location{Buffer: id, Line: 1, Column: 1})
	if tok.Value(m) != tok.RawLiteral(m) {
		t.Error("value and raw literal must coincide for non-string kinds")
	}
	if tok.Value(m) != "let" {
		t.Errorf("Value = %q", tok.Value(m))
	}
}

func TestEOFAndUnknownMakers(t *testing.T) {
	m := source.NewManager()
	id := m.AddBufferString("x", "e.fl")
	loc := source.Location{Buffer: id, Line: 1, Column: 2, Offset: 1}

	eof := token.NewEOF(id, loc)
	if eof.Kind != token.EOF || eof.RawLen != 0 || eof.RawOff != 1 {
		t.Errorf("unexpected EOF token: %+v", eof)
	}
	if !eof.IsEOF() {
		t.Error("IsEOF must be true")
	}

	unk := token.NewUnknown(id, source.Location{Buffer: id, Offset: 0, Line: 1, Column: 1})
	if unk.Kind != token.Unknown || unk.RawLen != 1 {
		t.Errorf("unexpected Unknown token: %+v", unk)
	}
}

func TestEscapeFlags(t *testing.T) {
	var f token.EscapeFlags
	if f.Has(token.EscapeNamed) {
		t.Error("zero flags must have nothing set")
	}
	f |= token.EscapeNamed | token.EscapeUnicode
	if !f.Has(token.EscapeNamed) || !f.Has(token.EscapeUnicode) {
		t.Error("expected named and unicode flags")
	}
	if f.Has(token.EscapeHex) || f.Has(token.EscapeLiteralCtrl) {
		t.Error("hex and literal-ctrl flags must be clear")
	}
}

func TestExpansionChainIsEmptyToday(t *testing.T) {
	m := source.NewManager()
	id := m.AddBufferString("x", "m.fl")

	tok := token.New(token.Ident, id, 0, 1, source.Location{Buffer: id, Line: 1, Column: 1})
	if chain := tok.ExpansionChain(m); len(chain) != 0 {
		t.Errorf("expansion chain = %v, want empty", chain)
	}
}

func TestKindPredicates(t *testing.T) {
	pred := func(k token.Kind) token.Token { return token.Token{Kind: k} }

	for _, k := range []token.Kind{token.KwLet, token.KwAs, token.KwMatch} {
		if !pred(k).IsKeyword() {
			t.Errorf("%v must be a keyword", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.LitTrue, token.OpPlus} {
		if pred(k).IsKeyword() {
			t.Errorf("%v must not be a keyword", k)
		}
	}

	for _, k := range []token.Kind{token.LitInt, token.LitTexString, token.LitNull} {
		if !pred(k).IsLiteral() {
			t.Errorf("%v must be a literal", k)
		}
	}

	for _, k := range []token.Kind{token.OpPlus, token.OpDotDotEq, token.OpBackslash} {
		if !pred(k).IsOperator() {
			t.Errorf("%v must be an operator", k)
		}
	}
	for _, k := range []token.Kind{token.DelimLParen, token.DelimUnderscore} {
		if !pred(k).IsDelimiter() {
			t.Errorf("%v must be a delimiter", k)
		}
	}
	for _, k := range []token.Kind{token.CommentLine, token.CommentBlock, token.CommentDoc} {
		if !pred(k).IsComment() {
			t.Errorf("%v must be a comment", k)
		}
	}
}

func TestKindWireNames(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.Ident, "IDENTIFIER"},
		{token.KwLet, "KW_LET"},
		{token.LitInt, "LIT_INT"},
		{token.LitRawString, "LIT_RAW_STRING"},
		{token.OpAssign, "OP_ASSIGN"},
		{token.OpDotDotEq, "OP_DOT_DOT_EQ"},
		{token.OpShl, "OP_BIT_SHL"},
		{token.DelimSemicolon, "DELIM_SEMICOLON"},
		{token.EOF, "TOKEN_EOF"},
		{token.Unknown, "TOKEN_UNKNOWN"},
		{token.Kind(255), "TOKEN_UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
