package token

import (
	"flint/internal/source"
)

// EscapeFlags records which escape-sequence categories a string literal
// contained, so consumers never re-parse the text to find out.
type EscapeFlags uint8

const (
	// EscapeNamed marks named single-character escapes (\n, \t, \\, \", \', \0).
	EscapeNamed EscapeFlags = 1 << iota
	// EscapeHex marks hex byte escapes (\xHH).
	EscapeHex
	// EscapeUnicode marks Unicode escapes (\u{...}).
	EscapeUnicode
	// EscapeLiteralCtrl marks literal control bytes embedded in the
	// content (raw CR/LF/TAB inside raw and templated strings).
	EscapeLiteralCtrl
)

// Has reports whether every bit of flag is set.
func (f EscapeFlags) Has(flag EscapeFlags) bool { return f&flag == flag }

// Token is one classified lexeme. A Token never owns text: Value and
// RawLiteral resolve through the arena, which keeps tokens cheap to
// copy and valid for exactly as long as the arena lives.
//
// Value and raw windows differ only for string-like kinds, where the
// value excludes delimiters (quotes, raw-string hash fences) and the
// raw literal covers the token as written. Everywhere else они совпадают.
type Token struct {
	Kind      Kind
	Buffer    source.BufferID
	ValueOff  uint32
	ValueLen  uint16
	RawOff    uint32
	RawLen    uint16
	Loc       source.Location
	Escapes   EscapeFlags
	Expansion source.ExpansionID // 0 — написан руками, не макросом
	Leading   []Trivia
	Trailing  []Trivia
}

// New builds a token whose value and raw text coincide.
func New(kind Kind, buf source.BufferID, offset uint32, length uint16, loc source.Location) Token {
	return Token{
		Kind:     kind,
		Buffer:   buf,
		ValueOff: offset,
		ValueLen: length,
		RawOff:   offset,
		RawLen:   length,
		Loc:      loc,
	}
}

// NewEOF builds the zero-length end-of-input token.
func NewEOF(buf source.BufferID, loc source.Location) Token {
	return New(EOF, buf, loc.Offset, 0, loc)
}

// NewUnknown builds the one-byte token for an unrecognized character.
func NewUnknown(buf source.BufferID, loc source.Location) Token {
	return New(Unknown, buf, loc.Offset, 1, loc)
}

// Value returns the semantic text of the token (string payload without
// quotes, everything else as written).
func (t Token) Value(m *source.Manager) string {
	return m.Slice(t.Buffer, t.ValueOff, uint32(t.ValueLen))
}

// RawLiteral returns the literal source text, delimiters included.
func (t Token) RawLiteral(m *source.Manager) string {
	return m.Slice(t.Buffer, t.RawOff, uint32(t.RawLen))
}

// End returns the byte offset just past the raw literal.
func (t Token) End() uint32 { return t.RawOff + uint32(t.RawLen) }

// ExpansionChain returns the macro expansion trail of the token,
// innermost first. The expander does not exist yet, so the chain is
// always empty; the query is total so callers can rely on it today.
func (t Token) ExpansionChain(m *source.Manager) []source.ExpansionInfo {
	if !t.Expansion.Valid() {
		return nil
	}
	var chain []source.ExpansionInfo
	for id := t.Expansion; id.Valid(); {
		info, ok := m.Expansion(id)
		if !ok {
			break
		}
		chain = append(chain, info)
		id = info.Parent
	}
	return chain
}

// IsEOF reports whether the token marks the end of input.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwLet && t.Kind <= KwAs
}

// IsLiteral reports whether the token is a numeric, string, boolean, or
// null literal.
func (t Token) IsLiteral() bool {
	return t.Kind >= LitInt && t.Kind <= LitNull
}

// IsComment reports whether the token is any comment kind.
func (t Token) IsComment() bool {
	return t.Kind == CommentLine || t.Kind == CommentBlock || t.Kind == CommentDoc
}

// IsOperator reports whether the token is an operator (reserved
// characters included).
func (t Token) IsOperator() bool {
	return t.Kind >= OpPlus && t.Kind <= OpBackslash
}

// IsDelimiter reports whether the token is a delimiter.
func (t Token) IsDelimiter() bool {
	return t.Kind >= DelimLParen && t.Kind <= DelimUnderscore
}
