package token

import "flint/internal/source"

// TriviaKind classifies non-semantic source material.
type TriviaKind uint8

const (
	// TriviaWhitespace is a run of spaces and tabs.
	TriviaWhitespace TriviaKind = iota
	// TriviaNewline is a single line break ("\n", "\r\n", lone "\r").
	TriviaNewline
	// TriviaComment is any comment, line or block.
	TriviaComment
)

// String returns a short name for the trivia kind.
func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "whitespace"
	case TriviaNewline:
		return "newline"
	case TriviaComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Trivia is one piece of non-semantic source material attached to a
// token in trivia-preserving mode. Same ownership rule as tokens:
// только офсеты, текст живёт в арене.
type Trivia struct {
	Kind   TriviaKind
	Buffer source.BufferID
	Offset uint32
	Length uint16
}

// Text resolves the trivia content through the arena.
func (tr Trivia) Text(m *source.Manager) string {
	return m.Slice(tr.Buffer, tr.Offset, uint32(tr.Length))
}
