package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"flint/internal/source"
	"flint/internal/token"
)

// TokenJSON представляет токен в JSON формате
type TokenJSON struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
	Offset uint32 `json:"offset"`
	Length uint16 `json:"length"`
}

// TokenListJSON представляет корневую структуру дампа токенов
type TokenListJSON struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Tokens  []TokenJSON `json:"tokens"`
}

// FormatTokensText выводит токены в человекочитаемом формате:
//
//	=== Lexical Analysis Result ===
//	Total tokens: 4
//
//	[1:1] KwLet "let"
//	[1:5] Ident "x"
//	  (leading trivia: whitespace)
func FormatTokensText(w io.Writer, tokens []token.Token, m *source.Manager) error {
	fmt.Fprintf(w, "=== Lexical Analysis Result ===\n")
	fmt.Fprintf(w, "Total tokens: %d\n\n", len(tokens))

	for _, tok := range tokens {
		fmt.Fprintf(w, "[%d:%d] %s", tok.Loc.Line, tok.Loc.Column, tok.Kind)

		if value := tok.Value(m); value != "" && tok.Kind != token.EOF {
			fmt.Fprintf(w, " \"%s\"", escapeTokenText(value))
		}
		fmt.Fprintln(w)

		for _, tr := range tok.Leading {
			fmt.Fprintf(w, "  (leading trivia: %s)\n", tr.Kind)
		}
		for _, tr := range tok.Trailing {
			fmt.Fprintf(w, "  (trailing trivia: %s)\n", tr.Kind)
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, m *source.Manager, pretty bool) error {
	output := TokenListJSON{
		Success: true,
		Count:   len(tokens),
		Tokens:  make([]TokenJSON, 0, len(tokens)),
	}

	for _, tok := range tokens {
		output.Tokens = append(output.Tokens, TokenJSON{
			Type:   tok.Kind.String(),
			Value:  tok.Value(m),
			Line:   tok.Loc.Line,
			Column: tok.Loc.Column,
			Offset: tok.Loc.Offset,
			Length: tok.RawLen,
		})
	}

	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(output)
}

// escapeTokenText делает управляющие символы и кавычки видимыми в
// текстовом дампе.
func escapeTokenText(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 || r == '\\' || r == '"' }) {
		return s
	}
	var out strings.Builder
	out.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		case '\\':
			out.WriteString(`\\`)
		case '"':
			out.WriteString(`\"`)
		default:
			if c < 0x20 {
				fmt.Fprintf(&out, `\x%02x`, c)
			} else {
				out.WriteByte(c)
			}
		}
	}
	return out.String()
}
