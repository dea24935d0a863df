package lexer

import (
	"fmt"

	"flint/internal/diag"
	"flint/internal/source"
)

// ErrorCode classifies one kind of malformed input the scanners can hit.
// The numeric values are stable and grouped by concern: 1001-1010 numbers,
// 1011-1020 strings, 1021-1030 characters and encoding, 1031-1040 comments,
// 1041+ generic limits.
type ErrorCode uint16

const (
	// MissingHexDigits: `0x` with no digits after the prefix.
	MissingHexDigits ErrorCode = 1001
	// MissingBinaryDigits: `0b` with no digits after the prefix.
	MissingBinaryDigits ErrorCode = 1002
	// MissingOctalDigits: `0o` with no digits after the prefix.
	MissingOctalDigits ErrorCode = 1003
	// MissingExponentDigits: exponent marker without mandatory digits.
	MissingExponentDigits ErrorCode = 1004
	// InvalidTrailingChar: number literal glued to a character that can
	// neither extend it nor start a suffix. Reserved; the scanner currently
	// lets the next token claim the character instead.
	InvalidTrailingChar ErrorCode = 1005
	// InvalidNumberSuffix: malformed type suffix. Reserved, same note.
	InvalidNumberSuffix ErrorCode = 1006

	// InvalidEscapeSequence: unknown escape in a normal string. Reserved;
	// unknown escapes are consumed silently today.
	InvalidEscapeSequence ErrorCode = 1011
	// UnterminatedString: closing quote missing before newline or EOF.
	UnterminatedString ErrorCode = 1012
	// InvalidHexEscape: `\x` not followed by hex digits. Reserved.
	InvalidHexEscape ErrorCode = 1013
	// InvalidUnicodeEscape: malformed `\u{...}` escape. Reserved.
	InvalidUnicodeEscape ErrorCode = 1014
	// UnterminatedRawString: raw string fence never matched before EOF.
	UnterminatedRawString ErrorCode = 1015

	// InvalidCharacter: a byte no scanner can start a token from.
	InvalidCharacter ErrorCode = 1021
	// InvalidUtf8Sequence: malformed UTF-8 outside an identifier. Reserved;
	// stray bytes currently surface as InvalidCharacter.
	InvalidUtf8Sequence ErrorCode = 1022

	// UnterminatedBlockComment: `/*` never closed before EOF.
	UnterminatedBlockComment ErrorCode = 1031

	// TokenTooLong: token byte length exceeds the uint16 limit.
	TokenTooLong ErrorCode = 1041
)

// String returns the display form, e.g. "L1021".
func (c ErrorCode) String() string {
	return fmt.Sprintf("L%04d", uint16(c))
}

// Diag converts the lexer-local code into its diagnostics-engine form.
func (c ErrorCode) Diag() diag.ErrorCode {
	return diag.NewErrorCode(diag.CatLexer, uint16(c))
}

// messageKey returns the catalog key prefix for labels, help lines and
// explanations, "" for unmapped codes.
func (c ErrorCode) messageKey() string {
	switch c {
	case MissingHexDigits:
		return "lexer.missing_hex_digits"
	case MissingBinaryDigits:
		return "lexer.missing_binary_digits"
	case MissingOctalDigits:
		return "lexer.missing_octal_digits"
	case MissingExponentDigits:
		return "lexer.missing_exponent_digits"
	case InvalidTrailingChar:
		return "lexer.invalid_trailing_char"
	case InvalidNumberSuffix:
		return "lexer.invalid_number_suffix"
	case InvalidEscapeSequence:
		return "lexer.invalid_escape_sequence"
	case UnterminatedString:
		return "lexer.unterminated_string"
	case InvalidHexEscape:
		return "lexer.invalid_hex_escape"
	case InvalidUnicodeEscape:
		return "lexer.invalid_unicode_escape"
	case UnterminatedRawString:
		return "lexer.unterminated_raw_string"
	case InvalidCharacter:
		return "lexer.invalid_character"
	case InvalidUtf8Sequence:
		return "lexer.invalid_utf8_sequence"
	case UnterminatedBlockComment:
		return "lexer.unterminated_block_comment"
	case TokenTooLong:
		return "lexer.token_too_long"
	}
	return ""
}

// коды регистрируются один раз на процесс; Register идемпотентен
func init() {
	register := func(code ErrorCode, brief string) {
		diag.RegisterError(code.Diag(), brief, code.messageKey()+".explanation")
	}
	register(MissingHexDigits, "missing hexadecimal digits after `0x`")
	register(MissingBinaryDigits, "missing binary digits after `0b`")
	register(MissingOctalDigits, "missing octal digits after `0o`")
	register(MissingExponentDigits, "missing digits in exponent")
	register(InvalidTrailingChar, "invalid trailing character in number literal")
	register(InvalidNumberSuffix, "invalid number suffix")
	register(InvalidEscapeSequence, "invalid escape sequence")
	register(UnterminatedString, "unterminated string literal")
	register(InvalidHexEscape, "invalid hexadecimal escape sequence")
	register(InvalidUnicodeEscape, "invalid Unicode escape sequence")
	register(UnterminatedRawString, "unterminated raw string literal")
	register(InvalidCharacter, "invalid character")
	register(InvalidUtf8Sequence, "invalid UTF-8 sequence")
	register(UnterminatedBlockComment, "unterminated block comment")
	register(TokenTooLong, "token length exceeds limit")
}

// Error is one scan-time fact about malformed input. The message is
// pre-formatted at report time so a caller can batch-print every problem
// in a file without the scanners being alive anymore. Errors never cross
// into the diagnostics engine except through the bridge in this package.
type Error struct {
	Code ErrorCode
	Loc  source.Location
	// Length is the byte length of the offending range, at least 1. Kept
	// out of Loc because spans can exceed the uint16 token limit.
	Length  uint32
	Message string
}

// Format renders the error as "file:line:col: L1021: message", resolving
// the filename through the arena.
func (e Error) Format(m *source.Manager) string {
	name := m.Filename(e.Loc.Buffer)
	if name == "" {
		name = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", name, e.Loc.Line, e.Loc.Column, e.Code, e.Message)
}

// Collector accumulates the errors of one scan pass. Scanners report and
// keep going; the pass owner inspects the batch afterwards.
type Collector struct {
	errors []Error
}

// Add appends one error.
func (c *Collector) Add(err Error) {
	c.errors = append(c.errors, err)
}

// Errors returns the collected errors in report order.
func (c *Collector) Errors() []Error {
	return c.errors
}

// HasErrors reports whether anything was collected.
func (c *Collector) HasErrors() bool {
	return len(c.errors) > 0
}

// Count returns the number of collected errors.
func (c *Collector) Count() int {
	return len(c.errors)
}

// Clear drops all collected errors.
func (c *Collector) Clear() {
	c.errors = c.errors[:0]
}
