package lexer

import (
	"fmt"

	"flint/internal/source"
	"flint/internal/token"
)

// maxTokenLength is the largest byte length a token stores exactly.
// Longer tokens are reported as TokenTooLong and emitted with the
// length clamped; the error span keeps the real length.
const maxTokenLength = 0xFFFF

// scanner is one scanning strategy. canScan peeks without side effects;
// scan consumes input and must make forward progress even on malformed
// input, so the lexer loop always terminates.
type scanner interface {
	canScan(ctx *scanContext) bool
	scan(ctx *scanContext) token.Token
}

// scanContext bundles the cursor and the error collector every scanner
// works through. One context lives for one Lexer call.
type scanContext struct {
	reader *source.Reader
	errors *Collector
}

func (ctx *scanContext) current() (byte, bool)     { return ctx.reader.Current() }
func (ctx *scanContext) peek(ahead int) (byte, bool) { return ctx.reader.Peek(ahead) }
func (ctx *scanContext) isAtEnd() bool             { return ctx.reader.IsAtEnd() }
func (ctx *scanContext) location() source.Location { return ctx.reader.Location() }
func (ctx *scanContext) offset() int               { return ctx.reader.Offset() }
func (ctx *scanContext) buffer() source.BufferID   { return ctx.reader.Buffer() }
func (ctx *scanContext) advance()                  { ctx.reader.Advance() }
func (ctx *scanContext) advanceN(n int)            { ctx.reader.AdvanceN(n) }
func (ctx *scanContext) match(b byte) bool         { return ctx.reader.Match(b) }

// check reports whether the current byte equals b without consuming it.
func (ctx *scanContext) check(b byte) bool {
	cur, ok := ctx.current()
	return ok && cur == b
}

// textFrom returns the bytes consumed since start.
func (ctx *scanContext) textFrom(start int) string {
	return ctx.reader.TextFrom(start)
}

// errorf reports a pre-formatted error at loc covering length bytes.
func (ctx *scanContext) errorf(code ErrorCode, loc source.Location, length int, format string, args ...any) {
	if length < 1 {
		length = 1
	}
	ctx.errors.Add(Error{
		Code:    code,
		Loc:     loc,
		Length:  uint32(length), //nolint:gosec // length is a clamped scan distance
		Message: fmt.Sprintf(format, args...),
	})
}

// makeToken builds a token covering [start, cursor). A token longer than
// maxTokenLength is reported but still produced with the clamped length,
// so scanning continues.
func (ctx *scanContext) makeToken(kind token.Kind, start int, loc source.Location) token.Token {
	if n := ctx.reader.Offset() - start; n > maxTokenLength {
		ctx.errorf(TokenTooLong, loc, n,
			"token length %d exceeds maximum allowed length %d", n, maxTokenLength)
	}
	offset, length := ctx.reader.SliceFrom(start)
	return token.New(kind, ctx.buffer(), offset, length, loc)
}

// makeStringToken builds a string-like token whose value window
// [valueStart, valueEnd) excludes the delimiters while the raw window
// covers the literal as written.
func (ctx *scanContext) makeStringToken(kind token.Kind, start int, loc source.Location, valueStart, valueEnd int, flags token.EscapeFlags) token.Token {
	tok := ctx.makeToken(kind, start, loc)
	tok.Escapes = flags
	if valueEnd < valueStart {
		valueEnd = valueStart
	}
	n := valueEnd - valueStart
	if n > maxTokenLength {
		n = maxTokenLength // makeToken уже отрапортовал TokenTooLong
	}
	tok.ValueOff = uint32(valueStart) //nolint:gosec // bounded by the reader's uint32 guard
	tok.ValueLen = uint16(n)          //nolint:gosec // clamped above
	return tok
}

// makeUnknown builds the unknown-character token covering [start, cursor).
func (ctx *scanContext) makeUnknown(start int, loc source.Location) token.Token {
	return ctx.makeToken(token.Unknown, start, loc)
}
