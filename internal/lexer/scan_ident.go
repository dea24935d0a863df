package lexer

import (
	"flint/internal/source"
	"flint/internal/token"
)

// identScanner recognizes identifiers and keywords. It claims ASCII
// letters, '_' and any multi-byte UTF-8 lead byte; continuation is ASCII
// alphanumerics plus validated multi-byte characters. A malformed
// multi-byte sequence mid-identifier silently ends the identifier — the
// stray bytes fall through to the unknown-character path on the next
// call, so one bad sequence never derails the scan.
type identScanner struct{}

func (identScanner) canScan(ctx *scanContext) bool {
	b, ok := ctx.current()
	return ok && (source.IsASCIIIdentStart(b) || source.IsUTF8LeadByte(b))
}

func (identScanner) scan(ctx *scanContext) token.Token {
	start := ctx.offset()
	loc := ctx.location()

	first, ok := ctx.current()
	if !ok {
		return ctx.makeUnknown(start, loc)
	}
	if source.IsUTF8LeadByte(first) {
		if !consumeUTF8Char(ctx) {
			// битая последовательность на первом же символе
			ctx.advance()
			return ctx.makeUnknown(start, loc)
		}
	} else {
		ctx.advance()
	}

	for {
		b, ok := ctx.current()
		if !ok {
			break
		}
		if source.IsASCIIIdentContinue(b) {
			ctx.advance()
			continue
		}
		if source.IsUTF8LeadByte(b) && consumeUTF8Char(ctx) {
			continue
		}
		break
	}

	text := ctx.textFrom(start)
	if text == "_" {
		// одиночный '_' — это wildcard, не идентификатор
		return ctx.makeToken(token.DelimUnderscore, start, loc)
	}
	kind := token.Ident
	if kw, isKw := token.LookupKeyword(text); isKw {
		kind = kw
	}
	return ctx.makeToken(kind, start, loc)
}

// consumeUTF8Char consumes one multi-byte character after validating its
// continuation bytes. Nothing is consumed when the sequence is malformed.
func consumeUTF8Char(ctx *scanContext) bool {
	b, ok := ctx.current()
	if !ok {
		return false
	}
	n := source.CharLen(b)
	if n < 2 {
		return false
	}
	for i := 1; i < n; i++ {
		next, ok := ctx.peek(i)
		if !ok || !source.IsContinuationByte(next) {
			return false
		}
	}
	ctx.advanceN(n)
	return true
}
