package lexer

import (
	"flint/internal/source"
	"flint/internal/token"
)

// commentScanner recognizes line comments (`//`, doc `///`) and block
// comments (`/*`, doc `/**`). Block comments do not nest: the first `*/`
// after the opener closes the comment. A block comment left open at EOF
// is reported and yields a comment token over the consumed input.
type commentScanner struct{}

func (commentScanner) canScan(ctx *scanContext) bool {
	if !ctx.check('/') {
		return false
	}
	next, ok := ctx.peek(1)
	return ok && (next == '/' || next == '*')
}

func (s commentScanner) scan(ctx *scanContext) token.Token {
	start := ctx.offset()
	loc := ctx.location()

	next, _ := ctx.peek(1)
	if next == '/' {
		return s.scanLine(ctx, start, loc)
	}
	return s.scanBlock(ctx, start, loc)
}

func (commentScanner) scanLine(ctx *scanContext, start int, loc source.Location) token.Token {
	ctx.advanceN(2) // "//"

	kind := token.CommentLine
	if ctx.check('/') {
		kind = token.CommentDoc
		ctx.advance()
	}

	// до перевода строки; сам перевод не потребляется
	for {
		b, ok := ctx.current()
		if !ok || b == '\n' || b == '\r' {
			break
		}
		ctx.advance()
	}
	return ctx.makeToken(kind, start, loc)
}

func (commentScanner) scanBlock(ctx *scanContext, start int, loc source.Location) token.Token {
	ctx.advanceN(2) // "/*"

	kind := token.CommentBlock
	if ctx.check('*') {
		// "/**" — doc-блок, но "/**/" это обычный пустой комментарий;
		// звёздочка остаётся в потоке, если это не doc-вариант
		if after, ok := ctx.peek(1); ok && after != '/' {
			kind = token.CommentDoc
			ctx.advance()
		}
	}

	terminated := false
	for {
		b, ok := ctx.current()
		if !ok {
			break
		}
		if b == '*' {
			if next, ok := ctx.peek(1); ok && next == '/' {
				ctx.advanceN(2)
				terminated = true
				break
			}
		}
		ctx.advance()
	}

	if !terminated {
		ctx.errorf(UnterminatedBlockComment, loc, ctx.offset()-start,
			"unterminated block comment")
	}
	return ctx.makeToken(kind, start, loc)
}
