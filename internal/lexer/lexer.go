package lexer

import (
	"flint/internal/source"
	"flint/internal/token"
)

// Lexer is the facade over the scanning strategies. It owns the cursor
// and the error collector for one buffer and hands out tokens in two
// modes: the fast one skips whitespace and comments, the
// trivia-preserving one attaches them to the surrounding tokens for
// IDE and formatter use.
//
// A Lexer is single-use and not safe for concurrent calls; lex several
// buffers by giving each goroutine its own Lexer.
type Lexer struct {
	mgr    *source.Manager
	ctx    scanContext
	errors Collector

	strings  stringScanner
	idents   identScanner
	numbers  numberScanner
	comments commentScanner
	ops      opScanner
}

// New positions a lexer at the start of the buffer.
func New(m *source.Manager, id source.BufferID) *Lexer {
	lx := &Lexer{mgr: m}
	lx.ctx = scanContext{reader: source.NewReader(m, id), errors: &lx.errors}
	return lx
}

// NextToken returns the next significant token, skipping whitespace and
// comments. At end of input it returns the EOF token, repeatedly.
func (lx *Lexer) NextToken() token.Token {
	lx.skipWhitespaceAndComments()
	if lx.ctx.isAtEnd() {
		return token.NewEOF(lx.ctx.buffer(), lx.ctx.location())
	}
	return lx.scanToken()
}

// Tokenize scans the whole buffer and returns every significant token,
// EOF included as the final element.
func (lx *Lexer) Tokenize() []token.Token {
	tokens := make([]token.Token, 0, 1024)
	for {
		tok := lx.NextToken()
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens
		}
	}
}

// NextTokenWithTrivia returns the next token with its leading trivia
// (whitespace, newlines, comments up to the token) and trailing trivia
// (same-line whitespace and line comments after it) attached.
func (lx *Lexer) NextTokenWithTrivia() token.Token {
	leading := lx.collectLeadingTrivia()
	if lx.ctx.isAtEnd() {
		eof := token.NewEOF(lx.ctx.buffer(), lx.ctx.location())
		eof.Leading = leading
		return eof
	}
	tok := lx.scanToken()
	tok.Leading = leading
	tok.Trailing = lx.collectTrailingTrivia()
	return tok
}

// TokenizeWithTrivia scans the whole buffer in trivia-preserving mode.
func (lx *Lexer) TokenizeWithTrivia() []token.Token {
	tokens := make([]token.Token, 0, 1024)
	for {
		tok := lx.NextTokenWithTrivia()
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens
		}
	}
}

// Errors returns the errors collected so far, in report order.
func (lx *Lexer) Errors() []Error { return lx.errors.Errors() }

// HasErrors reports whether any error was collected so far.
func (lx *Lexer) HasErrors() bool { return lx.errors.HasErrors() }

// scanToken dispatches to the first strategy that claims the current
// byte. Order matters: the string scanner must see 'r'/'t' before the
// identifier scanner does, and every strategy before the unknown
// fallback.
func (lx *Lexer) scanToken() token.Token {
	ctx := &lx.ctx
	switch {
	case lx.strings.canScan(ctx):
		return lx.strings.scan(ctx)
	case lx.idents.canScan(ctx):
		return lx.idents.scan(ctx)
	case lx.numbers.canScan(ctx):
		return lx.numbers.scan(ctx)
	case lx.ops.canScan(ctx):
		return lx.ops.scan(ctx)
	}
	return lx.scanUnknown()
}

// scanUnknown reports the byte no strategy claims and consumes exactly
// one byte so the scan always moves forward.
func (lx *Lexer) scanUnknown() token.Token {
	ctx := &lx.ctx
	start := ctx.offset()
	loc := ctx.location()
	if b, ok := ctx.current(); ok {
		ctx.errorf(InvalidCharacter, loc, 1, "invalid character %q", rune(b))
		ctx.advance()
	}
	return ctx.makeUnknown(start, loc)
}

func (lx *Lexer) skipWhitespaceAndComments() {
	for {
		lx.skipWhitespace()
		if lx.comments.canScan(&lx.ctx) {
			lx.comments.scan(&lx.ctx)
			continue
		}
		return
	}
}

func (lx *Lexer) skipWhitespace() {
	for {
		b, ok := lx.ctx.current()
		if !ok || (b != ' ' && b != '\t' && b != '\n' && b != '\r') {
			return
		}
		lx.ctx.advance()
	}
}

// collectLeadingTrivia consumes everything up to the next significant
// token: whitespace runs coalesce into one piece, every line break is
// its own length-1 piece, comments are one piece each.
func (lx *Lexer) collectLeadingTrivia() []token.Trivia {
	var trivia []token.Trivia
	ctx := &lx.ctx
	for {
		b, ok := ctx.current()
		if !ok {
			return trivia
		}
		switch {
		case b == ' ' || b == '\t':
			start := ctx.offset()
			for {
				next, ok := ctx.current()
				if !ok || (next != ' ' && next != '\t') {
					break
				}
				ctx.advance()
			}
			trivia = append(trivia, lx.makeTrivia(token.TriviaWhitespace, start))
		case b == '\n' || b == '\r':
			start := ctx.offset()
			ctx.advance()
			// "\r\n" остаётся двумя отдельными кусочками длины 1
			trivia = append(trivia, token.Trivia{
				Kind:   token.TriviaNewline,
				Buffer: ctx.buffer(),
				Offset: uint32(start), //nolint:gosec // reader guards the 4 GiB bound
				Length: 1,
			})
		case lx.comments.canScan(ctx):
			start := ctx.offset()
			lx.comments.scan(ctx)
			trivia = append(trivia, lx.makeTrivia(token.TriviaComment, start))
		default:
			return trivia
		}
	}
}

// collectTrailingTrivia consumes only same-line whitespace and line
// comments; the newline itself belongs to the next token's leading set.
func (lx *Lexer) collectTrailingTrivia() []token.Trivia {
	var trivia []token.Trivia
	ctx := &lx.ctx
	for {
		b, ok := ctx.current()
		if !ok {
			return trivia
		}
		if b == ' ' || b == '\t' {
			start := ctx.offset()
			for {
				next, ok := ctx.current()
				if !ok || (next != ' ' && next != '\t') {
					break
				}
				ctx.advance()
			}
			trivia = append(trivia, lx.makeTrivia(token.TriviaWhitespace, start))
			continue
		}
		if b == '/' {
			if next, ok := ctx.peek(1); ok && next == '/' {
				start := ctx.offset()
				lx.comments.scan(ctx)
				trivia = append(trivia, lx.makeTrivia(token.TriviaComment, start))
				continue
			}
		}
		return trivia
	}
}

func (lx *Lexer) makeTrivia(kind token.TriviaKind, start int) token.Trivia {
	n := lx.ctx.offset() - start
	if n > 0xFFFF {
		n = 0xFFFF
	}
	return token.Trivia{
		Kind:   kind,
		Buffer: lx.ctx.buffer(),
		Offset: uint32(start), //nolint:gosec // reader guards the 4 GiB bound
		Length: uint16(n),     //nolint:gosec // clamped above
	}
}
