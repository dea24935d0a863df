package lexer

import (
	"flint/internal/source"
	"flint/internal/token"
)

// stringScanner recognizes the three string forms: normal `"…"` with
// escape processing, raw `r"…"` / `r###"…"###` with a counted hash
// fence, and templated `t"…"` which keeps its content verbatim except
// for `\"`. An unterminated literal is reported but still yields a
// best-effort token over the consumed input.
type stringScanner struct{}

func (stringScanner) canScan(ctx *scanContext) bool {
	b, ok := ctx.current()
	if !ok {
		return false
	}
	switch b {
	case '"':
		return true
	case 'r':
		next, ok := ctx.peek(1)
		return ok && (next == '"' || next == '#')
	case 't':
		next, ok := ctx.peek(1)
		return ok && next == '"'
	}
	return false
}

func (s stringScanner) scan(ctx *scanContext) token.Token {
	start := ctx.offset()
	loc := ctx.location()

	b, ok := ctx.current()
	if !ok {
		return ctx.makeUnknown(start, loc)
	}
	switch b {
	case 'r':
		return s.scanRaw(ctx, start, loc)
	case 't':
		return s.scanTex(ctx, start, loc)
	}
	return s.scanNormal(ctx, start, loc)
}

func (stringScanner) scanNormal(ctx *scanContext, start int, loc source.Location) token.Token {
	ctx.advance() // открывающая кавычка
	valueStart := ctx.offset()
	valueEnd := valueStart

	var flags token.EscapeFlags

loop:
	for {
		b, ok := ctx.current()
		if !ok {
			valueEnd = ctx.offset()
			ctx.errorf(UnterminatedString, loc, ctx.offset()-start,
				"unterminated string literal")
			break
		}
		switch b {
		case '"':
			valueEnd = ctx.offset()
			ctx.advance()
			break loop
		case '\\':
			ctx.advance()
			esc, ok := ctx.current()
			if !ok {
				continue
			}
			switch esc {
			case 'n', 'r', 't', '\\', '"', '\'', '0':
				flags |= token.EscapeNamed
				ctx.advance()
			case 'x':
				flags |= token.EscapeHex
				ctx.advance()
				consumeHexDigits(ctx, 2)
			case 'u':
				flags |= token.EscapeUnicode
				ctx.advance()
				if ctx.match('{') {
					consumeUnicodeBody(ctx)
				}
			default:
				// неизвестный escape пропускаем молча
				ctx.advance()
			}
		case '\n', '\r':
			// токен заканчивается ДО перевода строки, чтобы следующая
			// строка лексировалась чисто
			valueEnd = ctx.offset()
			ctx.errorf(UnterminatedString, loc, ctx.offset()-start,
				"unterminated string literal (missing closing quote before end of line)")
			break loop
		default:
			ctx.advance()
		}
	}

	return ctx.makeStringToken(token.LitString, start, loc, valueStart, valueEnd, flags)
}

func (stringScanner) scanRaw(ctx *scanContext, start int, loc source.Location) token.Token {
	ctx.advance() // 'r'

	hashes := 0
	for ctx.check('#') {
		hashes++
		ctx.advance()
	}
	if !ctx.match('"') {
		return ctx.makeUnknown(start, loc)
	}
	valueStart := ctx.offset()
	valueEnd := valueStart

	var flags token.EscapeFlags

loop:
	for {
		b, ok := ctx.current()
		if !ok {
			valueEnd = ctx.offset()
			ctx.errorf(UnterminatedRawString, loc, ctx.offset()-start,
				"unterminated raw string literal")
			break
		}
		switch b {
		case '"':
			quote := ctx.offset()
			ctx.advance()
			// закрывающий забор должен совпасть по числу '#';
			// меньший — просто содержимое
			matched := 0
			for matched < hashes && ctx.check('#') {
				matched++
				ctx.advance()
			}
			if matched == hashes {
				valueEnd = quote
				break loop
			}
		case '\n', '\r', '\t':
			flags |= token.EscapeLiteralCtrl
			ctx.advance()
		default:
			ctx.advance()
		}
	}

	return ctx.makeStringToken(token.LitRawString, start, loc, valueStart, valueEnd, flags)
}

func (stringScanner) scanTex(ctx *scanContext, start int, loc source.Location) token.Token {
	ctx.advance() // 't'
	if !ctx.match('"') {
		return ctx.makeUnknown(start, loc)
	}
	valueStart := ctx.offset()
	valueEnd := valueStart

	var flags token.EscapeFlags

loop:
	for {
		b, ok := ctx.current()
		if !ok {
			valueEnd = ctx.offset()
			ctx.errorf(UnterminatedString, loc, ctx.offset()-start,
				"unterminated string literal")
			break
		}
		switch b {
		case '"':
			valueEnd = ctx.offset()
			ctx.advance()
			break loop
		case '\\':
			ctx.advance()
			// в шаблонных строках распознаётся только \"
			if ctx.check('"') {
				flags |= token.EscapeNamed
				ctx.advance()
			}
		case '\n', '\r', '\t':
			flags |= token.EscapeLiteralCtrl
			ctx.advance()
		default:
			ctx.advance()
		}
	}

	return ctx.makeStringToken(token.LitTexString, start, loc, valueStart, valueEnd, flags)
}

// consumeHexDigits consumes up to max hex digits.
func consumeHexDigits(ctx *scanContext, max int) {
	for i := 0; i < max; i++ {
		b, ok := ctx.current()
		if !ok || !isHexDigit(b) {
			return
		}
		ctx.advance()
	}
}

// consumeUnicodeBody consumes hex digits up to and including the closing
// '}'. A non-hex byte before the brace ends the escape where it stands.
func consumeUnicodeBody(ctx *scanContext) {
	for {
		b, ok := ctx.current()
		if !ok {
			return
		}
		if b == '}' {
			ctx.advance()
			return
		}
		if !isHexDigit(b) {
			return
		}
		ctx.advance()
	}
}
