package lexer

import (
	"flint/internal/source"
	"flint/internal/token"
)

// numberScanner recognizes integer, float and fixed-point literals:
// decimal with optional fraction/exponent, 0x/0b/0o fixed-radix forms,
// '_' digit separators and the type suffixes i8..u64, f32/f64, d/dec64.
type numberScanner struct{}

func (numberScanner) canScan(ctx *scanContext) bool {
	b, ok := ctx.current()
	return ok && isDigit(b)
}

func (s numberScanner) scan(ctx *scanContext) token.Token {
	start := ctx.offset()
	loc := ctx.location()

	if ctx.check('0') {
		if second, ok := ctx.peek(1); ok {
			switch second {
			case 'x', 'X':
				return s.scanRadix(ctx, start, loc, isHexDigit, MissingHexDigits,
					"missing hexadecimal digits after `0x`")
			case 'b', 'B':
				return s.scanRadix(ctx, start, loc, isBinDigit, MissingBinaryDigits,
					"missing binary digits after `0b`")
			case 'o', 'O':
				return s.scanRadix(ctx, start, loc, isOctDigit, MissingOctalDigits,
					"missing octal digits after `0o`")
			}
		}
	}
	return s.scanDecimal(ctx, start, loc)
}

// scanRadix handles the fixed-radix paths. The prefix is consumed first;
// an empty digit group is reported but the token is still produced so the
// scan keeps moving. Fixed-radix literals are always integers.
func (numberScanner) scanRadix(ctx *scanContext, start int, loc source.Location, digit func(byte) bool, code ErrorCode, msg string) token.Token {
	ctx.advanceN(2) // префикс 0x/0b/0o
	if consumeDigitRun(ctx, digit) == 0 {
		ctx.errorf(code, loc, ctx.offset()-start, "%s", msg)
	}
	consumeSuffix(ctx)
	return ctx.makeToken(token.LitInt, start, loc)
}

func (numberScanner) scanDecimal(ctx *scanContext, start int, loc source.Location) token.Token {
	consumeDigitRun(ctx, isDigit)

	isFloat := false

	// Точка потребляется только если за ней идёт цифра: "123.method()"
	// должно остаться Int + Dot + Ident.
	if ctx.check('.') {
		if after, ok := ctx.peek(1); ok && isDigit(after) {
			ctx.advance()
			isFloat = true
			consumeDigitRun(ctx, isDigit)
		}
	}

	if b, ok := ctx.current(); ok && (b == 'e' || b == 'E') {
		ctx.advance()
		isFloat = true
		if sign, ok := ctx.current(); ok && (sign == '+' || sign == '-') {
			ctx.advance()
		}
		if consumeDigitRun(ctx, isDigit) == 0 {
			ctx.errorf(MissingExponentDigits, loc, ctx.offset()-start,
				"missing digits in exponent")
		}
	}

	// 'd' запускает суффикс с фиксированной точкой (d, dec64)
	isDecimal := ctx.check('d')

	consumeSuffix(ctx)

	kind := token.LitInt
	switch {
	case isDecimal:
		kind = token.LitDecimal
	case isFloat:
		kind = token.LitFloat
	}
	return ctx.makeToken(kind, start, loc)
}

// consumeDigitRun consumes digits and '_' separators, returning how many
// actual digits were seen (separators do not count).
func consumeDigitRun(ctx *scanContext, digit func(byte) bool) int {
	count := 0
	for {
		b, ok := ctx.current()
		if !ok {
			return count
		}
		switch {
		case digit(b):
			count++
			ctx.advance()
		case b == '_':
			ctx.advance()
		default:
			return count
		}
	}
}

// consumeSuffix consumes a trailing type suffix: u/i/f plus width digits,
// or the fixed-point d / dec64 forms. Anything else stays unconsumed for
// the next token.
func consumeSuffix(ctx *scanContext) {
	b, ok := ctx.current()
	if !ok {
		return
	}
	switch b {
	case 'u', 'i', 'f':
		ctx.advance()
		for {
			next, ok := ctx.current()
			if !ok || !isDigit(next) {
				return
			}
			ctx.advance()
		}
	case 'd':
		ctx.advance()
		// длинная форма dec64 потребляется пошагово: каждый совпавший
		// байт входит в токен, первый несовпавший его обрывает
		if ctx.match('e') && ctx.match('c') && ctx.match('6') {
			ctx.match('4')
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isBinDigit(b byte) bool { return b == '0' || b == '1' }

func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }
