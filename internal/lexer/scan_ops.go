package lexer

import "flint/internal/token"

// opScanner recognizes operators and delimiters by greedy table lookup:
// three-byte sequences first, then two-byte, then single bytes. This is
// the last real strategy in dispatch order, so it never sees letters,
// digits or quotes.
type opScanner struct{}

// singleByteTokens holds delimiters and operators that are complete on
// their own and never start a longer sequence.
var singleByteTokens = map[byte]token.Kind{
	'(':  token.DelimLParen,
	')':  token.DelimRParen,
	'{':  token.DelimLBrace,
	'}':  token.DelimRBrace,
	'[':  token.DelimLBracket,
	']':  token.DelimRBracket,
	',':  token.DelimComma,
	';':  token.DelimSemicolon,
	'@':  token.OpAt,
	'#':  token.OpHash,
	'$':  token.OpDollar,
	'\\': token.OpBackslash,
}

// multiStartTokens maps bytes that may begin a longer operator to their
// single-byte fallback kind.
var multiStartTokens = map[byte]token.Kind{
	'+': token.OpPlus,
	'-': token.OpMinus,
	'*': token.OpStar,
	'/': token.OpSlash,
	'%': token.OpPercent,
	'&': token.OpBitAnd,
	'|': token.OpBitOr,
	'^': token.OpBitXor,
	'~': token.OpBitNot,
	'<': token.OpLt,
	'>': token.OpGt,
	'=': token.OpAssign,
	'!': token.OpLogicalNot,
	'.': token.OpDot,
	':': token.DelimColon,
}

var doubleByteTokens = map[string]token.Kind{
	"==": token.OpEq,
	"!=": token.OpNe,
	"<=": token.OpLe,
	">=": token.OpGe,

	"&&": token.OpLogicalAnd,
	"||": token.OpLogicalOr,

	"+=": token.OpPlusAssign,
	"-=": token.OpMinusAssign,
	"*=": token.OpStarAssign,
	"/=": token.OpSlashAssign,
	"%=": token.OpPercentAssign,
	"&=": token.OpAndAssign,
	"|=": token.OpOrAssign,
	"^=": token.OpXorAssign,

	"<<": token.OpShl,
	">>": token.OpShr,

	"->": token.OpArrow,
	"=>": token.OpFatArrow,

	"..": token.OpDotDot,
	"::": token.OpColonColon,
}

var tripleByteTokens = map[string]token.Kind{
	"<<=": token.OpShlAssign,
	">>=": token.OpShrAssign,
	"..=": token.OpDotDotEq,
}

func (opScanner) canScan(ctx *scanContext) bool {
	b, ok := ctx.current()
	if !ok {
		return false
	}
	if _, found := singleByteTokens[b]; found {
		return true
	}
	_, found := multiStartTokens[b]
	return found
}

func (opScanner) scan(ctx *scanContext) token.Token {
	start := ctx.offset()
	loc := ctx.location()

	first, ok := ctx.current()
	if !ok {
		return ctx.makeUnknown(start, loc)
	}

	// жадное совпадение: сначала три байта, потом два
	if second, ok2 := ctx.peek(1); ok2 {
		if third, ok3 := ctx.peek(2); ok3 {
			if kind, found := tripleByteTokens[string([]byte{first, second, third})]; found {
				ctx.advanceN(3)
				return ctx.makeToken(kind, start, loc)
			}
		}
		if kind, found := doubleByteTokens[string([]byte{first, second})]; found {
			ctx.advanceN(2)
			return ctx.makeToken(kind, start, loc)
		}
	}

	if kind, found := singleByteTokens[first]; found {
		ctx.advance()
		return ctx.makeToken(kind, start, loc)
	}
	if kind, found := multiStartTokens[first]; found {
		ctx.advance()
		return ctx.makeToken(kind, start, loc)
	}

	ctx.advance()
	return ctx.makeUnknown(start, loc)
}
