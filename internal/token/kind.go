package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown indicates an unrecognized byte; always paired with an
	// invalid-character error from the lexer.
	Unknown Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline represents a significant line break (reserved; the lexer
	// currently emits newlines only as trivia).
	Newline
	// Whitespace represents a whitespace run (trivia-only, same note).
	Whitespace

	// Ident represents an identifier token.
	Ident

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwType represents the 'type' keyword.
	KwType // type
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwAs represents the 'as' keyword.
	KwAs // as

	// CommentLine represents a '//' comment.
	CommentLine
	// CommentBlock represents a '/* ... */' comment.
	CommentBlock
	// CommentDoc represents a '///' or '/** ... */' doc comment.
	CommentDoc

	// LitInt represents an integer literal (decimal, hex, binary, octal).
	LitInt
	// LitFloat represents a floating-point literal.
	LitFloat
	// LitDecimal represents a fixed-point decimal literal (d suffix).
	LitDecimal
	// LitString represents a normal string literal.
	LitString
	// LitRawString represents a raw string literal (r"..." / r#"..."#).
	LitRawString
	// LitTexString represents a templated string literal (t"...").
	LitTexString
	// LitTrue represents the 'true' literal.
	LitTrue // true
	// LitFalse represents the 'false' literal.
	LitFalse // false
	// LitNull represents the 'null' literal.
	LitNull // null

	// OpPlus represents the plus operator token.
	OpPlus // +
	// OpMinus represents the minus operator token.
	OpMinus // -
	// OpStar represents the star operator token.
	OpStar // *
	// OpSlash represents the slash operator token.
	OpSlash // /
	// OpPercent represents the percent operator token.
	OpPercent // %

	// OpEq represents the equality operator token.
	OpEq // ==
	// OpNe represents the inequality operator token.
	OpNe // !=
	// OpLt represents the less-than operator token.
	OpLt // <
	// OpLe represents the less-or-equal operator token.
	OpLe // <=
	// OpGt represents the greater-than operator token.
	OpGt // >
	// OpGe represents the greater-or-equal operator token.
	OpGe // >=

	// OpLogicalAnd represents the logical and operator token.
	OpLogicalAnd // &&
	// OpLogicalOr represents the logical or operator token.
	OpLogicalOr // ||
	// OpLogicalNot represents the logical not operator token.
	OpLogicalNot // !

	// OpBitAnd represents the bitwise and operator token.
	OpBitAnd // &
	// OpBitOr represents the bitwise or operator token.
	OpBitOr // |
	// OpBitXor represents the bitwise xor operator token.
	OpBitXor // ^
	// OpBitNot represents the bitwise not operator token.
	OpBitNot // ~
	// OpShl represents the shift-left operator token.
	OpShl // <<
	// OpShr represents the shift-right operator token.
	OpShr // >>

	// OpAssign represents the assign operator token.
	OpAssign // =
	// OpPlusAssign represents the plus-assign operator token.
	OpPlusAssign // +=
	// OpMinusAssign represents the minus-assign operator token.
	OpMinusAssign // -=
	// OpStarAssign represents the star-assign operator token.
	OpStarAssign // *=
	// OpSlashAssign represents the slash-assign operator token.
	OpSlashAssign // /=
	// OpPercentAssign represents the percent-assign operator token.
	OpPercentAssign // %=
	// OpAndAssign represents the and-assign operator token.
	OpAndAssign // &=
	// OpOrAssign represents the or-assign operator token.
	OpOrAssign // |=
	// OpXorAssign represents the xor-assign operator token.
	OpXorAssign // ^=
	// OpShlAssign represents the shift-left-assign operator token.
	OpShlAssign // <<=
	// OpShrAssign represents the shift-right-assign operator token.
	OpShrAssign // >>=

	// OpDotDot represents the exclusive range operator token.
	OpDotDot // ..
	// OpDotDotEq represents the inclusive range operator token.
	OpDotDotEq // ..=

	// OpArrow represents the arrow operator token.
	OpArrow // ->
	// OpFatArrow represents the fat arrow operator token.
	OpFatArrow // =>
	// OpDot represents the dot operator token.
	OpDot // .
	// OpAt represents the at operator token.
	OpAt // @
	// OpColonColon represents the path separator operator token.
	OpColonColon // ::

	// OpHash represents the reserved '#' token.
	OpHash // #
	// OpDollar represents the reserved '$' token.
	OpDollar // $
	// OpBackslash represents the reserved '\' token.
	OpBackslash // \

	// DelimLParen represents the left parenthesis delimiter.
	DelimLParen // (
	// DelimRParen represents the right parenthesis delimiter.
	DelimRParen // )
	// DelimLBracket represents the left bracket delimiter.
	DelimLBracket // [
	// DelimRBracket represents the right bracket delimiter.
	DelimRBracket // ]
	// DelimLBrace represents the left brace delimiter.
	DelimLBrace // {
	// DelimRBrace represents the right brace delimiter.
	DelimRBrace // }
	// DelimComma represents the comma delimiter.
	DelimComma // ,
	// DelimColon represents the colon delimiter.
	DelimColon // :
	// DelimSemicolon represents the semicolon delimiter.
	DelimSemicolon // ;
	// DelimUnderscore represents the standalone wildcard underscore.
	DelimUnderscore // _

	kindCount // количество видов, для таблицы имён
)

// kindNames holds the stable wire names used by the text and JSON token
// dumps. Index by Kind.
var kindNames = [kindCount]string{
	Unknown:    "TOKEN_UNKNOWN",
	EOF:        "TOKEN_EOF",
	Newline:    "TOKEN_NEWLINE",
	Whitespace: "TOKEN_WHITESPACE",

	Ident: "IDENTIFIER",

	KwLet:      "KW_LET",
	KwVar:      "KW_VAR",
	KwFn:       "KW_FN",
	KwStruct:   "KW_STRUCT",
	KwEnum:     "KW_ENUM",
	KwType:     "KW_TYPE",
	KwImpl:     "KW_IMPL",
	KwTrait:    "KW_TRAIT",
	KwReturn:   "KW_RETURN",
	KwIf:       "KW_IF",
	KwElse:     "KW_ELSE",
	KwWhile:    "KW_WHILE",
	KwFor:      "KW_FOR",
	KwIn:       "KW_IN",
	KwBreak:    "KW_BREAK",
	KwContinue: "KW_CONTINUE",
	KwMatch:    "KW_MATCH",
	KwImport:   "KW_IMPORT",
	KwAs:       "KW_AS",

	CommentLine:  "COMMENT_LINE",
	CommentBlock: "COMMENT_BLOCK",
	CommentDoc:   "COMMENT_DOC",

	LitInt:       "LIT_INT",
	LitFloat:     "LIT_FLOAT",
	LitDecimal:   "LIT_DECIMAL",
	LitString:    "LIT_STRING",
	LitRawString: "LIT_RAW_STRING",
	LitTexString: "LIT_TEX_STRING",
	LitTrue:      "LIT_TRUE",
	LitFalse:     "LIT_FALSE",
	LitNull:      "LIT_NULL",

	OpPlus:    "OP_PLUS",
	OpMinus:   "OP_MINUS",
	OpStar:    "OP_STAR",
	OpSlash:   "OP_SLASH",
	OpPercent: "OP_PERCENT",

	OpEq: "OP_EQ",
	OpNe: "OP_NE",
	OpLt: "OP_LT",
	OpLe: "OP_LE",
	OpGt: "OP_GT",
	OpGe: "OP_GE",

	OpLogicalAnd: "OP_LOGICAL_AND",
	OpLogicalOr:  "OP_LOGICAL_OR",
	OpLogicalNot: "OP_LOGICAL_NOT",

	OpBitAnd: "OP_BIT_AND",
	OpBitOr:  "OP_BIT_OR",
	OpBitXor: "OP_BIT_XOR",
	OpBitNot: "OP_BIT_NOT",
	OpShl:    "OP_BIT_SHL",
	OpShr:    "OP_BIT_SHR",

	OpAssign:        "OP_ASSIGN",
	OpPlusAssign:    "OP_PLUS_ASSIGN",
	OpMinusAssign:   "OP_MINUS_ASSIGN",
	OpStarAssign:    "OP_STAR_ASSIGN",
	OpSlashAssign:   "OP_SLASH_ASSIGN",
	OpPercentAssign: "OP_PERCENT_ASSIGN",
	OpAndAssign:     "OP_AND_ASSIGN",
	OpOrAssign:      "OP_OR_ASSIGN",
	OpXorAssign:     "OP_XOR_ASSIGN",
	OpShlAssign:     "OP_SHL_ASSIGN",
	OpShrAssign:     "OP_SHR_ASSIGN",

	OpDotDot:   "OP_DOT_DOT",
	OpDotDotEq: "OP_DOT_DOT_EQ",

	OpArrow:      "OP_ARROW",
	OpFatArrow:   "OP_FAT_ARROW",
	OpDot:        "OP_DOT",
	OpAt:         "OP_AT",
	OpColonColon: "OP_COLON_COLON",

	OpHash:      "OP_HASH",
	OpDollar:    "OP_DOLLAR",
	OpBackslash: "OP_BACKSLASH",

	DelimLParen:     "DELIM_LPAREN",
	DelimRParen:     "DELIM_RPAREN",
	DelimLBracket:   "DELIM_LBRACKET",
	DelimRBracket:   "DELIM_RBRACKET",
	DelimLBrace:     "DELIM_LBRACE",
	DelimRBrace:     "DELIM_RBRACE",
	DelimComma:      "DELIM_COMMA",
	DelimColon:      "DELIM_COLON",
	DelimSemicolon:  "DELIM_SEMICOLON",
	DelimUnderscore: "DELIM_UNDERSCORE",
}

// String returns the stable wire name of the kind ("KW_LET", "LIT_INT", ...).
func (k Kind) String() string {
	if k >= kindCount || kindNames[k] == "" {
		return "TOKEN_UNKNOWN"
	}
	return kindNames[k]
}
