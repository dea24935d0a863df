package token

var keywords = map[string]Kind{
	"let":      KwLet,
	"var":      KwVar,
	"fn":       KwFn,
	"struct":   KwStruct,
	"enum":     KwEnum,
	"type":     KwType,
	"impl":     KwImpl,
	"trait":    KwTrait,
	"return":   KwReturn,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"for":      KwFor,
	"in":       KwIn,
	"break":    KwBreak,
	"continue": KwContinue,
	"match":    KwMatch,
	"import":   KwImport,
	"as":       KwAs,
	// словарные литералы идут через ту же таблицу
	"true":  LitTrue,
	"false": LitFalse,
	"null":  LitNull,
}

// LookupKeyword returns the kind reserved for ident when it is a
// keyword or a word literal. The lookup is case-sensitive: only the
// lowercase spellings are reserved.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
