package diag

import "fmt"

// Category decides the letter prefix of an error code.
type Category uint8

const (
	// CatLexer covers tokenization errors, prefix L.
	CatLexer Category = 1
	// CatParser covers syntax errors, prefix P.
	CatParser Category = 2
	// CatSema covers semantic analysis errors, prefix S.
	CatSema Category = 3
	// CatCodegen covers code generation errors, prefix C.
	CatCodegen Category = 4
	// CatDriver covers driver and IO errors, prefix D.
	CatDriver Category = 5
)

// Prefix returns the single-letter category prefix, '?' for unknown values.
func (c Category) Prefix() byte {
	switch c {
	case CatLexer:
		return 'L'
	case CatParser:
		return 'P'
	case CatSema:
		return 'S'
	case CatCodegen:
		return 'C'
	case CatDriver:
		return 'D'
	}
	return '?'
}

// ErrorCode identifies one diagnosable condition, rendered as the category
// letter plus a four-digit number, e.g. "L1021". The zero value is invalid
// and doubles as "no code attached".
type ErrorCode struct {
	Category Category
	Code     uint16
}

// NewErrorCode builds an error code from its parts.
func NewErrorCode(cat Category, code uint16) ErrorCode {
	return ErrorCode{Category: cat, Code: code}
}

// IsValid reports whether the code identifies a real condition.
func (ec ErrorCode) IsValid() bool {
	return ec.Code != 0
}

func (ec ErrorCode) String() string {
	return fmt.Sprintf("%c%04d", ec.Category.Prefix(), ec.Code)
}

// key packs the code into one integer for hashing and map keys.
func (ec ErrorCode) key() uint64 {
	return uint64(ec.Category)<<16 | uint64(ec.Code)
}

// Less orders codes by category, then number. Used to keep reported code
// sets deterministic.
func (ec ErrorCode) Less(other ErrorCode) bool {
	if ec.Category != other.Category {
		return ec.Category < other.Category
	}
	return ec.Code < other.Code
}
