package source

type (
	// BufferID uniquely identifies a buffer inside a Manager.
	// The zero value is the canonical invalid handle.
	BufferID uint32 // 1-based, 0 — невалидный хэндл
	// ExpansionID refers to a recorded macro expansion.
	// Reserved for the future expander; zero means "not from an expansion".
	ExpansionID uint32
)

// Valid reports whether the handle refers to a real buffer.
func (id BufferID) Valid() bool { return id != 0 }

// Valid reports whether the handle refers to a recorded expansion.
func (id ExpansionID) Valid() bool { return id != 0 }

// Location is a fully resolved position inside one buffer.
// Line and Column are 1-based; Column counts UTF-8 characters, not bytes.
// Offset is the 0-based byte offset. Immutable once captured.
type Location struct {
	Buffer BufferID
	Line   uint32
	Column uint32
	Offset uint32
}

// LineCol represents a human-readable position in a buffer.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, UTF-8 characters
}

// ExpansionInfo records one macro expansion site: where the macro was
// called and where it was defined. Nothing produces these yet; the
// registry exists so token and diagnostic shapes stay stable once the
// expander lands.
type ExpansionInfo struct {
	CallSiteBuffer  BufferID
	CallSiteOffset  uint32
	CallSiteLine    uint32
	CallSiteColumn  uint32
	MacroDefBuffer  BufferID
	MacroNameOffset uint32
	MacroNameLength uint16
	Parent          ExpansionID // 0 — самый внешний уровень
}
