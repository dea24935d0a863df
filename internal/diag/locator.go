package diag

// LineColumn is a resolved 1-based position. Column counts UTF-8 characters,
// not bytes.
type LineColumn struct {
	Line   uint32
	Column uint32
}

// IsValid reports whether the position was actually resolved.
func (lc LineColumn) IsValid() bool {
	return lc.Line > 0 && lc.Column > 0
}

// SourceLocator resolves spans back to filenames, positions and text.
// The diagnostics engine deliberately knows nothing about how sources are
// stored; each producing phase plugs in its own implementation. Every
// method follows the silent-failure contract: unknown files or out-of-range
// positions yield empty strings and zero positions, never panics.
type SourceLocator interface {
	// Filename returns the display name of the span's file.
	Filename(span Span) string
	// LineColumn resolves a byte offset to a 1-based line/column pair.
	LineColumn(file, offset uint32) LineColumn
	// LineContent returns one line of source text without its terminator.
	LineContent(file, line uint32) string
	// SourceSlice returns the text the span covers.
	SourceSlice(span Span) string
}
