package lexer

import (
	"flint/internal/diag"
	"flint/internal/diag/i18n"
	"flint/internal/source"
)

// Locator adapts the source arena to the diagnostics engine's locator
// interface. Span.File carries the BufferID value, so resolution is a
// direct arena lookup; the arena's silent-failure contract gives the
// locator its own for free.
type Locator struct {
	m *source.Manager
}

// NewLocator wraps the arena for diagnostic rendering.
func NewLocator(m *source.Manager) *Locator {
	return &Locator{m: m}
}

// Filename returns the display name of the span's buffer.
func (l *Locator) Filename(span diag.Span) string {
	return l.m.Filename(source.BufferID(span.File))
}

// LineColumn resolves a byte offset to a 1-based line/column pair.
func (l *Locator) LineColumn(file, offset uint32) diag.LineColumn {
	lc := l.m.Resolve(source.BufferID(file), offset)
	return diag.LineColumn{Line: lc.Line, Column: lc.Col}
}

// LineContent returns one line of the buffer without its terminator.
func (l *Locator) LineContent(file, line uint32) string {
	return l.m.LineContent(source.BufferID(file), line)
}

// SourceSlice returns the text the span covers.
func (l *Locator) SourceSlice(span diag.Span) string {
	return l.m.Slice(source.BufferID(span.File), span.Start, span.Len())
}

// ToSpan converts a lexer error into a diagnostics span covering the
// full offending range, uint16 token limits notwithstanding.
func ToSpan(e Error) diag.Span {
	start := e.Loc.Offset
	return diag.NewSpan(uint32(e.Loc.Buffer), start, start+e.Length)
}

// ToDiagnostic converts a lexer error into an engine diagnostic,
// attaching the translated span label and help line when the catalog
// has them.
func ToDiagnostic(e Error, tr *i18n.Translator) diag.Diagnostic {
	b := diag.NewError(e.Code.Diag(), e.Message)

	prefix := e.Code.messageKey()
	label := ""
	if prefix != "" {
		label = tr.Get(prefix + ".label")
	}
	b.SpanLabel(ToSpan(e), label)

	if prefix != "" {
		if help := tr.Get(prefix + ".help"); help != "" {
			b.Help(help)
		}
	}
	return b.Build()
}

// EmitErrors pushes every collected error through the diagnostics
// engine, installing an arena-backed locator on the context first.
func EmitErrors(dcx *diag.Context, errs []Error, m *source.Manager, tr *i18n.Translator) {
	dcx.SetLocator(NewLocator(m))
	for _, e := range errs {
		dcx.Emit(ToDiagnostic(e, tr))
	}
}
