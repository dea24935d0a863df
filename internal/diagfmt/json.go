package diagfmt

import (
	"encoding/json"
	"io"

	"flint/internal/diag"
)

// SpanJSON представляет span с опциональной разрешённой позицией
type SpanJSON struct {
	FileID uint32 `json:"file_id"`
	Start  uint32 `json:"start"`
	End    uint32 `json:"end"`
	File   string `json:"file,omitempty"`
	Line   uint32 `json:"line,omitempty"`
	Column uint32 `json:"column,omitempty"`
}

// ChildJSON представляет дочернюю заметку для JSON
type ChildJSON struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// SuggestionJSON представляет предложение по исправлению для JSON
type SuggestionJSON struct {
	Message     string `json:"message"`
	Replacement string `json:"replacement"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Level       string           `json:"level"`
	Code        string           `json:"code,omitempty"`
	Message     string           `json:"message"`
	Spans       []SpanJSON       `json:"spans"`
	Children    []ChildJSON      `json:"children"`
	Suggestions []SuggestionJSON `json:"suggestions"`
}

// StatsJSON представляет итоговую статистику
type StatsJSON struct {
	ErrorCount       int      `json:"error_count"`
	WarningCount     int      `json:"warning_count"`
	NoteCount        int      `json:"note_count"`
	UniqueErrorCodes []string `json:"unique_error_codes"`
}

// DiagnosticsDocument представляет корневую структуру JSON вывода
type DiagnosticsDocument struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Stats       StatsJSON        `json:"stats"`
}

// BuildDiagnosticJSON формирует структуру JSON-вывода без сериализации.
// Message keeps its Markdown markup; consumers render it themselves.
func BuildDiagnosticJSON(d *diag.Diagnostic, locator diag.SourceLocator) DiagnosticJSON {
	out := DiagnosticJSON{
		Level:       d.Level.String(),
		Message:     d.Message,
		Spans:       make([]SpanJSON, 0, d.Spans.Len()),
		Children:    make([]ChildJSON, 0, len(d.Children)),
		Suggestions: make([]SuggestionJSON, 0, len(d.Suggestions)),
	}
	if d.HasCode() {
		out.Code = d.Code.String()
	}
	for _, ls := range d.Spans.Spans() {
		out.Spans = append(out.Spans, makeSpanJSON(ls.Span, locator))
	}
	for _, child := range d.Children {
		out.Children = append(out.Children, ChildJSON{
			Level:   child.Level.String(),
			Message: child.Message,
		})
	}
	for _, sug := range d.Suggestions {
		out.Suggestions = append(out.Suggestions, SuggestionJSON{
			Message:     sug.Message,
			Replacement: sug.Replacement,
		})
	}
	return out
}

// makeSpanJSON создаёт SpanJSON из Span; позиция добавляется только
// когда локатор способен её разрешить.
func makeSpanJSON(span diag.Span, locator diag.SourceLocator) SpanJSON {
	out := SpanJSON{FileID: span.File, Start: span.Start, End: span.End}
	if locator != nil && span.IsValid() {
		out.File = locator.Filename(span)
		lc := locator.LineColumn(span.File, span.Start)
		out.Line = lc.Line
		out.Column = lc.Column
	}
	return out
}

// JSONEmitter implements diag.Emitter with a machine-readable
// document. Diagnostics are buffered and written as one well-formed
// JSON object on Flush, so a consumer never sees a truncated stream.
type JSONEmitter struct {
	w       io.Writer
	pretty  bool
	doc     DiagnosticsDocument
	flushed bool
}

// NewJSONEmitter builds a JSON emitter writing to w. With pretty the
// document is indented for humans.
func NewJSONEmitter(w io.Writer, pretty bool) *JSONEmitter {
	return &JSONEmitter{
		w:      w,
		pretty: pretty,
		doc: DiagnosticsDocument{
			Diagnostics: []DiagnosticJSON{},
			Stats:       StatsJSON{UniqueErrorCodes: []string{}},
		},
	}
}

// Emit buffers one diagnostic, resolving span positions through the
// locator when available.
func (e *JSONEmitter) Emit(d *diag.Diagnostic, locator diag.SourceLocator) {
	e.doc.Diagnostics = append(e.doc.Diagnostics, BuildDiagnosticJSON(d, locator))
}

// EmitSummary records the final statistics object.
func (e *JSONEmitter) EmitSummary(stats diag.Stats) {
	codes := make([]string, 0, len(stats.UniqueCodes))
	for _, code := range stats.UniqueCodes {
		codes = append(codes, code.String())
	}
	e.doc.Stats = StatsJSON{
		ErrorCount:       stats.Errors,
		WarningCount:     stats.Warnings,
		NoteCount:        stats.Notes,
		UniqueErrorCodes: codes,
	}
}

// Flush writes the buffered document. Repeated calls write once.
func (e *JSONEmitter) Flush() error {
	if e.flushed {
		return nil
	}
	e.flushed = true
	encoder := json.NewEncoder(e.w)
	if e.pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(&e.doc)
}
