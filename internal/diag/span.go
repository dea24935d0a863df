package diag

import "fmt"

// Span is a half-open byte range [Start, End) inside one source file.
// It stores offsets rather than line/column pairs so producers never pay
// for position resolution; emitters resolve through a SourceLocator when
// they actually render. File is an opaque identifier supplied by whoever
// implements the locator; zero means "no file".
type Span struct {
	File  uint32
	Start uint32
	End   uint32
}

// NewSpan builds a span over [start, end) in the given file.
func NewSpan(file, start, end uint32) Span {
	return Span{File: file, Start: start, End: end}
}

// IsValid reports whether the span points into a real file.
func (s Span) IsValid() bool {
	return s.File != 0
}

// Len returns the byte length of the span.
func (s Span) Len() uint32 {
	if s.End > s.Start {
		return s.End - s.Start
	}
	return 0
}

// Merge returns the covering union of two spans.
// Невалидный аргумент не расширяет диапазон; разные файлы не сливаются.
func (s Span) Merge(other Span) Span {
	if !s.IsValid() {
		return other
	}
	if !other.IsValid() || s.File != other.File {
		return s
	}
	merged := s
	if other.Start < merged.Start {
		merged.Start = other.Start
	}
	if other.End > merged.End {
		merged.End = other.End
	}
	return merged
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d..%d", s.File, s.Start, s.End)
}

// LabeledSpan pairs a span with an annotation label. Primary spans get the
// caret line in rendered output; secondary spans are supporting context.
type LabeledSpan struct {
	Span    Span
	Label   string
	Primary bool
}

// MultiSpan holds the ordered set of labeled spans attached to one
// diagnostic. Insertion order is preserved; Primary returns the first span
// flagged primary regardless of how many carry the flag.
type MultiSpan struct {
	spans []LabeledSpan
}

// AddPrimary appends a primary labeled span.
func (m *MultiSpan) AddPrimary(span Span, label string) {
	m.spans = append(m.spans, LabeledSpan{Span: span, Label: label, Primary: true})
}

// AddSecondary appends a secondary labeled span.
func (m *MultiSpan) AddSecondary(span Span, label string) {
	m.spans = append(m.spans, LabeledSpan{Span: span, Label: label, Primary: false})
}

// Primary returns the first primary span, if any.
func (m *MultiSpan) Primary() (LabeledSpan, bool) {
	for _, ls := range m.spans {
		if ls.Primary {
			return ls, true
		}
	}
	return LabeledSpan{}, false
}

// Secondaries returns all secondary spans in insertion order.
func (m *MultiSpan) Secondaries() []LabeledSpan {
	var out []LabeledSpan
	for _, ls := range m.spans {
		if !ls.Primary {
			out = append(out, ls)
		}
	}
	return out
}

// Spans returns every labeled span in insertion order.
// Возвращаемый срез указывает на внутренний массив, не модифицировать.
func (m *MultiSpan) Spans() []LabeledSpan {
	return m.spans
}

// IsEmpty reports whether no spans were attached.
func (m *MultiSpan) IsEmpty() bool {
	return len(m.spans) == 0
}

// Len returns the number of attached spans.
func (m *MultiSpan) Len() int {
	return len(m.spans)
}
