package diag

import (
	"fmt"
	"sort"
	"strings"
)

type shortEntry struct {
	Level   string
	Code    string
	Path    string
	Line    uint32
	Column  uint32
	Message string
}

// FormatShortDiagnostics renders diagnostics into a stable
// single-line-per-entry representation suitable for golden files and test
// assertions. Entries are sorted deterministically; diagnostics without a
// resolvable primary span render without the location field. Children are
// included when includeChildren is set.
func FormatShortDiagnostics(diags []Diagnostic, locator SourceLocator, includeChildren bool) string {
	if len(diags) == 0 {
		return ""
	}

	rendered := make([]shortEntry, 0, len(diags))
	for i := range diags {
		rendered = appendShortEntries(rendered, &diags[i], locator, includeChildren)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Level != dj.Level {
			return di.Level < dj.Level
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, e := range rendered {
		if e.Path != "" {
			fmt.Fprintf(&b, "%s %s %s:%d:%d %s", e.Level, e.Code, e.Path, e.Line, e.Column, e.Message)
		} else {
			fmt.Fprintf(&b, "%s %s %s", e.Level, e.Code, e.Message)
		}
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendShortEntries(out []shortEntry, d *Diagnostic, locator SourceLocator, includeChildren bool) []shortEntry {
	code := ""
	if d.HasCode() {
		code = d.Code.String()
	}

	entry := shortEntry{
		Level:   d.Level.String(),
		Code:    code,
		Message: sanitizeMessage(d.Message),
	}
	if span, ok := d.PrimarySpan(); ok && locator != nil {
		if lc := locator.LineColumn(span.File, span.Start); lc.IsValid() {
			entry.Path = locator.Filename(span)
			entry.Line = lc.Line
			entry.Column = lc.Column
		}
	}
	out = append(out, entry)

	// Дети без позиции в короткий формат не попадают.
	if includeChildren && locator != nil {
		for _, child := range d.Children {
			if !child.Span.IsValid() {
				continue
			}
			lc := locator.LineColumn(child.Span.File, child.Span.Start)
			if !lc.IsValid() {
				continue
			}
			out = append(out, shortEntry{
				Level:   child.Level.String(),
				Code:    code,
				Path:    locator.Filename(child.Span),
				Line:    lc.Line,
				Column:  lc.Column,
				Message: sanitizeMessage(child.Message),
			})
		}
	}

	return out
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
