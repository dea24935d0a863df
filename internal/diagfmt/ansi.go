package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"flint/internal/diag"
)

// Renderer turns diagnostics into rustc-style text:
//
//	error[L1012]: unterminated string literal
//	  --> main.fl:3:9
//	   |
//	 3 |     let s = "oops
//	   |             ^^^^^ string starts here
//	   |
//	  = help: add a closing `"`
//
// The renderer is stateless and safe to share.
type Renderer struct {
	style Style
}

// NewRenderer builds a renderer with the given style.
func NewRenderer(style Style) Renderer {
	return Renderer{style: style}
}

// RenderMessage converts the Markdown subset of a diagnostic message
// to terminal text. Trailing newlines are stripped.
func (r Renderer) RenderMessage(msg string) string {
	return renderMarkdown(msg, r.style)
}

// RenderDiagnostic renders one diagnostic: the heading line, the
// location arrow with a source snippet when the locator can resolve
// the primary span, then child notes and suggestions.
func (r Renderer) RenderDiagnostic(d *diag.Diagnostic, locator diag.SourceLocator) string {
	var out strings.Builder

	levelColor := r.style.levelColor(d.Level)

	// Заголовок: error[L1001]: message
	out.WriteString(r.style.bold(r.style.paint(levelColor, d.Level.String())))
	if d.HasCode() {
		out.WriteString(r.style.bold(r.style.paint(levelColor, "["+d.Code.String()+"]")))
	}
	out.WriteString(r.style.bold(": "))
	out.WriteString(r.RenderMessage(d.Message))
	out.WriteByte('\n')

	if primary, ok := d.Spans.Primary(); ok && locator != nil {
		lc := locator.LineColumn(primary.Span.File, primary.Span.Start)
		fmt.Fprintf(&out, "  %s %s:%d:%d\n",
			r.style.paint(r.style.LineNum, "-->"),
			locator.Filename(primary.Span), lc.Line, lc.Column)
		out.WriteString(r.renderSnippet(d.Level, primary, locator))
	}

	for _, child := range d.Children {
		out.WriteString("  = ")
		out.WriteString(r.style.bold(r.style.paint(r.style.levelColor(child.Level), child.Level.String())))
		out.WriteString(": ")
		out.WriteString(r.RenderMessage(child.Message))
		out.WriteByte('\n')
	}

	for _, sug := range d.Suggestions {
		out.WriteString("  = ")
		out.WriteString(r.style.bold(r.style.paint(r.style.Help, "help")))
		out.WriteString(": ")
		out.WriteString(r.RenderMessage(sug.Message))
		if sug.Replacement != "" {
			out.WriteString(": ")
			out.WriteString(r.style.paint(r.style.Code, "`"+sug.Replacement+"`"))
		}
		out.WriteByte('\n')
	}

	return out.String()
}

// renderSnippet draws the gutter, the offending source line and the
// caret annotation underneath the primary span. Snippets are single
// line: carets stop at the first line break even when the span spans
// further.
func (r Renderer) renderSnippet(level diag.Level, primary diag.LabeledSpan, locator diag.SourceLocator) string {
	lc := locator.LineColumn(primary.Span.File, primary.Span.Start)
	if !lc.IsValid() {
		return ""
	}
	line := locator.LineContent(primary.Span.File, lc.Line)
	if line == "" {
		return ""
	}

	num := strconv.FormatUint(uint64(lc.Line), 10)
	margin := strings.Repeat(" ", len(num))
	bar := r.style.paint(r.style.LineNum, "|")

	var out strings.Builder
	fmt.Fprintf(&out, " %s %s\n", margin, bar)
	fmt.Fprintf(&out, " %s %s %s\n", r.style.paint(r.style.LineNum, num), bar, line)

	// Отступ каретки считаем в экранных колонках, а не в байтах,
	// иначе CJK и прочие широкие символы сбивают подчёркивание.
	col := int(lc.Column)
	if col > 0 {
		col--
	}
	pad := runewidth.StringWidth(runePrefix(line, col))

	spanText := locator.SourceSlice(primary.Span)
	if nl := strings.IndexAny(spanText, "\r\n"); nl >= 0 {
		spanText = spanText[:nl]
	}
	carets := runewidth.StringWidth(spanText)
	if carets < 1 {
		carets = 1
	}

	levelColor := r.style.levelColor(level)
	fmt.Fprintf(&out, " %s %s %s%s", margin, bar,
		strings.Repeat(" ", pad),
		r.style.paint(levelColor, strings.Repeat("^", carets)))
	if primary.Label != "" {
		out.WriteByte(' ')
		out.WriteString(r.style.paint(levelColor, primary.Label))
	}
	out.WriteByte('\n')

	return out.String()
}

// runePrefix returns the prefix of s holding at most n runes.
func runePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	seen := 0
	for i := range s {
		if seen == n {
			return s[:i]
		}
		seen++
	}
	return s
}

// TextEmitter implements diag.Emitter with human-readable output,
// normally bound to stderr.
type TextEmitter struct {
	w io.Writer
	r Renderer
}

// NewTextEmitter builds a text emitter writing to w.
func NewTextEmitter(w io.Writer, style Style) *TextEmitter {
	return &TextEmitter{w: w, r: NewRenderer(style)}
}

// Emit renders one diagnostic.
func (e *TextEmitter) Emit(d *diag.Diagnostic, locator diag.SourceLocator) {
	fmt.Fprint(e.w, e.r.RenderDiagnostic(d, locator))
}

// EmitSummary prints the closing totals: the "aborting due to" line
// when errors were reported, the warnings-only line otherwise, and a
// pointer to `flint explain` for the first error code seen. Nothing is
// printed when the run was clean.
func (e *TextEmitter) EmitSummary(stats diag.Stats) {
	if stats.Errors == 0 && stats.Warnings == 0 {
		return
	}
	style := e.r.style
	fmt.Fprintln(e.w)

	if stats.Errors > 0 {
		heading := style.paint(style.Error, "error")
		if stats.Errors == 1 {
			fmt.Fprintf(e.w, "%s: aborting due to 1 previous error", heading)
		} else {
			fmt.Fprintf(e.w, "%s: aborting due to %d previous errors", heading, stats.Errors)
		}
		if stats.Warnings > 0 {
			fmt.Fprintf(e.w, "; %d warning%s emitted", stats.Warnings, pluralS(stats.Warnings))
		}
		fmt.Fprintln(e.w)

		if len(stats.UniqueCodes) > 0 {
			fmt.Fprintf(e.w, "\nFor more information about this error, try `flint explain %s`.\n",
				stats.UniqueCodes[0])
		}
		return
	}

	fmt.Fprintf(e.w, "%s: %d warning%s emitted\n",
		style.paint(style.Warning, "warning"), stats.Warnings, pluralS(stats.Warnings))
}

// Flush forwards to the writer when it buffers.
func (e *TextEmitter) Flush() error {
	if f, ok := e.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func pluralS(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
