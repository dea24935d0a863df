package diagfmt

import (
	"strings"
)

// Diagnostic messages and error explanations carry a small Markdown
// subset: `inline code`, **strong**, *emphasis*, [text](url) links and
// fenced code blocks. renderMarkdown converts that subset to terminal
// text. With styling enabled markup becomes ANSI escapes; with styling
// disabled strong/emphasis markers and link URLs are dropped while
// backticks around inline code are kept, so plain output still shows
// what is code and what is prose.
func renderMarkdown(msg string, style Style) string {
	if msg == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(msg) + len(msg)/2)

	lines := strings.Split(msg, "\n")
	for i := 0; i < len(lines); {
		if isFenceLine(lines[i]) {
			// Забор ``` открывает блок кода; метка языка на заборе
			// отбрасывается.
			i++
			start := i
			for i < len(lines) && !isFenceLine(lines[i]) {
				i++
			}
			out.WriteString(renderCodeBlock(lines[start:i], style))
			if i < len(lines) {
				i++ // closing fence
			}
			continue
		}
		out.WriteString(renderInline(lines[i], style))
		out.WriteByte('\n')
		i++
	}

	// Сообщения печатаются внутри готовой разметки, хвостовые переводы
	// строки там не нужны.
	return strings.TrimRight(out.String(), "\n")
}

func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

// renderCodeBlock indents every block line by four spaces and colors
// the whole block as code.
func renderCodeBlock(lines []string, style Style) string {
	if len(lines) == 0 {
		return ""
	}
	var block strings.Builder
	for _, line := range lines {
		block.WriteString("    ")
		block.WriteString(line)
		block.WriteByte('\n')
	}
	return style.paint(style.Code, block.String())
}

// renderInline processes one line of prose. Unterminated markers are
// emitted literally.
func renderInline(text string, style Style) string {
	var out strings.Builder
	i := 0
	for i < len(text) {
		switch {
		case text[i] == '`':
			end := strings.IndexByte(text[i+1:], '`')
			if end < 0 {
				out.WriteByte('`')
				i++
				continue
			}
			code := text[i+1 : i+1+end]
			if style.Enabled {
				out.WriteString(style.paint(style.Code, code))
			} else {
				out.WriteByte('`')
				out.WriteString(code)
				out.WriteByte('`')
			}
			i += end + 2

		case strings.HasPrefix(text[i:], "**"):
			end := strings.Index(text[i+2:], "**")
			if end < 0 {
				out.WriteString("**")
				i += 2
				continue
			}
			out.WriteString(style.bold(renderInline(text[i+2:i+2+end], style)))
			i += end + 4

		case text[i] == '*':
			end := strings.IndexByte(text[i+1:], '*')
			if end < 0 {
				out.WriteByte('*')
				i++
				continue
			}
			out.WriteString(style.italic(renderInline(text[i+1:i+1+end], style)))
			i += end + 2

		case text[i] == '[':
			label, rest, ok := splitLink(text[i:])
			if !ok {
				out.WriteByte('[')
				i++
				continue
			}
			out.WriteString(style.link(renderInline(label, style)))
			i += rest

		default:
			out.WriteByte(text[i])
			i++
		}
	}
	return out.String()
}

// splitLink matches a leading "[label](url)" and returns the label and
// the total number of bytes consumed.
func splitLink(text string) (label string, consumed int, ok bool) {
	close := strings.Index(text, "](")
	if close < 0 {
		return "", 0, false
	}
	end := strings.IndexByte(text[close+2:], ')')
	if end < 0 {
		return "", 0, false
	}
	return text[1:close], close + 2 + end + 1, true
}
