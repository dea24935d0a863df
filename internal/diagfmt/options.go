package diagfmt

import (
	"github.com/fatih/color"

	"flint/internal/diag"
)

// Style selects the colors used by the human-readable renderer.
// The zero value renders plain text; use DefaultStyle for the usual
// terminal palette.
type Style struct {
	// Enabled turns ANSI escapes on. When false every paint helper
	// returns its input unchanged, so the same renderer produces
	// plain text.
	Enabled bool

	Error   *color.Color // заголовки error/fatal/ICE
	Warning *color.Color
	Note    *color.Color
	Help    *color.Color
	Code    *color.Color // inline `code` в сообщениях
	LineNum *color.Color // номера строк, стрелки и рамка сниппета
}

// forceColor builds a color that emits escapes even when stdout is not
// a terminal. TTY detection happens once in the CLI; by the time a
// Style exists the decision is already made.
func forceColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var (
	boldStyle      = forceColor(color.Bold)
	italicStyle    = forceColor(color.Italic)
	linkStyle      = forceColor(color.FgBlue, color.Underline)
	errorHeading   = forceColor(color.FgHiRed)
	warningHeading = forceColor(color.FgHiYellow)
)

// DefaultStyle returns the standard terminal palette: bright red
// errors, bright yellow warnings, bright cyan notes, bright green
// help, cyan inline code, blue line numbers.
func DefaultStyle() Style {
	return Style{
		Enabled: true,
		Error:   errorHeading,
		Warning: warningHeading,
		Note:    forceColor(color.FgHiCyan),
		Help:    forceColor(color.FgHiGreen),
		Code:    forceColor(color.FgCyan),
		LineNum: forceColor(color.FgBlue),
	}
}

// PlainStyle returns a style with colors disabled.
func PlainStyle() Style {
	return Style{Enabled: false}
}

// StyleFor returns DefaultStyle or PlainStyle depending on enabled.
func StyleFor(enabled bool) Style {
	if enabled {
		return DefaultStyle()
	}
	return PlainStyle()
}

// paint wraps text in the given color when styling is enabled.
func (s Style) paint(c *color.Color, text string) string {
	if !s.Enabled || c == nil {
		return text
	}
	return c.Sprint(text)
}

// bold wraps text in ANSI bold when styling is enabled.
func (s Style) bold(text string) string {
	if !s.Enabled {
		return text
	}
	return boldStyle.Sprint(text)
}

// italic wraps text in ANSI italic when styling is enabled.
func (s Style) italic(text string) string {
	if !s.Enabled {
		return text
	}
	return italicStyle.Sprint(text)
}

// link renders hyperlink text as blue underlined when styling is
// enabled; the URL itself is dropped either way.
func (s Style) link(text string) string {
	if !s.Enabled {
		return text
	}
	return linkStyle.Sprint(text)
}

// levelColor maps a diagnostic level to its heading color. Error,
// Fatal and Bug share the error color.
func (s Style) levelColor(level diag.Level) *color.Color {
	switch level {
	case diag.LevelNote:
		return s.Note
	case diag.LevelHelp:
		return s.Help
	case diag.LevelWarning:
		return s.Warning
	case diag.LevelError, diag.LevelFatal, diag.LevelBug:
		return s.Error
	default:
		return nil
	}
}
