package diag

// Builder assembles a Diagnostic through chained calls and hands it to a
// Context exactly once. The zero value is not useful; start from one of the
// constructors below.
//
//	guar := diag.NewError(code, "unterminated string").
//		Span(span).
//		Help("add a closing `\"`").
//		EmitError(ctx)
type Builder struct {
	diag    Diagnostic
	emitted bool
}

// NewBuilder starts a diagnostic at the given level.
func NewBuilder(level Level, message string) *Builder {
	return &Builder{diag: Diagnostic{Level: level, Message: message}}
}

// NewError starts an error diagnostic carrying a code.
func NewError(code ErrorCode, message string) *Builder {
	return &Builder{diag: Diagnostic{Level: LevelError, Message: message, Code: code}}
}

// NewWarning starts a warning diagnostic.
func NewWarning(message string) *Builder {
	return NewBuilder(LevelWarning, message)
}

// NewNote starts a standalone note.
func NewNote(message string) *Builder {
	return NewBuilder(LevelNote, message)
}

// NewHelp starts a standalone help message.
func NewHelp(message string) *Builder {
	return NewBuilder(LevelHelp, message)
}

// Code attaches an error code.
func (b *Builder) Code(code ErrorCode) *Builder {
	b.diag.Code = code
	return b
}

// Span attaches an unlabeled primary span.
func (b *Builder) Span(span Span) *Builder {
	b.diag.Spans.AddPrimary(span, "")
	return b
}

// SpanLabel attaches a labeled primary span.
func (b *Builder) SpanLabel(span Span, label string) *Builder {
	b.diag.Spans.AddPrimary(span, label)
	return b
}

// SecondarySpan attaches a labeled secondary span.
func (b *Builder) SecondarySpan(span Span, label string) *Builder {
	b.diag.Spans.AddSecondary(span, label)
	return b
}

// Note appends a note child.
func (b *Builder) Note(message string) *Builder {
	b.diag.Children = append(b.diag.Children, SubDiagnostic{Level: LevelNote, Message: message})
	return b
}

// NoteAt appends a note child pointing at a span.
func (b *Builder) NoteAt(span Span, message string) *Builder {
	b.diag.Children = append(b.diag.Children, SubDiagnostic{Level: LevelNote, Message: message, Span: span})
	return b
}

// Help appends a help child.
func (b *Builder) Help(message string) *Builder {
	b.diag.Children = append(b.diag.Children, SubDiagnostic{Level: LevelHelp, Message: message})
	return b
}

// HelpAt appends a help child pointing at a span.
func (b *Builder) HelpAt(span Span, message string) *Builder {
	b.diag.Children = append(b.diag.Children, SubDiagnostic{Level: LevelHelp, Message: message, Span: span})
	return b
}

// Suggest appends a structured replacement suggestion.
func (b *Builder) Suggest(span Span, replacement, message string, applicability Applicability) *Builder {
	b.diag.Suggestions = append(b.diag.Suggestions, Suggestion{
		Span:          span,
		Replacement:   replacement,
		Message:       message,
		Applicability: applicability,
	})
	return b
}

// Build returns the assembled diagnostic without emitting it.
func (b *Builder) Build() Diagnostic {
	return b.diag
}

// Emit sends the diagnostic to the context, at most once per builder.
func (b *Builder) Emit(ctx *Context) {
	if b.emitted {
		return
	}
	b.emitted = true
	ctx.Emit(b.diag)
}

// EmitError sends the diagnostic, promoting it to at least LevelError, and
// returns the resulting guarantee. Repeated calls keep returning a
// guarantee but emit only once.
func (b *Builder) EmitError(ctx *Context) ErrorGuaranteed {
	if b.emitted {
		return ErrorGuaranteed{}
	}
	b.emitted = true
	return ctx.EmitError(b.diag)
}
