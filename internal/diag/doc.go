// Package diag implements the diagnostics engine shared by all compiler
// phases.
//
// # Purpose
//
//   - Provide the immutable data structures that capture findings: Diagnostic
//     with its Level, ErrorCode, MultiSpan, children and suggestions.
//   - Funnel every report through one thread-safe Context that applies
//     -Werror promotion, deduplication, counting and the max-error gate
//     before anything reaches an output format.
//   - Keep the engine independent of how sources are stored: emitters
//     resolve positions through the SourceLocator interface, implemented by
//     whichever phase produced the spans.
//
// # Scope
//
// Package diag performs no rendering and no IO of its own. The concrete
// ANSI and JSON emitters live in internal/diagfmt; localized message text
// comes from internal/diag/i18n; the lexer's bridge into this engine lives
// in internal/lexer.
//
// # Data model
//
// Span stores byte offsets, not line/column pairs, so producing a
// diagnostic costs nothing beyond the struct itself; positions are resolved
// once, at render time. MultiSpan orders any number of labeled spans and
// distinguishes the primary one (rendered with carets) from secondary
// context. ErrorCode pairs a category with a four-digit number and prints
// as "L1021"; the process-global Registry maps codes to briefs and
// explanation keys for `flint explain`.
//
// # Emitting
//
// Phases build diagnostics with the fluent Builder and finish with Emit or
// EmitError. EmitError returns ErrorGuaranteed, the witness that a failure
// has already been shown to the user; plumbing that token instead of an
// error value keeps "reported" and "unreported" failures distinct in
// signatures.
//
// Context.Emit applies its pipeline in a fixed order. Deduplication hashes
// message, code and primary position, so re-lexing the same broken file in
// one session reports each finding once. MaxErrors suppresses output but
// never counting, which keeps Stats honest for the summary line.
//
// # Consumers
//
//   - internal/diagfmt renders Diagnostics as colored terminal output or
//     a JSON document.
//   - internal/lexer converts its collector's raw errors into Diagnostics
//     and provides the SourceLocator over the source arena.
//   - internal/driver owns the Context for a run and decides exit codes
//     from Stats and ShouldAbort.
package diag
