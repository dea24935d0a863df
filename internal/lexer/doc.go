// Package lexer turns Flint source text into tokens.
//
// # Architecture
//
// The Lexer facade owns a source.Reader cursor and dispatches each
// position to one of five scanning strategies, tried in a fixed order:
// strings, identifiers/keywords, numbers, comments (in trivia paths),
// operators/delimiters. The order matters — 'r' and 't' may open a
// string literal, so the string scanner looks before the identifier
// scanner does. Whatever no strategy claims becomes a one-byte Unknown
// token plus an InvalidCharacter error, which guarantees forward
// progress on arbitrary input.
//
// Two modes share the same strategies. The fast mode skips whitespace
// and comments entirely; the trivia-preserving mode attaches them to
// neighboring tokens so formatters and IDE tooling can reconstruct the
// file byte for byte.
//
// # Errors
//
// Scanners never abort. Malformed input is reported into the Collector
// as an Error with a stable L-prefixed code, and a best-effort token is
// still produced; every property the parser relies on (positions,
// ordering, termination) holds on broken files too. The bridge in this
// package converts collected errors into diag.Diagnostic values with
// translated labels and help text, and adapts the source arena to the
// engine's SourceLocator.
package lexer
