// Package token defines lexical token kinds and trivia for the Flint
// compiler front end.
//
// Invariants:
//   - A Token never owns text. Value and raw windows are (offset, length)
//     pairs into the source arena; resolving them requires the arena that
//     produced the token.
//   - Value and raw literal differ only for string-like kinds: the value
//     excludes delimiters, the raw literal is the token as written.
//   - Lengths are uint16. The lexer reports tokens longer than 65535
//     bytes and clamps the stored length; the error span keeps the real
//     extent.
//   - Kind String() values ("KW_LET", "LIT_INT", ...) are a wire format
//     shared by the text and JSON token dumps; renaming them breaks
//     downstream tooling.
//   - Expansion handles are reserved for the macro expander and are
//     always zero today.
package token
