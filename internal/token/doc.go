// Package token defines lexical token kinds and trivia for the Hy reader.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and line comments never appear in the main token stream;
//     they are carried as leading Trivia on the next token (EOF included).
//   - Reader-macro prefixes (', `, ~, ~@, #*, #**, #^, #tag) are tokens of
//     their own; the parser pairs them with the following form.
//   - Word classification is purely lexical: ":x" is a keyword literal,
//     a numeric shape is a number, everything else is a symbol. Special
//     form names are recognized by the layout table, not the lexer.
package token
