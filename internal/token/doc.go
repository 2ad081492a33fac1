// Package token defines lexical token kinds and trivia for Python sources.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Newline, Indent and Dedent are synthesized by the lexer and carry
//     zero-width or newline-only spans; Text is empty for Indent/Dedent.
//   - Comments, non-logical newlines and line continuations never appear in
//     the main token stream; they are attached as leading Trivia.
//   - Soft keywords (match, case, type, _) are identifiers. The parser
//     recognises them by position.
package token
