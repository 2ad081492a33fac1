// Package diag defines the diagnostic model shared by the lexer, the parser
// and the style rules.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with a stable string
//     form. Style rules render as S001…S012, front-end errors as LEX/SYN/IO.
//   - Line – 1-based line the finding is reported on.
//   - Message – human oriented text without the code or the line.
//   - Primary span – the source.Span pointing to the issue, when known.
//   - Notes – optional secondary spans/messages for additional context.
//
// Style rules know their line directly. Front-end phases only know spans; a
// BagReporter bound to a source.File fills Line from the span.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. The parser
// builds diagnostics with ReportError(...).WithNote(...).Emit(); the lexer
// calls Reporter.Report directly. BagReporter aggregates into a Bag, which
// supports ordering by line and deduplication by (code, line, message).
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt, orchestration in internal/driver.
package diag
