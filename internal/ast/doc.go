// Package ast holds the syntax tree of a parsed Python module.
//
// Nodes live in arenas owned by a Builder and are addressed by 1-based IDs;
// the zero ID means "absent". Statements carry a kind-specific payload stored
// in a per-kind arena (see Stmts). Expressions share a single generic node
// shape (see Expr) since the style rules only inspect their kind and line.
//
// Walk visits statements breadth-first, level by level. The bodies of except
// handlers and match cases sit one level below their try/match statement.
package ast
