// Package trace provides structured event tracing for pystyle runs.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	pystyle --trace=- --trace-level=detail src/
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Reserved for failures
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-file events
//   - LevelDebug: Everything
//
// # Scopes
//
//   - ScopeDriver: one span per run
//   - ScopePass: rule families (lines, blank, tree) and the parse step
//   - ScopeModule: one span per checked file
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
//
// StartSpan takes the tracer and the parent from ctx:
//
//	ctx, span := trace.StartSpan(ctx, trace.ScopeModule, "file:"+path)
//	defer span.End("")
package trace
