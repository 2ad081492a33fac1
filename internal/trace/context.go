package trace

import "context"

// SpanContext identifies the innermost emitted span of a context.
type SpanContext struct {
	SpanID uint64
}

// ctxState is stored under a single key: the tracer and the active span
// travel together through the driver.
type ctxState struct {
	tracer Tracer
	span   SpanContext
}

type ctxKey struct{}

func stateOf(ctx context.Context) ctxState {
	if ctx != nil {
		if st, ok := ctx.Value(ctxKey{}).(ctxState); ok {
			return st
		}
	}
	return ctxState{tracer: Nop}
}

// FromContext returns the tracer of ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	return stateOf(ctx).tracer
}

// WithTracer attaches t to ctx, keeping the active span.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	st := stateOf(ctx)
	st.tracer = t
	return context.WithValue(ctx, ctxKey{}, st)
}

// CurrentSpan returns the active span; zero when none was started.
func CurrentSpan(ctx context.Context) SpanContext {
	return stateOf(ctx).span
}

func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	if ctx == nil {
		return nil
	}
	st := stateOf(ctx)
	st.span = sc
	return context.WithValue(ctx, ctxKey{}, st)
}

// StartSpan begins a span under the active span of ctx and returns a context
// in which it is active. A span filtered out by the level leaves the parent
// active, so nested spans still attach to the nearest emitted ancestor.
func StartSpan(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	st := stateOf(ctx)
	span := Begin(st.tracer, scope, name, st.span.SpanID)
	if span.ID() == 0 {
		return ctx, span
	}
	return WithSpanContext(ctx, SpanContext{SpanID: span.ID()}), span
}
