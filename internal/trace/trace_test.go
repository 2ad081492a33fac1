package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeModule, false},
		{LevelDetail, ScopeModule, true},
		{LevelDebug, ScopeModule, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DETAIL")
	if err != nil || lvl != LevelDetail {
		t.Fatalf("ParseLevel(DETAIL) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)

	root := Begin(tr, ScopeDriver, "check", 0)
	file := Begin(tr, ScopeModule, "file:a.py", root.ID())
	file.WithExtra("violations", "3").End("")
	root.End("1 file")

	out := buf.String()
	for _, want := range []string{"→ check", "→ file:a.py", "← file:a.py {violations=3}", "← check (1 file)"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in trace output:\n%s", want, out)
		}
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)

	Begin(tr, ScopePass, "lines", 7).End("")
	// ScopeModule фильтруется на уровне phase
	Begin(tr, ScopeModule, "file:a.py", 0).End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 events, got %d:\n%s", len(lines), buf.String())
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ev["kind"] != "begin" || ev["scope"] != "pass" || ev["name"] != "lines" {
		t.Errorf("unexpected event %v", ev)
	}
	if ev["parent_id"] != float64(7) {
		t.Errorf("expected parent 7, got %v", ev["parent_id"])
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("expected Nop tracer by default")
	}
	tr := NewStreamTracer(&bytes.Buffer{}, LevelDebug, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Error("tracer was not propagated")
	}
	ctx = WithSpanContext(ctx, SpanContext{SpanID: 42})
	if CurrentSpan(ctx).SpanID != 42 {
		t.Error("span context was not propagated")
	}
	// замена трассировщика не сбрасывает активный span
	ctx = WithTracer(ctx, Nop)
	if CurrentSpan(ctx).SpanID != 42 || FromContext(ctx) != Nop {
		t.Error("WithTracer lost the active span")
	}
}

func TestStartSpanNesting(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	ctx := WithTracer(context.Background(), tr)

	driverCtx, driverSpan := StartSpan(ctx, ScopeDriver, "check")
	if driverSpan.ID() == 0 || CurrentSpan(driverCtx).SpanID != driverSpan.ID() {
		t.Fatalf("driver span is not active: %d", CurrentSpan(driverCtx).SpanID)
	}
	if CurrentSpan(ctx).SpanID != 0 {
		t.Error("parent context must stay untouched")
	}

	// скоуп module на уровне phase не пишется: родитель остаётся активным
	skipCtx, skipped := StartSpan(driverCtx, ScopeModule, "noise")
	if skipped.ID() != 0 || CurrentSpan(skipCtx).SpanID != driverSpan.ID() {
		t.Errorf("filtered span replaced the active one: %d", CurrentSpan(skipCtx).SpanID)
	}
	driverSpan.End("")
}

func TestNopSpan(t *testing.T) {
	span := Begin(Nop, ScopeDriver, "x", 0)
	if span.ID() != 0 {
		t.Errorf("nop span must have no id, got %d", span.ID())
	}
	if d := span.End(""); d != 0 {
		t.Errorf("nop span must not measure, got %v", d)
	}
}
