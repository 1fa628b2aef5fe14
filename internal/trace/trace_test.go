package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", s, err)
		}
		if l.String() != s {
			t.Errorf("round trip %q -> %q", s, l.String())
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopeStage, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeDebug, false},
		{LevelDebug, ScopeDebug, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	span := Begin(tr, ScopeStage, "format", 0)
	Begin(tr, ScopeFile, "file:a.json", span.ID()).End("")
	span.WithExtra("violations", "3").WithExtra("files", "2").End("ok")

	out := buf.String()
	if !strings.Contains(out, "→ format") {
		t.Errorf("missing begin event:\n%s", out)
	}
	if !strings.Contains(out, "← format (ok) {files=2, violations=3}") {
		t.Errorf("missing end event with sorted extras:\n%s", out)
	}
	if strings.Contains(out, "a.json") {
		t.Errorf("file scope must be filtered at phase level:\n%s", out)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeFile, "decode", "a.json")

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid ndjson %q: %v", buf.String(), err)
	}
	if ev["kind"] != "point" || ev["name"] != "decode" || ev["detail"] != "a.json" {
		t.Errorf("unexpected event: %v", ev)
	}
}

func TestErrorEventsPassErrorLevel(t *testing.T) {
	ring := NewRingTracer(4, LevelError)
	Begin(ring, ScopeDriver, "format", 0).End("")
	Error(ring, "load", errors.New("boom"))

	events := ring.Snapshot()
	if len(events) != 1 || events[0].Kind != KindError || events[0].Detail != "boom" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestRingTracerWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(ring, ScopeDebug, name, "")
	}
	events := ring.Snapshot()
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	if events[0].Name != "c" || events[2].Name != "e" {
		t.Errorf("unexpected order: %s..%s", events[0].Name, events[2].Name)
	}

	var buf bytes.Buffer
	if n, err := ring.Dump(&buf, FormatText); err != nil || n != 3 {
		t.Fatalf("Dump = %d, %v", n, err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump:\n%s", buf.String())
	}
}

func TestMultiTracerFansOut(t *testing.T) {
	a := NewRingTracer(8, LevelDebug)
	b := NewRingTracer(8, LevelDebug)
	m := NewMultiTracer(LevelDebug, a, b)
	Point(m, ScopeFile, "x", "")

	ea, eb := a.Snapshot(), b.Snapshot()
	if len(ea) != 1 || len(eb) != 1 || ea[0].Seq != eb[0].Seq {
		t.Fatalf("events not fanned out consistently: %+v / %+v", ea, eb)
	}
}

func TestRingOf(t *testing.T) {
	ring := NewRingTracer(4, LevelPhase)
	stream := NewStreamTracer(&bytes.Buffer{}, LevelPhase, FormatText)

	if got, ok := RingOf(ring); !ok || got != ring {
		t.Error("RingOf(ring) should return the ring itself")
	}
	if got, ok := RingOf(NewMultiTracer(LevelPhase, stream, ring)); !ok || got != ring {
		t.Error("RingOf(multi) should find the nested ring")
	}
	if _, ok := RingOf(stream); ok {
		t.Error("stream tracer has no ring")
	}
	if _, ok := RingOf(Nop); ok {
		t.Error("nop tracer has no ring")
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Enabled() {
		t.Error("off tracer must be disabled")
	}
	if span := Begin(tr, ScopeDriver, "x", 0); span.ID() != 0 {
		t.Error("nop span must have zero ID")
	}
}

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	Point(tr, ScopeFile, "decoded", "")
	if !strings.Contains(buf.String(), "decoded") {
		t.Errorf("stream side missing event: %q", buf.String())
	}
	if _, err := New(Config{Level: LevelDetail, Mode: StorageMode(9)}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("empty context must yield Nop")
	}
	ring := NewRingTracer(4, LevelDebug)
	ctx := WithTracer(context.Background(), ring)
	if FromContext(ctx) != Tracer(ring) {
		t.Error("tracer not propagated")
	}

	span := Begin(ring, ScopeStage, "load", 0)
	ctx = WithSpan(ctx, span)
	if CurrentSpan(ctx) != span.ID() {
		t.Errorf("CurrentSpan = %d, want %d", CurrentSpan(ctx), span.ID())
	}
}
