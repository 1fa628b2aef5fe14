package ui

import (
	"errors"
	"math"
	"strings"
	"testing"

	"lintfmt/internal/report"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		value string
		width int
		want  string
	}{
		{"short.json", 20, "short.json"},
		{"reports/very-long-name.json", 10, "reports..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
		{"日本語のレポート.json", 8, "日本..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.value, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
		}
	}
}

func TestApplyEventTracksFiles(t *testing.T) {
	m := NewProgressModel("loading", []string{"a.json", "b.json", "a.json"}, nil).(*progressModel)
	if len(m.items) != 2 {
		t.Fatalf("duplicate paths should collapse, got %d items", len(m.items))
	}

	m.applyEvent(report.Event{File: "a.json", Status: report.StatusReading})
	if got := m.percent(); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("percent after reading = %v, want 0.25", got)
	}

	m.applyEvent(report.Event{File: "a.json", Status: report.StatusDone, Count: 7})
	m.applyEvent(report.Event{File: "b.json", Status: report.StatusError, Err: errors.New("boom")})
	m.applyEvent(report.Event{File: "unknown.json", Status: report.StatusDone, Count: 100})
	// late events for finished files are ignored
	m.applyEvent(report.Event{File: "a.json", Status: report.StatusDone, Count: 7})

	if m.found != 7 || m.failed != 1 {
		t.Fatalf("found=%d failed=%d, want 7 and 1", m.found, m.failed)
	}
	if got := m.percent(); got != 1.0 {
		t.Fatalf("percent = %v, want 1", got)
	}

	view := m.View()
	for _, want := range []string{"loading (7 violations)", "done (7)", "error", "a.json", "b.json"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestViewEmpty(t *testing.T) {
	m := NewProgressModel("loading", nil, nil)
	if got := m.View(); got != "" {
		t.Fatalf("View() = %q, want empty", got)
	}
}
