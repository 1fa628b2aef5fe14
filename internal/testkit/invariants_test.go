package testkit

import (
	"testing"

	"lintfmt/internal/lint"
	"lintfmt/internal/lintfmt"
)

func TestCheckResultInvariants(t *testing.T) {
	input := []lint.Violation{
		lint.NewWarning("semi", "b.ts", lint.Position{Line: 3}, "Missing semicolon").WithFix(),
		lint.NewError("no-any", "a.ts", lint.Position{Line: 1, Col: 4}, "Unexpected any"),
		lint.NewError("no-any", "a.ts", lint.Position{Line: 0, Col: 2}, "Unexpected any"),
		lint.NewError("no-any", "a.ts", lint.Position{Line: 0, Col: 2}, "Unexpected any"),
	}
	res, err := lintfmt.Group(lint.Sort(input))
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if err := CheckResultInvariants(input, res); err != nil {
		t.Fatalf("unexpected violation of invariants: %v", err)
	}

	if err := CheckResultInvariants(input[:2], res); err == nil {
		t.Fatal("expected mismatch against a shorter input")
	}
	if err := CheckResultInvariants(input, nil); err == nil {
		t.Fatal("expected error for nil result")
	}
}

func TestCheckResultInvariantsDetectsUnsortedInput(t *testing.T) {
	input := []lint.Violation{
		lint.NewError("r", "b.ts", lint.Position{}, "m"),
		lint.NewError("r", "a.ts", lint.Position{}, "m"),
	}
	// grouping without sorting first breaks the order invariant
	res, err := lintfmt.Group(input)
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	if err := CheckResultInvariants(input, res); err == nil {
		t.Fatal("expected order violation")
	}
}
