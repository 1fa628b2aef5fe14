package lintfmt

import (
	"errors"
	"fmt"

	"lintfmt/internal/lint"
)

// ErrUnknownSeverity is returned when a violation carries a severity outside
// the closed warning/error set.
var ErrUnknownSeverity = errors.New("unknown severity")

// Counts aggregates violations by severity and fixability.
type Counts struct {
	Warnings int
	Errors   int
	Fixable  int
}

// Issues returns the number of counted violations.
func (c Counts) Issues() int {
	return c.Warnings + c.Errors
}

func (c Counts) plus(o Counts) Counts {
	return Counts{
		Warnings: c.Warnings + o.Warnings,
		Errors:   c.Errors + o.Errors,
		Fixable:  c.Fixable + o.Fixable,
	}
}

// FileGroup holds every violation reported for one path, in canonical order.
type FileGroup struct {
	Path       string
	violations []lint.Violation
}

// Violations returns the group's violations.
// The slice must not be modified.
func (g *FileGroup) Violations() []lint.Violation {
	return g.violations
}

// Len returns the number of violations in the group.
func (g *FileGroup) Len() int {
	return len(g.violations)
}

// Counts computes the group's counts from its violations.
func (g *FileGroup) Counts() Counts {
	var c Counts
	for i := range g.violations {
		v := &g.violations[i]
		switch v.Severity {
		case lint.SevWarning:
			c.Warnings++
		case lint.SevError:
			c.Errors++
		default:
			// Group rejects these, a FileGroup can't hold one.
			panic(fmt.Sprintf("lintfmt: unexpected severity %d in group %q", v.Severity, g.Path))
		}
		if v.Fixable {
			c.Fixable++
		}
	}
	return c
}

// Result is the ordered mapping from path to FileGroup.
// Iteration order is the first-seen order of paths in the grouped input.
type Result struct {
	order  []string
	groups map[string]*FileGroup
}

func newResult(sizeHint int) *Result {
	return &Result{
		order:  make([]string, 0, sizeHint),
		groups: make(map[string]*FileGroup, sizeHint),
	}
}

// groupFor returns the group for path, creating it on first use.
func (r *Result) groupFor(path string) *FileGroup {
	if g, ok := r.groups[path]; ok {
		return g
	}
	g := &FileGroup{Path: path}
	r.groups[path] = g
	r.order = append(r.order, path)
	return g
}

// Len returns the number of groups.
func (r *Result) Len() int {
	return len(r.order)
}

// Groups returns the groups in iteration order.
func (r *Result) Groups() []*FileGroup {
	out := make([]*FileGroup, len(r.order))
	for i, path := range r.order {
		out[i] = r.groups[path]
	}
	return out
}

// Lookup returns the group for path.
func (r *Result) Lookup(path string) (*FileGroup, bool) {
	g, ok := r.groups[path]
	return g, ok
}

// Totals sums the counts of every group.
func (r *Result) Totals() Counts {
	var total Counts
	for _, path := range r.order {
		total = total.plus(r.groups[path].Counts())
	}
	return total
}

// Group buckets sorted violations by path in a single pass.
// It fails on the first violation whose severity is not warning or error.
func Group(sorted []lint.Violation) (*Result, error) {
	res := newResult(0)
	for _, v := range sorted {
		if !v.Severity.Valid() {
			return nil, fmt.Errorf("%w %s for %s:%d:%d (rule %q)",
				ErrUnknownSeverity, v.Severity, v.Path,
				uint64(v.Start.Line)+1, uint64(v.Start.Col)+1, v.Rule)
		}
		g := res.groupFor(v.Path)
		g.violations = append(g.violations, v)
	}
	return res, nil
}
