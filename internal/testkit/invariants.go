// Package testkit holds shared checks for tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"lintfmt/internal/lint"
	"lintfmt/internal/lintfmt"
)

// CheckResultInvariants verifies a grouped result against the violations it
// was built from:
// 1) every input violation lands in exactly one group keyed by its path
// 2) group paths are unique and appear in ascending order
// 3) violations inside a group are in canonical order
// 4) per-group counts sum to the totals
func CheckResultInvariants(input []lint.Violation, res *lintfmt.Result) error {
	if res == nil {
		return fmt.Errorf("nil result")
	}

	want := make(map[lint.Violation]int, len(input))
	for _, v := range input {
		want[v]++
	}

	var (
		sum      lintfmt.Counts
		seen     = make(map[string]bool, res.Len())
		prevPath string
		total    int
	)
	for i, g := range res.Groups() {
		if seen[g.Path] {
			return fmt.Errorf("duplicate group %q", g.Path)
		}
		seen[g.Path] = true
		if i > 0 && g.Path < prevPath {
			return fmt.Errorf("group %q follows %q", g.Path, prevPath)
		}
		prevPath = g.Path

		vs := g.Violations()
		if len(vs) == 0 {
			return fmt.Errorf("empty group %q", g.Path)
		}
		for j, v := range vs {
			if v.Path != g.Path {
				return fmt.Errorf("violation for %q stored under %q", v.Path, g.Path)
			}
			if j > 0 && lint.Less(v, vs[j-1]) {
				return fmt.Errorf("group %q: violation %d out of order", g.Path, j)
			}
			if want[v] == 0 {
				return fmt.Errorf("group %q: unexpected violation %+v", g.Path, v)
			}
			want[v]--
			total++
		}

		c := g.Counts()
		sum.Warnings += c.Warnings
		sum.Errors += c.Errors
		sum.Fixable += c.Fixable
	}

	if total != len(input) {
		return fmt.Errorf("grouped %d violations, input has %d", total, len(input))
	}
	if got := res.Totals(); got != sum {
		return fmt.Errorf("totals %+v differ from group sum %+v", got, sum)
	}
	return nil
}
