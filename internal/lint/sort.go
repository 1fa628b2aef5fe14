package lint

import "sort"

// Sort returns a copy of vs ordered by path, then line, then column.
// The sort is stable: violations sharing all three keys keep their input
// order. vs itself is left untouched.
func Sort(vs []Violation) []Violation {
	sorted := make([]Violation, len(vs))
	copy(sorted, vs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})
	return sorted
}

// Less reports whether a sorts before b in canonical order.
func Less(a, b Violation) bool {
	// сначала по файлу
	if a.Path != b.Path {
		return a.Path < b.Path
	}
	if a.Start.Line != b.Start.Line {
		return a.Start.Line < b.Start.Line
	}
	return a.Start.Col < b.Start.Col
}
