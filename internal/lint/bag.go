package lint

import "sort"

// Bag collects violations reported by an engine or decoded from a report.
type Bag struct {
	items []Violation
}

// NewBag returns an empty bag with room for capacity items.
func NewBag(capacity int) *Bag {
	if capacity < 0 {
		capacity = 0
	}
	return &Bag{items: make([]Violation, 0, capacity)}
}

// Add appends a violation.
func (b *Bag) Add(v Violation) {
	b.items = append(b.items, v)
}

// Len returns the number of collected violations.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the collected violations.
// The slice aliases the bag's storage and must not be modified.
func (b *Bag) Items() []Violation {
	return b.items
}

// HasErrors reports whether at least one violation is an error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity == SevError {
			return true
		}
	}
	return false
}

// Merge appends all violations of other, keeping their order.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// Sort orders the bag in place using the canonical order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		return Less(b.items[i], b.items[j])
	})
}
