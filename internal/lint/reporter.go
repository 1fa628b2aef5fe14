package lint

// Reporter is the minimal contract for receiving violations.
// Implementations: BagReporter, DedupReporter, NopReporter.
type Reporter interface {
	Report(v Violation)
}

// BagReporter writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(v Violation) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(v)
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Violation) {}

type dedupKey struct {
	path string
	line uint32
	col  uint32
	sev  Severity
	rule string
	msg  string
}

// DedupReporter wraps another Reporter and suppresses exact duplicates:
// same path, position, severity, rule and message.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that forwards unique violations to next.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(v Violation) {
	if r == nil {
		return
	}
	key := dedupKey{
		path: v.Path,
		line: v.Start.Line,
		col:  v.Start.Col,
		sev:  v.Severity,
		rule: v.Rule,
		msg:  v.Message,
	}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(v)
	}
}
