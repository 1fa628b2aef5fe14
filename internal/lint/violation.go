package lint

import "fmt"

// Position is a zero-based location in a source file.
type Position struct {
	Line uint32
	Col  uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Violation is one reported rule infraction.
type Violation struct {
	Path     string
	Start    Position
	Message  string
	Rule     string
	Severity Severity
	Fixable  bool
}

// New builds a violation without a fix.
func New(sev Severity, rule, path string, start Position, msg string) Violation {
	return Violation{
		Path:     path,
		Start:    start,
		Message:  msg,
		Rule:     rule,
		Severity: sev,
	}
}

// NewError is a shortcut for SevError violations.
func NewError(rule, path string, start Position, msg string) Violation {
	return New(SevError, rule, path, start, msg)
}

// NewWarning is a shortcut for SevWarning violations.
func NewWarning(rule, path string, start Position, msg string) Violation {
	return New(SevWarning, rule, path, start, msg)
}

// WithFix returns a copy of v marked as automatically fixable.
func (v Violation) WithFix() Violation {
	v.Fixable = true
	return v
}
