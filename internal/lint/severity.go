package lint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSeverity is returned by ParseSeverity for unknown names.
var ErrInvalidSeverity = errors.New("invalid severity")

// Severity classifies a violation.
type Severity uint8

const (
	// SevWarning is for violations that do not fail the run.
	SevWarning Severity = iota + 1
	// SevError is for violations that fail the run.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", uint8(s))
}

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	return s == SevWarning || s == SevError
}

// ParseSeverity converts a textual severity into Severity.
// Matching is case-insensitive; "warn" is accepted as an alias.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning", "warn":
		return SevWarning, nil
	case "error":
		return SevError, nil
	default:
		return 0, fmt.Errorf("%w: %q (expected warning|error)", ErrInvalidSeverity, s)
	}
}
