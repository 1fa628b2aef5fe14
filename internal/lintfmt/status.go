package lintfmt

import "lintfmt/internal/style"

// Status is the overall outcome derived from totals.
type Status uint8

const (
	StatusSuccess Status = iota
	StatusWarning
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// StatusOf picks error over warning over success.
func StatusOf(c Counts) Status {
	switch {
	case c.Errors > 0:
		return StatusError
	case c.Warnings > 0:
		return StatusWarning
	default:
		return StatusSuccess
	}
}

func (s Status) role() style.Role {
	switch s {
	case StatusError:
		return style.RoleError
	case StatusWarning:
		return style.RoleWarning
	default:
		return style.RoleSuccess
	}
}

func (s Status) symbol(sym style.Symbols) string {
	switch s {
	case StatusError:
		return sym.Error
	case StatusWarning:
		return sym.Warning
	default:
		return sym.Success
	}
}
