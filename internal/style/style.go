// Package style maps semantic text roles onto terminal styling.
//
// Formatters never emit escape codes themselves. They ask a Styler to
// decorate a piece of text with a Role and stay agnostic of whether the
// result carries ANSI sequences, lipgloss output or nothing at all.
package style

import (
	"fmt"
	"strings"
)

// Role names what a piece of text means, not how it looks.
type Role uint8

const (
	// RoleDim de-emphasizes secondary text such as rule ids.
	RoleDim Role = iota + 1
	// RoleFilename marks a file header.
	RoleFilename
	RoleWarning
	RoleError
	RoleInfo
	RoleSuccess
)

func (r Role) String() string {
	switch r {
	case RoleDim:
		return "dim"
	case RoleFilename:
		return "filename"
	case RoleWarning:
		return "warning"
	case RoleError:
		return "error"
	case RoleInfo:
		return "info"
	case RoleSuccess:
		return "success"
	}
	return "unknown"
}

// Styler decorates text for a role.
type Styler interface {
	Style(role Role, text string) string
}

// Plain is the no-op Styler used for non-terminal output.
var Plain Styler = plainStyler{}

type plainStyler struct{}

func (plainStyler) Style(_ Role, text string) string { return text }

// Theme selects a Styler implementation.
type Theme uint8

const (
	// ThemeANSI renders with fatih/color escape sequences.
	ThemeANSI Theme = iota
	// ThemeLipgloss renders through a lipgloss renderer.
	ThemeLipgloss
)

// ParseTheme converts a configuration value into Theme.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ansi":
		return ThemeANSI, nil
	case "lipgloss":
		return ThemeLipgloss, nil
	default:
		return ThemeANSI, fmt.Errorf("invalid theme %q (expected ansi|lipgloss)", s)
	}
}

// ColorMode selects when styled output is emitted.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// ParseColorMode accepts auto, on and off, plus always and never as aliases.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q (expected auto|on|off)", s)
	}
}

// New returns the Styler for theme, or Plain when color is false.
func New(theme Theme, color bool) Styler {
	if !color {
		return Plain
	}
	if theme == ThemeLipgloss {
		return NewLipgloss()
	}
	return NewANSI()
}
