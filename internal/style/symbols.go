package style

import (
	"fmt"
	"strings"
)

// Symbols are the status markers printed in front of summary lines.
type Symbols struct {
	Error   string
	Warning string
	Success string
	Info    string
}

var (
	// Unicode is the default symbol set.
	Unicode = Symbols{Error: "✖", Warning: "⚠", Success: "✔", Info: "ℹ"}
	// ASCII is used on terminals without unicode support.
	ASCII = Symbols{Error: "x", Warning: "!", Success: "v", Info: "i"}
)

// ParseSymbols converts a configuration value into a symbol set.
func ParseSymbols(s string) (Symbols, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unicode":
		return Unicode, nil
	case "ascii":
		return ASCII, nil
	default:
		return Unicode, fmt.Errorf("invalid symbols %q (expected unicode|ascii)", s)
	}
}
