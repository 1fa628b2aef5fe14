package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"lintfmt/internal/style"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

// shouldUseTUI decides whether to show the progress view. In auto mode it
// needs an interactive stderr and more than one report to load.
func shouldUseTUI(mode uiMode, files int) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return files > 1 && isTerminal(os.Stderr)
	}
}

func readColorMode(value string) (style.ColorMode, error) {
	mode, err := style.ParseColorMode(value)
	if err != nil {
		return mode, fmt.Errorf("--color: %w", err)
	}
	return mode, nil
}

// shouldColor resolves auto mode against the destination writer and the
// NO_COLOR convention.
func shouldColor(mode style.ColorMode, out io.Writer) bool {
	switch mode {
	case style.ColorOn:
		return true
	case style.ColorOff:
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := out.(*os.File)
	return ok && isTerminal(f)
}
