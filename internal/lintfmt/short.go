package lintfmt

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"lintfmt/internal/lint"
)

// Short prints one editor-friendly line per violation:
//
//	[tag] path:line:col: message (rule)
//
// Violations are printed in the order given; paths default to relative so
// editor problem matchers can resolve them.
type Short struct {
	opts Options
}

// NewShort creates a Short formatter.
func NewShort(opts Options) *Short {
	opts = opts.withDefaults()
	if opts.PathMode == PathModeAsIs {
		opts.PathMode = PathModeRelative
	}
	return &Short{opts: opts}
}

func (s *Short) Format(vs []lint.Violation) (string, error) {
	var b strings.Builder
	for _, v := range vs {
		if !v.Severity.Valid() {
			return "", fmt.Errorf("%w %s for %s (rule %q)", ErrUnknownSeverity, v.Severity, v.Path, v.Rule)
		}
		fmt.Fprintf(&b, "[%s] %s:%d:%d: %s (%s)\n",
			s.opts.Tag,
			DisplayPath(v.Path, s.opts.PathMode, s.opts.BaseDir),
			uint64(v.Start.Line)+1, uint64(v.Start.Col)+1,
			sanitizeMessage(v.Message),
			v.Rule,
		)
	}
	if len(vs) == 0 {
		return "\n", nil
	}
	return b.String(), nil
}

// sanitizeMessage folds a message onto one line in NFC form.
func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return norm.NFC.String(strings.TrimSpace(msg))
}
