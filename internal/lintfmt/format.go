package lintfmt

import (
	"fmt"
	"sort"
	"strings"

	"lintfmt/internal/lint"
)

// Formatter turns violations into a text block.
type Formatter interface {
	Format(vs []lint.Violation) (string, error)
}

// Format renders vs with the default grouped formatter.
func Format(vs []lint.Violation, opts Options) (string, error) {
	return NewGrouped(opts).Format(vs)
}

type factory func(Options) Formatter

var registry = map[string]factory{
	"grouped":  func(o Options) Formatter { return NewGrouped(o) },
	"short":    func(o Options) Formatter { return NewShort(o) },
	"json":     func(o Options) Formatter { return NewJSON(o) },
	"markdown": func(o Options) Formatter { return NewMarkdown(o) },
}

var aliases = map[string]string{
	"stylish": "grouped",
	"pretty":  "grouped",
	"vscode":  "short",
	"md":      "markdown",
}

// Lookup returns the formatter registered under name (or one of its aliases).
func Lookup(name string, opts Options) (Formatter, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if target, ok := aliases[key]; ok {
		key = target
	}
	mk, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (expected %s)", name, strings.Join(Names(), "|"))
	}
	return mk(opts), nil
}

// Names lists the registered formatter names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
