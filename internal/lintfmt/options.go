package lintfmt

import "lintfmt/internal/style"

// Options configures the formatters. The zero value renders plain text with
// unicode symbols and paths exactly as reported.
type Options struct {
	Styler   style.Styler
	Symbols  style.Symbols
	PathMode PathMode
	// BaseDir is the reference for PathModeRelative and PathModeAbsolute;
	// empty means the working directory.
	BaseDir string
	// Tag prefixes every line of the short format.
	Tag string
}

const defaultTag = "lint"

func (o Options) withDefaults() Options {
	if o.Styler == nil {
		o.Styler = style.Plain
	}
	if o.Symbols == (style.Symbols{}) {
		o.Symbols = style.Unicode
	}
	if o.Tag == "" {
		o.Tag = defaultTag
	}
	return o
}
