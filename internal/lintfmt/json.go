package lintfmt

import (
	"encoding/json"
	"fmt"

	"lintfmt/internal/lint"
)

// ViolationJSON представляет нарушение в JSON формате.
// Line and Column are one-based, as displayed.
type ViolationJSON struct {
	Line     uint64 `json:"line"`
	Column   uint64 `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Rule     string `json:"rule"`
	Fixable  bool   `json:"fixable"`
}

// FileJSON is one file group with its counts.
type FileJSON struct {
	Path       string          `json:"path"`
	Warnings   int             `json:"warnings"`
	Errors     int             `json:"errors"`
	Fixable    int             `json:"fixable"`
	Violations []ViolationJSON `json:"violations"`
}

// SummaryJSON holds the totals and overall status.
type SummaryJSON struct {
	Status   string `json:"status"`
	Files    int    `json:"files"`
	Issues   int    `json:"issues"`
	Warnings int    `json:"warnings"`
	Errors   int    `json:"errors"`
	Fixable  int    `json:"fixable"`
}

// Output is the root of the JSON document.
type Output struct {
	Files   []FileJSON  `json:"files"`
	Summary SummaryJSON `json:"summary"`
}

// BuildOutput builds the JSON structure without serializing it.
func BuildOutput(res *Result, opts Options) Output {
	groups := res.Groups()
	files := make([]FileJSON, 0, len(groups))
	for _, g := range groups {
		c := g.Counts()
		fj := FileJSON{
			Path:       DisplayPath(g.Path, opts.PathMode, opts.BaseDir),
			Warnings:   c.Warnings,
			Errors:     c.Errors,
			Fixable:    c.Fixable,
			Violations: make([]ViolationJSON, 0, g.Len()),
		}
		for _, v := range g.Violations() {
			fj.Violations = append(fj.Violations, ViolationJSON{
				Line:     uint64(v.Start.Line) + 1,
				Column:   uint64(v.Start.Col) + 1,
				Severity: v.Severity.String(),
				Message:  v.Message,
				Rule:     v.Rule,
				Fixable:  v.Fixable,
			})
		}
		files = append(files, fj)
	}

	total := res.Totals()
	return Output{
		Files: files,
		Summary: SummaryJSON{
			Status:   StatusOf(total).String(),
			Files:    len(files),
			Issues:   total.Issues(),
			Warnings: total.Warnings,
			Errors:   total.Errors,
			Fixable:  total.Fixable,
		},
	}
}

// JSON renders the grouped result as indented JSON.
type JSON struct {
	opts Options
}

// NewJSON creates a JSON formatter. Styling options are ignored.
func NewJSON(opts Options) *JSON {
	return &JSON{opts: opts}
}

func (j *JSON) Format(vs []lint.Violation) (string, error) {
	res, err := Group(lint.Sort(vs))
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(BuildOutput(res, j.opts), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode violations: %w", err)
	}
	return string(data), nil
}
