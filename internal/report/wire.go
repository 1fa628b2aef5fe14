package report

import (
	"fmt"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"

	"lintfmt/internal/lint"
)

// Record is the serialized form of one violation.
type Record struct {
	File     string `json:"file" yaml:"file" msgpack:"file"`
	Line     int64  `json:"line" yaml:"line" msgpack:"line"`
	Column   int64  `json:"column" yaml:"column" msgpack:"column"`
	Message  string `json:"message" yaml:"message" msgpack:"message"`
	Rule     string `json:"rule" yaml:"rule" msgpack:"rule"`
	Severity string `json:"severity" yaml:"severity" msgpack:"severity"`
	Fixable  bool   `json:"fixable" yaml:"fixable" msgpack:"fixable"`
}

// Document is the object form of a report.
type Document struct {
	Violations []Record `json:"violations" yaml:"violations" msgpack:"violations"`
}

// FromViolation converts a violation back to its serialized form.
func FromViolation(v lint.Violation) Record {
	return Record{
		File:     v.Path,
		Line:     int64(v.Start.Line),
		Column:   int64(v.Start.Col),
		Message:  v.Message,
		Rule:     v.Rule,
		Severity: v.Severity.String(),
		Fixable:  v.Fixable,
	}
}

// Violation validates r and converts it.
func (r Record) Violation() (lint.Violation, error) {
	if r.File == "" {
		return lint.Violation{}, fmt.Errorf("missing file")
	}
	sev, err := lint.ParseSeverity(r.Severity)
	if err != nil {
		return lint.Violation{}, err
	}
	line, err := safecast.Conv[uint32](r.Line)
	if err != nil {
		return lint.Violation{}, fmt.Errorf("invalid line %d: %w", r.Line, err)
	}
	col, err := safecast.Conv[uint32](r.Column)
	if err != nil {
		return lint.Violation{}, fmt.Errorf("invalid column %d: %w", r.Column, err)
	}
	return lint.Violation{
		Path:     norm.NFC.String(r.File),
		Start:    lint.Position{Line: line, Col: col},
		Message:  r.Message,
		Rule:     r.Rule,
		Severity: sev,
		Fixable:  r.Fixable,
	}, nil
}
