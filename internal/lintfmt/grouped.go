package lintfmt

import (
	"fmt"
	"strings"

	"lintfmt/internal/lint"
	"lintfmt/internal/style"
)

const fixMarker = "(fixable)"

// Grouped is the default human-readable formatter: violations grouped per
// file followed by a summary.
type Grouped struct {
	opts Options
}

// NewGrouped creates a Grouped formatter.
func NewGrouped(opts Options) *Grouped {
	return &Grouped{opts: opts.withDefaults()}
}

// Format sorts, groups and renders vs.
func (g *Grouped) Format(vs []lint.Violation) (string, error) {
	res, err := Group(lint.Sort(vs))
	if err != nil {
		return "", err
	}
	return g.Render(res), nil
}

// Render produces the details block and the summary block separated by a
// blank line. With no violations only the summary is returned.
func (g *Grouped) Render(res *Result) string {
	details := g.renderDetails(res)
	summary := g.renderSummary(res.Totals())
	if details == "" {
		return summary
	}
	return details + "\n\n" + summary
}

func (g *Grouped) renderDetails(res *Result) string {
	groups := res.Groups()
	blocks := make([]string, 0, len(groups))
	for _, fg := range groups {
		lines := make([]string, 0, fg.Len()+1)
		header := DisplayPath(fg.Path, g.opts.PathMode, g.opts.BaseDir)
		lines = append(lines, g.opts.Styler.Style(style.RoleFilename, header))
		for _, v := range fg.Violations() {
			lines = append(lines, g.renderViolation(v))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (g *Grouped) renderViolation(v lint.Violation) string {
	s := g.opts.Styler
	sevRole := style.RoleWarning
	if v.Severity == lint.SevError {
		sevRole = style.RoleError
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s: %d:%d  %s  %s",
		s.Style(sevRole, v.Severity.String()),
		uint64(v.Start.Line)+1, uint64(v.Start.Col)+1,
		v.Message,
		s.Style(style.RoleDim, v.Rule),
	)
	if v.Fixable {
		b.WriteByte(' ')
		b.WriteString(s.Style(style.RoleInfo, fixMarker))
	}
	return b.String()
}

func (g *Grouped) renderSummary(total Counts) string {
	s := g.opts.Styler
	status := StatusOf(total)

	var b strings.Builder
	fmt.Fprintf(&b, "%s Found %s and %s.",
		s.Style(status.role(), status.symbol(g.opts.Symbols)),
		plural(total.Warnings, "warning"),
		plural(total.Errors, "error"),
	)

	issues := total.Issues()
	if issues == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "\n%s %d out of %s %s fixable with the automated fix option.",
		s.Style(style.RoleInfo, g.opts.Symbols.Info),
		total.Fixable,
		plural(issues, "issue"),
		verbFor(issues),
	)
	return b.String()
}

// plural renders "1 warning", "0 warnings", "2 warnings".
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func verbFor(n int) string {
	if n == 1 {
		return "is"
	}
	return "are"
}
