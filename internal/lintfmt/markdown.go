package lintfmt

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"lintfmt/internal/lint"
)

// Markdown renders a report suitable for pull request comments: a summary
// table, a status alert and one table per file.
type Markdown struct {
	opts Options
}

// NewMarkdown creates a Markdown formatter. Styling options are ignored.
func NewMarkdown(opts Options) *Markdown {
	return &Markdown{opts: opts}
}

func (m *Markdown) Format(vs []lint.Violation) (string, error) {
	res, err := Group(lint.Sort(vs))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)
	total := res.Totals()

	md.H1("Lint Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Status", "Files", "Warnings", "Errors", "Fixable"},
		Rows: [][]string{{
			StatusOf(total).String(),
			strconv.Itoa(res.Len()),
			strconv.Itoa(total.Warnings),
			strconv.Itoa(total.Errors),
			strconv.Itoa(total.Fixable),
		}},
	})
	md.PlainText("")
	m.writeAlert(md, total)

	for _, g := range res.Groups() {
		md.H2(DisplayPath(g.Path, m.opts.PathMode, m.opts.BaseDir))
		md.PlainText("")
		rows := make([][]string, 0, g.Len())
		for _, v := range g.Violations() {
			fixable := ""
			if v.Fixable {
				fixable = "yes"
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d:%d", uint64(v.Start.Line)+1, uint64(v.Start.Col)+1),
				v.Severity.String(),
				escapeCell(v.Message),
				"`" + v.Rule + "`",
				fixable,
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Position", "Severity", "Message", "Rule", "Fixable"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if err := md.Build(); err != nil {
		return "", fmt.Errorf("failed to build markdown: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func (m *Markdown) writeAlert(md *markdown.Markdown, total Counts) {
	switch StatusOf(total) {
	case StatusError:
		md.Cautionf("Found %s and %s.", plural(total.Warnings, "warning"), plural(total.Errors, "error"))
	case StatusWarning:
		md.Warningf("Found %s and %s.", plural(total.Warnings, "warning"), plural(total.Errors, "error"))
	default:
		md.Tip("No problems found.")
	}
	md.PlainText("")
	if issues := total.Issues(); issues > 0 {
		md.PlainTextf("%d out of %s %s fixable with the automated fix option.", total.Fixable, plural(issues, "issue"), verbFor(issues))
		md.PlainText("")
	}
}

func escapeCell(s string) string {
	s = sanitizeMessage(s)
	return strings.ReplaceAll(s, "|", `\|`)
}
