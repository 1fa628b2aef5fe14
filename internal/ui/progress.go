// Package ui renders an interactive progress view while report files load.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lintfmt/internal/report"
)

const statusWidth = 12

type progressModel struct {
	title   string
	events  <-chan report.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	found   int
	failed  int
	width   int
	done    bool
}

type fileItem struct {
	path   string
	status report.Status
	count  int
}

type eventMsg report.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that tracks files until events
// is closed.
func NewProgressModel(title string, files []string, events <-chan report.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for _, file := range files {
		// the same report may be passed twice; track it once
		if _, dup := index[file]; dup {
			continue
		}
		index[file] = len(items)
		items = append(items, fileItem{path: file, status: report.StatusQueued})
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(report.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d violations)", m.title, m.found)
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-4, 20)
	for _, item := range m.items {
		label := statusLabel(item)
		styled := styleStatus(item.status).Render(fmt.Sprintf("%*s", statusWidth, label))
		fmt.Fprintf(&b, "  %s %s\n", styled, truncate(item.path, nameWidth))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev report.Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	item := &m.items[idx]
	if finished(item.status) {
		return nil
	}
	item.status = ev.Status
	switch ev.Status {
	case report.StatusDone:
		item.count = ev.Count
		m.found += ev.Count
	case report.StatusError:
		m.failed++
	}
	return m.prog.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range m.items {
		switch {
		case finished(item.status):
			total += 1.0
		case item.status == report.StatusReading:
			total += 0.5
		}
	}
	return total / float64(len(m.items))
}

func finished(s report.Status) bool {
	return s == report.StatusDone || s == report.StatusError
}

func statusLabel(item fileItem) string {
	if item.status == report.StatusDone {
		return fmt.Sprintf("done (%d)", item.count)
	}
	return string(item.status)
}

func styleStatus(status report.Status) lipgloss.Style {
	switch status {
	case report.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case report.StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case report.StatusReading:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
