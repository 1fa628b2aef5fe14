package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Lipgloss styles text through a lipgloss renderer.
type Lipgloss struct {
	roles map[Role]lipgloss.Style
}

// NewLipgloss builds a lipgloss palette forced to the ANSI color profile.
func NewLipgloss() *Lipgloss {
	return NewLipglossFor(io.Discard, termenv.ANSI)
}

// NewLipglossFor builds a palette for the given output and color profile.
func NewLipglossFor(w io.Writer, profile termenv.Profile) *Lipgloss {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Lipgloss{roles: map[Role]lipgloss.Style{
		RoleDim:      r.NewStyle().Faint(true),
		RoleFilename: r.NewStyle().Foreground(lipgloss.Color("3")).Underline(true),
		RoleWarning:  r.NewStyle().Foreground(lipgloss.Color("3")),
		RoleError:    r.NewStyle().Foreground(lipgloss.Color("1")),
		RoleInfo:     r.NewStyle().Foreground(lipgloss.Color("4")),
		RoleSuccess:  r.NewStyle().Foreground(lipgloss.Color("2")),
	}}
}

func (l *Lipgloss) Style(role Role, text string) string {
	st, ok := l.roles[role]
	if !ok || text == "" {
		return text
	}
	return st.Render(text)
}
