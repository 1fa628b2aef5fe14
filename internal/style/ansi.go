package style

import "github.com/fatih/color"

// ANSI styles text with fatih/color. Colors are always emitted: the caller
// decides whether color is wanted and picks Plain otherwise.
type ANSI struct {
	roles map[Role]*color.Color
}

// NewANSI builds the default ANSI palette.
func NewANSI() *ANSI {
	roles := map[Role]*color.Color{
		RoleDim:      color.New(color.FgHiBlack),
		RoleFilename: color.New(color.FgYellow, color.Underline),
		RoleWarning:  color.New(color.FgYellow),
		RoleError:    color.New(color.FgRed),
		RoleInfo:     color.New(color.FgBlue),
		RoleSuccess:  color.New(color.FgGreen),
	}
	for _, c := range roles {
		c.EnableColor()
	}
	return &ANSI{roles: roles}
}

func (a *ANSI) Style(role Role, text string) string {
	c, ok := a.roles[role]
	if !ok || text == "" {
		return text
	}
	return c.Sprint(text)
}
