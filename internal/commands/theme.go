package commands

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// theme styles command output for the writer it is rendered to. Writers that
// are not terminals get plain text.
type theme struct {
	heading lipgloss.Style
	failure lipgloss.Style
	notice  lipgloss.Style
}

func newTheme(output io.Writer) theme {
	r := lipgloss.NewRenderer(output)
	return theme{
		heading: r.NewStyle().Bold(true),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
