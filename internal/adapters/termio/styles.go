package termio

import "github.com/charmbracelet/lipgloss"

type styles struct {
	prompt   lipgloss.Style
	spinner  lipgloss.Style
	label    lipgloss.Style
	progress lipgloss.Style
}

func newStyles() styles {
	return styles{
		prompt:   lipgloss.NewStyle().Bold(true),
		spinner:  lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		progress: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
