package picker

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // cyan
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
