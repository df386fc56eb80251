package prompt

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles used for console output
type Styles struct {
	Banner  lipgloss.Style
	Prompt  lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the standard color scheme
func DefaultStyles() Styles {
	return Styles{
		Banner:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
