package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	rowTitleStyle    = lipgloss.NewStyle().Bold(true)
	rowBodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)
