package ui

import "github.com/charmbracelet/lipgloss"

var (
	headerBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("9"))

	brandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	countStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	sortStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	filterStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	listBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("14"))

	helpBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(0, 1)

	footerBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("240"))

	flaggedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	highCPUStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	medCPUStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	keybindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)

	keybindDescStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)
