package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true)

	blankDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	filledDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	holidayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	todayStyle = lipgloss.NewStyle().
			Underline(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Reverse(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(lipgloss.Color("205"))

	doneLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	openLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	cursorLineStyle = lipgloss.NewStyle().
			Reverse(true)

	draggingLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	crownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	caretStyle = lipgloss.NewStyle().
			Reverse(true)
)
