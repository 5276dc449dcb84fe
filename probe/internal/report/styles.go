package report

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)

	failTitleStyle = titleStyle.
			Background(lipgloss.Color("#C0392B"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(14)
	valueStyle = lipgloss.NewStyle()

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#25A065"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
