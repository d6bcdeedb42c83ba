package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	f1Style     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	f2Style     = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))
	armStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("84")).Bold(true)
	motorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	sliderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("75")).
				Padding(0, 1)

	bestPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("84")).
			Padding(0, 1)
)

// groupColors highlight diagrams whose F2 values match; cycled when there
// are more groups than colors.
var groupColors = []lipgloss.Color{"37", "71", "61", "96", "66", "31"}

func groupPanelStyle(group int) lipgloss.Style {
	c := groupColors[group%len(groupColors)]
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(0, 1)
}
