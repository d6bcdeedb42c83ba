package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// screen identifies which view the application model is currently showing.
type screen int

const (
	screenMenu screen = iota
	screenLever
	screenTug
)

// tickMsg drives the lever animation loop.
type tickMsg time.Time

const tickInterval = 33 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var menuEntries = []struct {
	title, desc string
}{
	{"Lever demonstrator", "force and torque across five lever configurations"},
	{"Tow tug calculator", "handle force and motor sizing for aircraft towing"},
}

// appModel is the root bubbletea model. It owns the menu and delegates to
// the simulator sub-models once one is chosen.
type appModel struct {
	screen screen
	cursor int
	lever  leverModel
	tug    tugModel
	err    error
}

// Run starts the interactive application at the menu screen.
func Run() error {
	return runModel(appModel{screen: screenMenu, lever: newLeverModel(), tug: newTugModel()})
}

// RunLever starts directly on the lever demonstrator.
func RunLever() error {
	return runModel(appModel{screen: screenLever, lever: newLeverModel(), tug: newTugModel()})
}

// RunTug starts directly on the tow tug calculator.
func RunTug() error {
	return runModel(appModel{screen: screenTug, lever: newLeverModel(), tug: newTugModel()})
}

func runModel(m appModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if am, ok := final.(appModel); ok && am.err != nil {
		return am.err
	}
	return nil
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenLever:
		return m.updateLever(msg)
	case screenTug:
		return m.updateTug(msg)
	}
	return m.updateMenu(msg)
}

func (m appModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}
	case "enter", " ":
		if m.cursor == 0 {
			m.screen = screenLever
		} else {
			m.screen = screenTug
		}
	}
	return m, nil
}

func (m appModel) View() string {
	switch m.screen {
	case screenLever:
		return m.lever.view()
	case screenTug:
		return m.tug.view()
	}
	s := titleStyle.Render("Aircraft Tug Physics Lab") + "\n\n"
	for i, entry := range menuEntries {
		cursor := "  "
		title := labelStyle.Render(entry.title)
		if i == m.cursor {
			cursor = cursorStyle.Render("▸") + " "
			title = activeStyle.Render(entry.title)
		}
		s += fmt.Sprintf("%s%s\n    %s\n", cursor, title, helpStyle.Render(entry.desc))
	}
	s += "\n" + helpStyle.Render("j/k move · enter select · q quit")
	return s
}
