package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Kemerd/aircraft-tug-physics/internal/config"
	"github.com/Kemerd/aircraft-tug-physics/internal/lever"
	"github.com/Kemerd/aircraft-tug-physics/internal/rig"
	"github.com/Kemerd/aircraft-tug-physics/internal/scenario"
)

// leverModel is the state of the lever demonstrator screen. Every input
// change re-evaluates the whole configuration set; the animation runs the
// tipping dynamics per configuration on a fixed timestep.
type leverModel struct {
	sliders   [3]slider
	row       int
	set       []lever.Configuration
	report    scenario.LeverReport
	motions   []*lever.Motion
	animating bool
	err       error
}

func newLeverModel() leverModel {
	m := leverModel{
		sliders: [3]slider{
			{label: "Applied force F1", min: 0, max: 500, step: 5, value: config.DefaultLeverF1, unit: "lbf", decimals: 0},
			{label: "Input arm C", min: 0.5, max: 6, step: 0.25, value: lever.DefaultInputArm, unit: "ft", decimals: 2},
			{label: "Output arm", min: 0.5, max: 4, step: 0.25, value: lever.DefaultOutputArm, unit: "ft", decimals: 2},
		},
	}
	m.rebuild()
	return m
}

// rebuild re-derives the configuration set, the report, and the animation
// state from the current slider values.
func (m *leverModel) rebuild() {
	set, err := rig.LeverSet(m.sliders[1].value, m.sliders[2].value)
	if err != nil {
		m.err = err
		return
	}
	report, err := scenario.EvaluateLevers(m.sliders[0].value, set)
	if err != nil {
		m.err = err
		return
	}
	m.set = set
	m.report = report
	m.motions = make([]*lever.Motion, len(set))
	for i, cfg := range set {
		m.motions[i] = lever.NewMotion(cfg, m.sliders[0].value)
	}
	m.animating = false
	m.err = nil
}

func (m appModel) updateLever(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.lever.animating {
			return m, nil
		}
		settled := true
		for _, mo := range m.lever.motions {
			mo.Step(tickInterval.Seconds())
			if !mo.Settled() {
				settled = false
			}
		}
		if settled {
			m.lever.animating = false
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc":
			m.lever.animating = false
			m.screen = screenMenu
			return m, nil
		case "up", "k":
			if m.lever.row > 0 {
				m.lever.row--
			}
		case "down", "j":
			if m.lever.row < len(m.lever.sliders)-1 {
				m.lever.row++
			}
		case "left", "h":
			m.lever.sliders[m.lever.row].dec()
			m.lever.rebuild()
		case "right", "l":
			m.lever.sliders[m.lever.row].inc()
			m.lever.rebuild()
		case " ":
			m.lever.animating = !m.lever.animating
			if m.lever.animating {
				return m, tick()
			}
		case "r":
			for _, mo := range m.lever.motions {
				mo.Reset()
			}
			m.lever.animating = false
		}
	}
	return m, nil
}

func (m leverModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Lever Demonstrator") + "\n")
	b.WriteString(subtitleStyle.Render("one applied force, five geometries") + "\n\n")

	for i, s := range m.sliders {
		b.WriteString(s.view(i == m.row) + "\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(warnStyle.Render("input error: "+m.err.Error()) + "\n")
		return b.String()
	}

	b.WriteString(f1Style.Render(fmt.Sprintf("F1 = %.0f lbf applied to every diagram", m.report.F1)) + "\n\n")

	panels := make([]string, 0, len(m.set))
	for i, cfg := range m.set {
		panels = append(panels, m.panel(i, cfg))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...) + "\n")

	if m.report.Balanced {
		b.WriteString(goodStyle.Render("◆ balanced: every diagram produces the same output force") + "\n")
	} else {
		b.WriteString(labelStyle.Render("◇ not balanced: output forces differ across diagrams") + "\n")
	}

	b.WriteString(helpStyle.Render("j/k row · h/l adjust · space animate tipping · r reset · q back"))
	return b.String()
}

func (m leverModel) panel(i int, cfg lever.Configuration) string {
	res := m.report.Results[i]
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", activeStyle.Render(cfg.ID), subtitleStyle.Render(cfg.Kind.String()))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("F2"), f2Style.Render(fmt.Sprintf("%7.1f lbf", res.F2)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("τ "), valueStyle.Render(fmt.Sprintf("%7.1f lb-ft", res.Torque)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("X1"), armStyle.Render(fmt.Sprintf("%7.2f ft", res.X1)))

	mo := m.motions[i]
	if m.animating || mo.RotationDeg != 0 {
		fmt.Fprintf(&b, "\n%s %s\n", labelStyle.Render("θ "), valueStyle.Render(fmt.Sprintf("%+6.1f°", mo.RotationDeg)))
		fmt.Fprintf(&b, "%s %s", labelStyle.Render("F2'"), f2Style.Render(fmt.Sprintf("%6.1f lbf", mo.F2Current())))
	}

	return groupPanelStyle(m.report.Groups[i]).Render(b.String())
}
