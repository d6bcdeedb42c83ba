package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Kemerd/aircraft-tug-physics/internal/rig"
	"github.com/Kemerd/aircraft-tug-physics/internal/scenario"
	"github.com/Kemerd/aircraft-tug-physics/internal/surface"
	"github.com/Kemerd/aircraft-tug-physics/internal/tug"
)

const (
	tugRowWeight = iota
	tugRowIncline
	tugRowHandle
	tugRowAircraft
	tugRowSurface
	tugRowDiagram
	tugRowCount
)

// tugModel is the state of the tow tug calculator screen. The slider rows
// feed the shared scenario; the surface and diagram rows cycle through the
// preset tables.
type tugModel struct {
	sliders  [4]slider
	row      int
	surface  int
	selected int
	set      []tug.Configuration
	report   scenario.TugReport
	err      error
}

func newTugModel() tugModel {
	m := tugModel{
		sliders: [4]slider{
			{label: "Aircraft weight", min: tug.MinWeightLb, max: tug.MaxWeightLb, step: 100, value: tug.DefaultWeightLb, unit: "lb", decimals: 0},
			{label: "Ramp incline", min: surface.MinInclineDeg, max: surface.MaxInclineDeg, step: 0.25, value: 0, unit: "°", decimals: 2},
			{label: "Handle arm", min: tug.MinHandleArm, max: tug.MaxHandleArm, step: 0.25, value: tug.DefaultHandleArm, unit: "ft", decimals: 2},
			{label: "Aircraft arm", min: tug.MinAircraftArm, max: tug.MaxAircraftArm, step: 0.25, value: tug.DefaultAircraftArm, unit: "ft", decimals: 2},
		},
	}
	m.rebuild()
	return m
}

func (m *tugModel) rebuild() {
	set, err := rig.TugSet(m.sliders[2].value, m.sliders[3].value)
	if err != nil {
		m.err = err
		return
	}
	report, err := scenario.EvaluateTug(m.sliders[0].value, surface.Presets[m.surface], m.sliders[1].value, set)
	if err != nil {
		m.err = err
		return
	}
	m.set = set
	m.report = report
	if m.selected >= len(set) {
		m.selected = 0
	}
	m.err = nil
}

func (m appModel) updateTug(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	t := &m.tug
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.screen = screenMenu
	case "up", "k":
		if t.row > 0 {
			t.row--
		}
	case "down", "j":
		if t.row < tugRowCount-1 {
			t.row++
		}
	case "left", "h":
		switch t.row {
		case tugRowSurface:
			t.surface = (t.surface + len(surface.Presets) - 1) % len(surface.Presets)
			t.rebuild()
		case tugRowDiagram:
			t.selected = (t.selected + len(t.set) - 1) % len(t.set)
		default:
			t.sliders[t.row].dec()
			t.rebuild()
		}
	case "right", "l":
		switch t.row {
		case tugRowSurface:
			t.surface = (t.surface + 1) % len(surface.Presets)
			t.rebuild()
		case tugRowDiagram:
			t.selected = (t.selected + 1) % len(t.set)
		default:
			t.sliders[t.row].inc()
			t.rebuild()
		}
	}
	return m, nil
}

func (m tugModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tow Tug Calculator") + "\n")
	b.WriteString(subtitleStyle.Render("handle force and motor sizing across six geometries") + "\n\n")

	for i, s := range m.sliders {
		b.WriteString(s.view(i == m.row) + "\n")
	}
	b.WriteString(m.cycleRow(tugRowSurface, "Surface", surface.Presets[m.surface].Name,
		fmt.Sprintf("μ=%.3f", surface.Presets[m.surface].Mu)) + "\n")
	b.WriteString(m.cycleRow(tugRowDiagram, "Diagram", m.set[m.selected].ID, m.set[m.selected].Label) + "\n\n")

	if m.err != nil {
		b.WriteString(warnStyle.Render("input error: "+m.err.Error()) + "\n")
		return b.String()
	}

	panels := make([]string, 0, len(m.set))
	for i := range m.set {
		panels = append(panels, m.panel(i))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...) + "\n")
	b.WriteString(m.motorDetail() + "\n")
	b.WriteString(helpStyle.Render("j/k row · h/l adjust · q back"))
	return b.String()
}

func (m tugModel) cycleRow(row int, label, value, note string) string {
	cursor := "  "
	style := labelStyle
	if m.row == row {
		cursor = cursorStyle.Render("▸") + " "
		style = activeStyle
	}
	return fmt.Sprintf("%s%s %s  %s",
		cursor,
		style.Render(fmt.Sprintf("%-16s", label)),
		valueStyle.Render(fmt.Sprintf("◂ %s ▸", value)),
		subtitleStyle.Render(note),
	)
}

func (m tugModel) panel(i int) string {
	cfg := m.set[i]
	res := m.report.Results[i]
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", activeStyle.Render(cfg.ID))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("pull  "), valueStyle.Render(fmt.Sprintf("%7.1f lbf", res.TotalPull)))
	force := f2Style
	if !res.FeasibleByHuman {
		force = warnStyle
	}
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("handle"), force.Render(fmt.Sprintf("%7.1f lbf", res.HandleForce)))
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("effort"), valueStyle.Render(res.Effort.String()))

	style := panelStyle
	if i == m.report.BestIndex {
		style = bestPanelStyle
	}
	if i == m.selected {
		style = selectedPanelStyle
	}
	return style.Render(b.String())
}

// motorDetail prints the motor sizing line for the selected diagram.
func (m tugModel) motorDetail() string {
	res := m.report.Results[m.selected]
	return motorStyle.Render(fmt.Sprintf(
		"motor (%s): %.2f lb-ft  %.2f Nm  %.1f kg-cm  ·  %.3f hp  %.1f W",
		res.ConfigID, res.MotorTorqueLbFt, res.MotorTorqueNm, res.MotorTorqueKgCm,
		res.MotorPowerHP, res.MotorPowerW,
	))
}
