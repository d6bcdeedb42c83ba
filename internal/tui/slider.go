package tui

import (
	"fmt"
	"strings"
)

const sliderWidth = 18

// slider is a keyboard-driven value control. It owns the clamping: values
// handed to the physics core are always in range.
type slider struct {
	label    string
	min, max float64
	step     float64
	value    float64
	unit     string
	decimals int
}

func (s *slider) inc() { s.set(s.value + s.step) }
func (s *slider) dec() { s.set(s.value - s.step) }

func (s *slider) set(v float64) {
	if v < s.min {
		v = s.min
	}
	if v > s.max {
		v = s.max
	}
	s.value = v
}

func (s slider) bar() string {
	fill := int(float64(sliderWidth) * (s.value - s.min) / (s.max - s.min))
	if fill < 0 {
		fill = 0
	}
	if fill > sliderWidth {
		fill = sliderWidth
	}
	return strings.Repeat("█", fill) + strings.Repeat("─", sliderWidth-fill)
}

func (s slider) view(focused bool) string {
	cursor := "  "
	style := labelStyle
	if focused {
		cursor = cursorStyle.Render("▸") + " "
		style = activeStyle
	}
	val := fmt.Sprintf("%.*f %s", s.decimals, s.value, s.unit)
	return fmt.Sprintf("%s%s %s %s",
		cursor,
		style.Render(fmt.Sprintf("%-16s", s.label)),
		sliderStyle.Render(s.bar()),
		valueStyle.Render(val),
	)
}
