package surface

import (
	"fmt"
	"math"

	"github.com/Kemerd/aircraft-tug-physics/internal/lever"
)

// Incline slider range, in degrees. Sliders clamp to this range; evaluation
// rejects anything outside it rather than correcting silently.
const (
	MinInclineDeg = -2.0
	MaxInclineDeg = 2.0
)

// Preset is a named ground surface with its rolling friction coefficient.
type Preset struct {
	Name string
	Mu   float64
}

// Presets is the fixed surface set, ordered as the calculator lists them.
var Presets = []Preset{
	{Name: "Clean Concrete", Mu: 0.015},
	{Name: "Asphalt", Mu: 0.020},
	{Name: "Gravel", Mu: 0.035},
	{Name: "Dirt Road", Mu: 0.045},
	{Name: "Grass", Mu: 0.070},
}

// ByName looks up a preset by its display name.
func ByName(name string) (Preset, error) {
	for _, p := range Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown surface: %s", name)
}

// Names returns the preset names in display order.
func Names() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}

// Resistance holds the force components opposing motion, in the same unit
// as the input weight.
type Resistance struct {
	Rolling float64
	Grade   float64
	Total   float64
}

// Compute returns the resistance forces for a vehicle of the given weight on
// a surface at an incline:
//
//	rolling = mu * W * cos(theta)
//	grade   = W * sin(theta)
//	total   = rolling + grade
//
// Weight must be positive and the incline within [-2, 2] degrees.
func Compute(weight float64, preset Preset, inclineDeg float64) (Resistance, error) {
	if weight <= 0 {
		return Resistance{}, &lever.InvalidInputError{Param: "weight", Value: weight, Wrapped: lever.ErrOutOfDomain}
	}
	if inclineDeg < MinInclineDeg || inclineDeg > MaxInclineDeg {
		return Resistance{}, &lever.InvalidInputError{Param: "incline_deg", Value: inclineDeg, Wrapped: lever.ErrOutOfDomain}
	}

	theta := inclineDeg * math.Pi / 180
	rolling := preset.Mu * weight * math.Cos(theta)
	grade := weight * math.Sin(theta)
	return Resistance{
		Rolling: rolling,
		Grade:   grade,
		Total:   rolling + grade,
	}, nil
}
