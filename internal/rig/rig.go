// Package rig holds the fixed, validated lever-arm configuration sets both
// simulators evaluate. Sets are rebuilt from slider arm values but the
// geometry roster itself never changes at runtime.
package rig

import (
	"fmt"

	"github.com/Kemerd/aircraft-tug-physics/internal/lever"
	"github.com/Kemerd/aircraft-tug-physics/internal/tug"
)

type leverSpec struct {
	id          string
	label       string
	kind        lever.Kind
	constrained bool
}

// The demonstrator's five diagrams, in display order. The b-variants share
// their parent's geometry but take the arm slider as an X1 target.
var leverSpecs = []leverSpec{
	{"d1a", "Diagram 1a: L-Shape", lever.LShaped, false},
	{"d1b", "Diagram 1b: L-Shape (X1)", lever.LShaped, true},
	{"d2", "Diagram 2: Horizontal", lever.Horizontal, false},
	{"d3a", "Diagram 3a: Angled", lever.Angled, false},
	{"d3b", "Diagram 3b: Angled (X1)", lever.Angled, true},
}

type tugSpec struct {
	id           string
	label        string
	kind         lever.Kind
	constrained  bool
	handleOffset float64
	armOffset    float64
}

// The calculator's six diagrams: the five lever geometries plus the
// extended variant that tracks the sliders at a fixed surplus.
var tugSpecs = []tugSpec{
	{"d1a", "D1a: L-Shape", lever.LShaped, false, 0, 0},
	{"d1b", "D1b: L-Shape (X1)", lever.LShaped, true, 0, 0},
	{"d2", "D2: Horizontal", lever.Horizontal, false, 0, 0},
	{"d3a", "D3a: Angled", lever.Angled, false, 0, 0},
	{"d3b", "D3b: Angled (X1)", lever.Angled, true, 0, 0},
	{"d4", "D4: Extended", lever.Horizontal, false, 1.0, 0.5},
}

// LeverSet builds the five lever configurations from slider arm values.
// Construction is the only place configurations are validated; a failure
// here is fatal and evaluation never sees an invalid set.
func LeverSet(inputArm, arm2 float64) ([]lever.Configuration, error) {
	set := make([]lever.Configuration, 0, len(leverSpecs))
	for _, s := range leverSpecs {
		cfg := lever.Configuration{
			ID:            s.id,
			Label:         s.label,
			Kind:          s.kind,
			InputArm:      inputArm,
			Arm2:          arm2,
			X1Constrained: s.constrained,
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		set = append(set, cfg)
	}
	return set, nil
}

// DefaultLeverSet is LeverSet at the demonstrator's slider defaults.
func DefaultLeverSet() ([]lever.Configuration, error) {
	return LeverSet(lever.DefaultInputArm, lever.DefaultOutputArm)
}

// TugSet builds the six tug configurations from slider arm values.
func TugSet(handleArm, aircraftArm float64) ([]tug.Configuration, error) {
	set := make([]tug.Configuration, 0, len(tugSpecs))
	for _, s := range tugSpecs {
		cfg := tug.Configuration{
			ID:            s.id,
			Label:         s.label,
			Kind:          s.kind,
			HandleArm:     handleArm,
			AircraftArm:   aircraftArm,
			X1Constrained: s.constrained,
			HandleOffset:  s.handleOffset,
			ArmOffset:     s.armOffset,
			TireRadiusFt:  tug.TireRadiusFt,
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		set = append(set, cfg)
	}
	return set, nil
}

// DefaultTugSet is TugSet at the calculator's slider defaults.
func DefaultTugSet() ([]tug.Configuration, error) {
	return TugSet(tug.DefaultHandleArm, tug.DefaultAircraftArm)
}

// LeverByID finds a configuration in a lever set.
func LeverByID(set []lever.Configuration, id string) (lever.Configuration, error) {
	for _, cfg := range set {
		if cfg.ID == id {
			return cfg, nil
		}
	}
	return lever.Configuration{}, fmt.Errorf("unknown lever configuration: %s", id)
}

// TugByID finds a configuration in a tug set.
func TugByID(set []tug.Configuration, id string) (tug.Configuration, error) {
	for _, cfg := range set {
		if cfg.ID == id {
			return cfg, nil
		}
	}
	return tug.Configuration{}, fmt.Errorf("unknown tug configuration: %s", id)
}
