package tug

import (
	"math"

	"github.com/Kemerd/aircraft-tug-physics/internal/lever"
	"github.com/Kemerd/aircraft-tug-physics/internal/surface"
	"github.com/Kemerd/aircraft-tug-physics/internal/units"
)

// Calculator defaults and slider ranges.
const (
	DefaultWeightLb    = 3000.0
	DefaultInclineDeg  = 0.0
	DefaultHandleArm   = 3.0
	DefaultAircraftArm = 1.5

	MinWeightLb = 500.0
	MaxWeightLb = 10000.0

	MinHandleArm   = 1.0
	MaxHandleArm   = 6.0
	MinAircraftArm = 0.5
	MaxAircraftArm = 4.0
)

// Tug drive geometry and targets.
const (
	TireDiameterIn = 10.0
	TireRadiusFt   = (TireDiameterIn / 2) / 12

	TargetSpeedMPH = 3.0
)

// HumanForceLimitLbf is the handle force one adult can sustain; above it the
// scenario is flagged as needing a motor. (~222 N.)
const HumanForceLimitLbf = 50.0

// Effort classifies the handle force for display.
type Effort int

const (
	EffortEasy Effort = iota
	EffortModerate
	EffortSignificant
	EffortMotorRecommended
)

func (e Effort) String() string {
	switch e {
	case EffortEasy:
		return "easy for most adults"
	case EffortModerate:
		return "moderate effort"
	case EffortSignificant:
		return "significant effort"
	case EffortMotorRecommended:
		return "motor recommended"
	}
	return "unknown"
}

// ClassifyEffort maps a handle force magnitude onto the calculator's tiers.
func ClassifyEffort(handleForce float64) Effort {
	f := math.Abs(handleForce)
	switch {
	case f <= 50:
		return EffortEasy
	case f <= 100:
		return EffortModerate
	case f <= 150:
		return EffortSignificant
	default:
		return EffortMotorRecommended
	}
}

// Configuration is one tug lever geometry. HandleArm is the arm the human
// pulls (X); AircraftArm is the slider value for the arm attached to the
// aircraft, interpreted through the same geometry rules as the lever
// demonstrator (projection, or X1 target when constrained). Offsets let the
// extended variant track the sliders at a fixed surplus.
type Configuration struct {
	ID            string
	Label         string
	Kind          lever.Kind
	HandleArm     float64
	AircraftArm   float64
	X1Constrained bool
	HandleOffset  float64
	ArmOffset     float64
	TireRadiusFt  float64
}

// EffectiveHandleArm is the handle length after the variant offset.
func (c Configuration) EffectiveHandleArm() float64 {
	return c.HandleArm + c.HandleOffset
}

// X1 is the horizontal moment arm from the pivot to the aircraft attachment,
// computed with the lever model's projection rules.
func (c Configuration) X1() float64 {
	lc := lever.Configuration{
		Kind:          c.Kind,
		InputArm:      c.EffectiveHandleArm(),
		Arm2:          c.AircraftArm + c.ArmOffset,
		X1Constrained: c.X1Constrained,
	}
	return lc.X1()
}

// Validate checks construction-time invariants.
func (c Configuration) Validate() error {
	if c.Kind != lever.LShaped && c.Kind != lever.Horizontal && c.Kind != lever.Angled {
		return &lever.ConfigurationError{ConfigID: c.ID, Field: "kind", Value: float64(c.Kind), Wrapped: lever.ErrUnknownKind}
	}
	if c.EffectiveHandleArm() <= 0 {
		return &lever.ConfigurationError{ConfigID: c.ID, Field: "handle_arm", Value: c.EffectiveHandleArm(), Wrapped: lever.ErrNonPositiveArm}
	}
	if c.AircraftArm+c.ArmOffset <= 0 {
		return &lever.ConfigurationError{ConfigID: c.ID, Field: "aircraft_arm", Value: c.AircraftArm + c.ArmOffset, Wrapped: lever.ErrNonPositiveArm}
	}
	if c.TireRadiusFt <= 0 {
		return &lever.ConfigurationError{ConfigID: c.ID, Field: "tire_radius", Value: c.TireRadiusFt, Wrapped: lever.ErrNonPositiveArm}
	}
	return nil
}

// WithArms returns a copy with new slider arm values.
func (c Configuration) WithArms(handleArm, aircraftArm float64) Configuration {
	c.HandleArm = handleArm
	c.AircraftArm = aircraftArm
	return c
}

// Scenario is the full tug input state for one evaluation.
type Scenario struct {
	WeightLb   float64
	Surface    surface.Preset
	InclineDeg float64
	Config     Configuration
}

// Result holds everything the calculator displays for one configuration.
// Forces are in lbf, motor torque in all three display units.
type Result struct {
	ConfigID        string
	Rolling         float64
	Grade           float64
	TotalPull       float64
	HandleForce     float64
	MotorTorqueLbFt float64
	MotorTorqueNm   float64
	MotorTorqueKgCm float64
	MotorPowerHP    float64
	MotorPowerW     float64
	Effort          Effort
	FeasibleByHuman bool
}

// Evaluate computes the tug result for a scenario. The required pull force
// comes from the surface model; the handle force follows the lever ratio
// handle = total * X1 / handle_arm; motor sizing assumes the drive must
// supply the handle force at the tire at the target towing speed.
func Evaluate(s Scenario) (Result, error) {
	res, err := surface.Compute(s.WeightLb, s.Surface, s.InclineDeg)
	if err != nil {
		return Result{}, err
	}

	handleForce := res.Total * s.Config.X1() / s.Config.EffectiveHandleArm()

	r := s.Config.TireRadiusFt
	torqueLbFt := math.Abs(handleForce) * r
	omega := units.MPHToFeetPerSecond(TargetSpeedMPH) / r
	powerHP := units.PowerHP(torqueLbFt, omega)

	torqueNm, err := units.ConvertTorque(torqueLbFt, units.PoundFeet, units.NewtonMeters)
	if err != nil {
		return Result{}, err
	}
	torqueKgCm, err := units.ConvertTorque(torqueLbFt, units.PoundFeet, units.KilogramCentimeters)
	if err != nil {
		return Result{}, err
	}

	return Result{
		ConfigID:        s.Config.ID,
		Rolling:         res.Rolling,
		Grade:           res.Grade,
		TotalPull:       res.Total,
		HandleForce:     handleForce,
		MotorTorqueLbFt: torqueLbFt,
		MotorTorqueNm:   torqueNm,
		MotorTorqueKgCm: torqueKgCm,
		MotorPowerHP:    powerHP,
		MotorPowerW:     units.HPToWatts(powerHP),
		Effort:          ClassifyEffort(handleForce),
		FeasibleByHuman: math.Abs(handleForce) <= HumanForceLimitLbf,
	}, nil
}
