package lever

import "math"

// Kind tags the visual geometry of a lever's output arm. It matters only to
// the moment-arm projection and to rendering; the torque relationship is the
// same for all kinds.
type Kind int

const (
	LShaped Kind = iota
	Horizontal
	Angled
)

func (k Kind) String() string {
	switch k {
	case LShaped:
		return "l-shaped"
	case Horizontal:
		return "horizontal"
	case Angled:
		return "angled"
	}
	return "unknown"
}

// Arm geometry shared by every diagram: the input (gray) arm sits 40 deg
// above horizontal, so the output (gold) arm base angle is 50 deg.
const (
	GrayArmAngleDeg = 40.0
	GoldArmAngleDeg = 90.0 - GrayArmAngleDeg
)

// Default arm lengths, in feet.
const (
	DefaultInputArm  = 3.0
	DefaultOutputArm = 1.5
)

// BalancedTolerance is the relative tolerance for the cross-configuration
// balanced classification.
const BalancedTolerance = 1e-6

// Configuration is an immutable lever geometry. InputArm is the horizontal
// distance C from the pivot to P1 where F1 is applied. Arm2 is the output
// arm slider value: the physical gold-arm length, or the X1 target for
// X1-constrained variants (which derive the arm length from it).
type Configuration struct {
	ID            string
	Label         string
	Kind          Kind
	InputArm      float64
	Arm2          float64
	X1Constrained bool
}

// X1 is the horizontal moment arm from the pivot to P2, where the output
// force acts vertically.
func (c Configuration) X1() float64 {
	if c.X1Constrained {
		return c.Arm2
	}
	if c.Kind == Horizontal {
		return c.Arm2
	}
	return c.Arm2 * math.Cos(radians(GoldArmAngleDeg))
}

// OutputArm is the physical gold-arm length.
func (c Configuration) OutputArm() float64 {
	if c.X1Constrained {
		return c.Arm2 / math.Cos(radians(GoldArmAngleDeg))
	}
	return c.Arm2
}

// Validate checks construction-time invariants. Evaluation assumes a valid
// configuration and does not re-check.
func (c Configuration) Validate() error {
	if c.Kind != LShaped && c.Kind != Horizontal && c.Kind != Angled {
		return &ConfigurationError{ConfigID: c.ID, Field: "kind", Value: float64(c.Kind), Wrapped: ErrUnknownKind}
	}
	if c.InputArm <= 0 {
		return &ConfigurationError{ConfigID: c.ID, Field: "input_arm", Value: c.InputArm, Wrapped: ErrNonPositiveArm}
	}
	if c.Arm2 <= 0 {
		return &ConfigurationError{ConfigID: c.ID, Field: "arm2", Value: c.Arm2, Wrapped: ErrNonPositiveArm}
	}
	return nil
}

// WithArms returns a copy with new slider arm values.
func (c Configuration) WithArms(inputArm, arm2 float64) Configuration {
	c.InputArm = inputArm
	c.Arm2 = arm2
	return c
}

// TorqueResult holds the derived quantities for one configuration. Torque is
// F1*C, equal to F2*X1 by the lever equation.
type TorqueResult struct {
	ConfigID string
	F2       float64
	Torque   float64
	X1       float64
}

// Evaluate computes the output force and torque for an applied force f1.
// F2 = F1 * C / X1.
func Evaluate(f1 float64, cfg Configuration) (TorqueResult, error) {
	if f1 < 0 {
		return TorqueResult{}, invalidInput("f1", f1)
	}
	x1 := cfg.X1()
	return TorqueResult{
		ConfigID: cfg.ID,
		F2:       f1 * cfg.InputArm / x1,
		Torque:   f1 * cfg.InputArm,
		X1:       x1,
	}, nil
}

// Balanced reports whether all F2 values agree within a relative tolerance.
func Balanced(results []TorqueResult, relTol float64) bool {
	if len(results) < 2 {
		return true
	}
	min, max := results[0].F2, results[0].F2
	for _, r := range results[1:] {
		min = math.Min(min, r.F2)
		max = math.Max(max, r.F2)
	}
	scale := math.Max(math.Abs(min), math.Abs(max))
	if scale == 0 {
		return true
	}
	return (max-min)/scale <= relTol
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
