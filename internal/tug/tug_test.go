package tug

import (
	"errors"
	"math"
	"testing"

	"github.com/Kemerd/aircraft-tug-physics/internal/lever"
	"github.com/Kemerd/aircraft-tug-physics/internal/surface"
)

func horizontalConfig(handle, arm float64) Configuration {
	return Configuration{
		ID:           "d2",
		Label:        "D2: Horizontal",
		Kind:         lever.Horizontal,
		HandleArm:    handle,
		AircraftArm:  arm,
		TireRadiusFt: TireRadiusFt,
	}
}

func TestEvaluateConcrete(t *testing.T) {
	// 3000 lbf on asphalt, flat ground, X = 4 ft, C = 1 ft:
	// rolling 60, grade 0, total 60, handle 15, feasible.
	asphalt, err := surface.ByName("Asphalt")
	if err != nil {
		t.Fatalf("surface lookup failed: %v", err)
	}

	s := Scenario{
		WeightLb:   3000,
		Surface:    asphalt,
		InclineDeg: 0,
		Config:     horizontalConfig(4, 1),
	}

	r, err := Evaluate(s)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if math.Abs(r.Rolling-60) > 1e-9 {
		t.Errorf("expected rolling 60, got %.9f", r.Rolling)
	}
	if r.Grade != 0 {
		t.Errorf("expected zero grade, got %.9f", r.Grade)
	}
	if math.Abs(r.TotalPull-60) > 1e-9 {
		t.Errorf("expected total 60, got %.9f", r.TotalPull)
	}
	if math.Abs(r.HandleForce-15) > 1e-9 {
		t.Errorf("expected handle force 15, got %.9f", r.HandleForce)
	}
	if !r.FeasibleByHuman {
		t.Error("15 lbf should be feasible")
	}
	if r.Effort != EffortEasy {
		t.Errorf("expected easy effort, got %v", r.Effort)
	}
}

func TestEvaluateMotorSpecs(t *testing.T) {
	asphalt := surface.Presets[1]
	s := Scenario{
		WeightLb:   3000,
		Surface:    asphalt,
		InclineDeg: 0,
		Config:     horizontalConfig(4, 1),
	}

	r, err := Evaluate(s)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	// torque = 15 lbf * 5/12 ft = 6.25 lb-ft
	if math.Abs(r.MotorTorqueLbFt-6.25) > 1e-9 {
		t.Errorf("expected torque 6.25 lb-ft, got %.9f", r.MotorTorqueLbFt)
	}
	if math.Abs(r.MotorTorqueNm-6.25*1.35582) > 1e-9 {
		t.Errorf("unexpected Nm torque %.9f", r.MotorTorqueNm)
	}
	if math.Abs(r.MotorTorqueKgCm-6.25*1.35582*10.1972) > 1e-6 {
		t.Errorf("unexpected kg.cm torque %.9f", r.MotorTorqueKgCm)
	}

	// power = torque * (v/r) / 550 = handle_force * v / 550
	expectedHP := 15.0 * 4.4 / 550.0
	if math.Abs(r.MotorPowerHP-expectedHP) > 1e-9 {
		t.Errorf("expected %.6f hp, got %.6f", expectedHP, r.MotorPowerHP)
	}
	if math.Abs(r.MotorPowerW-expectedHP*745.7) > 1e-6 {
		t.Errorf("unexpected watts %.6f", r.MotorPowerW)
	}
}

func TestEvaluatePropagatesDomainErrors(t *testing.T) {
	asphalt := surface.Presets[1]
	cfg := horizontalConfig(4, 1)

	tests := []struct {
		name     string
		scenario Scenario
	}{
		{"negative weight", Scenario{WeightLb: -1, Surface: asphalt, Config: cfg}},
		{"steep incline", Scenario{WeightLb: 3000, Surface: asphalt, InclineDeg: 5, Config: cfg}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.scenario)
			if !errors.Is(err, lever.ErrOutOfDomain) {
				t.Errorf("expected ErrOutOfDomain, got %v", err)
			}
		})
	}
}

func TestExtendedVariantOffsets(t *testing.T) {
	base := horizontalConfig(3, 1.5)
	extended := base
	extended.ID = "d4"
	extended.HandleOffset = 1.0
	extended.ArmOffset = 0.5

	if got := extended.EffectiveHandleArm(); got != 4.0 {
		t.Errorf("expected handle 4.0, got %.2f", got)
	}
	if got := extended.X1(); got != 2.0 {
		t.Errorf("expected X1 2.0, got %.2f", got)
	}

	// Offsets track the slider: adjusting arms preserves the surplus.
	moved := extended.WithArms(5, 2)
	if got := moved.EffectiveHandleArm(); got != 6.0 {
		t.Errorf("expected handle 6.0 after slider move, got %.2f", got)
	}
}

func TestLongerHandleReducesForce(t *testing.T) {
	grass := surface.Presets[4]
	short := Scenario{WeightLb: 8000, Surface: grass, Config: horizontalConfig(2, 1.5)}
	long := Scenario{WeightLb: 8000, Surface: grass, Config: horizontalConfig(6, 1.5)}

	rs, err := Evaluate(short)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	rl, err := Evaluate(long)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if rl.HandleForce >= rs.HandleForce {
		t.Errorf("longer handle should need less force: %.2f vs %.2f", rl.HandleForce, rs.HandleForce)
	}
}

func TestClassifyEffort(t *testing.T) {
	tests := []struct {
		force    float64
		expected Effort
	}{
		{10, EffortEasy},
		{50, EffortEasy},
		{50.1, EffortModerate},
		{100, EffortModerate},
		{149, EffortSignificant},
		{151, EffortMotorRecommended},
		{-30, EffortEasy},
	}

	for _, tt := range tests {
		if got := ClassifyEffort(tt.force); got != tt.expected {
			t.Errorf("%.1f lbf: expected %v, got %v", tt.force, tt.expected, got)
		}
	}
}

func TestFeasibilityThreshold(t *testing.T) {
	// Heavy aircraft on grass with a stubby handle is beyond one person.
	grass := surface.Presets[4]
	s := Scenario{
		WeightLb: 10000,
		Surface:  grass,
		Config:   horizontalConfig(1, 4),
	}

	r, err := Evaluate(s)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if r.FeasibleByHuman {
		t.Errorf("handle force %.1f lbf should not be feasible", r.HandleForce)
	}
	if r.Effort != EffortMotorRecommended {
		t.Errorf("expected motor recommended, got %v", r.Effort)
	}
}

func TestConfigurationValidate(t *testing.T) {
	valid := horizontalConfig(3, 1.5)
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Configuration)
	}{
		{"zero handle", func(c *Configuration) { c.HandleArm = 0 }},
		{"negative aircraft arm", func(c *Configuration) { c.AircraftArm = -2 }},
		{"offset below zero", func(c *Configuration) { c.HandleArm = 1; c.HandleOffset = -1 }},
		{"zero tire radius", func(c *Configuration) { c.TireRadiusFt = 0 }},
		{"bad kind", func(c *Configuration) { c.Kind = lever.Kind(42) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := horizontalConfig(3, 1.5)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var cfgErr *lever.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigurationError, got %T", err)
			}
		})
	}
}
