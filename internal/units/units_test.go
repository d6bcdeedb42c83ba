package units

import (
	"math"
	"testing"
)

func TestConvertTorqueKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to TorqueUnit
		expected float64
	}{
		{"lbft to nm", 1.0, PoundFeet, NewtonMeters, 1.35582},
		{"nm to kgcm", 1.0, NewtonMeters, KilogramCentimeters, 10.1972},
		{"lbft to kgcm", 1.0, PoundFeet, KilogramCentimeters, 1.35582 * 10.1972},
		{"identity", 42.5, NewtonMeters, NewtonMeters, 42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertTorque(tt.value, tt.from, tt.to)
			if err != nil {
				t.Fatalf("convert failed: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("expected %.6f, got %.6f", tt.expected, got)
			}
		})
	}
}

func TestConvertTorqueRoundTrip(t *testing.T) {
	values := []float64{0, 0.001, 1, 15.625, 3000, -60}
	for _, v := range values {
		nm, err := ConvertTorque(v, PoundFeet, NewtonMeters)
		if err != nil {
			t.Fatalf("convert failed: %v", err)
		}
		back, err := ConvertTorque(nm, NewtonMeters, PoundFeet)
		if err != nil {
			t.Fatalf("convert failed: %v", err)
		}
		if math.Abs(back-v) > 1e-9*math.Max(1, math.Abs(v)) {
			t.Errorf("round trip %.6f -> %.6f", v, back)
		}
	}
}

func TestConvertTorqueUnknownUnit(t *testing.T) {
	if _, err := ConvertTorque(10, TorqueUnit(99), NewtonMeters); err == nil {
		t.Error("expected error for unknown source unit")
	}
	if _, err := ConvertTorque(10, NewtonMeters, TorqueUnit(99)); err == nil {
		t.Error("expected error for unknown target unit")
	}
}

func TestForceAndLengthConversions(t *testing.T) {
	if got := PoundsForceToNewtons(50); math.Abs(got-222.411) > 0.001 {
		t.Errorf("50 lbf: expected ~222.411 N, got %.4f", got)
	}
	if got := NewtonsToPoundsForce(PoundsForceToNewtons(3000)); math.Abs(got-3000) > 1e-9 {
		t.Errorf("lbf round trip: got %.6f", got)
	}
	if got := FeetToMeters(1); math.Abs(got-0.3048) > 1e-12 {
		t.Errorf("1 ft: expected 0.3048 m, got %.6f", got)
	}
}

func TestPowerHP(t *testing.T) {
	// 550 ft-lb/s is one horsepower by definition.
	if got := PowerHP(550, 1); math.Abs(got-1) > 1e-12 {
		t.Errorf("expected 1 hp, got %.6f", got)
	}
	if got := HPToWatts(1); math.Abs(got-745.7) > 1e-12 {
		t.Errorf("expected 745.7 W, got %.4f", got)
	}
}

func TestMPHToFeetPerSecond(t *testing.T) {
	// 3 mph is the calculator's target towing speed: 4.4 ft/s.
	if got := MPHToFeetPerSecond(3); math.Abs(got-4.4) > 1e-9 {
		t.Errorf("expected 4.4 ft/s, got %.6f", got)
	}
}
