package units

import "fmt"

// Conversion constants. Torque factors match the labelled values on the
// calculator's motor-spec panel.
const (
	NewtonsPerPoundForce = 4.44822
	MetersPerFoot        = 0.3048

	NewtonMetersPerPoundFoot          = 1.35582
	KilogramCentimetersPerNewtonMeter = 10.1972

	FootPoundsPerSecondPerHP = 550.0
	WattsPerHP               = 745.7

	FeetPerSecondPerMPH = 5280.0 / 3600.0
)

type TorqueUnit int

const (
	PoundFeet TorqueUnit = iota
	NewtonMeters
	KilogramCentimeters
)

func (u TorqueUnit) String() string {
	switch u {
	case PoundFeet:
		return "lb-ft"
	case NewtonMeters:
		return "Nm"
	case KilogramCentimeters:
		return "kg.cm"
	}
	return "unknown"
}

func PoundsForceToNewtons(lbf float64) float64 { return lbf * NewtonsPerPoundForce }
func NewtonsToPoundsForce(n float64) float64   { return n / NewtonsPerPoundForce }
func FeetToMeters(ft float64) float64          { return ft * MetersPerFoot }
func MetersToFeet(m float64) float64           { return m / MetersPerFoot }
func MPHToFeetPerSecond(mph float64) float64   { return mph * FeetPerSecondPerMPH }

// ConvertTorque converts a torque value between lb-ft, Nm and kg.cm.
func ConvertTorque(value float64, from, to TorqueUnit) (float64, error) {
	nm, err := toNewtonMeters(value, from)
	if err != nil {
		return 0, err
	}
	switch to {
	case PoundFeet:
		return nm / NewtonMetersPerPoundFoot, nil
	case NewtonMeters:
		return nm, nil
	case KilogramCentimeters:
		return nm * KilogramCentimetersPerNewtonMeter, nil
	}
	return 0, fmt.Errorf("unknown torque unit: %d", to)
}

func toNewtonMeters(value float64, from TorqueUnit) (float64, error) {
	switch from {
	case PoundFeet:
		return value * NewtonMetersPerPoundFoot, nil
	case NewtonMeters:
		return value, nil
	case KilogramCentimeters:
		return value / KilogramCentimetersPerNewtonMeter, nil
	}
	return 0, fmt.Errorf("unknown torque unit: %d", from)
}

// PowerHP converts a torque (lb-ft) spinning at omega (rad/s) to horsepower.
func PowerHP(torqueLbFt, omega float64) float64 {
	return torqueLbFt * omega / FootPoundsPerSecondPerHP
}

func HPToWatts(hp float64) float64 { return hp * WattsPerHP }
