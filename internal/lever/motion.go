package lever

import "math"

// Tipping dynamics constants, from the lever demonstrator.
const (
	MomentOfInertia = 35.0
	AngularDamping  = 0.25
	MaxRotationDeg  = 60.0

	// CounterweightLb hangs from P2 and opposes the applied force.
	CounterweightLb = 300.0

	// minMomentArm floors the projected arms near vertical so F2 stays finite.
	minMomentArm = 0.1
)

// Motion integrates the tipping of a single lever under the applied force
// and the counterweight. Rotation and angular velocity are in degrees and
// degrees per second. Moment arms shrink with the cosine of the rotation,
// so F2 changes as the system tips.
type Motion struct {
	Config          Configuration
	F1              float64
	RotationDeg     float64
	AngularVelocity float64
	NetTorque       float64
}

func NewMotion(cfg Configuration, f1 float64) *Motion {
	return &Motion{Config: cfg, F1: f1}
}

// X1Current is the moment arm to P2 at the current rotation.
func (m *Motion) X1Current() float64 {
	x1 := m.Config.X1() * math.Cos(radians(m.RotationDeg))
	return math.Max(minMomentArm, math.Abs(x1))
}

// F2Current is the output force at the current rotation.
func (m *Motion) F2Current() float64 {
	return m.F1 * m.Config.InputArm / m.X1Current()
}

// Step advances the tipping simulation by dt seconds. F1 torques the system
// one way, the counterweight at P2 the other; the side with more torque
// tips down until the rotation clamp.
func (m *Motion) Step(dt float64) {
	cCurrent := m.Config.InputArm * math.Cos(radians(m.RotationDeg))
	cCurrent = math.Max(minMomentArm, math.Abs(cCurrent))
	x1Current := m.X1Current()

	torqueF1 := m.F1 * cCurrent
	torqueWeight := CounterweightLb * x1Current
	m.NetTorque = torqueF1 - torqueWeight

	accel := m.NetTorque / MomentOfInertia
	m.AngularVelocity += accel * dt
	m.AngularVelocity *= 1 - AngularDamping*dt
	m.RotationDeg += m.AngularVelocity * dt
	m.RotationDeg = math.Max(-MaxRotationDeg, math.Min(MaxRotationDeg, m.RotationDeg))
}

// Reset returns the lever to rest at zero rotation.
func (m *Motion) Reset() {
	m.RotationDeg = 0
	m.AngularVelocity = 0
	m.NetTorque = 0
}

// Settled reports whether the lever has effectively stopped moving.
func (m *Motion) Settled() bool {
	return math.Abs(m.AngularVelocity) < 1e-3 && math.Abs(m.NetTorque) < 1e-2
}
