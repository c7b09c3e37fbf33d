package game

import "math"

const (
	defaultMaxSpeed = 4.0 // pixels per tick, per axis
	defaultMaxForce = 0.1 // steering acceleration per tick at weight 1
)

// Kinematics is the steered body of an agent.
//
// Acceleration is an accumulator: steering calls add to it during the FSM
// step and Integrate consumes and zeroes it on the following tick.
type Kinematics struct {
	X, Y     float64 // position
	VX, VY   float64 // velocity, pixels per tick
	AX, AY   float64 // acceleration accumulated since the last Integrate
	Rotation float64 // radians, sprite "up" is forward

	MaxSpeed float64
	MaxForce float64

	// CorrectedSteering normalises Seek's steering vector by its own length
	// instead of the desired vector's length.
	CorrectedSteering bool
}

// NewKinematics returns a body at rest at (x,y) with the default limits.
func NewKinematics(x, y float64) Kinematics {
	return Kinematics{
		X:        x,
		Y:        y,
		MaxSpeed: defaultMaxSpeed,
		MaxForce: defaultMaxForce,
	}
}

// Integrate advances the body by one tick.
//
// The velocity cap is applied per axis, so the diagonal speed can reach
// MaxSpeed*√2. dt is accepted for symmetry with the FSM step; velocity and
// acceleration are expressed per tick.
func (k *Kinematics) Integrate(dt float64) {
	k.VX = clampAxis(k.VX+k.AX, k.MaxSpeed)
	k.VY = clampAxis(k.VY+k.AY, k.MaxSpeed)

	k.Rotation = math.Atan2(k.VY, k.VX) + math.Pi/2

	k.AX = 0
	k.AY = 0

	k.X += k.VX
	k.Y += k.VY
}

// Speed returns the magnitude of the velocity.
func (k *Kinematics) Speed() float64 {
	return math.Hypot(k.VX, k.VY)
}

// DistanceTo returns the Euclidean distance from the body to (x,y).
func (k *Kinematics) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-k.X, y-k.Y)
}

func clampAxis(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
