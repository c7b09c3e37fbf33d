package game

import (
	"math"
	"math/rand"
)

// Seek adds a steering force toward (tx,ty) to the acceleration accumulator.
//
//	desired  = normal(target - position) * MaxSpeed
//	steering = (desired - velocity) / |desired|
//	accel   += steering * MaxForce * weight
//
// The steering vector is scaled by the desired vector's length rather than
// its own, so its magnitude grows with the velocity error. Set
// CorrectedSteering to divide by |desired - velocity| instead.
//
// A target on top of the body, or any non-finite intermediate, leaves the
// accumulator untouched.
func (k *Kinematics) Seek(tx, ty, weight float64) {
	dx := tx - k.X
	dy := ty - k.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 || !finite(dist) {
		return
	}

	desX := dx / dist * k.MaxSpeed
	desY := dy / dist * k.MaxSpeed

	steerX := desX - k.VX
	steerY := desY - k.VY

	norm := math.Hypot(desX, desY)
	if k.CorrectedSteering {
		norm = math.Hypot(steerX, steerY)
	}
	if norm == 0 || !finite(norm) {
		return
	}

	ax := steerX / norm * k.MaxForce * weight
	ay := steerY / norm * k.MaxForce * weight
	if !finite(ax, ay) {
		return
	}
	k.AX += ax
	k.AY += ay
}

// Wander seeks a point jittered around a circle projected ahead of the body.
//
// Two angles are drawn from rng every call: one picks a point on the circle
// of the given radius, the other a jitter offset. Their sum is scaled back
// to radius and added to the heading projected distance ahead. A body at
// rest has no heading and is left untouched.
func (k *Kinematics) Wander(rng *rand.Rand, radius, jitter, distance, weight float64) {
	circleAngle := rng.Float64() * 2 * math.Pi
	jitterAngle := rng.Float64() * 2 * math.Pi

	offX := math.Cos(circleAngle)*radius + math.Cos(jitterAngle)*jitter
	offY := math.Sin(circleAngle)*radius + math.Sin(jitterAngle)*jitter
	offMag := math.Hypot(offX, offY)
	if offMag == 0 {
		return
	}
	offX *= radius / offMag
	offY *= radius / offMag

	speed := k.Speed()
	if speed == 0 || !finite(speed) {
		return
	}
	aheadX := k.VX / speed * distance
	aheadY := k.VY / speed * distance

	k.Seek(k.X+offX+aheadX, k.Y+offY+aheadY, weight)
}
