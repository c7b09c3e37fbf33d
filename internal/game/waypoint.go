package game

// patrolInset is the distance of each patrol corner from the arena edges.
const patrolInset = 200.0

// WayPoint is a fixed point on a patrol route.
type WayPoint struct {
	X, Y float64
}

// PatrolLoop is an ordered route that wraps from the last point to the first.
type PatrolLoop struct {
	points []WayPoint
	index  int
}

// NewPatrolLoop copies points into a new loop starting at the first point.
func NewPatrolLoop(points ...WayPoint) PatrolLoop {
	return PatrolLoop{points: append([]WayPoint(nil), points...)}
}

// rectLoop returns the clockwise loop of four corners inset from an arena
// of size w×h.
func rectLoop(w, h float64) PatrolLoop {
	return NewPatrolLoop(
		WayPoint{X: patrolInset, Y: patrolInset},
		WayPoint{X: w - patrolInset, Y: patrolInset},
		WayPoint{X: w - patrolInset, Y: h - patrolInset},
		WayPoint{X: patrolInset, Y: h - patrolInset},
	)
}

// Current returns the waypoint being approached. ok is false for an empty loop.
func (p *PatrolLoop) Current() (wp WayPoint, ok bool) {
	if len(p.points) == 0 {
		return WayPoint{}, false
	}
	return p.points[p.index], true
}

// Advance moves to the next waypoint, wrapping at the end.
func (p *PatrolLoop) Advance() {
	if len(p.points) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.points)
}

// Index returns the position of the current waypoint in the loop.
func (p *PatrolLoop) Index() int { return p.index }

// Len returns the number of waypoints.
func (p *PatrolLoop) Len() int { return len(p.points) }

// Points returns a copy of the route.
func (p *PatrolLoop) Points() []WayPoint {
	return append([]WayPoint(nil), p.points...)
}
