package game

import "math"

// PositionSource reports where the tracked pointer is. Implementations must
// not block; the agent queries it once per tick.
type PositionSource interface {
	PointerPosition() (x, y float64)
}

// StaticPointer is a pointer that never moves.
type StaticPointer struct {
	X, Y float64
}

// PointerPosition implements PositionSource.
func (p StaticPointer) PointerPosition() (float64, float64) {
	return p.X, p.Y
}

// OrbitPointer circles a centre point, advancing one step each time Step is
// called. It stands in for a player sweeping the mouse around the arena.
type OrbitPointer struct {
	CX, CY float64
	Radius float64
	Period int // ticks per revolution

	tick int
}

// PointerPosition implements PositionSource.
func (o *OrbitPointer) PointerPosition() (float64, float64) {
	period := o.Period
	if period <= 0 {
		period = 1
	}
	a := 2 * math.Pi * float64(o.tick%period) / float64(period)
	return o.CX + o.Radius*math.Cos(a), o.CY + o.Radius*math.Sin(a)
}

// Step advances the orbit by one tick.
func (o *OrbitPointer) Step() { o.tick++ }

// PointerKey is one leg of a ScriptedPointer: hold (X,Y) from tick From on.
type PointerKey struct {
	From int
	X, Y float64
}

// ScriptedPointer replays a fixed list of pointer positions keyed by tick.
// Keys must be sorted by From. Before the first key the pointer sits at the
// first key's position.
type ScriptedPointer struct {
	Keys []PointerKey
	tick *int
}

// NewScriptedPointer returns a pointer that reads the current tick from tick.
func NewScriptedPointer(tick *int, keys ...PointerKey) *ScriptedPointer {
	return &ScriptedPointer{Keys: keys, tick: tick}
}

// PointerPosition implements PositionSource.
func (sp *ScriptedPointer) PointerPosition() (float64, float64) {
	if len(sp.Keys) == 0 {
		return 0, 0
	}
	now := 0
	if sp.tick != nil {
		now = *sp.tick
	}
	cur := sp.Keys[0]
	for _, k := range sp.Keys[1:] {
		if k.From > now {
			break
		}
		cur = k
	}
	return cur.X, cur.Y
}

// Percept is what an agent observes at the start of its FSM step. It is
// built once per tick and shared by actuation and the transition rules.
type Percept struct {
	PointerX, PointerY float64
	PointerDist        float64
	SightRange         float64
	Health             int
	MaxHealth          int
	SearchTime         float64
}

// TargetInSight reports whether the pointer is strictly inside sight range.
func (p Percept) TargetInSight() bool { return p.PointerDist < p.SightRange }

// TargetLost reports whether the pointer is strictly outside sight range.
func (p Percept) TargetLost() bool { return p.PointerDist > p.SightRange }
