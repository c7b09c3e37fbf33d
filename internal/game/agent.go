package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

const (
	defaultSightRange = 250.0
	defaultMaxHealth  = 100
)

// Tuning holds the per-agent constants that shape movement and perception.
type Tuning struct {
	MaxSpeed          float64
	MaxForce          float64
	SightRange        float64
	MaxHealth         int
	CorrectedSteering bool
}

// DefaultTuning returns the stock agent constants.
func DefaultTuning() Tuning {
	return Tuning{
		MaxSpeed:   defaultMaxSpeed,
		MaxForce:   defaultMaxForce,
		SightRange: defaultSightRange,
		MaxHealth:  defaultMaxHealth,
	}
}

// Agent is a steered character driven by a four-state behaviour machine.
type Agent struct {
	id    string
	label string

	kin    Kinematics
	patrol PatrolLoop
	pickup WayPoint

	state      AgentState
	lastReason string

	health     int
	maxHealth  int
	sightRange float64

	// takingDamage debounces pointer contact: one hit per continuous overlap.
	takingDamage bool
	searching    bool
	searchTimer  float64

	rng         *rand.Rand
	thoughtLog  *ThoughtLog
	currentTick *int
	stats       AgentStats
}

// NewAgent creates an agent at (x,y) patrolling the inset corners of an
// arenaW×arenaH arena. rng drives Wander; tl and tick may be nil.
func NewAgent(label string, x, y, arenaW, arenaH float64, t Tuning, rng *rand.Rand, tl *ThoughtLog, tick *int) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(1)) // #nosec G404 -- simulation only
	}
	if t.MaxHealth <= 0 {
		t.MaxHealth = defaultMaxHealth
	}
	kin := NewKinematics(x, y)
	kin.MaxSpeed = t.MaxSpeed
	kin.MaxForce = t.MaxForce
	kin.CorrectedSteering = t.CorrectedSteering

	return &Agent{
		id:          uuid.NewString(),
		label:       label,
		kin:         kin,
		patrol:      rectLoop(arenaW, arenaH),
		state:       StatePatrol,
		health:      t.MaxHealth,
		maxHealth:   t.MaxHealth,
		sightRange:  t.SightRange,
		rng:         rng,
		thoughtLog:  tl,
		currentTick: tick,
	}
}

// Update runs one tick: integrate the steering accumulated last tick, resolve
// contact with the pointer and the pickup, then step the behaviour machine.
// src is read exactly once.
func (a *Agent) Update(dt float64, src PositionSource) {
	px, py := src.PointerPosition()

	a.kin.Integrate(dt)
	a.checkCollisions(px, py)
	a.updateFSM(dt, px, py)

	a.stats.StateTicks[a.state]++
	a.stats.Ticks++
}

// SetPickupPos moves the health pickup.
func (a *Agent) SetPickupPos(x, y float64) {
	a.pickup = WayPoint{X: x, Y: y}
}

// SetState forces the behaviour state without evaluating transitions.
// Unknown states are ignored.
func (a *Agent) SetState(s AgentState) {
	if s < 0 || s >= stateCount {
		return
	}
	if a.state == StateSearch && s != StateSearch {
		a.searching = false
		a.searchTimer = 0
	}
	a.state = s
}

// SetHealth sets health, clamped to [0, MaxHealth].
func (a *Agent) SetHealth(h int) {
	a.health = clampHealth(h, a.maxHealth)
}

// ID returns the agent's unique id.
func (a *Agent) ID() string { return a.id }

// Label returns the display label, e.g. "A0".
func (a *Agent) Label() string { return a.label }

// State returns the current behaviour state.
func (a *Agent) State() AgentState { return a.state }

// LastReason returns why the last transition fired.
func (a *Agent) LastReason() string { return a.lastReason }

// Health returns current health.
func (a *Agent) Health() int { return a.health }

// MaxHealth returns the health a pickup restores to.
func (a *Agent) MaxHealth() int { return a.maxHealth }

// SightRange returns the pointer detection radius.
func (a *Agent) SightRange() float64 { return a.sightRange }

// PickupPos returns the health pickup position.
func (a *Agent) PickupPos() WayPoint { return a.pickup }

// Rotation returns the sprite heading in radians.
func (a *Agent) Rotation() float64 { return a.kin.Rotation }

// SearchTime returns the seconds spent searching so far.
func (a *Agent) SearchTime() float64 { return a.searchTimer }

// Kinematics returns a copy of the steered body.
func (a *Agent) Kinematics() Kinematics { return a.kin }

// Stats returns a copy of the agent's counters.
func (a *Agent) Stats() AgentStats { return a.stats }

// Position returns the agent's centre.
func (a *Agent) Position() (x, y float64) { return a.kin.X, a.kin.Y }

// Velocity returns the agent's velocity in pixels per tick.
func (a *Agent) Velocity() (vx, vy float64) { return a.kin.VX, a.kin.VY }

// CurrentWayPoint returns the patrol target and its index in the loop.
func (a *Agent) CurrentWayPoint() (WayPoint, int) {
	wp, _ := a.patrol.Current()
	return wp, a.patrol.Index()
}

// PatrolRoute returns a copy of the patrol loop's waypoints.
func (a *Agent) PatrolRoute() []WayPoint { return a.patrol.Points() }

func (a *Agent) tick() int {
	if a.currentTick == nil {
		return 0
	}
	return *a.currentTick
}

// think records a line in the agent's thought log, if it has one.
func (a *Agent) think(format string, args ...any) {
	if a.thoughtLog == nil {
		return
	}
	a.thoughtLog.Add(a.tick(), a.label, a.state, fmt.Sprintf(format, args...))
}
