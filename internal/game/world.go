package game

import (
	"fmt"
	"math/rand"
)

// DefaultDT is the elapsed time of one tick at 60 TPS, in seconds.
const DefaultDT = 1.0 / 60.0

// Event is a notable change in one agent during a tick.
type Event struct {
	Tick     int
	Agent    *Agent
	Category string // one of the Category* constants
	Key      string
	Value    string
	NumVal   float64
}

// stepper is implemented by pointer sources that move once per tick.
type stepper interface {
	Step()
}

type spawn struct {
	label  string
	x, y   float64
	tuning Tuning
}

// World runs independent agents in one arena against a shared pointer and
// pickup. Agents never interact with each other.
type World struct {
	Width, Height float64
	DT            float64

	Agents     []*Agent
	ThoughtLog *ThoughtLog

	tick   int
	seed   int64
	rng    *rand.Rand
	pickup WayPoint
	spawns []spawn
}

// NewWorld creates an empty arena. seed drives every agent's Wander stream.
func NewWorld(width, height float64, seed int64) *World {
	return &World{
		Width:      width,
		Height:     height,
		DT:         DefaultDT,
		ThoughtLog: NewThoughtLog(),
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)), // #nosec G404 -- simulation only
		pickup:     WayPoint{X: width / 2, Y: height / 2},
	}
}

// Spawn adds an agent at (x,y) and returns it.
func (w *World) Spawn(label string, x, y float64, t Tuning) *Agent {
	w.spawns = append(w.spawns, spawn{label: label, x: x, y: y, tuning: t})
	return w.spawnAgent(w.spawns[len(w.spawns)-1])
}

func (w *World) spawnAgent(sp spawn) *Agent {
	rng := rand.New(rand.NewSource(w.rng.Int63())) // #nosec G404 -- simulation only
	a := NewAgent(sp.label, sp.x, sp.y, w.Width, w.Height, sp.tuning, rng, w.ThoughtLog, &w.tick)
	a.SetPickupPos(w.pickup.X, w.pickup.Y)
	w.Agents = append(w.Agents, a)
	return a
}

// SetPickup moves the health pickup for every agent.
func (w *World) SetPickup(x, y float64) {
	w.pickup = WayPoint{X: x, Y: y}
	for _, a := range w.Agents {
		a.SetPickupPos(x, y)
	}
}

// Pickup returns the pickup position.
func (w *World) Pickup() WayPoint { return w.pickup }

// CurrentTick returns the number of completed ticks.
func (w *World) CurrentTick() int { return w.tick }

// Reset respawns every agent at its original position with the original
// seed and clears the thought log.
func (w *World) Reset() {
	w.tick = 0
	w.rng = rand.New(rand.NewSource(w.seed)) // #nosec G404 -- simulation only
	w.ThoughtLog = NewThoughtLog()
	w.Agents = w.Agents[:0]
	for _, sp := range w.spawns {
		w.spawnAgent(sp)
	}
}

// Step advances every agent by one tick and returns what changed.
//
// The pointer is read once and the same position is handed to every agent,
// which are processed one after another. A source with a Step method is
// advanced after the tick.
func (w *World) Step(src PositionSource) []Event {
	w.tick++
	px, py := src.PointerPosition()
	snapshot := StaticPointer{X: px, Y: py}

	var events []Event
	for _, a := range w.Agents {
		prevState := a.state
		prevHealth := a.health
		prevStats := a.stats

		a.Update(w.DT, snapshot)

		events = w.diff(events, a, prevState, prevHealth, prevStats)
	}

	if s, ok := src.(stepper); ok {
		s.Step()
	}
	return events
}

func (w *World) diff(events []Event, a *Agent, prevState AgentState, prevHealth int, prev AgentStats) []Event {
	if a.state != prevState {
		events = append(events, Event{
			Tick: w.tick, Agent: a, Category: CategoryState, Key: "change",
			Value:  fmt.Sprintf("%s → %s (%s)", prevState, a.state, a.lastReason),
			NumVal: float64(a.state),
		})
	}
	if a.stats.Hits > prev.Hits {
		events = append(events, Event{
			Tick: w.tick, Agent: a, Category: CategoryHealth, Key: "damage",
			Value:  fmt.Sprintf("%d → %d", prevHealth, a.health),
			NumVal: float64(a.health),
		})
	}
	if a.stats.Pickups > prev.Pickups {
		events = append(events, Event{
			Tick: w.tick, Agent: a, Category: CategoryHealth, Key: "restore",
			Value:  fmt.Sprintf("%d → %d", prevHealth, a.health),
			NumVal: float64(a.health),
		})
	}
	if a.stats.WaypointsReached > prev.WaypointsReached {
		wp, idx := a.CurrentWayPoint()
		events = append(events, Event{
			Tick: w.tick, Agent: a, Category: CategoryPatrol, Key: "advance",
			Value:  fmt.Sprintf("wp#%d (%.0f,%.0f)", idx, wp.X, wp.Y),
			NumVal: float64(idx),
		})
	}
	return events
}
