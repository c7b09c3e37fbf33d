package game

import "fmt"

// TestSim is a headless simulation harness used by tests and the headless
// report. It drives a World with a scripted pointer and records every event
// into a SimLog.
type TestSim struct {
	Width   float64
	Height  float64
	World   *World
	Pointer PositionSource
	SimLog  *SimLog

	seed   int64
	dt     float64
	pickup *WayPoint
	tuning Tuning
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // map size, seed, verbose, tuning: applied first
	simOptWorld                      // pickup and pointer: applied once the world exists
	simOptAgent                      // spawn agents
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithMapSize sets the arena dimensions.
func WithMapSize(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Width = w
		ts.Height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithTuning sets the tuning used by agents spawned after it.
func WithTuning(t Tuning) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.tuning = t
	}}
}

// WithDT sets the seconds elapsed per tick.
func WithDT(dt float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.dt = dt
	}}
}

// WithPickup places the health pickup.
func WithPickup(x, y float64) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.pickup = &WayPoint{X: x, Y: y}
	}}
}

// WithPointer sets the pointer source.
func WithPointer(src PositionSource) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.Pointer = src
	}}
}

// WithStaticPointer parks the pointer at (x,y).
func WithStaticPointer(x, y float64) SimOption {
	return WithPointer(StaticPointer{X: x, Y: y})
}

// WithScriptedPointer replays keys against the simulation tick.
func WithScriptedPointer(keys ...PointerKey) SimOption {
	return SimOption{simOptWorld, func(ts *TestSim) {
		ts.Pointer = NewScriptedPointer(&ts.World.tick, keys...)
	}}
}

// WithAgent spawns an agent labelled label at (x,y).
func WithAgent(label string, x, y float64) SimOption {
	return SimOption{simOptAgent, func(ts *TestSim) {
		ts.World.Spawn(label, x, y, ts.tuning)
	}}
}

// NewTestSim constructs a TestSim from the given options in ordered passes:
//  1. Infrastructure (map size, seed, verbose, tuning)
//  2. Build the World
//  3. Pickup and pointer
//  4. Agents
//
// The pointer defaults to a far corner outside every agent's sight.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Width:  1280,
		Height: 720,
		SimLog: NewSimLog(false),
		seed:   1,
		tuning: DefaultTuning(),
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.World = NewWorld(ts.Width, ts.Height, ts.seed)
	if ts.dt > 0 {
		ts.World.DT = ts.dt
	}
	ts.Pointer = StaticPointer{X: -10000, Y: -10000}
	for _, o := range opts {
		if o.kind == simOptWorld {
			o.fn(ts)
		}
	}
	if ts.pickup != nil {
		ts.World.SetPickup(ts.pickup.X, ts.pickup.Y)
	}
	for _, o := range opts {
		if o.kind == simOptAgent {
			o.fn(ts)
		}
	}
	return ts
}

// Agents returns every agent in the simulation.
func (ts *TestSim) Agents() []*Agent {
	return ts.World.Agents
}

// Agent returns the agent with the given label, or nil.
func (ts *TestSim) Agent(label string) *Agent {
	for _, a := range ts.World.Agents {
		if a.label == label {
			return a
		}
	}
	return nil
}

// RunTicks advances the simulation n ticks, logging events to SimLog.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.runOneTick()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.runOneTick()
		if predicate(ts) {
			return ts.World.tick
		}
	}
	return -1
}

func (ts *TestSim) runOneTick() {
	events := ts.World.Step(ts.Pointer)
	tick := ts.World.tick

	for _, e := range events {
		ts.SimLog.Add(e.Tick, e.Agent.label, e.Category, e.Key, e.Value, e.NumVal)
	}

	for _, a := range ts.World.Agents {
		ts.SimLog.AddVerbose(tick, a.label, CategoryMove, "position",
			fmt.Sprintf("(%.1f,%.1f)", a.kin.X, a.kin.Y), 0)
		ts.SimLog.AddVerbose(tick, a.label, CategoryMove, "speed",
			fmt.Sprintf("%.3f", a.kin.Speed()), a.kin.Speed())
		ts.SimLog.AddVerbose(tick, a.label, CategoryState, "current", a.state.String(), float64(a.state))
	}
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.World.tick
}

// SimSnapshot captures a lightweight state summary.
type SimSnapshot struct {
	Tick   int
	Agents []AgentSnapshot
}

// AgentSnapshot is a lightweight copy of an agent's state at a tick.
type AgentSnapshot struct {
	Label  string
	X, Y   float64
	VX, VY float64
	State  AgentState
	Health int
	Index  int // patrol waypoint index
}

// Snapshot returns the current state of all agents.
func (ts *TestSim) Snapshot() SimSnapshot {
	snap := SimSnapshot{Tick: ts.World.tick}
	for _, a := range ts.World.Agents {
		snap.Agents = append(snap.Agents, AgentSnapshot{
			Label:  a.label,
			X:      a.kin.X,
			Y:      a.kin.Y,
			VX:     a.kin.VX,
			VY:     a.kin.VY,
			State:  a.state,
			Health: a.health,
			Index:  a.patrol.Index(),
		})
	}
	return snap
}
