package game

const (
	waypointReachDist  = 15.0 // advance to the next waypoint inside this distance
	lowHealthThreshold = 50   // at or below: break off and fetch the pickup
	searchTimeout      = 3.0  // seconds of fruitless searching before patrolling again

	searchWanderRadius   = 180.0
	searchWanderJitter   = 60.0
	searchWanderDistance = 60.0
)

// transition is one outgoing edge of a state.
type transition struct {
	to     AgentState
	reason string
	when   func(Percept) bool
}

func lowHealth(p Percept) bool     { return p.Health <= lowHealthThreshold }
func fullyHealed(p Percept) bool   { return p.Health == p.MaxHealth }
func targetInSight(p Percept) bool { return p.TargetInSight() }
func targetLost(p Percept) bool    { return p.TargetLost() }
func searchExpired(p Percept) bool { return p.SearchTime > searchTimeout }

// transitions lists each state's outgoing edges in priority order. Low health
// outranks everything except in Health itself, which only exits when healed.
var transitions = [stateCount][]transition{
	StatePatrol: {
		{to: StateHealth, reason: "low health", when: lowHealth},
		{to: StateAttack, reason: "target in sight", when: targetInSight},
	},
	StateAttack: {
		{to: StateHealth, reason: "low health", when: lowHealth},
		{to: StateSearch, reason: "target lost", when: targetLost},
	},
	StateSearch: {
		{to: StateHealth, reason: "low health", when: lowHealth},
		{to: StateAttack, reason: "target reacquired", when: targetInSight},
		{to: StatePatrol, reason: "search timed out", when: searchExpired},
	},
	StateHealth: {
		{to: StatePatrol, reason: "healed", when: fullyHealed},
	},
}

// NextState evaluates the edges out of from against p. It returns the first
// matching edge's target and reason, or from and ok=false if none match.
func NextState(from AgentState, p Percept) (to AgentState, reason string, ok bool) {
	if from < 0 || from >= stateCount {
		return from, "", false
	}
	for _, t := range transitions[from] {
		if t.when(p) {
			return t.to, t.reason, true
		}
	}
	return from, "", false
}

// updateFSM runs one perceive → actuate → transition step.
func (a *Agent) updateFSM(dt, px, py float64) {
	if a.searching {
		a.searchTimer += dt
	}

	switch a.state {
	case StatePatrol:
		a.patrolStep()
	case StateAttack:
		a.kin.Seek(px, py, 1)
	case StateSearch:
		a.searching = true
		a.kin.Wander(a.rng, searchWanderRadius, searchWanderJitter, searchWanderDistance, 1)
	case StateHealth:
		a.kin.Seek(a.pickup.X, a.pickup.Y, 1)
	}

	p := a.percept(px, py)
	if to, reason, ok := NextState(a.state, p); ok {
		a.transition(to, reason, p)
	}
}

// patrolStep advances past a reached waypoint, then seeks the current one.
func (a *Agent) patrolStep() {
	wp, ok := a.patrol.Current()
	if !ok {
		return
	}
	if a.kin.DistanceTo(wp.X, wp.Y) < waypointReachDist {
		a.patrol.Advance()
		a.stats.WaypointsReached++
		wp, _ = a.patrol.Current()
		a.think("waypoint %d/%d", a.patrol.Index()+1, a.patrol.Len())
	}
	a.kin.Seek(wp.X, wp.Y, 1)
}

func (a *Agent) percept(px, py float64) Percept {
	return Percept{
		PointerX:    px,
		PointerY:    py,
		PointerDist: a.kin.DistanceTo(px, py),
		SightRange:  a.sightRange,
		Health:      a.health,
		MaxHealth:   a.maxHealth,
		SearchTime:  a.searchTimer,
	}
}

// transition switches state. Leaving Search always clears the search timer.
func (a *Agent) transition(to AgentState, reason string, p Percept) {
	from := a.state
	if from == StateSearch {
		a.searching = false
		a.searchTimer = 0
	}
	a.state = to
	a.lastReason = reason
	a.stats.Transitions++
	a.think("%s → %s: %s (d=%.0f hp=%d)", from, to, reason, p.PointerDist, p.Health)
}
