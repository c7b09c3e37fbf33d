package game

import "image/color"

// AgentState is the behaviour mode of an agent.
type AgentState int

const (
	StatePatrol AgentState = iota // walking the patrol loop
	StateAttack                   // chasing the pointer
	StateHealth                   // heading for the pickup
	StateSearch                   // wandering after losing the pointer

	stateCount
)

// String returns the lower-case state name used in logs and reports.
func (s AgentState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateAttack:
		return "attack"
	case StateHealth:
		return "health"
	case StateSearch:
		return "search"
	default:
		return "unknown"
	}
}

// stateColours is indexed by AgentState.
var stateColours = [stateCount]color.RGBA{
	StatePatrol: {R: 40, G: 200, B: 70, A: 255},  // green
	StateAttack: {R: 220, G: 40, B: 40, A: 255},  // red
	StateHealth: {R: 40, G: 100, B: 230, A: 255}, // blue
	StateSearch: {R: 255, G: 150, B: 20, A: 255}, // orange
}

// StateColour returns the colour an agent in state s is drawn with.
func StateColour(s AgentState) color.RGBA {
	if s < 0 || s >= stateCount {
		return color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return stateColours[s]
}
