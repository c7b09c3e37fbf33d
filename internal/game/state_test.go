package game

import (
	"image/color"
	"testing"
)

func TestAgentState_String(t *testing.T) {
	names := map[AgentState]string{
		StatePatrol:    "patrol",
		StateAttack:    "attack",
		StateHealth:    "health",
		StateSearch:    "search",
		AgentState(42): "unknown",
	}
	for st, want := range names {
		if got := st.String(); got != want {
			t.Errorf("state %d: expected %q, got %q", int(st), want, got)
		}
	}
}

func TestStateColour_DistinctPerState(t *testing.T) {
	seen := map[color.RGBA]AgentState{}
	for st := AgentState(0); st < stateCount; st++ {
		c := StateColour(st)
		if prev, dup := seen[c]; dup {
			t.Fatalf("%s and %s share colour %v", prev, st, c)
		}
		seen[c] = st
	}
	if c := StateColour(StateAttack); c.R <= c.G || c.R <= c.B {
		t.Fatalf("attack should be drawn red, got %v", c)
	}
	if c := StateColour(-1); c.R != 128 || c.G != 128 || c.B != 128 {
		t.Fatalf("out-of-range state should be grey, got %v", c)
	}
}
