package game

import (
	"fmt"
	"sort"
	"strings"
)

// AgentStats counts what an agent has done since it was created.
type AgentStats struct {
	Ticks            int
	StateTicks       [stateCount]int
	Transitions      int
	WaypointsReached int
	Hits             int // pointer contacts that cost health
	DamageTaken      int
	Pickups          int // pickups that actually restored health
}

// Share returns the fraction of ticks spent in state st.
func (s AgentStats) Share(st AgentState) float64 {
	if s.Ticks == 0 || st < 0 || st >= stateCount {
		return 0
	}
	return float64(s.StateTicks[st]) / float64(s.Ticks)
}

// String formats the counters on one line.
func (s AgentStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ticks=%d", s.Ticks)
	for st := AgentState(0); st < stateCount; st++ {
		fmt.Fprintf(&b, " %s=%.0f%%", st, s.Share(st)*100)
	}
	fmt.Fprintf(&b, " transitions=%d waypoints=%d hits=%d dmg=%d pickups=%d",
		s.Transitions, s.WaypointsReached, s.Hits, s.DamageTaken, s.Pickups)
	return b.String()
}

// AgentReport is a point-in-time view of one agent.
type AgentReport struct {
	ID     string
	Label  string
	State  AgentState
	Health int
	X, Y   float64
	Speed  float64
	Stats  AgentStats
}

// SimReport aggregates agent reports at one tick.
type SimReport struct {
	Tick   int
	Agents []AgentReport

	// StateCounts is how many agents are currently in each state.
	StateCounts [stateCount]int
}

// BuildReport snapshots agents into a SimReport ordered by label.
func BuildReport(tick int, agents []*Agent) SimReport {
	r := SimReport{Tick: tick}
	for _, a := range agents {
		if a.state >= 0 && a.state < stateCount {
			r.StateCounts[a.state]++
		}
		r.Agents = append(r.Agents, AgentReport{
			ID:     a.id,
			Label:  a.label,
			State:  a.state,
			Health: a.health,
			X:      a.kin.X,
			Y:      a.kin.Y,
			Speed:  a.kin.Speed(),
			Stats:  a.stats,
		})
	}
	sort.Slice(r.Agents, func(i, j int) bool { return r.Agents[i].Label < r.Agents[j].Label })
	return r
}

// Totals sums the stats of every agent in the report.
func (r SimReport) Totals() AgentStats {
	var t AgentStats
	for _, a := range r.Agents {
		t.Ticks += a.Stats.Ticks
		for st := range t.StateTicks {
			t.StateTicks[st] += a.Stats.StateTicks[st]
		}
		t.Transitions += a.Stats.Transitions
		t.WaypointsReached += a.Stats.WaypointsReached
		t.Hits += a.Stats.Hits
		t.DamageTaken += a.Stats.DamageTaken
		t.Pickups += a.Stats.Pickups
	}
	return t
}

// Format renders the report as a multi-line block.
func (r SimReport) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Report at T=%03d ---\n", r.Tick)
	b.WriteString("states:")
	for st := AgentState(0); st < stateCount; st++ {
		fmt.Fprintf(&b, " %s=%d", st, r.StateCounts[st])
	}
	b.WriteByte('\n')
	for _, a := range r.Agents {
		fmt.Fprintf(&b, "%-4s %-7s hp=%3d pos=(%.0f,%.0f) v=%.2f  %s\n",
			a.Label, a.State, a.Health, a.X, a.Y, a.Speed, a.Stats)
	}
	return b.String()
}
