package game

import (
	"fmt"
	"strings"
)

// Event categories emitted by World.Step and the verbose TestSim trace.
const (
	CategoryState  = "state"  // change, current
	CategoryHealth = "health" // damage, restore
	CategoryPatrol = "patrol" // advance
	CategoryMove   = "move"   // position, speed (verbose only)
)

// SimLogEntry is one recorded event during a headless simulation.
type SimLogEntry struct {
	Tick     int
	Agent    string  // label e.g. "A0"
	Category string  // one of the Category* constants
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] A0   state     change           patrol → attack
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Agent, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless simulation.
// Unlike ThoughtLog (UI ring-buffer), SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick position and
// speed entries are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, agent, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Agent:    agent,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, agent, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, agent, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// matches reports whether e has the category, key and value substring.
// Empty arguments match anything.
func (e SimLogEntry) matches(category, key, valueSubstr string) bool {
	if category != "" && e.Category != category {
		return false
	}
	if key != "" && e.Key != key {
		return false
	}
	return valueSubstr == "" || strings.Contains(e.Value, valueSubstr)
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.matches(category, key, "") {
			out = append(out, e)
		}
	}
	return out
}

// Transitions returns the state changes of one agent, oldest first.
func (sl *SimLog) Transitions(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Agent == label && e.matches(CategoryState, "change", "") {
			out = append(out, e)
		}
	}
	return out
}

// FirstTransition returns the tick of the agent's first state change whose
// value starts with prefix (e.g. "attack → search"), or -1.
func (sl *SimLog) FirstTransition(label, prefix string) int {
	for _, e := range sl.Transitions(label) {
		if strings.HasPrefix(e.Value, prefix) {
			return e.Tick
		}
	}
	return -1
}

// FilterAgent returns entries for a specific agent label.
func (sl *SimLog) FilterAgent(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Agent == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if e.matches(category, key, valueSubstr) {
			return true
		}
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the agents at tick.
func (sl *SimLog) Summary(tick int, agents []*Agent) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", tick)

	var counts [stateCount]int
	for _, a := range agents {
		if a.state >= 0 && a.state < stateCount {
			counts[a.state]++
		}
	}
	sb.WriteString("States: ")
	for st := AgentState(0); st < stateCount; st++ {
		if n := counts[st]; n > 0 {
			fmt.Fprintf(&sb, "%s=%d  ", st, n)
		}
	}
	sb.WriteByte('\n')

	for _, a := range agents {
		wp, idx := a.CurrentWayPoint()
		fmt.Fprintf(&sb, "%s: hp=%d/%d pos=(%.0f,%.0f) wp#%d=(%.0f,%.0f)\n",
			a.label, a.health, a.maxHealth, a.kin.X, a.kin.Y, idx, wp.X, wp.Y)
	}

	fmt.Fprintf(&sb, "Transitions logged: %d  hits: %d  pickups: %d\n",
		sl.CountCategory(CategoryState, "change"),
		sl.CountCategory(CategoryHealth, "damage"),
		sl.CountCategory(CategoryHealth, "restore"))
	return sb.String()
}
