package game

import (
	"fmt"
	"math"
	"strings"
)

// DebugReport renders a plain-text dump of one agent for pasting into bug
// reports: identity, behaviour state, kinematics, counters and the agent's
// most recent thought-log lines.
func DebugReport(a *Agent, tl *ThoughtLog, tick int, lastLines int) string {
	if a == nil {
		return ""
	}
	if lastLines <= 0 {
		lastLines = 20
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- agent debug report ---\n")
	fmt.Fprintf(&b, "tick=%d label=%s id=%s\n", tick, a.label, a.id)
	fmt.Fprintf(&b, "state=%s last_reason=%q searching=%v search_timer=%.2fs\n",
		a.state, a.lastReason, a.searching, a.searchTimer)
	fmt.Fprintf(&b, "health=%d/%d taking_damage=%v sight=%.0f\n",
		a.health, a.maxHealth, a.takingDamage, a.sightRange)

	k := a.kin
	fmt.Fprintf(&b, "pos=(%.2f,%.2f) vel=(%.3f,%.3f) speed=%.3f rot=%.1f°\n",
		k.X, k.Y, k.VX, k.VY, k.Speed(), k.Rotation*180/math.Pi)
	fmt.Fprintf(&b, "max_speed=%.2f max_force=%.3f corrected_steering=%v\n",
		k.MaxSpeed, k.MaxForce, k.CorrectedSteering)

	wp, idx := a.CurrentWayPoint()
	fmt.Fprintf(&b, "patrol wp#%d/%d=(%.0f,%.0f) dist=%.1f pickup=(%.0f,%.0f) dist=%.1f\n",
		idx, a.patrol.Len(), wp.X, wp.Y, k.DistanceTo(wp.X, wp.Y),
		a.pickup.X, a.pickup.Y, k.DistanceTo(a.pickup.X, a.pickup.Y))
	fmt.Fprintf(&b, "stats: %s\n", a.stats)

	if tl != nil {
		lines := tl.RecentFor(a.label, lastLines)
		b.WriteString("recent:\n")
		if len(lines) == 0 {
			b.WriteString("  (none)\n")
		}
		for _, e := range lines {
			fmt.Fprintf(&b, "  %4d [%s] %s\n", e.Tick, e.State, e.Message)
		}
	}
	return b.String()
}
