package game

const (
	contactRadius = 20.0 // pointer and pickup touch the agent inside this distance
	contactDamage = 15   // health lost per pointer contact
)

// checkCollisions applies pointer damage and pickup healing for this tick.
func (a *Agent) checkCollisions(px, py float64) {
	if a.kin.DistanceTo(px, py) <= contactRadius {
		if !a.takingDamage {
			a.takingDamage = true
			a.damage(contactDamage)
		}
	} else {
		a.takingDamage = false
	}

	if a.kin.DistanceTo(a.pickup.X, a.pickup.Y) <= contactRadius {
		a.restore()
	}
}

func (a *Agent) damage(n int) {
	before := a.health
	a.health = clampHealth(a.health-n, a.maxHealth)
	a.stats.Hits++
	a.stats.DamageTaken += before - a.health
	a.think("hit: %d → %d hp", before, a.health)
}

// restore tops health up to the maximum. Overlapping the pickup at full
// health is a no-op.
func (a *Agent) restore() {
	if a.health == a.maxHealth {
		return
	}
	before := a.health
	a.health = a.maxHealth
	a.stats.Pickups++
	a.think("pickup: %d → %d hp", before, a.health)
}

func clampHealth(h, maxHealth int) int {
	if h < 0 {
		return 0
	}
	if h > maxHealth {
		return maxHealth
	}
	return h
}
