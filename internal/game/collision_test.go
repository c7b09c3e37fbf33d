package game

import "testing"

func frozenTuning() Tuning {
	t := DefaultTuning()
	t.MaxSpeed = 0
	return t
}

func TestCollision_DamageIsDebounced(t *testing.T) {
	a := newTestAgent(t, frozenTuning())
	touching := StaticPointer{X: 105, Y: 100}

	for i := 0; i < 10; i++ {
		a.Update(DefaultDT, touching)
	}
	if a.Health() != 85 {
		t.Fatalf("expected one hit over a continuous overlap (85hp), got %d", a.Health())
	}

	a.Update(DefaultDT, farPointer)
	a.Update(DefaultDT, touching)
	if a.Health() != 70 {
		t.Fatalf("expected a second hit after breaking contact (70hp), got %d", a.Health())
	}
	if a.Stats().Hits != 2 || a.Stats().DamageTaken != 30 {
		t.Fatalf("unexpected stats %+v", a.Stats())
	}
}

func TestCollision_ContactRadiusInclusive(t *testing.T) {
	a := newTestAgent(t, frozenTuning())
	a.Update(DefaultDT, StaticPointer{X: 120, Y: 100})
	if a.Health() != 85 {
		t.Fatalf("expected a hit at exactly 20px, got %dhp", a.Health())
	}

	b := newTestAgent(t, frozenTuning())
	b.Update(DefaultDT, StaticPointer{X: 120.5, Y: 100})
	if b.Health() != 100 {
		t.Fatalf("expected no hit beyond 20px, got %dhp", b.Health())
	}
}

func TestCollision_HealthFloorsAtZero(t *testing.T) {
	a := newTestAgent(t, frozenTuning())
	a.SetHealth(10)
	a.Update(DefaultDT, StaticPointer{X: 100, Y: 100})
	if a.Health() != 0 {
		t.Fatalf("expected health clamped to 0, got %d", a.Health())
	}
	if a.Stats().DamageTaken != 10 {
		t.Fatalf("damage taken should count only health actually lost, got %d", a.Stats().DamageTaken)
	}
}

func TestCollision_PickupRestoresToMax(t *testing.T) {
	a := newTestAgent(t, frozenTuning())
	a.SetPickupPos(110, 100)
	a.SetHealth(40)
	a.Update(DefaultDT, farPointer)
	if a.Health() != 100 {
		t.Fatalf("expected full health after pickup, got %d", a.Health())
	}
	if a.Stats().Pickups != 1 {
		t.Fatalf("expected 1 pickup, got %d", a.Stats().Pickups)
	}
	if a.State() != StatePatrol {
		t.Fatalf("expected to stay on patrol once healed, got %s", a.State())
	}

	a.Update(DefaultDT, farPointer)
	if a.Stats().Pickups != 1 {
		t.Fatalf("overlapping the pickup at full health should not count, got %d", a.Stats().Pickups)
	}
}

func TestCollision_PickupAppliedAfterDamage(t *testing.T) {
	a := newTestAgent(t, frozenTuning())
	a.SetPickupPos(100, 100)
	a.SetHealth(60)
	a.Update(DefaultDT, StaticPointer{X: 100, Y: 100})
	if a.Health() != 100 {
		t.Fatalf("expected the pickup to undo same-tick damage, got %d", a.Health())
	}
	if a.Stats().Hits != 1 || a.Stats().Pickups != 1 {
		t.Fatalf("expected one hit and one pickup, got %+v", a.Stats())
	}
}

func TestSetHealth_Clamps(t *testing.T) {
	a := newTestAgent(t, DefaultTuning())
	a.SetHealth(500)
	if a.Health() != 100 {
		t.Fatalf("expected clamp to max, got %d", a.Health())
	}
	a.SetHealth(-5)
	if a.Health() != 0 {
		t.Fatalf("expected clamp to 0, got %d", a.Health())
	}
}
