package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestSeek_OnTargetIsNoOp(t *testing.T) {
	k := NewKinematics(5, 5)
	k.VX = 1
	k.Seek(5, 5, 1)
	if k.AX != 0 || k.AY != 0 {
		t.Fatalf("expected no steering on target, got (%.3f,%.3f)", k.AX, k.AY)
	}
}

func TestSeek_NonFiniteTargetIsNoOp(t *testing.T) {
	k := NewKinematics(0, 0)
	k.Seek(math.NaN(), 0, 1)
	k.Seek(math.Inf(1), 10, 1)
	if k.AX != 0 || k.AY != 0 {
		t.Fatalf("expected no steering for non-finite target, got (%.3f,%.3f)", k.AX, k.AY)
	}
}

func TestSeek_ZeroMaxSpeedIsNoOp(t *testing.T) {
	k := NewKinematics(0, 0)
	k.MaxSpeed = 0
	k.Seek(100, 0, 1)
	if k.AX != 0 || k.AY != 0 {
		t.Fatalf("expected no steering with zero max speed, got (%.3f,%.3f)", k.AX, k.AY)
	}
}

func TestSeek_FromRest(t *testing.T) {
	k := NewKinematics(0, 0)
	k.Seek(0, 50, 1)
	if math.Abs(k.AY-0.1) > 1e-12 || k.AX != 0 {
		t.Fatalf("expected accel (0,0.1), got (%.4f,%.4f)", k.AX, k.AY)
	}
}

func TestSeek_WeightScalesAndAccumulates(t *testing.T) {
	k := NewKinematics(0, 0)
	k.Seek(100, 0, 2)
	if math.Abs(k.AX-0.2) > 1e-12 {
		t.Fatalf("expected accel 0.2 at weight 2, got %.4f", k.AX)
	}
	k.Seek(100, 0, 1)
	if math.Abs(k.AX-0.3) > 1e-12 {
		t.Fatalf("expected accumulated accel 0.3, got %.4f", k.AX)
	}
}

func TestSeek_FaithfulVersusCorrected(t *testing.T) {
	// Moving away from the target at full speed: desired=(4,0), steering=(8,0).
	faithful := NewKinematics(0, 0)
	faithful.VX = -4
	faithful.Seek(100, 0, 1)
	if math.Abs(faithful.AX-0.2) > 1e-12 {
		t.Fatalf("faithful: expected 8/4*0.1=0.2, got %.4f", faithful.AX)
	}

	corrected := NewKinematics(0, 0)
	corrected.VX = -4
	corrected.CorrectedSteering = true
	corrected.Seek(100, 0, 1)
	if math.Abs(corrected.AX-0.1) > 1e-12 {
		t.Fatalf("corrected: expected unit steering 0.1, got %.4f", corrected.AX)
	}
}

func TestSeek_CorrectedAtDesiredVelocityIsNoOp(t *testing.T) {
	k := NewKinematics(0, 0)
	k.VX = 4
	k.CorrectedSteering = true
	k.Seek(100, 0, 1)
	if k.AX != 0 || k.AY != 0 {
		t.Fatalf("expected no steering once at desired velocity, got (%.3f,%.3f)", k.AX, k.AY)
	}
}

func TestWander_AtRestIsNoOpButDrawsAngles(t *testing.T) {
	rng := rand.New(rand.NewSource(9)) // #nosec G404 -- test
	ref := rand.New(rand.NewSource(9)) // #nosec G404 -- test
	k := NewKinematics(100, 100)

	k.Wander(rng, 180, 60, 60, 1)

	if k.AX != 0 || k.AY != 0 {
		t.Fatalf("expected no steering at rest, got (%.3f,%.3f)", k.AX, k.AY)
	}
	ref.Float64()
	ref.Float64()
	if rng.Float64() != ref.Float64() {
		t.Fatal("wander at rest should still consume two rng draws")
	}
}

func TestWander_SteersWhenMoving(t *testing.T) {
	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- test
	k := NewKinematics(100, 100)
	k.VX = 2

	k.Wander(rng, 180, 60, 60, 1)

	mag := math.Hypot(k.AX, k.AY)
	if mag == 0 {
		t.Fatal("expected wander to steer a moving body")
	}
	// |desired - v| <= 4 + 2, divided by |desired| = 4.
	if mag > 0.15+1e-9 {
		t.Fatalf("steering magnitude %.4f exceeds bound 0.15", mag)
	}
}

func TestWander_DeterministicPerSeed(t *testing.T) {
	run := func() (float64, float64) {
		rng := rand.New(rand.NewSource(77)) // #nosec G404 -- test
		k := NewKinematics(300, 300)
		k.VX, k.VY = 1, 1
		for i := 0; i < 50; i++ {
			k.Wander(rng, 180, 60, 60, 1)
			k.Integrate(DefaultDT)
		}
		return k.X, k.Y
	}
	x1, y1 := run()
	x2, y2 := run()
	if x1 != x2 || y1 != y2 {
		t.Fatalf("same seed diverged: (%.3f,%.3f) vs (%.3f,%.3f)", x1, y1, x2, y2)
	}
}
