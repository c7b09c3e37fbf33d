package game

import (
	"math"
	"testing"
)

func TestScriptedPointer_Keys(t *testing.T) {
	tick := 0
	sp := NewScriptedPointer(&tick,
		PointerKey{From: 10, X: 1, Y: 1},
		PointerKey{From: 20, X: 2, Y: 2},
		PointerKey{From: 30, X: 3, Y: 3},
	)
	cases := []struct {
		tick int
		x    float64
	}{
		{0, 1}, {10, 1}, {19, 1}, {20, 2}, {29, 2}, {30, 3}, {1000, 3},
	}
	for _, c := range cases {
		tick = c.tick
		x, _ := sp.PointerPosition()
		if x != c.x {
			t.Errorf("tick %d: expected x=%.0f, got %.0f", c.tick, c.x, x)
		}
	}
}

func TestScriptedPointer_NoKeys(t *testing.T) {
	sp := NewScriptedPointer(nil)
	if x, y := sp.PointerPosition(); x != 0 || y != 0 {
		t.Fatalf("expected origin, got (%.0f,%.0f)", x, y)
	}
}

func TestOrbitPointer_QuarterTurn(t *testing.T) {
	o := &OrbitPointer{CX: 100, CY: 100, Radius: 50, Period: 40}
	x, y := o.PointerPosition()
	if x != 150 || y != 100 {
		t.Fatalf("expected (150,100) at start, got (%.2f,%.2f)", x, y)
	}
	for i := 0; i < 10; i++ {
		o.Step()
	}
	x, y = o.PointerPosition()
	if math.Abs(x-100) > 1e-9 || math.Abs(y-150) > 1e-9 {
		t.Fatalf("expected (100,150) after a quarter turn, got (%.4f,%.4f)", x, y)
	}
}

func TestPercept_SightBoundaryIsNeither(t *testing.T) {
	p := Percept{PointerDist: 250, SightRange: 250}
	if p.TargetInSight() || p.TargetLost() {
		t.Fatal("a pointer exactly at sight range should be neither in sight nor lost")
	}
	p.PointerDist = 249.9
	if !p.TargetInSight() {
		t.Fatal("expected in sight just inside range")
	}
	p.PointerDist = 250.1
	if !p.TargetLost() {
		t.Fatal("expected lost just outside range")
	}
}
