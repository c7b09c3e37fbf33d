package game

import "testing"

func TestRectLoop_Corners(t *testing.T) {
	loop := rectLoop(1280, 720)
	want := []WayPoint{{200, 200}, {1080, 200}, {1080, 520}, {200, 520}}
	got := loop.Points()
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestPatrolLoop_AdvanceWraps(t *testing.T) {
	loop := NewPatrolLoop(WayPoint{0, 0}, WayPoint{1, 0}, WayPoint{1, 1})
	for i := 0; i < 7; i++ {
		if loop.Index() != i%3 {
			t.Fatalf("step %d: expected index %d, got %d", i, i%3, loop.Index())
		}
		loop.Advance()
	}
	wp, ok := loop.Current()
	if !ok || wp != (WayPoint{1, 0}) {
		t.Fatalf("expected (1,0) after 7 advances, got %v ok=%v", wp, ok)
	}
}

func TestPatrolLoop_Empty(t *testing.T) {
	var loop PatrolLoop
	loop.Advance()
	if _, ok := loop.Current(); ok {
		t.Fatal("empty loop should report no current waypoint")
	}
	if loop.Len() != 0 || loop.Index() != 0 {
		t.Fatalf("unexpected empty loop state len=%d idx=%d", loop.Len(), loop.Index())
	}
}

func TestPatrolLoop_PointsIsCopy(t *testing.T) {
	loop := NewPatrolLoop(WayPoint{5, 5})
	pts := loop.Points()
	pts[0].X = 99
	if wp, _ := loop.Current(); wp.X != 5 {
		t.Fatal("mutating Points() leaked into the loop")
	}
}
