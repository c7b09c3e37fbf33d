package game

import (
	"fmt"
	"testing"
)

func TestThoughtLog_RingOverwritesOldest(t *testing.T) {
	tl := NewThoughtLog()
	for i := 0; i < logMaxEntries+10; i++ {
		tl.Add(i, "A0", StatePatrol, fmt.Sprintf("msg %d", i))
	}
	if tl.Len() != logMaxEntries {
		t.Fatalf("expected %d entries, got %d", logMaxEntries, tl.Len())
	}
	recent := tl.Recent()
	if recent[0].Tick != 10 {
		t.Fatalf("expected oldest kept tick 10, got %d", recent[0].Tick)
	}
	if last := recent[len(recent)-1]; last.Tick != logMaxEntries+9 || last.Message != fmt.Sprintf("msg %d", logMaxEntries+9) {
		t.Fatalf("unexpected newest entry %+v", last)
	}
}

func TestThoughtLog_RecentFor(t *testing.T) {
	tl := NewThoughtLog()
	tl.Add(1, "A0", StatePatrol, "a")
	tl.Add(2, "A1", StateAttack, "b")
	tl.Add(3, "A0", StateAttack, "c")
	tl.Add(4, "A0", StateSearch, "d")

	got := tl.RecentFor("A0", 2)
	if len(got) != 2 || got[0].Message != "c" || got[1].Message != "d" {
		t.Fatalf("expected last two A0 lines [c d], got %+v", got)
	}
	if all := tl.RecentFor("A0", 0); len(all) != 3 {
		t.Fatalf("n<=0 should return every A0 line, got %d", len(all))
	}
	if none := tl.RecentFor("A9", 5); len(none) != 0 {
		t.Fatalf("expected nothing for unknown label, got %+v", none)
	}
}
