package arena

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/esmelusina/AgentFSMExample/internal/config"
	"github.com/esmelusina/AgentFSMExample/internal/game"
)

func newTestArena(t *testing.T, mod func(*config.Config)) *Arena {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	if mod != nil {
		mod(&cfg)
	}
	return New(cfg, log.New(io.Discard))
}

func TestNew_SpawnsFromConfig(t *testing.T) {
	a := newTestArena(t, func(c *config.Config) {
		c.Agents.Count = 3
		c.TPS = 30
		c.Pickup = config.PointConfig{X: 10, Y: 20}
	})
	w := a.World()
	if len(w.Agents) != 3 {
		t.Fatalf("expected 3 agents, got %d", len(w.Agents))
	}
	for i, ag := range w.Agents {
		x, y := ag.Position()
		if want := 100 + float64(i)*40; x != want || y != 100 {
			t.Fatalf("agent %d spawned at (%.0f,%.0f), want (%.0f,100)", i, x, y, want)
		}
	}
	if w.Agents[2].Label() != "A2" {
		t.Fatalf("unexpected label %s", w.Agents[2].Label())
	}
	if w.DT != 1.0/30 {
		t.Fatalf("expected dt 1/30, got %g", w.DT)
	}
	if p := w.Pickup(); p.X != 10 || p.Y != 20 {
		t.Fatalf("pickup not applied: %v", p)
	}
}

func TestTuningFromConfig(t *testing.T) {
	tc := config.TuningConfig{MaxSpeed: 3, MaxForce: 0.2, SightRange: 120, MaxHealth: 80, SteeringCorrected: true}
	got := TuningFromConfig(tc)
	want := game.Tuning{MaxSpeed: 3, MaxForce: 0.2, SightRange: 120, MaxHealth: 80, CorrectedSteering: true}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestStepAndReset(t *testing.T) {
	a := newTestArena(t, nil)
	a.step(game.StaticPointer{X: 200, Y: 100})
	ag := a.World().Agents[0]
	if ag.State() != game.StateAttack {
		t.Fatalf("expected attack, got %s", ag.State())
	}
	a.World().Reset()
	if a.World().CurrentTick() != 0 || a.World().Agents[0].State() != game.StatePatrol {
		t.Fatal("reset should restore the initial arena")
	}
}

func TestCopyReport(t *testing.T) {
	a := newTestArena(t, nil)
	a.step(game.StaticPointer{X: 200, Y: 100})

	var copied string
	a.copyText = func(s string) error {
		copied = s
		return nil
	}
	a.copyReport()
	if !strings.Contains(copied, "label=A0") || !strings.Contains(copied, "state=attack") {
		t.Fatalf("unexpected report:\n%s", copied)
	}

	a.copyText = func(string) error { return errors.New("no clipboard") }
	a.copyReport() // logs a warning, must not panic

	a.selected = 5
	copied = ""
	a.copyText = func(s string) error {
		copied = s
		return nil
	}
	a.copyReport()
	if copied != "" {
		t.Fatal("an out-of-range selection should copy nothing")
	}
}

func TestLayoutIncludesPanel(t *testing.T) {
	a := newTestArena(t, nil)
	w, h := a.Layout(0, 0)
	if w != 1280+logPanelWidth || h != 720 {
		t.Fatalf("unexpected layout %dx%d", w, h)
	}
	if ww, wh := a.WindowSize(); ww != w || wh != h {
		t.Fatalf("window size %dx%d does not match layout", ww, wh)
	}
}
