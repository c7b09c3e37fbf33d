// Package arena is the ebiten front end: it feeds the cursor to the agents,
// draws them, and handles the debug keys.
package arena

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/esmelusina/AgentFSMExample/internal/config"
	"github.com/esmelusina/AgentFSMExample/internal/game"
)

// Arena implements ebiten.Game.
type Arena struct {
	cfg    config.Config
	world  *game.World
	cursor game.PositionSource
	logger *log.Logger

	width  int // playfield width; the thought panel sits to its right
	height int

	paused      bool
	stepOnce    bool
	showOverlay bool
	showHUD     bool
	selected    int // index into world.Agents for the debug report

	face *text.GoXFace

	// copyText writes the debug report somewhere the user can paste it.
	copyText func(string) error
}

// New builds an arena from cfg. A zero seed picks one from the clock.
func New(cfg config.Config, logger *log.Logger) *Arena {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := game.NewWorld(float64(cfg.Window.Width), float64(cfg.Window.Height), seed)
	w.DT = 1.0 / float64(cfg.TPS)
	w.SetPickup(cfg.Pickup.X, cfg.Pickup.Y)

	tuning := TuningFromConfig(cfg.Tuning)
	for i := 0; i < cfg.Agents.Count; i++ {
		x := cfg.Agents.SpawnX + float64(i)*cfg.Agents.Spacing
		w.Spawn(fmt.Sprintf("A%d", i), x, cfg.Agents.SpawnY, tuning)
	}

	a := &Arena{
		cfg:         cfg,
		world:       w,
		cursor:      CursorSource{},
		logger:      logger,
		width:       cfg.Window.Width,
		height:      cfg.Window.Height,
		showOverlay: true,
		showHUD:     true,
		face:        text.NewGoXFace(basicfont.Face7x13),
		copyText:    writeClipboard,
	}
	logger.Info("arena ready", "agents", len(w.Agents), "seed", seed,
		"size", fmt.Sprintf("%dx%d", a.width, a.height), "corrected_steering", tuning.CorrectedSteering)
	return a
}

// TuningFromConfig converts the config section into agent tuning.
func TuningFromConfig(t config.TuningConfig) game.Tuning {
	return game.Tuning{
		MaxSpeed:          t.MaxSpeed,
		MaxForce:          t.MaxForce,
		SightRange:        t.SightRange,
		MaxHealth:         t.MaxHealth,
		CorrectedSteering: t.SteeringCorrected,
	}
}

// World exposes the simulation, mainly for tests.
func (a *Arena) World() *game.World { return a.world }

// Update handles input, then advances the simulation unless paused.
func (a *Arena) Update() error {
	a.handleInput()
	if a.paused && !a.stepOnce {
		return nil
	}
	a.stepOnce = false
	a.step(a.cursor)
	return nil
}

// step advances the world one tick against src and logs what happened.
func (a *Arena) step(src game.PositionSource) {
	for _, e := range a.world.Step(src) {
		switch e.Category {
		case "state":
			a.logger.Debug("state change", "agent", e.Agent.Label(), "tick", e.Tick, "change", e.Value)
		case "health":
			a.logger.Info("health "+e.Key, "agent", e.Agent.Label(), "tick", e.Tick, "hp", e.Value)
		case "patrol":
			a.logger.Debug("waypoint reached", "agent", e.Agent.Label(), "tick", e.Tick, "next", e.Value)
		}
	}
}

func (a *Arena) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
		a.logger.Info("pause toggled", "paused", a.paused, "tick", a.world.CurrentTick())
	}
	if a.paused && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.world.Reset()
		a.selected = 0
		a.logger.Info("arena reset")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		a.showOverlay = !a.showOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.showHUD = !a.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(a.world.Agents) > 0 {
		a.selected = (a.selected + 1) % len(a.world.Agents)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copyReport()
	}
}

// selectedAgent returns the agent the debug report is about, or nil.
func (a *Arena) selectedAgent() *game.Agent {
	if a.selected < 0 || a.selected >= len(a.world.Agents) {
		return nil
	}
	return a.world.Agents[a.selected]
}

// Draw renders the playfield, the agents and the side panel.
func (a *Arena) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 22, B: 18, A: 255})

	a.drawPickup(screen)
	if a.showOverlay {
		for _, ag := range a.world.Agents {
			a.drawOverlay(screen, ag)
		}
	}
	a.drawPointer(screen)
	for i, ag := range a.world.Agents {
		a.drawAgent(screen, ag, i == a.selected)
	}

	drawThoughtPanel(screen, a.world.ThoughtLog, a.width, a.height)
	if a.showHUD {
		a.drawHUD(screen)
	}
}

// Layout fixes the logical screen to the playfield plus the thought panel.
func (a *Arena) Layout(_, _ int) (int, int) {
	return a.width + logPanelWidth, a.height
}

// WindowSize is the outer window size matching Layout.
func (a *Arena) WindowSize() (int, int) {
	return a.width + logPanelWidth, a.height
}
