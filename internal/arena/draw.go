package arena

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/esmelusina/AgentFSMExample/internal/game"
)

const (
	agentRadius   = 10
	headingLength = 18
	pickupRadius  = 20 // matches the pickup contact distance
	pointerRadius = 6
	healthBarW    = 28
	healthBarH    = 4
)

// drawAgent renders an agent as a disc in its state colour with a heading
// tick and a health bar.
func (a *Arena) drawAgent(screen *ebiten.Image, ag *game.Agent, selected bool) {
	x, y := ag.Position()
	fx, fy := float32(x), float32(y)
	c := game.StateColour(ag.State())

	vector.FillCircle(screen, fx, fy, agentRadius, c, true)
	if selected {
		vector.StrokeCircle(screen, fx, fy, agentRadius+3, 1.5,
			color.RGBA{R: 255, G: 255, B: 255, A: 200}, true)
	}

	// Rotation treats sprite "up" as forward, so undo the quarter turn.
	heading := ag.Rotation() - math.Pi/2
	hx := x + math.Cos(heading)*headingLength
	hy := y + math.Sin(heading)*headingLength
	vector.StrokeLine(screen, fx, fy, float32(hx), float32(hy), 2, color.RGBA{R: 255, G: 255, B: 255, A: 220}, true)

	// Health bar above the agent.
	frac := float32(ag.Health()) / float32(ag.MaxHealth())
	bx := fx - healthBarW/2
	by := fy - agentRadius - 8
	vector.FillRect(screen, bx, by, healthBarW, healthBarH, color.RGBA{R: 60, G: 20, B: 20, A: 220}, false)
	vector.FillRect(screen, bx, by, healthBarW*frac, healthBarH, color.RGBA{R: 80, G: 220, B: 90, A: 255}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(fx)+agentRadius+4, float64(fy)-6)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 220, G: 220, B: 220, A: 255})
	text.Draw(screen, ag.Label(), a.face, op)
}

// drawOverlay shows the sight radius, the patrol loop and the current
// patrol target.
func (a *Arena) drawOverlay(screen *ebiten.Image, ag *game.Agent) {
	x, y := ag.Position()
	ringCol := game.StateColour(ag.State())
	ringCol.A = 70
	vector.StrokeCircle(screen, float32(x), float32(y), float32(ag.SightRange()), 1, ringCol, true)

	route := ag.PatrolRoute()
	lineCol := color.RGBA{R: 90, G: 110, B: 90, A: 120}
	for i, wp := range route {
		next := route[(i+1)%len(route)]
		vector.StrokeLine(screen, float32(wp.X), float32(wp.Y), float32(next.X), float32(next.Y), 1, lineCol, false)
		vector.FillCircle(screen, float32(wp.X), float32(wp.Y), 4, lineCol, true)
	}
	if ag.State() == game.StatePatrol {
		wp, _ := ag.CurrentWayPoint()
		vector.StrokeCircle(screen, float32(wp.X), float32(wp.Y), 8, 1.5, color.RGBA{R: 200, G: 230, B: 200, A: 200}, true)
	}
}

func (a *Arena) drawPickup(screen *ebiten.Image) {
	p := a.world.Pickup()
	c := color.RGBA{R: 60, G: 140, B: 255, A: 110}
	vector.FillCircle(screen, float32(p.X), float32(p.Y), pickupRadius, c, true)
	vector.StrokeLine(screen, float32(p.X)-8, float32(p.Y), float32(p.X)+8, float32(p.Y), 3, color.White, false)
	vector.StrokeLine(screen, float32(p.X), float32(p.Y)-8, float32(p.X), float32(p.Y)+8, 3, color.White, false)
}

func (a *Arena) drawPointer(screen *ebiten.Image) {
	px, py := a.cursor.PointerPosition()
	if px < 0 || py < 0 || px > float64(a.width) || py > float64(a.height) {
		return
	}
	vector.StrokeCircle(screen, float32(px), float32(py), pointerRadius, 1.5, color.RGBA{R: 255, G: 80, B: 80, A: 220}, true)
}

// drawHUD prints the key legend and the selected agent's vitals.
func (a *Arena) drawHUD(screen *ebiten.Image) {
	status := "RUN"
	if a.paused {
		status = "PAUSED  N=step"
	}
	lines := []string{
		fmt.Sprintf("T=%d  %s", a.world.CurrentTick(), status),
		"P=pause R=reset O=overlay H=hud",
		"Tab=select C=copy report",
	}
	if ag := a.selectedAgent(); ag != nil {
		vx, vy := ag.Velocity()
		lines = append(lines,
			fmt.Sprintf("%s %s hp=%d/%d", ag.Label(), ag.State(), ag.Health(), ag.MaxHealth()),
			fmt.Sprintf("v=(%.2f,%.2f) search=%.1fs", vx, vy, ag.SearchTime()),
		)
	}

	const lineH = 15
	const pad = 6
	boxH := float32(len(lines)*lineH + pad*2)
	vector.FillRect(screen, 4, 4, 250, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 200}, false)
	vector.StrokeRect(screen, 4, 4, 250, boxH, 1, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(4+pad, float64(4+pad+i*lineH))
		op.ColorScale.ScaleWithColor(color.RGBA{R: 210, G: 230, B: 210, A: 255})
		text.Draw(screen, l, a.face, op)
	}
}
