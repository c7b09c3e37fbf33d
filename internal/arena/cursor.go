package arena

import "github.com/hajimehoshi/ebiten/v2"

// CursorSource reports the mouse cursor in playfield coordinates.
type CursorSource struct{}

// PointerPosition implements game.PositionSource.
func (CursorSource) PointerPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}
