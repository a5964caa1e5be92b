// internal/input/keyboard.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-odyssey/internal/geom"
)

// Reader samples ebiten's keyboard and mouse into a State once per
// frame. Edge-triggered actions use inpututil so holding a key does
// not repeat them.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) Read() State {
	var s State

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.Move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.Move.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.Move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.Move.X += 1
	}

	mx, my := ebiten.CursorPosition()
	s.Aim = geom.Vector2D{X: float64(mx), Y: float64(my)}

	s.FireBasic = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsKeyPressed(ebiten.KeySpace)
	s.FireSuper = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft)
	s.Interact = inpututil.IsKeyJustPressed(ebiten.KeyE)
	s.SellFirst = inpututil.IsKeyJustPressed(ebiten.KeyQ)

	return s
}
