// internal/input/input.go
package input

import "go-space-odyssey/internal/geom"

// State is one tick's worth of player intent. The simulation consumes
// this struct only, so tests drive the game without a window.
type State struct {
	Move geom.Vector2D // unnormalized direction, zero when idle
	Aim  geom.Vector2D // world position under the cursor

	FireBasic bool
	FireSuper bool
	Interact  bool // defuse/pick up the nearest carryable object
	SellFirst bool // sell the oldest inventory item
}
