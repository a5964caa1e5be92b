// internal/entity/figure.go
package entity

import "go-space-odyssey/internal/geom"

// Figure is the base of everything with a position and a collision
// circle. Active is cleared instead of deleting in place so a pass
// can finish iterating safely; owners drop inactive figures at the
// end of the tick.
type Figure struct {
	Pos    geom.Vector2D
	Radius float64
	Active bool
}

func NewFigure(pos geom.Vector2D, radius float64) Figure {
	return Figure{Pos: pos, Radius: radius, Active: true}
}

// DistanceTo returns the center distance to another figure.
func (f *Figure) DistanceTo(other *Figure) float64 {
	return f.Pos.Sub(other.Pos).Magnitude()
}

// CollidesWith reports whether the two collision circles overlap.
func (f *Figure) CollidesWith(other *Figure) bool {
	return f.DistanceTo(other) <= f.Radius+other.Radius
}

// CollidesWithCircle tests against a raw circle.
func (f *Figure) CollidesWithCircle(center geom.Vector2D, radius float64) bool {
	return f.Pos.Sub(center).Magnitude() <= f.Radius+radius
}

// Deactivate marks the figure for removal. Safe to call repeatedly.
func (f *Figure) Deactivate() {
	f.Active = false
}
