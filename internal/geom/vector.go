// internal/geom/vector.go
package geom

import "math"

// Vector2D is a plain 2D value type. Operations return new values
// and never mutate the receiver.
type Vector2D struct {
	X, Y float64
}

func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{v.X + o.X, v.Y + o.Y}
}

func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{v.X - o.X, v.Y - o.Y}
}

func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{v.X * s, v.Y * s}
}

// Magnitude returns the length of the vector.
func (v Vector2D) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns a unit vector in the same direction. A zero
// vector normalizes to the zero vector, not NaN.
func (v Vector2D) Normalized() Vector2D {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector2D{}
	}
	return Vector2D{v.X / mag, v.Y / mag}
}

// Rotated returns the vector rotated by rad radians.
func (v Vector2D) Rotated(rad float64) Vector2D {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Vector2D{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// DistanceTo returns the distance between two points.
func (v Vector2D) DistanceTo(o Vector2D) float64 {
	return v.Sub(o).Magnitude()
}
