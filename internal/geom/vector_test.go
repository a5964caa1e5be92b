package geom

import (
	"math"
	"testing"
)

func TestNormalized(t *testing.T) {
	tests := []struct {
		name    string
		v       Vector2D
		wantMag float64
	}{
		{"Zero vector", Vector2D{0, 0}, 0},
		{"Unit X", Vector2D{1, 0}, 1},
		{"Arbitrary", Vector2D{3, 4}, 1},
		{"Negative components", Vector2D{-7, 2}, 1},
		{"Tiny", Vector2D{1e-9, 0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalized()
			if math.IsNaN(n.X) || math.IsNaN(n.Y) {
				t.Fatalf("Normalized produced NaN for %+v", tt.v)
			}
			got := n.Magnitude()
			if math.Abs(got-tt.wantMag) > 1e-9 {
				t.Errorf("Expected magnitude %v, got %v", tt.wantMag, got)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := Vector2D{1, 2}
	b := Vector2D{3, -4}

	if got := a.Add(b); got != (Vector2D{4, -2}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != (Vector2D{-2, 6}) {
		t.Errorf("Sub: got %+v", got)
	}
	if got := a.Scale(2); got != (Vector2D{2, 4}) {
		t.Errorf("Scale: got %+v", got)
	}
	// Inputs must be untouched.
	if a != (Vector2D{1, 2}) || b != (Vector2D{3, -4}) {
		t.Errorf("Operands mutated: a=%+v b=%+v", a, b)
	}
}

func TestRotated(t *testing.T) {
	v := Vector2D{1, 0}
	got := v.Rotated(math.Pi / 2)
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-1) > 1e-9 {
		t.Errorf("Rotated pi/2: got %+v", got)
	}
}

func TestDistanceTo(t *testing.T) {
	a := Vector2D{0, 0}
	b := Vector2D{3, 4}
	if got := a.DistanceTo(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("DistanceTo: got %v", got)
	}
}
