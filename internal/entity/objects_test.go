package entity

import (
	"math"
	"testing"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/geom"
)

func TestMeteorEdgeReflection(t *testing.T) {
	m := NewMeteor(geom.Vector2D{X: config.ScreenWidth - 20, Y: 300}, 2, geom.Vector2D{X: 200, Y: 0})

	m.Update(0.5) // would overshoot the right edge by far
	if m.Pos.X > config.ScreenWidth-m.Radius || m.Pos.X < m.Radius {
		t.Errorf("X = %v escaped the playfield", m.Pos.X)
	}
	if m.Velocity.X >= 0 {
		t.Errorf("Velocity.X = %v, want reflected negative", m.Velocity.X)
	}
	if got, want := math.Abs(m.Velocity.X), 200*config.MeteorBounceDamping; math.Abs(got-want) > 1e-9 {
		t.Errorf("bounce speed = %v, want damped %v", got, want)
	}
}

func TestMeteorStaysInBoundsOverTime(t *testing.T) {
	m := NewMeteor(geom.Vector2D{X: 100, Y: 100}, 3, geom.Vector2D{X: -57, Y: 43})
	for i := 0; i < 1000; i++ {
		m.Update(0.05)
		if m.Pos.X < m.Radius || m.Pos.X > config.ScreenWidth-m.Radius ||
			m.Pos.Y < m.Radius || m.Pos.Y > config.ScreenHeight-m.Radius {
			t.Fatalf("tick %d: meteor at %+v outside the playfield", i, m.Pos)
		}
	}
}

func TestMeteorFragment(t *testing.T) {
	m := NewMeteor(geom.Vector2D{X: 400, Y: 300}, 2, geom.Vector2D{X: 50, Y: 0})
	frags := m.Fragment()

	if m.Active {
		t.Error("shattered meteor still active")
	}
	if len(frags) != config.MeteorFragmentCount {
		t.Fatalf("fragment count = %d, want %d", len(frags), config.MeteorFragmentCount)
	}
	for _, f := range frags {
		if f.Size != config.MeteorFragmentSize {
			t.Errorf("fragment size = %d, want %d", f.Size, config.MeteorFragmentSize)
		}
		if f.Pos == m.Pos {
			t.Error("fragment spawned on top of the parent")
		}
	}

	small := NewMeteor(geom.Vector2D{X: 400, Y: 300}, 1, geom.Vector2D{})
	if got := small.Fragment(); got != nil {
		t.Errorf("size-1 meteor fragmented into %d pieces, want none", len(got))
	}
	if small.Active {
		t.Error("destroyed size-1 meteor still active")
	}
}

func TestMeteorSizeClamp(t *testing.T) {
	if m := NewMeteor(geom.Vector2D{}, 0, geom.Vector2D{}); m.Size != 1 {
		t.Errorf("size 0 clamped to %d, want 1", m.Size)
	}
	if m := NewMeteor(geom.Vector2D{}, 9, geom.Vector2D{}); m.Size != 3 {
		t.Errorf("size 9 clamped to %d, want 3", m.Size)
	}
}

func TestTrapBlastRadius(t *testing.T) {
	trap := NewExplosiveTrap(geom.Vector2D{X: 100, Y: 100}, 60, 30)
	if !trap.InBlast(geom.Vector2D{X: 140, Y: 100}) {
		t.Error("point inside the blast radius not covered")
	}
	if trap.InBlast(geom.Vector2D{X: 200, Y: 100}) {
		t.Error("point outside the blast radius covered")
	}
	if trap.SellValue() != 10 {
		t.Errorf("trap sells for %d, want 10", trap.SellValue())
	}
}

func TestEquipmentSellValue(t *testing.T) {
	eq := NewEquipment(geom.Vector2D{}, "targeting array", 4, 2, 40)
	if eq.SellValue() != 20 {
		t.Errorf("equipment sells for %d, want half its price", eq.SellValue())
	}
}
