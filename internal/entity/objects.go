package entity

import (
	"fmt"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/geom"
)

// Item is anything the ship can stow in its hold and later sell.
type Item interface {
	ItemName() string
	SellValue() int
}

// Treasure is a floating cache worth gold on pickup and XP on collection.
type Treasure struct {
	Figure
	Value int
}

func NewTreasure(pos geom.Vector2D, value int) *Treasure {
	return &Treasure{Figure: NewFigure(pos, config.TreasureRadius), Value: value}
}

// ExplosiveTrap detonates on contact, damaging every ship in its blast
// radius. A defused trap can be carried and sold instead.
type ExplosiveTrap struct {
	Figure
	BlastRadius float64
	Damage      int
}

func NewExplosiveTrap(pos geom.Vector2D, blastRadius float64, damage int) *ExplosiveTrap {
	return &ExplosiveTrap{
		Figure:      NewFigure(pos, config.TrapRadius),
		BlastRadius: blastRadius,
		Damage:      damage,
	}
}

func (t *ExplosiveTrap) ItemName() string { return "explosive trap" }
func (t *ExplosiveTrap) SellValue() int   { return 10 }

// InBlast reports whether a point lies inside the detonation radius.
func (t *ExplosiveTrap) InBlast(pos geom.Vector2D) bool {
	return t.Pos.DistanceTo(pos) <= t.BlastRadius
}

// Equipment is a stat module that boosts attack and defense when picked up
// and sells for half its price.
type Equipment struct {
	Figure
	Name         string
	BonusAttack  int
	BonusDefense int
	Price        int
}

func NewEquipment(pos geom.Vector2D, name string, bonusAttack, bonusDefense, price int) *Equipment {
	return &Equipment{
		Figure:       NewFigure(pos, config.TreasureRadius),
		Name:         name,
		BonusAttack:  bonusAttack,
		BonusDefense: bonusDefense,
		Price:        price,
	}
}

func (e *Equipment) ItemName() string { return e.Name }
func (e *Equipment) SellValue() int   { return e.Price / 2 }

// meteorStats maps size class to radius, drift speed cap and contact damage.
var meteorStats = map[int]struct {
	Radius   float64
	MaxSpeed float64
	Damage   int
}{
	1: {Radius: 15, MaxSpeed: 120, Damage: 15},
	2: {Radius: 25, MaxSpeed: 90, Damage: 25},
	3: {Radius: 35, MaxSpeed: 60, Damage: 35},
}

// Meteor drifts across the field and bounces off the edges. Larger sizes
// shatter into smaller fragments when shot down.
type Meteor struct {
	Figure
	Size     int
	Damage   int
	Velocity geom.Vector2D
	Rotation float64
	spin     float64
}

// NewMeteor builds a meteor of the given size class (1..3). Out-of-range
// sizes are clamped.
func NewMeteor(pos geom.Vector2D, size int, velocity geom.Vector2D) *Meteor {
	if size < 1 {
		size = 1
	}
	if size > 3 {
		size = 3
	}
	stats := meteorStats[size]
	return &Meteor{
		Figure:   NewFigure(pos, stats.Radius),
		Size:     size,
		Damage:   stats.Damage,
		Velocity: velocity,
		spin:     float64(4-size) * 0.8,
	}
}

// MaxMeteorSpeed is the drift speed cap for a size class.
func MaxMeteorSpeed(size int) float64 {
	if s, ok := meteorStats[size]; ok {
		return s.MaxSpeed
	}
	return meteorStats[1].MaxSpeed
}

// Update drifts the meteor and reflects it off the playfield edges. The
// overshoot past an edge is mirrored back inside and the bounce loses a
// fraction of speed, so a meteor can never tunnel out of bounds.
func (m *Meteor) Update(dt float64) {
	m.Pos = m.Pos.Add(m.Velocity.Scale(dt))
	m.Rotation += m.spin * dt

	if m.Pos.X < m.Radius {
		m.Pos.X = 2*m.Radius - m.Pos.X
		m.Velocity.X = -m.Velocity.X * config.MeteorBounceDamping
	} else if m.Pos.X > config.ScreenWidth-m.Radius {
		m.Pos.X = 2*(config.ScreenWidth-m.Radius) - m.Pos.X
		m.Velocity.X = -m.Velocity.X * config.MeteorBounceDamping
	}
	if m.Pos.Y < m.Radius {
		m.Pos.Y = 2*m.Radius - m.Pos.Y
		m.Velocity.Y = -m.Velocity.Y * config.MeteorBounceDamping
	} else if m.Pos.Y > config.ScreenHeight-m.Radius {
		m.Pos.Y = 2*(config.ScreenHeight-m.Radius) - m.Pos.Y
		m.Velocity.Y = -m.Velocity.Y * config.MeteorBounceDamping
	}
}

// Fragment shatters the meteor into smaller pieces scattered around the
// impact point. Size-1 meteors leave nothing behind.
func (m *Meteor) Fragment() []*Meteor {
	m.Deactivate()
	if m.Size <= 1 {
		return nil
	}
	offsets := []geom.Vector2D{
		{X: -config.MeteorScatter, Y: -config.MeteorScatter},
		{X: config.MeteorScatter, Y: config.MeteorScatter},
	}
	frags := make([]*Meteor, 0, config.MeteorFragmentCount)
	for i := 0; i < config.MeteorFragmentCount; i++ {
		off := offsets[i%len(offsets)]
		vel := geom.Vector2D{X: -m.Velocity.Y, Y: m.Velocity.X}
		if i%2 == 1 {
			vel = vel.Scale(-1)
		}
		frags = append(frags, NewMeteor(m.Pos.Add(off), config.MeteorFragmentSize, vel))
	}
	return frags
}

func (m *Meteor) String() string {
	return fmt.Sprintf("meteor(size=%d)", m.Size)
}
