// internal/entity/projectile.go
package entity

import (
	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/geom"
)

// Owner tags who fired a projectile; collisions only resolve against
// the opposing side.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Projectile is a moving, damage-carrying, lifetime-bounded entity.
type Projectile struct {
	Figure
	Velocity geom.Vector2D
	Damage   int
	Owner    Owner
	Lifetime float64
	Effect   defs.SpecialEffect
}

// NewProjectile is the canonical constructor: position plus a ready
// velocity vector.
func NewProjectile(pos, velocity geom.Vector2D, damage int, owner Owner) *Projectile {
	return &Projectile{
		Figure:   NewFigure(pos, config.ProjectileRadius),
		Velocity: velocity,
		Damage:   damage,
		Owner:    owner,
		Lifetime: config.ProjectileLifetime,
	}
}

// NewProjectileTowards derives the velocity from a direction and a
// scalar speed. A zero direction yields a stationary projectile that
// simply expires.
func NewProjectileTowards(pos, direction geom.Vector2D, speed float64, damage int, owner Owner) *Projectile {
	return NewProjectile(pos, direction.Normalized().Scale(speed), damage, owner)
}

// Update advances the projectile and deactivates it once its lifetime
// runs out or it leaves the world bounds (with a margin).
func (p *Projectile) Update(dt, worldWidth, worldHeight float64) {
	if !p.Active {
		return
	}
	p.Pos = p.Pos.Add(p.Velocity.Scale(dt))
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		p.Deactivate()
		return
	}
	m := config.ProjectileMargin
	if p.Pos.X < -m || p.Pos.X > worldWidth+m || p.Pos.Y < -m || p.Pos.Y > worldHeight+m {
		p.Deactivate()
	}
}

// RegisterHit deactivates the projectile after an impact, except for
// penetrating rounds which keep flying.
func (p *Projectile) RegisterHit() {
	if p.Effect == defs.EffectPenetrating {
		return
	}
	p.Deactivate()
}
