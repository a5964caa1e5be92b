// internal/entity/boss.go
package entity

import (
	"math"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/geom"
)

// WeakPoint is one of the four sub-hitboxes gating the boss's death.
type WeakPoint struct {
	Offset    geom.Vector2D // relative to boss center
	Radius    float64
	HitPoints int
	Destroyed bool
}

// Position resolves the absolute hitbox center.
func (w *WeakPoint) Position(bossPos geom.Vector2D) geom.Vector2D {
	return bossPos.Add(w.Offset)
}

// TakeHit decrements the hit points. Returns true the one time the
// point transitions to destroyed.
func (w *WeakPoint) TakeHit() bool {
	if w.Destroyed {
		return false
	}
	w.HitPoints--
	if w.HitPoints <= 0 {
		w.HitPoints = 0
		w.Destroyed = true
		return true
	}
	return false
}

// Boss is the every-second-level gatekeeper. Its body never takes
// damage; only destroying all four weak points defeats it. The HP
// field is display-only and derived from weak-point integrity.
type Boss struct {
	Enemy
	Level      int
	WeakPoints [4]*WeakPoint

	OrbitCenter geom.Vector2D
	orbitTimer  float64

	laserCharging    bool
	laserChargeTimer float64
	laserCooldown    float64
	laserTarget      geom.Vector2D

	Defeated bool
}

// NewBoss builds the boss for a level. Bonuses are linear through
// level 10 and steeper past it.
func NewBoss(pos geom.Vector2D, level int) *Boss {
	var hpBonus, attackBonus, defenseBonus int
	var speedBonus float64
	if level <= 10 {
		hpBonus = level * 20
		attackBonus = level * 5
		defenseBonus = level * 2
		speedBonus = float64(level) * 3
	} else {
		extra := level - 10
		hpBonus = 10*20 + extra*40
		attackBonus = 10*5 + extra*12
		defenseBonus = 10*2 + extra*5
		speedBonus = 10*3 + float64(extra)*6
	}

	b := &Boss{
		Enemy: Enemy{
			Figure:        NewFigure(pos, config.BossRadius),
			Kind:          defs.EnemyBoss,
			Level:         level,
			HP:            defs.BossBaseHP + hpBonus,
			MaxHP:         defs.BossBaseHP + hpBonus,
			Attack:        defs.BossBaseAttack + attackBonus,
			Defense:       defs.BossBaseDefense + defenseBonus,
			ContactDamage: defs.BossBaseAttack + attackBonus,
			Speed:         defs.BossBaseSpeed + speedBonus,
		},
		Level:       level,
		OrbitCenter: pos,
	}
	offsets := []geom.Vector2D{{X: -25, Y: -25}, {X: 25, Y: -25}, {X: -25, Y: 25}, {X: 25, Y: 25}}
	for i, off := range offsets {
		b.WeakPoints[i] = &WeakPoint{
			Offset:    off,
			Radius:    config.WeakPointRadius,
			HitPoints: config.WeakPointHitPoints,
		}
	}
	return b
}

// Update moves the boss along its orbit and runs the laser cycle.
// Returned projectiles are the beam segments fired this tick, if any.
func (b *Boss) Update(dt float64, playerPos geom.Vector2D) []*Projectile {
	if !b.Active || b.Defeated {
		return nil
	}

	b.orbitTimer += dt
	angle := b.orbitTimer * config.BossOrbitRate
	target := b.OrbitCenter.Add(geom.Vector2D{
		X: math.Cos(angle) * config.BossOrbitRadius,
		Y: math.Sin(angle) * config.BossOrbitRadius,
	})
	toTarget := target.Sub(b.Pos)
	if toTarget.Magnitude() > 5 {
		b.Pos = b.Pos.Add(toTarget.Normalized().Scale(b.Speed * 0.5 * dt))
	}

	return b.updateLaser(dt, playerPos)
}

func (b *Boss) updateLaser(dt float64, playerPos geom.Vector2D) []*Projectile {
	if b.laserCooldown > 0 {
		b.laserCooldown -= dt
	}

	if b.laserCharging {
		b.laserChargeTimer += dt
		// Fires exactly once, on the charge crossing.
		if b.laserChargeTimer >= config.BossLaserChargeTime {
			b.laserCharging = false
			b.laserChargeTimer = 0
			b.laserCooldown = config.BossLaserCooldown
			return b.fireLaser()
		}
		return nil
	}

	if b.laserCooldown <= 0 {
		b.laserCharging = true
		b.laserChargeTimer = 0
		b.laserTarget = playerPos
	}
	return nil
}

// fireLaser emits the beam as a line of fast projectiles spaced along
// the locked aim direction.
func (b *Boss) fireLaser() []*Projectile {
	dir := b.laserTarget.Sub(b.Pos).Normalized()
	beam := make([]*Projectile, 0, config.BossLaserBeamCount)
	for i := 0; i < config.BossLaserBeamCount; i++ {
		start := b.Pos.Add(dir.Scale(float64(i) * config.BossLaserSpacing))
		p := NewProjectileTowards(start, dir, config.BossLaserSpeed, b.Attack, OwnerEnemy)
		p.Effect = defs.EffectLaser
		beam = append(beam, p)
	}
	return beam
}

// HitWeakPoint tests a player projectile against the live weak
// points. On a hit the projectile is consumed, the point loses one
// hit point, and boss defeat fires as soon as the last point falls.
// Returns true if the projectile hit a weak point.
func (b *Boss) HitWeakPoint(p *Projectile) bool {
	if b.Defeated || !p.Active || p.Owner != OwnerPlayer {
		return false
	}
	for _, wp := range b.WeakPoints {
		if wp.Destroyed {
			continue
		}
		if p.CollidesWithCircle(wp.Position(b.Pos), wp.Radius) {
			wp.TakeHit()
			p.RegisterHit()
			if b.RemainingWeakPoints() == 0 {
				b.defeat()
			}
			return true
		}
	}
	return false
}

// RemainingWeakPoints counts the points still standing.
func (b *Boss) RemainingWeakPoints() int {
	n := 0
	for _, wp := range b.WeakPoints {
		if !wp.Destroyed {
			n++
		}
	}
	return n
}

func (b *Boss) defeat() {
	if b.Defeated {
		return
	}
	b.Defeated = true
	b.HP = 0
}

// ReceiveDamage shadows the embedded method: the boss body is
// invulnerable to direct damage.
func (b *Boss) ReceiveDamage(int) int {
	return 0
}

// HealthFraction reports the display health from weak-point
// integrity; the HP field plays no part in defeat.
func (b *Boss) HealthFraction() float64 {
	total := len(b.WeakPoints) * config.WeakPointHitPoints
	if total == 0 {
		return 0
	}
	left := 0
	for _, wp := range b.WeakPoints {
		left += wp.HitPoints
	}
	return float64(left) / float64(total)
}

// ChargingLaser reports whether the beam is winding up.
func (b *Boss) ChargingLaser() bool {
	return b.laserCharging
}

// ChargeProgress is the wind-up fraction in [0,1] for rendering.
func (b *Boss) ChargeProgress() float64 {
	if !b.laserCharging {
		return 0
	}
	return math.Min(b.laserChargeTimer/config.BossLaserChargeTime, 1.0)
}
