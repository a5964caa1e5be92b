// internal/entity/enemy.go
package entity

import (
	"math"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/geom"
	"go-space-odyssey/internal/utils"
)

// Hits within this window after a previous hit are ignored, so a
// shotgun blast does not land five times in one frame.
const enemyInvulnWindow = 0.15

// Aim error applied to enemy shots, radians either side.
const enemyAimError = 0.15

// Enemy is a regular hostile. Stats come from the kind definition
// scaled by the game level.
type Enemy struct {
	Figure
	Kind          defs.EnemyKind
	Level         int
	HP            int
	MaxHP         int
	Attack        int
	Defense       int
	ContactDamage int
	Speed         float64

	invulnTimer float64
	shootTimer  float64
}

// NewEnemy builds an enemy of the given kind scaled for the level.
func NewEnemy(pos geom.Vector2D, kind defs.EnemyKind, level int) *Enemy {
	def := defs.EnemyDefs[kind]
	mult := defs.StatMultiplier(level)
	hp := int(math.Round(float64(def.HP) * mult))
	e := &Enemy{
		Figure:        NewFigure(pos, config.EnemyRadius),
		Kind:          kind,
		Level:         level,
		HP:            hp,
		MaxHP:         hp,
		Attack:        int(math.Round(float64(def.Attack) * mult)),
		Defense:       int(math.Round(float64(def.Defense) * mult)),
		ContactDamage: int(math.Round(float64(def.ContactDamage) * mult)),
		Speed:         def.Speed,
	}
	// First shot comes after a partial cooldown so a fresh level does
	// not open with a synchronized volley.
	e.shootTimer = def.ShootCooldown * 0.5
	return e
}

// Def returns the static definition for this enemy's kind.
func (e *Enemy) Def() defs.EnemyDefinition {
	return defs.EnemyDefs[e.Kind]
}

// HPFraction is the health bar value in [0,1].
func (e *Enemy) HPFraction() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	frac := float64(e.HP) / float64(e.MaxHP)
	return math.Max(0, math.Min(1, frac))
}

// Update runs the per-kind AI routine and returns any projectiles
// fired this tick.
func (e *Enemy) Update(dt float64, playerPos geom.Vector2D, rng *utils.PRNGService) []*Projectile {
	if !e.Active || e.HP <= 0 {
		return nil
	}
	e.invulnTimer = math.Max(0, e.invulnTimer-dt)
	e.shootTimer = math.Max(0, e.shootTimer-dt)

	def := e.Def()
	toPlayer := playerPos.Sub(e.Pos)
	dist := toPlayer.Magnitude()

	switch def.Behavior {
	case defs.BehaviorChaser:
		e.Pos = e.Pos.Add(toPlayer.Normalized().Scale(e.Speed * dt))
	case defs.BehaviorKiter:
		preferred := def.ShootRange * 0.8
		if dist < preferred*0.7 {
			e.Pos = e.Pos.Sub(toPlayer.Normalized().Scale(e.Speed * dt))
		} else if dist > preferred {
			e.Pos = e.Pos.Add(toPlayer.Normalized().Scale(e.Speed * dt))
		}
	case defs.BehaviorArtillery:
		// Creeps closer only when the player is out of reach.
		if dist > def.ShootRange {
			e.Pos = e.Pos.Add(toPlayer.Normalized().Scale(e.Speed * dt))
		}
	}

	if def.ShootRange > 0 && dist <= def.ShootRange && e.shootTimer <= 0 {
		e.shootTimer = def.ShootCooldown
		return []*Projectile{e.fireAt(playerPos, rng)}
	}
	return nil
}

func (e *Enemy) fireAt(target geom.Vector2D, rng *utils.PRNGService) *Projectile {
	def := e.Def()
	dir := target.Sub(e.Pos).Normalized()
	if rng != nil {
		dir = dir.Rotated(rng.Range(-enemyAimError, enemyAimError))
	}
	mult := defs.StatMultiplier(e.Level)
	damage := int(math.Round(float64(def.ShotDamage) * mult))
	return NewProjectileTowards(e.Pos, dir, def.ShotSpeed, damage, OwnerEnemy)
}

// ReceiveDamage applies damage after defense, honoring the short
// post-hit window. Returns the damage actually dealt.
func (e *Enemy) ReceiveDamage(amount int) int {
	if !e.Active || e.HP <= 0 || e.invulnTimer > 0 {
		return 0
	}
	dmg := amount - e.Defense
	if dmg < 0 {
		dmg = 0
	}
	e.HP -= dmg
	e.invulnTimer = enemyInvulnWindow
	if e.HP <= 0 {
		e.HP = 0
		e.Deactivate()
	}
	return dmg
}
