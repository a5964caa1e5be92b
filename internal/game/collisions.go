// internal/game/collisions.go
package game

import (
	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/entity"
	"go-space-odyssey/internal/event"
)

// resolveCollisions runs the pairwise passes in a fixed order, so the
// outcome of a tick where several passes could remove the same entity
// is deterministic. Every removal is an idempotent deactivation, so a
// pass finding an entity already dead simply skips it.
func (g *Game) resolveCollisions() {
	g.playerProjectilesVsHostiles()
	g.hostileBodiesVsPlayer()
	g.enemyProjectilesVsPlayer()
	g.trapDetonations()
	g.meteorImpacts()
	g.pickupsVsPlayer()
}

// Player projectiles against weak points first, then enemy bodies.
// The boss body is never a valid hit target.
func (g *Game) playerProjectilesVsHostiles() {
	for _, p := range g.projectiles {
		if !p.Active || p.Owner != entity.OwnerPlayer {
			continue
		}
		if b := g.scene.Boss; b != nil && !b.Defeated {
			if b.HitWeakPoint(p) {
				g.dispatcher.Dispatch(event.Event{Type: event.WeakPointHit, Data: b.RemainingWeakPoints()})
				if b.Defeated {
					g.onBossDefeated(b)
				}
				continue
			}
		}
		for _, e := range g.scene.Enemies {
			if !e.Active || !p.CollidesWith(&e.Figure) {
				continue
			}
			e.ReceiveDamage(p.Damage)
			p.RegisterHit()
			if !e.Active {
				g.onEnemyKilled(e)
			}
			if !p.Active {
				break
			}
		}
	}
}

// Body contact deals the hostile's contact damage and knocks the ship
// back. Raw damage goes in; the player pipeline applies defense once.
func (g *Game) hostileBodiesVsPlayer() {
	contact := func(fig *entity.Figure, damage int, cause DeathCause) {
		if !g.Player.Active || !fig.CollidesWith(&g.Player.Figure) {
			return
		}
		dealt := g.Player.ReceiveDamage(damage)
		g.Player.Knockback(fig.Pos, config.ContactKnockback)
		g.playerHit(dealt, cause)
	}

	for _, e := range g.scene.Enemies {
		if e.Active {
			contact(&e.Figure, e.ContactDamage, CauseEnemyContact)
		}
	}
	if b := g.scene.Boss; b != nil && !b.Defeated {
		contact(&b.Figure, b.ContactDamage, CauseBossContact)
	}
}

func (g *Game) enemyProjectilesVsPlayer() {
	for _, p := range g.projectiles {
		if !p.Active || p.Owner != entity.OwnerEnemy {
			continue
		}
		if !p.CollidesWith(&g.Player.Figure) {
			continue
		}
		dealt := g.Player.ReceiveDamage(p.Damage)
		p.Deactivate()
		cause := CauseEnemyShot
		if p.Effect == defs.EffectLaser {
			cause = CauseBossLaser
		}
		g.playerHit(dealt, cause)
	}
}

// A trap triggers when anyone touches it, then blasts everyone in
// radius, the triggering entity included.
func (g *Game) trapDetonations() {
	for _, t := range g.scene.Traps {
		if !t.Active {
			continue
		}
		triggered := g.Player.Active && t.CollidesWith(&g.Player.Figure)
		if !triggered {
			for _, e := range g.scene.Enemies {
				if e.Active && t.CollidesWith(&e.Figure) {
					triggered = true
					break
				}
			}
		}
		if !triggered {
			continue
		}

		t.Deactivate()
		if g.Player.Active && t.InBlast(g.Player.Pos) {
			dealt := g.Player.ReceiveDamage(t.Damage)
			g.playerHit(dealt, CauseTrapBlast)
		}
		for _, e := range g.scene.Enemies {
			if !e.Active || !t.InBlast(e.Pos) {
				continue
			}
			e.ReceiveDamage(t.Damage)
			if !e.Active {
				g.onEnemyKilled(e)
			}
		}
		g.addScore(-config.ScoreTrapPenalty)
		g.dispatcher.Dispatch(event.Event{Type: event.TrapDetonated, Data: t})
	}
}

func (g *Game) meteorImpacts() {
	// Fragments spawned this tick are appended past the snapshot and
	// first resolve next tick.
	meteors := g.scene.Meteors
	for _, m := range meteors {
		if !m.Active {
			continue
		}
		if g.Player.Active && m.CollidesWith(&g.Player.Figure) {
			m.Deactivate()
			dealt := g.Player.ReceiveDamage(m.Damage)
			g.playerHit(dealt, CauseMeteor)
			continue
		}
		for _, p := range g.projectiles {
			// Only the player's fire breaks meteors; enemy shots and
			// boss beams pass straight through.
			if !p.Active || p.Owner != entity.OwnerPlayer || !p.CollidesWith(&m.Figure) {
				continue
			}
			p.Deactivate()
			frags := m.Fragment()
			if len(frags) == 0 {
				g.addScore(config.ScoreMeteorDestroy)
			} else {
				g.scene.Meteors = append(g.scene.Meteors, frags...)
				g.addScore(config.ScoreMeteorFragment)
			}
			g.dispatcher.Dispatch(event.Event{Type: event.MeteorShattered, Data: m})
			break
		}
	}
}

func (g *Game) pickupsVsPlayer() {
	if !g.Player.Active {
		return
	}

	for _, tr := range g.scene.Treasures {
		if !tr.Active || !tr.CollidesWith(&g.Player.Figure) {
			continue
		}
		tr.Deactivate()
		g.Player.Gold += tr.Value
		g.Player.GainXP(roundXP(float64(tr.Value) * config.XPPerTreasureValue))
		g.dispatcher.Dispatch(event.Event{Type: event.TreasurePicked, Data: tr})
	}

	for _, eq := range g.scene.Equipment {
		if !eq.Active || !eq.CollidesWith(&g.Player.Figure) {
			continue
		}
		eq.Deactivate()
		g.Player.Attack += eq.BonusAttack
		g.Player.Defense += eq.BonusDefense
		g.Player.PickUp(eq)
		g.dispatcher.Dispatch(event.Event{Type: event.ItemPicked, Data: eq})
	}

	for _, pk := range g.scene.Pickups {
		if !pk.Active || !pk.CollidesWith(&g.Player.Figure) {
			continue
		}
		pk.Deactivate()
		g.Player.ApplyEffect(pk.Def)
		if pk.Hazard {
			g.addScore(-config.ScoreHazardPenalty)
			g.dispatcher.Dispatch(event.Event{Type: event.HazardTriggered, Data: pk.Def.Kind})
			if pk.Def.Kind == defs.EffectRadiation {
				g.recordDeath(CauseRadiation)
			}
		} else {
			g.addScore(config.ScorePowerUp)
			g.dispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: pk.Def.Kind})
		}
	}
}
