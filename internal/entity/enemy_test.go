package entity

import (
	"testing"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/geom"
	"go-space-odyssey/internal/utils"
)

func TestEnemyStatScaling(t *testing.T) {
	base := defs.EnemyDefs[defs.EnemyGround]
	e1 := NewEnemy(geom.Vector2D{}, defs.EnemyGround, 1)
	if e1.MaxHP != base.HP {
		t.Errorf("level 1 HP = %d, want base %d", e1.MaxHP, base.HP)
	}
	e5 := NewEnemy(geom.Vector2D{}, defs.EnemyGround, 5)
	if e5.MaxHP <= e1.MaxHP {
		t.Errorf("level 5 HP = %d, want more than level 1's %d", e5.MaxHP, e1.MaxHP)
	}
}

func TestEnemyReceiveDamage(t *testing.T) {
	e := NewEnemy(geom.Vector2D{}, defs.EnemyGround, 1) // 60 HP, 3 defense
	if got := e.ReceiveDamage(13); got != 10 {
		t.Errorf("absorbed %d, want 10 after defense", got)
	}
	if e.HP != 50 {
		t.Errorf("HP = %d, want 50", e.HP)
	}
	// Back-to-back hits land inside the brief grace window.
	if got := e.ReceiveDamage(13); got != 0 {
		t.Errorf("absorbed %d during grace window, want 0", got)
	}
}

func TestEnemyDiesAndDeactivates(t *testing.T) {
	e := NewEnemy(geom.Vector2D{}, defs.EnemyGround, 1)
	e.HP = 1
	e.ReceiveDamage(100)
	if e.HP != 0 {
		t.Errorf("HP = %d, want 0", e.HP)
	}
	if e.Active {
		t.Error("dead enemy still active")
	}
}

func TestKiterKeepsDistance(t *testing.T) {
	rng := utils.NewPRNGService(1)
	playerPos := geom.Vector2D{X: 450, Y: 300}

	e := NewEnemy(geom.Vector2D{X: 450, Y: 310}, defs.EnemyFlyer, 1)
	before := e.Pos.DistanceTo(playerPos)
	e.Update(0.1, playerPos, rng)
	if after := e.Pos.DistanceTo(playerPos); after <= before {
		t.Errorf("kiter closed from %v to %v while too near", before, after)
	}
}

func TestChaserClosesIn(t *testing.T) {
	rng := utils.NewPRNGService(1)
	playerPos := geom.Vector2D{X: 450, Y: 300}

	e := NewEnemy(geom.Vector2D{X: 100, Y: 100}, defs.EnemyGround, 1)
	before := e.Pos.DistanceTo(playerPos)
	e.Update(0.1, playerPos, rng)
	if after := e.Pos.DistanceTo(playerPos); after >= before {
		t.Errorf("chaser held at %v, want closer than %v", after, before)
	}
}

func TestProjectileLifetimeExpiry(t *testing.T) {
	p := NewProjectile(geom.Vector2D{X: 450, Y: 300}, geom.Vector2D{}, 10, OwnerPlayer)
	p.Update(config.ProjectileLifetime+0.01, config.ScreenWidth, config.ScreenHeight)
	if p.Active {
		t.Error("projectile outlived its lifetime")
	}
}

func TestProjectileLeavesField(t *testing.T) {
	p := NewProjectile(geom.Vector2D{X: 2, Y: 300}, geom.Vector2D{X: -500, Y: 0}, 10, OwnerPlayer)
	p.Update(0.1, config.ScreenWidth, config.ScreenHeight)
	if p.Active {
		t.Error("projectile survived past the off-screen margin")
	}
}

func TestPenetratingProjectileSurvivesHits(t *testing.T) {
	p := NewProjectile(geom.Vector2D{X: 450, Y: 300}, geom.Vector2D{}, 10, OwnerPlayer)
	p.Effect = defs.EffectPenetrating
	p.RegisterHit()
	if !p.Active {
		t.Error("penetrating projectile consumed by a hit")
	}

	p.Effect = defs.EffectNone
	p.RegisterHit()
	if p.Active {
		t.Error("plain projectile survived a hit")
	}
}
