package entity

import (
	"testing"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/geom"
)

func shotAt(pos geom.Vector2D, owner Owner) *Projectile {
	return NewProjectile(pos, geom.Vector2D{}, 10, owner)
}

func TestBossWeakPointSetup(t *testing.T) {
	b := NewBoss(geom.Vector2D{X: 450, Y: 150}, 2)
	if len(b.WeakPoints) != 4 {
		t.Fatalf("boss has %d weak points, want 4", len(b.WeakPoints))
	}
	for i, wp := range b.WeakPoints {
		if wp.HitPoints != config.WeakPointHitPoints {
			t.Errorf("weak point %d starts with %d hit points, want %d", i, wp.HitPoints, config.WeakPointHitPoints)
		}
	}
	if got := b.HealthFraction(); got != 1.0 {
		t.Errorf("HealthFraction = %v, want 1.0", got)
	}
}

func TestBossHitWeakPoint(t *testing.T) {
	b := NewBoss(geom.Vector2D{X: 450, Y: 150}, 2)
	wp := b.WeakPoints[0]
	p := shotAt(wp.Position(b.Pos), OwnerPlayer)

	if !b.HitWeakPoint(p) {
		t.Fatal("projectile on a weak point did not register")
	}
	if wp.HitPoints != config.WeakPointHitPoints-1 {
		t.Errorf("weak point hit points = %d, want %d", wp.HitPoints, config.WeakPointHitPoints-1)
	}
	if p.Active {
		t.Error("projectile should be consumed on hit")
	}
	if b.Defeated {
		t.Error("boss defeated with weak points still standing")
	}
}

func TestBossIgnoresEnemyProjectiles(t *testing.T) {
	b := NewBoss(geom.Vector2D{X: 450, Y: 150}, 2)
	p := shotAt(b.WeakPoints[0].Position(b.Pos), OwnerEnemy)
	if b.HitWeakPoint(p) {
		t.Error("enemy projectile hit a weak point")
	}
}

func TestBossDefeatRequiresAllWeakPoints(t *testing.T) {
	b := NewBoss(geom.Vector2D{X: 450, Y: 150}, 2)

	hits := 0
	for _, wp := range b.WeakPoints {
		for !wp.Destroyed {
			p := shotAt(wp.Position(b.Pos), OwnerPlayer)
			if !b.HitWeakPoint(p) {
				t.Fatal("live weak point rejected a projectile")
			}
			hits++
			if b.Defeated && b.RemainingWeakPoints() > 0 {
				t.Fatal("boss defeated before all weak points fell")
			}
		}
	}
	if want := 4 * config.WeakPointHitPoints; hits != want {
		t.Errorf("defeat took %d hits, want %d", hits, want)
	}
	if !b.Defeated {
		t.Error("boss still alive with zero weak points")
	}
	if b.HP != 0 {
		t.Errorf("defeated boss HP = %d, want 0", b.HP)
	}

	// Further projectiles are ignored.
	p := shotAt(b.WeakPoints[0].Position(b.Pos), OwnerPlayer)
	if b.HitWeakPoint(p) {
		t.Error("defeated boss still taking weak point hits")
	}
}

func TestBossBodyInvulnerable(t *testing.T) {
	b := NewBoss(geom.Vector2D{X: 450, Y: 150}, 2)
	before := b.HP
	if got := b.ReceiveDamage(9999); got != 0 {
		t.Errorf("body absorbed %d damage, want 0", got)
	}
	if b.HP != before {
		t.Errorf("HP changed from %d to %d on body hit", before, b.HP)
	}
}

func TestBossLaserFiresOncePerCharge(t *testing.T) {
	b := NewBoss(geom.Vector2D{X: 450, Y: 150}, 2)
	playerPos := geom.Vector2D{X: 450, Y: 500}

	// First tick starts the charge.
	if shots := b.Update(0.01, playerPos); shots != nil {
		t.Fatal("laser fired before charging")
	}
	if !b.ChargingLaser() {
		t.Fatal("laser did not start charging off cooldown")
	}

	volleys := 0
	var beam []*Projectile
	for i := 0; i < 50; i++ {
		if shots := b.Update(0.1, playerPos); len(shots) > 0 {
			volleys++
			beam = shots
			break
		}
	}
	if volleys != 1 {
		t.Fatalf("charge produced %d volleys, want 1", volleys)
	}
	if len(beam) != config.BossLaserBeamCount {
		t.Errorf("beam has %d segments, want %d", len(beam), config.BossLaserBeamCount)
	}

	// Cooldown holds the next charge back.
	if b.ChargingLaser() {
		t.Error("laser recharging immediately after firing")
	}
	for i := 0; i < 3; i++ {
		if shots := b.Update(0.1, playerPos); shots != nil {
			t.Fatal("laser fired during cooldown")
		}
	}
}

func TestDefeatedBossStopsUpdating(t *testing.T) {
	b := NewBoss(geom.Vector2D{X: 450, Y: 150}, 2)
	b.Defeated = true
	pos := b.Pos
	if shots := b.Update(1.0, geom.Vector2D{}); shots != nil {
		t.Error("defeated boss fired")
	}
	if b.Pos != pos {
		t.Error("defeated boss moved")
	}
}
