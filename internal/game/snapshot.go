// internal/game/snapshot.go
package game

import (
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/entity"
	"go-space-odyssey/internal/geom"
)

// Snapshot is a read-only view of one tick for the renderer. It copies
// positions and display values out of the live entities so drawing
// never touches simulation state.
type Snapshot struct {
	Level      int
	MaxLevel   int
	Status     Status
	DeathCause DeathCause
	Sector     defs.SectorDefinition

	Player      PlayerView
	Enemies     []EnemyView
	Boss        *BossView
	Projectiles []ProjectileView
	Meteors     []CircleView
	Traps       []CircleView
	Treasures   []CircleView
	Equipment   []CircleView
	Pickups     []PickupView
}

type PlayerView struct {
	Pos          geom.Vector2D
	Radius       float64
	HP           int
	MaxHP        int
	Shield       int
	Level        int
	XP           int
	XPToNext     int
	Score        int
	Gold         int
	SuperCharges int
	SuperReady   bool
	Invulnerable bool
	Inventory    int
	Weapon       defs.WeaponType
}

type EnemyView struct {
	Pos        geom.Vector2D
	Radius     float64
	Kind       defs.EnemyKind
	HPFraction float64
}

type BossView struct {
	Pos            geom.Vector2D
	Radius         float64
	HealthFraction float64
	Charging       bool
	ChargeProgress float64
	WeakPoints     []WeakPointView
}

type WeakPointView struct {
	Pos       geom.Vector2D
	Radius    float64
	Destroyed bool
}

type ProjectileView struct {
	Pos    geom.Vector2D
	Radius float64
	Owner  entity.Owner
}

type CircleView struct {
	Pos    geom.Vector2D
	Radius float64
	Size   int // meteors only
}

type PickupView struct {
	Pos    geom.Vector2D
	Radius float64
	Hazard bool
	Kind   defs.EffectKind
}

// Snapshot captures the current tick. Inactive entities are omitted.
func (g *Game) Snapshot() Snapshot {
	p := g.Player
	s := Snapshot{
		Level:      g.Level,
		MaxLevel:   g.MaxLevel,
		Status:     g.status,
		DeathCause: g.deathCause,
		Sector:     g.scene.Sector,
		Player: PlayerView{
			Pos:          p.Pos,
			Radius:       p.Radius,
			HP:           p.HP,
			MaxHP:        p.MaxHP,
			Shield:       p.Shield,
			Level:        p.Level,
			XP:           p.XP,
			XPToNext:     p.XPToNext,
			Score:        p.Score,
			Gold:         p.Gold,
			SuperCharges: p.SuperCharges,
			SuperReady:   p.CanSuperShoot(),
			Invulnerable: p.Invulnerable(),
			Inventory:    len(p.Inventory),
			Weapon:       p.Weapon,
		},
	}

	for _, e := range g.scene.Enemies {
		if !e.Active {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			Pos: e.Pos, Radius: e.Radius, Kind: e.Kind, HPFraction: e.HPFraction(),
		})
	}

	if b := g.scene.Boss; b != nil && !b.Defeated {
		bv := &BossView{
			Pos:            b.Pos,
			Radius:         b.Radius,
			HealthFraction: b.HealthFraction(),
			Charging:       b.ChargingLaser(),
			ChargeProgress: b.ChargeProgress(),
		}
		for _, wp := range b.WeakPoints {
			bv.WeakPoints = append(bv.WeakPoints, WeakPointView{
				Pos: wp.Position(b.Pos), Radius: wp.Radius, Destroyed: wp.Destroyed,
			})
		}
		s.Boss = bv
	}

	for _, pr := range g.projectiles {
		if pr.Active {
			s.Projectiles = append(s.Projectiles, ProjectileView{Pos: pr.Pos, Radius: pr.Radius, Owner: pr.Owner})
		}
	}
	for _, m := range g.scene.Meteors {
		if m.Active {
			s.Meteors = append(s.Meteors, CircleView{Pos: m.Pos, Radius: m.Radius, Size: m.Size})
		}
	}
	for _, t := range g.scene.Traps {
		if t.Active {
			s.Traps = append(s.Traps, CircleView{Pos: t.Pos, Radius: t.Radius})
		}
	}
	for _, tr := range g.scene.Treasures {
		if tr.Active {
			s.Treasures = append(s.Treasures, CircleView{Pos: tr.Pos, Radius: tr.Radius})
		}
	}
	for _, eq := range g.scene.Equipment {
		if eq.Active {
			s.Equipment = append(s.Equipment, CircleView{Pos: eq.Pos, Radius: eq.Radius})
		}
	}
	for _, pk := range g.scene.Pickups {
		if pk.Active {
			s.Pickups = append(s.Pickups, PickupView{Pos: pk.Pos, Radius: pk.Radius * pk.PulseScale(), Hazard: pk.Hazard, Kind: pk.Def.Kind})
		}
	}
	return s
}
