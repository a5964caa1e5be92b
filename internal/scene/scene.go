// internal/scene/scene.go
package scene

import (
	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/entity"
	"go-space-odyssey/internal/geom"
	"go-space-odyssey/internal/utils"
)

// Spawn margins keep each object kind clear of the field edges.
const (
	enemyMargin    = 50.0
	treasureMargin = 40.0
	trapMargin     = 40.0
	pickupMargin   = 60.0
	meteorMargin   = 80.0

	// No hostile or hazard spawns inside this radius around the
	// player's level start position.
	safeRadius = 150.0

	equipmentChance = 0.6
)

// spawnKinds is the weighted pool for regular enemy selection, in a
// fixed order so a seeded run reproduces exactly.
var spawnKinds = []defs.EnemyKind{
	defs.EnemyGround,
	defs.EnemyFlyer,
	defs.EnemyArtillery,
	defs.EnemyElite,
	defs.EnemyBerserker,
	defs.EnemyGuardian,
}

var equipmentNames = []string{
	"Blindaje Reforzado",
	"Cañón Mejorado",
	"Matriz de Punteria",
	"Núcleo de Combate",
}

// Scene is the full population of one level, freshly generated.
type Scene struct {
	Level     int
	BossLevel bool
	Sector    defs.SectorDefinition

	PlayerStart geom.Vector2D

	Enemies   []*entity.Enemy
	Boss      *entity.Boss
	Treasures []*entity.Treasure
	Traps     []*entity.ExplosiveTrap
	Equipment []*entity.Equipment
	Meteors   []*entity.Meteor
	Pickups   []*entity.Pickup
}

// Generator builds level scenes from the population tables. Every call
// to Generate produces an independent scene; nothing carries over.
type Generator struct {
	rng *utils.PRNGService
}

func NewGenerator(rng *utils.PRNGService) *Generator {
	return &Generator{rng: rng}
}

// Generate populates a scene for the given level. Boss levels place
// the boss up top and halve the regular enemy count.
func (g *Generator) Generate(level int) *Scene {
	bossLevel := level%config.BossLevelInterval == 0

	s := &Scene{
		Level:     level,
		BossLevel: bossLevel,
		Sector:    defs.SectorFor(level),
		PlayerStart: geom.Vector2D{
			X: config.ScreenWidth / 2,
			Y: config.ScreenHeight - 100,
		},
	}

	if bossLevel {
		s.Boss = entity.NewBoss(geom.Vector2D{X: config.ScreenWidth / 2, Y: 150}, level)
	}

	for i := 0; i < defs.EnemyCount(level, bossLevel); i++ {
		kind := g.pickEnemyKind()
		s.Enemies = append(s.Enemies, entity.NewEnemy(g.spawnAwayFromPlayer(enemyMargin, s.PlayerStart), kind, level))
	}

	for i := 0; i < defs.TreasureCount(level); i++ {
		value := g.rng.IntRange(10, 120)
		s.Treasures = append(s.Treasures, entity.NewTreasure(g.spawnAt(treasureMargin), value))
	}

	trapDamage := 20 + 5*level
	if trapDamage > 60 {
		trapDamage = 60
	}
	for i := 0; i < defs.TrapCount(level); i++ {
		s.Traps = append(s.Traps, entity.NewExplosiveTrap(g.spawnAwayFromPlayer(trapMargin, s.PlayerStart), 60, trapDamage))
	}

	if g.rng.Float64() < equipmentChance {
		name := equipmentNames[g.rng.Intn(len(equipmentNames))]
		s.Equipment = append(s.Equipment, entity.NewEquipment(g.spawnAt(treasureMargin), name, 4, 2, 40))
	}

	for i := 0; i < defs.MeteorCount(level, bossLevel); i++ {
		s.Meteors = append(s.Meteors, g.spawnMeteor())
	}

	for i := 0; i < defs.PowerUpCount(level, bossLevel); i++ {
		def := g.pickWeightedPickup(defs.PowerUpDefs)
		s.Pickups = append(s.Pickups, entity.NewPickup(g.spawnAt(pickupMargin), def, false))
	}
	for i := 0; i < defs.HazardCount(level, bossLevel); i++ {
		def := g.pickWeightedPickup(defs.HazardDefs)
		s.Pickups = append(s.Pickups, entity.NewPickup(g.spawnAt(pickupMargin), def, true))
	}

	return s
}

func (g *Generator) pickEnemyKind() defs.EnemyKind {
	weights := make([]int, len(spawnKinds))
	for i, kind := range spawnKinds {
		weights[i] = defs.EnemyDefs[kind].SpawnWeight
	}
	idx := g.rng.ChooseWeighted(weights)
	if idx < 0 {
		return defs.EnemyGround
	}
	return spawnKinds[idx]
}

func (g *Generator) pickWeightedPickup(pool []defs.PickupDefinition) defs.PickupDefinition {
	weights := make([]int, len(pool))
	for i, d := range pool {
		weights[i] = d.Weight
	}
	idx := g.rng.ChooseWeighted(weights)
	if idx < 0 {
		idx = 0
	}
	return pool[idx]
}

func (g *Generator) spawnAt(margin float64) geom.Vector2D {
	return geom.Vector2D{
		X: g.rng.Range(margin, config.ScreenWidth-margin),
		Y: g.rng.Range(margin+config.HUDTopInset, config.ScreenHeight-margin),
	}
}

// spawnAwayFromPlayer rerolls until the position clears the safe
// radius, with a bounded number of tries so generation always ends.
func (g *Generator) spawnAwayFromPlayer(margin float64, playerStart geom.Vector2D) geom.Vector2D {
	var pos geom.Vector2D
	for tries := 0; tries < 20; tries++ {
		pos = g.spawnAt(margin)
		if pos.DistanceTo(playerStart) >= safeRadius {
			return pos
		}
	}
	return pos
}

func (g *Generator) spawnMeteor() *entity.Meteor {
	size := g.rng.IntRange(1, 3)
	maxSpeed := entity.MaxMeteorSpeed(size)
	vel := geom.Vector2D{
		X: g.rng.Range(-maxSpeed, maxSpeed),
		Y: g.rng.Range(-maxSpeed, maxSpeed),
	}
	return entity.NewMeteor(g.spawnAt(meteorMargin), size, vel)
}
