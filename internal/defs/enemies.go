// internal/defs/enemies.go
package defs

// EnemyKind is the closed set of enemy variants.
type EnemyKind int

const (
	EnemyGround EnemyKind = iota
	EnemyFlyer
	EnemyArtillery
	EnemyElite
	EnemyBerserker
	EnemyGuardian
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyGround:
		return "ground"
	case EnemyFlyer:
		return "flyer"
	case EnemyArtillery:
		return "artillery"
	case EnemyElite:
		return "elite"
	case EnemyBerserker:
		return "berserker"
	case EnemyGuardian:
		return "guardian"
	case EnemyBoss:
		return "boss"
	}
	return "unknown"
}

// EnemyBehavior selects the movement/attack routine for a kind.
type EnemyBehavior int

const (
	BehaviorChaser    EnemyBehavior = iota // closes to melee range
	BehaviorKiter                          // holds a preferred distance, shoots
	BehaviorArtillery                      // near-stationary, long-range shots
)

// EnemyDefinition holds the static level-1 stats for one enemy kind.
// Live stats are these values scaled by the level multiplier.
type EnemyDefinition struct {
	Kind          EnemyKind
	Name          string
	HP            int
	Attack        int
	Defense       int
	ContactDamage int
	Speed         float64
	Behavior      EnemyBehavior
	ShootRange    float64 // 0 for pure melee kinds
	ShootCooldown float64
	ShotDamage    int
	ShotSpeed     float64
	SpawnWeight   int
}

// EnemyDefs is the library of regular enemy definitions. The boss is
// built separately and never spawns from this table.
var EnemyDefs = map[EnemyKind]EnemyDefinition{
	EnemyGround: {
		Kind: EnemyGround, Name: "Raider",
		HP: 60, Attack: 12, Defense: 3, ContactDamage: 12, Speed: 80.0,
		Behavior:    BehaviorChaser,
		SpawnWeight: 30,
	},
	EnemyFlyer: {
		Kind: EnemyFlyer, Name: "Interceptor",
		HP: 45, Attack: 10, Defense: 1, ContactDamage: 10, Speed: 110.0,
		Behavior:   BehaviorKiter,
		ShootRange: 220.0, ShootCooldown: 1.6, ShotDamage: 10, ShotSpeed: 260.0,
		SpawnWeight: 25,
	},
	EnemyArtillery: {
		Kind: EnemyArtillery, Name: "Siege Platform",
		HP: 80, Attack: 18, Defense: 5, ContactDamage: 14, Speed: 35.0,
		Behavior:   BehaviorArtillery,
		ShootRange: 380.0, ShootCooldown: 2.8, ShotDamage: 22, ShotSpeed: 200.0,
		SpawnWeight: 12,
	},
	EnemyElite: {
		Kind: EnemyElite, Name: "Elite Hunter",
		HP: 95, Attack: 16, Defense: 6, ContactDamage: 16, Speed: 95.0,
		Behavior:   BehaviorChaser,
		ShootRange: 180.0, ShootCooldown: 2.0, ShotDamage: 14, ShotSpeed: 300.0,
		SpawnWeight: 10,
	},
	EnemyBerserker: {
		Kind: EnemyBerserker, Name: "Berserker",
		HP: 70, Attack: 20, Defense: 2, ContactDamage: 20, Speed: 140.0,
		Behavior:    BehaviorChaser,
		SpawnWeight: 13,
	},
	EnemyGuardian: {
		Kind: EnemyGuardian, Name: "Guardian",
		HP: 120, Attack: 14, Defense: 8, ContactDamage: 14, Speed: 60.0,
		Behavior:   BehaviorKiter,
		ShootRange: 160.0, ShootCooldown: 2.2, ShotDamage: 12, ShotSpeed: 240.0,
		SpawnWeight: 10,
	},
}

// Boss level-1 base stats. Per-level bonuses are applied on top, see
// entity.NewBoss.
const (
	BossBaseHP      = 80
	BossBaseAttack  = 25
	BossBaseDefense = 8
	BossBaseSpeed   = 30.0
)

// StatMultiplier returns the regular-enemy scaling factor for a game
// level: +15% per level through level 10, +25% per level past that.
func StatMultiplier(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level <= 10 {
		return 1.0 + float64(level-1)*0.15
	}
	return 1.0 + 9*0.15 + float64(level-10)*0.25
}
