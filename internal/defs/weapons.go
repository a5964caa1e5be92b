// internal/defs/weapons.go
package defs

// WeaponType is the closed set of weapon archetypes.
type WeaponType int

const (
	WeaponBasic WeaponType = iota
	WeaponRapidFire
	WeaponShotgun
	WeaponLaser
	WeaponPlasma
	WeaponMissile
)

func (t WeaponType) String() string {
	switch t {
	case WeaponBasic:
		return "basic"
	case WeaponRapidFire:
		return "rapid_fire"
	case WeaponShotgun:
		return "shotgun"
	case WeaponLaser:
		return "laser"
	case WeaponPlasma:
		return "plasma"
	case WeaponMissile:
		return "missile"
	}
	return "unknown"
}

// SpecialEffect marks projectiles that behave differently on impact.
type SpecialEffect int

const (
	EffectNone SpecialEffect = iota
	EffectPenetrating
	EffectExplosive
	EffectLaser
	EffectPlasma
)

// WeaponDefinition describes one archetype. Damage and speed are
// multipliers over the player's effective attack and base shot speed;
// CooldownFactor scales the player's base cooldown.
type WeaponDefinition struct {
	Type           WeaponType
	Name           string
	Pellets        int
	SpreadRad      float64 // full cone width, radians
	SpeedFactor    float64
	DamageFactor   float64
	CooldownFactor float64
	RadiusFactor   float64 // projectile radius multiplier
	Effect         SpecialEffect
}

var WeaponDefs = map[WeaponType]WeaponDefinition{
	WeaponBasic: {
		Type: WeaponBasic, Name: "Cañón Básico",
		Pellets: 1, SpeedFactor: 1.0, DamageFactor: 1.0,
		CooldownFactor: 1.0, RadiusFactor: 1.0,
	},
	WeaponRapidFire: {
		Type: WeaponRapidFire, Name: "Ametralladora",
		Pellets: 1, SpeedFactor: 1.5, DamageFactor: 1.0,
		CooldownFactor: 0.5, RadiusFactor: 1.0,
	},
	WeaponShotgun: {
		Type: WeaponShotgun, Name: "Escopeta Plasma",
		Pellets: 5, SpreadRad: 0.5236, // 30 degree cone
		SpeedFactor: 0.9, DamageFactor: 0.7,
		CooldownFactor: 1.0, RadiusFactor: 1.0,
	},
	WeaponLaser: {
		Type: WeaponLaser, Name: "Láser de Combate",
		Pellets: 1, SpeedFactor: 3.0, DamageFactor: 1.0,
		CooldownFactor: 1.0, RadiusFactor: 1.0,
		Effect: EffectLaser,
	},
	WeaponPlasma: {
		Type: WeaponPlasma, Name: "Cañón de Plasma",
		Pellets: 1, SpeedFactor: 1.0, DamageFactor: 1.0,
		CooldownFactor: 1.0, RadiusFactor: 1.5,
		Effect: EffectPlasma,
	},
	WeaponMissile: {
		Type: WeaponMissile, Name: "Lanzamisiles",
		Pellets: 1, SpeedFactor: 0.8, DamageFactor: 1.5,
		CooldownFactor: 1.0, RadiusFactor: 1.0,
		Effect: EffectExplosive,
	},
}
