// internal/defs/pickups.go
package defs

// EffectKind identifies a timed or instant modification of the player.
// Power-ups and hazards share the space: hazards are the harmful half.
type EffectKind int

const (
	EffectShield EffectKind = iota // instant: +shield points
	EffectSpeedBoost
	EffectWeaponBoost
	EffectRapidFire
	EffectNanoRepair // instant: +hp
	EffectShieldDrain
	EffectSpeedPenalty
	EffectWeaponJam
	EffectRadiation // instant: damage
)

func (k EffectKind) String() string {
	switch k {
	case EffectShield:
		return "shield"
	case EffectSpeedBoost:
		return "speed_boost"
	case EffectWeaponBoost:
		return "weapon_boost"
	case EffectRapidFire:
		return "rapid_fire"
	case EffectNanoRepair:
		return "nano_repair"
	case EffectShieldDrain:
		return "shield_drain"
	case EffectSpeedPenalty:
		return "speed_penalty"
	case EffectWeaponJam:
		return "weapon_jam"
	case EffectRadiation:
		return "radiation"
	}
	return "unknown"
}

// PickupDefinition describes one power-up or hazard variant.
// Duration 0 means the effect applies instantly on contact.
// Magnitude meaning depends on the kind: points for shield/repair/
// drain/radiation, a multiplier for speed effects, a flat damage
// delta for weapon effects.
type PickupDefinition struct {
	Kind      EffectKind
	Name      string
	Duration  float64
	Magnitude float64
	Weight    int
}

// PowerUpDefs are the beneficial pickups (ventajas).
var PowerUpDefs = []PickupDefinition{
	{Kind: EffectShield, Name: "Escudo de Energía", Duration: 0, Magnitude: 50, Weight: 25},
	{Kind: EffectSpeedBoost, Name: "Impulso de Velocidad", Duration: 12.0, Magnitude: 1.5, Weight: 25},
	{Kind: EffectWeaponBoost, Name: "Mejora de Armas", Duration: 20.0, Magnitude: 10, Weight: 20},
	{Kind: EffectRapidFire, Name: "Carga Rápida", Duration: 15.0, Magnitude: 0.6, Weight: 15},
	{Kind: EffectNanoRepair, Name: "Nanobots de Reparación", Duration: 0, Magnitude: 40, Weight: 15},
}

// HazardDefs are the harmful pickups (desventajas).
var HazardDefs = []PickupDefinition{
	{Kind: EffectShieldDrain, Name: "Drenaje de Escudo", Duration: 0, Magnitude: 30, Weight: 30},
	{Kind: EffectSpeedPenalty, Name: "Contaminación Espacial", Duration: 15.0, Magnitude: 0.6, Weight: 30},
	{Kind: EffectWeaponJam, Name: "Interferencia de Sistemas", Duration: 12.0, Magnitude: 8, Weight: 25},
	{Kind: EffectRadiation, Name: "Radiación Cósmica", Duration: 0, Magnitude: 25, Weight: 15},
}

// PickupFor looks a definition up by kind across both tables.
func PickupFor(kind EffectKind) (PickupDefinition, bool) {
	for _, d := range PowerUpDefs {
		if d.Kind == kind {
			return d, true
		}
	}
	for _, d := range HazardDefs {
		if d.Kind == kind {
			return d, true
		}
	}
	return PickupDefinition{}, false
}
