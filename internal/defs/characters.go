// internal/defs/characters.go
package defs

// ShipClass is the selectable pilot ship.
type ShipClass int

const (
	ShipFighter ShipClass = iota
	ShipTank
	ShipSniper
	ShipScout
)

func (c ShipClass) String() string {
	switch c {
	case ShipFighter:
		return "fighter"
	case ShipTank:
		return "tank"
	case ShipSniper:
		return "sniper"
	case ShipScout:
		return "scout"
	}
	return "unknown"
}

// CharacterDefinition holds the starting stats for a ship class.
type CharacterDefinition struct {
	Class         ShipClass
	Name          string
	Ability       string
	HP            int
	Attack        int
	Defense       int
	MoveSpeed     float64
	ShootCooldown float64
	DefaultWeapon WeaponType
}

var CharacterDefs = map[ShipClass]CharacterDefinition{
	ShipFighter: {
		Class: ShipFighter, Name: "Halcón Estelar", Ability: "Disparo Rápido",
		HP: 120, Attack: 20, Defense: 6, MoveSpeed: 180.0, ShootCooldown: 0.3,
		DefaultWeapon: WeaponBasic,
	},
	ShipTank: {
		Class: ShipTank, Name: "Coloso de Hierro", Ability: "Escudo Reforzado",
		HP: 180, Attack: 15, Defense: 12, MoveSpeed: 120.0, ShootCooldown: 0.5,
		DefaultWeapon: WeaponShotgun,
	},
	ShipSniper: {
		Class: ShipSniper, Name: "Ojo de Águila", Ability: "Disparo Preciso",
		HP: 90, Attack: 35, Defense: 3, MoveSpeed: 160.0, ShootCooldown: 0.7,
		DefaultWeapon: WeaponLaser,
	},
	ShipScout: {
		Class: ShipScout, Name: "Viento Solar", Ability: "Velocidad Extrema",
		HP: 100, Attack: 12, Defense: 4, MoveSpeed: 250.0, ShootCooldown: 0.25,
		DefaultWeapon: WeaponRapidFire,
	},
}
