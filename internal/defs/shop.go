// internal/defs/shop.go
package defs

// ShopEffect identifies which player stat a shop item improves.
type ShopEffect int

const (
	ShopFullRepair ShopEffect = iota
	ShopMaxHealth
	ShopAttack
	ShopDefense
	ShopSpeed
	ShopInvulnerability
)

// ShopItemDefinition is one catalog entry. Prices grow geometrically
// with each purchase; see game.ShopItem.CurrentPrice.
type ShopItemDefinition struct {
	Effect       ShopEffect
	Name         string
	Description  string
	BasePrice    int
	Magnitude    float64
	MaxPurchases int
	// ResetEachLevel items get their purchase counter cleared when a
	// new shop visit starts (the full repair, in practice).
	ResetEachLevel bool
}

var ShopCatalog = []ShopItemDefinition{
	{Effect: ShopFullRepair, Name: "Reparación Completa", Description: "Restaura 100% HP",
		BasePrice: 120, Magnitude: 0, MaxPurchases: 99, ResetEachLevel: true},
	{Effect: ShopMaxHealth, Name: "Reactor Cuántico", Description: "HP máximo +80",
		BasePrice: 200, Magnitude: 80, MaxPurchases: 5},
	{Effect: ShopAttack, Name: "Cañones de Plasma", Description: "Ataque +15",
		BasePrice: 180, Magnitude: 15, MaxPurchases: 5},
	{Effect: ShopDefense, Name: "Blindaje Titanio", Description: "Defensa +10",
		BasePrice: 150, Magnitude: 10, MaxPurchases: 5},
	{Effect: ShopSpeed, Name: "Motores Warp", Description: "Velocidad +50",
		BasePrice: 160, Magnitude: 50, MaxPurchases: 3},
	{Effect: ShopInvulnerability, Name: "Escudo Deflector", Description: "Invulnerabilidad +0.5s",
		BasePrice: 300, Magnitude: 0.5, MaxPurchases: 3},
}
