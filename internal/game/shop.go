// internal/game/shop.go
package game

import (
	"math"

	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/entity"
)

// ShopItem is one catalog entry with its per-run purchase counter.
type ShopItem struct {
	Def       defs.ShopItemDefinition
	Purchases int
}

// CurrentPrice grows geometrically with every purchase of this item.
func (s *ShopItem) CurrentPrice() int {
	return int(math.Round(float64(s.Def.BasePrice) * math.Pow(1.5, float64(s.Purchases))))
}

// SoldOut reports whether the purchase cap is reached.
func (s *ShopItem) SoldOut() bool {
	return s.Purchases >= s.Def.MaxPurchases
}

// Shop is the between-levels upgrade store. Purchase counters persist
// across the whole run except the items flagged to reset per level.
type Shop struct {
	items []*ShopItem
}

func NewShop() *Shop {
	sh := &Shop{items: make([]*ShopItem, 0, len(defs.ShopCatalog))}
	for _, def := range defs.ShopCatalog {
		sh.items = append(sh.items, &ShopItem{Def: def})
	}
	return sh
}

// Items exposes the catalog for display. Callers must not mutate.
func (sh *Shop) Items() []*ShopItem {
	return sh.items
}

// Purchase applies item idx to the player, spending gold. Returns
// false without any effect when the index is bad, gold is short, the
// cap is reached, or a full repair is bought at full health.
func (sh *Shop) Purchase(idx int, p *entity.Player) bool {
	if idx < 0 || idx >= len(sh.items) {
		return false
	}
	item := sh.items[idx]
	if item.SoldOut() {
		return false
	}
	price := item.CurrentPrice()
	if p.Gold < price {
		return false
	}
	if item.Def.Effect == defs.ShopFullRepair && p.HP >= p.MaxHP {
		return false
	}

	switch item.Def.Effect {
	case defs.ShopFullRepair:
		p.HP = p.MaxHP
	case defs.ShopMaxHealth:
		p.MaxHP += int(item.Def.Magnitude)
		p.HP += int(item.Def.Magnitude)
	case defs.ShopAttack:
		p.Attack += int(item.Def.Magnitude)
	case defs.ShopDefense:
		p.Defense += int(item.Def.Magnitude)
	case defs.ShopSpeed:
		p.MoveSpeed += item.Def.Magnitude
	case defs.ShopInvulnerability:
		p.ExtendInvulnWindow(item.Def.Magnitude)
	default:
		return false
	}

	p.Gold -= price
	item.Purchases++
	return true
}

// ResetLevel clears the counters of per-level items before a new
// shop visit.
func (sh *Shop) ResetLevel() {
	for _, item := range sh.items {
		if item.Def.ResetEachLevel {
			item.Purchases = 0
		}
	}
}
