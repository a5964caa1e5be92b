package game

import (
	"testing"

	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/entity"
	"go-space-odyssey/internal/geom"
)

func shopWith(t *testing.T, effect defs.ShopEffect) (*Shop, int) {
	t.Helper()
	sh := NewShop()
	for i, item := range sh.Items() {
		if item.Def.Effect == effect {
			return sh, i
		}
	}
	t.Fatalf("no catalog item with effect %v", effect)
	return nil, 0
}

func richPlayer() *entity.Player {
	p := entity.NewPlayer("buyer", defs.ShipFighter, geom.Vector2D{})
	p.Gold = 1_000_000
	return p
}

func TestPurchasePriceGrowsGeometrically(t *testing.T) {
	sh, idx := shopWith(t, defs.ShopAttack)
	p := richPlayer()
	base := sh.Items()[idx].Def.BasePrice

	wantPrices := []int{base, 270, 405} // 180 * 1.5^n
	for i, want := range wantPrices {
		if got := sh.Items()[idx].CurrentPrice(); got != want {
			t.Fatalf("purchase %d price = %d, want %d", i, got, want)
		}
		if !sh.Purchase(idx, p) {
			t.Fatalf("purchase %d refused with ample gold", i)
		}
	}
	if p.Attack != 20+3*15 {
		t.Errorf("Attack = %d after three buys, want %d", p.Attack, 20+3*15)
	}
}

func TestPurchaseRequiresGold(t *testing.T) {
	sh, idx := shopWith(t, defs.ShopDefense)
	p := entity.NewPlayer("broke", defs.ShipFighter, geom.Vector2D{})
	p.Gold = sh.Items()[idx].CurrentPrice() - 1

	if sh.Purchase(idx, p) {
		t.Fatal("purchase went through without enough gold")
	}
	if p.Defense != 6 {
		t.Errorf("Defense = %d after failed buy, want unchanged 6", p.Defense)
	}
}

func TestPurchaseCapped(t *testing.T) {
	sh, idx := shopWith(t, defs.ShopSpeed)
	p := richPlayer()
	limit := sh.Items()[idx].Def.MaxPurchases

	for i := 0; i < limit; i++ {
		if !sh.Purchase(idx, p) {
			t.Fatalf("purchase %d refused below the cap", i)
		}
	}
	if sh.Purchase(idx, p) {
		t.Error("purchase went through past the cap")
	}
}

func TestFullRepair(t *testing.T) {
	sh, idx := shopWith(t, defs.ShopFullRepair)
	p := richPlayer()

	if sh.Purchase(idx, p) {
		t.Fatal("full repair sold at full health")
	}
	p.HP = 10
	if !sh.Purchase(idx, p) {
		t.Fatal("full repair refused at low health")
	}
	if p.HP != p.MaxHP {
		t.Errorf("HP = %d after repair, want %d", p.HP, p.MaxHP)
	}

	// Its counter resets each level, so next level's first repair is
	// back at base price.
	before := sh.Items()[idx].CurrentPrice()
	sh.ResetLevel()
	after := sh.Items()[idx].CurrentPrice()
	if before <= after {
		t.Errorf("price before reset = %d, after = %d; want reset to base", before, after)
	}
	if after != sh.Items()[idx].Def.BasePrice {
		t.Errorf("post-reset price = %d, want base %d", after, sh.Items()[idx].Def.BasePrice)
	}
}

func TestOutOfRangePurchase(t *testing.T) {
	sh := NewShop()
	p := richPlayer()
	if sh.Purchase(-1, p) || sh.Purchase(len(sh.Items()), p) {
		t.Error("out-of-range index purchased something")
	}
}

func TestInvulnerabilityUpgradeCounted(t *testing.T) {
	sh, idx := shopWith(t, defs.ShopInvulnerability)
	p := richPlayer()
	if !sh.Purchase(idx, p) {
		t.Fatal("invulnerability upgrade refused")
	}
	if sh.Items()[idx].Purchases != 1 {
		t.Errorf("purchase count = %d, want 1", sh.Items()[idx].Purchases)
	}
}
