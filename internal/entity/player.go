package entity

import (
	"math"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/geom"
)

// ActiveEffect is a timed stat modifier picked up from a power-up or hazard.
type ActiveEffect struct {
	Magnitude float64
	Remaining float64
}

// Player is the controllable ship. Stats start from the chosen character
// class and grow through leveling and shop purchases.
type Player struct {
	Figure

	Name  string
	Class defs.ShipClass

	HP        int
	MaxHP     int
	Attack    int
	Defense   int
	MoveSpeed float64

	Weapon       defs.WeaponType
	shootTimer   float64
	shotCooldown float64

	Level    int
	XP       int
	XPToNext int
	Score    int
	Gold     int

	Shield int

	Inventory []Item

	SuperCharges   int
	superShotTimer float64

	invulnTimer   float64
	invulnWindow  float64
	effects       map[defs.EffectKind]*ActiveEffect
}

// NewPlayer builds a ship from a character class definition.
func NewPlayer(name string, class defs.ShipClass, pos geom.Vector2D) *Player {
	def := defs.CharacterDefs[class]
	return &Player{
		Figure:       NewFigure(pos, config.PlayerRadius),
		Name:         name,
		Class:        class,
		HP:           def.HP,
		MaxHP:        def.HP,
		Attack:       def.Attack,
		Defense:      def.Defense,
		MoveSpeed:    def.MoveSpeed,
		Weapon:       def.DefaultWeapon,
		shotCooldown: def.ShootCooldown,
		Level:        1,
		XPToNext:     config.InitialXPToNext,
		invulnWindow: config.InvulnerableTime,
		effects:      make(map[defs.EffectKind]*ActiveEffect),
	}
}

// UpdateTimers advances cooldowns, the invulnerability window and timed
// effects. Expired effects are removed.
func (p *Player) UpdateTimers(dt float64) {
	if p.shootTimer > 0 {
		p.shootTimer -= dt
	}
	if p.superShotTimer > 0 {
		p.superShotTimer -= dt
	}
	if p.invulnTimer > 0 {
		p.invulnTimer -= dt
	}
	for kind, eff := range p.effects {
		eff.Remaining -= dt
		if eff.Remaining <= 0 {
			delete(p.effects, kind)
		}
	}
}

// Move shifts the ship by the given direction scaled to its effective speed,
// clamped so the hull stays inside the playfield between the HUD strips.
func (p *Player) Move(dir geom.Vector2D, dt float64) {
	p.Pos = p.Pos.Add(dir.Normalized().Scale(p.EffectiveSpeed() * dt))
	p.Pos.X = clamp(p.Pos.X, p.Radius, config.ScreenWidth-p.Radius)
	p.Pos.Y = clamp(p.Pos.Y, p.Radius+config.HUDTopInset, config.ScreenHeight-p.Radius-config.HUDBottomInset)
}

// Knockback pushes the ship a fixed distance away from a contact
// point, with the same bounds clamp as normal movement.
func (p *Player) Knockback(from geom.Vector2D, dist float64) {
	dir := p.Pos.Sub(from).Normalized()
	p.Pos = p.Pos.Add(dir.Scale(dist))
	p.Pos.X = clamp(p.Pos.X, p.Radius, config.ScreenWidth-p.Radius)
	p.Pos.Y = clamp(p.Pos.Y, p.Radius+config.HUDTopInset, config.ScreenHeight-p.Radius-config.HUDBottomInset)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EffectiveAttack folds weapon boost and jam effects into the base stat.
// Never drops below 1.
func (p *Player) EffectiveAttack() int {
	atk := float64(p.Attack)
	if eff, ok := p.effects[defs.EffectWeaponBoost]; ok {
		atk += eff.Magnitude
	}
	if eff, ok := p.effects[defs.EffectWeaponJam]; ok {
		atk -= eff.Magnitude
	}
	if atk < 1 {
		atk = 1
	}
	return int(math.Round(atk))
}

// EffectiveSpeed folds boost and penalty multipliers into the base speed.
func (p *Player) EffectiveSpeed() float64 {
	speed := p.MoveSpeed
	if eff, ok := p.effects[defs.EffectSpeedBoost]; ok {
		speed *= eff.Magnitude
	}
	if eff, ok := p.effects[defs.EffectSpeedPenalty]; ok {
		speed *= eff.Magnitude
	}
	return speed
}

// EffectiveCooldown is the per-shot delay after weapon archetype and
// rapid-fire modifiers.
func (p *Player) EffectiveCooldown() float64 {
	cd := p.shotCooldown * defs.WeaponDefs[p.Weapon].CooldownFactor
	if eff, ok := p.effects[defs.EffectRapidFire]; ok {
		cd *= eff.Magnitude
	}
	return cd
}

// CanShoot reports whether the basic weapon is off cooldown.
func (p *Player) CanShoot() bool {
	return p.shootTimer <= 0
}

// Shoot fires the equipped weapon toward target. Returns nil while on
// cooldown. Multi-pellet weapons fan their shots across the spread arc.
func (p *Player) Shoot(target geom.Vector2D) []*Projectile {
	if !p.CanShoot() {
		return nil
	}
	w := defs.WeaponDefs[p.Weapon]
	p.shootTimer = p.EffectiveCooldown()

	damage := int(math.Round(float64(p.EffectiveAttack()) * w.DamageFactor))
	speed := config.PlayerShotSpeed * w.SpeedFactor
	radius := config.ProjectileRadius * w.RadiusFactor

	dir := target.Sub(p.Pos).Normalized()
	if dir.Magnitude() == 0 {
		dir = geom.Vector2D{X: 0, Y: -1}
	}

	shots := make([]*Projectile, 0, w.Pellets)
	for i := 0; i < w.Pellets; i++ {
		angle := 0.0
		if w.Pellets > 1 {
			angle = (float64(i) - float64(w.Pellets-1)/2) * (w.SpreadRad / float64(w.Pellets-1))
		}
		shot := NewProjectile(p.Pos, dir.Rotated(angle).Scale(speed), damage, OwnerPlayer)
		shot.Effect = w.Effect
		shot.Radius = radius
		shots = append(shots, shot)
	}
	return shots
}

// CanSuperShoot reports whether enough kill charges are banked and the
// super shot is off its own cooldown.
func (p *Player) CanSuperShoot() bool {
	return p.SuperCharges >= config.SuperChargesRequired && p.superShotTimer <= 0
}

// SuperShoot spends the banked charges on a five-shot fan at double damage.
// Returns nil when charges or cooldown gate it.
func (p *Player) SuperShoot(target geom.Vector2D) []*Projectile {
	if !p.CanSuperShoot() {
		return nil
	}
	p.SuperCharges = 0
	p.superShotTimer = config.SuperShotCooldown

	dir := target.Sub(p.Pos).Normalized()
	if dir.Magnitude() == 0 {
		dir = geom.Vector2D{X: 0, Y: -1}
	}
	damage := p.EffectiveAttack() * 2

	angles := []float64{-0.4, -0.2, 0, 0.2, 0.4}
	shots := make([]*Projectile, 0, len(angles))
	for _, a := range angles {
		vel := dir.Rotated(a).Scale(config.SuperShotSpeed)
		shots = append(shots, NewProjectile(p.Pos, vel, damage, OwnerPlayer))
	}
	return shots
}

// AddKill banks one super charge, capped at the amount a super shot spends.
func (p *Player) AddKill() {
	if p.SuperCharges < config.SuperChargesRequired {
		p.SuperCharges++
	}
}

// Invulnerable reports whether the post-hit grace window is still open.
func (p *Player) Invulnerable() bool {
	return p.invulnTimer > 0
}

// ReceiveDamage applies raw damage through defense, then shield, then HP.
// Defense is subtracted exactly once here, so callers pass unreduced attack
// values. Returns the points actually absorbed by shield and hull combined.
func (p *Player) ReceiveDamage(raw int) int {
	if !p.Active || p.Invulnerable() || raw <= 0 {
		return 0
	}
	dmg := raw - p.Defense
	if dmg < 0 {
		dmg = 0
	}
	absorbed := 0
	if p.Shield > 0 {
		soak := dmg
		if soak > p.Shield {
			soak = p.Shield
		}
		p.Shield -= soak
		dmg -= soak
		absorbed += soak
	}
	if dmg > 0 {
		if dmg > p.HP {
			dmg = p.HP
		}
		p.HP -= dmg
		absorbed += dmg
	}
	p.invulnTimer = p.invulnWindow
	if p.HP <= 0 {
		p.HP = 0
		p.Deactivate()
	}
	return absorbed
}

// GainXP adds experience and resolves any number of pending level-ups.
// Each level bumps max and current HP, attack and defense, and stretches
// the next threshold along the experience curve.
func (p *Player) GainXP(amount int) {
	if amount <= 0 {
		return
	}
	p.XP += amount
	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.MaxHP += config.LevelUpHPBonus
		p.HP += config.LevelUpHPBonus
		p.Attack += config.LevelUpAttackBonus
		p.Defense += config.LevelUpDefenseBonus
		p.XPToNext = int(math.Round(float64(p.XPToNext) * config.XPCurveFactor))
	}
}

// ExtendInvulnWindow lengthens the post-hit grace window permanently.
func (p *Player) ExtendInvulnWindow(d float64) {
	if d > 0 {
		p.invulnWindow += d
	}
}

// Heal restores hull points up to the maximum.
func (p *Player) Heal(amount int) {
	if amount <= 0 {
		return
	}
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// ApplyEffect resolves a power-up or hazard pickup. Instant kinds mutate
// stats immediately; timed kinds refresh the effect table entry.
func (p *Player) ApplyEffect(def defs.PickupDefinition) {
	switch def.Kind {
	case defs.EffectShield:
		p.Shield += int(def.Magnitude)
	case defs.EffectNanoRepair:
		p.Heal(int(def.Magnitude))
	case defs.EffectShieldDrain:
		p.Shield -= int(def.Magnitude)
		if p.Shield < 0 {
			p.Shield = 0
		}
	case defs.EffectRadiation:
		p.ReceiveDamage(int(def.Magnitude))
	default:
		p.effects[def.Kind] = &ActiveEffect{Magnitude: def.Magnitude, Remaining: def.Duration}
	}
}

// HasEffect reports whether a timed effect is currently active.
func (p *Player) HasEffect(kind defs.EffectKind) bool {
	_, ok := p.effects[kind]
	return ok
}

// PickUp stores an item in the inventory.
func (p *Player) PickUp(item Item) {
	p.Inventory = append(p.Inventory, item)
}

// SellFirstItem removes the oldest inventory item and credits its value.
// Returns the sold item, or nil when the hold is empty.
func (p *Player) SellFirstItem() Item {
	if len(p.Inventory) == 0 {
		return nil
	}
	item := p.Inventory[0]
	p.Inventory = p.Inventory[1:]
	p.Gold += item.SellValue()
	return item
}
