// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	// Entity radii (pixels).
	PlayerRadius     = 16.0
	EnemyRadius      = 14.0
	ProjectileRadius = 4.0
	TrapRadius       = 12.0
	TreasureRadius   = 10.0
	PickupRadius     = 15.0
	BossRadius       = 30.0
	WeakPointRadius  = 15.0

	// Experience.
	XPPerKill           = 40
	XPPerTreasureValue  = 0.1 // xp = treasure value * this
	BossXPMultiplier    = 5
	InitialXPToNext     = 100
	XPCurveFactor       = 1.4
	LevelUpHPBonus      = 20
	LevelUpAttackBonus  = 4
	LevelUpDefenseBonus = 2

	// Player combat.
	PlayerShotSpeed      = 480.0
	ProjectileLifetime   = 2.5
	ProjectileMargin     = 16.0
	InvulnerableTime     = 0.6
	SuperChargesRequired = 4
	SuperShotCooldown    = 2.0
	SuperShotSpeed       = 600.0
	ContactKnockback     = 8.0

	// Scoring.
	ScorePerKill        = 30
	ScoreBossBonus      = 200
	ScoreMeteorDestroy  = 15
	ScoreMeteorFragment = 10
	ScorePowerUp        = 25
	ScoreHazardPenalty  = 15
	ScoreTrapPenalty    = 10

	// Levels. Every even level hosts a boss.
	BaseMaxLevels     = 10
	ExtendedMaxLevels = 18
	BossLevelInterval = 2

	// Boss tuning.
	BossOrbitRadius     = 80.0
	BossOrbitRate       = 0.5
	BossLaserChargeTime = 2.0
	BossLaserCooldown   = 4.0
	BossLaserSpeed      = 400.0
	BossLaserBeamCount  = 8
	BossLaserSpacing    = 40.0
	WeakPointHitPoints  = 3

	// Meteors.
	MeteorBounceDamping = 0.8
	MeteorFragmentSize  = 1
	MeteorFragmentCount = 2
	MeteorScatter       = 20.0

	LeaderboardSize = 10

	// Movement clamp insets keeping the ship clear of the HUD strips.
	HUDTopInset    = 40.0
	HUDBottomInset = 30.0
)

var (
	BackgroundColor = color.RGBA{5, 5, 15, 255}
	StarColor       = color.RGBA{200, 200, 255, 255}
	HUDBackground   = color.RGBA{10, 10, 30, 255}

	PlayerColor     = color.RGBA{50, 130, 240, 255}
	EnemyColor      = color.RGBA{230, 70, 70, 255}
	ProjectileColor = color.RGBA{255, 220, 0, 255}
	EnemyShotColor  = color.RGBA{255, 0, 0, 255}
	TreasureColor   = color.RGBA{255, 215, 0, 255}
	TrapColor       = color.RGBA{150, 30, 30, 255}
	EquipmentColor  = color.RGBA{100, 200, 150, 255}
	MeteorColor     = color.RGBA{140, 120, 100, 255}
	PowerUpColor    = color.RGBA{0, 255, 255, 255}
	HazardColor     = color.RGBA{255, 100, 0, 255}
	WeakPointColor  = color.RGBA{255, 255, 255, 255}

	TextColor      = color.RGBA{255, 255, 255, 255}
	TextMutedColor = color.RGBA{180, 180, 180, 255}
	GoldColor      = color.RGBA{255, 255, 0, 255}
)
