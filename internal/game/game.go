// internal/game/game.go
package game

import (
	"math"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/entity"
	"go-space-odyssey/internal/event"
	"go-space-odyssey/internal/geom"
	"go-space-odyssey/internal/input"
	"go-space-odyssey/internal/scene"
	"go-space-odyssey/internal/utils"
)

// Objects this close to the ship can be defused or pocketed with the
// interact action.
const interactRange = 40.0

// Status is the run-level state of the simulation.
type Status int

const (
	StatusPlaying Status = iota
	StatusLevelComplete
	StatusGameOver
	StatusVictory
)

// DeathCause tags what finally destroyed the ship, for the game-over
// report.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseEnemyContact
	CauseBossContact
	CauseEnemyShot
	CauseBossLaser
	CauseTrapBlast
	CauseMeteor
	CauseRadiation
)

func (c DeathCause) String() string {
	switch c {
	case CauseEnemyContact:
		return "enemy collision"
	case CauseBossContact:
		return "boss collision"
	case CauseEnemyShot:
		return "enemy fire"
	case CauseBossLaser:
		return "boss laser"
	case CauseTrapBlast:
		return "trap detonation"
	case CauseMeteor:
		return "meteor impact"
	case CauseRadiation:
		return "cosmic radiation"
	}
	return "unknown"
}

// Config selects the run parameters. Seed 0 draws from the clock.
type Config struct {
	PlayerName string
	Class      defs.ShipClass
	Extended   bool
	Seed       int64
	Dispatcher *event.Dispatcher
}

// Game is the single-threaded simulation core. All mutation happens
// inside Update; rendering reads through Snapshot only.
type Game struct {
	Player   *entity.Player
	Level    int
	MaxLevel int

	scene       *scene.Scene
	projectiles []*entity.Projectile

	generator  *scene.Generator
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	shop       *Shop

	status     Status
	deathCause DeathCause
	elapsed    float64
}

func New(cfg Config) *Game {
	dispatcher := cfg.Dispatcher
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	rng := utils.NewPRNGService(cfg.Seed)

	maxLevel := config.BaseMaxLevels
	if cfg.Extended {
		maxLevel = config.ExtendedMaxLevels
	}

	g := &Game{
		Player:     entity.NewPlayer(cfg.PlayerName, cfg.Class, geom.Vector2D{}),
		MaxLevel:   maxLevel,
		generator:  scene.NewGenerator(rng),
		rng:        rng,
		dispatcher: dispatcher,
		shop:       NewShop(),
	}
	g.LoadLevel(1)
	return g
}

// Status reports the current run state.
func (g *Game) Status() Status { return g.status }

// DeathCause is meaningful only after StatusGameOver.
func (g *Game) DeathCause() DeathCause { return g.deathCause }

// Shop is the between-levels store, shared across the run.
func (g *Game) Shop() *Shop { return g.shop }

// Elapsed is the simulated time of the current level in seconds.
func (g *Game) Elapsed() float64 { return g.elapsed }

// Dispatcher exposes the event bus for collaborator wiring.
func (g *Game) Dispatcher() *event.Dispatcher { return g.dispatcher }

// Update advances the simulation one tick. The tick order is fixed:
// input, timers, entity movement, collision passes, terminal check.
// Oversized dt values are clamped so a stalled frame cannot let
// entities tunnel through each other.
func (g *Game) Update(dt float64, in input.State) {
	if g.status != StatusPlaying || dt <= 0 {
		return
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	g.elapsed += dt

	g.applyInput(dt, in)
	g.Player.UpdateTimers(dt)
	g.advanceEntities(dt)
	g.resolveCollisions()
	g.checkTerminal()
}

func (g *Game) applyInput(dt float64, in input.State) {
	if in.Move.Magnitude() > 0 {
		g.Player.Move(in.Move, dt)
	}
	if in.FireBasic {
		if shots := g.Player.Shoot(in.Aim); len(shots) > 0 {
			g.projectiles = append(g.projectiles, shots...)
			g.dispatcher.Dispatch(event.Event{Type: event.PlayerShot, Data: len(shots)})
		}
	}
	if in.FireSuper {
		if shots := g.Player.SuperShoot(in.Aim); len(shots) > 0 {
			g.projectiles = append(g.projectiles, shots...)
			g.dispatcher.Dispatch(event.Event{Type: event.SuperShot, Data: len(shots)})
		}
	}
	if in.Interact {
		g.interactNearby()
	}
	if in.SellFirst {
		g.Player.SellFirstItem()
	}
}

// interactNearby defuses the nearest trap in reach into the hold.
// Walking into a trap still detonates it; the interact range is wider
// than the contact radius, so defusing rewards deliberate approach.
func (g *Game) interactNearby() {
	var nearest *entity.ExplosiveTrap
	best := interactRange
	for _, t := range g.scene.Traps {
		if !t.Active {
			continue
		}
		if d := t.Pos.DistanceTo(g.Player.Pos); d <= best {
			nearest = t
			best = d
		}
	}
	if nearest == nil {
		return
	}
	nearest.Deactivate()
	g.Player.PickUp(nearest)
	g.dispatcher.Dispatch(event.Event{Type: event.ItemPicked, Data: nearest})
}

func (g *Game) advanceEntities(dt float64) {
	for _, p := range g.projectiles {
		p.Update(dt, config.ScreenWidth, config.ScreenHeight)
	}
	for _, e := range g.scene.Enemies {
		if shots := e.Update(dt, g.Player.Pos, g.rng); len(shots) > 0 {
			g.projectiles = append(g.projectiles, shots...)
		}
	}
	if b := g.scene.Boss; b != nil {
		if beam := b.Update(dt, g.Player.Pos); len(beam) > 0 {
			g.projectiles = append(g.projectiles, beam...)
			g.dispatcher.Dispatch(event.Event{Type: event.BossLaserFired, Data: len(beam)})
		}
	}
	for _, m := range g.scene.Meteors {
		if m.Active {
			m.Update(dt)
		}
	}
	for _, pk := range g.scene.Pickups {
		if pk.Active {
			pk.Update(dt)
		}
	}

	g.compactProjectiles()
}

// compactProjectiles drops inactive projectiles so the slice does not
// grow without bound over a long level.
func (g *Game) compactProjectiles() {
	live := g.projectiles[:0]
	for _, p := range g.projectiles {
		if p.Active {
			live = append(live, p)
		}
	}
	g.projectiles = live
}

func (g *Game) onEnemyKilled(e *entity.Enemy) {
	g.Player.GainXP(config.XPPerKill)
	g.Player.AddKill()
	g.addScore(config.ScorePerKill)
	g.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: e})
}

func (g *Game) onBossDefeated(b *entity.Boss) {
	g.Player.GainXP(config.XPPerKill * config.BossXPMultiplier)
	g.Player.AddKill()
	g.addScore(config.ScoreBossBonus)
	g.dispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: b})
}

// addScore applies a delta, clamping the total at zero so penalties
// never show a negative score.
func (g *Game) addScore(delta int) {
	g.Player.Score += delta
	if g.Player.Score < 0 {
		g.Player.Score = 0
	}
}

func (g *Game) recordDeath(cause DeathCause) {
	if g.Player.Active || g.deathCause != CauseNone {
		return
	}
	g.deathCause = cause
}

func (g *Game) playerHit(dealt int, cause DeathCause) {
	if dealt <= 0 {
		return
	}
	g.dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: dealt})
	g.recordDeath(cause)
}

func (g *Game) checkTerminal() {
	if !g.Player.Active {
		g.status = StatusGameOver
		g.dispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: g.deathCause})
		return
	}
	if g.hostilesRemaining() > 0 {
		return
	}
	if g.Level >= g.MaxLevel {
		g.status = StatusVictory
	} else {
		g.status = StatusLevelComplete
	}
	g.dispatcher.Dispatch(event.Event{Type: event.LevelComplete, Data: g.Level})
}

func (g *Game) hostilesRemaining() int {
	n := 0
	for _, e := range g.scene.Enemies {
		if e.Active {
			n++
		}
	}
	if b := g.scene.Boss; b != nil && !b.Defeated {
		n++
	}
	return n
}

func roundXP(v float64) int {
	return int(math.Round(v))
}
