// internal/game/levels.go
package game

// LoadLevel regenerates the scene for the given level and resets the
// per-level state. The player's progression (stats, gold, score,
// inventory) carries over untouched.
func (g *Game) LoadLevel(level int) {
	if level < 1 {
		level = 1
	}
	g.Level = level
	g.scene = g.generator.Generate(level)
	g.projectiles = nil
	g.elapsed = 0
	g.status = StatusPlaying
	g.deathCause = CauseNone

	g.Player.Pos = g.scene.PlayerStart
	g.shop.ResetLevel()
}

// AdvanceLevel moves to the next level after a clear. A no-op unless
// the current level is complete.
func (g *Game) AdvanceLevel() bool {
	if g.status != StatusLevelComplete {
		return false
	}
	g.LoadLevel(g.Level + 1)
	return true
}
