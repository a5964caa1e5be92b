// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-odyssey/internal/audio"
	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/game"
	"go-space-odyssey/internal/input"
)

// GameState runs the live simulation and hands off to the shop or the
// game-over screen on terminal status.
type GameState struct {
	sm  *StateMachine
	ctx *Context

	game   *game.Game
	reader *input.Reader
	paused bool
}

// NewGameState starts a fresh run for the named pilot.
func NewGameState(sm *StateMachine, ctx *Context, playerName string, class defs.ShipClass) *GameState {
	g := game.New(game.Config{
		PlayerName: playerName,
		Class:      class,
		Extended:   ctx.Extended,
	})
	audio.NewRouter(g.Dispatcher(), ctx.Audio)
	return resumeGameState(sm, ctx, g)
}

// resumeGameState re-enters play with an existing run, after a shop
// visit.
func resumeGameState(sm *StateMachine, ctx *Context, g *game.Game) *GameState {
	return &GameState{sm: sm, ctx: ctx, game: g, reader: input.NewReader()}
}

func (s *GameState) Enter() {}
func (s *GameState) Exit()  {}

func (s *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.paused = !s.paused
	}
	if s.paused {
		return
	}

	s.game.Update(deltaTime, s.reader.Read())

	switch s.game.Status() {
	case game.StatusLevelComplete:
		s.sm.SetState(NewShopState(s.sm, s.ctx, s.game))
	case game.StatusGameOver, game.StatusVictory:
		s.sm.SetState(NewGameOverState(s.sm, s.ctx, s.game))
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()
	s.ctx.Renderer.Draw(screen, snap)
	if s.paused {
		s.ctx.Renderer.TextCentered(screen, "PAUSED", config.ScreenWidth/2, 300, config.TextColor)
	}
}
