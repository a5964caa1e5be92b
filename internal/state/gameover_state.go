// internal/state/gameover_state.go
package state

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
	"go-space-odyssey/internal/game"
	"go-space-odyssey/internal/leaderboard"
)

// GameOverState shows the run summary, saves the score and lists the
// leaderboard. Covers both defeat and campaign victory.
type GameOverState struct {
	sm  *StateMachine
	ctx *Context

	game    *game.Game
	madeTop bool
	topRuns []leaderboard.ScoreEntry
}

func NewGameOverState(sm *StateMachine, ctx *Context, g *game.Game) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx, game: g}
}

func (s *GameOverState) Enter() {
	p := s.game.Player
	def := defs.CharacterDefs[p.Class]
	made, err := s.ctx.Board.AddScore(leaderboard.ScoreEntry{
		PlayerName:    p.Name,
		CharacterName: def.Name,
		CharacterType: p.Class.String(),
		Score:         p.Score,
		LevelReached:  s.game.Level,
	})
	if err != nil {
		log.Printf("save score: %v", err)
	}
	s.madeTop = made
	s.topRuns = s.ctx.Board.GetTop(config.LeaderboardSize)
}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewGameState(s.sm, s.ctx, s.game.Player.Name, s.game.Player.Class))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	r := s.ctx.Renderer
	cx := config.ScreenWidth / 2
	p := s.game.Player

	if s.game.Status() == game.StatusVictory {
		r.TextCentered(screen, "ODYSSEY COMPLETE", cx, 80, config.GoldColor)
	} else {
		r.TextCentered(screen, "SHIP DESTROYED", cx, 80, config.EnemyColor)
		r.TextCentered(screen, fmt.Sprintf("cause: %s", s.game.DeathCause()), cx, 104, config.TextMutedColor)
	}

	r.TextCentered(screen, fmt.Sprintf("%s  score %d  sector %d", p.Name, p.Score, s.game.Level), cx, 140, config.TextColor)
	if s.madeTop {
		r.TextCentered(screen, "NEW TOP-10 RUN", cx, 164, config.GoldColor)
	}

	r.TextCentered(screen, "--- best runs ---", cx, 210, config.TextMutedColor)
	for i, e := range s.topRuns {
		line := fmt.Sprintf("%2d. %-16s %-10s %6d  sector %d", i+1, e.PlayerName, e.CharacterType, e.Score, e.LevelReached)
		r.TextCentered(screen, line, cx, 234+i*18, config.TextColor)
	}

	r.TextCentered(screen, "[R] fly again   [Esc] menu", cx, 460, config.TextMutedColor)
}
