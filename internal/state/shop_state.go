// internal/state/shop_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/game"
)

var itemKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// ShopState is the between-levels store screen.
type ShopState struct {
	sm  *StateMachine
	ctx *Context

	game    *game.Game
	message string
}

func NewShopState(sm *StateMachine, ctx *Context, g *game.Game) *ShopState {
	return &ShopState{sm: sm, ctx: ctx, game: g}
}

func (s *ShopState) Enter() {}
func (s *ShopState) Exit()  {}

func (s *ShopState) Update(deltaTime float64) {
	shop := s.game.Shop()
	for i, key := range itemKeys {
		if i >= len(shop.Items()) {
			break
		}
		if inpututil.IsKeyJustPressed(key) {
			item := shop.Items()[i]
			if shop.Purchase(i, s.game.Player) {
				s.message = fmt.Sprintf("Bought %s", item.Def.Name)
			} else {
				s.message = fmt.Sprintf("Cannot buy %s", item.Def.Name)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.game.AdvanceLevel()
		s.sm.SetState(resumeGameState(s.sm, s.ctx, s.game))
	}
}

func (s *ShopState) Draw(screen *ebiten.Image) {
	screen.Fill(config.HUDBackground)
	r := s.ctx.Renderer
	cx := config.ScreenWidth / 2
	p := s.game.Player

	r.TextCentered(screen, fmt.Sprintf("SECTOR %d CLEAR", s.game.Level), cx, 80, config.GoldColor)
	r.TextCentered(screen, fmt.Sprintf("Gold %d   HP %d/%d   Score %d", p.Gold, p.HP, p.MaxHP, p.Score), cx, 110, config.TextColor)

	for i, item := range s.game.Shop().Items() {
		status := fmt.Sprintf("%4d g", item.CurrentPrice())
		c := config.TextColor
		if item.SoldOut() {
			status = "SOLD OUT"
			c = config.TextMutedColor
		} else if p.Gold < item.CurrentPrice() {
			c = config.TextMutedColor
		}
		line := fmt.Sprintf("[%d] %-22s %-24s %s", i+1, item.Def.Name, item.Def.Description, status)
		r.TextCentered(screen, line, cx, 160+i*24, c)
	}

	if s.message != "" {
		r.TextCentered(screen, s.message, cx, 340, config.GoldColor)
	}
	r.TextCentered(screen, "Enter: next sector", cx, 400, config.TextMutedColor)
}
