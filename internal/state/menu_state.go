// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/defs"
)

var classOrder = []defs.ShipClass{
	defs.ShipFighter,
	defs.ShipTank,
	defs.ShipSniper,
	defs.ShipScout,
}

// MenuState is the pilot name and ship class screen.
type MenuState struct {
	sm  *StateMachine
	ctx *Context

	name     []rune
	selected int
	runes    []rune
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{sm: sm, ctx: ctx, name: []rune("Piloto")}
}

func (m *MenuState) Enter() {}
func (m *MenuState) Exit()  {}

func (m *MenuState) Update(deltaTime float64) {
	m.runes = ebiten.AppendInputChars(m.runes[:0])
	for _, r := range m.runes {
		if len(m.name) < 16 && r >= ' ' {
			m.name = append(m.name, r)
		}
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) && len(m.name) > 0 {
		m.name = m.name[:len(m.name)-1]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		m.selected = (m.selected + len(classOrder) - 1) % len(classOrder)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		m.selected = (m.selected + 1) % len(classOrder)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && len(m.name) > 0 {
		m.sm.SetState(NewGameState(m.sm, m.ctx, string(m.name), classOrder[m.selected]))
	}
}

func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && (d-30)%5 == 0)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	r := m.ctx.Renderer
	cx := config.ScreenWidth / 2

	r.TextCentered(screen, "ODISEA EN EL ESPACIO", cx, 120, config.GoldColor)
	r.TextCentered(screen, fmt.Sprintf("Pilot: %s_", string(m.name)), cx, 180, config.TextColor)
	r.TextCentered(screen, "Choose your ship (arrows, Enter to launch)", cx, 220, config.TextMutedColor)

	for i, class := range classOrder {
		def := defs.CharacterDefs[class]
		c := config.TextMutedColor
		prefix := "  "
		if i == m.selected {
			c = config.TextColor
			prefix = "> "
		}
		line := fmt.Sprintf("%s%-8s HP %3d  ATK %2d  DEF %2d  SPD %3.0f  %s",
			prefix, class, def.HP, def.Attack, def.Defense, def.MoveSpeed, def.DefaultWeapon)
		r.TextCentered(screen, line, cx, 260+i*24, c)
	}

	mode := "campaign: 10 sectors"
	if m.ctx.Extended {
		mode = "extended campaign: 18 sectors"
	}
	r.TextCentered(screen, mode, cx, 380, config.TextMutedColor)
}
