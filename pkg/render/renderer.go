// pkg/render/renderer.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-space-odyssey/internal/config"
	"go-space-odyssey/internal/entity"
	"go-space-odyssey/internal/game"
)

// Renderer draws a game snapshot. It owns no simulation state; every
// frame is drawn purely from the snapshot's copied values.
type Renderer struct {
	face font.Face
}

func New() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

func (r *Renderer) Draw(screen *ebiten.Image, snap game.Snapshot) {
	r.drawBackground(screen, snap)
	r.drawField(screen, snap)
	r.drawHUD(screen, snap)
}

func (r *Renderer) drawBackground(screen *ebiten.Image, snap game.Snapshot) {
	bg := snap.Sector.BG
	screen.Fill(color.RGBA{bg[0] / 4, bg[1] / 4, bg[2] / 4, 255})

	// The sector's stellar body sits behind the field as a big dim disk.
	accent := snap.Sector.Accent
	vector.DrawFilledCircle(screen, config.ScreenWidth-120, 140, 90,
		color.RGBA{accent[0] / 2, accent[1] / 2, accent[2] / 2, 255}, true)
}

func (r *Renderer) drawField(screen *ebiten.Image, snap game.Snapshot) {
	for _, t := range snap.Treasures {
		circle(screen, t.Pos.X, t.Pos.Y, t.Radius, config.TreasureColor)
	}
	for _, t := range snap.Traps {
		circle(screen, t.Pos.X, t.Pos.Y, t.Radius, config.TrapColor)
	}
	for _, e := range snap.Equipment {
		circle(screen, e.Pos.X, e.Pos.Y, e.Radius, config.EquipmentColor)
	}
	for _, pk := range snap.Pickups {
		c := config.PowerUpColor
		if pk.Hazard {
			c = config.HazardColor
		}
		circle(screen, pk.Pos.X, pk.Pos.Y, pk.Radius, c)
	}
	for _, m := range snap.Meteors {
		circle(screen, m.Pos.X, m.Pos.Y, m.Radius, config.MeteorColor)
	}

	for _, e := range snap.Enemies {
		circle(screen, e.Pos.X, e.Pos.Y, e.Radius, config.EnemyColor)
		bar(screen, e.Pos.X-e.Radius, e.Pos.Y-e.Radius-6, e.Radius*2, 3, e.HPFraction)
	}

	if b := snap.Boss; b != nil {
		bossColor := config.EnemyColor
		if b.Charging {
			// Flushes toward white as the beam winds up.
			glow := uint8(100 * b.ChargeProgress)
			bossColor = color.RGBA{230, 70 + glow, 70 + glow, 255}
		}
		circle(screen, b.Pos.X, b.Pos.Y, b.Radius, bossColor)
		for _, wp := range b.WeakPoints {
			if wp.Destroyed {
				continue
			}
			circle(screen, wp.Pos.X, wp.Pos.Y, wp.Radius, config.WeakPointColor)
		}
		bar(screen, b.Pos.X-b.Radius, b.Pos.Y-b.Radius-10, b.Radius*2, 5, b.HealthFraction)
	}

	for _, p := range snap.Projectiles {
		c := config.ProjectileColor
		if p.Owner == entity.OwnerEnemy {
			c = config.EnemyShotColor
		}
		circle(screen, p.Pos.X, p.Pos.Y, p.Radius, c)
	}

	pl := snap.Player
	c := config.PlayerColor
	if pl.Invulnerable {
		c = color.RGBA{c.R, c.G, c.B, 120}
	}
	circle(screen, pl.Pos.X, pl.Pos.Y, pl.Radius, c)
	if pl.Shield > 0 {
		vector.StrokeCircle(screen, float32(pl.Pos.X), float32(pl.Pos.Y), float32(pl.Radius+5), 2, config.PowerUpColor, true)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.HUDTopInset, config.HUDBackground, false)
	vector.DrawFilledRect(screen, 0, config.ScreenHeight-config.HUDBottomInset, config.ScreenWidth, config.HUDBottomInset, config.HUDBackground, false)

	pl := snap.Player
	text.Draw(screen, fmt.Sprintf("HP %d/%d", pl.HP, pl.MaxHP), r.face, 10, 16, config.TextColor)
	if pl.Shield > 0 {
		text.Draw(screen, fmt.Sprintf("Shield %d", pl.Shield), r.face, 10, 32, config.PowerUpColor)
	}
	text.Draw(screen, fmt.Sprintf("Lv %d  XP %d/%d", pl.Level, pl.XP, pl.XPToNext), r.face, 140, 16, config.TextColor)
	text.Draw(screen, fmt.Sprintf("Gold %d", pl.Gold), r.face, 140, 32, config.GoldColor)
	text.Draw(screen, fmt.Sprintf("Score %d", pl.Score), r.face, 320, 16, config.TextColor)
	text.Draw(screen, fmt.Sprintf("Sector %d/%d  %s", snap.Level, snap.MaxLevel, snap.Sector.Name), r.face, 320, 32, config.TextMutedColor)

	super := fmt.Sprintf("Super %d/%d", pl.SuperCharges, config.SuperChargesRequired)
	superColor := config.TextMutedColor
	if pl.SuperReady {
		super = "Super READY"
		superColor = config.GoldColor
	}
	text.Draw(screen, super, r.face, 540, 16, superColor)
	text.Draw(screen, fmt.Sprintf("Hold %d  [Q] sell  [E] defuse", pl.Inventory), r.face, 540, 32, config.TextMutedColor)
	text.Draw(screen, pl.Weapon.String(), r.face, 760, 16, config.TextMutedColor)

	text.Draw(screen, "WASD move  click shoot  right-click super", r.face, 10, config.ScreenHeight-10, config.TextMutedColor)
}

// Text draws a line in the HUD font; overlay states share it.
func (r *Renderer) Text(screen *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(screen, s, r.face, x, y, c)
}

// TextCentered centers a line horizontally around x.
func (r *Renderer) TextCentered(screen *ebiten.Image, s string, x, y int, c color.Color) {
	w := font.MeasureString(r.face, s).Ceil()
	text.Draw(screen, s, r.face, x-w/2, y, c)
}

func circle(screen *ebiten.Image, x, y, radius float64, c color.Color) {
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), c, true)
}

// bar draws a health bar, empty red under filled green. A zero-width
// denominator was already clamped by the snapshot's fraction.
func bar(screen *ebiten.Image, x, y, w, h, frac float64) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{80, 20, 20, 255}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*frac), float32(h), color.RGBA{40, 200, 40, 255}, false)
}
