package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"orbwalker/config"
	"orbwalker/entity"
	"orbwalker/orbwalk"
	"orbwalker/targeting"
	"orbwalker/ui"
)

const (
	screenWidth  = config.SCREEN_WIDTH
	screenHeight = config.SCREEN_HEIGHT
)

var (
	colorBg     = color.RGBA{20, 25, 30, 255}
	colorPanel  = color.RGBA{25, 30, 38, 255}
	colorBorder = color.RGBA{50, 58, 70, 255}
	colorGreen  = color.RGBA{50, 200, 80, 255}
	colorRed    = color.RGBA{255, 60, 60, 255}
	colorYellow = color.RGBA{255, 220, 50, 255}
	colorOrange = color.RGBA{255, 150, 50, 255}
	colorDim    = color.RGBA{90, 90, 90, 255}
	colorCyan   = color.RGBA{50, 200, 200, 255}
	colorButton = color.RGBA{40, 40, 80, 255}
	colorHover  = color.RGBA{50, 50, 100, 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBg)

	g.strategyBtn.Draw(screen, colorButton, colorHover)
	g.modeBtn.Draw(screen, colorButton, colorHover)

	if !g.connected {
		drawCenteredText(screen, "Game not attached", screenWidth/2, screenHeight/2)
		return
	}

	cycle, err := g.snapshot()
	if errors.Is(err, orbwalk.ErrNoLocalPlayer) {
		drawCenteredText(screen, "Waiting for local player...", screenWidth/2, screenHeight/2)
		return
	}

	g.drawRadar(screen, cycle, float32(screenWidth)/2-150, 330)
	g.drawTargetPanel(screen, cycle, float32(screenWidth)-330, 50, 320)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()), screenWidth-150, 10)
}

func (g *Game) drawRadar(screen *ebiten.Image, c orbwalk.Cycle, centerX, centerY float32) {
	radius := float32(config.RADAR_RADIUS)

	ui.DrawCircle(screen, centerX, centerY, radius, color.RGBA{35, 40, 50, 255})
	ui.DrawCircle(screen, centerX, centerY, radius*0.66, color.RGBA{30, 35, 45, 255})
	ui.DrawCircle(screen, centerX, centerY, radius*0.33, color.RGBA{28, 32, 42, 255})
	vector.StrokeLine(screen, centerX-radius, centerY, centerX+radius, centerY, 1, color.RGBA{45, 50, 60, 255}, false)
	vector.StrokeLine(screen, centerX, centerY-radius, centerX, centerY+radius, 1, color.RGBA{45, 50, 60, 255}, false)

	scale := radius / float32(config.RADAR_RANGE)
	project := func(pos entity.Vec3) (float32, float32, bool) {
		x := centerX + (pos.X-c.Player.Position.X)*scale
		y := centerY - (pos.Y-c.Player.Position.Y)*scale
		dx, dy := x-centerX, y-centerY
		return x, y, dx*dx+dy*dy <= radius*radius
	}

	// attack range ring, including both fallback radii
	ui.DrawCircle(screen, centerX, centerY, (c.Player.AttackRange+2*config.UNIT_RADIUS)*scale, colorCyan)
	vector.DrawFilledCircle(screen, centerX, centerY, 6, colorGreen, false)

	for _, t := range c.Turrets {
		if x, y, ok := project(t.Position); ok {
			vector.StrokeRect(screen, x-5, y-5, 10, 10, 1, dotColor(t.Status, colorOrange), false)
		}
	}
	if c.HasTurret {
		if x, y, ok := project(c.Turret.Position); ok {
			ui.DrawCircle(screen, x, y, 9, colorOrange)
		}
	}

	for _, m := range c.Minions {
		if x, y, ok := project(m.Position); ok {
			vector.DrawFilledCircle(screen, x, y, 3, dotColor(m.Status, colorYellow), false)
		}
	}
	if c.HasMinion {
		if x, y, ok := project(c.Minion.Position); ok {
			ui.DrawCircle(screen, x, y, 7, colorYellow)
		}
	}

	for _, e := range c.Enemies {
		x, y, ok := project(e.Position)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen, x, y, 5, dotColor(e.Status, colorRed), false)
		ebitenutil.DebugPrintAt(screen, ui.TruncStr(e.Name, 10), int(x)+8, int(y)-4)
	}
	if c.HasTarget {
		if x, y, ok := project(c.Target.Position); ok {
			ui.DrawCrosshair(screen, x, y, 12, colorRed)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Range: %.0f", config.RADAR_RANGE), int(centerX-radius)+5, int(centerY+radius)+10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("E:%d  M:%d  T:%d", len(c.Enemies), len(c.Minions), len(c.Turrets)), int(centerX+radius)-90, int(centerY+radius)+10)
}

func dotColor(s entity.Status, live color.RGBA) color.RGBA {
	if !targeting.Hurtable(s) {
		return colorDim
	}
	return live
}

func (g *Game) drawTargetPanel(screen *ebiten.Image, c orbwalk.Cycle, x, y, w float32) {
	panelH := float32(300)
	vector.DrawFilledRect(screen, x, y, w, panelH, colorPanel, false)
	vector.StrokeRect(screen, x, y, w, panelH, 1, colorBorder, false)

	innerX := int(x) + 12
	line := int(y) + 12
	row := func(format string, args ...any) {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(format, args...), innerX, line)
		line += 16
	}

	p := c.Player
	row("%s  [cycle %d  %.1fs]", ui.TruncStr(p.Name, 14), c.Seq, c.GameTime)
	row("AD %.0f + %.0f  range %.0f", p.BasicAttack, p.BonusAttack, p.AttackRange)
	row("Poll: %v", c.Duration)
	line += 8

	if !c.HasTarget {
		row("Target: none")
	} else {
		t := c.Target
		row("Target: %s", t.Name)
		row("  HP %.0f / %.0f  armor %.0f", t.Health, t.MaxHealth, t.Armor)
		row("  hits %.1f  burst %.0f", targeting.MinAttacks(p, t.Health, t.Armor), targeting.MaxDamage(t))
		row("  dist %.0f  gold %d", targeting.Distance(p, t.Position), t.Gold)
	}
	line += 8

	if c.HasMinion {
		row("Last hit: %.0f hp (%.1f hits)", c.Minion.Health, targeting.MinAttacks(p, c.Minion.Health, c.Minion.Armor))
	}
	if c.HasTurret {
		row("Turret in reach: %.0f away", targeting.Distance(p, c.Turret.Position))
	}

	row("Spells: %s", c.SpellSummary())
}
