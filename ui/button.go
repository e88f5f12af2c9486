package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const glyphWidth = 6

// Button is a clickable label. Disabled buttons ignore hover.
type Button struct {
	X, Y, W, H float32
	Label      string
	Hovered    bool
	Disabled   bool
}

func (b *Button) Contains(x, y int) bool {
	if b.Disabled {
		return false
	}
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

func (b *Button) Draw(screen *ebiten.Image, bgColor, hoverColor color.RGBA) {
	c := bgColor
	if b.Hovered {
		c = hoverColor
	}
	if b.Disabled {
		c = color.RGBA{50, 50, 50, 255}
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, c, false)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 1, color.RGBA{100, 100, 100, 255}, false)

	label := TruncStr(b.Label, int(b.W)/glyphWidth)
	textX := int(b.X) + (int(b.W)-len(label)*glyphWidth)/2
	textY := int(b.Y) + int(b.H/2) - 8
	ebitenutil.DebugPrintAt(screen, label, textX, textY)
}
