package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func DrawCircle(screen *ebiten.Image, cx, cy, radius float32, clr color.RGBA) {
	segments := 48
	for i := 0; i < segments; i++ {
		angle1 := float64(i) * 2 * math.Pi / float64(segments)
		angle2 := float64(i+1) * 2 * math.Pi / float64(segments)
		x1 := cx + radius*float32(math.Cos(angle1))
		y1 := cy + radius*float32(math.Sin(angle1))
		x2 := cx + radius*float32(math.Cos(angle2))
		y2 := cy + radius*float32(math.Sin(angle2))
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, clr, false)
	}
}

// DrawCrosshair marks the selected target.
func DrawCrosshair(screen *ebiten.Image, cx, cy, size float32, clr color.RGBA) {
	DrawCircle(screen, cx, cy, size*0.6, clr)
	vector.StrokeLine(screen, cx-size, cy, cx-size/3, cy, 2, clr, false)
	vector.StrokeLine(screen, cx+size/3, cy, cx+size, cy, 2, clr, false)
	vector.StrokeLine(screen, cx, cy-size, cx, cy-size/3, 2, clr, false)
	vector.StrokeLine(screen, cx, cy+size/3, cx, cy+size, 2, clr, false)
}

func TruncStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 2 {
		return ""
	}
	return s[:maxLen-1] + "."
}
