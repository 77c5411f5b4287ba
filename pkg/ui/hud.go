package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golangdaddy/ragdollrider/pkg/game"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD shows elapsed time and a speedometer in the top-left corner.
type HUD struct {
	face     text.Face
	topSpeed float64 // m/s at a full gauge
}

func NewHUD(topSpeed float64) *HUD {
	return &HUD{face: text.NewGoXFace(bitmapfont.Face), topSpeed: topSpeed}
}

func (h *HUD) Draw(screen *ebiten.Image, snap *game.Snapshot) {
	const (
		x, y          = 20.0, 20.0
		width, height = 180.0, 120.0
	)

	vector.DrawFilledRect(screen, x, y, width, height, color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, x, y, width, height, 2, color.RGBA{100, 100, 120, 255}, false)

	h.label(screen, fmt.Sprintf("TIME %5.1fs", snap.Elapsed.Seconds()), 1.5, x+12, y+10, color.RGBA{200, 200, 200, 255})

	speed := math.Abs(snap.Speed)
	fraction := math.Min(speed/h.topSpeed, 1)

	var speedColor color.RGBA
	switch {
	case fraction < 0.5:
		speedColor = color.RGBA{100, 255, 100, 255}
	case fraction < 0.8:
		speedColor = color.RGBA{255, 255, 100, 255}
	default:
		speedColor = color.RGBA{255, 100, 100, 255}
	}
	h.label(screen, fmt.Sprintf("%.1f", speed), 3, x+12, y+38, speedColor)
	h.label(screen, "M/S", 1.5, x+width-60, y+58, color.RGBA{200, 200, 200, 255})

	drawGauge(screen, x+10, y+height-25, width-20, 15, fraction)
}

func (h *HUD) label(screen *ebiten.Image, s string, scale, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, h.face, op)
}

// drawGauge fills a bar green through yellow to red as fraction goes 0 to 1.
func drawGauge(screen *ebiten.Image, x, y, width, height, fraction float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 255}, false)

	if filled := width * fraction; filled >= 1 {
		var barColor color.RGBA
		if fraction < 0.5 {
			ratio := fraction / 0.5
			barColor = color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
		} else {
			ratio := (fraction - 0.5) / 0.5
			barColor = color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(filled), float32(height), barColor, false)
	}

	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{150, 150, 150, 255}, false)
}

// drawGameOver darkens a band across the middle and prints the banner.
func drawGameOver(screen *ebiten.Image, face text.Face) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, float32(h/2-70), float32(w), 140, color.RGBA{0, 0, 0, 160}, false)
	drawCentered(screen, "GAME OVER", face, 5, w/2, h/2-50, color.RGBA{255, 40, 40, 255})
	drawCentered(screen, "ENTER to ride again    ESC to quit", face, 1.5, w/2, h/2+30, color.RGBA{220, 220, 220, 255})
}
