package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen represents the main title screen
type TitleScreen struct {
	startTime      time.Time
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen
func NewTitleScreen(onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	elapsed := time.Since(ts.startTime).Seconds()
	face := text.NewGoXFace(bitmapfont.Face)
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	// Pulsing scale effect (1.0 to 1.1)
	titleText := "RAGDOLL RIDER"
	titleScale := 6.0 * (1.0 + 0.1*sinWave(elapsed*2.0))
	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Scale(titleScale, titleScale)
	titleOp.GeoM.Translate(centerX-text.Advance(titleText, face)*titleScale/2, centerY-8)

	brightness := math.Min(1.0+0.2*sinWave(elapsed*1.5), 1.0)
	titleOp.ColorScale.ScaleWithColor(color.RGBA{
		uint8(255 * brightness),
		uint8(165 * brightness),
		0,
		255,
	})
	text.Draw(screen, titleText, face, titleOp)

	drawCentered(screen, "Stay on the Segway", face, 2.0, centerX, centerY+80, color.RGBA{180, 180, 200, 255})
	drawCentered(screen, "LEFT / RIGHT drive    SPACE jump    ESC quit", face, 1.0, centerX, centerY+130, color.RGBA{140, 140, 160, 255})

	// Blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		drawCentered(screen, "Press ENTER or SPACE to Start", face, 1.5, centerX, float64(height)-100, color.RGBA{150, 200, 255, 255})
	}

	drawDecorativeElements(screen, width, height)
}

// drawCentered draws s horizontally centred on x with its top at y.
func drawCentered(screen *ebiten.Image, s string, face text.Face, scale, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-text.Advance(s, face)*scale/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}

func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	for _, y := range []float32{float32(height) / 6, float32(height) * 5 / 6} {
		vector.StrokeLine(screen, 0, y, float32(width), y, 2, lineColor, false)
	}
}
