package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	Sky    = color.RGBA{135, 206, 235, 255}
	Soil   = color.RGBA{139, 69, 19, 255}
	Grass  = color.RGBA{34, 139, 34, 255}
	clouds = color.RGBA{250, 250, 255, 255}
)

// Generator paints the static backdrop once per window size.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateLandscape paints sky down to groundY (pixels from the top), soil
// below it and a grass strip a quarter of the soil deep.
func (g *Generator) GenerateLandscape(groundY int, seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	rng := rand.New(rand.NewSource(seed))

	img.Fill(Sky)

	for i := 0; i < 4+rng.Intn(3); i++ {
		x := rng.Intn(g.Width)
		y := 20 + rng.Intn(max(groundY/3, 1))
		g.drawCloud(img, x, y, rng)
	}

	soilDepth := g.Height - groundY
	img.SubImage(image.Rect(0, groundY, g.Width, g.Height)).(*ebiten.Image).Fill(Soil)

	// grass with a little noise so it does not look flat
	grassDepth := max(soilDepth/4, 1)
	for y := groundY; y < groundY+grassDepth && y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			shade := uint8(int(Grass.G) - 15 + rng.Intn(30))
			img.Set(x, y, color.RGBA{Grass.R, shade, Grass.B, 255})
		}
	}

	return img
}

// drawCloud draws a few overlapping discs
func (g *Generator) drawCloud(img *ebiten.Image, x, y int, rng *rand.Rand) {
	puffs := 3 + rng.Intn(3)
	for p := 0; p < puffs; p++ {
		radius := 10 + rng.Intn(12)
		cx := x + p*radius
		cy := y + int(4*math.Sin(float64(p)))

		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dy*dy <= radius*radius {
					px, py := cx+dx, cy+dy
					if px >= 0 && px < g.Width && py >= 0 && py < g.Height {
						img.Set(px, py, clouds)
					}
				}
			}
		}
	}
}
