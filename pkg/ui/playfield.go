package ui

import (
	"image/color"
	"math"

	"github.com/golangdaddy/ragdollrider/pkg/background"
	"github.com/golangdaddy/ragdollrider/pkg/game"
	"github.com/golangdaddy/ragdollrider/pkg/physics"
	"github.com/golangdaddy/ragdollrider/pkg/ui/camera"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	obstacleColor = color.RGBA{220, 40, 40, 255}
	frameColor    = color.RGBA{169, 169, 169, 255}
	wheelColor    = color.RGBA{20, 20, 20, 255}
	spokeColor    = color.RGBA{128, 128, 128, 255}
	uniformColor  = color.RGBA{255, 165, 0, 255}
	armColor      = color.RGBA{128, 128, 128, 255}
	skinColor     = color.RGBA{255, 224, 189, 255}
	helmetColor   = color.RGBA{255, 140, 0, 255}
)

// Playfield draws one snapshot in world space.
type Playfield struct {
	cam      camera.Camera
	backdrop *ebiten.Image
	pixel    *ebiten.Image
}

// NewPlayfield paints the backdrop for a width x height window.
func NewPlayfield(cam camera.Camera, width, height int, groundTop float64, seed int64) *Playfield {
	_, groundY := cam.Point(physics.Vec2{Y: groundTop})
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &Playfield{
		cam:      cam,
		backdrop: background.NewGenerator(width, height).GenerateLandscape(int(groundY), seed),
		pixel:    pixel,
	}
}

// Draw renders the scene back to front.
func (p *Playfield) Draw(screen *ebiten.Image, snap *game.Snapshot) {
	screen.DrawImage(p.backdrop, nil)

	for _, o := range snap.Obstacles {
		p.drawRect(screen, o, obstacleColor)
	}

	p.drawWheel(screen, snap.RearWheel)
	p.drawWheel(screen, snap.FrontWheel)
	p.drawRect(screen, snap.Frame, frameColor)

	p.drawRect(screen, snap.Torso, uniformColor)
	p.drawHead(screen, snap.Torso)
	if snap.HasLimb {
		p.drawRect(screen, snap.Limb, armColor)
	}
}

func (p *Playfield) drawRect(screen *ebiten.Image, r game.Rect, clr color.Color) {
	w, h := p.cam.Length(2*r.HalfW), p.cam.Length(2*r.HalfH)
	x, y := p.cam.Point(r.Pose.Position())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(p.cam.Angle(r.Pose.Angle))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(p.pixel, op)
}

// drawWheel draws the tyre and four spokes turning with the body angle.
func (p *Playfield) drawWheel(screen *ebiten.Image, w game.Wheel) {
	x, y := p.cam.Point(w.Pose.Position())
	r := p.cam.Length(w.Radius)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), wheelColor, true)

	for k := 0; k < 4; k++ {
		a := p.cam.Angle(w.Pose.Angle + float64(k)*math.Pi/2)
		ex, ey := x+math.Cos(a)*r*0.9, y+math.Sin(a)*r*0.9
		vector.StrokeLine(screen, float32(x), float32(y), float32(ex), float32(ey), 2, spokeColor, true)
	}
}

// drawHead puts a helmeted head on the top edge of the torso.
func (p *Playfield) drawHead(screen *ebiten.Image, torso game.Rect) {
	radius := torso.HalfW
	a := torso.Pose.Angle
	along := func(d float64) physics.Vec2 {
		return physics.Vec2{X: torso.Pose.X - math.Sin(a)*d, Y: torso.Pose.Y + math.Cos(a)*d}
	}

	x, y := p.cam.Point(along(torso.HalfH + radius))
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(p.cam.Length(radius)), skinColor, true)

	hx, hy := p.cam.Point(along(torso.HalfH + 1.4*radius))
	vector.DrawFilledCircle(screen, float32(hx), float32(hy), float32(p.cam.Length(0.75*radius)), helmetColor, true)
}
