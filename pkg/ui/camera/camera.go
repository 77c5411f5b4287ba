// Package camera converts world metres to screen pixels. The world's y axis
// points up; the screen's points down.
package camera

import "github.com/golangdaddy/ragdollrider/pkg/physics"

type Camera struct {
	Scale  float64 // pixels per metre
	Height int     // screen height in pixels
	Ground float64 // world y drawn at the bottom edge
}

func New(scale float64, height int, ground float64) Camera {
	return Camera{Scale: scale, Height: height, Ground: ground}
}

// Point maps a world position to screen pixels.
func (c Camera) Point(v physics.Vec2) (x, y float64) {
	return v.X * c.Scale, float64(c.Height) - (v.Y-c.Ground)*c.Scale
}

// Length maps a world distance to pixels.
func (c Camera) Length(m float64) float64 {
	return m * c.Scale
}

// Angle maps a counter-clockwise world angle to a screen rotation.
func (c Camera) Angle(a float64) float64 {
	return -a
}

// World maps a screen point back to world coordinates.
func (c Camera) World(x, y float64) physics.Vec2 {
	return physics.Vec2{X: x / c.Scale, Y: (float64(c.Height)-y)/c.Scale + c.Ground}
}
