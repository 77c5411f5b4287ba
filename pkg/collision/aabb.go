// Package collision decides game over with axis-aligned bounding boxes. It
// runs independently of the solver's own contacts, which only produce the
// physical response.
package collision

import "github.com/golangdaddy/ragdollrider/pkg/physics"

// Box is an axis-aligned box given by its minimum corner and size.
type Box struct {
	X, Y float64 // minimum corner
	W, H float64
}

// FromCenter builds a box from a centre point and half extents.
func FromCenter(c physics.Vec2, halfW, halfH float64) Box {
	return Box{X: c.X - halfW, Y: c.Y - halfH, W: 2 * halfW, H: 2 * halfH}
}

// Square builds a box of side 2*half around c. Circles are approximated by
// the square of side = diameter.
func Square(c physics.Vec2, half float64) Box {
	return FromCenter(c, half, half)
}

// Center returns the box centre.
func (b Box) Center() physics.Vec2 {
	return physics.Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Overlaps reports strict overlap. Boxes that only share an edge do not
// overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X &&
		b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// Overlap is the free-function form of Box.Overlaps.
func Overlap(a, b Box) bool {
	return a.Overlaps(b)
}
