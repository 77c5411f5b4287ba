package physics

import (
	"fmt"

	"github.com/ByteArena/box2d"
)

// Vec2 is a point or vector in simulation units (metres, y up).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) b2() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(v.X, v.Y)
}

func fromB2(v box2d.B2Vec2) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Pose is a read-only copy of a body's placement.
type Pose struct {
	X, Y  float64
	Angle float64 // radians, counter-clockwise
}

// Position returns the pose's origin.
func (p Pose) Position() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// BodyKind selects how the solver treats a body.
type BodyKind uint8

const (
	Static BodyKind = iota
	Kinematic
	Dynamic
)

func (k BodyKind) b2() uint8 {
	switch k {
	case Kinematic:
		return box2d.B2BodyType.B2_kinematicBody
	case Dynamic:
		return box2d.B2BodyType.B2_dynamicBody
	default:
		return box2d.B2BodyType.B2_staticBody
	}
}

func (k BodyKind) String() string {
	switch k {
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Body is a handle to a rigid body owned by a World.
type Body struct {
	b     *box2d.B2Body
	world *World
	kind  BodyKind
}

// Kind returns the body's solver kind.
func (b *Body) Kind() BodyKind {
	return b.kind
}

// Pose returns the current position and angle.
func (b *Body) Pose() Pose {
	p := b.b.GetPosition()
	return Pose{X: p.X, Y: p.Y, Angle: b.b.GetAngle()}
}

// Position returns the body origin in world coordinates.
func (b *Body) Position() Vec2 {
	return fromB2(b.b.GetPosition())
}

// LinearVelocity returns the velocity of the body origin.
func (b *Body) LinearVelocity() Vec2 {
	return fromB2(b.b.GetLinearVelocity())
}

// AngularVelocity returns the angular velocity in radians per second.
func (b *Body) AngularVelocity() float64 {
	return b.b.GetAngularVelocity()
}

// Mass returns the body mass in kilograms; zero for static and kinematic bodies.
func (b *Body) Mass() float64 {
	return b.b.GetMass()
}

// Group returns the collision group the body's fixture was created with.
func (b *Body) Group() int16 {
	return b.b.GetFixtureList().GetFilterData().GroupIndex
}

// SetTransform teleports the body. Velocities are kept.
func (b *Body) SetTransform(pos Vec2, angle float64) {
	b.b.SetTransform(pos.b2(), angle)
}

// SetLinearVelocity overrides the body's velocity. Static bodies reject it.
func (b *Body) SetLinearVelocity(v Vec2) error {
	if b.kind == Static {
		return ErrStaticBody
	}
	b.b.SetLinearVelocity(v.b2())
	return nil
}

// ApplyImpulse applies an instantaneous impulse at the centre of mass.
func (b *Body) ApplyImpulse(impulse Vec2) error {
	if b.kind != Dynamic {
		return fmt.Errorf("impulse on %s body: %w", b.kind, ErrStaticBody)
	}
	b.b.ApplyLinearImpulseToCenter(impulse.b2(), true)
	return nil
}

// Translate moves the body by d without touching its angle or velocity.
func (b *Body) Translate(d Vec2) {
	b.SetTransform(b.Position().Add(d), b.b.GetAngle())
}
