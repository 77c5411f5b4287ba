package physics

import "github.com/ByteArena/box2d"

// Joint is a handle to a revolute joint owned by a World.
type Joint struct {
	j    *box2d.B2RevoluteJoint
	a, b *Body
}

// BodyA returns the first connected body.
func (j *Joint) BodyA() *Body {
	return j.a
}

// BodyB returns the second connected body.
func (j *Joint) BodyB() *Body {
	return j.b
}

// SetMotorSpeed sets the motor's target relative angular speed.
func (j *Joint) SetMotorSpeed(speed float64) {
	j.j.SetMotorSpeed(speed)
}

// MotorSpeed returns the motor's target speed.
func (j *Joint) MotorSpeed() float64 {
	return j.j.GetMotorSpeed()
}

// MaxMotorTorque returns the motor torque bound.
func (j *Joint) MaxMotorTorque() float64 {
	return j.j.GetMaxMotorTorque()
}

// MotorEnabled reports whether the joint is motor-driven.
func (j *Joint) MotorEnabled() bool {
	return j.j.IsMotorEnabled()
}

// LimitEnabled reports whether the joint angle is bounded.
func (j *Joint) LimitEnabled() bool {
	return j.j.IsLimitEnabled()
}

// Limits returns the angle bounds. They are meaningless when LimitEnabled is false.
func (j *Joint) Limits() (lower, upper float64) {
	return j.j.GetLowerLimit(), j.j.GetUpperLimit()
}

// Angle returns body B's angle relative to body A, minus the reference angle.
func (j *Joint) Angle() float64 {
	return j.j.GetJointAngle()
}

// AnchorA returns the anchor on body A in world coordinates.
func (j *Joint) AnchorA() Vec2 {
	return fromB2(j.a.b.GetWorldPoint(j.j.GetLocalAnchorA()))
}

// AnchorB returns the anchor on body B in world coordinates.
func (j *Joint) AnchorB() Vec2 {
	return fromB2(j.b.b.GetWorldPoint(j.j.GetLocalAnchorB()))
}
