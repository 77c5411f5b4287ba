package physics

import (
	"fmt"

	"github.com/ByteArena/box2d"
	"go.uber.org/zap"
)

// Settings fixes the integration parameters of a world. They are constants
// for the lifetime of a session and are never tuned at runtime.
type Settings struct {
	Gravity            Vec2
	TimeStep           float64 // seconds per Step
	VelocityIterations int
	PositionIterations int
}

// DefaultSettings matches the classic 60 Hz box2d setup.
func DefaultSettings() Settings {
	return Settings{
		Gravity:            Vec2{X: 0, Y: -10},
		TimeStep:           1.0 / 60.0,
		VelocityIterations: 6,
		PositionIterations: 2,
	}
}

// World owns every body and joint of a session. Components only hold the
// *Body and *Joint handles it returns.
type World struct {
	b2       box2d.B2World
	settings Settings
	bodies   int
	joints   int
	steps    uint64
	log      *zap.Logger
}

// NewWorld creates an empty world. Sleeping is disabled: the scene is small
// and every body is either driven or watched for collisions each frame.
func NewWorld(settings Settings, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		b2:       box2d.MakeB2World(settings.Gravity.b2()),
		settings: settings,
		log:      log.Named("physics"),
	}
	w.b2.SetAllowSleeping(false)
	return w
}

// Settings returns the integration parameters.
func (w *World) Settings() Settings {
	return w.settings
}

// Step advances the world by one fixed time step.
func (w *World) Step() {
	w.b2.Step(w.settings.TimeStep, w.settings.VelocityIterations, w.settings.PositionIterations)
	w.steps++
}

// Steps returns the number of completed steps.
func (w *World) Steps() uint64 {
	return w.steps
}

// BodyCount returns how many bodies were created in this world.
func (w *World) BodyCount() int {
	return w.bodies
}

// JointCount returns how many joints were created in this world.
func (w *World) JointCount() int {
	return w.joints
}

// Fixture carries the material of a body's single shape.
type Fixture struct {
	Density     float64
	Friction    float64
	Restitution float64
	// Group is the collision group. Bodies sharing a negative group never
	// collide with each other; zero means no group.
	Group       int16
}

// CreateBox creates a body with a box shape of the given half extents centred
// on the body origin.
func (w *World) CreateBox(kind BodyKind, pos Vec2, halfW, halfH float64, fx Fixture) (*Body, error) {
	if halfW <= 0 || halfH <= 0 {
		return nil, fmt.Errorf("box %.3fx%.3f: %w", halfW, halfH, ErrInvalidShape)
	}
	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(halfW, halfH)
	return w.createBody(kind, pos, &shape, fx)
}

// CreateCircle creates a body with a circle shape centred on the body origin.
func (w *World) CreateCircle(kind BodyKind, pos Vec2, radius float64, fx Fixture) (*Body, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("circle r=%.3f: %w", radius, ErrInvalidShape)
	}
	shape := box2d.MakeB2CircleShape()
	shape.M_radius = radius
	return w.createBody(kind, pos, &shape, fx)
}

func (w *World) createBody(kind BodyKind, pos Vec2, shape box2d.B2ShapeInterface, fx Fixture) (*Body, error) {
	if w.b2.IsLocked() {
		return nil, ErrWorldLocked
	}

	def := box2d.MakeB2BodyDef()
	def.Type = kind.b2()
	def.Position = pos.b2()

	b := w.b2.CreateBody(&def)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = shape
	fd.Density = fx.Density
	fd.Friction = fx.Friction
	fd.Restitution = fx.Restitution
	fd.Filter.GroupIndex = fx.Group
	b.CreateFixtureFromDef(&fd)

	w.bodies++
	body := &Body{b: b, world: w, kind: kind}
	b.SetUserData(body)

	w.log.Debug("body created",
		zap.Stringer("kind", kind),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Float64("mass", b.GetMass()),
	)
	return body, nil
}

// Revolute describes a revolute joint between two bodies. A nil Motor and a
// nil Limit give the fixed pin variant.
type Revolute struct {
	BodyA, BodyB     *Body
	AnchorA, AnchorB Vec2 // local to each body's origin
	Motor            *Motor
	Limit            *Limit
}

// Motor drives the joint's relative angular speed toward Speed using at most
// MaxTorque.
type Motor struct {
	Speed     float64
	MaxTorque float64
}

// Limit bounds the joint's relative angle to [Lower, Upper] radians.
type Limit struct {
	Lower, Upper float64
}

// CreateRevolute validates and creates a revolute joint.
func (w *World) CreateRevolute(def Revolute) (*Joint, error) {
	if def.BodyA == nil || def.BodyB == nil {
		return nil, ErrNilBody
	}
	if def.BodyA.world != w || def.BodyB.world != w {
		return nil, ErrForeignBody
	}
	if def.BodyA == def.BodyB {
		return nil, ErrSameBody
	}
	if def.Limit != nil && def.Limit.Lower > def.Limit.Upper {
		return nil, fmt.Errorf("limit [%.3f, %.3f]: %w", def.Limit.Lower, def.Limit.Upper, ErrInvalidLimit)
	}
	if w.b2.IsLocked() {
		return nil, ErrWorldLocked
	}

	jd := box2d.MakeB2RevoluteJointDef()
	jd.BodyA = def.BodyA.b
	jd.BodyB = def.BodyB.b
	jd.LocalAnchorA = def.AnchorA.b2()
	jd.LocalAnchorB = def.AnchorB.b2()
	jd.ReferenceAngle = def.BodyB.b.GetAngle() - def.BodyA.b.GetAngle()
	if def.Motor != nil {
		jd.EnableMotor = true
		jd.MotorSpeed = def.Motor.Speed
		jd.MaxMotorTorque = def.Motor.MaxTorque
	}
	if def.Limit != nil {
		jd.EnableLimit = true
		jd.LowerAngle = def.Limit.Lower
		jd.UpperAngle = def.Limit.Upper
	}

	rj, ok := w.link(&jd).(*box2d.B2RevoluteJoint)
	if !ok {
		return nil, ErrJointCreation
	}
	w.joints++
	return &Joint{j: rj, a: def.BodyA, b: def.BodyB}, nil
}

// link creates a joint from def and threads it into the world's joint list
// and both bodies' edge lists, as B2World.CreateJoint does. Going through
// B2JointCreate keeps the concrete def type, which the revolute constructor
// needs.
func (w *World) link(def box2d.B2JointDefInterface) box2d.B2JointInterface {
	j := box2d.B2JointCreate(def)
	if j == nil {
		return nil
	}

	j.SetPrev(nil)
	j.SetNext(w.b2.M_jointList)
	if w.b2.M_jointList != nil {
		w.b2.M_jointList.SetPrev(j)
	}
	w.b2.M_jointList = j
	w.b2.M_jointCount++

	bodyA, bodyB := j.GetBodyA(), j.GetBodyB()

	edgeA := j.GetEdgeA()
	edgeA.Joint = j
	edgeA.Other = bodyB
	edgeA.Prev = nil
	edgeA.Next = bodyA.M_jointList
	if bodyA.M_jointList != nil {
		bodyA.M_jointList.Prev = edgeA
	}
	bodyA.M_jointList = edgeA

	edgeB := j.GetEdgeB()
	edgeB.Joint = j
	edgeB.Other = bodyA
	edgeB.Prev = nil
	edgeB.Next = bodyB.M_jointList
	if bodyB.M_jointList != nil {
		bodyB.M_jointList.Prev = edgeB
	}
	bodyB.M_jointList = edgeB

	// jointed bodies never collide with each other
	if !j.IsCollideConnected() {
		for edge := bodyB.GetContactList(); edge != nil; edge = edge.Next {
			if edge.Other == bodyA {
				edge.Contact.FlagForFiltering()
			}
		}
	}
	return j
}
