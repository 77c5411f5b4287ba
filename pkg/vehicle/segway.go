package vehicle

import (
	"fmt"

	"github.com/golangdaddy/ragdollrider/pkg/physics"
	"go.uber.org/zap"
)

// Config describes the segway's geometry, materials and drive.
type Config struct {
	FrameHalfWidth  float64 `yaml:"frame_half_width"`
	FrameHalfHeight float64 `yaml:"frame_half_height"`
	FrameDensity    float64 `yaml:"frame_density"`
	FrameFriction   float64 `yaml:"frame_friction"`

	WheelRadius   float64 `yaml:"wheel_radius"`
	WheelDrop     float64 `yaml:"wheel_drop"` // wheel centres sit this far below the frame centre
	WheelDensity  float64 `yaml:"wheel_density"`
	WheelFriction float64 `yaml:"wheel_friction"`

	MotorSpeed     float64 `yaml:"motor_speed"` // rad/s, magnitude used by MoveRight/MoveLeft
	MaxMotorTorque float64 `yaml:"max_motor_torque"`
	JumpImpulse    float64 `yaml:"jump_impulse"` // N·s applied upward to the frame

	// CollisionGroup is shared by the frame, the wheels and anything mounted
	// on the frame. It must be negative so those parts pass through each other.
	CollisionGroup int16 `yaml:"collision_group"`
}

// DefaultConfig returns a 2 m platform on 0.5 m wheels.
func DefaultConfig() Config {
	return Config{
		FrameHalfWidth:  1.0,
		FrameHalfHeight: 0.1,
		FrameDensity:    1.0,
		FrameFriction:   0.3,
		WheelRadius:     0.5,
		WheelDrop:       0.5,
		WheelDensity:    1.0,
		WheelFriction:   0.9,
		MotorSpeed:      10,
		MaxMotorTorque:  4,
		JumpImpulse:     12,
		CollisionGroup:  -1,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.FrameHalfWidth <= 0 || c.FrameHalfHeight <= 0:
		return fmt.Errorf("vehicle frame extents: %w", ErrInvalidConfig)
	case c.WheelRadius <= 0:
		return fmt.Errorf("vehicle wheel radius: %w", ErrInvalidConfig)
	case c.MotorSpeed < 0 || c.MaxMotorTorque < 0:
		return fmt.Errorf("vehicle motor: %w", ErrInvalidConfig)
	case c.JumpImpulse < 0:
		return fmt.Errorf("vehicle jump impulse: %w", ErrInvalidConfig)
	case c.CollisionGroup >= 0:
		return fmt.Errorf("vehicle collision group %d: %w", c.CollisionGroup, ErrInvalidConfig)
	}
	return nil
}

// TopSpeed is the ground speed reached when the wheels spin at MotorSpeed
// without slipping, in m/s.
func (c Config) TopSpeed() float64 {
	return c.WheelRadius * c.MotorSpeed
}

// Segway is a frame plate on two motor-driven wheels. The front wheel is the
// one on the +x side, facing the oncoming obstacles.
type Segway struct {
	cfg Config

	frame     *physics.Body
	front     *physics.Body
	rear      *physics.Body
	frontAxle *physics.Joint
	rearAxle  *physics.Joint

	log *zap.Logger
}

var _ Controls = (*Segway)(nil)

// New builds the segway with its frame centred on pos.
func New(w *physics.World, pos physics.Vec2, cfg Config, log *zap.Logger) (*Segway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Segway{cfg: cfg, log: log.Named("vehicle")}

	var err error
	s.frame, err = w.CreateBox(physics.Dynamic, pos, cfg.FrameHalfWidth, cfg.FrameHalfHeight, physics.Fixture{
		Density:  cfg.FrameDensity,
		Friction: cfg.FrameFriction,
		Group:    cfg.CollisionGroup,
	})
	if err != nil {
		return nil, fmt.Errorf("create frame: %w", err)
	}

	wheel := physics.Fixture{Density: cfg.WheelDensity, Friction: cfg.WheelFriction, Group: cfg.CollisionGroup}
	rearOffset := physics.Vec2{X: -cfg.FrameHalfWidth, Y: -cfg.WheelDrop}
	frontOffset := physics.Vec2{X: cfg.FrameHalfWidth, Y: -cfg.WheelDrop}

	if s.rear, err = w.CreateCircle(physics.Dynamic, pos.Add(rearOffset), cfg.WheelRadius, wheel); err != nil {
		return nil, fmt.Errorf("create rear wheel: %w", err)
	}
	if s.front, err = w.CreateCircle(physics.Dynamic, pos.Add(frontOffset), cfg.WheelRadius, wheel); err != nil {
		return nil, fmt.Errorf("create front wheel: %w", err)
	}

	if s.rearAxle, err = s.axle(w, s.rear, rearOffset); err != nil {
		return nil, fmt.Errorf("create rear axle: %w", err)
	}
	if s.frontAxle, err = s.axle(w, s.front, frontOffset); err != nil {
		return nil, fmt.Errorf("create front axle: %w", err)
	}

	s.log.Debug("segway assembled",
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Float64("top_speed", cfg.TopSpeed()),
	)
	return s, nil
}

// axle pins a wheel centre to the frame at offset with a motor joint.
func (s *Segway) axle(w *physics.World, wheel *physics.Body, offset physics.Vec2) (*physics.Joint, error) {
	return w.CreateRevolute(physics.Revolute{
		BodyA:   s.frame,
		BodyB:   wheel,
		AnchorA: offset,
		AnchorB: physics.Vec2{},
		Motor:   &physics.Motor{Speed: 0, MaxTorque: s.cfg.MaxMotorTorque},
	})
}

// MoveRight drives both wheels clockwise, rolling the segway toward +x.
func (s *Segway) MoveRight() {
	s.setMotorSpeed(-s.cfg.MotorSpeed)
}

// MoveLeft drives both wheels counter-clockwise.
func (s *Segway) MoveLeft() {
	s.setMotorSpeed(s.cfg.MotorSpeed)
}

// Stop sets the motor target to zero. The wheels still coast down under the
// torque limit.
func (s *Segway) Stop() {
	s.setMotorSpeed(0)
}

// Jump kicks the frame upward. There is no grounded check, so impulses stack
// when called in mid-air.
func (s *Segway) Jump() {
	if err := s.frame.ApplyImpulse(physics.Vec2{Y: s.cfg.JumpImpulse}); err != nil {
		s.log.Warn("jump rejected", zap.Error(err))
	}
}

func (s *Segway) setMotorSpeed(speed float64) {
	s.frontAxle.SetMotorSpeed(speed)
	s.rearAxle.SetMotorSpeed(speed)
}

// MotorSpeed returns the current motor target shared by both axles.
func (s *Segway) MotorSpeed() float64 {
	return s.frontAxle.MotorSpeed()
}

// Config returns the configuration the segway was built with.
func (s *Segway) Config() Config {
	return s.cfg
}

// Frame returns the frame handle, used to attach the rider.
func (s *Segway) Frame() *physics.Body {
	return s.frame
}

func (s *Segway) FramePose() physics.Pose      { return s.frame.Pose() }
func (s *Segway) FrontWheelPose() physics.Pose { return s.front.Pose() }
func (s *Segway) RearWheelPose() physics.Pose  { return s.rear.Pose() }

// Velocity returns the frame's linear velocity.
func (s *Segway) Velocity() physics.Vec2 {
	return s.frame.LinearVelocity()
}

// Bodies returns every body of the vehicle, frame first.
func (s *Segway) Bodies() []*physics.Body {
	return []*physics.Body{s.frame, s.front, s.rear}
}

// ClampX keeps the frame's horizontal position within [lo, hi] by shifting
// the frame and both wheels together. It returns the applied shift.
func (s *Segway) ClampX(lo, hi float64) float64 {
	x := s.frame.Position().X
	var dx float64
	switch {
	case x < lo:
		dx = lo - x
	case x > hi:
		dx = hi - x
	default:
		return 0
	}

	for _, b := range s.Bodies() {
		b.Translate(physics.Vec2{X: dx})
		// drop the component pushing further out of bounds
		v := b.LinearVelocity()
		if (dx > 0 && v.X < 0) || (dx < 0 && v.X > 0) {
			_ = b.SetLinearVelocity(physics.Vec2{Y: v.Y})
		}
	}
	return dx
}
