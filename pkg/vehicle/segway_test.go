package vehicle

import (
	"testing"

	"github.com/golangdaddy/ragdollrider/pkg/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestSegway(t *testing.T) (*physics.World, *Segway) {
	t.Helper()
	log := zaptest.NewLogger(t)
	w := physics.NewWorld(physics.DefaultSettings(), log)
	_, err := w.CreateBox(physics.Static, physics.Vec2{}, 50, 0.5, physics.Fixture{Friction: 0.6})
	require.NoError(t, err)

	s, err := New(w, physics.Vec2{X: 0, Y: 1.5}, DefaultConfig(), log)
	require.NoError(t, err)
	return w, s
}

func TestNewLaysOutWheelsUnderFrameEnds(t *testing.T) {
	w, s := newTestSegway(t)
	cfg := s.Config()

	assert.Equal(t, physics.Pose{X: 0, Y: 1.5}, s.FramePose())
	assert.Equal(t, physics.Pose{X: cfg.FrameHalfWidth, Y: 1.5 - cfg.WheelDrop}, s.FrontWheelPose())
	assert.Equal(t, physics.Pose{X: -cfg.FrameHalfWidth, Y: 1.5 - cfg.WheelDrop}, s.RearWheelPose())
	assert.Equal(t, 4, w.BodyCount())
	assert.Equal(t, 2, w.JointCount())
	for _, b := range s.Bodies() {
		assert.Equal(t, physics.Dynamic, b.Kind())
		assert.Equal(t, cfg.CollisionGroup, b.Group())
	}
}

func TestMotorTargets(t *testing.T) {
	_, s := newTestSegway(t)
	speed := s.Config().MotorSpeed

	s.MoveRight()
	assert.Equal(t, -speed, s.MotorSpeed())

	s.MoveLeft()
	assert.Equal(t, speed, s.MotorSpeed())
	assert.Equal(t, speed, s.rearAxle.MotorSpeed())

	s.Stop()
	assert.Equal(t, 0.0, s.MotorSpeed())
	assert.Equal(t, 0.0, s.rearAxle.MotorSpeed())
}

func TestMoveRightAcceleratesUpToTopSpeed(t *testing.T) {
	w, s := newTestSegway(t)
	top := s.Config().TopSpeed()

	s.MoveRight()
	prev := s.Velocity().X
	for sample := 0; sample < 12; sample++ {
		for i := 0; i < 10; i++ {
			w.Step()
		}
		v := s.Velocity().X
		if prev < 0.9*top {
			assert.GreaterOrEqual(t, v, prev-0.05, "sample %d", sample)
		}
		assert.LessOrEqual(t, v, top*1.05, "sample %d", sample)
		prev = v
	}
	assert.Greater(t, s.Velocity().X, 1.0)

	s.Stop()
	assert.Equal(t, 0.0, s.MotorSpeed())
	w.Step()
	assert.Greater(t, s.Velocity().X, 0.0, "velocity decays through the solver, not instantly")
}

func TestJumpStacksWithoutGroundCheck(t *testing.T) {
	w, s := newTestSegway(t)
	for i := 0; i < 30; i++ {
		w.Step()
	}
	rest := s.FramePose().Y

	s.Jump()
	w.Step()
	once := s.Velocity().Y
	assert.Greater(t, once, 0.0)

	s.Jump()
	w.Step()
	assert.Greater(t, s.Velocity().Y, once)

	for i := 0; i < 10; i++ {
		w.Step()
	}
	assert.Greater(t, s.FramePose().Y, rest)
}

func TestClampXShiftsWholeVehicle(t *testing.T) {
	_, s := newTestSegway(t)
	cfg := s.Config()

	assert.Zero(t, s.ClampX(-1, 10))

	dx := s.ClampX(2, 10)
	assert.Equal(t, 2.0, dx)
	assert.Equal(t, 2.0, s.FramePose().X)
	assert.Equal(t, 2.0+cfg.FrameHalfWidth, s.FrontWheelPose().X)
	assert.Equal(t, 2.0-cfg.FrameHalfWidth, s.RearWheelPose().X)

	dx = s.ClampX(0, 1)
	assert.Equal(t, -1.0, dx)
	assert.Equal(t, 1.0, s.FramePose().X)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"frame", func(c *Config) { c.FrameHalfWidth = 0 }},
		{"wheel", func(c *Config) { c.WheelRadius = -1 }},
		{"motor", func(c *Config) { c.MotorSpeed = -1 }},
		{"jump", func(c *Config) { c.JumpImpulse = -1 }},
		{"no group", func(c *Config) { c.CollisionGroup = 0 }},
		{"positive group", func(c *Config) { c.CollisionGroup = 2 }},
	}
	require.NoError(t, DefaultConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
