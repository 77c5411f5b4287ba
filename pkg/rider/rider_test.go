package rider

import (
	"math"
	"testing"

	"github.com/golangdaddy/ragdollrider/pkg/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type rig struct {
	world *physics.World
	frame *physics.Body
}

func newRig(t *testing.T) rig {
	t.Helper()
	w := physics.NewWorld(physics.DefaultSettings(), zaptest.NewLogger(t))
	_, err := w.CreateBox(physics.Static, physics.Vec2{}, 50, 0.5, physics.Fixture{Friction: 0.6})
	require.NoError(t, err)
	frame, err := w.CreateBox(physics.Dynamic, physics.Vec2{X: 3, Y: 0.6}, 1, 0.1, physics.Fixture{Density: 1, Friction: 0.3})
	require.NoError(t, err)
	return rig{world: w, frame: frame}
}

func TestTorsoStandsOnFrameTop(t *testing.T) {
	r := newRig(t)
	cfg := DefaultConfig()

	rd, err := New(r.world, r.frame, physics.Vec2{Y: 0.1}, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	torso := rd.TorsoPose()
	assert.InDelta(t, 3.0, torso.X, 1e-12)
	assert.InDelta(t, 0.7+cfg.TorsoHalfHeight, torso.Y, 1e-12)

	pin := rd.Pin()
	assert.False(t, pin.MotorEnabled())
	assert.False(t, pin.LimitEnabled())
	assert.Same(t, r.frame, pin.BodyA())
	assert.InDelta(t, pin.AnchorA().X, pin.AnchorB().X, 1e-9)
	assert.InDelta(t, pin.AnchorA().Y, pin.AnchorB().Y, 1e-9)
}

func TestPinHoldsWhileTorsoSwings(t *testing.T) {
	r := newRig(t)
	rd, err := New(r.world, r.frame, physics.Vec2{Y: 0.1}, DefaultConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)

	for i := 0; i < 180; i++ {
		r.world.Step()
		a, b := rd.Pin().AnchorA(), rd.Pin().AnchorB()
		require.InDelta(t, a.X, b.X, 0.05, "step %d", i)
		require.InDelta(t, a.Y, b.Y, 0.05, "step %d", i)
	}
}

func TestLimbStaysWithinSwingLimits(t *testing.T) {
	r := newRig(t)
	rd, err := New(r.world, r.frame, physics.Vec2{Y: 0.1}, DefaultConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)

	_, ok := rd.LimbPose()
	require.True(t, ok)
	require.Len(t, rd.Bodies(), 2)

	shoulder := rd.Shoulder()
	require.NotNil(t, shoulder)
	lower, upper := shoulder.Limits()
	assert.InDelta(t, -math.Pi/4, lower, 1e-12)
	assert.InDelta(t, math.Pi/4, upper, 1e-12)

	const slop = 0.1
	for i := 0; i < 240; i++ {
		r.world.Step()
		angle := shoulder.Angle()
		require.GreaterOrEqual(t, angle, lower-slop, "step %d", i)
		require.LessOrEqual(t, angle, upper+slop, "step %d", i)
	}
}

func TestRiderJoinsFrameCollisionGroup(t *testing.T) {
	w := physics.NewWorld(physics.DefaultSettings(), zaptest.NewLogger(t))
	frame, err := w.CreateBox(physics.Dynamic, physics.Vec2{Y: 1.5}, 1, 0.1, physics.Fixture{Density: 1, Group: -3})
	require.NoError(t, err)

	rd, err := New(w, frame, physics.Vec2{Y: 0.1}, DefaultConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)

	require.Len(t, rd.Bodies(), 2)
	for _, b := range rd.Bodies() {
		assert.Equal(t, int16(-3), b.Group())
	}
}

func TestWithoutLimb(t *testing.T) {
	r := newRig(t)
	cfg := DefaultConfig()
	cfg.Limb.Enabled = false

	rd, err := New(r.world, r.frame, physics.Vec2{Y: 0.1}, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	_, ok := rd.LimbPose()
	assert.False(t, ok)
	assert.Nil(t, rd.Shoulder())
	assert.Len(t, rd.Bodies(), 1)
	assert.Equal(t, 1, r.world.JointCount())
}

func TestNewRejectsMisuse(t *testing.T) {
	r := newRig(t)
	other := physics.NewWorld(physics.DefaultSettings(), zaptest.NewLogger(t))

	_, err := New(r.world, nil, physics.Vec2{}, DefaultConfig(), nil)
	require.ErrorIs(t, err, physics.ErrNilBody)

	_, err = New(other, r.frame, physics.Vec2{}, DefaultConfig(), nil)
	require.ErrorIs(t, err, physics.ErrForeignBody)

	cfg := DefaultConfig()
	cfg.Limb.SwingDegrees = 270
	_, err = New(r.world, r.frame, physics.Vec2{}, cfg, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTranslateMovesEveryBody(t *testing.T) {
	r := newRig(t)
	rd, err := New(r.world, r.frame, physics.Vec2{Y: 0.1}, DefaultConfig(), nil)
	require.NoError(t, err)
	torso := rd.TorsoPose()
	limb, _ := rd.LimbPose()

	rd.Translate(physics.Vec2{X: -1.5})

	assert.InDelta(t, torso.X-1.5, rd.TorsoPose().X, 1e-12)
	movedLimb, _ := rd.LimbPose()
	assert.InDelta(t, limb.X-1.5, movedLimb.X, 1e-12)
}
