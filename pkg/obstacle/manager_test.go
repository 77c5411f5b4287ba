package obstacle

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/ragdollrider/pkg/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestManager(t *testing.T, cfg Config) (*physics.World, *Manager) {
	t.Helper()
	log := zaptest.NewLogger(t)
	w := physics.NewWorld(physics.DefaultSettings(), log)
	m, err := NewManager(w, cfg, rand.New(rand.NewSource(42)), log)
	require.NoError(t, err)
	return w, m
}

func TestSpawnInitialStaysWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	w, m := newTestManager(t, cfg)

	require.NoError(t, m.SpawnInitial(16))
	require.Len(t, m.Obstacles(), 16)
	assert.Equal(t, 16, w.BodyCount())

	for i, o := range m.Obstacles() {
		p := o.Pose()
		assert.Equal(t, i, o.ID)
		assert.GreaterOrEqual(t, p.X, cfg.SpawnMinX)
		assert.LessOrEqual(t, p.X, cfg.SpawnMaxX)
		assert.GreaterOrEqual(t, o.HalfExtent, cfg.MinHalfExtent)
		assert.LessOrEqual(t, o.HalfExtent, cfg.MaxHalfExtent)
		assert.GreaterOrEqual(t, o.Speed, cfg.MinSpeed)
		assert.LessOrEqual(t, o.Speed, cfg.MaxSpeed)
		assert.InDelta(t, cfg.GroundY+o.HalfExtent, p.Y, 1e-12, "rests on the ground")
	}
}

func TestFixedStepDecrementsAndRecyclesPeriodically(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicyFixedStep
	w, m := newTestManager(t, cfg)

	o, err := m.Spawn(3, 0.5, 4)
	require.NoError(t, err)

	const eps = 1e-9
	prev := o.Pose().X
	resets := 0
	for i := 0; i < 2000; i++ {
		w.Step()
		m.Tick()
		x := o.Pose().X
		if prev-cfg.FixedStep < cfg.LeftBoundary {
			require.Equal(t, cfg.RespawnX, x, "tick %d", i)
			resets++
		} else {
			require.InDelta(t, prev-cfg.FixedStep, x, eps, "tick %d", i)
			require.GreaterOrEqual(t, x, cfg.LeftBoundary-eps, "tick %d", i)
		}
		prev = x
	}

	// 45 m lane at 0.1 m per frame: one reset every ~451 frames
	assert.GreaterOrEqual(t, resets, 4)
	assert.Equal(t, resets, o.Recycled)
}

func TestFixedStepIgnoresObstacleSpeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Policy = PolicyFixedStep
	w, m := newTestManager(t, cfg)

	slow, err := m.Spawn(10, 0.5, 0.1)
	require.NoError(t, err)
	fast, err := m.Spawn(10, 1.0, 9)
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		w.Step()
		m.Tick()
	}
	assert.InDelta(t, 7.0, slow.Pose().X, 1e-9)
	assert.InDelta(t, 7.0, fast.Pose().X, 1e-9)
}

func TestVelocityPolicyFollowsOwnSpeed(t *testing.T) {
	cfg := DefaultConfig()
	w, m := newTestManager(t, cfg)

	o, err := m.Spawn(10, 1, 3)
	require.NoError(t, err)

	dt := w.Settings().TimeStep
	prev := o.Pose().X
	for i := 0; i < 60; i++ {
		w.Step()
		assert.Zero(t, m.Tick())
		x := o.Pose().X
		require.InDelta(t, prev-3*dt, x, 1e-9, "tick %d", i)
		prev = x
	}
	assert.InDelta(t, 7.0, o.Pose().X, 1e-6)
	assert.InDelta(t, cfg.GroundY+1, o.Pose().Y, 1e-9, "no gravity on obstacles")
}

func TestVelocityPolicyRecyclesPastLeftBoundary(t *testing.T) {
	cfg := DefaultConfig()
	w, m := newTestManager(t, cfg)

	o, err := m.Spawn(cfg.LeftBoundary+0.05, 0.5, 6)
	require.NoError(t, err)

	w.Step()
	assert.Equal(t, 1, m.Tick())
	assert.Equal(t, cfg.RespawnX, o.Pose().X)
	assert.Equal(t, 6.0, o.Speed, "speed retained")

	w.Step()
	assert.Less(t, o.Pose().X, cfg.RespawnX, "keeps sliding after respawn")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"policy", func(c *Config) { c.Policy = "teleport" }},
		{"spawn", func(c *Config) { c.SpawnMinX = 30 }},
		{"extent", func(c *Config) { c.MinHalfExtent = 0 }},
		{"speed", func(c *Config) { c.MinSpeed = 10 }},
		{"step", func(c *Config) { c.Policy = PolicyFixedStep; c.FixedStep = 0 }},
		{"respawn", func(c *Config) { c.RespawnX = -10 }},
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
