package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golangdaddy/ragdollrider/pkg/obstacle"
	"github.com/golangdaddy/ragdollrider/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 800.0/30.0, cfg.Boundary(), 1e-12)
	assert.Equal(t, 16*time.Millisecond, cfg.Loop.FrameInterval)
	assert.Equal(t, 1.0/60.0, cfg.Physics.Settings().TimeStep)
	assert.Equal(t, 6, cfg.Physics.Settings().VelocityIterations)
	assert.Equal(t, 2, cfg.Physics.Settings().PositionIterations)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
window:
  width: 1200
vehicle:
  motor_speed: 14
obstacles:
  count: 5
  policy: fixed_step
loop:
  frame_interval: 20ms
log:
  level: debug
  development: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1200, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "untouched fields keep defaults")
	assert.InDelta(t, 40.0, cfg.Boundary(), 1e-12)
	assert.Equal(t, 14.0, cfg.Vehicle.MotorSpeed)
	assert.Equal(t, vehicle.DefaultConfig().WheelRadius, cfg.Vehicle.WheelRadius)
	assert.Equal(t, 5, cfg.Obstacles.Count)
	assert.Equal(t, obstacle.PolicyFixedStep, cfg.Obstacles.Policy)
	assert.Equal(t, 20*time.Millisecond, cfg.Loop.FrameInterval)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"malformed", "window: [", ErrDecode},
		{"negative scale", "window:\n  scale: -1\n", ErrInvalidConfig},
		{"unknown policy", "obstacles:\n  policy: teleport\n", obstacle.ErrInvalidConfig},
		{"wheel radius", "vehicle:\n  wheel_radius: 0\n", vehicle.ErrInvalidConfig},
		{"ground mismatch", "physics:\n  ground_half_height: 2\n", ErrInvalidConfig},
		{"start outside", "scene:\n  start_x: 99\n", ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.body))
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, Default(), cfg)
		})
	}
}
