// Package config loads the game's tunables from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/golangdaddy/ragdollrider/pkg/obstacle"
	"github.com/golangdaddy/ragdollrider/pkg/physics"
	"github.com/golangdaddy/ragdollrider/pkg/rider"
	"github.com/golangdaddy/ragdollrider/pkg/vehicle"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the binary looks for its config when -config is not given.
const DefaultPath = "config/ragdollrider.yaml"

type Window struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"` // pixels per metre
	Title  string  `yaml:"title"`
}

type Physics struct {
	GravityY           float64 `yaml:"gravity_y"`
	TimeStep           float64 `yaml:"time_step"`
	VelocityIterations int     `yaml:"velocity_iterations"`
	PositionIterations int     `yaml:"position_iterations"`

	GroundHalfWidth  float64 `yaml:"ground_half_width"`
	GroundHalfHeight float64 `yaml:"ground_half_height"`
	GroundFriction   float64 `yaml:"ground_friction"`
}

// Settings converts the section into solver settings.
func (p Physics) Settings() physics.Settings {
	return physics.Settings{
		Gravity:            physics.Vec2{Y: p.GravityY},
		TimeStep:           p.TimeStep,
		VelocityIterations: p.VelocityIterations,
		PositionIterations: p.PositionIterations,
	}
}

// Scene places the vehicle and rider at the start of a session.
type Scene struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

type Loop struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	MaxCatchUp    int           `yaml:"max_catch_up"` // solver steps allowed per wake-up
	CommandBuffer int           `yaml:"command_buffer"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Config is the whole file.
type Config struct {
	Window    Window          `yaml:"window"`
	Physics   Physics         `yaml:"physics"`
	Scene     Scene           `yaml:"scene"`
	Vehicle   vehicle.Config  `yaml:"vehicle"`
	Rider     rider.Config    `yaml:"rider"`
	Obstacles obstacle.Config `yaml:"obstacles"`
	Loop      Loop            `yaml:"loop"`
	Log       Log             `yaml:"log"`
}

// Default returns the built-in tuning: an 800x600 window at 30 px/m, a 60 Hz
// solver and two obstacles.
func Default() Config {
	s := physics.DefaultSettings()
	return Config{
		Window: Window{Width: 800, Height: 600, Scale: 30, Title: "Ragdoll Rider"},
		Physics: Physics{
			GravityY:           s.Gravity.Y,
			TimeStep:           s.TimeStep,
			VelocityIterations: s.VelocityIterations,
			PositionIterations: s.PositionIterations,
			GroundHalfWidth:    50,
			GroundHalfHeight:   0.5,
			GroundFriction:     0.6,
		},
		Scene:     Scene{StartX: 5, StartY: 1.5},
		Vehicle:   vehicle.DefaultConfig(),
		Rider:     rider.DefaultConfig(),
		Obstacles: obstacle.DefaultConfig(),
		Loop:      Loop{FrameInterval: 16 * time.Millisecond, MaxCatchUp: 5, CommandBuffer: 32},
		Log:       Log{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file yields Default(); a file
// that exists but does not decode or validate is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("%s: %w: %v", path, ErrDecode, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Boundary is the right edge of the playfield in metres: the window width
// converted at the fixed scale.
func (c Config) Boundary() float64 {
	return float64(c.Window.Width) / c.Window.Scale
}

// GroundTop is the y coordinate of the ground surface.
func (c Config) GroundTop() float64 {
	return c.Physics.GroundHalfHeight
}

func (c Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 || w.Scale <= 0 {
		return fmt.Errorf("window %dx%d at scale %.1f: %w", w.Width, w.Height, w.Scale, ErrInvalidConfig)
	}
	p := c.Physics
	if p.TimeStep <= 0 || p.VelocityIterations <= 0 || p.PositionIterations <= 0 {
		return fmt.Errorf("physics step: %w", ErrInvalidConfig)
	}
	if p.GroundHalfWidth <= 0 || p.GroundHalfHeight <= 0 {
		return fmt.Errorf("ground extents: %w", ErrInvalidConfig)
	}
	if c.Obstacles.GroundY != c.GroundTop() {
		return fmt.Errorf("obstacle ground %.2f differs from ground top %.2f: %w", c.Obstacles.GroundY, c.GroundTop(), ErrInvalidConfig)
	}
	if c.Scene.StartX < 0 || c.Scene.StartX > c.Boundary() {
		return fmt.Errorf("start x %.2f outside [0, %.2f]: %w", c.Scene.StartX, c.Boundary(), ErrInvalidConfig)
	}
	if c.Loop.FrameInterval <= 0 || c.Loop.MaxCatchUp <= 0 || c.Loop.CommandBuffer <= 0 {
		return fmt.Errorf("loop pacing: %w", ErrInvalidConfig)
	}
	if err := c.Vehicle.Validate(); err != nil {
		return fmt.Errorf("vehicle: %w", err)
	}
	if err := c.Rider.Validate(); err != nil {
		return fmt.Errorf("rider: %w", err)
	}
	if err := c.Obstacles.Validate(); err != nil {
		return fmt.Errorf("obstacles: %w", err)
	}
	return nil
}
