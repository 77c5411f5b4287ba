package obstacle

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid obstacle configuration")

// Policy selects what moves an obstacle leftward each frame.
type Policy string

const (
	// PolicyVelocity lets the physics world integrate each obstacle's own
	// randomized leftward velocity.
	PolicyVelocity Policy = "velocity"
	// PolicyFixedStep subtracts the same FixedStep from every obstacle's x
	// each frame and keeps the bodies' velocities at zero.
	PolicyFixedStep Policy = "fixed_step"
)

// Config bounds the randomized obstacle parameters and the recycling lane.
type Config struct {
	Count  int    `yaml:"count"`
	Policy Policy `yaml:"policy"`

	SpawnMinX float64 `yaml:"spawn_min_x"`
	SpawnMaxX float64 `yaml:"spawn_max_x"`

	MinHalfExtent float64 `yaml:"min_half_extent"`
	MaxHalfExtent float64 `yaml:"max_half_extent"`

	MinSpeed float64 `yaml:"min_speed"` // m/s, leftward
	MaxSpeed float64 `yaml:"max_speed"`

	FixedStep float64 `yaml:"fixed_step"` // metres per frame under PolicyFixedStep

	LeftBoundary float64 `yaml:"left_boundary"`
	RespawnX     float64 `yaml:"respawn_x"`
	GroundY      float64 `yaml:"ground_y"` // top of the ground; obstacles rest on it

	Friction float64 `yaml:"friction"`
}

// DefaultConfig returns two obstacles spawning 10 to 20 m ahead of the start.
func DefaultConfig() Config {
	return Config{
		Count:         2,
		Policy:        PolicyVelocity,
		SpawnMinX:     10,
		SpawnMaxX:     20,
		MinHalfExtent: 0.5,
		MaxHalfExtent: 2.0,
		MinSpeed:      3,
		MaxSpeed:      6,
		FixedStep:     0.1,
		LeftBoundary:  -5,
		RespawnX:      40,
		GroundY:       0.5,
		Friction:      0.6,
	}
}

// Validate reports the first inconsistent field.
func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("count %d: %w", c.Count, ErrInvalidConfig)
	case c.Policy != PolicyVelocity && c.Policy != PolicyFixedStep:
		return fmt.Errorf("policy %q: %w", c.Policy, ErrInvalidConfig)
	case c.SpawnMinX > c.SpawnMaxX:
		return fmt.Errorf("spawn range [%.2f, %.2f]: %w", c.SpawnMinX, c.SpawnMaxX, ErrInvalidConfig)
	case c.MinHalfExtent <= 0 || c.MinHalfExtent > c.MaxHalfExtent:
		return fmt.Errorf("half extent range [%.2f, %.2f]: %w", c.MinHalfExtent, c.MaxHalfExtent, ErrInvalidConfig)
	case c.MinSpeed < 0 || c.MinSpeed > c.MaxSpeed:
		return fmt.Errorf("speed range [%.2f, %.2f]: %w", c.MinSpeed, c.MaxSpeed, ErrInvalidConfig)
	case c.Policy == PolicyFixedStep && c.FixedStep <= 0:
		return fmt.Errorf("fixed step %.3f: %w", c.FixedStep, ErrInvalidConfig)
	case c.RespawnX <= c.LeftBoundary:
		return fmt.Errorf("respawn %.2f left of boundary %.2f: %w", c.RespawnX, c.LeftBoundary, ErrInvalidConfig)
	}
	return nil
}
