// Package game owns one play session: the physics world, the assembled
// vehicle, rider and obstacles, and the loop that advances them.
package game

import (
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/golangdaddy/ragdollrider/pkg/collision"
	"github.com/golangdaddy/ragdollrider/pkg/config"
	"github.com/golangdaddy/ragdollrider/pkg/obstacle"
	"github.com/golangdaddy/ragdollrider/pkg/physics"
	"github.com/golangdaddy/ragdollrider/pkg/rider"
	"github.com/golangdaddy/ragdollrider/pkg/vehicle"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is the context object of one game. Only the loop goroutine calls
// Tick; Send, Over and Snapshot are safe from any goroutine.
type Session struct {
	id  uuid.UUID
	cfg config.Config

	world     *physics.World
	ground    *physics.Body
	vehicle   *vehicle.Segway
	rider     *rider.Rider
	obstacles *obstacle.Manager
	eval      *collision.Evaluator

	commands chan Command
	over     atomic.Bool
	snapshot atomic.Pointer[Snapshot]
	ticks    uint64
	hit      collision.Hit

	log *zap.Logger
}

// NewSession builds the world and everything in it, spawning
// cfg.Obstacles.Count obstacles from rng.
func NewSession(cfg config.Config, rng *rand.Rand, log *zap.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Session{
		id:       uuid.New(),
		cfg:      cfg,
		commands: make(chan Command, cfg.Loop.CommandBuffer),
	}
	s.log = log.With(zap.String("session", s.id.String()))
	s.world = physics.NewWorld(cfg.Physics.Settings(), s.log)

	var err error
	s.ground, err = s.world.CreateBox(physics.Static, physics.Vec2{}, cfg.Physics.GroundHalfWidth, cfg.Physics.GroundHalfHeight, physics.Fixture{
		Friction: cfg.Physics.GroundFriction,
	})
	if err != nil {
		return nil, fmt.Errorf("create ground: %w", err)
	}

	start := physics.Vec2{X: cfg.Scene.StartX, Y: cfg.Scene.StartY}
	if s.vehicle, err = vehicle.New(s.world, start, cfg.Vehicle, s.log); err != nil {
		return nil, err
	}
	standOn := physics.Vec2{Y: cfg.Vehicle.FrameHalfHeight}
	if s.rider, err = rider.New(s.world, s.vehicle.Frame(), standOn, cfg.Rider, s.log); err != nil {
		return nil, err
	}
	if s.obstacles, err = obstacle.NewManager(s.world, cfg.Obstacles, rng, s.log); err != nil {
		return nil, err
	}
	if err := s.obstacles.SpawnInitial(cfg.Obstacles.Count); err != nil {
		return nil, err
	}
	s.eval = collision.NewEvaluator(s.vehicle, s.obstacles)

	s.snapshot.Store(s.capture())
	s.log.Info("session ready",
		zap.Int("bodies", s.world.BodyCount()),
		zap.Int("joints", s.world.JointCount()),
		zap.Float64("boundary", cfg.Boundary()),
		zap.String("obstacle_policy", string(cfg.Obstacles.Policy)),
	)
	return s, nil
}

// Send queues a command without blocking.
func (s *Session) Send(cmd Command) error {
	if s.over.Load() {
		return ErrGameOver
	}
	select {
	case s.commands <- cmd:
		return nil
	default:
		return fmt.Errorf("%s: %w", cmd, ErrQueueFull)
	}
}

// Tick advances the session by one fixed step and reports whether the game
// is over. Once over, Tick does nothing.
func (s *Session) Tick() bool {
	if s.over.Load() {
		return true
	}

	s.drain()
	s.world.Step()
	if n := s.obstacles.Tick(); n > 0 {
		s.log.Debug("obstacles recycled", zap.Int("count", n))
	}
	s.clamp()
	s.ticks++

	if hit, ok := s.eval.FirstHit(); ok {
		s.hit = hit
		if s.over.CompareAndSwap(false, true) {
			s.log.Info("game over",
				zap.Uint64("tick", s.ticks),
				zap.Int("obstacle", hit.Obstacle),
				zap.String("part", string(hit.Part)),
			)
		}
	}

	s.snapshot.Store(s.capture())
	return s.over.Load()
}

func (s *Session) drain() {
	for {
		select {
		case cmd := <-s.commands:
			cmd.apply(s.vehicle)
		default:
			return
		}
	}
}

// clamp keeps the vehicle inside [0, boundary] and carries the rider along.
func (s *Session) clamp() {
	if dx := s.vehicle.ClampX(0, s.cfg.Boundary()); dx != 0 {
		s.rider.Translate(physics.Vec2{X: dx})
	}
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Config() config.Config {
	return s.cfg
}

// Over reports whether a collision has ended the session.
func (s *Session) Over() bool {
	return s.over.Load()
}

func (s *Session) Ticks() uint64 {
	return s.ticks
}

func (s *Session) World() *physics.World {
	return s.world
}

func (s *Session) Vehicle() *vehicle.Segway {
	return s.vehicle
}

func (s *Session) Rider() *rider.Rider {
	return s.rider
}

func (s *Session) Obstacles() *obstacle.Manager {
	return s.obstacles
}

func (s *Session) Evaluator() *collision.Evaluator {
	return s.eval
}

// Snapshot returns the most recently published frame.
func (s *Session) Snapshot() *Snapshot {
	return s.snapshot.Load()
}
