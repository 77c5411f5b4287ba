package obstacle

import (
	"fmt"
	"math/rand"

	"github.com/golangdaddy/ragdollrider/pkg/physics"
	"go.uber.org/zap"
)

// Obstacle is a square block sliding left along the ground.
type Obstacle struct {
	ID         int
	HalfExtent float64
	Speed      float64 // leftward, m/s
	Recycled   int     // times moved back to the respawn point

	body *physics.Body
}

// Pose returns the obstacle's current pose.
func (o *Obstacle) Pose() physics.Pose {
	return o.body.Pose()
}

// MoveTo teleports the obstacle, keeping its angle.
func (o *Obstacle) MoveTo(pos physics.Vec2) {
	o.body.SetTransform(pos, o.body.Pose().Angle)
}

// Manager owns a constant set of obstacles. Obstacles are never destroyed;
// once one slides past the left boundary it is moved back to the respawn
// point with its size and speed unchanged.
type Manager struct {
	world     *physics.World
	cfg       Config
	rng       *rand.Rand
	obstacles []*Obstacle
	log       *zap.Logger
}

// NewManager validates cfg and returns an empty manager.
func NewManager(w *physics.World, cfg Config, rng *rand.Rand, log *zap.Logger) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		world: w,
		cfg:   cfg,
		rng:   rng,
		log:   log.Named("obstacles"),
	}, nil
}

// SpawnInitial creates count obstacles with randomized position, size and
// speed inside the configured bounds.
func (m *Manager) SpawnInitial(count int) error {
	for i := 0; i < count; i++ {
		x := m.between(m.cfg.SpawnMinX, m.cfg.SpawnMaxX)
		half := m.between(m.cfg.MinHalfExtent, m.cfg.MaxHalfExtent)
		speed := m.between(m.cfg.MinSpeed, m.cfg.MaxSpeed)
		if _, err := m.Spawn(x, half, speed); err != nil {
			return err
		}
	}
	return nil
}

// Spawn creates one obstacle resting on the ground at x.
func (m *Manager) Spawn(x, halfExtent, speed float64) (*Obstacle, error) {
	pos := physics.Vec2{X: x, Y: m.cfg.GroundY + halfExtent}
	// kinematic: zero density, no gravity, still advanced by its velocity
	body, err := m.world.CreateBox(physics.Kinematic, pos, halfExtent, halfExtent, physics.Fixture{
		Density:  0,
		Friction: m.cfg.Friction,
	})
	if err != nil {
		return nil, fmt.Errorf("spawn obstacle %d: %w", len(m.obstacles), err)
	}

	o := &Obstacle{
		ID:         len(m.obstacles),
		HalfExtent: halfExtent,
		Speed:      speed,
		body:       body,
	}
	if m.cfg.Policy == PolicyVelocity {
		if err := body.SetLinearVelocity(physics.Vec2{X: -speed}); err != nil {
			return nil, err
		}
	}
	m.obstacles = append(m.obstacles, o)

	m.log.Debug("obstacle spawned",
		zap.Int("id", o.ID),
		zap.Float64("x", x),
		zap.Float64("half_extent", halfExtent),
		zap.Float64("speed", speed),
	)
	return o, nil
}

// Tick applies the fixed per-frame step when that policy is active, then
// recycles obstacles that passed the left boundary. It returns how many were
// recycled.
func (m *Manager) Tick() int {
	recycled := 0
	for _, o := range m.obstacles {
		pose := o.Pose()
		x := pose.X
		if m.cfg.Policy == PolicyFixedStep {
			x -= m.cfg.FixedStep
		}
		if x < m.cfg.LeftBoundary {
			x = m.cfg.RespawnX
			o.Recycled++
			recycled++
			m.log.Debug("obstacle recycled", zap.Int("id", o.ID), zap.Int("count", o.Recycled))
		}
		if x != pose.X {
			o.body.SetTransform(physics.Vec2{X: x, Y: pose.Y}, pose.Angle)
		}
	}
	return recycled
}

// Obstacles returns the live obstacles in spawn order.
func (m *Manager) Obstacles() []*Obstacle {
	return m.obstacles
}

// Config returns the manager's configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

func (m *Manager) between(lo, hi float64) float64 {
	return lo + m.rng.Float64()*(hi-lo)
}
