package game

import (
	"time"

	"github.com/golangdaddy/ragdollrider/pkg/collision"
	"github.com/golangdaddy/ragdollrider/pkg/physics"
	"go.uber.org/zap"
)

// Rect is a box body as drawn: its pose and half extents in metres.
type Rect struct {
	Pose  physics.Pose
	HalfW float64
	HalfH float64
}

// Wheel is a circular body as drawn.
type Wheel struct {
	Pose   physics.Pose
	Radius float64
}

// Snapshot is an immutable copy of everything the renderer needs for one
// frame. A published snapshot is never modified.
type Snapshot struct {
	Tick    uint64
	Elapsed time.Duration

	Ground     Rect
	Frame      Rect
	FrontWheel Wheel
	RearWheel  Wheel
	Torso      Rect
	Limb       Rect
	HasLimb    bool
	Obstacles  []Rect

	Speed    float64 // m/s along x
	GameOver bool
	Hit      collision.Hit // valid when GameOver
}

func (s *Session) capture() *Snapshot {
	vc := s.vehicle.Config()
	rc := s.rider.Config()
	snap := &Snapshot{
		Tick:       s.ticks,
		Elapsed:    time.Duration(float64(s.ticks) * s.world.Settings().TimeStep * float64(time.Second)),
		Ground:     Rect{Pose: s.ground.Pose(), HalfW: s.cfg.Physics.GroundHalfWidth, HalfH: s.cfg.Physics.GroundHalfHeight},
		Frame:      Rect{Pose: s.vehicle.FramePose(), HalfW: vc.FrameHalfWidth, HalfH: vc.FrameHalfHeight},
		FrontWheel: Wheel{Pose: s.vehicle.FrontWheelPose(), Radius: vc.WheelRadius},
		RearWheel:  Wheel{Pose: s.vehicle.RearWheelPose(), Radius: vc.WheelRadius},
		Torso:      Rect{Pose: s.rider.TorsoPose(), HalfW: rc.TorsoHalfWidth, HalfH: rc.TorsoHalfHeight},
		Speed:      s.vehicle.Velocity().X,
		GameOver:   s.over.Load(),
		Hit:        s.hit,
	}
	if pose, ok := s.rider.LimbPose(); ok {
		snap.Limb = Rect{Pose: pose, HalfW: rc.Limb.HalfWidth, HalfH: rc.Limb.HalfLength}
		snap.HasLimb = true
	}
	obstacles := s.obstacles.Obstacles()
	snap.Obstacles = make([]Rect, len(obstacles))
	for i, o := range obstacles {
		snap.Obstacles[i] = Rect{Pose: o.Pose(), HalfW: o.HalfExtent, HalfH: o.HalfExtent}
	}
	return snap
}

// LogFields summarises the run. The hit fields are only present once the
// game is over.
func (s *Snapshot) LogFields() []zap.Field {
	fields := []zap.Field{
		zap.Uint64("ticks", s.Tick),
		zap.Duration("elapsed", s.Elapsed),
		zap.Bool("game_over", s.GameOver),
	}
	if s.GameOver {
		fields = append(fields,
			zap.Int("obstacle", s.Hit.Obstacle),
			zap.String("part", string(s.Hit.Part)),
		)
	}
	return fields
}
