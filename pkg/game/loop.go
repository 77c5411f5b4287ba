package game

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Loop paces a session against the wall clock with a fixed-timestep
// accumulator. The solver always advances by exactly one time step per Tick;
// the accumulator decides how many ticks each wake-up owes.
type Loop struct {
	session    *Session
	interval   time.Duration
	step       time.Duration
	maxCatchUp int
	log        *zap.Logger
}

// NewLoop uses the session's configured pacing.
func NewLoop(s *Session, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := s.Config()
	return &Loop{
		session:    s,
		interval:   cfg.Loop.FrameInterval,
		step:       time.Duration(cfg.Physics.TimeStep * float64(time.Second)),
		maxCatchUp: cfg.Loop.MaxCatchUp,
		log:        log.Named("loop"),
	}
}

// Run ticks the session until the game ends or ctx is cancelled. It returns
// nil on game over and ctx.Err() on cancellation. The first tick runs
// immediately.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	backlog := l.step
	last := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			l.log.Info("loop cancelled", zap.Uint64("tick", l.session.Ticks()))
			return err
		}

		for n := 0; backlog >= l.step; n++ {
			if n == l.maxCatchUp {
				l.log.Debug("late tick, dropping backlog",
					zap.Duration("backlog", backlog),
					zap.Int("steps", n),
				)
				backlog = 0
				break
			}
			backlog -= l.step
			if l.session.Tick() {
				l.log.Info("loop finished", zap.Uint64("tick", l.session.Ticks()))
				return nil
			}
		}

		select {
		case <-ctx.Done():
		case now := <-ticker.C:
			backlog += now.Sub(last)
			last = now
		}
	}
}
