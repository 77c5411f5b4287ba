package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRunExitsOnFirstIterationWhenOverlapping(t *testing.T) {
	s := emptySession(t)
	_, err := s.Obstacles().Spawn(s.Vehicle().FramePose().X, 1, 3)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	require.NoError(t, NewLoop(s, zaptest.NewLogger(t)).Run(ctx))
	assert.Equal(t, uint64(1), s.Ticks())
	assert.True(t, s.Snapshot().GameOver)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRunStopsOnCancel(t *testing.T) {
	s := emptySession(t)
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := NewLoop(s, zaptest.NewLogger(t)).Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, s.Over())
	assert.Greater(t, s.Ticks(), uint64(1))
	// catch-up is bounded, so the loop never runs far ahead of real time
	assert.LessOrEqual(t, s.Ticks(), uint64(1+150/16+2*s.Config().Loop.MaxCatchUp))
}

func TestRunReturnsImmediatelyWhenAlreadyOver(t *testing.T) {
	s := emptySession(t)
	_, err := s.Obstacles().Spawn(s.Vehicle().FramePose().X, 1, 3)
	require.NoError(t, err)
	require.True(t, s.Tick())

	require.NoError(t, NewLoop(s, nil).Run(context.Background()))
	assert.Equal(t, uint64(1), s.Ticks())
}
