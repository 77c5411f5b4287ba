package input

import (
	"math/rand"
	"testing"

	"github.com/golangdaddy/ragdollrider/pkg/config"
	"github.com/golangdaddy/ragdollrider/pkg/game"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// newOverSession returns a live session whose game already ended.
func newOverSession(t *testing.T) *game.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Obstacles.Count = 0
	s, err := game.NewSession(cfg, rand.New(rand.NewSource(1)), zaptest.NewLogger(t))
	require.NoError(t, err)
	_, err = s.Obstacles().Spawn(s.Vehicle().FramePose().X, 1, 3)
	require.NoError(t, err)
	require.True(t, s.Tick())
	return s
}
