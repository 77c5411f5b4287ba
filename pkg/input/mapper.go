// Package input turns logical key events into game commands. It knows
// nothing about the windowing library; pkg/ui translates physical keys.
package input

import (
	"errors"

	"github.com/golangdaddy/ragdollrider/pkg/game"
	"go.uber.org/zap"
)

type Key uint8

const (
	KeyRight Key = iota + 1
	KeyLeft
	KeyJump
)

func (k Key) String() string {
	switch k {
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyJump:
		return "jump"
	}
	return "unknown"
}

type Action uint8

const (
	Pressed Action = iota + 1
	Released
)

// Event is one edge of a logical key.
type Event struct {
	Key    Key
	Action Action
}

// Sink accepts commands. *game.Session satisfies it.
type Sink interface {
	Send(cmd game.Command) error
}

// Mapper forwards mapped commands to a sink.
type Mapper struct {
	sink Sink
	log  *zap.Logger
}

func NewMapper(sink Sink, log *zap.Logger) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Mapper{sink: sink, log: log.Named("input")}
}

// Command maps an event to a command. Releasing either direction key stops
// the motors; releasing jump does nothing.
func Command(ev Event) (game.Command, bool) {
	switch ev {
	case Event{KeyRight, Pressed}:
		return game.CmdMoveRight, true
	case Event{KeyLeft, Pressed}:
		return game.CmdMoveLeft, true
	case Event{KeyRight, Released}, Event{KeyLeft, Released}:
		return game.CmdStop, true
	case Event{KeyJump, Pressed}:
		return game.CmdJump, true
	}
	return 0, false
}

// Handle maps and forwards ev. It reports whether a command was accepted;
// events after game over and events dropped on a full queue are not.
func (m *Mapper) Handle(ev Event) bool {
	cmd, ok := Command(ev)
	if !ok {
		return false
	}
	err := m.sink.Send(cmd)
	switch {
	case err == nil:
		return true
	case errors.Is(err, game.ErrGameOver):
		return false
	default:
		m.log.Debug("command dropped", zap.Stringer("command", cmd), zap.Error(err))
		return false
	}
}
