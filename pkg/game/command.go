package game

import "github.com/golangdaddy/ragdollrider/pkg/vehicle"

// Command is a player intent queued for the loop goroutine.
type Command uint8

const (
	CmdMoveRight Command = iota + 1
	CmdMoveLeft
	CmdStop
	CmdJump
)

func (c Command) String() string {
	switch c {
	case CmdMoveRight:
		return "move_right"
	case CmdMoveLeft:
		return "move_left"
	case CmdStop:
		return "stop"
	case CmdJump:
		return "jump"
	}
	return "unknown"
}

func (c Command) apply(v vehicle.Controls) {
	switch c {
	case CmdMoveRight:
		v.MoveRight()
	case CmdMoveLeft:
		v.MoveLeft()
	case CmdStop:
		v.Stop()
	case CmdJump:
		v.Jump()
	}
}
