package game

import "errors"

var (
	ErrGameOver  = errors.New("game over")
	ErrQueueFull = errors.New("command queue full")
)
