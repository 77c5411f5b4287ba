package ui

import (
	"github.com/golangdaddy/ragdollrider/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type binding struct {
	key     ebiten.Key
	logical input.Key
}

var bindings = []binding{
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeySpace, input.KeyJump},
}

// pollKeys feeds this frame's key edges to the mapper.
func pollKeys(m *input.Mapper) {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			m.Handle(input.Event{Key: b.logical, Action: input.Pressed})
		}
		if inpututil.IsKeyJustReleased(b.key) {
			m.Handle(input.Event{Key: b.logical, Action: input.Released})
		}
	}
}
