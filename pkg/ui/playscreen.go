package ui

import (
	"github.com/golangdaddy/ragdollrider/pkg/game"
	"github.com/golangdaddy/ragdollrider/pkg/input"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PlayScreen forwards keys to a running session and draws its snapshots.
// It never touches the physics world directly.
type PlayScreen struct {
	session *game.Session
	mapper  *input.Mapper
	field   *Playfield
	hud     *HUD
	face    text.Face
	onRetry func()
}

func NewPlayScreen(s *game.Session, mapper *input.Mapper, field *Playfield, onRetry func()) *PlayScreen {
	return &PlayScreen{
		session: s,
		mapper:  mapper,
		field:   field,
		hud:     NewHUD(s.Config().Vehicle.TopSpeed()),
		face:    text.NewGoXFace(bitmapfont.Face),
		onRetry: onRetry,
	}
}

func (ps *PlayScreen) Update() error {
	if ps.session.Over() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ps.onRetry != nil {
			ps.onRetry()
		}
		return nil
	}
	pollKeys(ps.mapper)
	return nil
}

func (ps *PlayScreen) Draw(screen *ebiten.Image) {
	snap := ps.session.Snapshot()
	ps.field.Draw(screen, snap)
	ps.hud.Draw(screen, snap)
	if snap.GameOver {
		drawGameOver(screen, ps.face)
	}
}
