// Package ui is the ebiten front end. It reads session snapshots and sends
// commands; the physics world stays on the loop goroutine.
package ui

import (
	"context"

	"github.com/golangdaddy/ragdollrider/pkg/config"
	"github.com/golangdaddy/ragdollrider/pkg/game"
	"github.com/golangdaddy/ragdollrider/pkg/input"
	"github.com/golangdaddy/ragdollrider/pkg/ui/camera"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Starter creates a session and starts its loop.
type Starter func() (*game.Session, error)

// App implements ebiten.Game and switches between the title and play screens.
type App struct {
	ctx   context.Context
	cfg   config.Config
	start Starter
	seed  int64

	currentScreen Screen
	field         *Playfield
	err           error

	log *zap.Logger
}

// NewApp shows the title screen first. The app terminates when ctx is done.
func NewApp(ctx context.Context, cfg config.Config, start Starter, seed int64, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{
		ctx:   ctx,
		cfg:   cfg,
		start: start,
		seed:  seed,
		log:   log.Named("ui"),
	}
	a.currentScreen = NewTitleScreen(a.play)
	return a
}

// play replaces the current screen with a fresh session.
func (a *App) play() {
	s, err := a.start()
	if err != nil {
		a.err = err
		return
	}
	if a.field == nil {
		cam := camera.New(a.cfg.Window.Scale, a.cfg.Window.Height, -a.cfg.Physics.GroundHalfHeight)
		a.field = NewPlayfield(cam, a.cfg.Window.Width, a.cfg.Window.Height, a.cfg.GroundTop(), a.seed)
	}
	a.log.Info("ride started", zap.String("session", s.ID().String()))
	a.currentScreen = NewPlayScreen(s, input.NewMapper(s, a.log), a.field, a.play)
}

// Update handles game logic updates
func (a *App) Update() error {
	if a.err != nil {
		return a.err
	}
	select {
	case <-a.ctx.Done():
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return a.currentScreen.Update()
}

// Draw renders the current screen
func (a *App) Draw(screen *ebiten.Image) {
	a.currentScreen.Draw(screen)
}

// Layout returns the game's screen dimensions
func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}
