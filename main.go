package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golangdaddy/ragdollrider/pkg/config"
	"github.com/golangdaddy/ragdollrider/pkg/game"
	"github.com/golangdaddy/ragdollrider/pkg/logging"
	"github.com/golangdaddy/ragdollrider/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		configPath = flag.String("config", config.DefaultPath, "YAML config file; defaults are used when it does not exist")
		headless   = flag.Bool("headless", false, "run the simulation without a window")
		duration   = flag.Duration("duration", 0, "headless only: stop after this long (0 runs until game over)")
		seed       = flag.Int64("seed", 0, "obstacle RNG seed (0 picks one from the clock)")
		logLevel   = flag.String("log-level", "", "override the configured log level")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// logger not built yet
		fmt.Fprintln(os.Stderr, "ragdollrider:", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ragdollrider:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Info("starting",
		zap.String("config", *configPath),
		zap.Bool("headless", *headless),
		zap.Int64("seed", *seed),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headless {
		err = runHeadless(ctx, cfg, *seed, *duration, log)
	} else {
		err = runWindow(ctx, cfg, *seed, log)
	}
	if code := logging.ExitCode(log, err); code != 0 {
		// os.Exit skips the deferred calls
		stop()
		os.Exit(code)
	}
}

// newStarter returns a function that builds a session and runs its loop on g.
func newStarter(ctx context.Context, g *errgroup.Group, cfg config.Config, seed int64, log *zap.Logger) ui.Starter {
	rng := rand.New(rand.NewSource(seed))
	return func() (*game.Session, error) {
		s, err := game.NewSession(cfg, rng, log)
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			return ignoreCancel(game.NewLoop(s, log).Run(ctx))
		})
		return s, nil
	}
}

func runWindow(ctx context.Context, cfg config.Config, seed int64, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	app := ui.NewApp(ctx, cfg, newStarter(ctx, g, cfg, seed, log), seed, log)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	runErr := ebiten.RunGame(app)

	// window closed: stop any loop still running
	cancel()
	return errors.Join(runErr, g.Wait())
}

func runHeadless(ctx context.Context, cfg config.Config, seed int64, duration time.Duration, log *zap.Logger) error {
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}
	g, ctx := errgroup.WithContext(ctx)

	s, err := newStarter(ctx, g, cfg, seed, log)()
	if err != nil {
		return err
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("headless run finished", s.Snapshot().LogFields()...)
	return nil
}

func ignoreCancel(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
