package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"pixel-snake/game"
	"pixel-snake/game/loop"
	"pixel-snake/game/types"
	"pixel-snake/ui"
	"pixel-snake/ui/ebiten"
	"pixel-snake/ui/raylib"
	"pixel-snake/ui/terminal"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

type closingDisplay interface {
	loop.Display
	Close() error
}

func main() {
	os.Exit(run())
}

func run() int {
	backend := flag.String("backend", "raylib", "Display backend: raylib, ebiten or terminal")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// tcell owns the terminal while the game runs, so log lines wait in a
	// buffer until the screen is released.
	var out io.Writer = os.Stderr
	var held bytes.Buffer
	if *backend == "terminal" {
		out = &held
		defer io.Copy(os.Stderr, &held)
	}
	logger := newLogger(out, *logLevel)
	logger.Info().Msg("Welcome!")

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	g, err := game.NewGame(types.DefaultGrid(), rng, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("Could not start game")
		return 1
	}

	renderer := ui.NewRenderer(g.Grid)
	l := loop.New(g, loop.NewScheduler(types.StepTime, time.Now()), renderer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	status, err := play(ctx, *backend, l, renderer, g.Grid)
	if err != nil {
		logger.Error().Err(err).Msg("Display failed")
		return 1
	}

	summary := g.Stats.Summary(time.Now())
	event := logger.Info().
		Stringer("exit", status.Exit).
		Int("ticks", summary.Ticks).
		Int("fruits", summary.FruitsEaten).
		Int("length", summary.MaxLength).
		Dur("duration", summary.Duration)
	if status.Exit == loop.ExitGameOver {
		event = event.Stringer("reason", status.Reason)
	}
	event.Msg("Goodbye")
	return 0
}

// newLogger builds the console logger. An unknown level name falls back to
// info and is reported on the new logger.
func newLogger(out io.Writer, levelName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Str("session", uuid.New().String()).
		Logger()
	if err != nil {
		logger.Warn().Str("log-level", levelName).Msg("Unknown log level, using info")
	}
	return logger
}

func play(ctx context.Context, backend string, l *loop.Loop, renderer *ui.Renderer, grid types.Grid) (loop.Status, error) {
	switch backend {
	case "raylib":
		width, height := renderer.Size()
		d, err := raylib.Open(width, height)
		if err != nil {
			return loop.Status{}, err
		}
		return runDisplay(ctx, l, d)
	case "terminal":
		d, err := terminal.Open(grid)
		if err != nil {
			return loop.Status{}, err
		}
		return runDisplay(ctx, l, d)
	case "ebiten":
		return ebiten.Run(ctx, l)
	default:
		return loop.Status{}, errors.Errorf("unknown backend %q", backend)
	}
}

func runDisplay(ctx context.Context, l *loop.Loop, d closingDisplay) (loop.Status, error) {
	status, err := l.Run(ctx, d)
	if cerr := d.Close(); cerr != nil {
		err = multierror.Append(err, errors.Wrap(cerr, "close display"))
	}
	return status, err
}
