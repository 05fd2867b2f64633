package loop

import (
	"context"
	"image"
	"time"

	"pixel-snake/game"
	"pixel-snake/game/types"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Input is what a display collected since it was last polled.
type Input struct {
	Direction types.Direction // None when no movement key was pressed
	Quit      bool
}

// Display shows frames and reports key presses. Implementations own the
// window or terminal; the loop never touches it directly.
type Display interface {
	Poll() Input
	Present(frame *image.RGBA) error
	// WaitUntil blocks until deadline, or earlier if the display has new input.
	WaitUntil(deadline time.Time)
}

// Renderer turns a game state into a pixel buffer.
type Renderer interface {
	Draw(snake []types.Point, food types.Point) *image.RGBA
}

type ExitKind int

const (
	ExitNone ExitKind = iota
	ExitGameOver
	ExitQuit
)

func (e ExitKind) String() string {
	switch e {
	case ExitGameOver:
		return "game-over"
	case ExitQuit:
		return "quit"
	default:
		return "running"
	}
}

// Status describes one loop iteration. Reason is only set for ExitGameOver.
type Status struct {
	Exit   ExitKind
	Reason game.CollisionType
	Ticked bool
	Redraw bool
	WakeAt time.Time
}

// Loop owns the game and drives it: poll input, poll the scheduler, tick,
// render.
type Loop struct {
	game     *game.Game
	sched    *Scheduler
	renderer Renderer
	log      zerolog.Logger
	now      func() time.Time

	pending types.Direction
	frame   *image.RGBA
	final   *Status
}

func New(g *game.Game, sched *Scheduler, renderer Renderer, logger zerolog.Logger) *Loop {
	l := &Loop{
		game:     g,
		sched:    sched,
		renderer: renderer,
		log:      logger,
		now:      time.Now,
	}
	l.frame = renderer.Draw(g.State.Snake.Body, g.State.Food)
	return l
}

func (l *Loop) Game() *game.Game {
	return l.game
}

// Frame is the most recently rendered pixel buffer.
func (l *Loop) Frame() *image.RGBA {
	return l.frame
}

// Poll runs one iteration without waiting. After the loop has exited every
// call returns the final status again.
func (l *Loop) Poll(now time.Time, in Input) Status {
	if l.final != nil {
		return *l.final
	}

	if in.Quit {
		l.log.Info().Msg("The close button was pressed; stopping")
		return l.finish(Status{Exit: ExitQuit})
	}
	if in.Direction != types.None {
		l.pending = in.Direction
	}

	tick, wakeAt := l.sched.Poll(now)
	status := Status{WakeAt: wakeAt}
	if !tick {
		return status
	}

	res := l.game.Step(l.pending)
	snake := l.game.State.Snake
	status.Ticked = true
	status.Redraw = true

	l.log.Debug().
		Stringer("direction", l.pending).
		Int("x", snake.GetHead().X).
		Int("y", snake.GetHead().Y).
		Int("length", snake.Len()).
		Msg("tick")
	if res.Ate {
		l.log.Info().Int("length", snake.Len()).Msg("Fruit eaten")
	}

	l.frame = l.renderer.Draw(snake.Body, l.game.State.Food)

	if res.Over {
		status.Exit = ExitGameOver
		status.Reason = res.Reason
		l.log.Info().Stringer("reason", res.Reason).Msg(gameOverMessage(res.Reason))
		return l.finish(status)
	}
	return status
}

func (l *Loop) finish(status Status) Status {
	l.final = &status
	return status
}

// Run drives a blocking display until the game ends, the player quits or ctx
// is cancelled.
func (l *Loop) Run(ctx context.Context, d Display) (Status, error) {
	if err := d.Present(l.frame); err != nil {
		return Status{}, errors.Wrap(err, "present first frame")
	}

	for {
		in := d.Poll()
		if ctx.Err() != nil {
			in.Quit = true
		}

		status := l.Poll(l.now(), in)
		if status.Redraw {
			if err := d.Present(l.frame); err != nil {
				return status, errors.Wrap(err, "present frame")
			}
		}
		if status.Exit != ExitNone {
			return status, nil
		}

		d.WaitUntil(status.WakeAt)
	}
}

func gameOverMessage(reason game.CollisionType) string {
	switch reason {
	case game.SelfCollision:
		return "Snake ate itself!"
	case game.WallCollision:
		return "Snake crawled into wall!"
	case game.BoardFull:
		return "Snake filled the board!"
	default:
		return "Game over"
	}
}
