// Package ebiten runs the game inside ebiten's own update loop.
package ebiten

import (
	"context"
	"time"

	"pixel-snake/game/loop"
	"pixel-snake/game/types"
	"pixel-snake/ui"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

var keys = map[eb.Key]types.Direction{
	eb.KeyW:          types.Up,
	eb.KeyA:          types.Left,
	eb.KeyS:          types.Down,
	eb.KeyD:          types.Right,
	eb.KeyArrowUp:    types.Up,
	eb.KeyArrowLeft:  types.Left,
	eb.KeyArrowDown:  types.Down,
	eb.KeyArrowRight: types.Right,
}

// game adapts the loop to ebiten's callbacks. Every Update is one loop
// iteration; the scheduler decides whether it ticks.
type game struct {
	ctx     context.Context
	loop    *loop.Loop
	stepper *loop.Stepper
	keys    []eb.Key
}

func (g *game) Update() error {
	var in loop.Input
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if dir, ok := keys[k]; ok {
			in.Direction = dir
		}
		if k == eb.KeyEscape {
			in.Quit = true
		}
	}
	if eb.IsWindowBeingClosed() || g.ctx.Err() != nil {
		in.Quit = true
	}

	if g.stepper.Step(time.Now(), in) {
		return eb.Termination
	}
	return nil
}

func (g *game) Draw(screen *eb.Image) {
	screen.WritePixels(g.loop.Frame().Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.loop.Frame().Bounds()
	return b.Dx(), b.Dy()
}

// Run opens a window sized to the loop's frame and blocks until the loop exits.
func Run(ctx context.Context, l *loop.Loop) (loop.Status, error) {
	b := l.Frame().Bounds()
	eb.SetWindowSize(b.Dx(), b.Dy())
	eb.SetWindowTitle(ui.WindowTitle)
	eb.SetWindowClosingHandled(true)

	g := &game{ctx: ctx, loop: l, stepper: loop.NewStepper(l)}
	if err := eb.RunGame(g); err != nil {
		return g.stepper.Status(), errors.Wrap(err, "ebiten")
	}
	return g.stepper.Status(), nil
}
