// Package terminal draws the game in a text terminal with tcell.
package terminal

import (
	"image"
	"time"
	"unicode"

	"pixel-snake/game/loop"
	"pixel-snake/game/types"
	"pixel-snake/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

var keys = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyLeft:  types.Left,
	tcell.KeyDown:  types.Down,
	tcell.KeyRight: types.Right,
}

var runes = map[rune]types.Direction{
	'w': types.Up,
	'a': types.Left,
	's': types.Down,
	'd': types.Right,
}

// Display draws each grid cell as two terminal columns, coloured
// with the pixel at the centre of the cell's block.
type Display struct {
	screen  tcell.Screen
	grid    types.Grid
	events  chan tcell.Event
	quit    chan struct{}
	pending loop.Input
}

func Open(grid types.Grid) (*Display, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "terminal: new screen")
	}
	return newDisplay(s, grid)
}

func newDisplay(s tcell.Screen, grid types.Grid) (*Display, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "terminal: init screen")
	}
	s.DisableMouse()
	s.HideCursor()
	s.Clear()

	d := &Display{
		screen: s,
		grid:   grid,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
	}
	go s.ChannelEvents(d.events, d.quit)
	return d, nil
}

func (d *Display) Poll() loop.Input {
	in := d.pending
	d.pending = loop.Input{}
	for {
		select {
		case ev, ok := <-d.events:
			if !ok {
				in.Quit = true
				return in
			}
			d.handle(ev, &in)
		default:
			return in
		}
	}
}

// WaitUntil returns at deadline or as soon as an event arrives.
func (d *Display) WaitUntil(deadline time.Time) {
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()

	select {
	case ev, ok := <-d.events:
		if !ok {
			d.pending.Quit = true
			return
		}
		d.handle(ev, &d.pending)
	case <-timer.C:
	}
}

func (d *Display) handle(ev tcell.Event, in *loop.Input) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.Quit = true
		case tcell.KeyRune:
			if dir, ok := runes[unicode.ToLower(ev.Rune())]; ok {
				in.Direction = dir
			}
		default:
			if dir, ok := keys[ev.Key()]; ok {
				in.Direction = dir
			}
		}
	}
}

func (d *Display) Present(frame *image.RGBA) error {
	for y := 0; y < d.grid.Height; y++ {
		for x := 0; x < d.grid.Width; x++ {
			c := frame.RGBAAt(x*ui.PixelSize+ui.PixelSize/2, y*ui.PixelSize+ui.PixelSize/2)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			d.screen.SetContent(2*x, y, ' ', nil, style)
			d.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	d.screen.Show()
	return nil
}

func (d *Display) Close() error {
	close(d.quit)
	d.screen.Fini()
	return nil
}
