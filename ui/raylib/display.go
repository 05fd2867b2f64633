// Package raylib shows the game in a raylib window.
package raylib

import (
	"image"
	"image/color"
	"time"

	"pixel-snake/game/loop"
	"pixel-snake/game/types"
	"pixel-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

var keys = map[int32]types.Direction{
	rl.KeyW:     types.Up,
	rl.KeyA:     types.Left,
	rl.KeyS:     types.Down,
	rl.KeyD:     types.Right,
	rl.KeyUp:    types.Up,
	rl.KeyLeft:  types.Left,
	rl.KeyDown:  types.Down,
	rl.KeyRight: types.Right,
}

// Display uploads each frame to a single texture and draws it.
type Display struct {
	texture rl.Texture2D
	pixels  []color.RGBA
}

// Open creates a window of exactly width x height pixels.
func Open(width, height int) (*Display, error) {
	rl.InitWindow(int32(width), int32(height), ui.WindowTitle)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: window could not be created")
	}

	blank := rl.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
	texture := rl.LoadTextureFromImage(blank)
	rl.UnloadImage(blank)

	return &Display{
		texture: texture,
		pixels:  make([]color.RGBA, width*height),
	}, nil
}

// Poll drains the key queue. Only the last movement key counts.
func (d *Display) Poll() loop.Input {
	rl.PollInputEvents()

	var in loop.Input
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if dir, ok := keys[key]; ok {
			in.Direction = dir
		}
		if key == rl.KeyEscape {
			in.Quit = true
		}
	}
	// Escape is raylib's default exit key, so this covers it too
	if rl.WindowShouldClose() {
		in.Quit = true
	}
	return in
}

func (d *Display) Present(frame *image.RGBA) error {
	if len(frame.Pix) != 4*len(d.pixels) {
		return errors.Errorf("raylib: frame has %d bytes, window needs %d", len(frame.Pix), 4*len(d.pixels))
	}
	for i := range d.pixels {
		d.pixels[i] = color.RGBA{
			R: frame.Pix[4*i],
			G: frame.Pix[4*i+1],
			B: frame.Pix[4*i+2],
			A: frame.Pix[4*i+3],
		}
	}
	rl.UpdateTexture(d.texture, d.pixels)

	rl.BeginDrawing()
	rl.ClearBackground(ui.BackgroundColor)
	rl.DrawTexture(d.texture, 0, 0, rl.White)
	rl.EndDrawing()
	return nil
}

// WaitUntil sleeps; keys pressed meanwhile stay queued for the next Poll.
func (d *Display) WaitUntil(deadline time.Time) {
	time.Sleep(time.Until(deadline))
}

func (d *Display) Close() error {
	rl.UnloadTexture(d.texture)
	rl.CloseWindow()
	return nil
}
