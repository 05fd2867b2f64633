package ui_test

import (
	"testing"

	"pixel-snake/game/types"
	"pixel-snake/ui"

	"github.com/stretchr/testify/assert"
)

func TestRendererSize(t *testing.T) {
	r := ui.NewRenderer(types.DefaultGrid())
	width, height := r.Size()
	assert.Equal(t, 1000, width)
	assert.Equal(t, 500, height)
	assert.Equal(t, "Snake Game", ui.WindowTitle)
}

func TestRendererDraw(t *testing.T) {
	r := ui.NewRenderer(types.DefaultGrid())

	frame := r.Draw([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, types.Point{X: 19, Y: 9})

	assert.Equal(t, ui.SnakeColor, frame.RGBAAt(0, 0))
	assert.Equal(t, ui.SnakeColor, frame.RGBAAt(49, 49))
	assert.Equal(t, ui.SnakeColor, frame.RGBAAt(50, 0))
	assert.Equal(t, ui.SnakeColor, frame.RGBAAt(99, 49))
	assert.Equal(t, ui.BackgroundColor, frame.RGBAAt(100, 0))
	assert.Equal(t, ui.BackgroundColor, frame.RGBAAt(0, 50))
	assert.Equal(t, ui.FruitColor, frame.RGBAAt(950, 450))
	assert.Equal(t, ui.FruitColor, frame.RGBAAt(999, 499))
	assert.Equal(t, ui.BackgroundColor, frame.RGBAAt(949, 450))
}

func TestRendererReusesBuffer(t *testing.T) {
	r := ui.NewRenderer(types.DefaultGrid())

	first := r.Draw([]types.Point{{X: 3, Y: 3}}, types.Point{X: 5, Y: 5})
	second := r.Draw([]types.Point{{X: 4, Y: 3}}, types.Point{X: 5, Y: 5})

	assert.Same(t, first, second)
	assert.Equal(t, ui.BackgroundColor, second.RGBAAt(150, 150))
	assert.Equal(t, ui.SnakeColor, second.RGBAAt(200, 150))
}

func TestRendererFruitOnTop(t *testing.T) {
	r := ui.NewRenderer(types.DefaultGrid())

	frame := r.Draw([]types.Point{{X: 2, Y: 2}}, types.Point{X: 2, Y: 2})
	assert.Equal(t, ui.FruitColor, frame.RGBAAt(125, 125))
}

func TestRendererClipsOutsideCells(t *testing.T) {
	r := ui.NewRenderer(types.DefaultGrid())

	frame := r.Draw([]types.Point{{X: -1, Y: 5}, {X: 0, Y: 5}}, types.Point{X: 20, Y: 0})

	assert.Equal(t, ui.SnakeColor, frame.RGBAAt(0, 250))
	assert.Equal(t, ui.BackgroundColor, frame.RGBAAt(999, 0))
}
