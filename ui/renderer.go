package ui

import (
	"image"
	"image/color"
	"image/draw"

	"pixel-snake/game/types"
)

// PixelSize is the edge length of one grid cell on screen.
const PixelSize = 50

// WindowTitle is shown in the window's title bar.
const WindowTitle = "Snake Game"

var (
	BackgroundColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	SnakeColor      = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	FruitColor      = color.RGBA{R: 0xff, G: 60, B: 60, A: 0xff}
)

// Renderer rasterizes the board into a single reused RGBA buffer.
type Renderer struct {
	cellSize int
	frame    *image.RGBA
}

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{
		cellSize: PixelSize,
		frame:    image.NewRGBA(image.Rect(0, 0, grid.Width*PixelSize, grid.Height*PixelSize)),
	}
}

// Size returns the frame dimensions in pixels.
func (r *Renderer) Size() (width, height int) {
	b := r.frame.Bounds()
	return b.Dx(), b.Dy()
}

// Draw paints the background, then every snake segment, then the fruit on
// top. The returned buffer is overwritten by the next call.
func (r *Renderer) Draw(snake []types.Point, food types.Point) *image.RGBA {
	draw.Draw(r.frame, r.frame.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, draw.Src)

	for _, p := range snake {
		r.fillCell(p, SnakeColor)
	}
	r.fillCell(food, FruitColor)

	return r.frame
}

// fillCell paints one cell block. Blocks outside the frame are clipped away.
func (r *Renderer) fillCell(p types.Point, c color.RGBA) {
	block := image.Rect(p.X*r.cellSize, p.Y*r.cellSize, (p.X+1)*r.cellSize, (p.Y+1)*r.cellSize)
	block = block.Intersect(r.frame.Bounds())
	if block.Empty() {
		return
	}
	draw.Draw(r.frame, block, image.NewUniform(c), image.Point{}, draw.Src)
}
