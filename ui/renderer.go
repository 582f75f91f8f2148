package ui

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
	"golang.org/x/image/math/f64"

	"snake-draw/game"
	"snake-draw/game/types"
	"snake-draw/grid"
	"snake-draw/render"
)

const (
	DefaultPadding = 10  // Padding around the board in canvas pixels
	headBrightness = 1.3 // Head is drawn brighter than the body
)

// Palette holds the colors of every board element
type Palette struct {
	Board color.RGBA
	Wall  color.RGBA
	Food  color.RGBA
	Tail  color.RGBA
}

// DefaultPalette mirrors the classic look: dark board, red food, white tail
func DefaultPalette() Palette {
	return Palette{
		Board: colornames.Black,
		Wall:  colornames.Darkgray,
		Food:  colornames.Red,
		Tail:  colornames.White,
	}
}

type Renderer struct {
	Palette Palette

	padding         float64
	scale           float64
	screenWidth     float64
	screenHeight    float64
	totalGridWidth  float64
	totalGridHeight float64
	offsetX         float64
	offsetY         float64
}

func NewRenderer(padding float64) *Renderer {
	return &Renderer{
		Palette: DefaultPalette(),
		padding: padding,
		scale:   1,
		offsetX: padding,
		offsetY: padding,
	}
}

// UpdateDimensions fits the board into the canvas. Canvases that do not
// report a size get the board at its natural size.
func (r *Renderer) UpdateDimensions(cv render.Canvas, g types.Grid) {
	boardWidth := float64(g.Width) * grid.CellSize
	boardHeight := float64(g.Height) * grid.CellSize

	sizer, ok := cv.(render.Sizer)
	if !ok || boardWidth == 0 || boardHeight == 0 {
		r.scale = 1
		r.totalGridWidth, r.totalGridHeight = boardWidth, boardHeight
		r.offsetX, r.offsetY = r.padding, r.padding
		return
	}
	r.screenWidth, r.screenHeight = sizer.Size()

	// Calculate available space after border padding
	availableWidth := r.screenWidth - r.padding*2
	availableHeight := r.screenHeight - r.padding*2

	r.scale = math.Max(0, math.Min(availableWidth/boardWidth, availableHeight/boardHeight))
	r.totalGridWidth = boardWidth * r.scale
	r.totalGridHeight = boardHeight * r.scale

	// Left-align horizontally, center vertically
	r.offsetX = r.padding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2
}

// Transform maps board pixels to canvas pixels
func (r *Renderer) Transform() f64.Aff3 {
	return render.Mul(render.Translate(r.offsetX, r.offsetY), render.Scale(r.scale, r.scale))
}

// Draw renders one frame of the scene
func (r *Renderer) Draw(cv render.Canvas, s *game.Scene) {
	r.UpdateDimensions(cv, s.Grid)
	board := render.Transform(cv, r.Transform())

	render.DrawRectangle(grid.NewPosition(0, 0), s.Grid.Width, s.Grid.Height, r.Palette.Board, board)
	for _, w := range s.Walls {
		render.DrawRectangle(w.Origin, w.Width, w.Height, r.Palette.Wall, board)
	}
	for _, food := range s.Food {
		food.Draw(r.Palette.Food, board)
	}

	snake := s.Snake
	if snake == nil || snake.Len() == 0 {
		return
	}
	for j, segment := range snake.Body {
		c := snake.Color
		if j == 0 && snake.Len() > 1 { // Tail
			c = r.Palette.Tail
		} else if j == snake.Len()-1 { // Head
			c = brighten(snake.Color, headBrightness)
		}
		segment.Draw(c, board)
	}
	render.DrawEyes(snake.Head(), snake.Facing, board)
}

// brighten scales the color channels, saturating at 255
func brighten(c color.RGBA, factor float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*factor))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
