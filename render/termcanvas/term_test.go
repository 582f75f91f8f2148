package termcanvas

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"

	"snake-draw/grid"
	"snake-draw/render"
)

type cell struct {
	r     rune
	style tcell.Style
}

// MockScreen is an in-memory Screen.
type MockScreen struct {
	w, h  int
	cells map[[2]int]cell
}

func newMockScreen(w, h int) *MockScreen {
	return &MockScreen{w: w, h: h, cells: make(map[[2]int]cell)}
}

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = cell{r: mainc, style: style}
}

func (m *MockScreen) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	c, ok := m.cells[[2]int{x, y}]
	if !ok {
		return ' ', nil, tcell.StyleDefault, 1
	}
	return c.r, nil, c.style, 1
}

func (m *MockScreen) Size() (int, int) {
	return m.w, m.h
}

func (m *MockScreen) painted(x, y int) bool {
	_, ok := m.cells[[2]int{x, y}]
	return ok
}

func TestSquareFillsTwoColumns(t *testing.T) {
	screen := newMockScreen(10, 5)
	render.NewBlock(grid.NewPosition(2, 1), render.Square).Draw(colornames.Red, New(screen))

	want := tcell.StyleDefault.Background(rgb(colornames.Red))
	assert.Len(t, screen.cells, 2)
	assert.Equal(t, cell{r: ' ', style: want}, screen.cells[[2]int{4, 1}])
	assert.Equal(t, cell{r: ' ', style: want}, screen.cells[[2]int{5, 1}])
}

func TestTriangleFillsRightColumn(t *testing.T) {
	screen := newMockScreen(4, 2)
	render.NewBlock(grid.NewPosition(0, 0), render.Triangle).Draw(colornames.Lime, New(screen))

	assert.False(t, screen.painted(0, 0))
	assert.True(t, screen.painted(1, 0))
}

func TestRectangleClipsToScreen(t *testing.T) {
	screen := newMockScreen(4, 2)
	render.DrawRectangle(grid.NewPosition(1, 1), 10, 10, colornames.Gray, New(screen))

	assert.Len(t, screen.cells, 2)
	assert.True(t, screen.painted(2, 1))
	assert.True(t, screen.painted(3, 1))
}

func TestEmptyRectangleDrawsNothing(t *testing.T) {
	screen := newMockScreen(4, 2)
	cv := New(screen)
	render.DrawRectangle(grid.NewPosition(1, 1), 0, 1, colornames.Red, cv)
	render.DrawRectangle(grid.NewPosition(1, 1), 1, 0, colornames.Red, cv)

	assert.Empty(t, screen.cells)
}

func TestEyesLeaveDotsOnHead(t *testing.T) {
	screen := newMockScreen(4, 2)
	cv := New(screen)
	head := render.NewBlock(grid.NewPosition(0, 0), render.Square)
	head.Draw(colornames.Green, cv)
	render.DrawEyes(head, grid.Up, cv)

	for x := 0; x < 2; x++ {
		r, _, style, _ := screen.GetContent(x, 0)
		assert.Equal(t, dotGlyph, r)
		want := tcell.StyleDefault.Background(rgb(colornames.Green)).Foreground(rgb(render.EyeColor))
		assert.Equal(t, want, style)
	}
}

func TestCircleCoversCell(t *testing.T) {
	screen := newMockScreen(4, 2)
	render.NewBlock(grid.NewPosition(1, 1), render.Circle).Draw(colornames.Red, New(screen))

	assert.True(t, screen.painted(2, 1))
	assert.True(t, screen.painted(3, 1))
	assert.Len(t, screen.cells, 2)
}

func TestOffscreenIgnored(t *testing.T) {
	screen := newMockScreen(2, 1)
	render.NewBlock(grid.NewPosition(5, 5), render.Circle).Draw(colornames.Red, New(screen))
	assert.Empty(t, screen.cells)
}

func TestSize(t *testing.T) {
	w, h := New(newMockScreen(80, 24)).Size()
	assert.Equal(t, 80*colWidth, w)
	assert.Equal(t, 24*rowHeight, h)
}

func TestInsidePolygon(t *testing.T) {
	tri := []grid.Coord{{X: 12, Y: 0}, {X: 0, Y: 12}, {X: 12, Y: 12}}
	assert.True(t, insidePolygon(tri, grid.Coord{X: 9, Y: 6}))
	assert.False(t, insidePolygon(tri, grid.Coord{X: 3, Y: 6}))
	assert.False(t, insidePolygon(tri, grid.Coord{X: 13, Y: 6}))
}
