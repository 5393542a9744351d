package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kuredoro/snake_solo/core"
)

var (
	defStyle  = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	boxStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorReset)
	textStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Surface draws the board on a terminal. The board sits in the top left corner
// inside a one character border; each grid cell is cellSize columns wide and
// one row high. Status lines go right under the border.
type Surface struct {
	s tcell.Screen

	cols, rows, cellSize int
}

func NewSurface(s tcell.Screen) *Surface {
	s.SetStyle(defStyle)
	return &Surface{s: s, cellSize: 1}
}

func (g *Surface) Clear() {
	g.s.Clear()
}

// DrawGridLines draws the border and a dot at the start of every cell.
func (g *Surface) DrawGridLines(cols, rows, cellSize int) {
	g.cols, g.rows, g.cellSize = cols, rows, cellSize

	x2 := cols*cellSize + 1
	y2 := rows + 1
	drawBox(g.s, 0, 0, x2, y2, boxStyle)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := g.screenPos(core.Cell{X: col, Y: row})
			g.s.SetContent(x, y, tcell.RuneBullet, nil, boxStyle)
		}
	}
}

// DrawCell fills a grid cell with color. Cells outside the last drawn grid
// are skipped.
func (g *Surface) DrawCell(cell core.Cell, color tcell.Color) {
	if !cell.In(g.cols, g.rows) {
		return
	}

	style := tcell.StyleDefault.Foreground(color)
	x, y := g.screenPos(cell)
	for i := 0; i < g.cellSize; i++ {
		g.s.SetContent(x+i, y, tcell.RuneBlock, nil, style)
	}
}

func (g *Surface) DrawText(line int, text string) {
	y := g.rows + 2 + line
	w, _ := g.s.Size()
	drawText(g.s, 0, y, w, y, textStyle, text)
}

func (g *Surface) Show() {
	g.s.Show()
}

func (g *Surface) screenPos(cell core.Cell) (int, int) {
	return 1 + cell.X*g.cellSize, 1 + cell.Y
}

func drawText(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, text string) {
	row := y1
	col := x1
	for _, r := range []rune(text) {
		s.SetContent(col, row, r, nil, style)
		col++
		if col >= x2 {
			row++
			col = x1
		}
		if row > y2 {
			break
		}
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}

	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}

	// Only draw corners if necessary
	if y1 != y2 && x1 != x2 {
		s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
		s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
		s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
		s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
	}
}
