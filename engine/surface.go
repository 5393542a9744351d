package engine

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kuredoro/snake_solo/core"
)

// Surface is where a tick gets drawn.
type Surface interface {
	Clear()
	DrawGridLines(cols, rows, cellSize int)
	DrawCell(cell core.Cell, color tcell.Color)
	// DrawText writes a status line below the grid; line 0 is the first one.
	DrawText(line int, text string)
	Show()
}

type Palette struct {
	Head tcell.Color
	Body tcell.Color
	Food tcell.Color
}

var DefaultPalette = Palette{
	Head: tcell.NewHexColor(0x02eb29),
	Body: tcell.NewHexColor(0x00ff2a),
	Food: tcell.ColorRed,
}
