package core

import "fmt"

// Cell is a grid position. Columns grow to the right, rows grow downwards.
type Cell struct {
	X, Y int
}

func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// In reports whether the cell lies inside [0, cols) x [0, rows).
func (c Cell) In(cols, rows int) bool {
	return c.X >= 0 && c.X < cols && c.Y >= 0 && c.Y < rows
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction is an axis-aligned unit step.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// DirectionByName maps the logical key names delivered by input sources.
var DirectionByName = map[string]Direction{
	"Up":    Up,
	"Down":  Down,
	"Left":  Left,
	"Right": Right,
}

func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Direction(%d, %d)", d.DX, d.DY)
}
