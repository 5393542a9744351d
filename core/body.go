package core

// Body is the snake: an ordered list of cells, head first, never empty.
type Body struct {
	segments []Cell
}

// NewBody builds a body from cells given head first. It panics on an empty
// list since a body always has a head.
func NewBody(cells ...Cell) *Body {
	if len(cells) == 0 {
		panic("core: body needs at least one segment")
	}
	segments := make([]Cell, len(cells))
	copy(segments, cells)
	return &Body{segments: segments}
}

func (b *Body) Head() Cell {
	return b.segments[0]
}

func (b *Body) Len() int {
	return len(b.segments)
}

// Cells returns a copy of the segments, head first.
func (b *Body) Cells() []Cell {
	cells := make([]Cell, len(b.segments))
	copy(cells, b.segments)
	return cells
}

// Advance moves the head one step in dir and drops the last segment, which is
// returned. No bounds checking happens here.
func (b *Body) Advance(dir Direction) Cell {
	tail := b.segments[len(b.segments)-1]
	for i := len(b.segments) - 1; i > 0; i-- {
		b.segments[i] = b.segments[i-1]
	}
	b.segments[0] = b.segments[0].Add(dir)
	return tail
}

// Grow appends a copy of the last segment. On the next Advance the copy stays
// behind, so the body ends up one segment longer.
func (b *Body) Grow() {
	b.segments = append(b.segments, b.segments[len(b.segments)-1])
}

// GrowAt appends tail as the new last segment. Passing the cell returned by
// the preceding Advance gives the vacated position back immediately.
func (b *Body) GrowAt(tail Cell) {
	b.segments = append(b.segments, tail)
}

func (b *Body) Contains(cell Cell) bool {
	for _, s := range b.segments {
		if s == cell {
			return true
		}
	}
	return false
}

func (b *Body) OccupiesAny(cells []Cell) bool {
	for _, c := range cells {
		if b.Contains(c) {
			return true
		}
	}
	return false
}

// SelfIntersects reports whether the head shares a cell with any other segment.
func (b *Body) SelfIntersects() bool {
	head := b.segments[0]
	for _, s := range b.segments[1:] {
		if s == head {
			return true
		}
	}
	return false
}
