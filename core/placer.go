package core

import (
	"time"

	"golang.org/x/exp/rand"
)

// Source is a uniform integer source. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded source. A zero seed picks one from the clock.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// Placer draws cells uniformly from a grid.
type Placer struct {
	src Source
}

func NewPlacer(src Source) *Placer {
	return &Placer{src: src}
}

// RandomCell returns a cell in [0, cols) x [0, rows).
func (p *Placer) RandomCell(cols, rows int) Cell {
	return Cell{X: p.src.Intn(cols), Y: p.src.Intn(rows)}
}
