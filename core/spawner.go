package core

// DefaultSpawnAttempts bounds rejection sampling before falling back to a scan.
const DefaultSpawnAttempts = 64

// Spawner picks food cells that the body does not occupy.
type Spawner struct {
	placer      *Placer
	maxAttempts int
}

func NewSpawner(placer *Placer, maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = DefaultSpawnAttempts
	}
	return &Spawner{placer: placer, maxAttempts: maxAttempts}
}

// Place samples random cells until one is free. After maxAttempts misses it
// enumerates the free cells and picks one of them uniformly. ErrGridSaturated
// is returned when there is none.
func (s *Spawner) Place(cols, rows int, body *Body) (Cell, error) {
	for i := 0; i < s.maxAttempts; i++ {
		cell := s.placer.RandomCell(cols, rows)
		if !body.Contains(cell) {
			return cell, nil
		}
	}

	free := make([]Cell, 0, cols*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := Cell{X: x, Y: y}
			if !body.Contains(cell) {
				free = append(free, cell)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, ErrGridSaturated
	}

	return free[s.placer.src.Intn(len(free))], nil
}
