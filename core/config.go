package core

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Config is read once at startup and never changed while the game runs.
type Config struct {
	Cols     int
	Rows     int
	CellSize int // terminal columns per grid cell, rendering only

	DefaultTicksPerMove float64 // display frames between ticks at round start
	SpeedStep           float64 // subtracted from ticks per move on every food
	SpeedFloor          float64

	Origin        Cell // where a fresh snake starts
	FrameRate     int  // display refreshes per second
	Seed          uint64
	SpawnAttempts int
}

func DefaultConfig() Config {
	return Config{
		Cols:                15,
		Rows:                15,
		CellSize:            2,
		DefaultTicksPerMove: 25,
		SpeedStep:           0.25,
		SpeedFloor:          0,
		Origin:              Cell{X: 0, Y: 0},
		FrameRate:           60,
		Seed:                0,
		SpawnAttempts:       DefaultSpawnAttempts,
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var merr error

	if c.Cols <= 0 || c.Rows <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("grid size %dx%d: must be positive", c.Cols, c.Rows))
	}
	if c.Cols*c.Rows < 2 {
		merr = multierror.Append(merr, fmt.Errorf("grid size %dx%d: need room for a snake and food", c.Cols, c.Rows))
	}
	if c.CellSize <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("cell size %d: must be positive", c.CellSize))
	}
	if c.SpeedStep < 0 {
		merr = multierror.Append(merr, fmt.Errorf("speed step %v: must not be negative", c.SpeedStep))
	}
	if c.SpeedFloor < 0 {
		merr = multierror.Append(merr, fmt.Errorf("speed floor %v: must not be negative", c.SpeedFloor))
	}
	if c.DefaultTicksPerMove < c.SpeedFloor {
		merr = multierror.Append(merr, fmt.Errorf("ticks per move %v: below speed floor %v", c.DefaultTicksPerMove, c.SpeedFloor))
	}
	if !c.Origin.In(c.Cols, c.Rows) {
		merr = multierror.Append(merr, fmt.Errorf("origin %v: outside %dx%d grid", c.Origin, c.Cols, c.Rows))
	}
	if c.FrameRate <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("frame rate %d: must be positive", c.FrameRate))
	}

	return merr
}
