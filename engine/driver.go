// Package engine drives a GameState from display refresh callbacks.
package engine

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_solo/core"
)

// Driver gates simulation ticks by counting display frames.
//
// On a frame that reaches the threshold the driver renders first and advances
// second, so what is on screen is the state before that tick. Callers rely on
// this order: a collision is visible for one tick before the reset shows up.
type Driver struct {
	state   *core.GameState
	surface Surface
	inbox   *Inbox
	palette Palette

	frameCounter int

	log zerolog.Logger
}

func NewDriver(state *core.GameState, surface Surface, inbox *Inbox, palette Palette) *Driver {
	return &Driver{
		state:   state,
		surface: surface,
		inbox:   inbox,
		palette: palette,
		log:     log.Logger.With().Str("component", "driver").Logger(),
	}
}

// Frame is called once per display refresh. It reports whether a tick ran.
func (d *Driver) Frame() bool {
	d.inbox.Drain(func(dir core.Direction) {
		if !d.state.SetDirection(dir) {
			d.log.Debug().Stringer("dir", dir).Msg("Direction ignored")
		}
	})

	d.frameCounter++
	if float64(d.frameCounter) < d.state.TicksPerMove() {
		return false
	}
	d.frameCounter = 0

	d.Render()

	out := d.state.Advance()
	if out != core.Moved {
		d.log.Debug().Stringer("outcome", out).Int("score", d.state.Score()).Msg("Tick")
	}

	return true
}

// Render draws the current state: grid, food, then the body head first.
func (d *Driver) Render() {
	cfg := d.state.Config()

	d.surface.Clear()
	d.surface.DrawGridLines(cfg.Cols, cfg.Rows, cfg.CellSize)
	d.surface.DrawCell(d.state.Food(), d.palette.Food)

	for i, cell := range d.state.Body() {
		color := d.palette.Body
		if i == 0 {
			color = d.palette.Head
		}
		d.surface.DrawCell(cell, color)
	}

	d.surface.DrawText(0, fmt.Sprintf("Score: %d", d.state.Score()))
	d.surface.DrawText(1, TopScoreText(d.state))
	d.surface.Show()
}

func TopScoreText(state *core.GameState) string {
	top, ok := state.TopScore()
	if !ok {
		return "Top score: -"
	}
	return fmt.Sprintf("Top score: %d", top)
}

func (d *Driver) FrameCounter() int {
	return d.frameCounter
}
