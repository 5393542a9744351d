// Package console runs the game on a terminal with tcell.
package console

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_solo/engine"
)

var ErrFrameRate = errors.New("frame rate must be positive")

// Run calls d.Frame frameRate times per second until the player quits, ctx is
// done, or the screen stops delivering events.
func Run(ctx context.Context, s tcell.Screen, d *engine.Driver, inbox *engine.Inbox, frameRate int) error {
	if frameRate <= 0 {
		return ErrFrameRate
	}

	input := NewInput(s, inbox)
	defer input.Close()

	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	d.Render()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.Frame()
		case ev, ok := <-input.Events():
			if !ok {
				return nil
			}

			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if isQuit(ev) {
					log.Info().Msg("Quit requested")
					return nil
				}
			}
		}
	}
}
