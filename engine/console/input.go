package console

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake_solo/core"
	"github.com/kuredoro/snake_solo/engine"
)

var key2Name = map[tcell.Key]string{
	tcell.KeyUp:    "Up",
	tcell.KeyDown:  "Down",
	tcell.KeyLeft:  "Left",
	tcell.KeyRight: "Right",
}

var rune2Name = map[rune]string{
	'w': "Up", 'k': "Up",
	's': "Down", 'j': "Down",
	'a': "Left", 'h': "Left",
	'd': "Right", 'l': "Right",
}

// KeyDirection maps arrow keys, WASD and hjkl to a direction.
func KeyDirection(ev *tcell.EventKey) (core.Direction, bool) {
	name, ok := key2Name[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		name, ok = rune2Name[ev.Rune()]
	}
	if !ok {
		return core.Direction{}, false
	}

	return core.DirectionByName[name], true
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// Input polls the screen on its own goroutine. Direction keys go straight to
// the inbox; everything else comes out of Events.
type Input struct {
	s      tcell.Screen
	inbox  *engine.Inbox
	events chan tcell.Event
	done   chan struct{}
}

func NewInput(s tcell.Screen, inbox *engine.Inbox) *Input {
	in := &Input{
		s:      s,
		inbox:  inbox,
		events: make(chan tcell.Event),
		done:   make(chan struct{}),
	}

	go in.run()

	return in
}

// Events is closed once the screen stops delivering events.
func (in *Input) Events() <-chan tcell.Event {
	return in.events
}

func (in *Input) run() {
	defer close(in.events)

	for {
		ev := in.s.PollEvent()
		if ev == nil {
			return
		}

		if key, ok := ev.(*tcell.EventKey); ok {
			if dir, ok := KeyDirection(key); ok {
				log.Debug().Stringer("dir", dir).Msg("Key pressed")
				in.inbox.Send(dir)
				continue
			}
		}

		select {
		case in.events <- ev:
		case <-in.done:
			return
		}
	}
}

// Close stops forwarding events. The polling goroutine exits once the screen
// is finalized.
func (in *Input) Close() {
	select {
	case <-in.done:
	default:
		close(in.done)
	}
}
