package console_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kuredoro/snake_solo/core"
	"github.com/kuredoro/snake_solo/engine"
	"github.com/kuredoro/snake_solo/engine/console"
)

func waitDirection(t *testing.T, inbox *engine.Inbox) core.Direction {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		var got []core.Direction
		inbox.Drain(func(d core.Direction) { got = append(got, d) })
		if len(got) > 0 {
			return got[len(got)-1]
		}
		time.Sleep(5 * time.Millisecond)
	}

	t.Fatalf("no direction arrived in the inbox")
	return core.Direction{}
}

func TestInput(t *testing.T) {
	s := newScreen(t, 10, 10)
	inbox := engine.NewInbox(4)
	in := console.NewInput(s, inbox)
	defer in.Close()

	s.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	if got := waitDirection(t, inbox); got != core.Down {
		t.Errorf("got direction %v, want Down", got)
	}

	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case ev := <-in.Events():
		key, ok := ev.(*tcell.EventKey)
		if !ok || key.Key() != tcell.KeyEscape {
			t.Errorf("got event %#v, want escape key", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("escape key was not forwarded")
	}

	s.Fini()
	select {
	case _, ok := <-in.Events():
		if ok {
			t.Errorf("got an event after the screen was finalized")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("events channel was not closed after Fini")
	}
}

func newGame(t *testing.T, s tcell.Screen) (*engine.Driver, *core.GameState, *engine.Inbox) {
	t.Helper()

	cfg := core.DefaultConfig()
	cfg.Cols, cfg.Rows = 6, 6
	cfg.DefaultTicksPerMove = 1
	cfg.Seed = 11

	spawner := core.NewSpawner(core.NewPlacer(core.NewSource(cfg.Seed)), cfg.SpawnAttempts)
	state, err := core.NewGameState(cfg, spawner, nil)
	if err != nil {
		t.Fatalf("new game state: %v", err)
	}

	inbox := engine.NewInbox(4)
	d := engine.NewDriver(state, console.NewSurface(s), inbox, engine.DefaultPalette)

	return d, state, inbox
}

func TestRun(t *testing.T) {
	t.Run("quits on q", func(t *testing.T) {
		s := newScreen(t, 20, 12)
		defer s.Fini()
		d, _, inbox := newGame(t, s)

		errCh := make(chan error, 1)
		go func() {
			errCh <- console.Run(context.Background(), s, d, inbox, 200)
		}()

		s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

		select {
		case err := <-errCh:
			if err != nil {
				t.Errorf("got error %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Run did not return after q")
		}

		if !strings.Contains(screenText(s), "Score: ") {
			t.Errorf("score line missing from screen:\n%s", screenText(s))
		}
	})

	t.Run("stops with the context and keeps ticking until then", func(t *testing.T) {
		s := newScreen(t, 20, 12)
		defer s.Fini()
		d, state, inbox := newGame(t, s)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- console.Run(ctx, s, d, inbox, 500)
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if err != nil {
				t.Errorf("got error %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Run did not return after cancel")
		}

		if state.Round() == 1 && state.Body()[0] == (core.Cell{X: 0, Y: 0}) {
			t.Errorf("the game never ticked")
		}
	})

	t.Run("rejects a zero frame rate", func(t *testing.T) {
		s := newScreen(t, 20, 12)
		defer s.Fini()
		d, _, inbox := newGame(t, s)

		err := console.Run(context.Background(), s, d, inbox, 0)
		if !errors.Is(err, console.ErrFrameRate) {
			t.Errorf("got error %v, want %v", err, console.ErrFrameRate)
		}
	})
}

func TestCover(t *testing.T) {
	s := newScreen(t, 60, 12)
	defer s.Fini()

	cover := console.Cover("Top score: 7", func() {}, func() {})
	cover.SetRect(0, 0, 60, 12)
	cover.Draw(s)
	s.Show()

	text := screenText(s)
	for _, want := range []string{"Welcome to snake.", "Top score: 7", "Play", "Quit"} {
		if !strings.Contains(text, want) {
			t.Errorf("cover does not show %q:\n%s", want, text)
		}
	}
}
