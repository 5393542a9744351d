package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	welcome    = `Welcome to snake.`
	navigation = `Arrows, WASD or hjkl to steer. Esc quits.`
)

// Cover is the start screen: a welcome text, the top score and two buttons.
func Cover(topScore string, play, quit func()) (content tview.Primitive) {
	// Create a frame for the subtitle and navigation infos.
	frame := tview.NewFrame(tview.NewBox()).
		SetBorders(0, 0, 0, 0, 0, 0).
		AddText(welcome, true, tview.AlignCenter, tcell.ColorGreen).
		AddText(topScore, true, tview.AlignCenter, tcell.ColorWhite).
		AddText("", true, tview.AlignCenter, tcell.ColorWhite).
		AddText(navigation, true, tview.AlignCenter, tcell.ColorDarkMagenta)

	playBtn := tview.NewButton("Play").SetSelectedFunc(play)
	quitBtn := tview.NewButton("Quit").SetSelectedFunc(quit)

	// Create a Flex layout that centers the logo and subtitle.
	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 0, 1, false).
		AddItem(frame, 6, 0, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(tview.NewBox(), 0, 1, false).
			AddItem(playBtn, 10, 0, true).
			AddItem(tview.NewBox(), 2, 0, false).
			AddItem(quitBtn, 10, 0, false).
			AddItem(tview.NewBox(), 0, 1, false), 1, 0, true).
		AddItem(tview.NewBox(), 0, 1, false)
	return flex
}

// ShowCover blocks on the start screen and reports whether the player chose
// to play. A nil screen lets tview open the terminal itself.
func ShowCover(screen tcell.Screen, topScore string) (bool, error) {
	app := tview.NewApplication()
	if screen != nil {
		app.SetScreen(screen)
	}

	played := false
	play := func() {
		played = true
		app.Stop()
	}

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if isQuit(event) {
			app.Stop()
			return nil
		}
		if event.Key() == tcell.KeyRune && event.Rune() == 'p' {
			play()
			return nil
		}
		return event
	})

	err := app.SetRoot(Cover(topScore, play, app.Stop), true).EnableMouse(true).Run()
	if err != nil {
		return false, fmt.Errorf("run cover: %v", err)
	}

	return played, nil
}
