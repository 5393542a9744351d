package console_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(w, h)

	return s
}

func AssertSimulationScreen(t *testing.T, got tcell.SimulationScreen, want []string) {
	t.Helper()

	gotCells, w, h := got.GetContents()
	wantCells, wantWidth, wantHeight := SimCellsFromStrings(want)

	if w != wantWidth || h != wantHeight {
		t.Fatalf("got simulation screen of size %dx%d, want %dx%d", w, h, wantWidth, wantHeight)
		return
	}

	if len(gotCells) != len(wantCells) {
		t.Fatalf("got simulation screen that contains %d cells, want %d, even though the "+
			"reported dimensions (%dx%d) coincide", len(gotCells), len(wantCells), w, h)
	}

	for i := range gotCells {
		if len(gotCells[i].Runes) == 0 && len(wantCells[i].Runes) == 1 && wantCells[i].Runes[0] == ' ' {
			continue
		}

		if !runesEqual(gotCells[i].Runes, wantCells[i].Runes) {
			t.Errorf("at %dx%d got simcell with contents %q, want %q", i%w+1, i/w+1,
				string(gotCells[i].Runes), string(wantCells[i].Runes))
		}
	}
}

// SimCellsFromStrings counts width in runes so box drawing characters fit.
func SimCellsFromStrings(rows []string) ([]tcell.SimCell, int, int) {
	if len(rows) == 0 {
		return nil, 0, 0
	}

	width := len([]rune(rows[0]))
	for i := range rows {
		if len([]rune(rows[i])) != width {
			panic(fmt.Sprintf("inconsistent simulation screen row dimensions: "+
				"row #1 being %d columns wide, while row #%d being %d",
				width, i+1, len([]rune(rows[i]))))
		}
	}

	cells := make([]tcell.SimCell, len(rows)*width)
	for y := range rows {
		for x, r := range []rune(rows[y]) {
			cells[width*y+x].Runes = []rune{r}
		}
	}

	return cells, width, len(rows)
}

// screenText joins the screen rows, blank cells as spaces.
func screenText(s tcell.SimulationScreen) string {
	cells, w, _ := s.GetContents()

	var str strings.Builder
	for i, c := range cells {
		if len(c.Runes) == 0 {
			str.WriteRune(' ')
		} else {
			str.WriteString(string(c.Runes))
		}
		if (i+1)%w == 0 {
			str.WriteRune('\n')
		}
	}

	return str.String()
}
