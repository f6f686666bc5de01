// Package view shows a rendered plot in a full-screen terminal viewer.
package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Viewer scrolls over the lines of a plot.
type Viewer struct {
	Title string
	Lines []string

	// X and Y are the column and line shown in the top left corner.
	X, Y int
}

var (
	titleStyle = tcell.StyleDefault.Bold(true)
	plotStyle  = tcell.StyleDefault
)

// Draw clears screen and draws the visible part of the plot.
func (v *Viewer) Draw(screen tcell.Screen) {
	screen.Clear()
	w, h := screen.Size()
	top := 0
	if v.Title != "" {
		drawLine(screen, 0, v.Title, 0, w, titleStyle)
		top = 1
	}
	for row := top; row < h; row++ {
		i := v.Y + row - top
		if i < 0 || i >= len(v.Lines) {
			break
		}
		drawLine(screen, row, v.Lines[i], v.X, w, plotStyle)
	}
	screen.Show()
}

// drawLine draws s on row y, skipping the first skip columns.
func drawLine(screen tcell.Screen, y int, s string, skip, w int, style tcell.Style) {
	col := 0
	for _, r := range s {
		cw := max(runewidth.RuneWidth(r), 1)
		if x := col - skip; x >= 0 && x < w {
			screen.SetContent(x, y, r, nil, style)
		}
		col += cw
		if col-skip >= w {
			return
		}
	}
}

// width returns the width in columns of the widest line.
func (v *Viewer) width() int {
	n := 0
	for _, l := range v.Lines {
		n = max(n, runewidth.StringWidth(l))
	}
	return n
}

// Scroll moves the view by dx columns and dy lines, keeping it inside the
// plot.
func (v *Viewer) Scroll(dx, dy int) {
	v.X = min(max(v.X+dx, 0), max(v.width()-1, 0))
	v.Y = min(max(v.Y+dy, 0), max(len(v.Lines)-1, 0))
}

// Handle applies an event and reports whether the viewer should quit.
func (v *Viewer) Handle(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.Scroll(-1, 0)
	case tcell.KeyRight:
		v.Scroll(1, 0)
	case tcell.KeyUp:
		v.Scroll(0, -1)
	case tcell.KeyDown:
		v.Scroll(0, 1)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return true
		case 'h':
			v.Scroll(-1, 0)
		case 'l':
			v.Scroll(1, 0)
		case 'k':
			v.Scroll(0, -1)
		case 'j':
			v.Scroll(0, 1)
		}
	}
	return false
}

// Run draws the plot and handles events until the user quits. The screen
// must be initialized; Run does not finalize it.
func (v *Viewer) Run(screen tcell.Screen) {
	v.Draw(screen)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if v.Handle(ev) {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		v.Draw(screen)
	}
}

// Show runs a viewer for lines on the terminal.
func Show(title string, lines []string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	v := &Viewer{Title: title, Lines: lines}
	v.Run(screen)
	return nil
}
