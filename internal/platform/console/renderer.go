package console

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/engine"
	"github.com/vovakirdan/snake-arcade/internal/scene"
)

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	buf    *core.Screen
	clock  func() time.Time
	footer string
}

// NewRenderer creates a renderer for screen. clock drives blinking and
// defaults to time.Now.
func NewRenderer(screen tcell.Screen, clock func() time.Time) *Renderer {
	if clock == nil {
		clock = time.Now
	}
	return &Renderer{
		screen: screen,
		buf:    core.NewScreen(1, 1),
		clock:  clock,
	}
}

// SetFooter sets a line drawn under the board.
func (r *Renderer) SetFooter(text string) {
	r.footer = text
}

// Draw implements engine.Renderer.
func (r *Renderer) Draw(snap engine.Snapshot) {
	scene.Draw(r.buf, snap, r.clock())

	r.screen.Clear()
	for y := range r.buf.Height() {
		for x := range r.buf.Width() {
			cell := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, cell.Rune, nil, style(cell.Color))
		}
	}
	if r.footer != "" {
		y := r.buf.Height()
		for i, ch := range []rune(r.footer) {
			r.screen.SetContent(i, y, ch, nil, style(core.ColorBrightYellow))
		}
	}
	r.screen.Show()
}

// style maps a palette color to a tcell style.
func style(c core.Color) tcell.Style {
	idx := c.ANSI()
	if idx < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(idx))
}
