// Package scene draws engine snapshots onto a core.Screen. Every front end
// renders through it, so the board looks the same in Bubble Tea, tcell and
// over SSH.
package scene

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/engine"
)

// Rows above and below the board.
const (
	hudRows    = 1
	statusRows = 1
)

// BlinkPeriod is the on/off period of an invincible head.
const BlinkPeriod = 100 * time.Millisecond

// Size returns the screen size needed to draw a width x height board.
func Size(width, height int) (int, int) {
	return width + 2, height + 2 + hudRows + statusRows
}

// Board returns the rectangle of the bordered board on the screen.
func Board(snap engine.Snapshot) core.Rect {
	return core.NewRect(0, hudRows, snap.Width+2, snap.Height+2)
}

// Draw renders snap into screen, resizing it to fit. now drives blinking.
func Draw(screen *core.Screen, snap engine.Snapshot, now time.Time) {
	w, h := Size(snap.Width, snap.Height)
	screen.Resize(w, h)

	board := Board(snap)
	screen.DrawTextColored(0, 0, HUD(snap), core.ColorBrightCyan)
	screen.DrawBox(board, core.ColorCyan)

	inner := board.Inset(1)
	blinkOn := (now.UnixMilli()/BlinkPeriod.Milliseconds())%2 == 1
	for y, row := range snap.Grid() {
		for x, cell := range row {
			r, c, visible := glyph(cell, snap, blinkOn)
			if visible {
				screen.SetColored(inner.X+x, inner.Y+y, r, c)
			}
		}
	}

	screen.DrawTextColored(0, board.Bottom(), Status(snap), core.ColorGray)

	switch {
	case snap.Over:
		drawBanner(screen, inner, GameOverText(snap), core.ColorBrightRed)
	case snap.Paused:
		drawBanner(screen, inner, "PAUSED - press p to resume", core.ColorBrightYellow)
	}
}

func drawBanner(screen *core.Screen, area core.Rect, text string, c core.Color) {
	_, cy := area.Center()
	padded := " " + text + " "
	x := area.X + (area.W-len([]rune(padded)))/2
	screen.DrawTextColored(core.Clamp(x, 0, screen.Width()), cy, padded, c)
}

// glyph returns the rune and color for a board cell.
func glyph(cell engine.Cell, snap engine.Snapshot, blinkOn bool) (rune, core.Color, bool) {
	switch cell.Kind {
	case engine.CellSnakeHead:
		if snap.Timers.Invincible > 0 && !blinkOn {
			return 0, 0, false
		}
		if cell.Player == engine.Player2 {
			return '#', core.ColorBrightBlue, true
		}
		return '@', core.ColorBrightGreen, true
	case engine.CellSnakeBody:
		if cell.Player == engine.Player2 {
			return '+', core.ColorBlue, true
		}
		return 'o', core.ColorGreen, true
	case engine.CellFood:
		return cell.Food.Glyph(), foodColor(cell.Food), true
	case engine.CellPowerUp:
		return cell.PowerUp.Glyph(), core.ColorBrightMagenta, true
	case engine.CellObstacle:
		return '█', core.ColorWhite, true
	case engine.CellTeleporter:
		return 'O', core.ColorMagenta, true
	default:
		return 0, 0, false
	}
}

func foodColor(k engine.FoodKind) core.Color {
	switch k {
	case engine.FoodGolden:
		return core.ColorBrightYellow
	case engine.FoodPoison:
		return core.ColorMagenta
	case engine.FoodFast:
		return core.ColorCyan
	case engine.FoodBonus:
		return core.ColorWhite
	default:
		return core.ColorRed
	}
}

// HUD returns the top line: score, level, length and lives in single
// player, both scores and the level in two-player matches.
func HUD(snap engine.Snapshot) string {
	if snap.Players > 1 {
		p1, _ := snap.Snake(engine.Player1)
		p2, _ := snap.Snake(engine.Player2)
		return fmt.Sprintf("P1: %d | P2: %d | Level: %d", p1.Score, p2.Score, snap.Level)
	}

	p1, _ := snap.Snake(engine.Player1)
	return fmt.Sprintf("Score: %d | Level: %d | Length: %d | Lives: %d",
		snap.Score, snap.Level, len(p1.Body), p1.Lives)
}

// Status returns the bottom line: mode, active effects and play time.
func Status(snap engine.Snapshot) string {
	parts := []string{
		fmt.Sprintf("%s/%s", snap.Mode.Title(), snap.Difficulty.Title()),
	}

	timers := []struct {
		kind  engine.PowerUpKind
		ticks int
	}{
		{engine.PowerUpSlow, snap.Timers.Slow},
		{engine.PowerUpInvincible, snap.Timers.Invincible},
		{engine.PowerUpMultiplier, snap.Timers.Multiplier},
		{engine.PowerUpMagnetic, snap.Timers.Magnetic},
	}
	for _, t := range timers {
		if t.ticks > 0 {
			parts = append(parts, fmt.Sprintf("%c %s %d", t.kind.Glyph(), t.kind, t.ticks))
		}
	}

	for _, sn := range snap.Snakes {
		if sn.Combo > 0 {
			parts = append(parts, fmt.Sprintf("%s combo x%d", sn.ID, sn.Combo))
		}
	}

	parts = append(parts, FormatElapsed(snap.Elapsed))
	return strings.Join(parts, " | ")
}

// GameOverText describes how the match ended.
func GameOverText(snap engine.Snapshot) string {
	if snap.Players > 1 && snap.Winner != engine.PlayerNone {
		return fmt.Sprintf("GAME OVER - %s wins!", snap.Winner)
	}
	if snap.Cause != engine.CauseNone && snap.Cause != engine.CauseQuit {
		return fmt.Sprintf("GAME OVER - hit %s - score %d", snap.Cause, snap.Score)
	}
	return fmt.Sprintf("GAME OVER - score %d", snap.Score)
}

// FormatElapsed renders a play time as m:ss.
func FormatElapsed(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
