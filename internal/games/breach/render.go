package breach

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breach/internal/core"
	puzzle "github.com/vovakirdan/tui-breach/internal/games/breach/core"
	"github.com/vovakirdan/tui-breach/internal/i18n"
)

const (
	cellWidth  = 4 // "[1C]" with the cursor brackets
	cellHeight = 2 // Code line plus a spacer line

	boxX = 1
	boxY = 3

	slotWidth  = 3  // "1C " per buffer slot
	panelMinW  = 34 // Room for the longest sequence line and labels
	panelLines = 12 // Last panel row used by three sequences
)

// matrixBox returns the outline of the code matrix for a grid of the given size.
func matrixBox(size int) core.Rect {
	return core.NewRect(boxX, boxY, size*cellWidth+3, size*cellHeight+1)
}

// gridRect returns the clickable area covering every cell.
func gridRect(size int) core.Rect {
	return core.NewRect(boxX+2, boxY+1, size*cellWidth, size*cellHeight)
}

// cellOrigin returns the screen position of the cell's left bracket.
func cellOrigin(c puzzle.Coord) (int, int) {
	return boxX + 2 + c.X*cellWidth, boxY + 1 + c.Y*cellHeight
}

// minScreenSize returns the smallest screen that fits the matrix and side panel.
func minScreenSize(size, capacity int) (int, int) {
	box := matrixBox(size)
	w := box.Right() + 2 + max(capacity*slotWidth, panelMinW)
	h := max(box.Bottom(), panelLines) + 2
	return w, h
}

// cellAt maps a screen position to the grid cell drawn there.
func (g *Game) cellAt(x, y int) (puzzle.Coord, bool) {
	col, row, ok := gridRect(g.cfg.Grid.Size).CellAt(x, y, cellWidth, cellHeight)
	if !ok {
		return puzzle.Coord{}, false
	}
	return puzzle.C(col, row), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		g.renderError(dst)
		return
	}

	snap := g.session.Snapshot()

	g.renderHeader(dst)
	g.renderMatrix(dst, snap)
	g.renderPanel(dst, snap)
	g.renderFooter(dst)

	switch {
	case snap.Status.Terminal():
		g.renderBanner(dst, snap)
	case g.paused:
		dst.DrawTextCentered(g.screenH/2, " "+i18n.Get("LABEL_PAUSED")+" ", core.ColorYellow)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := minScreenSize(g.cfg.Grid.Size, g.cfg.Buffer.Capacity)
	y := g.screenH / 2
	dst.DrawTextCentered(y, i18n.Get("WINDOW_TOO_SMALL"), core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf(i18n.Get("NEED_SIZE"), minW, minH, g.screenW, g.screenH), core.ColorGray)
}

// renderError explains why no puzzle could be dealt.
func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, g.err.Error(), core.ColorRed)
	dst.DrawTextCentered(y+1, i18n.Get("HINT_QUIT"), core.ColorGray)
}

// renderHeader draws the title and puzzle info.
func (g *Game) renderHeader(dst *core.Screen) {
	dst.DrawTextCentered(0, i18n.Get("TITLE"), core.ColorYellow)
	info := fmt.Sprintf("%s  %dx%d  seed %d", g.preset, g.cfg.Grid.Size, g.cfg.Grid.Size, g.seed)
	dst.DrawTextCentered(1, info, core.ColorGray)
}

// renderMatrix draws the code grid with highlights and the cursor.
func (g *Game) renderMatrix(dst *core.Screen, snap puzzle.Snapshot) {
	size := snap.Grid.Size
	dst.DrawBox(matrixBox(size), core.ColorGreen)

	valid := make(map[puzzle.Coord]bool, len(snap.ValidMoves))
	if g.cfg.Display.HighlightMoves {
		for _, c := range snap.ValidMoves {
			valid[c] = true
		}
	}

	for y := range size {
		for x := range size {
			c := puzzle.C(x, y)
			px, py := cellOrigin(c)

			color := core.ColorGreen
			switch {
			case g.flashTicks > 0 && c == g.flashCell:
				color = core.ColorRed
			case snap.Grid.Consumed(c):
				color = core.ColorDarkGray
			case valid[c]:
				color = core.ColorWhite
			}
			dst.DrawTextColor(px+1, py, string(snap.Grid.Code(c)), color)

			if c == g.cursor && !snap.Status.Terminal() {
				dst.SetColor(px, py, '[', core.ColorCyan)
				dst.SetColor(px+cellWidth-1, py, ']', core.ColorCyan)
			}
		}
	}
}

// renderPanel draws buffer, timer and sequences to the right of the matrix.
func (g *Game) renderPanel(dst *core.Screen, snap puzzle.Snapshot) {
	x := matrixBox(snap.Grid.Size).Right() + 2

	// Buffer
	dst.DrawTextColor(x, boxY, fmt.Sprintf("%s %d/%d", i18n.Get("LABEL_BUFFER"), snap.BufferUsed, snap.BufferCapacity), core.ColorYellow)
	for i := range snap.BufferCapacity {
		sx := x + i*slotWidth
		if i < len(snap.Selections) {
			dst.DrawTextColor(sx, boxY+1, string(snap.Selections[i].Code), core.ColorBrightGreen)
		} else {
			dst.DrawTextColor(sx, boxY+1, "__", core.ColorDarkGray)
		}
	}

	// Timer
	dst.DrawTextColor(x, boxY+3, fmt.Sprintf("%s %s", i18n.Get("LABEL_TIME"), formatRemaining(snap.TimeRemaining)), timerColor(snap))
	if snap.Status == puzzle.StatusNotStarted {
		dst.DrawTextColor(x, boxY+4, i18n.Get("LABEL_WAITING"), core.ColorGray)
	}

	// Sequences
	dst.DrawTextColor(x, boxY+5, i18n.Get("LABEL_SEQUENCES"), core.ColorYellow)
	for i, seq := range snap.Sequences {
		y := boxY + 6 + i
		matched := snap.Matched(i)
		done := snap.Progress[i] == puzzle.Completed
		for j, code := range seq {
			color := core.ColorGray
			switch {
			case j < matched:
				color = core.ColorBrightGreen
			case j == matched && !done:
				color = core.ColorYellow
			}
			dst.DrawTextColor(x+j*slotWidth, y, string(code), color)
		}
		if done {
			dst.SetColor(x+len(seq)*slotWidth, y, '✓', core.ColorBrightGreen)
		}
	}
}

// renderFooter draws the rejection message and key hints.
func (g *Game) renderFooter(dst *core.Screen) {
	box := matrixBox(g.cfg.Grid.Size)
	if g.flashTicks > 0 && g.flashMsg != "" {
		dst.DrawTextColor(box.X, box.Bottom(), g.flashMsg, core.ColorRed)
	}
	dst.DrawTextCentered(g.screenH-1, i18n.Get("HINT_KEYS"), core.ColorDarkGray)
}

// renderBanner draws the outcome overlay.
func (g *Game) renderBanner(dst *core.Screen, snap puzzle.Snapshot) {
	const w, h = 36, 5
	r := core.Centered(g.screenW, g.screenH, w, h)

	title, color := i18n.Get("BANNER_SUCCESS"), core.ColorBrightGreen
	detail := fmt.Sprintf(i18n.Get("SEQUENCES_COMPLETED"), g.outcome.SequencesCompleted, g.outcome.SequenceCount)
	if !g.outcome.Success {
		title, color = i18n.Get("BANNER_FAILURE"), core.ColorRed
		detail = reasonMessage(snap.Reason) + ", " + detail
	}

	for y := r.Y; y < r.Bottom(); y++ {
		dst.DrawHLine(r.X, y, r.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(r, color)
	dst.DrawTextCentered(r.Y+1, title, color)
	dst.DrawTextCentered(r.Y+2, detail, core.ColorDefault)
	dst.DrawTextCentered(r.Y+3, fmt.Sprintf(i18n.Get("SCORE"), g.outcome.Score()), core.ColorYellow)
	if g.gameOver {
		dst.DrawTextCentered(r.Bottom(), i18n.Get("HINT_GAME_OVER"), core.ColorGray)
	}
}

// timerColor turns the countdown orange under 10s and red under 5s.
func timerColor(snap puzzle.Snapshot) core.Color {
	switch {
	case !snap.TimerArmed && snap.Status == puzzle.StatusNotStarted:
		return core.ColorDefault
	case snap.TimeRemaining < 5*time.Second:
		return core.ColorRed
	case snap.TimeRemaining < 10*time.Second:
		return core.ColorOrange
	default:
		return core.ColorGreen
	}
}

// formatRemaining renders a duration as seconds with one decimal.
func formatRemaining(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
