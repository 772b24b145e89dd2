package breach

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breach/internal/config"
	"github.com/vovakirdan/tui-breach/internal/core"
	puzzle "github.com/vovakirdan/tui-breach/internal/games/breach/core"
	"github.com/vovakirdan/tui-breach/internal/i18n"
)

type recordingSink struct {
	outcomes []puzzle.Outcome
	started  []int64
}

func (r *recordingSink) ReportOutcome(o puzzle.Outcome) {
	r.outcomes = append(r.outcomes, o)
}

func (r *recordingSink) PuzzleStarted(seed int64, difficulty string, gridSize int) {
	r.started = append(r.started, seed)
}

// setup resets package settings and returns a game dealt with seed.
func setup(t *testing.T, seed int64) (*Game, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	SetConfig(config.DefaultBreachConfig(), config.Overrides{})
	SetDifficulty(config.DifficultyCustom)
	SetOutcomeSink(sink)
	t.Cleanup(func() {
		SetConfig(config.DefaultBreachConfig(), config.Overrides{})
		SetDifficulty(config.DifficultyCustom)
		SetOutcomeSink(nil)
	})

	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	if g.Err() != nil {
		t.Fatalf("Reset() failed: %v", g.Err())
	}
	return g, sink
}

func empty() core.InputFrame {
	return core.NewInputFrame()
}

func actions(as ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range as {
		f.Set(a)
	}
	return f
}

// clickCell returns a frame clicking the middle of cell c.
func clickCell(c puzzle.Coord) core.InputFrame {
	f := core.NewInputFrame()
	x, y := cellOrigin(c)
	f.Click(x+1, y)
	return f
}

func TestRegistered(t *testing.T) {
	g := New()
	if g.ID() != "breach" || g.Title() != "Breach Protocol" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestResetDeterministic(t *testing.T) {
	g1, _ := setup(t, 1234)
	g2, _ := setup(t, 1234)

	l1, l2 := g1.Session().Layout(), g2.Session().Layout()
	if l1.Grid.String() != l2.Grid.String() {
		t.Error("same seed produced different grids")
	}
	if g1.Snapshot().Phase != PhaseReady {
		t.Errorf("Phase = %s, want %s", g1.Snapshot().Phase, PhaseReady)
	}
}

func TestSolutionPathByClicks(t *testing.T) {
	g, sink := setup(t, 99)
	path := g.Session().Layout().Path

	for _, c := range path {
		g.Step(clickCell(c))
		if g.Session().Status().Terminal() {
			break
		}
	}

	snap := g.Snapshot()
	if snap.Puzzle.Status != puzzle.StatusSuccess {
		t.Fatalf("Status = %s, want success", snap.Puzzle.Status)
	}
	if snap.Phase != PhaseBanner {
		t.Errorf("Phase = %s, want %s", snap.Phase, PhaseBanner)
	}
	if len(sink.outcomes) != 1 || !sink.outcomes[0].Success {
		t.Fatalf("sink outcomes = %+v, want one success", sink.outcomes)
	}
	if len(sink.started) != 1 || sink.started[0] != 99 {
		t.Errorf("PuzzleStarted calls = %v, want [99]", sink.started)
	}

	// Banner stays up for BannerTicks, then GameOver.
	for i := 0; i < BannerTicks-1; i++ {
		if res := g.Step(empty()); res.State.GameOver {
			t.Fatalf("GameOver after %d banner ticks", i+1)
		}
	}
	res := g.Step(empty())
	if !res.State.GameOver {
		t.Fatal("expected GameOver after the banner")
	}
	if res.State.Score != sink.outcomes[0].Score() || res.State.Score == 0 {
		t.Errorf("Score = %d, want %d", res.State.Score, sink.outcomes[0].Score())
	}
	if len(sink.outcomes) != 1 {
		t.Errorf("outcome reported %d times", len(sink.outcomes))
	}
}

func TestSolutionPathByCursor(t *testing.T) {
	g, _ := setup(t, 7)
	path := g.Session().Layout().Path

	for _, target := range path {
		for g.cursor.X < target.X {
			g.Step(actions(core.ActionRight))
		}
		for g.cursor.X > target.X {
			g.Step(actions(core.ActionLeft))
		}
		for g.cursor.Y < target.Y {
			g.Step(actions(core.ActionDown))
		}
		for g.cursor.Y > target.Y {
			g.Step(actions(core.ActionUp))
		}
		g.Step(actions(core.ActionConfirm))
		if g.Session().Status().Terminal() {
			break
		}
	}

	if g.Session().Status() != puzzle.StatusSuccess {
		t.Errorf("Status = %s, want success", g.Session().Status())
	}
}

func TestCursorClamped(t *testing.T) {
	g, _ := setup(t, 1)

	g.Step(actions(core.ActionUp))
	g.Step(actions(core.ActionLeft))
	if g.cursor != puzzle.C(0, 0) {
		t.Errorf("cursor = %v, want (0, 0)", g.cursor)
	}

	for i := 0; i < 20; i++ {
		g.Step(actions(core.ActionRight))
		g.Step(actions(core.ActionDown))
	}
	if g.cursor != puzzle.C(5, 5) {
		t.Errorf("cursor = %v, want (5, 5)", g.cursor)
	}
}

func TestRejectedSelectionFlashes(t *testing.T) {
	g, sink := setup(t, 5)

	g.Step(clickCell(puzzle.C(2, 3)))

	snap := g.Snapshot()
	if snap.FlashTicks != FlashTicks {
		t.Errorf("FlashTicks = %d, want %d", snap.FlashTicks, FlashTicks)
	}
	if snap.Phase != PhaseReady || snap.Puzzle.BufferUsed != 0 {
		t.Errorf("rejected first move changed state: phase %s buffer %d", snap.Phase, snap.Puzzle.BufferUsed)
	}
	if g.flashMsg != "first selection must be in the top row" {
		t.Errorf("flashMsg = %q", g.flashMsg)
	}
	if g.cursor != puzzle.C(2, 3) {
		t.Errorf("click should move the cursor, got %v", g.cursor)
	}

	for i := 0; i < FlashTicks; i++ {
		g.Step(empty())
	}
	if g.Snapshot().FlashTicks != 0 {
		t.Error("flash should expire")
	}
	if len(sink.outcomes) != 0 {
		t.Error("a rejection must not report an outcome")
	}
}

func TestClickOutsideGridIgnored(t *testing.T) {
	g, _ := setup(t, 5)

	f := core.NewInputFrame()
	f.Click(0, 0)
	f.Click(79, 23)
	g.Step(f)

	if snap := g.Snapshot(); snap.FlashTicks != 0 || snap.Puzzle.BufferUsed != 0 {
		t.Errorf("clicks outside the grid had an effect: %+v", snap)
	}
}

func TestCancel(t *testing.T) {
	g, sink := setup(t, 11)

	g.Step(actions(core.ActionBack))

	if g.Session().Reason() != puzzle.ReasonUserCancelled {
		t.Errorf("Reason = %q, want user_cancelled", g.Session().Reason())
	}
	if len(sink.outcomes) != 1 || sink.outcomes[0].Success {
		t.Fatalf("outcomes = %+v", sink.outcomes)
	}

	// Confirm skips the banner.
	if res := g.Step(actions(core.ActionConfirm)); !res.State.GameOver {
		t.Error("Confirm during the banner should end the game")
	}
}

func TestAbortReportsCancelled(t *testing.T) {
	g, sink := setup(t, 11)
	g.Step(clickCell(g.Session().Layout().Path[0]))

	g.Abort()
	if g.Session().Reason() != puzzle.ReasonUserCancelled {
		t.Errorf("Reason = %q, want user_cancelled", g.Session().Reason())
	}
	if len(sink.outcomes) != 1 || sink.outcomes[0].BufferUsed != 1 {
		t.Fatalf("outcomes = %+v, want one cancelled run with one pick", sink.outcomes)
	}

	// A finished puzzle is left alone.
	g.Abort()
	if len(sink.outcomes) != 1 {
		t.Errorf("Abort after the end reported again: %+v", sink.outcomes)
	}
}

func TestAbortWithoutPuzzle(t *testing.T) {
	g := New()
	g.Abort() // no session yet; must not panic
}

func TestPauseFreezesTimer(t *testing.T) {
	g, _ := setup(t, 21)
	first := g.Session().Layout().Path[0]

	g.Step(clickCell(first))
	before := g.Session().TimeRemaining()

	g.Step(actions(core.ActionPause))
	for i := 0; i < 100; i++ {
		g.Step(empty())
	}
	if g.Snapshot().Phase != PhasePaused {
		t.Errorf("Phase = %s, want paused", g.Snapshot().Phase)
	}
	if got := g.Session().TimeRemaining(); got != before {
		t.Errorf("TimeRemaining moved while paused: %v -> %v", before, got)
	}

	g.Step(actions(core.ActionPause))
	if got := g.Session().TimeRemaining(); got >= before {
		t.Errorf("TimeRemaining = %v, want below %v after unpause", got, before)
	}
}

func TestTimerInertBeforeFirstSelection(t *testing.T) {
	g, _ := setup(t, 3)

	for i := 0; i < 3000; i++ {
		g.Step(empty())
	}
	if g.Session().Status() != puzzle.StatusNotStarted {
		t.Errorf("Status = %s, want not_started", g.Session().Status())
	}
	if g.Session().TimeRemaining() != g.cfg.ToSessionConfig().TimeLimit {
		t.Error("timer ran before the first selection")
	}
}

func TestTimeExpires(t *testing.T) {
	g, sink := setup(t, 8)
	g.Step(clickCell(g.Session().Layout().Path[0]))

	for i := 0; i < 31*60 && !g.Session().Status().Terminal(); i++ {
		g.Step(empty())
	}

	if g.Session().Reason() != puzzle.ReasonTimeExpired {
		t.Fatalf("Reason = %q, want time_expired", g.Session().Reason())
	}
	if g.Session().TimeRemaining() != 0 {
		t.Errorf("TimeRemaining = %v, want 0", g.Session().TimeRemaining())
	}
	if len(sink.outcomes) != 1 {
		t.Errorf("outcome reported %d times", len(sink.outcomes))
	}
}

func TestDifficultyAndOverrides(t *testing.T) {
	_, _ = setup(t, 1)
	SetDifficulty(config.DifficultyEasy)
	SetConfig(config.DefaultBreachConfig(), config.Overrides{GridSize: 5})

	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 2
	g.Reset(cfg)

	snap := g.Snapshot()
	if snap.Puzzle.BufferCapacity != 15 || snap.Puzzle.Grid.Size != 5 {
		t.Errorf("buffer %d grid %d, want 15 and 5", snap.Puzzle.BufferCapacity, snap.Puzzle.Grid.Size)
	}
	if snap.Difficulty != "easy" {
		t.Errorf("Difficulty = %q", snap.Difficulty)
	}
}

func TestInvalidConfigShowsError(t *testing.T) {
	_, _ = setup(t, 1)
	SetConfig(config.DefaultBreachConfig(), config.Overrides{GridSize: 2})

	g := New()
	g.Reset(core.DefaultConfig())

	if g.Err() == nil || g.Session() != nil {
		t.Fatal("grid size 2 should not deal a puzzle")
	}
	if g.Snapshot().Phase != PhaseNoPuzzle {
		t.Errorf("Phase = %s", g.Snapshot().Phase)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "grid.size") {
		t.Errorf("error not rendered:\n%s", screen.String())
	}

	if res := g.Step(actions(core.ActionBack)); !res.State.GameOver {
		t.Error("Back should leave the error screen")
	}
}

func TestTooSmall(t *testing.T) {
	_, _ = setup(t, 1)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60, Seed: 1})

	if g.Snapshot().Phase != PhaseTooSmall || !g.State().Paused {
		t.Errorf("Phase = %s, want %s", g.Snapshot().Phase, PhaseTooSmall)
	}
	g.Step(clickCell(g.Session().Layout().Path[0]))
	if g.Session().BufferUsed() != 0 {
		t.Error("input accepted on a too-small screen")
	}
}

func TestRender(t *testing.T) {
	g, _ := setup(t, 42)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "BREACH PROTOCOL") {
		t.Errorf("title missing:\n%s", out)
	}

	layout := g.Session().Layout()
	x, y := cellOrigin(puzzle.C(0, 0))
	if screen.Get(x, y) != '[' || screen.Get(x+cellWidth-1, y) != ']' {
		t.Error("cursor brackets missing at (0, 0)")
	}
	code := string(layout.Grid.Code(puzzle.C(3, 2)))
	cx, cy := cellOrigin(puzzle.C(3, 2))
	if got := string([]rune{screen.Get(cx+1, cy), screen.Get(cx+2, cy)}); got != code {
		t.Errorf("cell (3, 2) = %q, want %q", got, code)
	}

	// Row 0 is highlighted before the first move.
	if c := screen.GetCell(cx+1, cellY(0)); c.Color != core.ColorWhite {
		t.Errorf("row 0 color = %d, want white", c.Color)
	}
	if c := screen.GetCell(cx+1, cy); c.Color != core.ColorGreen {
		t.Errorf("row 2 color = %d, want green", c.Color)
	}
}

func TestRenderBanner(t *testing.T) {
	g, _ := setup(t, 42)
	g.Step(actions(core.ActionBack))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "BREACH FAILED") || !strings.Contains(out, "cancelled") {
		t.Errorf("failure banner missing:\n%s", out)
	}
}

func TestRenderBannerScoreAndHint(t *testing.T) {
	g, _ := setup(t, 42)
	g.Step(actions(core.ActionBack))
	for !g.State().GameOver {
		g.Step(empty())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Score: 0", "sequences uploaded", "r: new puzzle"} {
		if !strings.Contains(out, want) {
			t.Errorf("banner missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTooSmallLocalized(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{"en", []string{"Window too small", "Need 64x18, have 30x10"}},
		{"zh_CN", []string{"窗口太小", "需要 64x18，当前 30x10"}},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			setup(t, 1)
			cfg := config.DefaultBreachConfig()
			cfg.Display.Locale = tt.locale
			SetConfig(cfg, config.Overrides{})
			t.Cleanup(func() { _ = i18n.SetLocale(i18n.DefaultLocale) })

			g := New()
			g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60, Seed: 1})
			screen := core.NewScreen(30, 10)
			g.Render(screen)
			out := screen.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCellAtRoundTrip(t *testing.T) {
	g, _ := setup(t, 1)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			c := puzzle.C(x, y)
			px, py := cellOrigin(c)
			for dx := 0; dx < cellWidth; dx++ {
				got, ok := g.cellAt(px+dx, py)
				if !ok || got != c {
					t.Fatalf("cellAt(%d, %d) = %v, %v, want %v", px+dx, py, got, ok, c)
				}
			}
		}
	}
	if _, ok := g.cellAt(boxX, boxY); ok {
		t.Error("the box border should not map to a cell")
	}
}

func cellY(row int) int {
	_, y := cellOrigin(puzzle.C(0, row))
	return y
}

func TestResizeKeepsPuzzle(t *testing.T) {
	g, _ := setup(t, 13)
	before := g.Session()

	g.Resize(20, 8)
	if g.Snapshot().Phase != PhaseTooSmall {
		t.Errorf("Phase = %s, want %s", g.Snapshot().Phase, PhaseTooSmall)
	}
	g.Resize(100, 30)
	if g.Snapshot().Phase != PhaseReady {
		t.Errorf("Phase = %s, want %s", g.Snapshot().Phase, PhaseReady)
	}
	if g.Session() != before {
		t.Error("Resize dealt a new puzzle")
	}
}
