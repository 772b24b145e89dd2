// Package breach adapts the puzzle core to the platform's Game interface: it owns
// the cursor, maps clicks to cells, drives the countdown from the tick loop and
// draws the matrix, buffer and target sequences.
package breach

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breach/internal/config"
	"github.com/vovakirdan/tui-breach/internal/core"
	puzzle "github.com/vovakirdan/tui-breach/internal/games/breach/core"
	"github.com/vovakirdan/tui-breach/internal/i18n"
	"github.com/vovakirdan/tui-breach/internal/registry"
)

const (
	// BannerTicks is how long the outcome banner stays up before GameOver (2s at 60fps).
	BannerTicks = 120
	// FlashTicks is how long a rejected cell stays red.
	FlashTicks = 20
)

// PuzzleObserver is implemented by outcome sinks that also want to know which
// puzzle was dealt before its outcome arrives.
type PuzzleObserver interface {
	PuzzleStarted(seed int64, difficulty string, gridSize int)
}

// Game implements the breach puzzle screen.
type Game struct {
	rng     *rand.Rand
	tick    uint64
	seed    int64
	tickDur time.Duration // Simulated time per Step

	cfg     config.BreachConfig
	preset  config.DifficultyPreset
	session *puzzle.Session
	err     error // Config or generation failure; nothing to play

	cursor puzzle.Coord

	// Screen dimensions
	screenW int
	screenH int

	paused      bool
	tooSmall    bool
	flashTicks  int
	flashCell   puzzle.Coord
	flashMsg    string
	lastMatch   puzzle.MatchResult
	outcome     puzzle.Outcome
	hasOutcome  bool
	bannerTicks int
	gameOver    bool
}

// Package-level variables for config
var (
	baseConfig  = config.DefaultBreachConfig()
	overrides   config.Overrides
	difficulty  = config.DifficultyCustom
	outcomeSink puzzle.OutcomeSink
	logger      = log.Default()
)

// SetConfig sets the loaded config and the command-line overrides applied on top
// of the difficulty preset.
func SetConfig(cfg config.BreachConfig, o config.Overrides) {
	baseConfig = cfg
	overrides = o
}

// SetDifficulty sets the preset used by the next Reset.
func SetDifficulty(p config.DifficultyPreset) {
	difficulty = p
}

// GetDifficulty returns the currently selected preset.
func GetDifficulty() config.DifficultyPreset {
	return difficulty
}

// SetOutcomeSink sets where finished puzzles are reported. nil disables reporting.
func SetOutcomeSink(s puzzle.OutcomeSink) {
	outcomeSink = s
}

// SetLogger replaces the package logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// EffectiveConfig returns the base config with the preset and overrides applied.
func EffectiveConfig() config.BreachConfig {
	cfg := baseConfig
	config.ApplyBreachPreset(&cfg, difficulty)
	overrides.Apply(&cfg)
	return cfg
}

// New creates a new breach game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("breach", func() registry.Game {
		return New()
	})
}

var (
	_ registry.Resizer = (*Game)(nil)
	_ registry.Aborter = (*Game)(nil)
)

// ID returns the game identifier.
func (g *Game) ID() string {
	return "breach"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Breach Protocol"
}

// Reset deals a new puzzle.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickDur = cfg.TickDuration()
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.cfg = EffectiveConfig()
	g.preset = difficulty
	g.session = nil
	g.err = nil
	g.cursor = puzzle.C(0, 0)
	g.paused = false
	g.flashTicks = 0
	g.flashMsg = ""
	g.lastMatch = puzzle.MatchResult{}
	g.outcome = puzzle.Outcome{}
	g.hasOutcome = false
	g.bannerTicks = 0
	g.gameOver = false

	if err := i18n.SetLocale(g.cfg.Display.Locale); err != nil {
		logger.Warn("locale unavailable, using default", "locale", g.cfg.Display.Locale, "err", err)
		_ = i18n.SetLocale(i18n.DefaultLocale)
	}

	if err := g.cfg.Validate(); err != nil {
		g.err = err
		logger.Error("cannot start puzzle", "err", err)
		g.checkScreenSize()
		return
	}

	if obs, ok := outcomeSink.(PuzzleObserver); ok {
		obs.PuzzleStarted(g.seed, string(g.preset), g.cfg.Grid.Size)
	}

	session, err := puzzle.NewSession(g.rng, g.cfg.ToSessionConfig(), puzzle.OutcomeFunc(g.onOutcome))
	if err != nil {
		g.err = err
		logger.Error("cannot generate puzzle", "err", err)
		g.checkScreenSize()
		return
	}
	g.session = session

	layout := session.Layout()
	logger.Debug("puzzle dealt",
		"seed", g.seed,
		"difficulty", g.preset,
		"grid", g.cfg.Grid.Size,
		"pool", len(layout.Pool),
		"scheme", layout.Scheme,
		"buffer", g.cfg.Buffer.Capacity,
		"time", g.cfg.ToSessionConfig().TimeLimit,
	)

	g.checkScreenSize()
}

// onOutcome receives the session's single outcome and forwards it.
func (g *Game) onOutcome(o puzzle.Outcome) {
	g.outcome = o
	g.hasOutcome = true
	logger.Info("puzzle finished", "success", o.Success, "reason", o.Reason, "score", o.Score())
	if outcomeSink != nil {
		outcomeSink.ReportOutcome(o)
	}
}

// checkScreenSize checks if the screen is large enough for the current puzzle.
func (g *Game) checkScreenSize() {
	minW, minH := minScreenSize(g.cfg.Grid.Size, g.cfg.Buffer.Capacity)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize adapts to a new screen size without dealing a new puzzle.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Abort ends an unfinished puzzle as cancelled, so a run left with quit is
// reported like one aborted with esc.
func (g *Game) Abort() {
	if g.session == nil || g.session.Status().Terminal() {
		return
	}
	g.session.Cancel()
	logger.Debug("puzzle abandoned", "seed", g.seed)
}

// Session returns the running puzzle, or nil if none could be dealt.
func (g *Game) Session() *puzzle.Session {
	return g.session
}

// Err returns why no puzzle could be dealt.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.session == nil {
		if in.Has(core.ActionBack) {
			g.gameOver = true
		}
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Outcome banner, then GameOver
	if g.session.Status().Terminal() {
		if !g.gameOver {
			g.bannerTicks++
			if g.bannerTicks >= BannerTicks || in.Has(core.ActionConfirm) {
				g.gameOver = true
			}
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if in.Has(core.ActionBack) {
		g.session.Cancel()
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionConfirm) {
		g.submit(g.cursor)
	}
	for _, p := range in.Clicks {
		if g.session.Status().Terminal() {
			break
		}
		if c, ok := g.cellAt(p.X, p.Y); ok {
			g.cursor = c
			g.submit(c)
		}
	}

	g.session.AdvanceTime(g.tickDur)

	return core.StepResult{State: g.State()}
}

// moveCursor applies one cursor step per direction, clamped to the grid.
func (g *Game) moveCursor(in core.InputFrame) {
	size := g.cfg.Grid.Size
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y--
	case in.Has(core.ActionDown):
		g.cursor.Y++
	case in.Has(core.ActionLeft):
		g.cursor.X--
	case in.Has(core.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, size-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, size-1)
}

// submit sends c to the session and records rejections for the flash effect.
func (g *Game) submit(c puzzle.Coord) {
	res, err := g.session.Submit(c)
	if err == nil {
		g.lastMatch = res.Match
		g.flashTicks = 0
		g.flashMsg = ""
		return
	}
	if errors.Is(err, puzzle.ErrSessionOver) || errors.Is(err, puzzle.ErrBufferExhausted) {
		return
	}
	g.flashTicks = FlashTicks
	g.flashCell = c
	g.flashMsg = rejectionMessage(err)
	logger.Debug("selection rejected", "cell", c, "err", err)
}

// rejectionMessage maps a validator error to a player-facing string.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, puzzle.ErrInvalidFirstMove):
		return i18n.Get("REJECT_INVALID_FIRST_MOVE")
	case errors.Is(err, puzzle.ErrAxisViolation):
		return i18n.Get("REJECT_AXIS_VIOLATION")
	case errors.Is(err, puzzle.ErrAlreadySelected):
		return i18n.Get("REJECT_ALREADY_SELECTED")
	case errors.Is(err, puzzle.ErrOutOfBounds):
		return i18n.Get("REJECT_OUT_OF_BOUNDS")
	default:
		return err.Error()
	}
}

// reasonMessage maps a failure reason to a player-facing string.
func reasonMessage(r puzzle.Reason) string {
	switch r {
	case puzzle.ReasonBufferExhausted:
		return i18n.Get("REASON_BUFFER_EXHAUSTED")
	case puzzle.ReasonTimeExpired:
		return i18n.Get("REASON_TIME_EXPIRED")
	case puzzle.ReasonUserCancelled:
		return i18n.Get("REASON_USER_CANCELLED")
	default:
		return string(r)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.hasOutcome {
		score = g.outcome.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
