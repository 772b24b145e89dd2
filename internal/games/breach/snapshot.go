package breach

import (
	puzzle "github.com/vovakirdan/tui-breach/internal/games/breach/core"
)

// Phase represents what the screen is showing.
type Phase string

const (
	PhaseNoPuzzle Phase = "no_puzzle" // Config or generation failed
	PhaseTooSmall Phase = "paused_small_window"
	PhaseReady    Phase = "ready" // Waiting for the first selection
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseBanner   Phase = "banner" // Outcome shown, GameOver pending
	PhaseGameOver Phase = "game_over"
)

// Snapshot captures the adapter state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Seed        int64
	Difficulty  string
	Phase       Phase
	Cursor      puzzle.Coord
	FlashTicks  int
	LastEffects []puzzle.Effect
	BannerTicks int
	Score       int
	Puzzle      puzzle.Snapshot // Zero when Phase is PhaseNoPuzzle
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        g.tick,
		Seed:        g.seed,
		Difficulty:  string(g.preset),
		Cursor:      g.cursor,
		FlashTicks:  g.flashTicks,
		LastEffects: append([]puzzle.Effect(nil), g.lastMatch.Effects...),
		BannerTicks: g.bannerTicks,
		Score:       g.State().Score,
	}

	if g.session == nil {
		snap.Phase = PhaseNoPuzzle
		return snap
	}
	snap.Puzzle = g.session.Snapshot()

	switch {
	case g.gameOver:
		snap.Phase = PhaseGameOver
	case snap.Puzzle.Status.Terminal():
		snap.Phase = PhaseBanner
	case g.tooSmall:
		snap.Phase = PhaseTooSmall
	case g.paused:
		snap.Phase = PhasePaused
	case snap.Puzzle.Status == puzzle.StatusNotStarted:
		snap.Phase = PhaseReady
	default:
		snap.Phase = PhasePlaying
	}
	return snap
}
