package storage

import (
	"github.com/charmbracelet/log"

	breach "github.com/vovakirdan/tui-breach/internal/games/breach/core"
)

// GameID is the scores table key for breach puzzles.
const GameID = "breach"

// Sink persists session outcomes to breach_results. Failures are logged and
// swallowed so a broken database never interrupts play.
type Sink struct {
	store  *Store
	logger *log.Logger

	// Describes the puzzle currently being played.
	seed       int64
	difficulty string
	gridSize   int
}

// NewSink creates a sink writing to store. logger may be nil.
func NewSink(store *Store, logger *log.Logger) *Sink {
	if logger == nil {
		logger = log.Default()
	}
	return &Sink{store: store, logger: logger}
}

// PuzzleStarted records which puzzle the next outcome belongs to.
func (k *Sink) PuzzleStarted(seed int64, difficulty string, gridSize int) {
	k.seed = seed
	k.difficulty = difficulty
	k.gridSize = gridSize
}

// ReportOutcome stores o together with the current puzzle description.
func (k *Sink) ReportOutcome(o breach.Outcome) {
	entry := ResultEntry{
		Seed:       k.seed,
		Difficulty: k.difficulty,
		GridSize:   k.gridSize,
		Outcome:    o,
		Score:      o.Score(),
	}

	if _, err := k.store.SaveResult(entry); err != nil {
		k.logger.Error("save result", "err", err)
		return
	}
	k.logger.Info("outcome saved",
		"seed", k.seed,
		"success", o.Success,
		"reason", o.Reason,
		"buffer", o.BufferUsed,
		"sequences", o.SequencesCompleted,
		"score", entry.Score,
	)
}

var _ breach.OutcomeSink = (*Sink)(nil)
