package storage

import (
	"fmt"
	"time"

	breach "github.com/vovakirdan/tui-breach/internal/games/breach/core"
)

// ResultEntry is one finished breach puzzle.
type ResultEntry struct {
	ID         int64
	Seed       int64
	Difficulty string
	GridSize   int
	Outcome    breach.Outcome
	Score      int
	CreatedAt  time.Time
}

// ResultStats aggregates the breach_results table.
type ResultStats struct {
	Played       int
	Succeeded    int
	ByReason     map[breach.Reason]int // Failures only
	BestScore    int
	AvgBufferUse float64 // Mean buffer_used of successful runs
}

// SuccessRate returns the share of successful runs in [0, 1].
func (r ResultStats) SuccessRate() float64 {
	if r.Played == 0 {
		return 0
	}
	return float64(r.Succeeded) / float64(r.Played)
}

// SaveResult records a finished puzzle.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(e ResultEntry) (int64, error) {
	o := e.Outcome
	res, err := s.db.Exec(
		`INSERT INTO breach_results
		 (seed, difficulty, grid_size, success, reason, buffer_used, buffer_capacity,
		  time_remaining_ms, sequences_completed, sequence_count, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Seed,
		e.Difficulty,
		e.GridSize,
		o.Success,
		string(o.Reason),
		o.BufferUsed,
		o.BufferCapacity,
		o.TimeRemaining.Milliseconds(),
		o.SequencesCompleted,
		o.SequenceCount,
		e.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent puzzles, newest first.
func (s *Store) RecentResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, difficulty, grid_size, success, reason, buffer_used, buffer_capacity,
		        time_remaining_ms, sequences_completed, sequence_count, score, created_at
		 FROM breach_results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var reason string
		var remainingMS int64
		var createdAt any

		if err := rows.Scan(
			&e.ID,
			&e.Seed,
			&e.Difficulty,
			&e.GridSize,
			&e.Outcome.Success,
			&reason,
			&e.Outcome.BufferUsed,
			&e.Outcome.BufferCapacity,
			&remainingMS,
			&e.Outcome.SequencesCompleted,
			&e.Outcome.SequenceCount,
			&e.Score,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		e.Outcome.Reason = breach.Reason(reason)
		e.Outcome.TimeRemaining = time.Duration(remainingMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		results = append(results, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats aggregates every stored puzzle.
func (s *Store) Stats() (ResultStats, error) {
	stats := ResultStats{ByReason: make(map[breach.Reason]int)}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(success), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(CASE WHEN success = 1 THEN buffer_used END), 0)
		 FROM breach_results`,
	).Scan(&stats.Played, &stats.Succeeded, &stats.BestScore, &stats.AvgBufferUse)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get result stats: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT reason, COUNT(*) FROM breach_results WHERE success = 0 GROUP BY reason`,
	)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot group failures: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var reason string
		var n int
		if err := rows.Scan(&reason, &n); err != nil {
			return stats, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats.ByReason[breach.Reason(reason)] = n
	}

	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearResults deletes every stored puzzle.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM breach_results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
