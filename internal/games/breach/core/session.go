package core

import (
	"errors"
	"time"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrSessionOver is returned for submissions after Success or Failure.
	ErrSessionOver = errors.New("session is over")
	// ErrBufferExhausted is returned when a submission arrives with no buffer left.
	// Unlike the rejections, it ends the session.
	ErrBufferExhausted = errors.New("buffer exhausted")
	// ErrEmptyLayout is returned when a layout has no grid or no sequences.
	ErrEmptyLayout = errors.New("layout has no grid or sequences")
)

// Config holds the per-session settings read once at start.
type Config struct {
	Gen            GenParams
	TimeLimit      time.Duration
	BufferCapacity int
}

// DefaultConfig returns a 6×6 session with 30 seconds and 8 buffer slots.
func DefaultConfig() Config {
	return Config{
		Gen:            DefaultGenParams(),
		TimeLimit:      30 * time.Second,
		BufferCapacity: 8,
	}
}

// SubmitResult describes an accepted selection.
type SubmitResult struct {
	Selection Selection
	Match     MatchResult
	Status    Status
}

// Session is one play-through of the puzzle. It is single-threaded: the host calls
// Submit for resolved input events and AdvanceTime once per frame.
type Session struct {
	cfg     Config
	layout  *Layout
	grid    *Grid
	matcher *Matcher
	sink    OutcomeSink

	selected   mapset.Set[Coord]
	selections []Selection
	axis       Axis
	anchor     Coord

	bufferUsed int
	timerArmed bool
	remaining  time.Duration

	status   Status
	reason   Reason
	reported bool
}

// NewSession generates a fresh layout and starts a session on it.
// sink may be nil.
func NewSession(rng Rand, cfg Config, sink OutcomeSink) (*Session, error) {
	layout, err := Generate(rng, cfg.Gen)
	if err != nil {
		return nil, err
	}
	return NewSessionFromLayout(layout, cfg, sink)
}

// NewSessionFromLayout starts a session on a prepared layout.
// The layout's grid is copied; the caller keeps ownership of the original.
func NewSessionFromLayout(layout *Layout, cfg Config, sink OutcomeSink) (*Session, error) {
	if layout == nil || layout.Grid == nil || len(layout.Sequences) == 0 {
		return nil, ErrEmptyLayout
	}
	return &Session{
		cfg:       cfg,
		layout:    layout,
		grid:      layout.Grid.Clone(),
		matcher:   NewMatcher(layout.Sequences),
		sink:      sink,
		selected:  mapset.New[Coord](),
		axis:      AxisNone,
		remaining: cfg.TimeLimit,
		status:    StatusNotStarted,
	}, nil
}

// Layout returns the generated layout, including the solution path.
func (s *Session) Layout() *Layout {
	return s.layout
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Reason returns the failure reason, or ReasonNone.
func (s *Session) Reason() Reason {
	return s.reason
}

// BufferUsed returns the number of accepted selections.
func (s *Session) BufferUsed() int {
	return s.bufferUsed
}

// TimeRemaining returns the countdown value.
func (s *Session) TimeRemaining() time.Duration {
	return s.remaining
}

// TimerArmed reports whether the countdown is running.
func (s *Session) TimerArmed() bool {
	return s.timerArmed
}

// Progress returns the per-sequence cursors.
func (s *Session) Progress() []Progress {
	return s.matcher.Progress()
}

// Selections returns accepted selections in arrival order.
func (s *Session) Selections() []Selection {
	out := make([]Selection, len(s.selections))
	copy(out, s.selections)
	return out
}

func (s *Session) validationState() ValidationState {
	return ValidationState{
		Size:     s.grid.Size,
		Axis:     s.axis,
		Anchor:   s.anchor,
		Started:  len(s.selections) > 0,
		Selected: s.selected,
	}
}

// ValidMoves returns the cells the next submission may target.
// It is empty once the session is over.
func (s *Session) ValidMoves() []Coord {
	if s.status.Terminal() {
		return nil
	}
	return ValidMoves(s.validationState())
}

// Submit processes a selection at c.
//
// Rejections (ErrOutOfBounds, ErrAlreadySelected, ErrInvalidFirstMove,
// ErrAxisViolation) leave the session untouched. ErrBufferExhausted ends the
// session with a failure. ErrSessionOver means the call was a no-op.
func (s *Session) Submit(c Coord) (SubmitResult, error) {
	if s.status.Terminal() {
		return SubmitResult{Status: s.status}, ErrSessionOver
	}
	if s.bufferUsed >= s.cfg.BufferCapacity {
		s.fail(ReasonBufferExhausted)
		return SubmitResult{Status: s.status}, ErrBufferExhausted
	}
	if err := Validate(c, s.validationState()); err != nil {
		return SubmitResult{Status: s.status}, err
	}

	sel := Selection{At: c, Code: s.grid.Code(c)}
	s.bufferUsed++
	s.selected.Put(c)
	s.selections = append(s.selections, sel)
	s.grid.consume(c)
	s.axis = s.axis.Next()
	s.anchor = c

	if s.status == StatusNotStarted {
		s.timerArmed = true
		s.remaining = s.cfg.TimeLimit
		s.status = StatusInProgress
	}

	match := s.matcher.Feed(sel.Code)

	switch {
	case s.matcher.AllCompleted():
		s.succeed()
	case s.bufferUsed >= s.cfg.BufferCapacity:
		s.fail(ReasonBufferExhausted)
	}

	return SubmitResult{Selection: sel, Match: match, Status: s.status}, nil
}

// AdvanceTime moves the countdown forward by d. It has no effect before the first
// accepted selection or after the session ends. Reaching zero fails the session
// with ReasonTimeExpired.
func (s *Session) AdvanceTime(d time.Duration) {
	if d <= 0 || !s.timerArmed || s.status != StatusInProgress {
		return
	}
	s.remaining -= d
	if s.remaining <= 0 {
		s.remaining = 0
		s.fail(ReasonTimeExpired)
	}
}

// Cancel ends an unfinished session with ReasonUserCancelled.
// Returns false if the session was already over.
func (s *Session) Cancel() bool {
	if s.status.Terminal() {
		return false
	}
	s.fail(ReasonUserCancelled)
	return true
}

func (s *Session) succeed() {
	s.status = StatusSuccess
	s.reason = ReasonNone
	s.timerArmed = false
	s.report()
}

func (s *Session) fail(reason Reason) {
	s.status = StatusFailure
	s.reason = reason
	s.timerArmed = false
	s.report()
}

// Outcome returns the final outcome. ok is false while the session is running.
func (s *Session) Outcome() (o Outcome, ok bool) {
	if !s.status.Terminal() {
		return Outcome{}, false
	}
	return Outcome{
		Success:            s.status == StatusSuccess,
		Reason:             s.reason,
		BufferUsed:         s.bufferUsed,
		BufferCapacity:     s.cfg.BufferCapacity,
		TimeRemaining:      s.remaining,
		SequencesCompleted: s.matcher.CompletedCount(),
		SequenceCount:      len(s.matcher.Sequences()),
	}, true
}

func (s *Session) report() {
	if s.reported {
		return
	}
	s.reported = true
	if s.sink == nil {
		return
	}
	o, _ := s.Outcome()
	s.sink.ReportOutcome(o)
}
