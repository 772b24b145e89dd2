package core

import "time"

// Status is the lifecycle state of a session.
type Status uint8

const (
	StatusNotStarted Status = iota // No selection accepted yet
	StatusInProgress
	StatusSuccess
	StatusFailure
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is absorbing.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailure
}

// Reason explains a failure.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonBufferExhausted Reason = "buffer_exhausted"
	ReasonTimeExpired     Reason = "time_expired"
	ReasonUserCancelled   Reason = "user_cancelled"
)

// Outcome is the final signal a session emits exactly once.
type Outcome struct {
	Success            bool
	Reason             Reason // ReasonNone on success
	BufferUsed         int
	BufferCapacity     int
	TimeRemaining      time.Duration
	SequencesCompleted int
	SequenceCount      int
}

// Score converts an outcome into scoreboard points.
// Success earns 100 per sequence, 10 per unused buffer slot and 1 per whole second
// left; failure keeps 25 per completed sequence.
func (o Outcome) Score() int {
	if !o.Success {
		return 25 * o.SequencesCompleted
	}
	unused := o.BufferCapacity - o.BufferUsed
	if unused < 0 {
		unused = 0
	}
	return 100*o.SequenceCount + 10*unused + int(o.TimeRemaining/time.Second)
}

// OutcomeSink receives the final outcome of a session.
type OutcomeSink interface {
	ReportOutcome(Outcome)
}

// OutcomeFunc adapts a function to OutcomeSink.
type OutcomeFunc func(Outcome)

// ReportOutcome calls f(o).
func (f OutcomeFunc) ReportOutcome(o Outcome) {
	f(o)
}
