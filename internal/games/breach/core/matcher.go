package core

// Progress is a cursor into a target sequence: the number of codes matched so far,
// or Completed once the whole sequence has been matched.
type Progress int

// Completed marks a finished sequence. It is never evaluated again.
const Completed Progress = -1

// Effect describes what a submitted code did to one sequence.
type Effect uint8

const (
	EffectSkipped   Effect = iota // Sequence was already completed
	EffectAdvanced                // Code matched the cursor position
	EffectCompleted               // Code matched the last position
	EffectRestarted               // Code matched the first position; cursor set to 1
	EffectEcho                    // Code repeated the previous position; cursor kept
	EffectReset                   // No match; cursor back to 0
)

// String returns the string representation of an effect.
func (e Effect) String() string {
	switch e {
	case EffectSkipped:
		return "skipped"
	case EffectAdvanced:
		return "advanced"
	case EffectCompleted:
		return "completed"
	case EffectRestarted:
		return "restarted"
	case EffectEcho:
		return "echo"
	case EffectReset:
		return "reset"
	default:
		return "unknown"
	}
}

// MatchResult is the outcome of feeding one code to every sequence.
type MatchResult struct {
	Effects   []Effect // One per sequence
	Completed []int    // Indices of sequences completed by this code
}

// Matcher tracks progress of every target sequence.
type Matcher struct {
	sequences []Sequence
	progress  []Progress
}

// NewMatcher creates a matcher with all cursors at 0.
func NewMatcher(sequences []Sequence) *Matcher {
	return &Matcher{
		sequences: sequences,
		progress:  make([]Progress, len(sequences)),
	}
}

// Sequences returns the target sequences.
func (m *Matcher) Sequences() []Sequence {
	return m.sequences
}

// Progress returns a copy of the per-sequence cursors.
func (m *Matcher) Progress() []Progress {
	out := make([]Progress, len(m.progress))
	copy(out, m.progress)
	return out
}

// CompletedCount returns how many sequences are finished.
func (m *Matcher) CompletedCount() int {
	n := 0
	for _, p := range m.progress {
		if p == Completed {
			n++
		}
	}
	return n
}

// AllCompleted reports whether every sequence is finished.
func (m *Matcher) AllCompleted() bool {
	return m.CompletedCount() == len(m.progress)
}

// Feed evaluates code against every unfinished sequence independently.
func (m *Matcher) Feed(code Code) MatchResult {
	res := MatchResult{Effects: make([]Effect, len(m.sequences))}
	for i, seq := range m.sequences {
		next, effect := step(seq, m.progress[i], code)
		m.progress[i] = next
		res.Effects[i] = effect
		if effect == EffectCompleted {
			res.Completed = append(res.Completed, i)
		}
	}
	return res
}

// step applies one code to one sequence. Branches are checked in priority order:
// exact match, restart on the first code, echo of the previous code, reset.
func step(seq Sequence, p Progress, code Code) (Progress, Effect) {
	if p == Completed || len(seq) == 0 {
		return p, EffectSkipped
	}

	switch {
	case code == seq[p]:
		p++
		if int(p) == len(seq) {
			return Completed, EffectCompleted
		}
		return p, EffectAdvanced
	case code == seq[0]:
		return 1, EffectRestarted
	case p > 0 && code == seq[p-1]:
		return p, EffectEcho
	default:
		return 0, EffectReset
	}
}
