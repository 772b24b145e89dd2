package core

// Scheme is a list of sequence lengths that sum to PathLength.
type Scheme []int

// Schemes are the partitions a session can use, chosen uniformly.
var Schemes = []Scheme{
	{2, 2, 2},
	{3, 3},
	{2, 4},
}

// Sequence is an ordered list of codes the player must reproduce.
type Sequence []Code

// PickScheme chooses one of Schemes uniformly.
func PickScheme(rng Rand) Scheme {
	return Schemes[rng.Intn(len(Schemes))]
}

// Partition slices codes into consecutive runs of the scheme's lengths.
// Concatenating the result reproduces codes in order. Runs that would extend past
// the end of codes are truncated; empty runs are dropped.
func Partition(codes []Code, scheme Scheme) []Sequence {
	sequences := make([]Sequence, 0, len(scheme))
	pos := 0
	for _, n := range scheme {
		end := pos + n
		if end > len(codes) {
			end = len(codes)
		}
		if end <= pos {
			break
		}
		seq := make(Sequence, end-pos)
		copy(seq, codes[pos:end])
		sequences = append(sequences, seq)
		pos = end
	}
	return sequences
}
