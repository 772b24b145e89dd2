package core

// Alphabet is the fixed set of tokens matrix codes are drawn from.
var Alphabet = []Code{"1C", "BD", "55", "E9", "7A", "FF", "A1", "C3", "D4", "E2", "F7", "0B"}

// Pool size bounds for a single session.
const (
	MinPoolSize = 6
	MaxPoolSize = 8
)

// SamplePool picks a pool size uniformly in [minSize, maxSize] and draws that many
// distinct codes from alphabet. Duplicates are redrawn until the pool is full.
// Sizes are clamped to the alphabet length.
func SamplePool(rng Rand, alphabet []Code, minSize, maxSize int) []Code {
	if maxSize > len(alphabet) {
		maxSize = len(alphabet)
	}
	if minSize > maxSize {
		minSize = maxSize
	}
	if minSize < 1 {
		minSize = 1
	}

	size := minSize + rng.Intn(maxSize-minSize+1)
	pool := make([]Code, 0, size)
	seen := make(map[Code]bool, size)
	for len(pool) < size {
		code := alphabet[rng.Intn(len(alphabet))]
		if seen[code] {
			continue
		}
		seen[code] = true
		pool = append(pool, code)
	}
	return pool
}
