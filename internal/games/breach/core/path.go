package core

import "errors"

// MinGridSize is the smallest grid that can hold a PathLength walk of distinct cells.
const MinGridSize = 3

// ErrGridTooSmall is returned when a grid cannot fit a full solution path.
var ErrGridTooSmall = errors.New("grid too small for a solution path")

// SynthesizePath builds a walk of PathLength distinct cells starting in row 0.
//
// The first step keeps the column and changes the row, the next keeps the row and
// changes the column, and so on. This is the same alternation the selection rules
// enforce after an entry-row pick, so following the path is always legal.
// Candidates on the varying axis exclude the current value and any already visited
// cell; a walk that runs out of candidates backtracks.
func SynthesizePath(rng Rand, size int) (Path, error) {
	if size < MinGridSize {
		return nil, ErrGridTooSmall
	}

	start := rng.Intn(size)
	for i := 0; i < size; i++ {
		col := (start + i) % size
		path := Path{C(col, 0)}
		visited := map[Coord]bool{path[0]: true}
		if extendPath(rng, size, path, visited, &path) {
			return path, nil
		}
	}
	return nil, ErrGridTooSmall
}

// extendPath grows path depth-first until it reaches PathLength.
func extendPath(rng Rand, size int, path Path, visited map[Coord]bool, out *Path) bool {
	if len(path) == PathLength {
		*out = path
		return true
	}

	cur := path[len(path)-1]
	varyRow := len(path)%2 == 1

	candidates := make([]Coord, 0, size-1)
	for v := 0; v < size; v++ {
		next := C(v, cur.Y)
		if varyRow {
			next = C(cur.X, v)
		}
		if next == cur || visited[next] {
			continue
		}
		candidates = append(candidates, next)
	}
	shuffleCoords(rng, candidates)

	for _, next := range candidates {
		visited[next] = true
		if extendPath(rng, size, append(path, next), visited, out) {
			return true
		}
		delete(visited, next)
	}
	return false
}

// shuffleCoords performs a Fisher-Yates shuffle using rng.
func shuffleCoords(rng Rand, cs []Coord) {
	for i := len(cs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cs[i], cs[j] = cs[j], cs[i]
	}
}

// StampPath overwrites the grid along path with pool codes, index i taking
// pool[i % len(pool)]. The codes a player collects by following the path are
// therefore fixed regardless of the random fill.
func StampPath(g *Grid, path Path, pool []Code) {
	if len(pool) == 0 {
		return
	}
	for i, c := range path {
		g.Set(c, pool[i%len(pool)])
	}
}

// ValidatePath checks the structural rules of a solution path: entry in row 0,
// each step changing exactly one coordinate along the expected axis, no repeats.
func ValidatePath(path Path, size int) error {
	if len(path) == 0 {
		return errors.New("path is empty")
	}
	if path[0].Y != 0 {
		return errors.New("path must start in row 0")
	}
	seen := make(map[Coord]bool, len(path))
	for i, c := range path {
		if c.X < 0 || c.X >= size || c.Y < 0 || c.Y >= size {
			return errors.New("path leaves the grid")
		}
		if seen[c] {
			return errors.New("path revisits a cell")
		}
		seen[c] = true
		if i == 0 {
			continue
		}
		prev := path[i-1]
		if !prev.SharesOneAxis(c) {
			return errors.New("path step must change exactly one coordinate")
		}
		varyRow := i%2 == 1
		if varyRow && prev.X != c.X {
			return errors.New("path step must keep the column")
		}
		if !varyRow && prev.Y != c.Y {
			return errors.New("path step must keep the row")
		}
	}
	return nil
}
