package core

// Layout is everything generated for a session before play starts.
type Layout struct {
	Grid      *Grid
	Pool      []Code
	Path      Path
	Scheme    Scheme
	Sequences []Sequence
}

// GenParams configures puzzle generation.
type GenParams struct {
	GridSize    int
	MinPoolSize int
	MaxPoolSize int
}

// DefaultGenParams returns the standard 6×6 generation settings.
func DefaultGenParams() GenParams {
	return GenParams{
		GridSize:    6,
		MinPoolSize: MinPoolSize,
		MaxPoolSize: MaxPoolSize,
	}
}

// FillGrid fills every cell independently and uniformly from pool.
func FillGrid(rng Rand, size int, pool []Code) *Grid {
	g := NewGrid(size)
	for i := range g.Cells {
		g.Cells[i].Code = pool[rng.Intn(len(pool))]
	}
	return g
}

// Generate builds a solvable layout: random pool, random fill, a synthesized path
// stamped with known codes, and target sequences cut from the path codes.
func Generate(rng Rand, p GenParams) (*Layout, error) {
	pool := SamplePool(rng, Alphabet, p.MinPoolSize, p.MaxPoolSize)
	grid := FillGrid(rng, p.GridSize, pool)

	path, err := SynthesizePath(rng, p.GridSize)
	if err != nil {
		return nil, err
	}
	StampPath(grid, path, pool)

	scheme := PickScheme(rng)
	return &Layout{
		Grid:      grid,
		Pool:      pool,
		Path:      path,
		Scheme:    scheme,
		Sequences: Partition(grid.CodesAt(path), scheme),
	}, nil
}
