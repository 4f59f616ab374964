package percolation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolate/unionfind"
)

// New creates an n×n grid with every site blocked.
// Returns ErrInvalidSize if n < 1 or if n²+2 sites do not fit in an int.
//
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	// n²+2 must not overflow
	if n > (math.MaxInt-2)/n {
		return nil, fmt.Errorf("%w: got %d, n² overflows int", ErrInvalidSize, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cells := n * n
	sites, err := unionfind.New(cells+2, unionfind.WithBase(1))
	if err != nil {
		return nil, err
	}
	g := &Grid{
		n:      n,
		open:   make([]bool, cells),
		sites:  sites,
		top:    cells + 1,
		bottom: cells + 2,
	}
	if o.BackwashGuard {
		// sites plus top only; bottom is never reachable here
		if g.full, err = unionfind.New(cells+1, unionfind.WithBase(1)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Open opens site (row, col) and connects it to its open neighbours and, in
// the first and last rows, to the top and bottom sentinels.
// Opening an already open site is a no-op.
// Returns ErrOutOfRange for coordinates outside [1, n].
func (g *Grid) Open(row, col int) error {
	id, err := g.Index(row, col)
	if err != nil {
		return err
	}
	if g.open[id-1] {
		return nil
	}
	g.open[id-1] = true
	g.openCount++

	for _, j := range g.neighbors(row, col) {
		if !g.open[j-1] {
			continue
		}
		if err := g.union(id, j); err != nil {
			return err
		}
	}
	if row == 1 {
		if err := g.union(id, g.top); err != nil {
			return err
		}
	}
	if row == g.n {
		// bottom is only wired into the primary structure
		if _, err := g.sites.Union(id, g.bottom); err != nil {
			return err
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrOutOfRange for coordinates outside [1, n].
func (g *Grid) IsOpen(row, col int) (bool, error) {
	id, err := g.Index(row, col)
	if err != nil {
		return false, err
	}

	return g.open[id-1], nil
}

// IsFull reports whether site (row, col) is connected to the top row through
// open sites. A blocked site is never full.
// Returns ErrOutOfRange for coordinates outside [1, n].
func (g *Grid) IsFull(row, col int) (bool, error) {
	id, err := g.Index(row, col)
	if err != nil {
		return false, err
	}
	uf := g.sites
	if g.full != nil {
		uf = g.full
	}

	return uf.Connected(id, g.top)
}

// NumberOfOpenSites returns how many sites have been opened.
// Complexity: O(1).
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// Percolates reports whether the top row is connected to the bottom row.
func (g *Grid) Percolates() bool {
	ok, err := g.sites.Connected(g.top, g.bottom)
	if err != nil {
		// top and bottom are inside the universe by construction
		panic(fmt.Sprintf("percolation: sentinel lookup failed: %v", err))
	}

	return ok
}

// union joins a and b in every structure that tracks them.
func (g *Grid) union(a, b int) error {
	if _, err := g.sites.Union(a, b); err != nil {
		return err
	}
	if g.full != nil {
		if _, err := g.full.Union(a, b); err != nil {
			return err
		}
	}

	return nil
}
