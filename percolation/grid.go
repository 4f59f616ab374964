package percolation

import "fmt"

// Size returns n, the side length of the grid.
func (g *Grid) Size() int {
	return g.n
}

// Top returns the id of the virtual top sentinel (n²+1).
func (g *Grid) Top() int {
	return g.top
}

// Bottom returns the id of the virtual bottom sentinel (n²+2).
func (g *Grid) Bottom() int {
	return g.bottom
}

// InBounds reports whether (row, col) lies within [1, n]×[1, n].
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// Index maps (row, col) to its linear id n·(row−1)+col.
// Returns ErrOutOfRange if either coordinate lies outside [1, n].
func (g *Grid) Index(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: row=%d col=%d, want both in [1, %d]", ErrOutOfRange, row, col, g.n)
	}

	return g.index(row, col), nil
}

// Coordinate maps a linear id in [1, n²] back to (row, col).
// The result is meaningless for ids outside that range.
func (g *Grid) Coordinate(id int) (row, col int) {
	return (id-1)/g.n + 1, (id-1)%g.n + 1
}

func (g *Grid) index(row, col int) int {
	return g.n*(row-1) + col
}

// neighbors returns the ids of the orthogonal neighbours of (row, col).
// Candidates come from id offsets (up, down, left, right); each one is mapped
// back to (row, col) and kept only if it is on the grid and shares the row or
// the column, which drops the id±1 wraparound between rows.
func (g *Grid) neighbors(row, col int) []int {
	id := g.index(row, col)
	last := g.n * g.n
	out := make([]int, 0, 4)
	for _, d := range [4]int{-g.n, g.n, -1, 1} {
		j := id + d
		if j < 1 || j > last {
			continue
		}
		r, c := g.Coordinate(j)
		if r != row && c != col {
			continue
		}
		out = append(out, j)
	}

	return out
}
