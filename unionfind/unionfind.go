package unionfind

import (
	"fmt"
	"sort"
)

// UnionFind is a weighted quick-union structure with path halving.
// parent and size are indexed by offset (element - base); size is only
// meaningful at roots.
type UnionFind struct {
	parent []int
	size   []int
	base   int
	count  int // number of disjoint classes remaining
}

// New builds count singleton classes labelled base..base+count-1.
// Returns ErrInvalidCount if count < 1.
//
// Complexity: O(count) time and memory.
func New(count int, opts ...Option) (*UnionFind, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	uf := &UnionFind{
		parent: make([]int, count),
		size:   make([]int, count),
		base:   o.Base,
		count:  count,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements in the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Base returns the label of the first element.
func (uf *UnionFind) Base() int {
	return uf.base
}

// Count returns the number of disjoint classes.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the representative of x's class.
// Returns ErrOutOfRange if x is not in the universe.
func (uf *UnionFind) Find(x int) (int, error) {
	i, err := uf.offset(x)
	if err != nil {
		return 0, err
	}

	return uf.root(i) + uf.base, nil
}

// Union merges the classes of x and y. It reports whether a merge happened;
// false means x and y were already connected.
// Returns ErrOutOfRange if x or y is not in the universe.
func (uf *UnionFind) Union(x, y int) (bool, error) {
	i, err := uf.offset(x)
	if err != nil {
		return false, err
	}
	j, err := uf.offset(y)
	if err != nil {
		return false, err
	}

	ri, rj := uf.root(i), uf.root(j)
	if ri == rj {
		return false, nil
	}
	// Attach the smaller tree under the larger; ties keep ri as the root.
	if uf.size[ri] < uf.size[rj] {
		ri, rj = rj, ri
	}
	uf.parent[rj] = ri
	uf.size[ri] += uf.size[rj]
	uf.count--

	return true, nil
}

// Connected reports whether x and y are in the same class.
// Returns ErrOutOfRange if x or y is not in the universe.
func (uf *UnionFind) Connected(x, y int) (bool, error) {
	rx, err := uf.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := uf.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// SizeOf returns the number of elements in x's class.
// Returns ErrOutOfRange if x is not in the universe.
func (uf *UnionFind) SizeOf(x int) (int, error) {
	i, err := uf.offset(x)
	if err != nil {
		return 0, err
	}

	return uf.size[uf.root(i)], nil
}

// Sets returns every class as a sorted slice of element labels.
// Classes are ordered by their smallest element.
//
// Complexity: O(n·α(n)) to group plus O(n log n) to order.
func (uf *UnionFind) Sets() [][]int {
	byRoot := make(map[int][]int, uf.count)
	for i := range uf.parent {
		r := uf.root(i)
		byRoot[r] = append(byRoot[r], i+uf.base)
	}
	out := make([][]int, 0, len(byRoot))
	for _, set := range byRoot {
		// members were appended in ascending order already
		out = append(out, set)
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a][0] < out[b][0]
	})

	return out
}

// offset translates an element label into a slice index.
func (uf *UnionFind) offset(x int) (int, error) {
	i := x - uf.base
	if i < 0 || i >= len(uf.parent) {
		return 0, fmt.Errorf("%w: %d not in [%d, %d)", ErrOutOfRange, x, uf.base, uf.base+len(uf.parent))
	}

	return i, nil
}

// root walks to the root of i, halving the path on the way.
func (uf *UnionFind) root(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}

	return i
}
