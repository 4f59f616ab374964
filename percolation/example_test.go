package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolate/percolation"
)

// ExampleGrid_Percolates opens a winding path through a 6×6 grid.
//
// Open sites (x), after all eighteen openings:
//
//	. . . . . x
//	x x x x . x
//	x . . x . x
//	x . . x . x
//	x x . x x x
//	. x . . . .
//
// (2,1) joins the top only once (5,4) links the left branch to column 6.
func ExampleGrid_Percolates() {
	g, _ := percolation.New(6)
	sites := [][2]int{
		{1, 6}, {2, 6}, {3, 6}, {4, 6}, {5, 6}, {5, 5},
		{4, 4}, {3, 4}, {2, 4}, {2, 3}, {2, 2}, {2, 1},
		{3, 1}, {4, 1}, {5, 1}, {5, 2}, {6, 2},
	}
	for _, s := range sites {
		_ = g.Open(s[0], s[1])
	}
	full, _ := g.IsFull(2, 1)
	fmt.Println("full before (5,4):", full, "percolates:", g.Percolates())

	_ = g.Open(5, 4)
	full, _ = g.IsFull(2, 1)
	fmt.Println("full after (5,4):", full, "percolates:", g.Percolates())
	fmt.Println("open sites:", g.NumberOfOpenSites())

	// Output:
	// full before (5,4): false percolates: false
	// full after (5,4): true percolates: true
	// open sites: 18
}

// ExampleGrid_OpenClusters lists clusters of a 3×3 grid by linear id and by
// coordinate.
func ExampleGrid_OpenClusters() {
	g, _ := percolation.New(3)
	_ = g.Open(1, 3)
	_ = g.Open(2, 1)
	_ = g.Open(3, 1)

	for i, cluster := range g.OpenClusters() {
		fmt.Printf("cluster %d:", i)
		for _, id := range cluster {
			r, c := g.Coordinate(id)
			fmt.Printf(" %d(%d,%d)", id, r, c)
		}
		fmt.Println()
	}

	// Output:
	// cluster 0: 3(1,3)
	// cluster 1: 4(2,1) 7(3,1)
}

// ExampleGrid_Open_outOfRange shows the error carried by a bad coordinate.
func ExampleGrid_Open_outOfRange() {
	g, _ := percolation.New(5)
	err := g.Open(1, 6)
	fmt.Println(err)

	// Output:
	// percolation: site out of range: row=1 col=6, want both in [1, 5]
}
