package percolation

import "sort"

// OpenClusters groups open sites into clusters of orthogonally adjacent open
// sites. The sentinels play no part: two top-row sites are in the same
// cluster only if a chain of open sites joins them.
// Each cluster is a sorted slice of linear ids; clusters are ordered by their
// smallest id. Use Coordinate to convert an id back to (row, col).
//
// Time:   O(n²).
// Memory: O(n²) for visited flags and output.
func (g *Grid) OpenClusters() [][]int {
	seen := make([]bool, len(g.open))
	var clusters [][]int

	for id := 1; id <= len(g.open); id++ {
		if !g.open[id-1] || seen[id-1] {
			continue
		}
		// BFS to collect the cluster
		queue := []int{id}
		seen[id-1] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			row, col := g.Coordinate(u)
			for _, v := range g.neighbors(row, col) {
				if g.open[v-1] && !seen[v-1] {
					seen[v-1] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(queue)
		clusters = append(clusters, queue)
	}

	return clusters
}
