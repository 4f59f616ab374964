// Package percolation models percolation on an n×n grid of sites.
//
// What:
//
//   - Every site starts blocked; Open makes it permanently open.
//   - A site is full when a chain of open, orthogonally adjacent sites links
//     it to the top row.
//   - The grid percolates when such a chain links the top row to the bottom row.
//
// How:
//
//   - Sites are addressed by 1-indexed (row, col) pairs, mapped to linear ids
//     id = n·(row−1) + col in [1, n²].
//   - Connectivity lives in a unionfind.UnionFind of n²+2 elements: the n²
//     sites plus two virtual sentinels, Top (n²+1) and Bottom (n²+2).
//     Opening a site in row 1 unions it with Top, in row n with Bottom, so
//     Percolates is a single Connected(Top, Bottom) query instead of a scan.
//   - Left/right candidates obtained from id±1 are mapped back to (row, col)
//     and unioned only when they share the opened site's row, so the last
//     site of a row never leaks into the first site of the next one.
//
// Options:
//
//   - WithBackwashGuard: keep a second union-find without Bottom, so IsFull
//     is not fooled by bottom-row sites reaching Top through Bottom once the
//     grid percolates. Off by default.
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open/IsFull:       O(α(n²)) amortized.
//   - IsOpen, NumberOfOpenSites, Percolates: O(1) / O(α(n²)).
//   - OpenClusters:      O(n²).
//
// Errors:
//
//   - ErrInvalidSize: New called with n < 1.
//   - ErrOutOfRange:  row or col outside [1, n].
//
// A Grid is not safe for concurrent use; callers sharing one between
// goroutines must serialize access themselves.
package percolation
