// Package percolate is an in-memory toolkit for site percolation on square
// grids.
//
// Under the hood, everything is organized under two subpackages and a driver:
//
//	unionfind/     fixed-size disjoint-set structure (union by size, path halving)
//	percolation/   n×n grid of open/blocked sites with virtual top and bottom sentinels
//	cmd/percolate/ command-line driver: open sites, print fullness or percolation
//
// Quick ASCII example (n = 3, x = open):
//
//	. x .
//	. x x
//	x x .
//
// The middle column links row 1 to row 3, so the grid percolates.
//
//	go get github.com/katalvlaran/percolate
package percolate
