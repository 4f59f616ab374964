// Package percolation defines core types, options, and sentinel errors.
package percolation

import (
	"errors"

	"github.com/katalvlaran/percolate/unionfind"
)

// Sentinel errors for grid construction and site access.
var (
	// ErrInvalidSize indicates a grid side shorter than one site.
	ErrInvalidSize = errors.New("percolation: n must be at least 1")

	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("percolation: site out of range")
)

// Options contains tunable parameters for a Grid.
type Options struct {
	// BackwashGuard keeps a second union-find without the Bottom sentinel
	// and answers IsFull from it.
	BackwashGuard bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with BackwashGuard disabled.
func DefaultOptions() Options {
	return Options{BackwashGuard: false}
}

// WithBackwashGuard makes IsFull report only sites genuinely connected to
// the top row, at the cost of a second union-find.
func WithBackwashGuard() Option {
	return func(o *Options) {
		o.BackwashGuard = true
	}
}

// Grid is an n×n percolation system.
// open is indexed by id-1; sites holds ids 1..n² plus top and bottom.
// full is nil unless the backwash guard is enabled.
type Grid struct {
	n         int
	open      []bool
	openCount int
	sites     *unionfind.UnionFind
	full      *unionfind.UnionFind
	top       int
	bottom    int
}
