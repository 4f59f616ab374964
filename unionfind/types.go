// Package unionfind defines sentinel errors and construction options.
package unionfind

import "errors"

// Sentinel errors for union-find construction and queries.
var (
	// ErrInvalidCount indicates the universe was asked to hold fewer than one element.
	ErrInvalidCount = errors.New("unionfind: count must be at least 1")

	// ErrOutOfRange indicates an element outside the universe [Base, Base+Len).
	ErrOutOfRange = errors.New("unionfind: element out of range")
)

// Options configures a UnionFind at construction time.
type Options struct {
	// Base is the label of the first element. Elements run Base..Base+count-1.
	Base int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with Base = 0.
func DefaultOptions() Options {
	return Options{Base: 0}
}

// WithBase sets the label of the first element, e.g. WithBase(1) for a
// 1-indexed universe.
func WithBase(base int) Option {
	return func(o *Options) {
		o.Base = base
	}
}
