// Package hamilton - result type, options and sentinel errors.
package hamilton

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed to Find.
var ErrGraphNil = errors.New("hamilton: graph is nil")

// Result holds the outcome of a Hamiltonian path search.
//
// "No path exists" is an expected verdict, not a failure: it is reported as
// Found == false with a nil Path, never through the error channel.
type Result struct {
	// Path is the found Hamiltonian path: a permutation of 0..n-1 in visit
	// order. It is a stable copy owned by the caller. Nil when Found is false.
	Path []int

	// Found reports whether the graph admits a Hamiltonian path.
	Found bool
}

// StartOrder selects the order in which Find tries starting vertices.
// Both orders are deterministic; they affect which of several valid paths is
// returned, never whether one is found.
type StartOrder int

const (
	// AscendingID tries starts 0, 1, …, n-1. The default.
	AscendingID StartOrder = iota

	// AscendingDegree tries low-degree starts first (ties by ascending id).
	// Endpoint-constrained vertices are the most likely to fail fast, which
	// can shrink the search on sparse graphs.
	AscendingDegree
)

// Option configures optional behavior of Find.
type Option func(*Options)

// Options holds configurable parameters for the search.
type Options struct {
	// Starts selects the starting-vertex order. Default is AscendingID.
	// Unknown values fall back to AscendingID.
	Starts StartOrder
}

// DefaultOptions returns the Options used when no Option is supplied:
// ascending-id start order.
func DefaultOptions() Options {
	return Options{Starts: AscendingID}
}

// WithStartOrder returns an Option that sets the starting-vertex order.
func WithStartOrder(order StartOrder) Option {
	return func(o *Options) {
		o.Starts = order
	}
}
