// Package core - types, sentinel errors, options and the Graph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates New was called with a negative vertex count.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an operation referenced a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

// Option configures behavior of a Graph before creation.
type Option func(g *Graph)

// WithDirected sets the directedness of the Graph
// (true = directed, false = undirected). The flag is fixed for the
// graph's lifetime. Default is undirected.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a simple graph over integer vertex ids 0..n-1.
//
// It stores one adjacency set per vertex; no self-loops, no parallel edges,
// no weights. Undirected graphs keep both orientations of every edge, so a
// single membership probe answers adjacency in either mode.
//
// Mutation happens only through AddEdge. After construction is finished the
// Graph is read-only and safe for concurrent queries.
type Graph struct {
	n        int  // vertex count, fixed at construction
	directed bool // edge orientation mode, fixed at construction

	// adj[u] is the neighbor set of u; exactly n entries, created empty.
	adj []map[int]struct{}

	edges int // distinct edges inserted (undirected pairs counted once)
}

// New creates a Graph with n vertices, no edges, and the given options.
// By default the Graph is undirected.
//
// Returns ErrNegativeVertexCount if n < 0.
//
// Complexity: O(n).
func New(n int, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}

	g := &Graph{
		n:   n,
		adj: make([]map[int]struct{}, n),
	}
	for v := 0; v < n; v++ {
		g.adj[v] = make(map[int]struct{})
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
