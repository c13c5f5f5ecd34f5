// Package builder - shape constructor implementations.
//
// Contract (all constructors):
//   - n < 0 → core.ErrNegativeVertexCount, propagated from core.New.
//   - Edges are emitted in stable increasing order.
//   - Directed shapes orient edges low id → high id unless stated otherwise.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hampath/core"
)

// Method tokens for error context.
const (
	methodChain    = "Chain"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
)

// Chain builds the path graph P_n: edges (i, i+1) for i = 0..n-2.
func Chain(n int, directed bool) (*core.Graph, error) {
	g, err := core.New(n, core.WithDirected(directed))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodChain, err)
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodChain, i, i+1, err)
		}
	}

	return g, nil
}

// Cycle builds the cycle graph C_n: a chain plus the closing edge (n-1, 0).
// For n < 3 the closing edge collapses into the chain (or a self-loop no-op),
// so C_0, C_1, C_2 degenerate gracefully.
func Cycle(n int, directed bool) (*core.Graph, error) {
	g, err := Chain(n, directed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	if n > 1 {
		if err = g.AddEdge(n-1, 0); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, n-1, 0, err)
		}
	}

	return g, nil
}

// Complete builds K_n. Undirected graphs store each pair once (mirrored by
// core); directed graphs get both orientations explicitly, so every vertex
// can reach every other.
func Complete(n int, directed bool) (*core.Graph, error) {
	g, err := core.New(n, core.WithDirected(directed))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if err = g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, u, v, err)
			}
			if directed {
				if err = g.AddEdge(v, u); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, v, u, err)
				}
			}
		}
	}

	return g, nil
}

// Star builds the star S_n: hub 0 joined to each leaf 1..n-1. Directed stars
// point hub → leaf. A star has no Hamiltonian path once n > 3: any simple
// path can pass through the hub only once.
func Star(n int, directed bool) (*core.Graph, error) {
	g, err := core.New(n, core.WithDirected(directed))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStar, err)
	}
	for leaf := 1; leaf < n; leaf++ {
		if err = g.AddEdge(0, leaf); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, 0, leaf, err)
		}
	}

	return g, nil
}
