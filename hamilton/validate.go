// Package hamilton - standalone path validation.
//
// Design principles:
//   - Deterministic, side-effect free, shares no state with the search.
//   - Never errors: any malformed candidate simply yields false.
package hamilton

import "github.com/katalvlaran/hampath/core"

// IsPath reports whether candidate is exactly a Hamiltonian path of g.
//
// The candidate may come from anywhere — the search, a file, user input —
// and may be arbitrarily malformed. All of the following must hold:
//
//  1. len(candidate) == n (an empty candidate is valid only for n == 0).
//  2. Every value lies in [0, n).
//  3. No value repeats (the candidate is a permutation of 0..n-1).
//  4. Every consecutive pair is joined by an edge of g in the implied
//     direction (either orientation suffices for undirected graphs, whose
//     edges are stored symmetrically).
//
// A nil graph certifies nothing and yields false.
//
// Complexity: O(n) time, O(n) space.
func IsPath(g *core.Graph, candidate []int) bool {
	if g == nil {
		return false
	}

	// 1. Exact length.
	n := g.VertexCount()
	if len(candidate) != n {
		return false
	}

	// 2+3. Range and uniqueness in one pass.
	used := make([]bool, n)
	for _, v := range candidate {
		if v < 0 || v >= n || used[v] {
			return false
		}
		used[v] = true
	}

	// 4. Consecutive adjacency, honoring directedness.
	for i := 0; i+1 < len(candidate); i++ {
		if !g.HasEdge(candidate[i], candidate[i+1]) {
			return false
		}
	}

	return true
}
