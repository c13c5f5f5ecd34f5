// Package core - Graph mutation and query methods.
//
// Determinism:
//   - Neighbors(v) sorts by (neighbor degree asc, neighbor id asc) on every
//     call; map iteration order never leaks into results.
package core

import "sort"

// AddEdge inserts the edge (u, v).
//
// Rules:
//   - Either endpoint outside [0, n) → ErrVertexOutOfRange; the graph is
//     left unchanged.
//   - u == v → silent no-op: self-loops can never participate in a simple
//     path, so rejecting them is design, not failure.
//   - Duplicate insertion is idempotent (set semantics).
//   - Undirected graphs store both (u,v) and (v,u).
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	// 1. Validate endpoints before touching any state.
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrVertexOutOfRange
	}

	// 2. Ignore self-loops.
	if u == v {
		return nil
	}

	// 3. Insert with set semantics; count each distinct edge once.
	if _, dup := g.adj[u][v]; !dup {
		g.edges++
	}
	g.adj[u][v] = struct{}{}

	// 4. Mirror for undirected graphs.
	if !g.directed {
		g.adj[v][u] = struct{}{}
	}

	return nil
}

// HasEdge reports whether the edge (u, v) exists, respecting directedness:
// for directed graphs the edge must run u → v. Out-of-range ids yield false;
// a pure predicate never errors.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree returns the number of distinct neighbors of v — out-degree for
// directed graphs. Returns ErrVertexOutOfRange if v is outside [0, n).
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, ErrVertexOutOfRange
	}

	return len(g.adj[v]), nil
}

// Neighbors returns the neighbor ids of v sorted by non-decreasing neighbor
// degree, ties broken by ascending id. Exploring low-degree vertices first is
// the search's pruning heuristic: they exhaust their extensions sooner, so
// dead subtrees are abandoned earlier.
//
// The ordering is recomputed from current degrees on every call; degrees are
// fixed once construction ends, so callers may cache the result, but nothing
// depends on them doing so. The returned slice is freshly allocated and safe
// to retain.
//
// Returns ErrVertexOutOfRange if v is outside [0, n).
//
// Complexity: O(d log d) time, O(d) space, for d = len(adj[v]).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, ErrVertexOutOfRange
	}

	out := make([]int, 0, len(g.adj[v]))
	for w := range g.adj[v] {
		out = append(out, w)
	}
	// Deterministic heuristic order: degree asc, then id asc.
	sort.Slice(out, func(i, j int) bool {
		di, dj := len(g.adj[out[i]]), len(g.adj[out[j]])
		if di != dj {
			return di < dj
		}

		return out[i] < out[j]
	})

	return out, nil
}

// VertexCount returns the number of vertices n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of distinct edges inserted so far.
// Undirected edges are counted once per pair.
func (g *Graph) EdgeCount() int { return g.edges }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
