// Package core defines the Graph type used throughout hampath: a fixed-size
// simple graph over integer vertex ids 0..n-1, directed or undirected.
//
// What:
//
//   - New(n, opts...): construct a graph with n vertices and no edges;
//     directedness is fixed at construction via WithDirected.
//   - AddEdge(u, v): insert an edge with set semantics (idempotent);
//     self-loops are silently ignored, out-of-range endpoints rejected.
//   - Degree(v): number of distinct neighbors (out-degree when directed).
//   - Neighbors(v): neighbor ids sorted by ascending neighbor degree,
//     ties by ascending id — the ordering the backtracking search relies on
//     to prune dead branches early.
//   - HasEdge(u, v): pure adjacency predicate honoring directedness.
//
// Why:
//   - Adjacency sets give O(1) edge membership and automatic deduplication.
//   - The degree-ascending neighbor order is the search's pruning heuristic:
//     low-degree vertices run out of extensions sooner, so exploring them
//     first collapses fruitless subtrees early.
//
// Invariants:
//
//   - No self-loops are ever stored.
//   - All stored neighbor ids lie in [0, n).
//   - Undirected graphs store every edge symmetrically.
//   - Exactly n adjacency sets exist, created empty at construction.
//
// Concurrency:
//
//   - A Graph is mutated only by AddEdge. Once construction is finished the
//     graph is read-only, and any number of goroutines may query or search
//     it concurrently without locking.
//
// Complexity:
//
//   - AddEdge/HasEdge/Degree: O(1).
//   - Neighbors: O(d log d) for d incident edges (sorted on demand).
//
// Errors:
//
//   - ErrNegativeVertexCount — New called with n < 0.
//   - ErrVertexOutOfRange    — an operation referenced an id outside [0, n).
package core
