// Package edgelist reads graphs from the plain-text edge-list format:
//
//	n m
//	u v
//	u v
//	…
//
// The first non-blank line carries the vertex count n and the edge count m;
// each following non-blank line carries one edge as two vertex ids. Blank
// lines are skipped. Lines after the m-th edge are ignored, and an input that
// ends before m edges is accepted as-is (the header's m is an upper bound,
// not a promise).
//
// Directedness is not part of the format — the caller chooses it, exactly as
// the CLI does with its --directed/--undirected flags.
//
// Errors:
//
//   - ErrEmptyInput  — no non-blank lines at all.
//   - ErrBadHeader   — the first line is not two integers (or n/m negative).
//   - ErrBadEdge     — an edge line is not two integers; wrapped with the
//     1-based line number.
//   - core.ErrVertexOutOfRange — an endpoint outside [0, n); wrapped with
//     the line number. Self-loops are not errors (core ignores them).
package edgelist
