// Package hamilton finds and certifies Hamiltonian paths — simple paths
// visiting every vertex of a core.Graph exactly once — on directed and
// undirected graphs.
//
// What:
//
//   - Find(g, opts...): exact backtracking search. Tries each start vertex in
//     a deterministic order, extends the partial path through unvisited
//     neighbors (lowest-degree first, the core.Neighbors heuristic), and
//     undoes the latest choice whenever a branch dead-ends. First success
//     wins; the verdict is a Result, never an error.
//   - IsPath(g, candidate): independent validator. Accepts an arbitrary
//     candidate sequence (any length, any values, repeats allowed) and
//     reports whether it is exactly a Hamiltonian path of g. Shares no state
//     with the search and is the ground truth for its results.
//
// Why:
//   - Deciding Hamiltonian path existence is NP-complete; for the graph sizes
//     where an exact answer is wanted, pruned backtracking is the practical
//     tool, and the degree-ascending neighbor order abandons hopeless
//     branches early.
//   - Keeping the validator separate lets callers certify paths from any
//     source — the search, a file, a remote peer — against the same graph.
//
// Key types:
//
//   - Result: Path plus a Found flag; "no path exists" is a normal outcome,
//     not an error.
//   - StartOrder: AscendingID (default) or AscendingDegree; both are
//     deterministic, they only change which of several valid paths surfaces.
//   - Option / Options / DefaultOptions: functional configuration for Find.
//
// Complexity:
//
//   - Find:   Time O(n!) worst case (branching bounded by vertex degree),
//     Memory O(n) for the path, visited set and recursion stack.
//   - IsPath: Time O(n), Memory O(n).
//
// Errors:
//
//   - ErrGraphNil — Find received a nil *core.Graph. The only error Find can
//     return; an exhausted search reports Result.Found == false instead.
package hamilton
