// Package hamilton - the backtracking search.
package hamilton

import (
	"sort"

	"github.com/katalvlaran/hampath/core"
)

// searcher encapsulates the state of one Find run. Every call to Find builds
// its own searcher, so concurrent searches over the same read-only graph
// never share mutable state.
type searcher struct {
	n     int     // vertex count of the graph under search
	order [][]int // order[v]: neighbors of v, degree asc then id asc
	path  []int   // partial path, grows and shrinks chronologically
	seen  []bool  // seen[v] mirrors membership of v in path
}

// Find searches g for a Hamiltonian path.
//
// Contract:
//   - Returns Result{Found: true, Path: p} where p is a stable copy of the
//     first path discovered, or Result{Found: false} when the graph admits
//     none. The only error is ErrGraphNil.
//   - Deterministic: starting vertices are tried in the configured StartOrder
//     (ascending id by default), neighbors in core.Neighbors order, and the
//     first success short-circuits the rest, so a fixed graph always yields
//     the same path.
//
// Special cases: n == 0 → found, empty path; n == 1 → found, path [0].
//
// Complexity: Time O(n!) worst case, Memory O(n) plus O(n) recursion depth.
func Find(g *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return Result{}, ErrGraphNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Degenerate sizes need no search.
	n := g.VertexCount()
	if n == 0 {
		return Result{Path: []int{}, Found: true}, nil
	}
	if n == 1 {
		return Result{Path: []int{0}, Found: true}, nil
	}

	// 4. Snapshot the heuristic neighbor order once. Degrees are final before
	//    the search starts, so the memo equals what core.Neighbors would
	//    recompute at every step.
	s := &searcher{
		n:     n,
		order: make([][]int, n),
		path:  make([]int, 0, n),
		seen:  make([]bool, n),
	}
	var err error
	for v := 0; v < n; v++ {
		if s.order[v], err = g.Neighbors(v); err != nil {
			return Result{}, err
		}
	}

	// 5. Try each start in the configured order; first success wins.
	for _, start := range s.startOrder(o.Starts) {
		// Fresh frame per start: empty path, all unseen.
		s.path = s.path[:0]
		for v := 0; v < n; v++ {
			s.seen[v] = false
		}
		s.seen[start] = true
		s.path = append(s.path, start)

		if found, ok := s.extend(start); ok {
			return Result{Path: found, Found: true}, nil
		}
	}

	// 6. Every start exhausted without success.
	return Result{Found: false}, nil
}

// extend tries to grow the partial path from current to full length.
// It returns (path copy, true) on success, or (nil, false) to signal the
// caller to backtrack one level further.
func (s *searcher) extend(current int) ([]int, bool) {
	// Base case: every vertex is on the path. Copy it — the caller keeps
	// mutating the live slice while unwinding.
	if len(s.path) == s.n {
		out := make([]int, s.n)
		copy(out, s.path)

		return out, true
	}

	for _, w := range s.order[current] {
		if s.seen[w] {
			continue
		}
		// Choose w …
		s.seen[w] = true
		s.path = append(s.path, w)

		if found, ok := s.extend(w); ok {
			return found, true // first success propagates immediately
		}

		// … and undo the choice before trying the next sibling.
		s.path = s.path[:len(s.path)-1]
		s.seen[w] = false
	}

	return nil, false
}

// startOrder returns the starting vertices in the configured order.
// AscendingDegree sorts by (degree asc, id asc) using the memoized neighbor
// lists; anything else yields 0..n-1.
func (s *searcher) startOrder(so StartOrder) []int {
	starts := make([]int, s.n)
	for v := 0; v < s.n; v++ {
		starts[v] = v
	}
	if so == AscendingDegree {
		sort.SliceStable(starts, func(i, j int) bool {
			return len(s.order[starts[i]]) < len(s.order[starts[j]])
		})
	}

	return starts
}
