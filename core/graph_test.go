package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hampath/core"
)

func TestNew_NegativeVertexCount(t *testing.T) {
	g, err := core.New(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrNegativeVertexCount)
}

func TestNew_EmptyGraph(t *testing.T) {
	g, err := core.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.Directed(), "graphs are undirected by default")
}

func TestNew_DirectedFlag(t *testing.T) {
	g, err := core.New(3, core.WithDirected(true))
	require.NoError(t, err)
	assert.True(t, g.Directed())
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(-1, 0), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 3), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(7, -2), core.ErrVertexOutOfRange)

	// A rejected edge leaves the graph unchanged.
	assert.Equal(t, 0, g.EdgeCount())
	for v := 0; v < 3; v++ {
		deg, derr := g.Degree(v)
		require.NoError(t, derr)
		assert.Equal(t, 0, deg)
	}
}

func TestAddEdge_SelfLoopIgnored(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)

	// Self-loops are a silent no-op, not an error.
	assert.NoError(t, g.AddEdge(1, 1))
	assert.NoError(t, g.AddEdge(1, 1))

	deg, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 0, deg, "self-loops must not affect degree")
	assert.False(t, g.HasEdge(1, 1), "self-loops must never be retrievable")
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_DuplicateIdempotent(t *testing.T) {
	g, err := core.New(2, core.WithDirected(true))
	require.NoError(t, err)

	assert.NoError(t, g.AddEdge(0, 1))
	assert.NoError(t, g.AddEdge(0, 1))

	deg, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, deg, "set semantics: no double-count")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_UndirectedSymmetry(t *testing.T) {
	g, err := core.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 2))

	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0))

	nbs0, err := g.Neighbors(0)
	require.NoError(t, err)
	nbs2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Contains(t, nbs0, 2)
	assert.Contains(t, nbs2, 0)
}

func TestAddEdge_DirectedAsymmetry(t *testing.T) {
	g, err := core.New(2, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))

	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0), "directed edges must not be mirrored")

	deg1, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 0, deg1, "directed degree is out-degree only")
}

func TestHasEdge_OutOfRange(t *testing.T) {
	g, err := core.New(1)
	require.NoError(t, err)
	assert.False(t, g.HasEdge(-1, 0))
	assert.False(t, g.HasEdge(0, 1))
}

func TestDegree_OutOfRange(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)
	_, err = g.Degree(2)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestNeighbors_OutOfRange(t *testing.T) {
	g, err := core.New(2)
	require.NoError(t, err)
	nbs, err := g.Neighbors(5)
	assert.Nil(t, nbs)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestNeighbors_DegreeOrder pins the heuristic ordering: ascending neighbor
// degree, ties broken by ascending id.
//
// Graph (undirected):
//
//	0─1, 0─2, 0─3, 1─2, 2─3
//
// Degrees: 0→3, 1→2, 2→3, 3→2. Neighbors(0) = {1,2,3}:
// 1 (deg 2) and 3 (deg 2) tie and precede 2 (deg 3) → [1 3 2].
func TestNeighbors_DegreeOrder(t *testing.T) {
	g, err := core.New(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {2, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, nbs)
}

func TestNeighbors_Deterministic(t *testing.T) {
	g, err := core.New(6)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {1, 2}, {3, 4}, {3, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	first, err := g.Neighbors(0)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, aerr := g.Neighbors(0)
		require.NoError(t, aerr)
		assert.Equal(t, first, again, "neighbor order must not vary between calls")
	}
}

func TestNeighbors_FreshSlice(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	nbs[0] = 99 // mutate the returned slice

	again, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.NotContains(t, again, 99, "returned slices must not share backing storage")
}

func TestEdgeCount_UndirectedPairCountedOnce(t *testing.T) {
	g, err := core.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0)) // mirror of an existing pair
	require.NoError(t, g.AddEdge(1, 2))
	assert.Equal(t, 2, g.EdgeCount())
}
