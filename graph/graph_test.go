package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/graph"
)

func k4Edges() []csr.Edge[uint32] {
	return []csr.Edge[uint32]{
		{Src: 0, Dst: 1}, {Src: 0, Dst: 2}, {Src: 0, Dst: 3},
		{Src: 1, Dst: 2}, {Src: 1, Dst: 3}, {Src: 2, Dst: 3},
	}
}

func TestUndirected_Invariants(t *testing.T) {
	g := graph.NewUndirected(k4Edges())

	assert.EqualValues(t, 4, g.NV())
	assert.Equal(t, 12, g.NArcs())
	assert.Equal(t, 6, g.NEdges())

	for _, v := range g.Vertices() {
		assert.Equal(t, 3, g.OutDegree(v))
		nb := g.OutNeighbors(v)
		assert.True(t, isAscending(nb))
	}
	assert.True(t, g.HasEdge(0, 3))
	assert.True(t, g.HasEdge(3, 0))
	assert.False(t, g.HasEdge(1, 1))
}

func TestDirected_ForwardBackwardDuality(t *testing.T) {
	edges := []csr.Edge[uint32]{
		{Src: 0, Dst: 1}, {Src: 1, Dst: 2}, {Src: 2, Dst: 0}, {Src: 0, Dst: 2},
	}
	g := graph.NewDirected(edges)

	assert.EqualValues(t, 3, g.NV())
	assert.Equal(t, 4, g.NArcs())

	for _, e := range edges {
		assert.True(t, g.HasEdge(e.Src, e.Dst))
		assert.Contains(t, g.InNeighbors(e.Dst), e.Src)
	}
	assert.False(t, g.HasEdge(1, 0))
	assert.Equal(t, 1, g.InDegree(1))
	assert.Equal(t, 2, g.OutDegree(0))
}

func isAscending[T ~uint32](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}
