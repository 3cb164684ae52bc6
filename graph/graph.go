// Package graph provides thin, read-only views over a csr.Matrix: vertex
// and arc counts, in/out-degree, neighbor slices, and an order-sensitive
// HasEdge. Graphs are built once from an edge stream and never mutated —
// see csr.Matrix's immutability guarantee, which both views inherit.
package graph

import (
	"fmt"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/vertex"
)

// Outward is the read-only surface the traversal kernels (bfs, dijkstra)
// need from a graph view: vertex count, the dense vertex sequence, and
// out-degree/out-neighbor access. Both Undirected and Directed satisfy it.
type Outward[V vertex.ID] interface {
	NV() V
	Vertices() []V
	OutDegree(v V) int
	OutNeighbors(v V) []V
}

// Undirected is a graph view backed by a single csr.Matrix in which both
// directions of every edge are stored: v ∈ out_neighbors(u) iff
// u ∈ out_neighbors(v).
//
// NArcs (not NEdges) is the name deliberately chosen for the stored-arc
// count to resolve the §6/§9 "ne() semantics" open question: Undirected
// reports the raw stored-arc count (2·|E| for a graph with |E| distinct
// undirected edges and no self-loops) under the explicit name NArcs, and
// additionally exposes NEdges, which halves it. A self-loop (u,u) is
// stored once, since both of its directions are the same arc, so it adds 1
// to NArcs rather than 2.
type Undirected[V vertex.ID] struct {
	adj *csr.Matrix[V]
}

// NewUndirected builds an Undirected view from an unordered bag of edges.
// Each input edge (u,v) contributes both (u,v) and (v,u) to the backing
// matrix; loops and duplicates are accepted, duplicates collapse.
func NewUndirected[V vertex.ID](edges []csr.Edge[V]) *Undirected[V] {
	doubled := make([]csr.Edge[V], 0, 2*len(edges))
	for _, e := range edges {
		doubled = append(doubled, e, csr.Edge[V]{Src: e.Dst, Dst: e.Src})
	}
	return &Undirected[V]{adj: csr.FromEdges(doubled)}
}

// NV returns the number of vertices.
func (g *Undirected[V]) NV() V { return vertex.FromIndex[V](g.adj.Dim()) }

// NArcs returns the stored-arc count: twice the undirected edge count,
// except that each self-loop adds 1 (see the Undirected doc comment).
func (g *Undirected[V]) NArcs() int { return g.adj.N() }

// NEdges returns the undirected edge count, NArcs()/2.
func (g *Undirected[V]) NEdges() int { return g.adj.N() / 2 }

// Vertices returns the dense ascending sequence [0, NV()).
func (g *Undirected[V]) Vertices() []V {
	return ascendingRange[V](g.adj.Dim())
}

// OutDegree returns the degree of v (aliased with InDegree for undirected
// graphs).
func (g *Undirected[V]) OutDegree(v V) int { return g.adj.RowLen(v) }

// InDegree is an alias of OutDegree for undirected graphs.
func (g *Undirected[V]) InDegree(v V) int { return g.adj.RowLen(v) }

// OutNeighbors returns the sorted neighbor slice of v.
func (g *Undirected[V]) OutNeighbors(v V) []V { return g.adj.Row(v) }

// InNeighbors is an alias of OutNeighbors for undirected graphs.
func (g *Undirected[V]) InNeighbors(v V) []V { return g.adj.Row(v) }

// HasEdge reports whether (u,v) is an edge, searching the smaller of the
// two candidate rows: O(log min(d_u, d_v)).
func (g *Undirected[V]) HasEdge(u, v V) bool {
	if g.adj.RowLen(u) < g.adj.RowLen(v) {
		return g.adj.HasIndex(u, v)
	}
	return g.adj.HasIndex(v, u)
}

// String implements fmt.Stringer, matching the original implementation's
// Display impl for its graph types.
func (g *Undirected[V]) String() string {
	return fmt.Sprintf("(%d, %d) Undirected", g.adj.Dim(), g.NEdges())
}

// Directed is a graph view backed by two csr.Matrix values — a forward
// adjacency and a backward (transposed) adjacency — satisfying
// (u,v) ∈ forward iff (v,u) ∈ backward.
type Directed[V vertex.ID] struct {
	fwd *csr.Matrix[V]
	bwd *csr.Matrix[V]
}

// NewDirected builds a Directed view from an unordered bag of ordered
// (src, dst) pairs.
func NewDirected[V vertex.ID](edges []csr.Edge[V]) *Directed[V] {
	back := make([]csr.Edge[V], len(edges))
	for i, e := range edges {
		back[i] = csr.Edge[V]{Src: e.Dst, Dst: e.Src}
	}
	return &Directed[V]{
		fwd: csr.FromEdges(edges),
		bwd: csr.FromEdges(back),
	}
}

// NV returns the number of vertices.
func (g *Directed[V]) NV() V { return vertex.FromIndex[V](g.fwd.Dim()) }

// NArcs returns the stored-arc count, equal to |E| for a directed graph
// (no doubling, unlike Undirected.NArcs).
func (g *Directed[V]) NArcs() int { return g.fwd.N() }

// Vertices returns the dense ascending sequence [0, NV()).
func (g *Directed[V]) Vertices() []V {
	return ascendingRange[V](g.fwd.Dim())
}

// OutDegree returns the out-degree of v.
func (g *Directed[V]) OutDegree(v V) int { return g.fwd.RowLen(v) }

// InDegree returns the in-degree of v.
func (g *Directed[V]) InDegree(v V) int { return g.bwd.RowLen(v) }

// OutNeighbors returns the sorted out-neighbor slice of v.
func (g *Directed[V]) OutNeighbors(v V) []V { return g.fwd.Row(v) }

// InNeighbors returns the sorted in-neighbor slice of v.
func (g *Directed[V]) InNeighbors(v V) []V { return g.bwd.Row(v) }

// HasEdge reports whether (u,v) is a forward edge, searching the smaller
// of the two candidate rows: if out_degree(u) < out_degree(v), search
// out_neighbors(u); otherwise search in_neighbors(v).
func (g *Directed[V]) HasEdge(u, v V) bool {
	if g.fwd.RowLen(u) < g.fwd.RowLen(v) {
		return g.fwd.HasIndex(u, v)
	}
	return g.bwd.HasIndex(v, u)
}

// String implements fmt.Stringer, matching the original implementation's
// Display impl for its graph types.
func (g *Directed[V]) String() string {
	return fmt.Sprintf("(%d, %d) Directed", g.fwd.Dim(), g.fwd.N())
}

func ascendingRange[V vertex.ID](n int) []V {
	out := make([]V, n)
	for i := 0; i < n; i++ {
		out[i] = vertex.FromIndex[V](i)
	}
	return out
}
