// Package bfs implements level-synchronous breadth-first traversal over a
// graph.Outward view, producing a per-vertex hop-distance map.
//
// The frontier is processed two buffers at a time (current/next) rather
// than through a single FIFO queue, and the next frontier is sorted
// ascending before becoming current: this preserves locality of
// sequential neighbor-slice access on the following level. It is a
// performance decision, not a correctness one — tests that compare BFS
// against an order-insensitive reference must compare levels as sets.
package bfs

import (
	"slices"

	"github.com/katalvlaran/csrgraph/bitset"
	"github.com/katalvlaran/csrgraph/graph"
	"github.com/katalvlaran/csrgraph/vertex"
)

// BFS runs breadth-first search on g starting from src, returning
// levels[0..nv): levels[v] is the hop-distance from src to v, or
// vertex.Max[V]() (UNREACHED) if v was not reached. Callers guarantee
// src < g.NV().
func BFS[V vertex.ID](g graph.Outward[V], src V) []V {
	nv := g.NV()
	n := vertex.ToIndex(nv)
	unreached := vertex.Max[V]()

	levels := make([]V, n)
	for i := range levels {
		levels[i] = unreached
	}

	var maxdeg int
	for _, v := range g.Vertices() {
		if d := g.OutDegree(v); d > maxdeg {
			maxdeg = d
		}
	}

	visited := bitset.New(n)
	current := make([]V, 0, maxdeg)
	next := make([]V, 0, maxdeg)

	visited.Mark(vertex.ToIndex(src))
	levels[vertex.ToIndex(src)] = 0
	current = append(current, src)

	depth := V(1)
	for len(current) > 0 {
		for _, u := range current {
			for _, w := range g.OutNeighbors(u) {
				wi := vertex.ToIndex(w)
				if !visited.Test(wi) {
					visited.Mark(wi)
					levels[wi] = depth
					next = append(next, w)
				}
			}
		}
		current = current[:0]
		current, next = next, current
		slices.Sort(current)
		depth++
	}

	return levels
}
