// Package dijkstra implements single-source shortest paths over
// non-negative user-supplied edge weights, using an addressable
// (decrease-key) binary heap.
//
// Unlike a "push duplicates, skip stale on pop" priority queue, the heap
// here keeps each vertex present at most once: when a shorter path to an
// already-queued vertex is found, its existing heap entry's key is
// lowered in place (decreaseKey) rather than a second entry being pushed.
// This keeps the queue bounded by nv and lets the visited discipline in
// Dijkstra rely on that bound — see Design Note "Indexed priority queue".
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/csrgraph/bitset"
	"github.com/katalvlaran/csrgraph/graph"
	"github.com/katalvlaran/csrgraph/vertex"
)

// Weight is a function supplying the non-negative cost of edge (u, v).
// Weights are a pure function of endpoints, never stored in the graph
// itself (see Non-goals in the specification).
type Weight[V vertex.ID] func(u, v V) float64

// Dijkstra computes shortest distances from src to every vertex reachable
// in g, returning dists[0..nv): +Inf for unreached vertices. Parents are
// recorded internally but are not returned (per
// §4.4 of the specification). Behavior with negative weights is
// undefined; Dijkstra does not check for them.
func Dijkstra[V vertex.ID](g graph.Outward[V], src V, w Weight[V]) []float64 {
	nv := vertex.ToIndex(g.NV())
	unreached := vertex.Max[V]()

	dists := make([]float64, nv)
	parent := make([]V, nv)
	for i := range dists {
		dists[i] = math.Inf(1)
		parent[i] = unreached
	}

	visited := bitset.New(nv)
	pq := newIndexedPQ[V](nv)

	si := vertex.ToIndex(src)
	dists[si] = 0
	visited.Mark(si)
	pq.push(src, 0)

	for pq.Len() > 0 {
		u, _ := pq.pop()
		ui := vertex.ToIndex(u)
		du := dists[ui]

		for _, v := range g.OutNeighbors(u) {
			vi := vertex.ToIndex(v)
			alt := du + w(u, v)

			if !visited.Test(vi) {
				visited.Mark(vi)
				dists[vi] = alt
				parent[vi] = u
				pq.push(v, alt)
			} else if alt < dists[vi] {
				dists[vi] = alt
				parent[vi] = u
				pq.decreaseKey(v, alt)
			}
		}
	}

	parent[si] = unreached
	return dists
}

// pqEntry pairs a vertex with its current tentative distance.
type pqEntry[V vertex.ID] struct {
	v    V
	dist float64
}

// indexedPQ is a min-heap of pqEntry, addressable by vertex index via pos
// (a dense id-to-heap-position map of length nv, -1 when absent). This is
// the "addressable binary heap backed by a dense id-to-position map"
// called for in Design Note "Indexed priority queue".
type indexedPQ[V vertex.ID] struct {
	items []pqEntry[V]
	pos   []int
}

func newIndexedPQ[V vertex.ID](nv int) *indexedPQ[V] {
	pos := make([]int, nv)
	for i := range pos {
		pos[i] = -1
	}
	return &indexedPQ[V]{items: make([]pqEntry[V], 0, nv), pos: pos}
}

func (pq *indexedPQ[V]) Len() int { return len(pq.items) }

func (pq *indexedPQ[V]) Less(i, j int) bool { return pq.items[i].dist < pq.items[j].dist }

func (pq *indexedPQ[V]) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.pos[vertex.ToIndex(pq.items[i].v)] = i
	pq.pos[vertex.ToIndex(pq.items[j].v)] = j
}

func (pq *indexedPQ[V]) Push(x any) {
	e := x.(pqEntry[V])
	pq.pos[vertex.ToIndex(e.v)] = len(pq.items)
	pq.items = append(pq.items, e)
}

func (pq *indexedPQ[V]) Pop() any {
	old := pq.items
	n := len(old)
	e := old[n-1]
	pq.items = old[:n-1]
	pq.pos[vertex.ToIndex(e.v)] = -1
	return e
}

// push inserts v at the given distance. v must not already be present.
func (pq *indexedPQ[V]) push(v V, dist float64) {
	heap.Push(pq, pqEntry[V]{v: v, dist: dist})
}

// pop removes and returns the minimum-distance vertex.
func (pq *indexedPQ[V]) pop() (V, float64) {
	e := heap.Pop(pq).(pqEntry[V])
	return e.v, e.dist
}

// decreaseKey lowers v's key to dist and restores the heap invariant.
// v must already be present in the queue.
func (pq *indexedPQ[V]) decreaseKey(v V, dist float64) {
	i := pq.pos[vertex.ToIndex(v)]
	pq.items[i].dist = dist
	heap.Fix(pq, i)
}
