// Package csr implements the compressed sparse-row (CSR) adjacency
// representation that every kernel in this module is built on: an
// immutable, per-row contiguous, sorted, duplicate-free neighbor store
// with O(log d) membership testing.
//
// A Matrix is built once, from either an unordered edge stream or from
// externally supplied indptr/indices arrays, and never mutated afterward.
// Because it is read-only for its entire lifetime, it can be shared freely
// across goroutines without synchronization — see Matrix's doc comment.
package csr

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/csrgraph/vertex"
)

// Matrix is the immutable compressed sparse-row store.
//
// Invariants (hold for the lifetime of any constructed Matrix):
//  1. indptr is monotonically non-decreasing, indptr[0] == 0, and
//     indptr[nv] == len(indices).
//  2. For every row u, indices[indptr[u]:indptr[u+1]] is strictly
//     ascending and contains no duplicates.
//  3. Every entry of indices is < nv.
//
// Matrix never mutates its backing arrays after construction, so a *Matrix
// may be shared read-only across any number of goroutines with no locking.
type Matrix[V vertex.ID] struct {
	nv      int
	indptr  []int
	indices []V
}

// Dim reports nv, the number of rows (the dense vertex-id range [0, nv)).
func (m *Matrix[V]) Dim() int { return m.nv }

// N reports total_stored, the sum of all row lengths (len(indices)).
func (m *Matrix[V]) N() int { return len(m.indices) }

// Row returns the sorted, read-only neighbor slice for vertex u.
// Callers guarantee u < Dim(); Row does not bounds-check u.
func (m *Matrix[V]) Row(u V) []V {
	i := vertex.ToIndex(u)
	return m.indices[m.indptr[i]:m.indptr[i+1]]
}

// RowLen returns the out-degree of vertex u. Callers guarantee u < Dim().
func (m *Matrix[V]) RowLen(u V) int {
	i := vertex.ToIndex(u)
	return m.indptr[i+1] - m.indptr[i]
}

// HasIndex binary-searches v in Row(u). Complexity: O(log d_u).
// Callers guarantee u < Dim(); out-of-range u is a caller contract
// violation, not a checked error (see §4.1 of the specification).
func (m *Matrix[V]) HasIndex(u, v V) bool {
	row := m.Row(u)
	_, found := slices.BinarySearch(row, v)
	return found
}

// Edge is a single (src, dst) pair as consumed by FromEdges.
type Edge[V vertex.ID] struct {
	Src, Dst V
}

// FromEdges builds a Matrix from an unordered bag of directed (src, dst)
// pairs. nv is taken as max(src, dst)+1 over all edges, or 0 if edges is
// empty. Self-loops are permitted and stored; multi-edges (repeated
// (src, dst) pairs) are collapsed.
//
// Construction is O(|E| log |E|): bucket by source, sort each bucket
// ascending, and deduplicate.
func FromEdges[V vertex.ID](edges []Edge[V]) *Matrix[V] {
	var nv int
	for _, e := range edges {
		if s := vertex.ToIndex(e.Src) + 1; s > nv {
			nv = s
		}
		if d := vertex.ToIndex(e.Dst) + 1; d > nv {
			nv = d
		}
	}

	buckets := make([][]V, nv)
	for _, e := range edges {
		si := vertex.ToIndex(e.Src)
		buckets[si] = append(buckets[si], e.Dst)
	}

	indptr := make([]int, nv+1)
	total := 0
	for u := 0; u < nv; u++ {
		b := buckets[u]
		slices.Sort(b)
		b = slices.Compact(b)
		buckets[u] = b
		total += len(b)
		indptr[u+1] = total
	}

	indices := make([]V, 0, total)
	for u := 0; u < nv; u++ {
		indices = append(indices, buckets[u]...)
	}

	return &Matrix[V]{nv: nv, indptr: indptr, indices: indices}
}

// FromArrays builds a Matrix from externally supplied indptr/indices
// arrays, validating Matrix invariants 1 and 3: construction fails with a
// structural error if indptr is malformed or any stored id is out of
// range; it does not fail silently. Invariant 2 (sorted, duplicate-free
// rows) is not checked.
//
// FromArrays does not re-sort or deduplicate rows: indptr/indices are
// expected to already satisfy the CSR invariants (e.g. because they were
// produced by another Matrix, or by a parallel builder — see
// triangle.Parallel's auxiliary DODG construction).
func FromArrays[V vertex.ID](indptr []int, indices []V) (*Matrix[V], error) {
	if len(indptr) == 0 {
		return nil, fmt.Errorf("%w: indptr must have at least one entry", ErrIndptrLength)
	}
	nv := len(indptr) - 1
	if indptr[0] != 0 {
		return nil, fmt.Errorf("%w: indptr[0] = %d, want 0", ErrNonMonotonicIndptr, indptr[0])
	}
	for i := 1; i <= nv; i++ {
		if indptr[i] < indptr[i-1] {
			return nil, fmt.Errorf("%w: indptr[%d]=%d < indptr[%d]=%d", ErrNonMonotonicIndptr, i, indptr[i], i-1, indptr[i-1])
		}
	}
	if indptr[nv] != len(indices) {
		return nil, fmt.Errorf("%w: indptr[%d]=%d, len(indices)=%d", ErrIndptrTotalMismatch, nv, indptr[nv], len(indices))
	}
	for _, id := range indices {
		if vertex.ToIndex(id) >= nv {
			return nil, fmt.Errorf("%w: id=%v, nv=%d", ErrOutOfRangeID, id, nv)
		}
	}

	return &Matrix[V]{nv: nv, indptr: indptr, indices: indices}, nil
}
