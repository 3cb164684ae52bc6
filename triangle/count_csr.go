package triangle

import (
	"slices"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/vertex"
)

// countRangeCSR is countRange's CSR-backed counterpart: it enumerates
// wedges pivoted at vertices in [lo, hi) of a csr.Matrix DODG rather than
// a slice-of-slices one. Used by Parallel, where the DODG is shared
// read-only across worker goroutines as a single immutable csr.Matrix.
func countRangeCSR[V vertex.ID](degrees []int, dodg *csr.Matrix[V], lo, hi int, ntri, nwedge *uint64) {
	for i := lo; i < hi; i++ {
		u := vertex.FromIndex[V](i)
		uvec := dodg.Row(u)
		ulen := len(uvec)
		for a := 0; a < ulen; a++ {
			v := uvec[a]
			vvec := dodg.Row(v)
			for b := a + 1; b < ulen; b++ {
				*nwedge++
				w := uvec[b]
				wvec := dodg.Row(w)

				wToV := higherPriority(degrees[vertex.ToIndex(v)], v, degrees[vertex.ToIndex(w)], w)
				var closed bool
				if wToV {
					_, closed = slices.BinarySearch(wvec, v)
				} else {
					_, closed = slices.BinarySearch(vvec, w)
				}
				if closed {
					*ntri++
				}
			}
		}
	}
}
