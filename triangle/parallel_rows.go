package triangle

import (
	"context"
	"math/big"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/csrgraph/graph"
	"github.com/katalvlaran/csrgraph/vertex"
)

// ParallelFromRows is the slice-of-slices counterpart to Parallel: it
// builds the DODG as [][]V (one allocation per row) instead of a single
// CSR, runs the same partitioning algorithm and reduction over it, and
// returns the same triangle count. Unlike Parallel, it weights each vertex
// by its DODG row length rather than that length squared. It exists to give the benchmark CLI's
// "threaded_triangles" operation genuinely distinct behaviour from
// "threaded_triangles_csr", mirroring the original implementation's two
// parallel-counting entry points (see SPEC_FULL.md's supplemented
// features) — the CSR-backed Parallel remains the primary, recommended
// entry point for library callers.
func ParallelFromRows[V vertex.ID](g *graph.Undirected[V], opts ...ParallelOption) *big.Int {
	cfg := parallelConfig{workers: defaultParallelism}
	for _, opt := range opts {
		opt(&cfg)
	}

	nv := vertex.ToIndex(g.NV())
	degrees := make([]int, nv)
	dodg := make([][]V, nv)

	workers := cfg.workers
	if workers < 1 {
		workers = 1
	}
	if workers > max(nv, 1) {
		workers = max(nv, 1)
	}
	chunk := (nv + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}

	var wg sync.WaitGroup
	for lo := 0; lo < nv; lo += chunk {
		hi := min(lo+chunk, nv)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				u := vertex.FromIndex[V](i)
				degu := g.OutDegree(u)
				degrees[i] = degu
				var row []V
				for _, v := range g.OutNeighbors(u) {
					if higherPriority(g.OutDegree(v), v, degu, u) {
						row = append(row, v)
					}
				}
				dodg[i] = row
			}
		}(lo, hi)
	}
	wg.Wait()

	weights := make([]int, nv)
	for i, row := range dodg {
		weights[i] = len(row)
	}
	partitions := OptimalContiguousPartition(weights, cfg.workers)

	grp, _ := errgroup.WithContext(context.Background())
	totals := make([]uint64, len(partitions))
	for pi, part := range partitions {
		pi, part := pi, part
		grp.Go(func() error {
			var ntri, nwedge uint64
			countRange(degrees, dodg, part.Lo, part.Hi, &ntri, &nwedge)
			totals[pi] = ntri
			return nil
		})
	}
	_ = grp.Wait()

	var sum big.Int
	for _, t := range totals {
		sum.Add(&sum, new(big.Int).SetUint64(t))
	}
	return &sum
}
