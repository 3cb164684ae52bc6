package triangle

import (
	"context"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/csrgraph/graph"
	"github.com/katalvlaran/csrgraph/vertex"
)

// defaultParallelism mirrors the reference implementation's worker count
// (§5): hardware parallelism by default, 12 in the reference.
var defaultParallelism = runtime.NumCPU()

// ParallelOption configures Parallel's worker pool.
type ParallelOption func(*parallelConfig)

type parallelConfig struct {
	workers int
}

// WithWorkers overrides the worker-pool width. Values <= 0 fall back to
// the default (hardware parallelism).
func WithWorkers(n int) ParallelOption {
	return func(c *parallelConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// Parallel computes the exact triangle count of g using a fixed-width
// worker pool over a cost-balanced contiguous partition of a CSR-backed
// DODG (§4.6). It does not return a wedge count.
//
// Each worker reads a disjoint vertex range and the entire read-only
// dodg CSR, accumulating a private ntri; the final answer is their sum,
// which is associative and commutative over 128-bit addition, so the
// result is deterministic regardless of partition count or scheduling.
func Parallel[V vertex.ID](g *graph.Undirected[V], opts ...ParallelOption) *big.Int {
	cfg := parallelConfig{workers: defaultParallelism}
	for _, opt := range opts {
		opt(&cfg)
	}

	degrees, dodg := dodgCSR(g, cfg.workers)
	nv := dodg.Dim()

	weights := make([]int, nv)
	for i := 0; i < nv; i++ {
		u := vertex.FromIndex[V](i)
		d := dodg.RowLen(u)
		weights[i] = d * d
	}

	partitions := OptimalContiguousPartition(weights, cfg.workers)

	grp, _ := errgroup.WithContext(context.Background())
	totals := make([]uint64, len(partitions))
	for pi, part := range partitions {
		pi, part := pi, part
		grp.Go(func() error {
			var ntri, nwedge uint64
			countRangeCSR(degrees, dodg, part.Lo, part.Hi, &ntri, &nwedge)
			totals[pi] = ntri
			return nil
		})
	}
	_ = grp.Wait() // no worker can return an error; kept for uniform fan-in idiom

	var sum big.Int
	for _, t := range totals {
		sum.Add(&sum, new(big.Int).SetUint64(t))
	}
	return &sum
}
