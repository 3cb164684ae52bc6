// Command csrbench is the benchmark harness's external-collaborator CLI:
// it loads an edge-list file into an immutable graph once, runs the
// requested kernel once untimed to prime it, then times --runs repeated
// runs (default 50) and reports their average, matching the reference
// implementation's two-phase "prime then average" shape.
package main

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/csrgraph/bfs"
	"github.com/katalvlaran/csrgraph/dijkstra"
	"github.com/katalvlaran/csrgraph/graph"
	"github.com/katalvlaran/csrgraph/loader"
	"github.com/katalvlaran/csrgraph/triangle"
)

// defaultRuns is the number of timed repetitions averaged after the
// priming run, matching the reference harness's NRUNS constant.
const defaultRuns = 50

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("csrbench failed")
	}
}

func newRootCmd() *cobra.Command {
	var workers, runs int

	cmd := &cobra.Command{
		Use:   "csrbench <edgefile> <src> <op>",
		Short: "Benchmark CSR-backed graph kernels (bfs, dijkstra, triangle, threaded_triangles, threaded_triangles_csr)",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0], args[1], args[2], workers, runs)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count for the threaded_* ops (0 = hardware parallelism)")
	cmd.Flags().IntVar(&runs, "runs", defaultRuns, "timed repetitions averaged after the priming run")
	return cmd
}

func run(edgefile, srcArg, op string, workers, runs int) error {
	src, err := strconv.ParseUint(srcArg, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid source vertex %q: %w", srcArg, err)
	}

	switch op {
	case "bfs", "dijkstra":
		edges, err := loader.LoadFile[uint32](edgefile)
		if err != nil {
			return err
		}
		now := time.Now()
		h := graph.NewDirected(edges)
		log.Info().Dur("load_time", time.Since(now)).Str("graph", h.String()).Msg("loaded directed graph")
		return runDirectedOp(h, uint32(src), op, runs)
	case "triangle", "threaded_triangles", "threaded_triangles_csr":
		edges, err := loader.LoadFile[uint32](edgefile)
		if err != nil {
			return err
		}
		now := time.Now()
		h := graph.NewUndirected(edges)
		log.Info().Dur("load_time", time.Since(now)).Str("graph", h.String()).Msg("loaded undirected graph")
		return runTriangleOp(h, op, workers, runs)
	default:
		return fmt.Errorf("unknown op %q: want one of bfs, dijkstra, triangle, threaded_triangles, threaded_triangles_csr", op)
	}
}

func runDirectedOp(h *graph.Directed[uint32], src uint32, op string, runs int) error {
	var first func()
	switch op {
	case "bfs":
		first = func() { _ = bfs.BFS(h, src) }
	case "dijkstra":
		first = func() { _ = dijkstra.Dijkstra(h, src, unitWeight) }
	}

	log.Info().Str("op", op).Msg("priming run")
	first()

	avg := timeRuns(first, runs)
	log.Info().Str("op", op).Int("runs", runs).Float64("avg_ms", avg).Msg("average over runs")
	return nil
}

func runTriangleOp(h *graph.Undirected[uint32], op string, workers, runs int) error {
	var opts []triangle.ParallelOption
	if workers > 0 {
		opts = append(opts, triangle.WithWorkers(workers))
	}

	var first func() *big.Int
	switch op {
	case "triangle":
		first = func() *big.Int { ntri, _ := triangle.Triangles(h); return ntri }
	case "threaded_triangles":
		first = func() *big.Int { return triangle.ParallelFromRows(h, opts...) }
	case "threaded_triangles_csr":
		first = func() *big.Int { return triangle.Parallel(h, opts...) }
	}

	log.Info().Str("op", op).Msg("priming run")
	ntri := first()
	log.Info().Str("op", op).Str("triangles", ntri.String()).Msg("priming result")

	avg := timeRuns(func() { first() }, runs)
	log.Info().Str("op", op).Int("runs", runs).Float64("avg_ms", avg).Msg("average over runs")
	return nil
}

func timeRuns(kernel func(), runs int) float64 {
	var total time.Duration
	for i := 0; i < runs; i++ {
		now := time.Now()
		kernel()
		total += time.Since(now)
		fmt.Fprint(os.Stderr, ".")
	}
	fmt.Fprintln(os.Stderr)
	return float64(total.Microseconds()) / 1000.0 / float64(runs)
}

func unitWeight(_, _ uint32) float64 { return 1 }
