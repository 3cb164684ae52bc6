// Package csrgraph is a library and benchmark harness for static graph
// analytics over large sparse graphs.
//
// An edge list is loaded once into an immutable compressed sparse-row
// (CSR) adjacency representation (package csr), exposed through thin
// undirected/directed views (package graph), and then queried with
// read-only kernels:
//
//	bfs/      — level-synchronous breadth-first traversal
//	dijkstra/ — single-source shortest paths via an indexed priority queue
//	triangle/ — exact triangle counting, serial and work-balanced parallel
//
// Kernels never mutate the graph. The parallel triangle kernel builds its
// own auxiliary degree-ordered adjacency and shares it read-only across a
// fixed-width worker pool.
//
// loader/ parses the plain-text edge-list format into the (src, dst)
// stream csr.FromEdges consumes; cmd/csrbench is the benchmark CLI that
// times each kernel over a loaded graph.
package csrgraph
