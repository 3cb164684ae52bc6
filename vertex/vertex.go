// Package vertex defines the capability-set abstraction that lets the csr,
// graph, bfs, dijkstra, and triangle packages stay parametric over the
// concrete width of a vertex identifier.
//
// A graph built over uint32 ids and one built over uint64 ids share no
// runtime representation; dispatch is monomorphised at construction time
// by the Go compiler via the ID type parameter, so one Graph value commits
// to exactly one width for its lifetime.
package vertex

// ID is the set of unsigned integer widths usable as a vertex identifier.
// Valid vertex ids form a dense prefix [0, nv) of whichever width is chosen.
type ID interface {
	~uint32 | ~uint64
}

// Max returns the sentinel UNREACHED value for width V: the maximum
// representable value of V. It marks unreached or undefined entries in
// BFS levels, Dijkstra parents, and similar result arrays.
func Max[V ID]() V {
	return ^V(0)
}

// ToIndex converts a vertex id to a slice index. Callers guarantee v fits
// in an int on the host platform; this holds for uint32 always, and for
// uint64 whenever the graph's vertex count fits in memory.
func ToIndex[V ID](v V) int {
	return int(v)
}

// FromIndex converts a slice index back into a vertex id of width V.
func FromIndex[V ID](i int) V {
	return V(i)
}
