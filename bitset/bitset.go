// Package bitset provides the dense, word-packed "visited" bitset used by
// the bfs and dijkstra kernels. It is a thin wrapper over
// github.com/soniakeys/bits — already part of this module's dependency
// surface via the rest of the graph-analytics ecosystem — rather than a
// hand-rolled []bool, matching Design Note "Bitsets" in the specification:
// visited is read and written in tight loops and is worth the word-packed
// representation.
package bitset

import "github.com/soniakeys/bits"

// Set is a fixed-size dense bitset, all bits initially zero.
type Set struct {
	b bits.Bits
}

// New allocates a Set of n bits, all cleared.
func New(n int) Set {
	return Set{b: bits.New(n)}
}

// Test reports whether bit i is set.
func (s *Set) Test(i int) bool {
	return s.b.Bit(i) == 1
}

// Mark sets bit i to 1.
func (s *Set) Mark(i int) {
	s.b.SetBit(i, 1)
}
