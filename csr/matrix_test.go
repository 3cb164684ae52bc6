package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrgraph/csr"
)

func TestFromEdges_BasicInvariants(t *testing.T) {
	// K4-ish directed bag with a duplicate and a self-loop.
	edges := []csr.Edge[uint32]{
		{Src: 0, Dst: 1}, {Src: 0, Dst: 2}, {Src: 0, Dst: 1}, // duplicate
		{Src: 1, Dst: 0}, {Src: 1, Dst: 3},
		{Src: 2, Dst: 2}, // self-loop
		{Src: 3, Dst: 0},
	}
	m := csr.FromEdges(edges)

	require.Equal(t, 4, m.Dim())
	assert.Equal(t, []uint32{1, 2}, m.Row(0)) // duplicate collapsed, ascending
	assert.Equal(t, 2, m.RowLen(0))
	assert.True(t, m.HasIndex(0, 1))
	assert.True(t, m.HasIndex(0, 2))
	assert.False(t, m.HasIndex(0, 3))
	assert.True(t, m.HasIndex(2, 2)) // self-loop retained
	assert.Equal(t, m.N(), 2+2+1+1)
}

func TestFromEdges_Empty(t *testing.T) {
	m := csr.FromEdges[uint32](nil)
	assert.Equal(t, 0, m.Dim())
	assert.Equal(t, 0, m.N())
}

func TestFromArrays_ValidatesInvariants(t *testing.T) {
	// indptr[0] != 0
	_, err := csr.FromArrays([]int{1, 1}, []uint32{})
	assert.ErrorIs(t, err, csr.ErrNonMonotonicIndptr)

	// non-monotonic
	_, err = csr.FromArrays([]int{0, 2, 1}, []uint32{0, 1})
	assert.ErrorIs(t, err, csr.ErrNonMonotonicIndptr)

	// total mismatch
	_, err = csr.FromArrays([]int{0, 1}, []uint32{0, 1})
	assert.ErrorIs(t, err, csr.ErrIndptrTotalMismatch)

	// out-of-range id
	_, err = csr.FromArrays([]int{0, 1}, []uint32{5})
	assert.ErrorIs(t, err, csr.ErrOutOfRangeID)

	// accepted: row order is not checked, so Row(0) comes back as given
	m, err := csr.FromArrays([]int{0, 2, 2}, []uint32{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Dim())
	assert.Equal(t, []uint32{1, 0}, m.Row(0))
}
