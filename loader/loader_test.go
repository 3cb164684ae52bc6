package loader_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/loader"
)

func TestReadEdges_CommentsAndLoopsAndDuplicates(t *testing.T) {
	src := strings.NewReader(`# a small graph
0 1
1 2
# trailing comment
1 2
2 2
`)
	edges, err := loader.ReadEdges[uint32](src)
	require.NoError(t, err)
	assert.Equal(t, []csr.Edge[uint32]{
		{Src: 0, Dst: 1},
		{Src: 1, Dst: 2},
		{Src: 1, Dst: 2},
		{Src: 2, Dst: 2},
	}, edges)
}

func TestReadEdges_BlankLineIsParseError(t *testing.T) {
	// Only "#"-prefixed lines are skipped; a whitespace-only line is
	// rejected, matching the reference loader's behaviour exactly.
	src := strings.NewReader("0 1\n\n1 2\n")
	_, err := loader.ReadEdges[uint32](src)
	require.Error(t, err)

	var pe *loader.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestReadEdges_ExtraFieldsRejected(t *testing.T) {
	src := strings.NewReader("0 1 2\n")
	_, err := loader.ReadEdges[uint32](src)
	require.Error(t, err)

	var pe *loader.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Content, "0 1 2")
}

func TestReadEdges_NonIntegerFieldRejected(t *testing.T) {
	src := strings.NewReader("0 x\n")
	_, err := loader.ReadEdges[uint32](src)
	require.Error(t, err)
	require.ErrorIs(t, err, loader.ErrParse)
}

func TestLoadFile_MissingFileIsIoError(t *testing.T) {
	_, err := loader.LoadFile[uint32]("/nonexistent/path/to/edges.txt")
	require.Error(t, err)
	require.ErrorIs(t, err, loader.ErrIO)

	var ie *loader.IoError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "/nonexistent/path/to/edges.txt", ie.Path)
}
