package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/vertex"
)

// ReadEdges parses the edge-list format from r: each line is either a
// comment starting with "#" (skipped) or two whitespace-separated
// non-negative integers "src dst". Lines with more or fewer than two
// fields, or a field that fails to parse as an integer, are rejected.
//
// Whitespace-only lines are NOT treated as comments and are rejected too
// (matching the reference loader's behaviour: only "#"-prefixed lines are
// skipped, deliberately, not every blank line).
//
// ReadEdges does not double undirected edges; callers pass the resulting
// slice to graph.NewUndirected (which doubles) or graph.NewDirected
// (which does not).
func ReadEdges[V vertex.ID](r io.Reader) ([]csr.Edge[V], error) {
	var edges []csr.Edge[V]

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &ParseError{Line: lineNo, Content: scanner.Text(), Reason: "expected exactly two fields"}
		}

		src, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Content: scanner.Text(), Reason: "invalid first field: " + err.Error()}
		}
		dst, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Content: scanner.Text(), Reason: "invalid second field: " + err.Error()}
		}

		edges = append(edges, csr.Edge[V]{Src: V(src), Dst: V(dst)})
	}
	if err := scanner.Err(); err != nil {
		return nil, &IoError{Err: err}
	}

	return edges, nil
}

// LoadFile opens path and parses it with ReadEdges.
func LoadFile[V vertex.ID](path string) ([]csr.Edge[V], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IoError{Path: path, Err: err}
	}
	defer f.Close()

	edges, err := ReadEdges[V](f)
	if err != nil {
		if ioErr, ok := err.(*IoError); ok {
			ioErr.Path = path
			return nil, ioErr
		}
		return nil, err
	}
	return edges, nil
}
