// Package loader reads the plain-text edge-list format into a stream of
// (src, dst) pairs consumable by graph.NewUndirected / graph.NewDirected.
// It is an external collaborator: the core csr/graph/bfs/dijkstra/triangle
// packages never import it, and never read a file themselves.
//
// ERROR PRIORITY: errors are reported in stream order. A file that cannot
// be opened yields IoError before any line is read; after that, the first
// malformed line (ParseError) or read failure (IoError) that the scan
// reaches is returned.
package loader

import (
	"errors"
	"fmt"
)

// ErrIO wraps an underlying byte-stream failure (open, read).
var ErrIO = errors.New("loader: io error")

// ErrParse wraps a malformed non-comment line.
var ErrParse = errors.New("loader: parse error")

// IoError reports that the underlying reader or file failed.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loader: io error: %v", e.Err)
	}
	return fmt.Sprintf("loader: io error reading %q: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return ErrIO }

// ParseError reports a non-comment line that failed to parse as "src dst".
// It carries the 1-based line number and the offending line content.
type ParseError struct {
	Line    int
	Content string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("loader: parse error at line %d (%q): %s", e.Line, e.Content, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }
