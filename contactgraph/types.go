// Package contactgraph: domain types and sentinel errors.
package contactgraph

import "errors"

// Sentinel errors for graph loading. All parsing failures are surfaced
// before any computation begins.
var (
	// ErrEmptyInput indicates the input held no non-blank lines.
	ErrEmptyInput = errors.New("contactgraph: input is empty")

	// ErrBadHeader indicates a missing or malformed vertex/edge count line.
	ErrBadHeader = errors.New("contactgraph: malformed header")

	// ErrBadEdge indicates an edge line without exactly three fields.
	ErrBadEdge = errors.New("contactgraph: malformed edge line")

	// ErrVertexRange indicates an edge referencing a vertex outside [0, n).
	ErrVertexRange = errors.New("contactgraph: edge vertex out of range")

	// ErrBadWeight indicates a non-numeric or NaN edge weight.
	ErrBadWeight = errors.New("contactgraph: invalid edge weight")

	// ErrEdgeCount indicates fewer edge lines than the header declared.
	ErrEdgeCount = errors.New("contactgraph: fewer edges than declared")
)

// Edge is one directed contact: From infects To with the given
// transmission resistance (lower = easier transmission).
type Edge struct {
	From, To int
	Weight   float64
}

// Graph is an immutable contact network: N vertices indexed 0..N-1 and a
// directed weighted edge list. Build one via Parse or LoadFile and treat
// it as read-only for the lifetime of an analysis.
type Graph struct {
	N     int
	Edges []Edge
}
