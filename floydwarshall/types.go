// Package floydwarshall: options and sentinel errors.
package floydwarshall

import "errors"

// NoHop is the next-hop sentinel: next[i][j] == NoHop means no path from i
// to j is known (and, on the diagonal, that no cycle through i improved it).
const NoHop = -1

// Sentinel errors returned by Compute and by Result queries.
var (
	// ErrNilAdjacency indicates that a nil adjacency matrix was passed to Compute.
	ErrNilAdjacency = errors.New("floydwarshall: adjacency matrix is nil")

	// ErrNonSquare indicates that the adjacency matrix is rectangular.
	ErrNonSquare = errors.New("floydwarshall: adjacency matrix is not square")

	// ErrDirtyDiagonal indicates a non-zero self-distance in the adjacency
	// matrix. The algorithm requires dist(i,i) == 0 before it runs.
	ErrDirtyDiagonal = errors.New("floydwarshall: adjacency diagonal must be zero")

	// ErrVertexRange indicates that a query referenced a vertex index
	// outside [0, n). Surfaced immediately; indices are never clamped.
	ErrVertexRange = errors.New("floydwarshall: vertex index out of range")

	// ErrNotReachable indicates that no directed path exists between the
	// queried vertices (their distance is +Inf).
	ErrNotReachable = errors.New("floydwarshall: destination not reachable")

	// ErrNoProgress indicates that a next-hop walk exceeded its step bound
	// without reaching the destination. This can only happen when a
	// negative cycle corrupted the matrices.
	ErrNoProgress = errors.New("floydwarshall: next-hop walk did not terminate")
)

// Options configures a single Compute run.
//
// Snapshots – record a copy of the distance matrix before the first pass
// and after every k pass. Off by default: the copies cost O(n³) memory and
// only trace/teaching output needs them.
type Options struct {
	Snapshots bool
}

// Option is a functional option for Compute.
type Option func(*Options)

// WithSnapshots enables per-pass distance snapshots (see Result.Snapshots).
func WithSnapshots() Option {
	return func(o *Options) { o.Snapshots = true }
}

// DefaultOptions returns the defaults: no snapshots.
func DefaultOptions() Options {
	return Options{Snapshots: false}
}
