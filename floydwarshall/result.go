package floydwarshall

import (
	"fmt"
	"math"

	"github.com/arbelos/contagio/matrix"
)

// Result holds the output of one Compute run: the minimal-resistance matrix,
// the next-hop matrix and a copy of the initial adjacency.
//
// A Result is read-only after Compute returns; concurrent readers need no
// locking. Distance and Path are pure reads, recomputation is only ever
// needed if the underlying edge list changes (in which case the caller
// builds a new adjacency and calls Compute again).
type Result struct {
	n     int             // vertex count
	dist  *matrix.Dense   // minimal cumulative resistance, n×n
	next  []int           // flat n×n next-hop matrix, NoHop = no path
	adj   *matrix.Dense   // initial adjacency, kept for AllPaths and cycles
	snaps []*matrix.Dense // per-pass distance states (WithSnapshots only)
}

// Order returns the number of vertices n.
func (r *Result) Order() int { return r.n }

// Dist returns an independent copy of the n×n minimal-resistance matrix,
// with +Inf marking unreachable pairs.
func (r *Result) Dist() *matrix.Dense { return r.dist.Clone() }

// Snapshots returns the distance matrix states recorded by WithSnapshots:
// element 0 is the initial state, element k+1 the state after pass k.
// Nil when snapshots were not requested. The returned matrices are owned
// by the Result and must be treated as read-only.
func (r *Result) Snapshots() []*matrix.Dense { return r.snaps }

// checkVertex validates a single query index against [0, n).
func (r *Result) checkVertex(v int) error {
	if v < 0 || v >= r.n {
		return fmt.Errorf("vertex %d outside [0,%d): %w", v, r.n, ErrVertexRange)
	}

	return nil
}

// Distance returns the minimal cumulative resistance from src to dst, or
// +Inf if dst is unreachable. Returns ErrVertexRange for invalid indices.
// Complexity: O(1).
func (r *Result) Distance(src, dst int) (float64, error) {
	if err := r.checkVertex(src); err != nil {
		return 0, fmt.Errorf("Distance: %w", err)
	}
	if err := r.checkVertex(dst); err != nil {
		return 0, fmt.Errorf("Distance: %w", err)
	}
	d, _ := r.dist.At(src, dst) // in bounds by construction

	return d, nil
}

// Hop returns the first vertex after src on the minimal path src→dst, or
// NoHop when no path exists. Returns ErrVertexRange for invalid indices.
func (r *Result) Hop(src, dst int) (int, error) {
	if err := r.checkVertex(src); err != nil {
		return NoHop, fmt.Errorf("Hop: %w", err)
	}
	if err := r.checkVertex(dst); err != nil {
		return NoHop, fmt.Errorf("Hop: %w", err)
	}

	return r.next[src*r.n+dst], nil
}

// Path reconstructs the minimal-resistance path from src to dst as the
// literal ordered vertex sequence [src, …, dst].
//
// Behavior:
//
//   - src == dst yields [src] (total resistance 0).
//   - Unreachable dst yields ErrNotReachable, never a fabricated path.
//   - The walk is bounded by n hops; exceeding the bound (possible only
//     when a negative cycle corrupted the matrices) yields ErrNoProgress.
//
// Complexity: O(path length).
func (r *Result) Path(src, dst int) ([]int, error) {
	if err := r.checkVertex(src); err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}
	if err := r.checkVertex(dst); err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}

	if src == dst {
		return []int{src}, nil
	}

	d, _ := r.dist.At(src, dst)
	if math.IsInf(d, 1) {
		return nil, fmt.Errorf("Path(%d,%d): %w", src, dst, ErrNotReachable)
	}

	path := make([]int, 1, 8)
	path[0] = src
	cur := src
	for cur != dst {
		cur = r.next[cur*r.n+dst]
		if cur == NoHop {
			// dist is finite but the hop chain broke: matrices disagree,
			// which only a negative cycle can cause.
			return nil, fmt.Errorf("Path(%d,%d): %w", src, dst, ErrNoProgress)
		}
		path = append(path, cur)
		if len(path) > r.n {
			return nil, fmt.Errorf("Path(%d,%d): exceeded %d hops: %w", src, dst, r.n, ErrNoProgress)
		}
	}

	return path, nil
}

// NegativeCycle reports whether the computed distances expose a negative
// cycle (some dist(i,i) < 0) and, when possible, returns one closed witness
// walk [i, …, i] through the first such vertex.
//
// Detection is deliberately post-hoc: the algorithm itself neither detects
// nor survives negative cycles, and distances on affected pairs must not be
// trusted once found reports true. A nil path with found == true means the
// corrupted next-hop matrix did not yield a closed walk within 2n steps.
func (r *Result) NegativeCycle() (path []int, found bool) {
	data := r.dist.Values()
	start := -1
	var i int
	for i = 0; i < r.n; i++ {
		if data[i*r.n+i] < 0 {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, false
	}

	cur := r.next[start*r.n+start]
	if cur == NoHop {
		return nil, true
	}
	path = []int{start, cur}
	for steps := 0; cur != start && steps < 2*r.n; steps++ {
		cur = r.next[cur*r.n+start]
		if cur == NoHop {
			return nil, true
		}
		path = append(path, cur)
	}
	if cur != start {
		return nil, true
	}

	return path, true
}
