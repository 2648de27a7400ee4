package floydwarshall

import (
	"errors"
	"fmt"
	"math"

	"github.com/arbelos/contagio/matrix"
)

// Compute runs Floyd–Warshall on adj and returns an immutable Result.
//
// Contract:
//
//   - adj must be non-nil and square (n×n).
//   - The diagonal must be 0 (self-resistance is zero by definition).
//   - +Inf off-diagonal means "no direct contact"; finite values are edge
//     resistances. Negative values are accepted but see the package note
//     on negative cycles.
//   - adj is not mutated; Compute works on a private copy.
//
// Determinism:
//
//   - Loop order is fixed (k → i → j, ascending) and relaxation is strict
//     ("<"), so both the distances and the reconstructed paths are stable
//     across runs.
//
// Complexity: O(n³) time, O(n²) space (O(n³) with WithSnapshots).
func Compute(adj *matrix.Dense, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := matrix.ValidateSquare(adj); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return nil, ErrNilAdjacency
		}

		return nil, fmt.Errorf("Compute: %dx%d: %w", adj.Rows(), adj.Cols(), ErrNonSquare)
	}

	n := adj.Rows()
	dist := adj.Clone()
	data := dist.Values() // flat row-major alias for the hot loops

	// Validate the diagonal before anything else so the engine never runs
	// on a malformed matrix.
	var i int
	for i = 0; i < n; i++ {
		if data[i*n+i] != 0 {
			return nil, fmt.Errorf("Compute: dist(%d,%d)=%g: %w", i, i, data[i*n+i], ErrDirtyDiagonal)
		}
	}

	// next[i*n+j] is the first hop on the current best path i→j.
	// Seed it from the direct edges.
	next := make([]int, n*n)
	var j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && !math.IsInf(data[i*n+j], 1) {
				next[i*n+j] = j
			} else {
				next[i*n+j] = NoHop
			}
		}
	}

	res := &Result{n: n, dist: dist, next: next, adj: adj.Clone()}
	if cfg.Snapshots {
		// Snapshot 0 is the initial state; snapshot k+1 follows pass k.
		res.snaps = make([]*matrix.Dense, 0, n+1)
		res.snaps = append(res.snaps, dist.Clone())
	}

	// Predeclare loop temporaries; nothing allocates inside the hot loops.
	var (
		k            int     // intermediate vertex (outer, strictly sequential)
		baseK, baseI int     // row base offsets in the flat buffer
		ik, kj, cand float64 // d(i,k), d(k,j) and the candidate via k
	)

	for k = 0; k < n; k++ {
		baseK = k * n

		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k; no route via k can improve i→j
			}
			baseI = i * n

			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue // k cannot reach j
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
					next[baseI+j] = next[baseI+k]
				}
			}
		}

		if cfg.Snapshots {
			res.snaps = append(res.snaps, dist.Clone())
		}
	}

	return res, nil
}
