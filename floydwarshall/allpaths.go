package floydwarshall

import (
	"fmt"
	"math"
)

// AllPaths enumerates every distinct minimal-resistance path from src to
// dst, in ascending vertex order (paths that branch earlier through a
// lower-numbered vertex come first).
//
// Unlike Path, which returns the single route selected by the fixed
// iteration order, AllPaths is tie-break-insensitive: an edge (u,v) belongs
// to some minimal path exactly when
//
//	w(u,v) + dist(v,dst) == dist(u,dst)
//
// so the enumeration walks the retained adjacency forward along tight
// edges only, skipping vertices already on the working path. Only simple
// paths are reported: a zero-weight cycle sitting on the optimum would
// otherwise admit unboundedly many tied walks. Sums are compared exactly;
// with integer-valued resistances (the contact-network datasets) this is
// precise.
//
// Returns ErrVertexRange or ErrNotReachable under the same conditions as
// Path; src == dst yields the single path [src]. Must not be used when
// NegativeCycle reports true. Complexity: O(E·P) where P is the number of
// minimal paths.
func (r *Result) AllPaths(src, dst int) ([][]int, error) {
	if err := r.checkVertex(src); err != nil {
		return nil, fmt.Errorf("AllPaths: %w", err)
	}
	if err := r.checkVertex(dst); err != nil {
		return nil, fmt.Errorf("AllPaths: %w", err)
	}

	if src == dst {
		return [][]int{{src}}, nil
	}

	d, _ := r.dist.At(src, dst)
	if math.IsInf(d, 1) {
		return nil, fmt.Errorf("AllPaths(%d,%d): %w", src, dst, ErrNotReachable)
	}

	n := r.n
	adj := r.adj.Values()
	dist := r.dist.Values()

	var out [][]int
	onPath := make([]bool, n)
	onPath[src] = true

	var walk func(u int, acc []int)
	walk = func(u int, acc []int) {
		if u == dst {
			path := make([]int, len(acc))
			copy(path, acc)
			out = append(out, path)

			return
		}
		var w float64
		for v := 0; v < n; v++ {
			w = adj[u*n+v]
			if v == u || onPath[v] || math.IsInf(w, 1) {
				continue
			}
			// Tight edge: taking u→v keeps the remaining distance exact.
			if w+dist[v*n+dst] == dist[u*n+dst] {
				onPath[v] = true
				walk(v, append(acc, v))
				onPath[v] = false
			}
		}
	}
	walk(src, []int{src})

	return out, nil
}
