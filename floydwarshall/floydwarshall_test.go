package floydwarshall_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbelos/contagio/floydwarshall"
	"github.com/arbelos/contagio/matrix"
)

// edge is a directed weighted test edge.
type edge struct {
	from, to int
	w        float64
}

// buildAdjacency constructs an n×n adjacency fixture: 0 on the diagonal,
// +Inf off-diagonal, then the given edges.
func buildAdjacency(t *testing.T, n int, edges []edge) *matrix.Dense {
	t.Helper()

	m, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	inf := math.Inf(1)
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				data[i*n+j] = inf
			}
		}
	}
	if err = m.Fill(data); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	for _, e := range edges {
		if err = m.Set(e.from, e.to, e.w); err != nil {
			t.Fatalf("Set(%d,%d,%g): %v", e.from, e.to, e.w, err)
		}
	}

	return m
}

// clrsEdges is the classic 5-vertex directed example with negative edges
// but no negative cycle.
var clrsEdges = []edge{
	{0, 1, 3}, {0, 2, 8}, {0, 4, -4},
	{1, 3, 1}, {1, 4, 7},
	{2, 1, 4},
	{3, 0, 2}, {3, 2, -5},
	{4, 3, 6},
}

// clrsDist is the expected all-pairs closure of clrsEdges.
var clrsDist = [][]float64{
	{0, 1, -3, 2, -4},
	{3, 0, -4, 1, -1},
	{7, 4, 0, 5, 3},
	{2, -1, -5, 0, -2},
	{8, 5, 1, 6, 0},
}

func TestCompute_Errors(t *testing.T) {
	t.Parallel()

	_, err := floydwarshall.Compute(nil)
	require.ErrorIs(t, err, floydwarshall.ErrNilAdjacency)

	rect, _ := matrix.NewDense(3, 4)
	_, err = floydwarshall.Compute(rect)
	require.ErrorIs(t, err, floydwarshall.ErrNonSquare)

	dirty, _ := matrix.NewDense(3, 3)
	require.NoError(t, dirty.Set(1, 1, 2))
	_, err = floydwarshall.Compute(dirty)
	require.ErrorIs(t, err, floydwarshall.ErrDirtyDiagonal)
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	adj := buildAdjacency(t, 5, clrsEdges)
	want := adj.Clone()

	_, err := floydwarshall.Compute(adj)
	require.NoError(t, err)
	require.Equal(t, want.Values(), adj.Values())
}

func TestCompute_CLRS_Correctness(t *testing.T) {
	t.Parallel()

	res, err := floydwarshall.Compute(buildAdjacency(t, 5, clrsEdges))
	require.NoError(t, err)

	var got float64
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			got, err = res.Distance(i, j)
			require.NoError(t, err)
			if got != clrsDist[i][j] {
				t.Fatalf("dist[%d][%d] = %v; want %v", i, j, got, clrsDist[i][j])
			}
		}
	}
}

// Triangle inequality is the defining correctness property of the closure.
func TestCompute_TriangleInequality(t *testing.T) {
	t.Parallel()

	res, err := floydwarshall.Compute(buildAdjacency(t, 5, clrsEdges))
	require.NoError(t, err)

	var dij, dik, dkj float64
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			dij, _ = res.Distance(i, j)
			for k := 0; k < 5; k++ {
				dik, _ = res.Distance(i, k)
				dkj, _ = res.Distance(k, j)
				if dij > dik+dkj {
					t.Fatalf("triangle violated: dist[%d][%d]=%v > dist[%d][%d]+dist[%d][%d]=%v",
						i, j, dij, i, k, k, j, dik+dkj)
				}
			}
		}
	}
}

// Summing edge weights along every reconstructed path must reproduce the
// distance matrix exactly.
func TestPath_WeightConsistency(t *testing.T) {
	t.Parallel()

	adj := buildAdjacency(t, 5, clrsEdges)
	res, err := floydwarshall.Compute(adj)
	require.NoError(t, err)

	var (
		d, sum, w float64
		path      []int
	)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			d, _ = res.Distance(i, j)
			if math.IsInf(d, 1) {
				continue
			}
			path, err = res.Path(i, j)
			require.NoError(t, err)
			require.Equal(t, i, path[0])
			require.Equal(t, j, path[len(path)-1])

			sum = 0
			for s := 0; s+1 < len(path); s++ {
				w, err = adj.At(path[s], path[s+1])
				require.NoError(t, err)
				require.False(t, math.IsInf(w, 1), "path %v uses absent edge %d→%d", path, path[s], path[s+1])
				sum += w
			}
			require.Equal(t, d, sum, "path %v weight mismatch", path)
		}
	}
}

func TestPath_SourceEqualsDestination(t *testing.T) {
	t.Parallel()

	res, err := floydwarshall.Compute(buildAdjacency(t, 5, clrsEdges))
	require.NoError(t, err)

	path, err := res.Path(3, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3}, path)

	d, err := res.Distance(3, 3)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestUnreachable(t *testing.T) {
	t.Parallel()

	// Two components: {0,1} and {2}; plus 2→0 so 2 reaches but is not reached.
	res, err := floydwarshall.Compute(buildAdjacency(t, 3, []edge{
		{0, 1, 1}, {1, 0, 1}, {2, 0, 4},
	}))
	require.NoError(t, err)

	d, err := res.Distance(0, 2)
	require.NoError(t, err)
	require.True(t, math.IsInf(d, 1))

	_, err = res.Path(0, 2)
	require.ErrorIs(t, err, floydwarshall.ErrNotReachable)

	_, err = res.AllPaths(0, 2)
	require.ErrorIs(t, err, floydwarshall.ErrNotReachable)

	hop, err := res.Hop(0, 2)
	require.NoError(t, err)
	require.Equal(t, floydwarshall.NoHop, hop)
}

func TestQueries_VertexRange(t *testing.T) {
	t.Parallel()

	res, err := floydwarshall.Compute(buildAdjacency(t, 3, []edge{{0, 1, 1}}))
	require.NoError(t, err)

	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, err = res.Distance(pair[0], pair[1]); !errors.Is(err, floydwarshall.ErrVertexRange) {
			t.Errorf("Distance(%d,%d) error = %v; want ErrVertexRange", pair[0], pair[1], err)
		}
		if _, err = res.Path(pair[0], pair[1]); !errors.Is(err, floydwarshall.ErrVertexRange) {
			t.Errorf("Path(%d,%d) error = %v; want ErrVertexRange", pair[0], pair[1], err)
		}
	}
}

// Snapshot k+1 must never exceed snapshot k in any cell: distances only
// improve as more intermediate vertices are admitted.
func TestSnapshots_MonotonicImprovement(t *testing.T) {
	t.Parallel()

	res, err := floydwarshall.Compute(buildAdjacency(t, 5, clrsEdges), floydwarshall.WithSnapshots())
	require.NoError(t, err)

	snaps := res.Snapshots()
	require.Len(t, snaps, 6, "initial state plus one snapshot per k pass")

	for k := 1; k < len(snaps); k++ {
		prev, curr := snaps[k-1].Values(), snaps[k].Values()
		for idx := range curr {
			if curr[idx] > prev[idx] {
				t.Fatalf("pass %d regressed cell %d: %v → %v", k-1, idx, prev[idx], curr[idx])
			}
		}
	}

	// Final snapshot is the result itself.
	require.Equal(t, res.Dist().Values(), snaps[len(snaps)-1].Values())
}

func TestSnapshots_DisabledByDefault(t *testing.T) {
	t.Parallel()

	res, err := floydwarshall.Compute(buildAdjacency(t, 3, []edge{{0, 1, 1}}))
	require.NoError(t, err)
	require.Nil(t, res.Snapshots())
}

func TestAllPaths_EnumeratesTies(t *testing.T) {
	t.Parallel()

	// Diamond: two equal-weight routes 0→3.
	res, err := floydwarshall.Compute(buildAdjacency(t, 4, []edge{
		{0, 1, 1}, {1, 3, 1},
		{0, 2, 1}, {2, 3, 1},
	}))
	require.NoError(t, err)

	paths, err := res.AllPaths(0, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 3}, {0, 2, 3}}, paths)

	// The single-path query picks exactly one of them, deterministically.
	single, err := res.Path(0, 3)
	require.NoError(t, err)
	require.Contains(t, paths, single)

	// Unique optimum collapses to one path.
	self, err := res.AllPaths(2, 2)
	require.NoError(t, err)
	require.Equal(t, [][]int{{2}}, self)
}

// A zero-weight cycle lying on the optimum must not let the enumeration
// revisit vertices: only simple tied paths come back.
func TestAllPaths_ZeroWeightCycleStaysSimple(t *testing.T) {
	t.Parallel()

	// 1↔2 costs nothing in either direction; both 0→1→3 and 0→1→2→3
	// accumulate 2, and nothing else does.
	res, err := floydwarshall.Compute(buildAdjacency(t, 4, []edge{
		{0, 1, 1}, {1, 3, 1},
		{1, 2, 0}, {2, 1, 0}, {2, 3, 1},
	}))
	require.NoError(t, err)

	paths, err := res.AllPaths(0, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2, 3}, {0, 1, 3}}, paths)

	for _, p := range paths {
		seen := make(map[int]bool, len(p))
		for _, v := range p {
			require.False(t, seen[v], "path %v revisits vertex %d", p, v)
			seen[v] = true
		}
	}
}

func TestNegativeCycle(t *testing.T) {
	t.Parallel()

	// Clean graph: no cycle reported.
	res, err := floydwarshall.Compute(buildAdjacency(t, 5, clrsEdges))
	require.NoError(t, err)
	_, found := res.NegativeCycle()
	require.False(t, found)

	// 0→1 (1), 1→0 (-3): total -2 around the loop.
	res, err = floydwarshall.Compute(buildAdjacency(t, 2, []edge{
		{0, 1, 1}, {1, 0, -3},
	}))
	require.NoError(t, err, "negative cycles are a silent-correctness risk, not a Compute error")

	cycle, found := res.NegativeCycle()
	require.True(t, found)
	require.Equal(t, []int{0, 1, 0}, cycle)

	d, err := res.Distance(0, 0)
	require.NoError(t, err)
	require.Negative(t, d)
}
