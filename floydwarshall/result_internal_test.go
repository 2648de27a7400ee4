package floydwarshall

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbelos/contagio/matrix"
)

// corruptResult fabricates the post-run state NegativeCycle defends
// against: a negative self-distance whose next-hop chain cannot produce a
// closed walk. Compute never emits such a pair on well-formed input, but
// the probe must degrade to a nil witness instead of looping.
func corruptResult(t *testing.T, n int, hops map[[2]int]int) *Result {
	t.Helper()

	dist, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	require.NoError(t, dist.Set(0, 0, -1))

	next := make([]int, n*n)
	for i := range next {
		next[i] = NoHop
	}
	for at, hop := range hops {
		next[at[0]*n+at[1]] = hop
	}

	return &Result{n: n, dist: dist, next: next}
}

func TestNegativeCycle_NilWitness(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n    int
		hops map[[2]int]int
	}{
		{"NoHopAtStart", 2, nil},
		{"NoHopMidWalk", 3, map[[2]int]int{{0, 0}: 1}},
		{"WalkNeverCloses", 3, map[[2]int]int{{0, 0}: 1, {1, 0}: 2, {2, 0}: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cycle, found := corruptResult(t, tc.n, tc.hops).NegativeCycle()
			require.True(t, found, "dist(0,0) < 0 must be reported")
			require.Nil(t, cycle, "no closed walk is recoverable here")
		})
	}
}
