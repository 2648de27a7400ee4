// Package floydwarshall implements the Floyd–Warshall all-pairs
// shortest-path algorithm over dense adjacency matrices, interpreted here
// as cumulative infection resistance between individuals of a
// social-contact network.
//
// Overview:
//
//   - Compute takes an n×n adjacency matrix (0 on the diagonal, +Inf for
//     "no direct contact") and produces an immutable Result holding the
//     minimal-resistance matrix plus a next-hop matrix for path recovery.
//   - The triple relaxation loop runs in the fixed order k → i → j,
//     ascending, with strict "<" improvement. That order is the documented
//     tie-break: among equal-resistance routes, the first one found wins.
//     Callers that must not depend on the tie-break can enumerate every
//     optimum with Result.AllPaths.
//   - The k passes are sequential by construction — pass k reads the
//     closure of passes 0..k-1 — so the outer loop must never be
//     reordered or parallelized. The inner (i, j) sweep for a fixed k is
//     order-insensitive.
//
// When to use:
//
//   - Small, static graphs where every pairwise distance is needed at once.
//     For single-source queries on large sparse graphs a heap-based SSSP
//     is the better tool; this routine is deliberately dense.
//
// Negative weights:
//
//   - Negative edge weights are accepted; negative cycles are NOT detected
//     during the run and silently corrupt affected distances. The classic
//     post-hoc probe (dist[i][i] < 0) is exposed as Result.NegativeCycle
//     so callers whose domain permits negative weights can check.
//     Resistance values are expected non-negative in the epidemic
//     interpretation.
//
// Complexity:
//
//   - Time:  O(n³) — n passes over n² pairs.
//   - Space: O(n²) for the distance and next-hop matrices
//     (plus O(n³) when per-pass snapshots are requested).
//
// Errors (sentinel):
//
//	– ErrNilAdjacency   if the adjacency matrix is nil.
//	– ErrNonSquare      if it is rectangular.
//	– ErrDirtyDiagonal  if any diagonal entry is non-zero.
//	– ErrVertexRange    if a query names a vertex outside [0, n).
//	– ErrNotReachable   if a path is requested between disconnected vertices.
//	– ErrNoProgress     if a next-hop walk fails to terminate
//	                    (only possible under negative cycles).
//
// Example:
//
//	res, err := floydwarshall.Compute(adj)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, _ := res.Distance(0, 19)   // minimal cumulative resistance
//	p, _ := res.Path(0, 19)       // [0 1 6 7 8 9 14 19]
package floydwarshall
