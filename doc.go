// Package contagio analyzes infection resistance in social-contact
// networks.
//
// A contact network is a small, static, directed weighted graph: vertices
// are individuals, edges are contacts, and each weight is the transmission
// resistance of that contact (lower = easier transmission). contagio
// computes the all-pairs minimal cumulative resistance with the
// Floyd–Warshall algorithm and reconstructs the easiest transmission
// route between any two individuals.
//
// The module is organized leaf-first:
//
//   - matrix        — dense float64 matrix primitive (+Inf = no contact)
//   - floydwarshall — the all-pairs shortest-path engine and its queries
//   - contactgraph  — loads edge-list files into adjacency matrices
//   - report        — tables, execution traces, DOT/Graphviz drawings
//   - cmd/contagio  — the command-line front end
//
// The whole analysis is one deterministic batch: load the graph, compute
// the matrices once, answer any number of read-only queries, discard.
package contagio
