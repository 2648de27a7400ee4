package contactgraph

import (
	"math"

	"github.com/arbelos/contagio/matrix"
)

// Adjacency builds the N×N adjacency matrix the engine consumes: 0 on the
// diagonal, +Inf for absent edges, edge weights elsewhere. Duplicate edges
// follow a last-edge-wins policy (the file order is authoritative).
// Complexity: O(N² + E).
func (g *Graph) Adjacency() *matrix.Dense {
	m, err := matrix.NewDense(g.N, g.N)
	if err != nil {
		// N > 0 is guaranteed by Parse; a Graph built by hand with N <= 0
		// is a programmer error.
		panic(err)
	}

	inf := math.Inf(1)
	data := make([]float64, g.N*g.N)
	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			if i != j {
				data[i*g.N+j] = inf
			}
		}
	}
	_ = m.Fill(data) // length matches by construction

	for _, e := range g.Edges {
		if e.From == e.To {
			continue // self-distance is 0 by definition
		}
		_ = m.Set(e.From, e.To, e.Weight) // bounds validated at parse time
	}

	return m
}

// WithoutVertexEdges returns a copy of the graph with every edge leaving v
// removed, isolating v as an infection source. The receiver is unchanged.
func (g *Graph) WithoutVertexEdges(v int) *Graph {
	out := &Graph{N: g.N, Edges: make([]Edge, 0, len(g.Edges))}
	for _, e := range g.Edges {
		if e.From != v {
			out.Edges = append(out.Edges, e)
		}
	}

	return out
}
