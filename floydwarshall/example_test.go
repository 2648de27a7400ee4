package floydwarshall_test

import (
	"fmt"
	"math"

	"github.com/arbelos/contagio/floydwarshall"
	"github.com/arbelos/contagio/matrix"
)

// ExampleCompute builds a four-person contact network, computes the
// all-pairs minimal resistance and reconstructs the easiest transmission
// route from person 0 to person 3.
func ExampleCompute() {
	const n = 4
	adj, _ := matrix.NewDense(n, n)

	// No direct contact means infinite resistance.
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				_ = adj.Set(i, j, inf)
			}
		}
	}

	// Directed contacts with their transmission resistance.
	_ = adj.Set(0, 1, 2)
	_ = adj.Set(1, 2, 2)
	_ = adj.Set(0, 2, 5)
	_ = adj.Set(2, 3, 1)

	res, err := floydwarshall.Compute(adj)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	d, _ := res.Distance(0, 3)
	path, _ := res.Path(0, 3)
	fmt.Printf("resistance=%g\npath=%v\n", d, path)
	// Output:
	// resistance=5
	// path=[0 1 2 3]
}
