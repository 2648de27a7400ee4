package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arbelos/contagio/floydwarshall"
	"github.com/arbelos/contagio/matrix"
)

// minColWidth keeps tiny matrices readable.
const minColWidth = 5

// formatWeight renders one matrix cell: ∞ for +Inf, trimmed decimal
// otherwise (integral resistances print without a fraction).
func formatWeight(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// renderTable lays out pre-formatted cells with an index header row and
// column, right-aligning every cell to the widest entry.
func renderTable(n int, cell func(i, j int) string) string {
	cells := make([][]string, n)
	width := minColWidth
	for i := 0; i < n; i++ {
		cells[i] = make([]string, n)
		for j := 0; j < n; j++ {
			cells[i][j] = cell(i, j)
			if len(cells[i][j])+2 > width {
				width = len(cells[i][j]) + 2
			}
		}
	}

	var b strings.Builder
	b.WriteString("     ")
	for j := 0; j < n; j++ {
		fmt.Fprintf(&b, "%*d", width, j)
	}
	b.WriteByte('\n')
	b.WriteString("     ")
	b.WriteString(strings.Repeat("-", n*width))
	b.WriteByte('\n')
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%3d |", i)
		for j := 0; j < n; j++ {
			// Pad by rune count so ∞ and ø align with ASCII cells.
			pad := width - len([]rune(cells[i][j]))
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cells[i][j])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// denseTable renders any square matrix in the fixed-width layout.
func denseTable(m *matrix.Dense) string {
	data := m.Values()
	n := m.Rows()

	return renderTable(n, func(i, j int) string {
		return formatWeight(data[i*n+j])
	})
}

// DistanceTable renders the minimal-resistance matrix, ∞ marking pairs
// with no transmission route.
func DistanceTable(res *floydwarshall.Result) string {
	return denseTable(res.Dist())
}

// NextHopTable renders the next-hop matrix used for path reconstruction,
// ø marking pairs with no route.
func NextHopTable(res *floydwarshall.Result) string {
	return renderTable(res.Order(), func(i, j int) string {
		hop, _ := res.Hop(i, j) // indices generated in range
		if hop == floydwarshall.NoHop {
			return "ø"
		}

		return strconv.Itoa(hop)
	})
}

// PathLine renders one minimal transmission route, e.g.
//
//	0 → 1 → 6 → 7 → 8 → 9 → 14 → 19  (resistance 40)
//
// Errors from the underlying queries (ErrVertexRange, ErrNotReachable)
// pass through unchanged.
func PathLine(res *floydwarshall.Result, src, dst int) (string, error) {
	path, err := res.Path(src, dst)
	if err != nil {
		return "", err
	}
	d, err := res.Distance(src, dst)
	if err != nil {
		return "", err
	}

	return FormatPath(path, d), nil
}

// FormatPath renders an already-reconstructed route with its resistance.
func FormatPath(path []int, resistance float64) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return fmt.Sprintf("%s  (resistance %s)", strings.Join(parts, " → "), formatWeight(resistance))
}
