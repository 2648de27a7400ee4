package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arbelos/contagio/floydwarshall"
)

// ErrNoSnapshots indicates that Trace was given a Result computed without
// floydwarshall.WithSnapshots.
var ErrNoSnapshots = errors.New("report: result carries no snapshots")

// traceSeparator visually splits the per-pass states.
const traceSeparator = "----------------------------------------"

// Trace renders the full execution trace of one computation: the initial
// distance matrix, the state after each k pass, and the negative-cycle
// verdict. The Result must have been computed with WithSnapshots.
func Trace(res *floydwarshall.Result) (string, error) {
	snaps := res.Snapshots()
	if snaps == nil {
		return "", ErrNoSnapshots
	}

	var b strings.Builder
	b.WriteString("INITIAL STATE:\n")
	b.WriteString(denseTable(snaps[0]))
	b.WriteString(traceSeparator)
	b.WriteByte('\n')

	for k := 1; k < len(snaps); k++ {
		fmt.Fprintf(&b, "\nState after k = %d (processing vertex %d):\n", k-1, k-1)
		b.WriteString(denseTable(snaps[k]))
		b.WriteString(traceSeparator)
		b.WriteByte('\n')
	}

	if cycle, found := res.NegativeCycle(); found {
		b.WriteString("\nRESULT: NEGATIVE CYCLE DETECTED!\n")
		if cycle != nil {
			fmt.Fprintf(&b, "Cycle: %s\n", joinVertices(cycle))
		}
	} else {
		b.WriteString("\nRESULT: No negative cycles.\n")
	}

	return b.String(), nil
}

func joinVertices(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(parts, " → ")
}
