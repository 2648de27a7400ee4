package contactgraph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Parse reads a contact network from r in the line-oriented text format
// described in the package documentation. Blank lines are skipped; lines
// after the declared edge count are ignored. Complexity: O(lines).
func Parse(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)

	// nextLine yields the next non-blank line, trimmed.
	nextLine := func() (string, bool) {
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				return line, true
			}
		}

		return "", false
	}

	header, ok := nextLine()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("contactgraph: read: %w", err)
		}

		return nil, ErrEmptyInput
	}
	n, err := strconv.Atoi(header)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("contactgraph: vertex count %q: %w", header, ErrBadHeader)
	}

	header, ok = nextLine()
	if !ok {
		return nil, fmt.Errorf("contactgraph: missing edge count: %w", ErrBadHeader)
	}
	m, err := strconv.Atoi(header)
	if err != nil || m < 0 {
		return nil, fmt.Errorf("contactgraph: edge count %q: %w", header, ErrBadHeader)
	}

	edges := make([]Edge, 0, m)
	var (
		line   string
		fields []string
		e      Edge
	)
	for i := 0; i < m; i++ {
		line, ok = nextLine()
		if !ok {
			return nil, fmt.Errorf("contactgraph: got %d of %d edges: %w", i, m, ErrEdgeCount)
		}
		fields = strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("contactgraph: edge line %q: %w", line, ErrBadEdge)
		}
		if e, err = parseEdge(fields, n); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("contactgraph: read: %w", err)
	}

	return &Graph{N: n, Edges: edges}, nil
}

// parseEdge converts one "u v w" triple, validating both endpoints against
// [0, n) and rejecting non-numeric or NaN weights.
func parseEdge(fields []string, n int) (Edge, error) {
	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return Edge{}, fmt.Errorf("contactgraph: source %q: %w", fields[0], ErrBadEdge)
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return Edge{}, fmt.Errorf("contactgraph: destination %q: %w", fields[1], ErrBadEdge)
	}
	if from < 0 || from >= n || to < 0 || to >= n {
		return Edge{}, fmt.Errorf("contactgraph: edge %d→%d with %d vertices: %w", from, to, n, ErrVertexRange)
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil || math.IsNaN(w) {
		return Edge{}, fmt.Errorf("contactgraph: weight %q: %w", fields[2], ErrBadWeight)
	}

	return Edge{From: from, To: to, Weight: w}, nil
}

// LoadFile parses the contact network stored at path.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("contactgraph: open: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
