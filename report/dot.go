package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/arbelos/contagio/contactgraph"
)

// ToDOT converts a contact network to Graphviz DOT. When highlight is a
// vertex sequence (as returned by Result.Path), its vertices are filled
// and its edges drawn bold red so the minimal-resistance route stands out.
// The DOT string renders with [RenderSVG] or [RenderPNG].
func ToDOT(g *contactgraph.Graph, highlight []int) string {
	onPath := make(map[int]bool, len(highlight))
	onEdge := make(map[[2]int]bool, len(highlight))
	for i, v := range highlight {
		onPath[v] = true
		if i+1 < len(highlight) {
			onEdge[[2]int{v, highlight[i+1]}] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph contacts {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for v := 0; v < g.N; v++ {
		if onPath[v] {
			fmt.Fprintf(&buf, "  %d [fillcolor=\"#f4a261\"];\n", v)
		} else {
			fmt.Fprintf(&buf, "  %d;\n", v)
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if onEdge[[2]int{e.From, e.To}] {
			fmt.Fprintf(&buf, "  %d -> %d [label=\"%s\", color=\"#e63946\", penwidth=2.5];\n",
				e.From, e.To, formatWeight(e.Weight))
		} else {
			fmt.Fprintf(&buf, "  %d -> %d [label=\"%s\"];\n", e.From, e.To, formatWeight(e.Weight))
		}
	}

	buf.WriteString("}\n")

	return buf.String()
}

// render runs Graphviz over a DOT document in the requested format.
func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("report: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("report: render: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderSVG renders a DOT document to SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT document to PNG bytes.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}
