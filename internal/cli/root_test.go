package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arbelos/contagio/floydwarshall"
)

const contact20 = "../../contactgraph/testdata/contact20.txt"

// execute runs the CLI with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", contact20)
	require.NoError(t, err)
	require.Contains(t, out, "Minimal resistance")
	require.Contains(t, out, "40", "dist(0,19) must appear in the table")
	require.NotContains(t, out, "Next hop")
}

func TestRunCommand_NextHop(t *testing.T) {
	out, err := execute(t, "run", "--next", contact20)
	require.NoError(t, err)
	require.Contains(t, out, "Next hop")
	require.Contains(t, out, "ø")
}

func TestPathCommand(t *testing.T) {
	out, err := execute(t, "path", contact20, "0", "19")
	require.NoError(t, err)
	require.Contains(t, out, "0 → 1 → 6 → 7 → 8 → 9 → 14 → 19")
	require.Contains(t, out, "(resistance 40)")
}

func TestPathCommand_All(t *testing.T) {
	out, err := execute(t, "path", "--all", contact20, "0", "19")
	require.NoError(t, err)
	require.Contains(t, out, "1 minimal route(s) 0 → 19")
}

func TestPathCommand_Errors(t *testing.T) {
	_, err := execute(t, "path", contact20, "zero", "19")
	require.Error(t, err)

	_, err = execute(t, "path", contact20, "0", "99")
	require.ErrorIs(t, err, floydwarshall.ErrVertexRange)

	// Two disconnected individuals: no fabricated route.
	graph := filepath.Join(t.TempDir(), "split.txt")
	require.NoError(t, os.WriteFile(graph, []byte("3\n1\n0 1 2\n"), 0o644))
	_, err = execute(t, "path", graph, "0", "2")
	require.ErrorIs(t, err, floydwarshall.ErrNotReachable)
}

func TestTraceCommand_Stdout(t *testing.T) {
	out, err := execute(t, "trace", "-o", "-", contact20)
	require.NoError(t, err)
	require.Contains(t, out, "contagio trace ")
	require.Contains(t, out, "INITIAL STATE:")
	require.Contains(t, out, "State after k = 19")
	require.Contains(t, out, "RESULT: No negative cycles.")
}

func TestTraceCommand_File(t *testing.T) {
	output := filepath.Join(t.TempDir(), "trace.txt")
	_, err := execute(t, "trace", "-o", output, contact20)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(data), "INITIAL STATE:")
}

func TestRenderCommand_DOT(t *testing.T) {
	out, err := execute(t, "render", "-f", "dot", "-o", "-", "--path", "0:19", contact20)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "digraph contacts {"))
	require.Contains(t, out, "penwidth", "highlighted route must carry the bold attributes")
}

func TestRenderCommand_UnknownFormat(t *testing.T) {
	_, err := execute(t, "render", "-f", "tiff", "-o", "-", contact20)
	require.Error(t, err)
}

func TestParsePathSpec(t *testing.T) {
	src, dst, err := parsePathSpec("0:19")
	require.NoError(t, err)
	require.Equal(t, 0, src)
	require.Equal(t, 19, dst)

	for _, bad := range []string{"", "1", "1:2:3", "a:2", "1:b"} {
		if _, _, err := parsePathSpec(bad); err == nil {
			t.Errorf("parsePathSpec(%q) expected error", bad)
		}
	}
}
