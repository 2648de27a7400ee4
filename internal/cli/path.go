package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arbelos/contagio/report"
)

// parseVertex converts one positional vertex argument. Range validation
// is left to the engine so out-of-range indices surface as ErrVertexRange.
func parseVertex(arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("vertex %q is not an integer", arg)
	}

	return v, nil
}

// newPathCmd prints the minimal-resistance route between two individuals.
func newPathCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "path <graph-file> <source> <destination>",
		Short: "Reconstruct the minimal-resistance transmission route",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseVertex(args[1])
			if err != nil {
				return err
			}
			dst, err := parseVertex(args[2])
			if err != nil {
				return err
			}

			_, res, err := loadAndCompute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			warnNegativeCycle(cmd.Context(), res)

			out := cmd.OutOrStdout()
			if !all {
				line, err := report.PathLine(res, src, dst)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, stylePath.Render(line))

				return nil
			}

			paths, err := res.AllPaths(src, dst)
			if err != nil {
				return err
			}
			d, err := res.Distance(src, dst)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, styleTitle.Render(fmt.Sprintf("%d minimal route(s) %d → %d", len(paths), src, dst)))
			for _, p := range paths {
				fmt.Fprintln(out, stylePath.Render(report.FormatPath(p, d)))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every route tied at the minimum")

	return cmd
}
