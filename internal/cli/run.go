package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbelos/contagio/report"
)

// newRunCmd computes and prints the all-pairs minimal-resistance matrix.
func newRunCmd() *cobra.Command {
	var showNext bool

	cmd := &cobra.Command{
		Use:   "run <graph-file>",
		Short: "Compute and print the minimal-resistance matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := loadAndCompute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			warnNegativeCycle(cmd.Context(), res)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render("Minimal resistance"))
			fmt.Fprint(out, report.DistanceTable(res))

			if showNext {
				fmt.Fprintln(out)
				fmt.Fprintln(out, styleTitle.Render("Next hop"))
				fmt.Fprint(out, report.NextHopTable(res))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showNext, "next", false, "also print the next-hop matrix")

	return cmd
}
