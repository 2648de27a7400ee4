package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arbelos/contagio/floydwarshall"
	"github.com/arbelos/contagio/report"
)

// newTraceCmd writes the full per-pass execution trace of one computation,
// stamped with a unique run identifier.
func newTraceCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "trace <graph-file>",
		Short: "Write the per-pass execution trace of the computation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := loadAndCompute(cmd.Context(), args[0], floydwarshall.WithSnapshots())
			if err != nil {
				return err
			}

			doc, err := report.Trace(res)
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			var b strings.Builder
			fmt.Fprintf(&b, "contagio trace %s\n", runID)
			fmt.Fprintf(&b, "graph: %s\n\n", args[0])
			b.WriteString(doc)

			if output == "" {
				cfg := configFromContext(cmd.Context())
				output = filepath.Join(cfg.OutputDir, fmt.Sprintf("trace-%s.txt", runID))
			}
			if output == "-" {
				fmt.Fprint(cmd.OutOrStdout(), b.String())

				return nil
			}

			if err := os.WriteFile(output, []byte(b.String()), 0o644); err != nil {
				return fmt.Errorf("write trace: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleDim.Render("trace written to "+output))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `output file ("-" for stdout; default <output_dir>/trace-<run-id>.txt)`)

	return cmd
}
