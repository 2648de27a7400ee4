package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arbelos/contagio/report"
)

// parsePathSpec parses a "src:dst" highlight specification.
func parsePathSpec(spec string) (src, dst int, err error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("path spec %q: want <source>:<destination>", spec)
	}
	if src, err = parseVertex(parts[0]); err != nil {
		return 0, 0, err
	}
	if dst, err = parseVertex(parts[1]); err != nil {
		return 0, 0, err
	}

	return src, dst, nil
}

// renderBytes produces the requested artifact from a DOT document.
func renderBytes(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		return report.RenderSVG(ctx, dot)
	case "png":
		return report.RenderPNG(ctx, dot)
	default:
		return nil, fmt.Errorf("unknown format %q: want dot, svg or png", format)
	}
}

// newRenderCmd draws the contact network, optionally highlighting the
// minimal-resistance route between two individuals.
func newRenderCmd() *cobra.Command {
	var (
		pathSpec string
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "render <graph-file>",
		Short: "Draw the contact network (optionally highlighting a route)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if format == "" {
				format = cfg.Format
			}

			var highlight []int
			g, res, err := loadAndCompute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if pathSpec != "" {
				src, dst, err := parsePathSpec(pathSpec)
				if err != nil {
					return err
				}
				if highlight, err = res.Path(src, dst); err != nil {
					return err
				}
			}

			data, err := renderBytes(cmd.Context(), report.ToDOT(g, highlight), format)
			if err != nil {
				return err
			}

			if output == "" {
				base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				output = filepath.Join(cfg.OutputDir, base+"."+format)
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(data)

				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleDim.Render("rendered to "+output))

			return nil
		},
	}

	cmd.Flags().StringVar(&pathSpec, "path", "", "highlight the minimal route <source>:<destination>")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dot, svg or png (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", `output file ("-" for stdout; default <output_dir>/<graph>.<format>)`)

	return cmd
}
