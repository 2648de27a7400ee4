package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arbelos/contagio/contactgraph"
	"github.com/arbelos/contagio/floydwarshall"
)

var (
	version = "dev" // overridden via ldflags at build time
	commit  = "none"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the contagio CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd builds the command tree: run, path, trace, render.
func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "contagio",
		Short: "contagio analyzes transmission resistance in contact networks",
		Long: `contagio computes all-pairs minimal infection resistance over a directed
weighted contact network (Floyd–Warshall) and reconstructs the easiest
transmission routes between individuals.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(withConfig(ctx, cfg))

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("contagio %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	root.AddCommand(newRunCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newTraceCmd())
	root.AddCommand(newRenderCmd())

	return root
}

// loadAndCompute is the shared front half of every command: parse the
// graph file, build the adjacency matrix and run the engine once. The
// resulting matrices are immutable; all commands are pure reads over them.
func loadAndCompute(ctx context.Context, path string, opts ...floydwarshall.Option) (*contactgraph.Graph, *floydwarshall.Result, error) {
	logger := loggerFromContext(ctx)

	g, err := contactgraph.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Debugf("loaded %s: %d vertices, %d edges", path, g.N, len(g.Edges))

	p := newProgress(logger)
	res, err := floydwarshall.Compute(g.Adjacency(), opts...)
	if err != nil {
		return nil, nil, err
	}
	p.done(fmt.Sprintf("computed %d×%d resistance closure", g.N, g.N))

	return g, res, nil
}

// warnNegativeCycle logs the silent-correctness caveat when the computed
// distances expose a negative cycle.
func warnNegativeCycle(ctx context.Context, res *floydwarshall.Result) {
	if cycle, found := res.NegativeCycle(); found {
		logger := loggerFromContext(ctx)
		if cycle != nil {
			logger.Warn(styleWarn.Render(fmt.Sprintf("negative cycle detected through %v; distances are unreliable", cycle)))
		} else {
			logger.Warn(styleWarn.Render("negative cycle detected; distances are unreliable"))
		}
	}
}
