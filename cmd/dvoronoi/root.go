package main

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dvoronoi/metric"
	"github.com/katalvlaran/dvoronoi/site"
	"github.com/katalvlaran/dvoronoi/voronoi"
)

// newRootCmd wires the flags to a Config. Flags set explicitly on the command
// line override the values of --config.
func newRootCmd() *cobra.Command {
	flagged := defaultConfig()
	var (
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "dvoronoi",
		Short: "tessellate a grid into weighted Voronoi regions",
		Long: `
Grows every site's region one ring per round until the grid is covered, then
prints one line per site with its region size and number of components,
followed by region-size statistics.
`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := flagged
			if configPath != "" {
				var err error
				if cfg, err = loadConfig(configPath, defaultConfig()); err != nil {
					return err
				}
				overrideFromFlags(&cfg, flagged, cmd.Flags())
			}

			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return run(cmd.Context(), cfg, log, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file with run settings and optional explicit points")
	f.IntVar(&flagged.Width, "width", flagged.Width, "grid width")
	f.IntVar(&flagged.Height, "height", flagged.Height, "grid height")
	f.IntVar(&flagged.Sites, "sites", flagged.Sites, "number of random sites")
	f.Int64Var(&flagged.Seed, "seed", flagged.Seed, "random source seed")
	f.StringVar(&flagged.Metric, "metric", flagged.Metric, "distance metric: euclidean, manhattan, multiplicative, additive or power")
	f.IntVar(&flagged.Steps, "steps", flagged.Steps, "rounds to run; negative runs to the fixpoint")
	f.IntVar(&flagged.Workers, "workers", flagged.Workers, "boundary fan-out goroutines; 0 uses GOMAXPROCS")
	f.BoolVarP(&verbose, "verbose", "v", false, "log build and round events")
	return cmd
}

// newLogger returns a development logger when verbose, otherwise a
// production logger that only reports warnings and errors. Both write to
// stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "dvoronoi: building logger")
	}
	return log, nil
}

// run builds the tessellation described by cfg, advances it and writes the
// report to out.
func run(ctx context.Context, cfg Config, log *zap.Logger, out io.Writer) error {
	bounds, err := cfg.validate()
	if err != nil {
		return err
	}
	m, err := metric.Parse(cfg.Metric)
	if err != nil {
		return err
	}

	tess, err := voronoi.NewBuilder(cfg.sites(),
		voronoi.WithMetric(m),
		voronoi.WithBounds(bounds),
		voronoi.WithWorkers(cfg.Workers),
		voronoi.WithLogger(log),
	).Build()
	if err != nil {
		return err
	}

	if _, err := advance(ctx, tess, cfg.Steps); err != nil {
		return err
	}
	return writeReport(out, tess)
}

// advance runs steps rounds, or to the fixpoint when steps is negative,
// and returns the number of rounds run. It stops early at the fixpoint.
func advance(ctx context.Context, tess *voronoi.Tessellation[site.Weighted], steps int) (int, error) {
	if steps < 0 {
		return tess.ComputeContext(ctx)
	}
	n := 0
	for ; n < steps && !tess.Done(); n++ {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		tess.Step()
	}
	return n, nil
}
