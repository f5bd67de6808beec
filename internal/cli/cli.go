// Package cli implements the tspsuite command-line interface.
//
// The CLI runs the exact Held-Karp solver and the local searches on
// generated or configured instances. Several independent runs of one
// configuration execute concurrently, each with its own evaluator and a
// seed derived from the configured one.
//
// # Commands
//
//   - solve: Held-Karp branch and bound
//   - search: iterated local search (2opt, oropt, cand2opt)
//   - candidates: inspect nearest-neighbor candidate lists
//
// # Configuration
//
// A TOML run file (--config) sets everything; flags override single
// fields. Without a file the defaults describe a random planar instance
// with 100 nodes and a budget of 100000 evaluations.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/optimizationBenchmarking/tspSuite-sub014/candidate"
	"github.com/optimizationBenchmarking/tspSuite-sub014/internal/metrics"
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "tspsuite"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	Metrics *metrics.Metrics

	verbose     bool
	configPath  string
	metricsAddr string
	flags       config // raw flag values, applied only when set
	cfg         config // effective configuration after PersistentPreRunE
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		Metrics: metrics.New(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "tspsuite benchmarks TSP solvers",
		Long:         `tspsuite runs exact and heuristic TSP algorithms on generated or configured instances and reports the tours they find.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			return c.prepare(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&c.configPath, "config", "c", "", "TOML run file")
	pf.StringVar(&c.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running (e.g. :9090)")
	pf.Int64Var(&c.flags.Seed, "seed", 0, "master seed; run i uses a seed derived from it")
	pf.IntVar(&c.flags.Runs, "runs", 0, "number of independent runs")
	pf.IntVarP(&c.flags.Instance.Nodes, "nodes", "n", 0, "nodes of the random planar instance")
	pf.Int64Var(&c.flags.Instance.Seed, "instance-seed", 0, "seed of the random planar instance")
	pf.Int64Var(&c.flags.Budget.MaxFEs, "max-fes", 0, "evaluation budget per run (0 = unlimited)")
	pf.DurationVar(&c.flags.Budget.TimeLimit, "time-limit", 0, "wall-clock budget per run (0 = unlimited)")
	pf.Int64Var(&c.flags.Budget.Target, "target", 0, "stop a run once a tour this short is found")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.candidatesCommand())

	return root
}

// prepare loads the run file and applies the global flags the user set.
func (c *CLI) prepare(cmd *cobra.Command) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = c.flags.Seed
	}
	if flags.Changed("runs") {
		cfg.Runs = c.flags.Runs
	}
	if flags.Changed("nodes") {
		cfg.Instance.Nodes = c.flags.Instance.Nodes
		cfg.Instance.Points, cfg.Instance.Matrix = nil, nil
	}
	if flags.Changed("instance-seed") {
		cfg.Instance.Seed = c.flags.Instance.Seed
	}
	if flags.Changed("max-fes") {
		cfg.Budget.MaxFEs = c.flags.Budget.MaxFEs
	}
	if flags.Changed("time-limit") {
		cfg.Budget.TimeLimit = c.flags.Budget.TimeLimit
	}
	if flags.Changed("target") {
		cfg.Budget.Target = c.flags.Budget.Target
	}

	if err := cfg.validate(); err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

// =============================================================================
// Shared Steps
// =============================================================================

// buildInstance creates the configured instance and logs its size.
func buildInstance(ctx context.Context, ic instanceConfig) (*objective.Instance, error) {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	in, err := ic.build()
	if err != nil {
		return nil, err
	}
	p.done("Built instance " + in.Name())
	logger.Debug("instance", "nodes", in.N(), "symmetric", in.Symmetric(), "planar", in.Points() != nil)

	return in, nil
}

// buildCandidates returns the m-nearest-neighbor candidate set of in,
// using the R-tree for planar instances.
func buildCandidates(ctx context.Context, in *objective.Instance, m int) (candidate.Set, error) {
	p := newProgress(loggerFromContext(ctx))

	var (
		set candidate.Set
		err error
	)
	if pts := in.Points(); pts != nil && m > 0 && m < in.N()-1 {
		set, err = candidate.AllocatePlanar(pts, m, nil)
		if err != nil {
			return nil, err
		}
	} else {
		set = candidate.Allocate(in, m, nil)
	}
	p.done("Built candidate set")

	return set, nil
}

// execute runs solve cfg.Runs times and prints the summary to w.
func (c *CLI) execute(ctx context.Context, w io.Writer, cfg config, in *objective.Instance, algorithm string, solve solver, exact bool) error {
	if c.metricsAddr != "" {
		stop, err := c.serveMetrics(ctx, c.metricsAddr)
		if err != nil {
			return err
		}
		defer stop()
	}

	start := time.Now()
	results, err := c.runAll(ctx, cfg, in, algorithm, solve)
	if len(results) > 0 {
		printResults(w, results, exact)
	}
	loggerFromContext(ctx).Debug("all runs finished", "runs", cfg.Runs, "elapsed", time.Since(start).Round(time.Millisecond))

	return err
}
