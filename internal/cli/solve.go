package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optimizationBenchmarking/tspSuite-sub014/heldkarp"
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

// solveCommand creates the solve command for the exact Held-Karp solvers.
// Runs only differ in their seeds, which the solver does not use, so more
// than one run is mostly useful for timing.
func (c *CLI) solveCommand() *cobra.Command {
	var hk heldKarpConfig

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve an instance exactly with Held-Karp branch and bound or dynamic programming",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			flags := cmd.Flags()
			if flags.Changed("method") {
				cfg.HeldKarp.Method = hk.Method
			}
			if flags.Changed("lambda") {
				cfg.HeldKarp.Lambda = hk.Lambda
			}
			if flags.Changed("decay") {
				cfg.HeldKarp.Decay = hk.Decay
			}
			if flags.Changed("min-lambda") {
				cfg.HeldKarp.MinLambda = hk.MinLambda
			}
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	def := heldkarp.DefaultOptions()
	cmd.Flags().StringVar(&hk.Method, "method", methodBranchAndBound, "exact method: bb (branch and bound), dp (dynamic program, small or asymmetric instances)")
	cmd.Flags().Float64Var(&hk.Lambda, "lambda", def.Lambda, "initial subgradient step multiplier")
	cmd.Flags().Float64Var(&hk.Decay, "decay", def.Decay, "step decay when the bound stalls, in (0, 1)")
	cmd.Flags().Float64Var(&hk.MinLambda, "min-lambda", def.MinLambda, "end a node's relaxation below this step")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, w io.Writer, cfg config) error {
	in, err := buildInstance(ctx, cfg.Instance)
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	opts := cfg.HeldKarp.options()

	var (
		exact     func(objective.Objective) (heldkarp.Result, error)
		algorithm = "heldkarp"
	)
	switch strings.ToLower(cfg.HeldKarp.Method) {
	case methodBranchAndBound:
		exact = func(obj objective.Objective) (heldkarp.Result, error) { return heldkarp.Solve(obj, opts) }
	case methodDP:
		exact = heldkarp.SolveDP
		algorithm = "heldkarp-dp"
	default:
		return fmt.Errorf("%w: unknown method %q", ErrInvalidConfig, cfg.HeldKarp.Method)
	}

	solve := func(ev *objective.Evaluator) (runResult, error) {
		res, err := exact(ev)
		if err != nil {
			return runResult{}, err
		}
		logger.Debug("search tree", "nodes", res.Nodes, "oneTrees", res.OneTrees, "optimal", res.Optimal)

		return runResult{LowerBound: res.LowerBound, Optimal: res.Optimal}, nil
	}

	return c.execute(ctx, w, cfg, in, algorithm, solve, true)
}
