package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optimizationBenchmarking/tspSuite-sub014/construct"
	"github.com/optimizationBenchmarking/tspSuite-sub014/localsearch"
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
	"github.com/optimizationBenchmarking/tspSuite-sub014/tour"
)

// searchCommand creates the search command for the iterated local searches.
//
// Algorithms:
//   - 2opt: first-improvement 2-opt on a plain path
//   - oropt: segment moves of length 1 to 3 on a plain path
//   - cand2opt: 2-opt restricted to candidate lists on an undoable tour list
func (c *CLI) searchCommand() *cobra.Command {
	var sc searchConfig

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run an iterated local search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			flags := cmd.Flags()
			if flags.Changed("algo") {
				cfg.Search.Algorithm = sc.Algorithm
			}
			if flags.Changed("init") {
				cfg.Search.Init = sc.Init
			}
			if flags.Changed("perturbation") {
				cfg.Search.Perturbation = sc.Perturbation
			}
			if flags.Changed("acceptance") {
				cfg.Search.Acceptance = sc.Acceptance
			}
			if flags.Changed("termination") {
				cfg.Search.Termination = sc.Termination
			}
			if flags.Changed("max-iterations") {
				cfg.Search.MaxIterations = sc.MaxIterations
			}
			if flags.Changed("candidates") {
				cfg.Search.Candidates = sc.Candidates
			}
			return c.runSearch(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	def := defaultConfig().Search
	cmd.Flags().StringVarP(&sc.Algorithm, "algo", "a", def.Algorithm, "local search: 2opt, oropt, cand2opt")
	cmd.Flags().StringVar(&sc.Init, "init", def.Init, "starting tour: random, nearest, christofides")
	cmd.Flags().StringVarP(&sc.Perturbation, "perturbation", "p", def.Perturbation, "perturbation: pathShuffle, doubleBridge")
	cmd.Flags().StringVar(&sc.Acceptance, "acceptance", def.Acceptance, "acceptance: ifBetterOrEqual, ifBetter, always")
	cmd.Flags().StringVar(&sc.Termination, "termination", def.Termination, "termination: never, ifDifferent, ifBetter, ifBetterOrEqual")
	cmd.Flags().IntVar(&sc.MaxIterations, "max-iterations", def.MaxIterations, "cap on search calls per run (0 = unlimited)")
	cmd.Flags().IntVarP(&sc.Candidates, "candidates", "m", def.Candidates, "candidates per node for cand2opt")

	return cmd
}

// searchOptions translates the policy names of sc.
func searchOptions(sc searchConfig) ([]localsearch.Option, error) {
	acc, err := parseAcceptance(sc.Acceptance)
	if err != nil {
		return nil, err
	}
	term, err := parseTermination(sc.Termination)
	if err != nil {
		return nil, err
	}
	pert, err := parsePerturbation(sc.Perturbation)
	if err != nil {
		return nil, err
	}

	return []localsearch.Option{
		localsearch.WithAcceptance(acc),
		localsearch.WithTermination(term),
		localsearch.WithPerturbation(pert),
		localsearch.WithMaxIterations(sc.MaxIterations),
	}, nil
}

// bounded reports whether a search run under cfg is guaranteed to stop
// without an external signal.
func bounded(cfg config) bool {
	b := cfg.Budget
	return b.MaxFEs > 0 || b.TimeLimit > 0 || b.Target > 0 ||
		cfg.Search.MaxIterations > 0 || !strings.EqualFold(cfg.Search.Termination, localsearch.TerminateNever.String())
}

func (c *CLI) runSearch(ctx context.Context, w io.Writer, cfg config) error {
	if !bounded(cfg) {
		return fmt.Errorf("%w: search without budget, iteration cap or termination never stops", ErrInvalidConfig)
	}
	opts, err := searchOptions(cfg.Search)
	if err != nil {
		return err
	}

	in, err := buildInstance(ctx, cfg.Instance)
	if err != nil {
		return err
	}
	start, err := startTour(ctx, cfg.Search.Init, in)
	if err != nil {
		return err
	}
	n := in.N()
	name := cfg.Search.Algorithm
	logger := loggerFromContext(ctx)

	var solve solver
	switch name {
	case algoTwoOpt, algoOrOpt:
		solve = func(ev *objective.Evaluator) (runResult, error) {
			var s localsearch.Searcher[*localsearch.Path] = localsearch.TwoOpt{}
			if name == algoOrOpt {
				s = &localsearch.OrOpt{}
			}
			a, err := localsearch.New[*localsearch.Path](name, s, opts...)
			if err != nil {
				return runResult{}, err
			}
			logger.Debug("algorithm", "setup", a.String())

			return runResult{}, runFrom(a, localsearch.NewPath(n), start, ev)
		}

	case algoCandTwoOpt:
		set, err := buildCandidates(ctx, in, cfg.Search.Candidates)
		if err != nil {
			return err
		}
		solve = func(ev *objective.Evaluator) (runResult, error) {
			a, err := localsearch.New[*tour.UndoableList](name, localsearch.NewCandidateTwoOpt(set), opts...)
			if err != nil {
				return runResult{}, err
			}
			logger.Debug("algorithm", "setup", a.String(), "candidates", set.M())

			return runResult{}, runFrom(a, tour.NewUndoableList(n), start, ev)
		}

	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, name)
	}

	return c.execute(ctx, w, cfg, in, name, solve, false)
}

// startTour builds the configured starting tour once for all runs. A nil
// tour means every run draws its own random one.
func startTour(ctx context.Context, name string, in *objective.Instance) ([]int, error) {
	var (
		path []int
		err  error
	)
	p := newProgress(loggerFromContext(ctx))
	switch strings.ToLower(name) {
	case "", initRandom:
		return nil, nil
	case initNearest:
		path, err = construct.NearestNeighbor(in, 1, nil)
	case initChristofides:
		path, err = construct.Christofides(in, nil)
	default:
		return nil, fmt.Errorf("%w: unknown starting tour %q", ErrInvalidConfig, name)
	}
	if err != nil {
		return nil, err
	}
	p.done(fmt.Sprintf("Built %s tour of length %d", name, in.Length(path)))

	return path, nil
}

// runFrom runs a on sol, starting from a random tour when start is nil and
// from start otherwise. start is only read.
func runFrom[P localsearch.Solution[P]](a *localsearch.Algorithm[P], sol P, start []int, ev *objective.Evaluator) error {
	if start == nil {
		_, err := a.Solve(sol, ev)
		return err
	}
	if err := sol.LoadPath(start); err != nil {
		return err
	}

	return a.Run(localsearch.NewIndividual(sol), ev)
}
