package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

// runResult is the outcome of one independent run.
type runResult struct {
	Index      int
	ID         string
	Seed       int64
	Length     int64
	FEs        int64
	Elapsed    time.Duration
	LowerBound int64
	Optimal    bool
}

// solver runs one algorithm against a fresh evaluator and reports what it
// found. Length, FEs and Elapsed are filled from the evaluator afterwards.
type solver func(ev *objective.Evaluator) (runResult, error)

// runAll executes cfg.Runs independent runs of solve on in, at most
// GOMAXPROCS at a time. Run i is seeded with DeriveSeed(cfg.Seed, i) so the
// set of results does not depend on scheduling.
//
// A cancelled ctx ends every run at its next budget check; the results
// gathered so far are returned together with ctx.Err().
func (c *CLI) runAll(ctx context.Context, cfg config, in *objective.Instance, algorithm string, solve solver) ([]runResult, error) {
	logger := loggerFromContext(ctx)
	results := make([]runResult, cfg.Runs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := 0; i < cfg.Runs; i++ {
		i := i
		g.Go(func() error {
			id := uuid.NewString()
			seed := objective.DeriveSeed(cfg.Seed, uint64(i))
			rl := logger.With("run", shortID(id))

			opts := objective.Options{Budget: cfg.Budget.budget(gctx), Seed: seed}
			if c.Metrics != nil {
				opts.Observer = c.Metrics.Observer(algorithm, id)
			}
			ev, err := objective.New(in, opts)
			if err != nil {
				return err
			}

			rl.Debug("run started", "algorithm", algorithm, "seed", seed)
			res, err := solve(ev)
			if err != nil {
				c.runFinished(algorithm, "error")
				return fmt.Errorf("run %d (%s): %w", i, id, err)
			}
			c.runFinished(algorithm, "ok")

			lp := ev.LogPoint()
			res.Index, res.ID, res.Seed = i, id, seed
			res.Length, res.FEs, res.Elapsed = lp.BestLength, lp.FEs, lp.Elapsed
			rl.Info("run finished", "length", formatLength(res.Length), "fes", res.FEs,
				"elapsed", res.Elapsed.Round(time.Millisecond))

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, ctx.Err()
}

func (c *CLI) runFinished(algorithm, outcome string) {
	if c.Metrics != nil {
		c.Metrics.RunFinished(algorithm, outcome)
	}
}

// serveMetrics exposes c.Metrics on addr until the returned stop function
// is called. The listener is bound before returning so that a bad address
// fails the command immediately.
func (c *CLI) serveMetrics(ctx context.Context, addr string) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	logger := loggerFromContext(ctx)
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Metrics.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "err", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}, nil
}
