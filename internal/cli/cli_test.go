package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimizationBenchmarking/tspSuite-sub014/candidate"
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

// execute runs the root command with args and returns stdout and the log.
func execute(t *testing.T, args ...string) (*CLI, string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer

	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return c, out.String(), logs.String(), err
}

func TestSolveCommand(t *testing.T) {
	c, out, logs, err := execute(t, "solve", "-n", "8", "--runs", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Optimal")
	assert.Equal(t, 2, strings.Count(out, "true"))
	assert.Equal(t, 2, strings.Count(logs, "run finished"))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Metrics.RunsDone.WithLabelValues("heldkarp", "ok")))
}

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		algo string
		args []string
	}{
		{algoTwoOpt, nil},
		{algoOrOpt, []string{"--acceptance", "always"}},
		{algoCandTwoOpt, []string{"-m", "5", "-p", "doubleBridge"}},
	}
	for _, tt := range tests {
		t.Run(tt.algo, func(t *testing.T) {
			args := append([]string{"search", "-n", "40", "--runs", "3", "--max-fes", "200", "--algo", tt.algo}, tt.args...)
			c, out, _, err := execute(t, args...)
			require.NoError(t, err)

			assert.Contains(t, out, "Length")
			assert.NotContains(t, out, "Optimal")
			assert.Equal(t, 600.0, testutil.ToFloat64(c.Metrics.Evaluations.WithLabelValues(tt.algo)))
			assert.Equal(t, 3.0, testutil.ToFloat64(c.Metrics.RunsDone.WithLabelValues(tt.algo, "ok")))
		})
	}
}

func TestSearchCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown algorithm", []string{"search", "--algo", "3opt"}},
		{"unknown perturbation", []string{"search", "-p", "scramble"}},
		{"never stops", []string{"search", "--max-fes", "0"}},
		{"no runs", []string{"search", "--runs", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := execute(t, tt.args...)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	// An iteration cap alone is enough to bound a run.
	_, _, _, err := execute(t, "search", "-n", "12", "--max-fes", "0", "--max-iterations", "3")
	require.NoError(t, err)
}

func TestCommandWithConfigFile(t *testing.T) {
	path := writeConfig(t, `
runs = 2

[instance]
matrix = [[0, 2, 9, 10], [2, 0, 6, 4], [9, 6, 0, 3], [10, 4, 3, 0]]
`)
	c, out, _, err := execute(t, "solve", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "true"))

	mfs, err := c.Metrics.Registry().Gather()
	require.NoError(t, err)
	var gauges int
	for _, mf := range mfs {
		if mf.GetName() != "tspsuite_best_length" {
			continue
		}
		for _, m := range mf.GetMetric() {
			// 1-2-4-3: 2 + 4 + 3 + 9
			assert.Equal(t, 18.0, m.GetGauge().GetValue())
			gauges++
		}
	}
	assert.Equal(t, 2, gauges, "one best-length series per run")
}

func TestSolveCommandDynamicProgram(t *testing.T) {
	// Only the cycle 1→2→3→4→5→1 uses the cheap arcs.
	path := writeConfig(t, `
[instance]
matrix = [[0, 1, 9, 9, 9], [9, 0, 1, 9, 9], [9, 9, 0, 1, 9], [9, 9, 9, 0, 1], [1, 9, 9, 9, 0]]
`)
	_, _, _, err := execute(t, "solve", "--config", path)
	require.Error(t, err, "branch and bound needs symmetric distances")

	c, out, _, err := execute(t, "solve", "--config", path, "--method", "dp")
	require.NoError(t, err)
	assert.Contains(t, out, "true")
	assert.Equal(t, 5.0, testutil.ToFloat64(c.Metrics.BestLength.WithLabelValues("heldkarp-dp", onlyRunID(t, c))))

	_, _, _, err = execute(t, "solve", "--method", "simplex")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// onlyRunID returns the run label of the single best-length series.
func onlyRunID(t *testing.T, c *CLI) string {
	t.Helper()
	mfs, err := c.Metrics.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != "tspsuite_best_length" {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)
		for _, lp := range mf.GetMetric()[0].GetLabel() {
			if lp.GetName() == "run" {
				return lp.GetValue()
			}
		}
	}
	t.Fatal("no best-length series")
	return ""
}

func TestSearchCommandStartingTours(t *testing.T) {
	for _, start := range []string{initNearest, initChristofides} {
		t.Run(start, func(t *testing.T) {
			c, _, logs, err := execute(t, "search", "-n", "60", "--max-fes", "50", "--runs", "2", "--init", start)
			require.NoError(t, err)
			assert.Contains(t, logs, "Built "+start+" tour")
			assert.Equal(t, 100.0, testutil.ToFloat64(c.Metrics.Evaluations.WithLabelValues(algoTwoOpt)))
		})
	}

	_, _, _, err := execute(t, "search", "--init", "greedy")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCandidatesCommand(t *testing.T) {
	_, out, _, err := execute(t, "candidates", "-n", "20", "-m", "3", "--show", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "#3")
	assert.NotContains(t, out, "#4")
	assert.Contains(t, out, "20 nodes, 3 candidates each")
}

func TestRunAllSeedsAndCancellation(t *testing.T) {
	in, err := objective.RandomPlanar(10, 1, 100)
	require.NoError(t, err)
	cfg := defaultConfig()
	cfg.Runs = 4
	cfg.Seed = 99

	c := New(&bytes.Buffer{}, LogInfo)
	solve := func(ev *objective.Evaluator) (runResult, error) {
		ev.Evaluate(objective.RandomPath(nil, ev.N(), ev.Random()))
		return runResult{}, nil
	}

	results, err := c.runAll(context.Background(), cfg, in, "probe", solve)
	require.NoError(t, err)
	ids := map[string]bool{}
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, objective.DeriveSeed(99, uint64(i)), r.Seed)
		assert.Equal(t, int64(1), r.FEs)
		ids[r.ID] = true
	}
	assert.Len(t, ids, 4, "every run gets its own id")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err = c.runAll(ctx, cfg, in, "probe", func(ev *objective.Evaluator) (runResult, error) {
		assert.True(t, ev.ShouldTerminate())
		return runResult{}, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 4)
}

func TestMutualEdges(t *testing.T) {
	// On a line at 0, 1, 2 and 10 the single nearest neighbors are
	// 1→2, 2→1, 3→2 and 4→3; only {1,2} is listed both ways.
	in, err := objective.NewPlanar("line", [][2]float64{{0, 0}, {1, 0}, {2, 0}, {10, 0}})
	require.NoError(t, err)

	mutual, err := mutualEdges(candidate.Allocate(in, 1, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, mutual)

	mutual, err = mutualEdges(candidate.NewProxy(5))
	require.NoError(t, err)
	assert.Equal(t, 10, mutual)
}
