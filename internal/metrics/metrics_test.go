package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimizationBenchmarking/tspSuite-sub014/internal/metrics"
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
	"github.com/optimizationBenchmarking/tspSuite-sub014/tour"
)

func TestObserver_CountsEvaluations(t *testing.T) {
	m := metrics.New()
	obs := m.Observer("2opt", "run-a")

	obs.Evaluated(objective.LogPoint{}, 50, true)
	obs.Evaluated(objective.LogPoint{}, 60, false)
	obs.Evaluated(objective.LogPoint{}, 40, true)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("2opt")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Improvements.WithLabelValues("2opt")))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.BestLength.WithLabelValues("2opt", "run-a")))
}

func TestObserver_WiredIntoEvaluator(t *testing.T) {
	m := metrics.New()
	in, err := objective.RandomPlanar(12, 4, 100)
	require.NoError(t, err)
	ev, err := objective.New(in, objective.Options{Observer: m.Observer("probe", "r1")})
	require.NoError(t, err)

	for k := 0; k < 5; k++ {
		ev.Evaluate(objective.RandomPath(nil, 12, ev.Random()))
	}
	ev.Evaluate(tour.Identity(12))

	assert.Equal(t, 6.0, testutil.ToFloat64(m.Evaluations.WithLabelValues("probe")))
	assert.Equal(t, float64(ev.LogPoint().BestLength), testutil.ToFloat64(m.BestLength.WithLabelValues("probe", "r1")))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.RunFinished("hk", "ok")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.RunsDone.WithLabelValues("hk", "ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.RunsDone.WithLabelValues("hk", "ok")))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.Observer("2opt", "x").Evaluated(objective.LogPoint{}, 7, true)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `tspsuite_evaluations_total{algorithm="2opt"} 1`)
	assert.Contains(t, string(body), `tspsuite_best_length{algorithm="2opt",run="x"} 7`)
}
