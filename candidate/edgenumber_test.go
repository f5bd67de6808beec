package candidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimizationBenchmarking/tspSuite-sub014/candidate"
)

func TestKindFor(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		floats bool
		want   candidate.Kind
	}{
		{"int8", -128, 127, false, candidate.Int8},
		{"int16 above int8", 0, 128, false, candidate.Int16},
		{"int16 below int8", -129, 0, false, candidate.Int16},
		{"int32", 0, 1 << 20, false, candidate.Int32},
		{"int64", 0, 1 << 40, false, candidate.Int64},
		{"float32", -1, 1 << 24, true, candidate.Float32},
		{"float64", 0, 1<<24 + 1, true, candidate.Float64},
		{"float64 negative", -(1 << 30), 0, true, candidate.Float64},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, candidate.KindFor(tc.lo, tc.hi, tc.floats))
		})
	}

	assert.Equal(t, "int16", candidate.Int16.String())
	assert.Equal(t, "invalid", candidate.Kind(0).String())
	assert.Equal(t, "invalid", candidate.Kind(99).String())
}

func TestNewEdgeNumber_InvalidConfig(t *testing.T) {
	bad := []candidate.EdgeNumberConfig{
		{N: 1, Max: 1},
		{N: 5, Min: 3, Max: 2},
	}
	for _, cfg := range bad {
		_, err := candidate.NewEdgeNumber(cfg, nil, nil)
		require.ErrorIs(t, err, candidate.ErrInvalidConfig)
	}

	_, err := candidate.NewEdgeNumber(candidate.EdgeNumberConfig{N: 5, Max: 1}, candidate.NewProxy(6), nil)
	require.ErrorIs(t, err, candidate.ErrInvalidConfig)
}

func TestDenseEdgeNumber_Symmetric(t *testing.T) {
	e, err := candidate.NewEdgeNumber(candidate.EdgeNumberConfig{N: 6, Symmetric: true, Max: 100}, nil, nil)
	require.NoError(t, err)
	assert.True(t, e.Dense())
	assert.True(t, e.Symmetric())
	assert.Equal(t, candidate.Int8, e.Kind())

	e.Set(2, 5, 7)
	assert.Equal(t, 7.0, e.Get(5, 2))
	e.Inc(5, 2)
	e.Add(2, 5, 2)
	assert.Equal(t, int64(10), e.GetInt(2, 5))
	e.Dec(2, 5)
	assert.Equal(t, int64(9), e.GetInt(5, 2))

	// Diagonal and out-of-range writes are ignored.
	e.Set(3, 3, 4)
	e.Set(0, 3, 4)
	e.Set(3, 7, 4)
	assert.Zero(t, e.Get(3, 3))
	assert.Zero(t, e.Get(0, 3))

	e.Clear()
	assert.Zero(t, e.Get(2, 5))
}

func TestDenseEdgeNumber_Asymmetric(t *testing.T) {
	e, err := candidate.NewEdgeNumber(candidate.EdgeNumberConfig{N: 4, Max: 1.5, RequiresFloats: true}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, candidate.Float32, e.Kind())

	e.Set(1, 2, 1.25)
	assert.Equal(t, 1.25, e.Get(1, 2))
	assert.Zero(t, e.Get(2, 1))
}

func TestCandidateEdgeNumber(t *testing.T) {
	in := randomInstance(t, 50, 9)
	s := candidate.Allocate(in, 4, nil)
	cfg := candidate.EdgeNumberConfig{N: 50, Symmetric: true, Max: 1000, DenseThreshold: 10}

	e, err := candidate.NewEdgeNumber(cfg, s, nil)
	require.NoError(t, err)
	assert.False(t, e.Dense())
	assert.Equal(t, candidate.Int16, e.Kind())

	var v, u, w int
	v = 1
	u = s.Candidate(v, 1)
	e.Set(v, u, 42)
	assert.Equal(t, int64(42), e.GetInt(v, u))
	assert.Equal(t, int64(42), e.GetInt(u, v), "symmetric read from either side")
	e.Inc(u, v)
	assert.Equal(t, int64(43), e.GetInt(v, u))

	// Find a non-candidate pair in both directions.
	for w = 2; w <= 50; w++ {
		if !candidate.IsCandidate(s, v, w) && !candidate.IsCandidate(s, w, v) {
			break
		}
	}
	require.LessOrEqual(t, w, 50)
	e.Set(v, w, 5)
	assert.Zero(t, e.Get(v, w))
	assert.Zero(t, e.Get(w, v))

	e.Clear()
	assert.Zero(t, e.Get(v, u))
}

func TestCandidateEdgeNumber_NonCandidatesStayZero(t *testing.T) {
	const n = 60
	in := randomInstance(t, n, 4)
	s := candidate.Allocate(in, 5, nil)

	tests := []struct {
		name      string
		symmetric bool
		floats    bool
		kind      candidate.Kind
		want      float64 // Set 3, Inc, Add, Dec
	}{
		{"asymmetric int", false, false, candidate.Int16, 5},
		{"asymmetric float", false, true, candidate.Float32, 5.5},
		{"symmetric int", true, false, candidate.Int16, 5},
		{"symmetric float", true, true, candidate.Float32, 5.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := candidate.EdgeNumberConfig{N: n, Symmetric: tc.symmetric, Min: -10, Max: 1000, RequiresFloats: tc.floats, DenseThreshold: 10}
			e, err := candidate.NewEdgeNumber(cfg, s, nil)
			require.NoError(t, err)
			require.False(t, e.Dense())
			require.Equal(t, tc.kind, e.Kind())
			require.Equal(t, tc.symmetric, e.Symmetric())

			add := 2.0
			if tc.floats {
				add = 2.5
			}

			var (
				a, b    int
				covered bool
			)
			for a = 1; a <= n; a++ {
				for b = 1; b <= n; b++ {
					if a == b {
						continue
					}
					covered = candidate.IsCandidate(s, a, b)
					if tc.symmetric {
						covered = covered || candidate.IsCandidate(s, b, a)
					}

					e.Set(a, b, 3)
					e.Inc(a, b)
					e.Add(a, b, add)
					e.Dec(a, b)

					if !covered {
						require.Zerof(t, e.Get(a, b), "non-candidate %d-%d", a, b)
						require.Zerof(t, e.Get(b, a), "non-candidate %d-%d", b, a)
						continue
					}
					require.Equalf(t, tc.want, e.Get(a, b), "edge %d-%d", a, b)
					if tc.symmetric {
						require.Equalf(t, tc.want, e.Get(b, a), "mirror %d-%d", b, a)
					} else {
						require.Zerof(t, e.Get(b, a), "reverse of %d-%d", a, b)
					}
					e.Set(a, b, 0)
				}
			}
		})
	}
}

func TestCandidateEdgeNumber_BelowThresholdIsDense(t *testing.T) {
	in := randomInstance(t, 20, 9)
	s := candidate.Allocate(in, 4, nil)

	e, err := candidate.NewEdgeNumber(candidate.EdgeNumberConfig{N: 20, Max: 1}, s, nil)
	require.NoError(t, err)
	assert.True(t, e.Dense())
}

func TestEdgeNumber_ReuseClearsValues(t *testing.T) {
	cfg := candidate.EdgeNumberConfig{N: 10, Max: 1000}
	first, err := candidate.NewEdgeNumber(cfg, nil, nil)
	require.NoError(t, err)
	first.Set(1, 2, 9)

	cfg.N = 8
	second, err := candidate.NewEdgeNumber(cfg, nil, first)
	require.NoError(t, err)
	assert.Zero(t, second.Get(1, 2))
	second.Set(8, 7, 3)
	assert.Equal(t, 3.0, second.Get(8, 7))
}
