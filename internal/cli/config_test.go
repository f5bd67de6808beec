package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimizationBenchmarking/tspSuite-sub014/localsearch"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	require.NoError(t, cfg.validate())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
seed = 7
runs = 3

[instance]
name   = "square"
points = [[0.0, 0.0], [0.0, 10.0], [10.0, 10.0], [10.0, 0.0]]

[budget]
max_fes    = 500
time_limit = "1m30s"

[search]
algorithm    = "cand2opt"
perturbation = "doubleBridge"
candidates   = 2
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 3, cfg.Runs)
	assert.Equal(t, int64(500), cfg.Budget.MaxFEs)
	assert.Equal(t, 90*time.Second, cfg.Budget.TimeLimit)
	assert.Equal(t, algoCandTwoOpt, cfg.Search.Algorithm)
	assert.Equal(t, "doubleBridge", cfg.Search.Perturbation)
	// Untouched keys keep their defaults.
	assert.Equal(t, defaultConfig().Search.Acceptance, cfg.Search.Acceptance)
	assert.Equal(t, defaultConfig().HeldKarp, cfg.HeldKarp)

	in, err := cfg.Instance.build()
	require.NoError(t, err)
	assert.Equal(t, "square", in.Name())
	assert.Equal(t, int64(40), in.Length([]int{1, 2, 3, 4}))
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, "seed = [1, 2"))
	require.Error(t, err)

	_, err = loadConfig(writeConfig(t, "sede = 3\n[budget]\nmax_fe = 1\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "sede")
	assert.Contains(t, err.Error(), "budget.max_fe")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config)
	}{
		{"no runs", func(c *config) { c.Runs = 0 }},
		{"tiny random instance", func(c *config) { c.Instance.Nodes = 1 }},
		{"points and matrix", func(c *config) {
			c.Instance.Points = [][2]float64{{0, 0}, {1, 1}}
			c.Instance.Matrix = [][]int64{{0, 1}, {1, 0}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(&cfg)
			require.ErrorIs(t, cfg.validate(), ErrInvalidConfig)
		})
	}
}

func TestInstanceConfigBuild(t *testing.T) {
	in, err := instanceConfig{Matrix: [][]int64{{0, 3, 4}, {3, 0, 5}, {4, 5, 0}}}.build()
	require.NoError(t, err)
	assert.Equal(t, "matrix", in.Name())
	assert.Nil(t, in.Points())
	assert.Equal(t, int64(12), in.Length([]int{1, 2, 3}))

	in, err = instanceConfig{Nodes: 25, Seed: 3, Side: 100}.build()
	require.NoError(t, err)
	assert.Equal(t, 25, in.N())
	assert.Len(t, in.Points(), 25)
}

func TestParsePolicies(t *testing.T) {
	acc, err := parseAcceptance("IfBetter")
	require.NoError(t, err)
	assert.Equal(t, localsearch.AcceptIfBetter, acc)

	term, err := parseTermination("ifDifferent")
	require.NoError(t, err)
	assert.Equal(t, localsearch.TerminateIfDifferent, term)

	pert, err := parsePerturbation("doublebridge")
	require.NoError(t, err)
	assert.Equal(t, localsearch.DoubleBridge{}, pert)

	_, err = parseAcceptance("sometimes")
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = parseTermination("")
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = parsePerturbation("threeOpt")
	require.ErrorIs(t, err, ErrInvalidConfig)
}
