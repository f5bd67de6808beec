package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/optimizationBenchmarking/tspSuite-sub014/heldkarp"
	"github.com/optimizationBenchmarking/tspSuite-sub014/localsearch"
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

// ErrInvalidConfig reports a run file or flag combination that cannot be run.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Algorithms accepted by the search command.
const (
	algoTwoOpt     = "2opt"
	algoOrOpt      = "oropt"
	algoCandTwoOpt = "cand2opt"
)

// Starting tours accepted by the search command.
const (
	initRandom       = "random"
	initNearest      = "nearest"
	initChristofides = "christofides"
)

// Exact methods accepted by the solve command.
const (
	methodBranchAndBound = "bb"
	methodDP             = "dp"
)

// config is the content of a TOML run file. Flags override individual
// fields after decoding.
//
// Example:
//
//	seed = 7
//	runs = 4
//
//	[instance]
//	nodes = 200
//	seed  = 1
//
//	[budget]
//	max_fes    = 100000
//	time_limit = "30s"
//
//	[search]
//	algorithm    = "cand2opt"
//	perturbation = "doubleBridge"
//	candidates   = 8
type config struct {
	Seed     int64          `toml:"seed"`
	Runs     int            `toml:"runs"`
	Instance instanceConfig `toml:"instance"`
	Budget   budgetConfig   `toml:"budget"`
	Search   searchConfig   `toml:"search"`
	HeldKarp heldKarpConfig `toml:"heldkarp"`
}

// instanceConfig selects the problem: explicit points, an explicit matrix,
// or a random planar instance.
type instanceConfig struct {
	Name   string       `toml:"name"`
	Nodes  int          `toml:"nodes"`
	Seed   int64        `toml:"seed"`
	Side   float64      `toml:"side"`
	Points [][2]float64 `toml:"points"`
	Matrix [][]int64    `toml:"matrix"`
}

type budgetConfig struct {
	MaxFEs    int64         `toml:"max_fes"`
	TimeLimit time.Duration `toml:"time_limit"`
	Target    int64         `toml:"target"`
}

type searchConfig struct {
	Algorithm     string `toml:"algorithm"`
	Init          string `toml:"init"`
	Perturbation  string `toml:"perturbation"`
	Acceptance    string `toml:"acceptance"`
	Termination   string `toml:"termination"`
	MaxIterations int    `toml:"max_iterations"`
	Candidates    int    `toml:"candidates"`
}

type heldKarpConfig struct {
	Method    string  `toml:"method"`
	Lambda    float64 `toml:"lambda"`
	Decay     float64 `toml:"decay"`
	MinLambda float64 `toml:"min_lambda"`
}

// defaultConfig returns the settings used when neither a run file nor a
// flag says otherwise.
func defaultConfig() config {
	hk := heldkarp.DefaultOptions()

	return config{
		Seed: objective.DefaultSeed,
		Runs: 1,
		Instance: instanceConfig{
			Nodes: 100,
			Seed:  objective.DefaultSeed,
			Side:  1000,
		},
		Budget: budgetConfig{MaxFEs: 100_000},
		Search: searchConfig{
			Algorithm:    algoTwoOpt,
			Init:         initRandom,
			Perturbation: localsearch.PathShuffle{}.Name(),
			Acceptance:   localsearch.AcceptIfBetterOrEqual.String(),
			Termination:  localsearch.TerminateNever.String(),
			Candidates:   8,
		},
		HeldKarp: heldKarpConfig{Method: methodBranchAndBound, Lambda: hk.Lambda, Decay: hk.Decay, MinLambda: hk.MinLambda},
	}
}

// loadConfig decodes the run file at path on top of defaultConfig.
// Keys the file sets that config does not know are rejected.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// validate checks the fields every command relies on.
func (c config) validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be ≥ 1, got %d", ErrInvalidConfig, c.Runs)
	}
	if len(c.Instance.Points) == 0 && len(c.Instance.Matrix) == 0 && c.Instance.Nodes < 2 {
		return fmt.Errorf("%w: instance needs ≥ 2 nodes, got %d", ErrInvalidConfig, c.Instance.Nodes)
	}
	if len(c.Instance.Points) > 0 && len(c.Instance.Matrix) > 0 {
		return fmt.Errorf("%w: instance sets both points and matrix", ErrInvalidConfig)
	}

	return nil
}

// build creates the instance the configuration describes.
func (c instanceConfig) build() (*objective.Instance, error) {
	switch {
	case len(c.Points) > 0:
		return objective.NewPlanar(c.nameOr("points"), c.Points)
	case len(c.Matrix) > 0:
		return objective.NewInstance(c.nameOr("matrix"), c.Matrix)
	default:
		return objective.RandomPlanar(c.Nodes, c.Seed, c.Side)
	}
}

func (c instanceConfig) nameOr(fallback string) string {
	if c.Name != "" {
		return c.Name
	}
	return fallback
}

// budget converts the run limits; ctx cancels every run of the process.
func (c budgetConfig) budget(ctx context.Context) objective.Budget {
	return objective.Budget{
		MaxFEs:    c.MaxFEs,
		TimeLimit: c.TimeLimit,
		Target:    c.Target,
		Context:   ctx,
	}
}

func (c heldKarpConfig) options() heldkarp.Options {
	return heldkarp.Options{Lambda: c.Lambda, Decay: c.Decay, MinLambda: c.MinLambda}
}

// =============================================================================
// Policy names
// =============================================================================

func parseAcceptance(s string) (localsearch.Acceptance, error) {
	for _, a := range []localsearch.Acceptance{
		localsearch.AcceptIfBetterOrEqual,
		localsearch.AcceptIfBetter,
		localsearch.AcceptAlways,
	} {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown acceptance %q", ErrInvalidConfig, s)
}

func parseTermination(s string) (localsearch.Termination, error) {
	for _, t := range []localsearch.Termination{
		localsearch.TerminateNever,
		localsearch.TerminateIfDifferent,
		localsearch.TerminateIfBetter,
		localsearch.TerminateIfBetterOrEqual,
	} {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown termination %q", ErrInvalidConfig, s)
}

func parsePerturbation(s string) (localsearch.Perturbation, error) {
	for _, p := range []localsearch.Perturbation{localsearch.PathShuffle{}, localsearch.DoubleBridge{}} {
		if strings.EqualFold(s, p.Name()) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown perturbation %q", ErrInvalidConfig, s)
}
