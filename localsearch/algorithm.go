package localsearch

import (
	"fmt"

	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

// Searcher is the algorithm-specific hook: it improves ind in place, sets
// ind.Length, and evaluates (or registers) the tour it leaves behind.
type Searcher[P Solution[P]] interface {
	Search(ind *Individual[P], obj objective.Objective) error
}

// SearchFunc adapts a function to Searcher.
type SearchFunc[P Solution[P]] func(ind *Individual[P], obj objective.Objective) error

// Search implements Searcher.
func (f SearchFunc[P]) Search(ind *Individual[P], obj objective.Objective) error {
	return f(ind, obj)
}

type settings struct {
	acceptance    Acceptance
	termination   Termination
	perturbation  Perturbation
	maxIterations int
}

func defaultSettings() settings {
	return settings{
		acceptance:   AcceptIfBetterOrEqual,
		termination:  TerminateNever,
		perturbation: PathShuffle{},
	}
}

// Option configures an Algorithm.
type Option func(*settings)

// WithAcceptance sets the acceptance policy.
func WithAcceptance(a Acceptance) Option {
	return func(s *settings) { s.acceptance = a }
}

// WithTermination sets the termination policy.
func WithTermination(t Termination) Option {
	return func(s *settings) { s.termination = t }
}

// WithPerturbation sets the perturbation; nil keeps the current one.
func WithPerturbation(p Perturbation) Option {
	return func(s *settings) {
		if p != nil {
			s.perturbation = p
		}
	}
}

// WithMaxIterations caps the number of Searcher calls per Run (0 or less
// means unbounded).
func WithMaxIterations(n int) Option {
	return func(s *settings) { s.maxIterations = max(n, 0) }
}

// Algorithm is an iterated local search over representation P.
type Algorithm[P Solution[P]] struct {
	name     string
	searcher Searcher[P]
	settings

	cur  []int // scratch path
	best []int // best path of the current Run
}

// New returns an Algorithm named name driving searcher.
//
// Errors: ErrNilSearcher if searcher is nil.
func New[P Solution[P]](name string, searcher Searcher[P], opts ...Option) (*Algorithm[P], error) {
	if searcher == nil {
		return nil, ErrNilSearcher
	}
	a := &Algorithm[P]{name: name, searcher: searcher, settings: defaultSettings()}
	for _, opt := range opts {
		opt(&a.settings)
	}

	return a, nil
}

// Name implements Producer.
func (a *Algorithm[P]) Name() string { return a.name }

// String describes the configuration, e.g. for logs.
func (a *Algorithm[P]) String() string {
	return fmt.Sprintf("%s(acceptance=%s, termination=%s, perturbation=%s, maxIterations=%d)",
		a.name, a.acceptance, a.termination, a.perturbation.Name(), a.maxIterations)
}

// Acceptance returns the acceptance policy.
func (a *Algorithm[P]) Acceptance() Acceptance { return a.acceptance }

// Termination returns the termination policy.
func (a *Algorithm[P]) Termination() Termination { return a.termination }

// MaxIterations returns the iteration cap (0 = unbounded).
func (a *Algorithm[P]) MaxIterations() int { return a.maxIterations }

// clone returns an Algorithm sharing the searcher and perturbation of a,
// with its own scratch buffers and the given options applied on top.
func (a *Algorithm[P]) clone(name string, opts ...Option) *Algorithm[P] {
	c := &Algorithm[P]{name: name, searcher: a.searcher, settings: a.settings}
	for _, opt := range opts {
		opt(&c.settings)
	}

	return c
}

// Solve loads a random tour into sol and runs the algorithm on it.
func (a *Algorithm[P]) Solve(sol P, obj objective.Objective) (*Individual[P], error) {
	if obj == nil {
		return nil, ErrNilObjective
	}
	a.cur = objective.RandomPath(a.cur, obj.N(), obj.Random())
	if err := sol.LoadPath(a.cur); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSizeMismatch, err)
	}
	ind := NewIndividual(sol)
	ind.Length = obj.Evaluate(a.cur)

	return ind, a.Run(ind, obj)
}

// Run improves ind in place until the budget, the termination policy or the
// iteration cap ends it. ind.Length must be the length of ind.Solution, or
// objective.NoTour to have it evaluated first.
//
// Budget exhaustion is not an error: Run returns nil and ind holds the
// solution chosen by the acceptance policy.
func (a *Algorithm[P]) Run(ind *Individual[P], obj objective.Objective) error {
	if obj == nil {
		return ErrNilObjective
	}

	var err error
	if a.best, err = ind.Solution.AppendPath(a.best[:0]); err != nil {
		return err
	}
	if len(a.best) != obj.N() {
		return fmt.Errorf("%w: %d nodes, want %d", ErrSizeMismatch, len(a.best), obj.N())
	}
	if ind.Length == objective.NoTour {
		ind.Length = obj.Evaluate(a.best)
	}

	var (
		start      = ind.Length
		bestLen    = ind.Length
		prev       int64
		iterations int
	)
	if ind.Producer == Producer(a) {
		if err = a.perturb(ind, obj); err != nil {
			return err
		}
	}

	for !obj.ShouldTerminate() {
		if err = a.searcher.Search(ind, obj); err != nil {
			return err
		}
		iterations++

		prev = bestLen
		if ind.Length <= bestLen {
			bestLen = ind.Length
			if a.best, err = ind.Solution.AppendPath(a.best[:0]); err != nil {
				return err
			}
		}

		if obj.ShouldTerminate() ||
			a.termination.Stop(ind.Length, start) ||
			(a.maxIterations > 0 && iterations >= a.maxIterations) {
			break
		}
		if !a.acceptance.Accept(ind.Length, prev) {
			if err = a.restore(ind, bestLen); err != nil {
				return err
			}
		}
		if err = a.perturb(ind, obj); err != nil {
			return err
		}
	}

	if !a.acceptance.Accept(ind.Length, bestLen) {
		if err = a.restore(ind, bestLen); err != nil {
			return err
		}
	}
	ind.Fitness = float64(ind.Length)
	ind.Producer = a

	return nil
}

func (a *Algorithm[P]) restore(ind *Individual[P], length int64) error {
	if err := ind.Solution.LoadPath(a.best); err != nil {
		return err
	}
	ind.Length = length

	return nil
}

func (a *Algorithm[P]) perturb(ind *Individual[P], obj objective.Objective) error {
	var err error
	if a.cur, err = ind.Solution.AppendPath(a.cur[:0]); err != nil {
		return err
	}
	a.perturbation.Perturb(a.cur, obj.Random())
	if err = ind.Solution.LoadPath(a.cur); err != nil {
		return err
	}
	ind.Length = obj.Evaluate(a.cur)

	return nil
}
