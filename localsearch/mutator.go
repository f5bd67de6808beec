package localsearch

import "github.com/optimizationBenchmarking/tspSuite-sub014/objective"

// DefaultMutationIterations is the iteration cap of a Mutator when none is
// given.
const DefaultMutationIterations = 8

// Mutator turns an Algorithm into a single-call mutation operator: one
// Mutate is one bounded burst of local search that stops as soon as the
// length changes, always continues from the newest solution, and never
// exceeds its iteration cap even under an unlimited budget.
type Mutator[P Solution[P]] struct {
	inner *Algorithm[P]
}

// NewMutator wraps a copy of a configured with TerminateIfDifferent,
// AcceptAlways and an iteration cap of maxIterations
// (DefaultMutationIterations if ≤ 0). The searcher and perturbation are
// shared with a; scratch buffers are not.
func NewMutator[P Solution[P]](a *Algorithm[P], maxIterations int) *Mutator[P] {
	if maxIterations <= 0 {
		maxIterations = DefaultMutationIterations
	}

	return &Mutator[P]{inner: a.clone(a.name+"Mutation",
		WithTermination(TerminateIfDifferent),
		WithAcceptance(AcceptAlways),
		WithMaxIterations(maxIterations),
	)}
}

// Algorithm returns the wrapped algorithm; it is the Producer of every
// mutated individual.
func (m *Mutator[P]) Algorithm() *Algorithm[P] { return m.inner }

// Name implements Producer.
func (m *Mutator[P]) Name() string { return m.inner.name }

// Mutate overwrites dst with parent and runs one local-search burst on it.
// dst and parent must hold distinct solutions.
func (m *Mutator[P]) Mutate(dst, parent *Individual[P], obj objective.Objective) error {
	dst.CopyFrom(parent)

	return m.inner.Run(dst, obj)
}
