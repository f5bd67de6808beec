package localsearch

import (
	"math/rand"
	"slices"
)

// Acceptance decides whether the working solution continues from a new
// local optimum (true) or is reset to the best one (false).
type Acceptance uint8

const (
	// AcceptIfBetterOrEqual accepts lengths not above the best known.
	AcceptIfBetterOrEqual Acceptance = iota
	// AcceptIfBetter accepts strict improvements only.
	AcceptIfBetter
	// AcceptAlways never resets to the best solution.
	AcceptAlways
)

// Accept reports whether a solution of length cur replaces one of length best.
func (a Acceptance) Accept(cur, best int64) bool {
	switch a {
	case AcceptIfBetter:
		return cur < best
	case AcceptAlways:
		return true
	default:
		return cur <= best
	}
}

// String implements fmt.Stringer.
func (a Acceptance) String() string {
	switch a {
	case AcceptIfBetterOrEqual:
		return "ifBetterOrEqual"
	case AcceptIfBetter:
		return "ifBetter"
	case AcceptAlways:
		return "always"
	default:
		return "unknown"
	}
}

// Termination ends a Run early, comparing the current length with the
// length the individual had before the first perturbation.
type Termination uint8

const (
	// TerminateNever runs until the budget or the iteration cap ends the Run.
	TerminateNever Termination = iota
	// TerminateIfDifferent stops as soon as the length differs from the start.
	TerminateIfDifferent
	// TerminateIfBetter stops on a strict improvement over the start.
	TerminateIfBetter
	// TerminateIfBetterOrEqual stops once the length is not above the start.
	TerminateIfBetterOrEqual
)

// Stop reports whether a Run whose individual started at length start and
// is now at cur should end.
func (t Termination) Stop(cur, start int64) bool {
	switch t {
	case TerminateIfDifferent:
		return cur != start
	case TerminateIfBetter:
		return cur < start
	case TerminateIfBetterOrEqual:
		return cur <= start
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Termination) String() string {
	switch t {
	case TerminateNever:
		return "never"
	case TerminateIfDifferent:
		return "ifDifferent"
	case TerminateIfBetter:
		return "ifBetter"
	case TerminateIfBetterOrEqual:
		return "ifBetterOrEqual"
	default:
		return "unknown"
	}
}

// Perturbation randomizes a path in place. The framework loads the result
// back into the solution and evaluates it.
type Perturbation interface {
	Perturb(path []int, rng *rand.Rand)
	Name() string
}

// PathShuffle shuffles the nodes inside one random window of the path.
type PathShuffle struct{}

// Name implements Perturbation.
func (PathShuffle) Name() string { return "pathShuffle" }

// Perturb implements Perturbation. The window [i, j] has at least two
// nodes; paths shorter than three are left alone.
//
// Complexity: O(window).
func (PathShuffle) Perturb(path []int, rng *rand.Rand) {
	n := len(path)
	if n < 3 {
		return
	}

	var i, j, k int
	i = rng.Intn(n - 1)
	j = i + 1 + rng.Intn(n-1-i)
	for ; j > i; j-- {
		k = i + rng.Intn(j-i+1)
		path[j], path[k] = path[k], path[j]
	}
}

// DoubleBridge cuts the path into A B C D at three random points and
// reconnects it as A C B D, a move 2-opt cannot undo in one step.
type DoubleBridge struct{}

// Name implements Perturbation.
func (DoubleBridge) Name() string { return "doubleBridge" }

// Perturb implements Perturbation. Paths shorter than four are left alone.
//
// Complexity: O(n) time, no allocations.
func (DoubleBridge) Perturb(path []int, rng *rand.Rand) {
	n := len(path)
	if n < 4 {
		return
	}

	var p1, p2, p3 int
	p1 = 1 + rng.Intn(n-1)
	for p2 = p1; p2 == p1; {
		p2 = 1 + rng.Intn(n-1)
	}
	for p3 = p1; p3 == p1 || p3 == p2; {
		p3 = 1 + rng.Intn(n-1)
	}
	if p1 > p2 {
		p1, p2 = p2, p1
	}
	if p2 > p3 {
		p2, p3 = p3, p2
	}
	if p1 > p2 {
		p1, p2 = p2, p1
	}

	// B C -> C B by three reversals, without a scratch buffer.
	slices.Reverse(path[p1:p2])
	slices.Reverse(path[p2:p3])
	slices.Reverse(path[p1:p3])
}
