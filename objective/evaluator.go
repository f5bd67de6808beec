package objective

import (
	"fmt"
	"math/rand"
	"time"
)

// Options configures an Evaluator.
type Options struct {
	// Budget bounds the run; the zero Budget is unlimited.
	Budget Budget
	// Seed feeds the run's random source (0 ⇒ DefaultSeed).
	Seed int64
	// Observer, if non-nil, is notified after every registered tour.
	Observer Observer
	// TrustRegister skips the length re-computation Register performs to
	// guard against callers reporting inconsistent lengths.
	TrustRegister bool
}

// Evaluator is the in-memory Objective used by the harness and the tests.
// It is owned by one run; it is not safe for concurrent use.
type Evaluator struct {
	in      *Instance
	opts    Options
	rng     *rand.Rand
	started time.Time

	fes     int64
	best    []int
	bestLen int64

	seen  []uint32 // validation marks, stamp-based to avoid clearing
	stamp uint32
}

var _ Objective = (*Evaluator)(nil)

// New creates an Evaluator for in. The run clock starts immediately.
func New(in *Instance, opts Options) (*Evaluator, error) {
	if in == nil {
		return nil, ErrNilInstance
	}

	return &Evaluator{
		in:      in,
		opts:    opts,
		rng:     NewRand(opts.Seed),
		started: time.Now(),
		bestLen: NoTour,
		seen:    make([]uint32, in.n+1),
	}, nil
}

// Instance returns the underlying instance.
func (e *Evaluator) Instance() *Instance { return e.in }

// N implements Objective.
func (e *Evaluator) N() int { return e.in.n }

// Distance implements Objective.
func (e *Evaluator) Distance(a, b int) int64 { return e.in.Distance(a, b) }

// Random implements Objective.
func (e *Evaluator) Random() *rand.Rand { return e.rng }

// Evaluate implements Objective.
//
// Complexity: O(n).
func (e *Evaluator) Evaluate(path []int) int64 {
	e.mustValidate(path)
	length := e.in.Length(path)
	e.record(path, length)

	return length
}

// Register implements Objective. Unless Options.TrustRegister is set, the
// reported length is verified and a mismatch panics: it can only stem from
// a bug in the caller's incremental bookkeeping.
func (e *Evaluator) Register(path []int, length int64) {
	e.mustValidate(path)
	if !e.opts.TrustRegister {
		if got := e.in.Length(path); got != length {
			panic(fmt.Errorf("%w: registered length %d, actual %d", ErrMalformedPath, length, got))
		}
	}
	e.record(path, length)
}

// ShouldTerminate implements Objective.
func (e *Evaluator) ShouldTerminate() bool {
	return e.opts.Budget.Exhausted(e.LogPoint())
}

// CopyOfBest implements Objective.
func (e *Evaluator) CopyOfBest(dst []int) []int {
	return append(dst[:0], e.best...)
}

// LogPoint implements Objective.
func (e *Evaluator) LogPoint() LogPoint {
	return LogPoint{BestLength: e.bestLen, FEs: e.fes, Elapsed: time.Since(e.started)}
}

func (e *Evaluator) record(path []int, length int64) {
	e.fes++
	improved := length < e.bestLen
	if improved {
		e.bestLen = length
		e.best = append(e.best[:0], path...)
	}
	if e.opts.Observer != nil {
		e.opts.Observer.Evaluated(e.LogPoint(), length, improved)
	}
}

// mustValidate panics unless path is a permutation of 1..n.
func (e *Evaluator) mustValidate(path []int) {
	n := e.in.n
	if len(path) != n {
		panic(fmt.Errorf("%w: length %d, want %d", ErrMalformedPath, len(path), n))
	}
	e.stamp++
	if e.stamp == 0 {
		clear(e.seen)
		e.stamp = 1
	}
	for i, v := range path {
		if v < 1 || v > n {
			panic(fmt.Errorf("%w: node %d at position %d out of range", ErrMalformedPath, v, i))
		}
		if e.seen[v] == e.stamp {
			panic(fmt.Errorf("%w: node %d repeated at position %d", ErrMalformedPath, v, i))
		}
		e.seen[v] = e.stamp
	}
}
