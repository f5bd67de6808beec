package objective

import (
	"math"
	"math/rand"
	"time"
)

// NoTour is the best length reported before the first evaluation.
const NoTour int64 = math.MaxInt64

// Objective is everything the core needs from a run: the instance, the
// evaluation counter and the budget.
//
// Implementations are owned by a single run and need not be goroutine-safe.
type Objective interface {
	// N returns the number of nodes; ids are 1..N.
	N() int

	// Distance returns the integral distance between nodes a and b.
	Distance(a, b int) int64

	// Evaluate computes the length of the closed tour described by path,
	// counts one function evaluation and updates the best-known tour.
	// It panics with ErrMalformedPath if path is not a permutation of 1..N.
	Evaluate(path []int) int64

	// Register records a tour whose length the caller has already computed.
	// It counts one function evaluation just like Evaluate.
	Register(path []int, length int64)

	// Random returns the run's random source.
	Random() *rand.Rand

	// ShouldTerminate reports whether the run budget is exhausted.
	ShouldTerminate() bool

	// CopyOfBest copies the best tour into dst (grown if needed) and
	// returns it. The result is empty if nothing was evaluated yet.
	CopyOfBest(dst []int) []int

	// LogPoint returns the current progress snapshot.
	LogPoint() LogPoint
}

// LogPoint is a progress snapshot of a run.
type LogPoint struct {
	// BestLength is the shortest tour length registered so far
	// (NoTour before the first evaluation).
	BestLength int64
	// FEs is the number of consumed function evaluations.
	FEs int64
	// Elapsed is the wall-clock time since the run started.
	Elapsed time.Duration
}

// Observer receives a callback after every registered tour.
// It is used by the harness for metrics; the core never implements it.
type Observer interface {
	Evaluated(p LogPoint, length int64, improved bool)
}
