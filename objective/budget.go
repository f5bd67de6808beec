package objective

import (
	"context"
	"time"
)

// Budget bundles every reason a run may stop early. It is the single
// place where cooperative cancellation is decided; solvers only ever ask
// Objective.ShouldTerminate, which delegates here.
//
// Zero values mean "unlimited" for each individual limit.
type Budget struct {
	// MaxFEs caps the number of function evaluations.
	MaxFEs int64
	// TimeLimit caps the wall-clock runtime.
	TimeLimit time.Duration
	// Target stops the run once a tour of length ≤ Target was registered.
	Target int64
	// Context cancels the run from the outside (signals, harness deadlines).
	Context context.Context
}

// Unlimited reports whether no limit at all is configured.
func (b Budget) Unlimited() bool {
	return b.MaxFEs <= 0 && b.TimeLimit <= 0 && b.Target <= 0 && b.Context == nil
}

// Exhausted reports whether the run described by p must stop.
//
// Complexity: O(1).
func (b Budget) Exhausted(p LogPoint) bool {
	if b.MaxFEs > 0 && p.FEs >= b.MaxFEs {
		return true
	}
	if b.Target > 0 && p.BestLength <= b.Target {
		return true
	}
	if b.TimeLimit > 0 && p.Elapsed >= b.TimeLimit {
		return true
	}
	if b.Context != nil && b.Context.Err() != nil {
		return true
	}

	return false
}
