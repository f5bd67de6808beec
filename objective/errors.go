package objective

import "errors"

var (
	// ErrInvalidInstance is returned when a distance matrix or a point set
	// cannot describe a TSP instance (n < 2, ragged rows, negative or
	// non-zero diagonal entries).
	ErrInvalidInstance = errors.New("objective: invalid instance")

	// ErrMalformedPath is returned by Evaluate/Register when the candidate
	// is not a permutation of 1..n.
	ErrMalformedPath = errors.New("objective: malformed path")

	// ErrNilInstance indicates that a nil *Instance was passed to New.
	ErrNilInstance = errors.New("objective: nil instance")
)
