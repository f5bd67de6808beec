package candidate

import "errors"

var (
	// ErrInvalidConfig is returned for inconsistent constructor arguments
	// (n < 2, min > max, candidate set over a different n).
	ErrInvalidConfig = errors.New("candidate: invalid configuration")

	// ErrNoCoordinates is returned by AllocatePlanar when the point set does
	// not match the number of nodes.
	ErrNoCoordinates = errors.New("candidate: missing coordinates")
)
