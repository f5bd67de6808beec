package localsearch

import "errors"

var (
	// ErrNilSearcher is returned by New when no Searcher is supplied.
	ErrNilSearcher = errors.New("localsearch: nil searcher")

	// ErrNilObjective is returned when a run is started without an Objective.
	ErrNilObjective = errors.New("localsearch: nil objective")

	// ErrSizeMismatch is returned when a solution does not match the number
	// of nodes of the Objective.
	ErrSizeMismatch = errors.New("localsearch: solution size does not match objective")
)
