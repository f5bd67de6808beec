package heldkarp

import "errors"

var (
	// ErrAsymmetric is returned for instances with d(a,b) != d(b,a) for some
	// pair; the 1-tree relaxation is only admissible for symmetric costs.
	ErrAsymmetric = errors.New("heldkarp: asymmetric instance")

	// ErrNilObjective is returned when Solve is called without an Objective.
	ErrNilObjective = errors.New("heldkarp: nil objective")

	// ErrTooLarge is returned by SolveDP above MaxDPNodes nodes.
	ErrTooLarge = errors.New("heldkarp: instance too large for the dynamic program")
)
