package tour

import "errors"

var (
	// ErrMalformedTour indicates that a path, adjacency array or satellite
	// list does not describe a single Hamiltonian cycle over 1..n.
	ErrMalformedTour = errors.New("tour: malformed tour")

	// ErrNotConnected is returned when disconnecting two nodes that are not
	// (or no longer) neighbors.
	ErrNotConnected = errors.New("tour: nodes are not connected")

	// ErrDegreeOverflow is returned when connecting a node that already has
	// two neighbors, or connecting a node to itself.
	ErrDegreeOverflow = errors.New("tour: node already has two neighbors")

	// ErrUndoMismatch is returned when an undo does not match the most
	// recent tentative operation on the involved nodes.
	ErrUndoMismatch = errors.New("tour: undo does not match a pending operation")

	// ErrUnbalanced is returned by Commit while tentative deletions and
	// additions do not cancel out.
	ErrUnbalanced = errors.New("tour: pending deletions and additions are unbalanced")
)
