package construct

import "errors"

var (
	// ErrTooSmall is returned for instances with fewer than two nodes.
	ErrTooSmall = errors.New("construct: need at least two nodes")

	// ErrStartOutOfRange is returned when a start node is not in 1..N.
	ErrStartOutOfRange = errors.New("construct: start node out of range")
)
