// Package tour provides the tour representations used by the solvers and
// conversions between them.
//
// Node ids are 1..n. Three representations of a cyclic permutation exist:
//
//   - Path: []int of length n; position i is visited at step i and the
//     tour wraps from the last entry back to the first.
//   - Adjacency: []int of length n with adj[v-1] = successor of v.
//   - Satellite list: every node owns two unordered neighbor slots. There is
//     no "next" or "previous"; the direction of a walk is given by the node
//     one arrived from. Reversing a segment therefore only touches the two
//     boundary edges (O(1)).
//
// SatelliteList is the plain reversible list. UndoableList adds a
// transactional layer (tentative connect/disconnect, undo, commit, rollback)
// for local searches that probe moves and back out of them.
//
// Conversions validate their input and return ErrMalformedTour when it does
// not describe a single Hamiltonian cycle. Misuse of the transactional API
// (undo without matching do, degree overflow) returns the sentinels in
// errors.go and leaves the list unchanged.
package tour
