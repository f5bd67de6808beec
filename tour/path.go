// Package tour - path and adjacency helpers.
//
// Provided helpers:
//   - ValidatePath: verify a permutation over {1..n}.
//   - PathToAdjacency / AdjacencyToPath: O(n) conversions.
//   - Reverse: in-place segment reversal of a path (2-opt core).
//   - EqualCycles: equality of two paths as undirected cycles.
//   - Identity: the path 1, 2, …, n.
package tour

import "fmt"

// ValidatePath checks that path is a permutation of {1..n}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePath(path []int, n int) error {
	if n <= 0 || len(path) != n {
		return fmt.Errorf("%w: path has %d nodes, want %d", ErrMalformedTour, len(path), n)
	}
	seen := make([]bool, n+1)

	var i, v int
	for i = 0; i < n; i++ {
		v = path[i]
		if v < 1 || v > n {
			return fmt.Errorf("%w: node %d out of range at position %d", ErrMalformedTour, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: node %d visited twice", ErrMalformedTour, v)
		}
		seen[v] = true
	}

	return nil
}

// Identity returns the path 1, 2, …, n.
func Identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i + 1
	}

	return p
}

// PathToAdjacency writes the successor array of path into dst (grown if
// needed): dst[path[i]-1] = path[i+1], wrapping at the end.
// The path is validated first.
//
// Complexity: O(n).
func PathToAdjacency(path []int, dst []int) ([]int, error) {
	n := len(path)
	if err := ValidatePath(path, n); err != nil {
		return nil, err
	}
	if cap(dst) < n {
		dst = make([]int, n)
	}
	dst = dst[:n]

	var i int
	for i = 0; i < n-1; i++ {
		dst[path[i]-1] = path[i+1]
	}
	dst[path[n-1]-1] = path[0]

	return dst, nil
}

// AdjacencyToPath follows the successor array from node 1 and writes the
// visiting order into dst (grown if needed). It fails with ErrMalformedTour
// unless adj encodes exactly one Hamiltonian cycle.
//
// Complexity: O(n).
func AdjacencyToPath(adj []int, dst []int) ([]int, error) {
	n := len(adj)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty adjacency", ErrMalformedTour)
	}
	if cap(dst) < n {
		dst = make([]int, n)
	}
	dst = dst[:n]
	seen := make([]bool, n+1)

	var (
		i   int
		cur = 1
	)
	for i = 0; i < n; i++ {
		if cur < 1 || cur > n {
			return nil, fmt.Errorf("%w: successor %d out of range", ErrMalformedTour, cur)
		}
		if seen[cur] {
			// Closed early: adj consists of several sub-cycles.
			return nil, fmt.Errorf("%w: sub-cycle of length %d", ErrMalformedTour, i)
		}
		seen[cur] = true
		dst[i] = cur
		cur = adj[cur-1]
	}
	if cur != 1 {
		return nil, fmt.Errorf("%w: cycle does not close at node 1", ErrMalformedTour)
	}

	return dst, nil
}

// Reverse reverses path[i..j] in place. Indices are 0-based and inclusive;
// i > j or out-of-range indices leave the path untouched.
//
// Complexity: O(j−i).
func Reverse(path []int, i, j int) {
	if i < 0 || j >= len(path) || i >= j {
		return
	}
	for i < j {
		path[i], path[j] = path[j], path[i]
		i++
		j--
	}
}

// EqualCycles reports whether a and b visit the same undirected cycle,
// i.e. they are equal up to rotation and direction.
//
// Complexity: O(n).
func EqualCycles(a, b []int) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}

	var (
		off = -1
		i   int
	)
	for i = 0; i < n; i++ {
		if b[i] == a[0] {
			off = i
			break
		}
	}
	if off < 0 {
		return false
	}

	forward, backward := true, true
	for i = 0; i < n && (forward || backward); i++ {
		if a[i] != b[(off+i)%n] {
			forward = false
		}
		if a[i] != b[(off-i+n)%n] {
			backward = false
		}
	}

	return forward || backward
}
