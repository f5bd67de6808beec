package construct

import (
	"fmt"
	"math"
)

// NearestNeighbor returns the tour that starts at node start and always
// moves on to the closest unvisited node. dst is reused when large enough.
//
// Complexity: O(n²) time.
func NearestNeighbor(d Distancer, start int, dst []int) ([]int, error) {
	n := d.N()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooSmall, n)
	}
	if start < 1 || start > n {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrStartOutOfRange, start, n)
	}

	var (
		visited = make([]bool, n+1)
		cur     = start
		next, v int
		best, w int64
	)
	dst = append(dst[:0], start)
	visited[start] = true
	for len(dst) < n {
		next, best = 0, math.MaxInt64
		for v = 1; v <= n; v++ {
			if visited[v] {
				continue
			}
			if w = d.Distance(cur, v); w < best {
				next, best = v, w
			}
		}
		visited[next] = true
		dst = append(dst, next)
		cur = next
	}

	return dst, nil
}
