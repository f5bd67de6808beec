package construct

import (
	"fmt"
	"math"
)

// Distancer is the part of objective.Objective the heuristics read.
type Distancer interface {
	N() int
	Distance(a, b int) int64
}

// Christofides returns a tour of d built by the Christofides pipeline with
// a greedy matching. dst is reused when large enough.
//
// Complexity: O(n²) time, O(n) memory besides the result.
func Christofides(d Distancer, dst []int) ([]int, error) {
	n := d.N()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooSmall, n)
	}

	adj := minimumSpanningTree(d)

	// Odd-degree vertices; there is always an even number of them.
	odd := make([]int, 0, n/2+1)
	var v int
	for v = 0; v < n; v++ {
		if len(adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}
	greedyMatch(d, odd, adj)

	return shortcut(eulerianCircuit(adj, 0), n, dst), nil
}

// minimumSpanningTree runs Prim from vertex 0 on the complete graph and
// returns the tree as adjacency lists over 0-based indices.
func minimumSpanningTree(d Distancer) [][]int {
	var (
		n      = d.N()
		inTree = make([]bool, n)
		best   = make([]int64, n)
		parent = make([]int, n)
		adj    = make([][]int, n)
		it, u  int
		v      int
		w      int64
	)
	for v = range best {
		best[v] = math.MaxInt64
		parent[v] = -1
	}
	best[0] = 0

	for it = 0; it < n; it++ {
		u = -1
		for v = 0; v < n; v++ {
			if !inTree[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		inTree[u] = true
		if p := parent[u]; p >= 0 {
			adj[u] = append(adj[u], p)
			adj[p] = append(adj[p], u)
		}
		for v = 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if w = d.Distance(u+1, v+1); w < best[v] {
				best[v] = w
				parent[v] = u
			}
		}
	}

	return adj
}

// greedyMatch pairs the vertices of odd, each with its nearest remaining
// partner, and adds the matching edges to adj.
//
// Complexity: O(k²) for k odd vertices.
func greedyMatch(d Distancer, odd []int, adj [][]int) {
	remaining := append([]int(nil), odd...)
	var (
		u, i, bestIdx int
		dist, bestD   int64
	)
	for len(remaining) > 1 {
		u, remaining = remaining[0], remaining[1:]
		bestIdx, bestD = -1, math.MaxInt64
		for i = range remaining {
			if dist = d.Distance(u+1, remaining[i]+1); dist < bestD {
				bestD, bestIdx = dist, i
			}
		}
		v := remaining[bestIdx]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}
}

// eulerianCircuit returns a closed walk from start that uses every edge of
// the connected multigraph adj exactly once (Hierholzer). adj is consumed.
func eulerianCircuit(adj [][]int, start int) []int {
	var (
		circuit = make([]int, 0, len(adj)*2)
		stack   = []int{start}
		u, v    int
	)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		if len(adj[u]) == 0 {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		v = adj[u][len(adj[u])-1]
		adj[u] = adj[u][:len(adj[u])-1]
		for i, x := range adj[v] {
			if x == u {
				adj[v] = append(adj[v][:i], adj[v][i+1:]...)
				break
			}
		}
		stack = append(stack, v)
	}

	return circuit
}

// shortcut keeps the first visit of every vertex of circuit and returns the
// visiting order as node ids 1..n.
func shortcut(circuit []int, n int, dst []int) []int {
	dst = dst[:0]
	seen := make([]bool, n)
	for _, v := range circuit {
		if !seen[v] {
			seen[v] = true
			dst = append(dst, v+1)
		}
	}

	return dst
}
