package heldkarp

import (
	"fmt"
	"math"

	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

// MaxDPNodes is the largest instance SolveDP accepts; its tables hold
// (n−1)·2ⁿ⁻¹ entries.
const MaxDPNodes = 16

// dpCheckEvery is the number of subsets filled between budget checks.
const dpCheckEvery = 1 << 12

// SolveDP solves small instances exactly with the Held-Karp dynamic
// program. Unlike Solve it accepts asymmetric distances.
//
// Node 1 is fixed as the start. dp[S][j] is the length of the shortest path
// that leaves node 1, visits exactly the nodes of S and ends at j ∈ S.
// The optimal tour is registered with obj once, as a single evaluation.
//
// The budget is polled while the tables fill: a time limit or a cancelled
// context ends SolveDP early with Length == objective.NoTour.
//
// Errors:
//   - ErrNilObjective if obj is nil.
//   - ErrTooLarge if obj.N() > MaxDPNodes.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func SolveDP(obj objective.Objective) (Result, error) {
	if obj == nil {
		return Result{}, ErrNilObjective
	}
	n := obj.N()
	if n > MaxDPNodes {
		return Result{}, fmt.Errorf("%w: %d nodes, at most %d", ErrTooLarge, n, MaxDPNodes)
	}
	if obj.ShouldTerminate() {
		return Result{Length: objective.NoTour}, nil
	}

	// Internal index k ∈ 0..m−1 stands for node k+2; bit k of a subset.
	var (
		m      = n - 1
		full   = 1<<m - 1
		cost   = make([]int64, (full+1)*m)
		parent = make([]int8, (full+1)*m)
		mask   int
		j, k   int
		cur    int64
		cand   int64
	)
	for i := range cost {
		cost[i] = math.MaxInt64
	}
	for k = 0; k < m; k++ {
		cost[(1<<k)*m+k] = obj.Distance(1, k+2)
		parent[(1<<k)*m+k] = -1
	}

	for mask = 1; mask <= full; mask++ {
		if mask%dpCheckEvery == 0 && obj.ShouldTerminate() {
			return Result{Length: objective.NoTour}, nil
		}
		for j = 0; j < m; j++ {
			cur = cost[mask*m+j]
			if mask&(1<<j) == 0 || cur == math.MaxInt64 {
				continue
			}
			for k = 0; k < m; k++ {
				if mask&(1<<k) != 0 {
					continue
				}
				cand = cur + obj.Distance(j+2, k+2)
				next := (mask | 1<<k) * m
				if cand < cost[next+k] {
					cost[next+k] = cand
					parent[next+k] = int8(j)
				}
			}
		}
	}

	// Close the cycle back to node 1.
	best, last := int64(math.MaxInt64), -1
	for j = 0; j < m; j++ {
		if cur = cost[full*m+j]; cur == math.MaxInt64 {
			continue
		}
		if cand = cur + obj.Distance(j+2, 1); cand < best {
			best, last = cand, j
		}
	}

	path := make([]int, n)
	path[0] = 1
	mask = full
	for i := n - 1; i >= 1; i-- {
		path[i] = last + 2
		prev := int(parent[mask*m+last])
		mask ^= 1 << last
		last = prev
	}
	obj.Register(path, best)

	return Result{Tour: path, Length: best, LowerBound: best, Optimal: true}, nil
}
