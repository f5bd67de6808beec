// Package localsearch - first-improvement 2-opt and Or-opt on *Path.
//
// Both searches scan their neighborhood with incremental deltas (no FE),
// apply the first improving move, restart the scan, and evaluate the final
// tour once. The budget is polled between scans so that time limits and
// cancellation cut long descents short.
package localsearch

import (
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
	"github.com/optimizationBenchmarking/tspSuite-sub014/tour"
)

// TwoOpt is the classic 2-opt neighborhood: replace (a,b),(c,d) by (a,c),(b,d)
// and reverse the segment b..c.
type TwoOpt struct{}

var _ Searcher[*Path] = TwoOpt{}

// Search implements Searcher.
//
// Complexity: O(n²) per scan; O(n) per applied move.
func (TwoOpt) Search(ind *Individual[*Path], obj objective.Objective) error {
	var (
		p        = ind.Solution.nodes
		n        = len(p)
		improved = n >= 4
		i, j     int
		a, b     int
		c, d     int
		delta    int64
	)
	for improved && !obj.ShouldTerminate() {
		improved = false
		for i = 0; i < n-2; i++ {
			a, b = p[i], p[i+1]
			for j = i + 2; j < n; j++ {
				c, d = p[j], p[(j+1)%n]
				if d == a {
					continue
				}
				delta = obj.Distance(a, c) + obj.Distance(b, d) - obj.Distance(a, b) - obj.Distance(c, d)
				if delta < 0 {
					tour.Reverse(p, i+1, j)
					b = p[i+1]
					improved = true
				}
			}
		}
	}
	ind.Length = obj.Evaluate(p)

	return nil
}

// OrOpt moves a segment of one to three consecutive nodes, in either
// orientation, to another place in the tour.
type OrOpt struct {
	buf []int
}

var _ Searcher[*Path] = (*OrOpt)(nil)

// Search implements Searcher.
//
// Complexity: O(n²) per scan; O(n) per applied move.
func (o *OrOpt) Search(ind *Individual[*Path], obj objective.Objective) error {
	var (
		p        = ind.Solution.nodes
		n        = len(p)
		improved = n >= 5
	)
	for improved && !obj.ShouldTerminate() {
		improved = o.scan(p, obj)
	}
	ind.Length = obj.Evaluate(p)

	return nil
}

// scan applies the first improving move and reports whether it found one.
func (o *OrOpt) scan(p []int, obj objective.Objective) bool {
	var (
		n                 = len(p)
		l, i, t           int
		s0, sl, prev, nxt int
		x, y              int
		gain              int64
		fwd, rev          int64
	)
	for l = 1; l <= 3; l++ {
		for i = 0; i < n; i++ {
			s0 = p[i]
			sl = p[(i+l-1)%n]
			prev = p[(i-1+n)%n]
			nxt = p[(i+l)%n]
			gain = obj.Distance(prev, s0) + obj.Distance(sl, nxt) - obj.Distance(prev, nxt)

			// The rest of the tour runs nxt … prev; try every edge (x,y) on it.
			for t = 0; t < n-l-1; t++ {
				x = p[(i+l+t)%n]
				y = p[(i+l+t+1)%n]
				fwd = obj.Distance(x, s0) + obj.Distance(sl, y) - obj.Distance(x, y)
				rev = obj.Distance(x, sl) + obj.Distance(s0, y) - obj.Distance(x, y)
				switch {
				case fwd < gain:
					o.apply(p, i, l, t, false)
					return true
				case rev < gain:
					o.apply(p, i, l, t, true)
					return true
				}
			}
		}
	}

	return false
}

// apply rebuilds p as rest[0..t], segment (optionally reversed), rest[t+1..].
func (o *OrOpt) apply(p []int, i, l, t int, reversed bool) {
	var (
		n = len(p)
		k int
	)
	o.buf = o.buf[:0]
	for k = 0; k <= t; k++ {
		o.buf = append(o.buf, p[(i+l+k)%n])
	}
	if reversed {
		for k = l - 1; k >= 0; k-- {
			o.buf = append(o.buf, p[(i+k)%n])
		}
	} else {
		for k = 0; k < l; k++ {
			o.buf = append(o.buf, p[(i+k)%n])
		}
	}
	for k = t + 1; k < n-l; k++ {
		o.buf = append(o.buf, p[(i+l+k)%n])
	}
	copy(p, o.buf)
}
