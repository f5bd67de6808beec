// Package heldkarp - 1-tree relaxation and tour extraction.
//
// Internally nodes are 0-based; node 0 (id 1) is the 1-tree root.
//
// Tree encoding (one edge per node, n edges in total):
//
//   - parent[first] = 0   root edge to the cheapest root neighbor;
//   - parent[0] = second  root edge to the second cheapest;
//   - parent[v]           Prim edge for every other v, the spanning tree
//     over 1..n−1 being rooted at first.
//
// treeDist[v] caches d(v, parent[v]) so that tour extraction reuses the
// distances of the tree edges it walks along.
package heldkarp

import (
	"math"

	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

// engine owns the working arrays of one Solve call; search nodes only hold
// what differs between them.
type engine struct {
	obj  objective.Objective
	opts Options
	n    int
	w    []int64 // d(i,j) at w[i*n+j]

	// 1-tree scratch
	key      []float64
	inTree   []bool
	treeDist []int64
	first    int

	// extraction scratch
	firstChild  []int
	nextSibling []int
	stack       []int
	path        []int

	// incumbent
	upper   float64
	best    []int
	bestLen int64

	nodes    int
	oneTrees int
	stopped  bool

	// onChild, if set, observes every child right after its relaxation.
	onChild func(parent, child *node)
}

func newEngine(obj objective.Objective, opts Options) *engine {
	n := obj.N()
	e := &engine{
		obj:         obj,
		opts:        opts.normalized(),
		n:           n,
		w:           make([]int64, n*n),
		key:         make([]float64, n),
		inTree:      make([]bool, n),
		treeDist:    make([]int64, n),
		firstChild:  make([]int, n),
		nextSibling: make([]int, n),
		stack:       make([]int, 0, n),
		path:        make([]int, n),
		upper:       math.Inf(1),
		bestLen:     objective.NoTour,
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				e.w[i*n+j] = obj.Distance(i+1, j+1)
			}
		}
	}

	return e
}

func (e *engine) at(i, j int) int64 { return e.w[i*e.n+j] }

func (e *engine) symmetric() bool {
	var i, j int
	for i = 0; i < e.n; i++ {
		for j = i + 1; j < e.n; j++ {
			if e.at(i, j) != e.at(j, i) {
				return false
			}
		}
	}

	return true
}

// reduced returns the pi-adjusted cost of (i,j), +Inf if excluded.
func (e *engine) reduced(nd *node, i, j int) float64 {
	if nd.excluded[i][j] {
		return math.Inf(1)
	}

	return float64(e.at(i, j)) + nd.pi[i] + nd.pi[j]
}

// relax runs subgradient ascent on nd. On return nd.bound, nd.degree and
// nd.parent describe the last 1-tree computed.
//
// Complexity: O(steps · n²).
func (e *engine) relax(nd *node) {
	var (
		lambda = e.opts.Lambda
		prev   = math.Inf(-1)
		denom  float64
		step   float64
		d      int
		i      int
	)
	for lambda > e.opts.MinLambda {
		e.oneTree(nd)
		if e.obj.ShouldTerminate() {
			e.stopped = true
			return
		}
		if math.IsInf(nd.bound, 1) || nd.bound >= e.upper {
			return
		}
		if nd.bound <= prev {
			lambda *= e.opts.Decay
		}
		prev = max(prev, nd.bound)

		denom = 0
		for i = 1; i < e.n; i++ {
			d = nd.degree[i] - 2
			denom += float64(d * d)
		}
		if denom == 0 {
			return
		}

		step = lambda * nd.bound / denom
		for i = 1; i < e.n; i++ {
			nd.pi[i] += step * float64(nd.degree[i]-2)
		}
	}
}

// oneTree computes the minimum 1-tree of nd, its rounded bound, and
// registers the tour extracted from it. An infeasible 1-tree (excluded
// edges leave no spanning structure) gets bound +Inf and is not extracted.
//
// Complexity: O(n²).
func (e *engine) oneTree(nd *node) {
	var (
		n              = e.n
		inf            = math.Inf(1)
		first, second  = 1, 2
		c, total, sumP float64
		i, j, k        int
	)
	clear(nd.degree)
	e.oneTrees++

	// Two cheapest root edges, ties to the smaller index.
	if e.reduced(nd, 0, 2) < e.reduced(nd, 0, 1) {
		first, second = 2, 1
	}
	for j = 3; j < n; j++ {
		c = e.reduced(nd, 0, j)
		if c < e.reduced(nd, 0, second) {
			if c < e.reduced(nd, 0, first) {
				first, second = j, first
			} else {
				second = j
			}
		}
	}
	e.first = first

	total = e.reduced(nd, 0, first)
	nd.degree[0]++
	nd.degree[first]++
	for j = 0; j < n; j++ {
		nd.parent[j] = first
		e.inTree[j] = false
	}
	nd.parent[first] = 0
	e.treeDist[first] = e.at(0, first)
	e.inTree[0], e.inTree[first] = true, true
	for j = 1; j < n; j++ {
		e.key[j] = e.reduced(nd, first, j)
	}

	// Prim over 1..n−1, grown from first.
	for k = 2; k < n; k++ {
		i = -1
		for j = 1; j < n; j++ {
			if !e.inTree[j] && (i < 0 || e.key[j] < e.key[i]) {
				i = j
			}
		}
		e.inTree[i] = true
		total += e.key[i]
		nd.degree[i]++
		nd.degree[nd.parent[i]]++
		e.treeDist[i] = e.at(i, nd.parent[i])

		for j = 1; j < n; j++ {
			if !e.inTree[j] {
				if c = e.reduced(nd, i, j); c < e.key[j] {
					e.key[j] = c
					nd.parent[j] = i
				}
			}
		}
	}

	total += e.reduced(nd, 0, second)
	nd.degree[0]++
	nd.degree[second]++
	nd.parent[0] = second
	e.treeDist[0] = e.at(0, second)

	if math.IsInf(total, 1) {
		nd.bound = inf
		return
	}
	for i = 0; i < n; i++ {
		sumP += nd.pi[i]
	}
	nd.bound = math.RoundToEven(total - 2*sumP)

	e.extract(nd)
}

// extract walks the spanning tree of nd in pre-order from the root, closes
// the cycle back to the root and registers the resulting tour.
//
// Complexity: O(n).
func (e *engine) extract(nd *node) {
	var (
		n          = e.n
		v, u, prev int
		length     int64
		idx        int
	)
	for v = 0; v < n; v++ {
		e.firstChild[v] = -1
		e.nextSibling[v] = -1
	}
	// Higher ids are linked first so that children pop in ascending order.
	for v = n - 1; v >= 1; v-- {
		if v == e.first {
			continue
		}
		u = nd.parent[v]
		e.nextSibling[v] = e.firstChild[u]
		e.firstChild[u] = v
	}

	e.path[0] = 1
	idx = 1
	prev = 0
	e.stack = append(e.stack[:0], e.first)
	for len(e.stack) > 0 {
		v = e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		if nd.parent[v] == prev {
			length += e.treeDist[v]
		} else {
			length += e.at(prev, v)
		}
		e.path[idx] = v + 1
		idx++
		prev = v

		e.pushChildren(v)
	}
	if nd.parent[0] == prev {
		length += e.treeDist[0]
	} else {
		length += e.at(prev, 0)
	}

	e.register(length)
}

// pushChildren pushes the tree children of v so that the smallest id is
// popped first.
func (e *engine) pushChildren(v int) {
	mark := len(e.stack)
	for c := e.firstChild[v]; c >= 0; c = e.nextSibling[c] {
		e.stack = append(e.stack, c)
	}
	// reverse the freshly pushed run
	for i, j := mark, len(e.stack)-1; i < j; i, j = i+1, j-1 {
		e.stack[i], e.stack[j] = e.stack[j], e.stack[i]
	}
}

// register hands e.path to the Objective and updates the incumbent.
func (e *engine) register(length int64) {
	e.obj.Register(e.path, length)
	if length < e.bestLen {
		e.bestLen = length
		e.best = append(e.best[:0], e.path...)
		e.upper = float64(length)
	}
}
