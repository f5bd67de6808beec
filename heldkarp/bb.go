// Package heldkarp - branch-and-bound over 1-tree search nodes.
//
// Search order ("dive then backtrack"):
//  1. Relax the current node. If its 1-tree is a tour, the tour was already
//     registered during relaxation and the dive ends.
//  2. Otherwise branch on the node with the smallest degree above two,
//     relax every child, sort the children by bound, continue with the
//     cheapest one and push the others onto a min-heap.
//  3. When the dive is pruned (bound ≥ incumbent), pop the next node from
//     the heap; stop when the heap runs dry or the budget is exhausted.
//
// Children share the excluded-edge rows of their parent and clone only the
// two rows they modify. Multipliers are copied from the parent as a warm
// start, and a child's bound is never below its parent's.
package heldkarp

import (
	"container/heap"
	"slices"

	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

// Result summarizes a Solve call.
type Result struct {
	// Tour is the best tour found (node ids 1..n); nil if none was found.
	Tour []int
	// Length is the length of Tour (objective.NoTour if none was found).
	Length int64
	// LowerBound is a proven lower bound on the optimal length: Length when
	// Optimal, the root bound otherwise.
	LowerBound int64
	// Optimal reports whether the search ran to completion.
	Optimal bool
	// Nodes is the number of search nodes created (root included).
	Nodes int
	// OneTrees is the number of 1-trees computed.
	OneTrees int
}

// node is one branch-and-bound search node.
type node struct {
	excluded [][]bool // row-shared with the parent except for touched rows
	pi       []float64
	bound    float64
	degree   []int
	parent   []int
}

func newRoot(n int) *node {
	excluded := make([][]bool, n)
	for i := range excluded {
		excluded[i] = make([]bool, n)
	}

	return &node{
		excluded: excluded,
		pi:       make([]float64, n),
		degree:   make([]int, n),
		parent:   make([]int, n),
	}
}

// child returns a copy of nd with edge (i,j) excluded, sharing every
// untouched excluded row with nd.
func (nd *node) child(i, j int) *node {
	c := &node{
		excluded: slices.Clone(nd.excluded),
		pi:       slices.Clone(nd.pi),
		degree:   make([]int, len(nd.degree)),
		parent:   make([]int, len(nd.parent)),
	}
	c.excluded[i] = slices.Clone(nd.excluded[i])
	c.excluded[j] = slices.Clone(nd.excluded[j])
	c.excluded[i][j] = true
	c.excluded[j][i] = true

	return c
}

// branchVertex returns the node with the smallest degree above two, or -1
// if the 1-tree is a tour.
func (nd *node) branchVertex() int {
	best := -1
	for v, d := range nd.degree {
		if d > 2 && (best < 0 || d < nd.degree[best]) {
			best = v
		}
	}

	return best
}

// nodeQueue is a min-heap of search nodes keyed by bound.
type nodeQueue []*node

func (q nodeQueue) Len() int           { return len(q) }
func (q nodeQueue) Less(i, j int) bool { return q[i].bound < q[j].bound }
func (q nodeQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)        { *q = append(*q, x.(*node)) }
func (q *nodeQueue) Pop() any {
	old := *q
	last := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]

	return last
}

// Solve searches for an optimal tour of the symmetric instance behind obj.
//
// Every tour met on the way is registered with obj; budget exhaustion ends
// the search early without error.
//
// The subgradient step is proportional to the current bound. A node whose
// 1-tree bound is 0, as happens when many edges have length 0, never moves
// its multipliers, so the search tree can grow exponentially on such
// instances. Give them a FE or time budget.
//
// Errors:
//   - ErrNilObjective if obj is nil.
//   - ErrAsymmetric if the distances are not symmetric.
//
// Complexity: exponential in the worst case; O(n²) per 1-tree, O(n²) memory
// for distances plus O(n) per open search node and one row per branching.
func Solve(obj objective.Objective, opts Options) (Result, error) {
	if obj == nil {
		return Result{}, ErrNilObjective
	}

	e := newEngine(obj, opts)
	if !e.symmetric() {
		return Result{}, ErrAsymmetric
	}
	if obj.ShouldTerminate() {
		return Result{Length: objective.NoTour}, nil
	}
	if e.n <= 3 {
		return e.solveTrivial(), nil
	}

	return e.search(), nil
}

// solveTrivial handles n ≤ 3, where every permutation is the same cycle.
func (e *engine) solveTrivial() Result {
	var (
		length int64
		i      int
	)
	for i = 0; i < e.n; i++ {
		e.path[i] = i + 1
		length += e.at(i, (i+1)%e.n)
	}
	e.register(length)

	return Result{
		Tour:       e.best,
		Length:     e.bestLen,
		LowerBound: e.bestLen,
		Optimal:    true,
	}
}

func (e *engine) search() Result {
	root := newRoot(e.n)
	e.nodes = 1
	e.relax(root)
	rootBound := root.bound

	var (
		queue nodeQueue
		cur   = root
		kids  []*node
		v     int
	)
	for cur != nil && !e.stopped {
		for cur != nil && cur.bound < e.upper && !e.stopped {
			if v = cur.branchVertex(); v < 0 {
				break
			}
			kids = e.branch(cur, v, kids[:0])
			if e.stopped || e.obj.ShouldTerminate() {
				e.stopped = true
				break
			}
			slices.SortStableFunc(kids, func(a, b *node) int {
				switch {
				case a.bound < b.bound:
					return -1
				case a.bound > b.bound:
					return 1
				default:
					return 0
				}
			})
			cur = kids[0]
			for _, k := range kids[1:] {
				if k.bound < e.upper {
					heap.Push(&queue, k)
				}
			}
		}

		cur = nil
		for queue.Len() > 0 {
			if nd := heap.Pop(&queue).(*node); nd.bound < e.upper {
				cur = nd
				break
			}
		}
	}

	res := Result{
		Length:   e.bestLen,
		Optimal:  !e.stopped,
		Nodes:    e.nodes,
		OneTrees: e.oneTrees,
	}
	if e.best != nil {
		res.Tour = slices.Clone(e.best)
	}
	switch {
	case res.Optimal:
		res.LowerBound = e.bestLen
	case rootBound > float64(e.bestLen):
		res.LowerBound = e.bestLen
	default:
		res.LowerBound = int64(rootBound)
	}

	return res
}

// branch appends the relaxed children of cur for branching vertex v to dst:
// one excluding (v, parent[v]), one per tree child u of v excluding (v, u).
func (e *engine) branch(cur *node, v int, dst []*node) []*node {
	dst = append(dst, e.exclude(cur, v, cur.parent[v]))
	for u := 0; u < e.n && !e.stopped; u++ {
		if cur.parent[u] == v {
			dst = append(dst, e.exclude(cur, v, u))
		}
	}

	return dst
}

func (e *engine) exclude(parent *node, i, j int) *node {
	c := parent.child(i, j)
	e.nodes++
	e.relax(c)
	c.bound = max(c.bound, parent.bound)
	if e.onChild != nil {
		e.onChild(parent, c)
	}

	return c
}
