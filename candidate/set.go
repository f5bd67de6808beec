package candidate

import (
	"fmt"
	"slices"
)

// NotCandidate is returned by PseudoID for nodes outside a candidate list.
const NotCandidate = 0

// Distancer is the part of objective.Objective needed to build candidate
// lists.
type Distancer interface {
	N() int
	Distance(a, b int) int64
}

// Set is a candidate set over nodes 1..N with M candidates per node.
type Set interface {
	// N returns the number of nodes.
	N() int
	// M returns the number of candidates per node.
	M() int
	// Candidate returns the candidate of v with pseudo-id id ∈ 1..M.
	// It panics if id is out of range.
	Candidate(v, id int) int
	// PseudoID returns the pseudo-id of u in the list of v, or NotCandidate.
	PseudoID(v, u int) int
}

// IsCandidate reports whether u is in the candidate list of v.
func IsCandidate(s Set, v, u int) bool { return s.PseudoID(v, u) != NotCandidate }

// Allocate builds the candidate set with m nearest neighbors per node.
// If m ≤ 0 or m ≥ n−1 the result is a Proxy. old, if non-nil, donates its
// storage when it is large enough.
//
// Complexity: O(n² log m) time, O(n·m) memory for a SubSet; O(1) for a Proxy.
func Allocate(d Distancer, m int, old Set) Set {
	n := d.N()
	if m <= 0 || m >= n-1 {
		if p, ok := old.(*Proxy); ok && p.n == n {
			return p
		}

		return NewProxy(n)
	}

	s := reuseSubSet(old, n, m)
	h := newNeighborHeap(m)

	var v, u int
	for v = 1; v <= n; v++ {
		h.reset()
		for u = 1; u <= n; u++ {
			if u != v {
				h.offer(d.Distance(v, u), u)
			}
		}
		h.fill(s.Row(v))
	}

	return s
}

// Proxy is the degenerate candidate set in which every other node is a
// candidate. It needs no memory: pseudo-ids are node ids shifted past v.
type Proxy struct{ n int }

// NewProxy returns the full candidate set over n nodes.
func NewProxy(n int) *Proxy { return &Proxy{n: n} }

// N implements Set.
func (p *Proxy) N() int { return p.n }

// M implements Set.
func (p *Proxy) M() int { return p.n - 1 }

// Candidate implements Set.
func (p *Proxy) Candidate(v, id int) int {
	if id < 1 || id >= p.n {
		panic(fmt.Sprintf("candidate: pseudo-id %d out of range 1..%d", id, p.n-1))
	}
	if id < v {
		return id
	}

	return id + 1
}

// PseudoID implements Set.
func (p *Proxy) PseudoID(v, u int) int {
	switch {
	case u == v || u < 1 || u > p.n:
		return NotCandidate
	case u < v:
		return u
	default:
		return u - 1
	}
}

// SubSet stores m candidates per node in one flat array; row v occupies
// data[(v-1)·m : v·m] and is sorted by node id.
type SubSet struct {
	n, m int
	data []int32
}

func reuseSubSet(old Set, n, m int) *SubSet {
	if s, ok := old.(*SubSet); ok && cap(s.data) >= n*m {
		s.n, s.m = n, m
		s.data = s.data[:n*m]

		return s
	}

	return &SubSet{n: n, m: m, data: make([]int32, n*m)}
}

// N implements Set.
func (s *SubSet) N() int { return s.n }

// M implements Set.
func (s *SubSet) M() int { return s.m }

// Row returns the candidate list of v, sorted by node id. The slice aliases
// the set's storage.
func (s *SubSet) Row(v int) []int32 { return s.data[(v-1)*s.m : v*s.m] }

// Candidate implements Set.
func (s *SubSet) Candidate(v, id int) int {
	if id < 1 || id > s.m {
		panic(fmt.Sprintf("candidate: pseudo-id %d out of range 1..%d", id, s.m))
	}

	return int(s.data[(v-1)*s.m+id-1])
}

// PseudoID implements Set.
//
// Complexity: O(log m).
func (s *SubSet) PseudoID(v, u int) int {
	if i, ok := slices.BinarySearch(s.Row(v), int32(u)); ok {
		return i + 1
	}

	return NotCandidate
}

// neighborHeap keeps the m smallest (distance, id) pairs seen so far as a
// fixed-capacity max-heap; ties are broken towards smaller ids.
type neighborHeap struct {
	dist []int64
	id   []int
	size int
}

func newNeighborHeap(capacity int) *neighborHeap {
	return &neighborHeap{dist: make([]int64, capacity), id: make([]int, capacity)}
}

func (h *neighborHeap) reset() { h.size = 0 }

// above reports whether entry i ranks after entry j (farther, or as far
// with a larger id).
func (h *neighborHeap) above(i, j int) bool {
	if h.dist[i] != h.dist[j] {
		return h.dist[i] > h.dist[j]
	}

	return h.id[i] > h.id[j]
}

func (h *neighborHeap) swap(i, j int) {
	h.dist[i], h.dist[j] = h.dist[j], h.dist[i]
	h.id[i], h.id[j] = h.id[j], h.id[i]
}

func (h *neighborHeap) offer(d int64, id int) {
	if h.size < len(h.dist) {
		h.dist[h.size], h.id[h.size] = d, id
		h.size++
		h.bubbleUp(h.size - 1)

		return
	}
	if d > h.dist[0] || (d == h.dist[0] && id > h.id[0]) {
		return
	}
	h.dist[0], h.id[0] = d, id
	h.bubbleDown(0)
}

func (h *neighborHeap) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.above(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *neighborHeap) bubbleDown(i int) {
	for {
		largest, l, r := i, 2*i+1, 2*i+2
		if l < h.size && h.above(l, largest) {
			largest = l
		}
		if r < h.size && h.above(r, largest) {
			largest = r
		}
		if largest == i {
			return
		}
		h.swap(i, largest)
		i = largest
	}
}

// fill writes the retained ids into row, sorted by id.
func (h *neighborHeap) fill(row []int32) {
	for i := 0; i < h.size; i++ {
		row[i] = int32(h.id[i])
	}
	slices.Sort(row[:h.size])
}
