package tour

import "fmt"

// satellite is one list node: two unordered neighbor slots, 0 = empty.
type satellite [2]int

// other returns the neighbor that is not from. If both slots hold from
// (n == 2) from itself is returned.
func (s *satellite) other(from int) int {
	if s[0] == from {
		return s[1]
	}

	return s[0]
}

// SatelliteList is an undirected doubly-linked cyclic list over 1..n stored
// in an index arena. A committed list always forms one cycle in which every
// node has exactly two neighbors; during Connect/Disconnect sequences the
// caller is responsible for restoring that invariant.
type SatelliteList struct {
	nodes []satellite // nodes[v] for v ∈ 1..n; nodes[0] unused
	walk  walker
}

// NewSatelliteList returns an empty list (no connections) over n nodes.
func NewSatelliteList(n int) *SatelliteList {
	return &SatelliteList{nodes: make([]satellite, n+1), walk: newWalker(n)}
}

// PathToSatellite builds a list from path.
func PathToSatellite(path []int) (*SatelliteList, error) {
	l := NewSatelliteList(len(path))
	if err := l.LoadPath(path); err != nil {
		return nil, err
	}

	return l, nil
}

// SatelliteToPath walks l from node 1 and writes the visiting order to dst.
func SatelliteToPath(l *SatelliteList, dst []int) ([]int, error) {
	return l.AppendPath(dst[:0])
}

// N returns the number of nodes.
func (l *SatelliteList) N() int { return len(l.nodes) - 1 }

// Neighbor returns the node in slot (0 or 1) of v, or 0 if the slot is empty.
func (l *SatelliteList) Neighbor(v, slot int) int { return l.nodes[v][slot] }

// Other returns the neighbor of v that is not from, i.e. the next node when
// walking through v after arriving from from.
func (l *SatelliteList) Other(v, from int) int { return l.nodes[v].other(from) }

// IsConnected reports whether a and b are neighbors.
func (l *SatelliteList) IsConnected(a, b int) bool {
	s := &l.nodes[a]
	return s[0] == b || s[1] == b
}

// Connect links a and b using a free slot on each side.
func (l *SatelliteList) Connect(a, b int) error {
	sa, sb := &l.nodes[a], &l.nodes[b]
	if (sa[0] != 0 && sa[1] != 0) || (sb[0] != 0 && sb[1] != 0) {
		return fmt.Errorf("%w: connect %d-%d", ErrDegreeOverflow, a, b)
	}
	fill(sa, b)
	fill(sb, a)

	return nil
}

// Disconnect removes the link between a and b.
func (l *SatelliteList) Disconnect(a, b int) error {
	if !l.IsConnected(a, b) || !l.IsConnected(b, a) {
		return fmt.Errorf("%w: disconnect %d-%d", ErrNotConnected, a, b)
	}
	drop(&l.nodes[a], b)
	drop(&l.nodes[b], a)

	return nil
}

// Reverse reverses the segment first…last which is entered from before and
// left towards after: edges (before,first) and (last,after) are replaced by
// (before,last) and (first,after). Interior nodes are not touched.
//
// A segment covering the whole cycle (before == last) is a no-op.
//
// Complexity: O(1).
func (l *SatelliteList) Reverse(before, first, last, after int) error {
	if first == last || before == last {
		return nil
	}
	if !l.IsConnected(before, first) || !l.IsConnected(last, after) {
		return fmt.Errorf("%w: reverse %d-[%d..%d]-%d", ErrNotConnected, before, first, last, after)
	}
	drop(&l.nodes[before], first)
	drop(&l.nodes[first], before)
	drop(&l.nodes[last], after)
	drop(&l.nodes[after], last)
	fill(&l.nodes[before], last)
	fill(&l.nodes[last], before)
	fill(&l.nodes[first], after)
	fill(&l.nodes[after], first)

	return nil
}

// Clear removes all connections.
func (l *SatelliteList) Clear() { clear(l.nodes) }

// LoadPath replaces the list content with the cycle described by path.
//
// Complexity: O(n).
func (l *SatelliteList) LoadPath(path []int) error {
	n := l.N()
	if err := ValidatePath(path, n); err != nil {
		return err
	}
	l.Clear()

	var i int
	for i = 0; i < n; i++ {
		fill(&l.nodes[path[i]], path[(i+1)%n])
		fill(&l.nodes[path[(i+1)%n]], path[i])
	}

	return nil
}

// AppendPath walks the cycle from node 1 towards its slot-0 neighbor and
// appends the visiting order to dst. It fails with ErrMalformedTour if the
// list is not a single Hamiltonian cycle.
//
// Complexity: O(n).
func (l *SatelliteList) AppendPath(dst []int) ([]int, error) {
	return l.walk.run(dst, l.N(), 1, l.nodes[1][0], l.Other)
}

// CopyFrom overwrites l with the content of src (same n).
func (l *SatelliteList) CopyFrom(src *SatelliteList) {
	copy(l.nodes, src.nodes)
}

func fill(s *satellite, v int) {
	if s[0] == 0 {
		s[0] = v
	} else {
		s[1] = v
	}
}

func drop(s *satellite, v int) {
	if s[0] == v {
		s[0] = 0
	} else if s[1] == v {
		s[1] = 0
	}
}

// walker traverses a cycle given an "other neighbor" function and detects
// repeated or missing nodes with stamp-based marks.
type walker struct {
	seen  []uint32
	stamp uint32
}

func newWalker(n int) walker { return walker{seen: make([]uint32, n+1)} }

func (w *walker) next() uint32 {
	w.stamp++
	if w.stamp == 0 {
		clear(w.seen)
		w.stamp = 1
	}

	return w.stamp
}

// run appends n nodes starting with start, then second, then following
// other(cur, prev); it checks that the walk closes at start.
func (w *walker) run(dst []int, n, start, second int, other func(v, from int) int) ([]int, error) {
	if n <= 0 {
		return dst, fmt.Errorf("%w: empty list", ErrMalformedTour)
	}
	stamp := w.next()

	var (
		i    int
		prev int
		cur  = start
		nxt  int
	)
	for i = 0; i < n; i++ {
		if cur < 1 || cur > n {
			return dst, fmt.Errorf("%w: broken link after %d nodes", ErrMalformedTour, i)
		}
		if w.seen[cur] == stamp {
			return dst, fmt.Errorf("%w: sub-cycle of length %d", ErrMalformedTour, i)
		}
		w.seen[cur] = stamp
		dst = append(dst, cur)
		if i == 0 {
			nxt = second
		} else {
			nxt = other(cur, prev)
		}
		prev, cur = cur, nxt
	}
	if cur != start {
		return dst, fmt.Errorf("%w: cycle does not close", ErrMalformedTour)
	}

	return dst, nil
}
