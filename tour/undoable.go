// Package tour - transactional satellite list.
//
// UndoableList keeps a committed satellite list plus, per node, a
// tentative layer:
//
//   - deleted[s]: committed slot s is tentatively disconnected; the slot still
//     holds the old neighbor so UndoDisconnect can restore it.
//   - pending:    up to two tentative connections, used as a LIFO so that
//     UndoConnect always removes the most recent one.
//
// The effective neighbors of a node are its non-deleted committed slots
// followed by its pending entries; an effective degree never exceeds two.
// Commit folds the tentative layer into the committed slots of the touched
// nodes only, so probing a k-opt move costs O(k), not O(n).
//
// DoDisconnect only removes committed edges. A k-opt move can therefore be
// staged in one transaction only when every edge it removes is committed;
// a move that removes an edge added earlier in the same transaction must
// wait for a Commit.
package tour

import "fmt"

type undoNode struct {
	deleted  [2]bool
	pending  [2]int
	npending int
	dirty    bool
}

// UndoableList is a SatelliteList with tentative connect/disconnect,
// undo, commit and rollback.
type UndoableList struct {
	committed []satellite
	tx        []undoNode
	touched   []int // nodes with dirty == true
	deletions int   // pending deletions (edges)
	additions int   // pending additions (edges)
	walk      walker
}

// NewUndoableList returns an empty list over n nodes.
func NewUndoableList(n int) *UndoableList {
	return &UndoableList{
		committed: make([]satellite, n+1),
		tx:        make([]undoNode, n+1),
		walk:      newWalker(n),
	}
}

// N returns the number of nodes.
func (l *UndoableList) N() int { return len(l.committed) - 1 }

// Degree returns the effective number of neighbors of v.
func (l *UndoableList) Degree(v int) int {
	var (
		c = &l.committed[v]
		t = &l.tx[v]
		d = t.npending
	)
	if c[0] != 0 && !t.deleted[0] {
		d++
	}
	if c[1] != 0 && !t.deleted[1] {
		d++
	}

	return d
}

// Neighbor returns the i-th (0 or 1) effective neighbor of v, or 0.
func (l *UndoableList) Neighbor(v, i int) int {
	c, t := &l.committed[v], &l.tx[v]
	for s := 0; s < 2; s++ {
		if c[s] != 0 && !t.deleted[s] {
			if i == 0 {
				return c[s]
			}
			i--
		}
	}
	if i < t.npending {
		return t.pending[i]
	}

	return 0
}

// Other returns the effective neighbor of v that is not from.
func (l *UndoableList) Other(v, from int) int {
	a := l.Neighbor(v, 0)
	if a == from {
		return l.Neighbor(v, 1)
	}

	return a
}

// IsConnected reports whether a and b are effective neighbors.
func (l *UndoableList) IsConnected(a, b int) bool {
	return l.Neighbor(a, 0) == b || l.Neighbor(a, 1) == b
}

// IsRelated reports whether a and b are currently, formerly (tentatively
// disconnected) or tentatively neighbors. Local searches use it to reject
// moves that would reconnect a node through an edge already in play.
func (l *UndoableList) IsRelated(a, b int) bool {
	c, t := &l.committed[a], &l.tx[a]
	if c[0] == b || c[1] == b {
		return true
	}
	for i := 0; i < t.npending; i++ {
		if t.pending[i] == b {
			return true
		}
	}

	return false
}

// DoConnect tentatively links a and b.
func (l *UndoableList) DoConnect(a, b int) error {
	if a == b || l.Degree(a) >= 2 || l.Degree(b) >= 2 {
		return fmt.Errorf("%w: connect %d-%d", ErrDegreeOverflow, a, b)
	}
	l.push(a, b)
	l.push(b, a)
	l.additions++

	return nil
}

// UndoConnect reverts the most recent DoConnect(a, b).
func (l *UndoableList) UndoConnect(a, b int) error {
	ta, tb := &l.tx[a], &l.tx[b]
	if ta.npending == 0 || tb.npending == 0 ||
		ta.pending[ta.npending-1] != b || tb.pending[tb.npending-1] != a {
		return fmt.Errorf("%w: undo connect %d-%d", ErrUndoMismatch, a, b)
	}
	ta.npending--
	ta.pending[ta.npending] = 0
	tb.npending--
	tb.pending[tb.npending] = 0
	l.additions--

	return nil
}

// DoDisconnect tentatively removes the committed link between a and b.
// Tentative links must be removed with UndoConnect instead; for them
// DoDisconnect returns ErrNotConnected.
func (l *UndoableList) DoDisconnect(a, b int) error {
	sa := l.liveSlot(a, b)
	sb := l.liveSlot(b, a)
	if sa < 0 || sb < 0 {
		return fmt.Errorf("%w: disconnect %d-%d", ErrNotConnected, a, b)
	}
	if a == b { // n == 1: both slots of the same node
		sb = 1 - sa
	}
	l.touch(a)
	l.touch(b)
	l.tx[a].deleted[sa] = true
	l.tx[b].deleted[sb] = true
	l.deletions++

	return nil
}

// UndoDisconnect restores a link removed by DoDisconnect(a, b). Connections
// made afterwards on a or b must be undone first.
func (l *UndoableList) UndoDisconnect(a, b int) error {
	sa := l.deadSlot(a, b)
	sb := l.deadSlot(b, a)
	if sa < 0 || sb < 0 || l.Degree(a) >= 2 || l.Degree(b) >= 2 {
		return fmt.Errorf("%w: undo disconnect %d-%d", ErrUndoMismatch, a, b)
	}
	l.tx[a].deleted[sa] = false
	l.tx[b].deleted[sb] = false
	l.deletions--

	return nil
}

// DoReverse tentatively reverses first…last, entered from before and left
// towards after (see SatelliteList.Reverse). On error nothing changes.
func (l *UndoableList) DoReverse(before, first, last, after int) error {
	if first == last || before == last {
		return nil
	}
	if err := l.DoDisconnect(before, first); err != nil {
		return err
	}
	if err := l.DoDisconnect(last, after); err != nil {
		_ = l.UndoDisconnect(before, first)
		return err
	}
	if err := l.DoConnect(before, last); err != nil {
		_ = l.UndoDisconnect(last, after)
		_ = l.UndoDisconnect(before, first)
		return err
	}
	if err := l.DoConnect(first, after); err != nil {
		_ = l.UndoConnect(before, last)
		_ = l.UndoDisconnect(last, after)
		_ = l.UndoDisconnect(before, first)
		return err
	}

	return nil
}

// UndoReverse reverts DoReverse with the same arguments.
func (l *UndoableList) UndoReverse(before, first, last, after int) error {
	if first == last || before == last {
		return nil
	}
	if err := l.UndoConnect(first, after); err != nil {
		return err
	}
	if err := l.UndoConnect(before, last); err != nil {
		return err
	}
	if err := l.UndoDisconnect(last, after); err != nil {
		return err
	}

	return l.UndoDisconnect(before, first)
}

// NumberOfPendingDeletions returns the number of tentatively removed edges.
func (l *UndoableList) NumberOfPendingDeletions() int { return l.deletions }

// NumberOfPendingAdditions returns the number of tentatively added edges.
func (l *UndoableList) NumberOfPendingAdditions() int { return l.additions }

// IsBalanced reports whether pending deletions and additions cancel out.
// Because effective degrees never exceed two, a balanced list has degree
// two everywhere.
func (l *UndoableList) IsBalanced() bool { return l.deletions == l.additions }

// IsTour reports whether the effective state is one Hamiltonian cycle.
//
// Complexity: O(n).
func (l *UndoableList) IsTour() bool {
	n := l.N()
	if n <= 0 {
		return false
	}
	stamp := l.walk.next()

	var (
		i    int
		prev int
		cur  = 1
		nxt  int
	)
	for i = 0; i < n; i++ {
		if cur == 0 || l.walk.seen[cur] == stamp {
			return false
		}
		l.walk.seen[cur] = stamp
		if i == 0 {
			nxt = l.Neighbor(cur, 0)
		} else {
			nxt = l.Other(cur, prev)
		}
		prev, cur = cur, nxt
	}

	return cur == 1
}

// Commit makes the tentative state permanent and drops all undo history.
//
// Complexity: O(touched nodes).
func (l *UndoableList) Commit() error {
	if !l.IsBalanced() {
		return fmt.Errorf("%w: %d deletions, %d additions", ErrUnbalanced, l.deletions, l.additions)
	}

	var (
		v    int
		a, b int
	)
	for _, v = range l.touched {
		a, b = l.Neighbor(v, 0), l.Neighbor(v, 1)
		l.committed[v] = satellite{a, b}
		l.tx[v] = undoNode{}
	}
	l.touched = l.touched[:0]
	l.deletions, l.additions = 0, 0

	return nil
}

// Rollback discards every tentative operation.
func (l *UndoableList) Rollback() {
	for _, v := range l.touched {
		l.tx[v] = undoNode{}
	}
	l.touched = l.touched[:0]
	l.deletions, l.additions = 0, 0
}

// LoadPath replaces the list content with path and clears all history.
func (l *UndoableList) LoadPath(path []int) error {
	n := l.N()
	if err := ValidatePath(path, n); err != nil {
		return err
	}
	l.Rollback()
	clear(l.committed)

	var i int
	for i = 0; i < n; i++ {
		fill(&l.committed[path[i]], path[(i+1)%n])
		fill(&l.committed[path[(i+1)%n]], path[i])
	}

	return nil
}

// AppendPath walks the effective cycle from node 1 and appends the visiting
// order to dst.
func (l *UndoableList) AppendPath(dst []int) ([]int, error) {
	return l.walk.run(dst, l.N(), 1, l.Neighbor(1, 0), l.Other)
}

// CopyFrom overwrites l with the committed content of src and clears the
// tentative layer of l.
func (l *UndoableList) CopyFrom(src *UndoableList) {
	l.Rollback()
	copy(l.committed, src.committed)
}

func (l *UndoableList) touch(v int) {
	if !l.tx[v].dirty {
		l.tx[v].dirty = true
		l.touched = append(l.touched, v)
	}
}

func (l *UndoableList) push(a, b int) {
	l.touch(a)
	t := &l.tx[a]
	t.pending[t.npending] = b
	t.npending++
}

// liveSlot returns the committed, non-deleted slot of v holding u, or -1.
func (l *UndoableList) liveSlot(v, u int) int {
	for s := 0; s < 2; s++ {
		if l.committed[v][s] == u && !l.tx[v].deleted[s] {
			return s
		}
	}

	return -1
}

// deadSlot returns the committed, deleted slot of v holding u, or -1.
func (l *UndoableList) deadSlot(v, u int) int {
	for s := 0; s < 2; s++ {
		if l.committed[v][s] == u && l.tx[v].deleted[s] {
			return s
		}
	}

	return -1
}
