package localsearch

import (
	"github.com/optimizationBenchmarking/tspSuite-sub014/candidate"
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
	"github.com/optimizationBenchmarking/tspSuite-sub014/tour"
)

// CandidateTwoOpt is 2-opt restricted to candidate edges, run on a
// transactional tour list: for every tour edge (a,b) and every candidate c
// of a with d(a,c) < d(a,b), it tentatively replaces (a,b),(c,d) by
// (a,c),(b,d) for both neighbors d of c, keeps the move if the result is
// one cycle and undoes it otherwise.
type CandidateTwoOpt struct {
	set  candidate.Set
	path []int
}

var _ Searcher[*tour.UndoableList] = (*CandidateTwoOpt)(nil)

// NewCandidateTwoOpt returns a search over the candidate lists of set.
func NewCandidateTwoOpt(set candidate.Set) *CandidateTwoOpt {
	return &CandidateTwoOpt{set: set}
}

// Search implements Searcher.
//
// Complexity: O(n·m) probes per scan, O(n) per probe (cycle check).
func (s *CandidateTwoOpt) Search(ind *Individual[*tour.UndoableList], obj objective.Objective) error {
	var (
		l        = ind.Solution
		improved = l.N() >= 4
		err      error
	)
	for improved && !obj.ShouldTerminate() {
		if improved, err = s.scan(l, obj); err != nil {
			l.Rollback()
			return err
		}
	}
	if s.path, err = l.AppendPath(s.path[:0]); err != nil {
		return err
	}
	ind.Length = obj.Evaluate(s.path)

	return nil
}

// scan commits every improving move it finds and reports whether there was
// at least one.
func (s *CandidateTwoOpt) scan(l *tour.UndoableList, obj objective.Objective) (bool, error) {
	var (
		n, m     = l.N(), s.set.M()
		a, b     int
		c, d     int
		slot, id int
		side     int
		dab      int64
		delta    int64
		ok       bool
		err      error
		improved bool
	)

nodes:
	for a = 1; a <= n; a++ {
		for slot = 0; slot < 2; slot++ {
			b = l.Neighbor(a, slot)
			dab = obj.Distance(a, b)
			for id = 1; id <= m; id++ {
				c = s.set.Candidate(a, id)
				if obj.Distance(a, c) >= dab || l.IsRelated(a, c) {
					continue
				}
				for side = 0; side < 2; side++ {
					d = l.Neighbor(c, side)
					if d == b || l.IsRelated(b, d) {
						continue
					}
					delta = obj.Distance(a, c) + obj.Distance(b, d) - dab - obj.Distance(c, d)
					if delta >= 0 {
						continue
					}
					if ok, err = s.try(l, a, b, c, d); err != nil {
						return improved, err
					}
					if ok {
						improved = true
						continue nodes
					}
				}
			}
		}
	}

	return improved, nil
}

// try applies the exchange tentatively and commits it if the result is a
// tour; otherwise it undoes the four operations in reverse order.
func (s *CandidateTwoOpt) try(l *tour.UndoableList, a, b, c, d int) (bool, error) {
	if err := l.DoDisconnect(a, b); err != nil {
		return false, err
	}
	if err := l.DoDisconnect(c, d); err != nil {
		return false, err
	}
	if err := l.DoConnect(a, c); err != nil {
		return false, err
	}
	if err := l.DoConnect(b, d); err != nil {
		return false, err
	}
	if l.IsTour() {
		return true, l.Commit()
	}

	if err := l.UndoConnect(b, d); err != nil {
		return false, err
	}
	if err := l.UndoConnect(a, c); err != nil {
		return false, err
	}
	if err := l.UndoDisconnect(c, d); err != nil {
		return false, err
	}

	return false, l.UndoDisconnect(a, b)
}
