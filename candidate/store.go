package candidate

// number is the set of backing types an EdgeNumber can be specialized to.
type number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

func newStore[T number](kind Kind, cfg EdgeNumberConfig, set Set, old EdgeNumber) EdgeNumber {
	if set == nil {
		size := cfg.N * cfg.N
		if cfg.Symmetric {
			size = cfg.N * (cfg.N - 1) / 2
		}
		var data []T
		if o, ok := old.(*denseStore[T]); ok && cap(o.data) >= size {
			data = o.data[:size]
			clear(data)
		} else {
			data = make([]T, size)
		}

		return &denseStore[T]{n: cfg.N, sym: cfg.Symmetric, kind: kind, data: data}
	}

	m := set.M()
	size := cfg.N * m
	var data []T
	if o, ok := old.(*sparseStore[T]); ok && cap(o.data) >= size {
		data = o.data[:size]
		clear(data)
	} else {
		data = make([]T, size)
	}

	return &sparseStore[T]{set: set, m: m, sym: cfg.Symmetric, kind: kind, data: data}
}

// denseStore covers every edge. Symmetric stores keep the strict lower
// triangle only; the diagonal is never stored.
type denseStore[T number] struct {
	n    int
	sym  bool
	kind Kind
	data []T
}

func (s *denseStore[T]) index(a, b int) int {
	if a == b || a < 1 || b < 1 || a > s.n || b > s.n {
		return -1
	}
	if !s.sym {
		return (a-1)*s.n + (b - 1)
	}
	if a < b {
		a, b = b, a
	}
	i, j := a-1, b-1

	return i*(i-1)/2 + j
}

func (s *denseStore[T]) Get(a, b int) float64 {
	if i := s.index(a, b); i >= 0 {
		return float64(s.data[i])
	}

	return 0
}

func (s *denseStore[T]) GetInt(a, b int) int64 {
	if i := s.index(a, b); i >= 0 {
		return int64(s.data[i])
	}

	return 0
}

func (s *denseStore[T]) Set(a, b int, v float64) {
	if i := s.index(a, b); i >= 0 {
		s.data[i] = T(v)
	}
}

func (s *denseStore[T]) Add(a, b int, v float64) {
	if i := s.index(a, b); i >= 0 {
		s.data[i] += T(v)
	}
}

func (s *denseStore[T]) Inc(a, b int) { s.Add(a, b, 1) }

func (s *denseStore[T]) Dec(a, b int) { s.Add(a, b, -1) }

func (s *denseStore[T]) Clear() { clear(s.data) }

func (s *denseStore[T]) Kind() Kind { return s.kind }

func (s *denseStore[T]) Symmetric() bool { return s.sym }

func (s *denseStore[T]) Dense() bool { return true }

// sparseStore keeps one value per candidate slot: slot (a, p) lives at
// data[(a-1)·m + p-1] where p is the pseudo-id of b in a's list.
// Symmetric stores write both (a,b) and (b,a) when present and read
// whichever exists, so both copies never disagree.
type sparseStore[T number] struct {
	set  Set
	m    int
	sym  bool
	kind Kind
	data []T
}

func (s *sparseStore[T]) slot(a, b int) int {
	if a < 1 || a > s.set.N() {
		return -1
	}
	p := s.set.PseudoID(a, b)
	if p == NotCandidate {
		return -1
	}

	return (a-1)*s.m + p - 1
}

// slots returns the forward slot and, for symmetric stores, the mirrored one.
func (s *sparseStore[T]) slots(a, b int) (int, int) {
	i := s.slot(a, b)
	if !s.sym {
		return i, -1
	}

	return i, s.slot(b, a)
}

func (s *sparseStore[T]) read(a, b int) (T, bool) {
	i, j := s.slots(a, b)
	switch {
	case i >= 0:
		return s.data[i], true
	case j >= 0:
		return s.data[j], true
	default:
		var zero T
		return zero, false
	}
}

func (s *sparseStore[T]) Get(a, b int) float64 {
	v, _ := s.read(a, b)
	return float64(v)
}

func (s *sparseStore[T]) GetInt(a, b int) int64 {
	v, _ := s.read(a, b)
	return int64(v)
}

func (s *sparseStore[T]) Set(a, b int, v float64) {
	i, j := s.slots(a, b)
	if i >= 0 {
		s.data[i] = T(v)
	}
	if j >= 0 {
		s.data[j] = T(v)
	}
}

func (s *sparseStore[T]) Add(a, b int, v float64) {
	i, j := s.slots(a, b)
	if i >= 0 {
		s.data[i] += T(v)
	}
	if j >= 0 {
		s.data[j] += T(v)
	}
}

func (s *sparseStore[T]) Inc(a, b int) { s.Add(a, b, 1) }

func (s *sparseStore[T]) Dec(a, b int) { s.Add(a, b, -1) }

func (s *sparseStore[T]) Clear() { clear(s.data) }

func (s *sparseStore[T]) Kind() Kind { return s.kind }

func (s *sparseStore[T]) Symmetric() bool { return s.sym }

func (s *sparseStore[T]) Dense() bool { return false }
