package localsearch

import (
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
	"github.com/optimizationBenchmarking/tspSuite-sub014/tour"
)

// Solution is a tour representation the framework can drive.
type Solution[P any] interface {
	// LoadPath replaces the content with the tour described by path.
	LoadPath(path []int) error
	// AppendPath appends the visiting order of the tour to dst.
	AppendPath(dst []int) ([]int, error)
	// CopyFrom overwrites the receiver with src.
	CopyFrom(src P)
}

var (
	_ Solution[*Path]               = (*Path)(nil)
	_ Solution[*tour.SatelliteList] = (*tour.SatelliteList)(nil)
	_ Solution[*tour.UndoableList]  = (*tour.UndoableList)(nil)
)

// Producer identifies what created an Individual.
type Producer interface {
	Name() string
}

// Individual is a solution together with its bookkeeping.
type Individual[P Solution[P]] struct {
	Solution P
	// Length is the tour length of Solution (objective.NoTour if unknown).
	Length int64
	// Fitness is the value a metaheuristic ranks by; Run sets it to Length.
	Fitness float64
	// Producer is the algorithm that produced Solution, compared by identity.
	Producer Producer
}

// NewIndividual wraps sol with an unknown length.
func NewIndividual[P Solution[P]](sol P) *Individual[P] {
	return &Individual[P]{Solution: sol, Length: objective.NoTour}
}

// CopyFrom overwrites ind with src. The solutions must be distinct values.
func (ind *Individual[P]) CopyFrom(src *Individual[P]) {
	ind.Solution.CopyFrom(src.Solution)
	ind.Length = src.Length
	ind.Fitness = src.Fitness
	ind.Producer = src.Producer
}

// Path is the plain permutation representation.
type Path struct {
	nodes []int
}

// NewPath returns the identity tour 1..n.
func NewPath(n int) *Path { return &Path{nodes: tour.Identity(n)} }

// Nodes returns the visiting order. The slice aliases the Path.
func (p *Path) Nodes() []int { return p.nodes }

// LoadPath implements Solution. It fails with tour.ErrMalformedTour unless
// path is a permutation of 1..n, n being the current size of p (any size if
// p is empty).
func (p *Path) LoadPath(path []int) error {
	n := len(p.nodes)
	if n == 0 {
		n = len(path)
	}
	if err := tour.ValidatePath(path, n); err != nil {
		return err
	}
	p.nodes = append(p.nodes[:0], path...)

	return nil
}

// AppendPath implements Solution.
func (p *Path) AppendPath(dst []int) ([]int, error) {
	return append(dst, p.nodes...), nil
}

// CopyFrom implements Solution.
func (p *Path) CopyFrom(src *Path) {
	p.nodes = append(p.nodes[:0], src.nodes...)
}
