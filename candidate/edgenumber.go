package candidate

import (
	"fmt"
	"math"
)

// DefaultDenseThreshold is the node count below which NewEdgeNumber uses a
// dense store even if a candidate set is supplied.
const DefaultDenseThreshold = 512

// Kind names the numeric type backing an EdgeNumber.
type Kind uint8

// Backing kinds, from narrowest to widest.
const (
	Int8 Kind = iota + 1
	Int16
	Int32
	Int64
	Float32
	Float64
)

var kindNames = [...]string{"invalid", "int8", "int16", "int32", "int64", "float32", "float64"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[0]
}

// float32Exact is the largest magnitude up to which float32 keeps integral
// values exact.
const float32Exact = 1 << 24

// KindFor returns the narrowest kind holding every value in [lo, hi].
// Integral kinds are preferred unless floats are required.
func KindFor(lo, hi float64, floats bool) Kind {
	if floats {
		if math.Abs(lo) <= float32Exact && math.Abs(hi) <= float32Exact {
			return Float32
		}

		return Float64
	}
	switch {
	case lo >= math.MinInt8 && hi <= math.MaxInt8:
		return Int8
	case lo >= math.MinInt16 && hi <= math.MaxInt16:
		return Int16
	case lo >= math.MinInt32 && hi <= math.MaxInt32:
		return Int32
	default:
		return Int64
	}
}

// EdgeNumberConfig describes the values an EdgeNumber must hold.
type EdgeNumberConfig struct {
	// N is the number of nodes.
	N int
	// Symmetric stores (a,b) and (b,a) as the same value.
	Symmetric bool
	// Min and Max bound the values that will ever be stored.
	Min, Max float64
	// RequiresFloats selects a floating-point kind.
	RequiresFloats bool
	// DenseThreshold overrides DefaultDenseThreshold when positive.
	DenseThreshold int
}

// EdgeNumber is a number attached to each (candidate) edge.
//
// Node ids are 1..N. Writes to edges the store does not cover are no-ops;
// reads of such edges return 0. Values are converted to the backing Kind
// (integral kinds truncate).
type EdgeNumber interface {
	Get(a, b int) float64
	GetInt(a, b int) int64
	Set(a, b int, v float64)
	Add(a, b int, v float64)
	Inc(a, b int)
	Dec(a, b int)
	// Clear resets every stored value to zero.
	Clear()
	Kind() Kind
	Symmetric() bool
	// Dense reports whether every edge is covered (O(n²) storage).
	Dense() bool
}

// NewEdgeNumber allocates the store described by cfg. A dense store is used
// when set is nil or cfg.N is below the dense threshold; otherwise values are
// kept only for the candidate edges of set. old, if non-nil, donates its
// storage when kind and layout match.
//
// Errors: ErrInvalidConfig for N < 2, Min > Max, NaN bounds or a set over a
// different node count.
func NewEdgeNumber(cfg EdgeNumberConfig, set Set, old EdgeNumber) (EdgeNumber, error) {
	if cfg.N < 2 || math.IsNaN(cfg.Min) || math.IsNaN(cfg.Max) || cfg.Min > cfg.Max {
		return nil, fmt.Errorf("%w: n=%d range=[%g,%g]", ErrInvalidConfig, cfg.N, cfg.Min, cfg.Max)
	}
	if set != nil && set.N() != cfg.N {
		return nil, fmt.Errorf("%w: candidate set over %d nodes, want %d", ErrInvalidConfig, set.N(), cfg.N)
	}

	threshold := cfg.DenseThreshold
	if threshold <= 0 {
		threshold = DefaultDenseThreshold
	}
	if cfg.N < threshold {
		set = nil
	}

	kind := KindFor(cfg.Min, cfg.Max, cfg.RequiresFloats)
	switch kind {
	case Int8:
		return newStore[int8](kind, cfg, set, old), nil
	case Int16:
		return newStore[int16](kind, cfg, set, old), nil
	case Int32:
		return newStore[int32](kind, cfg, set, old), nil
	case Int64:
		return newStore[int64](kind, cfg, set, old), nil
	case Float32:
		return newStore[float32](kind, cfg, set, old), nil
	default:
		return newStore[float64](kind, cfg, set, old), nil
	}
}
