package heldkarp

// Options controls the subgradient schedule of every search node.
type Options struct {
	// Lambda is the initial step multiplier (> 0).
	Lambda float64
	// Decay ∈ (0, 1) scales Lambda down whenever a step fails to raise the
	// rounded bound.
	Decay float64
	// MinLambda ends the relaxation once Lambda falls to or below it.
	MinLambda float64
}

// DefaultOptions returns the classical schedule: lambda = 0.1, decay 0.9,
// stop below 1e-6.
func DefaultOptions() Options {
	return Options{
		Lambda:    0.1,
		Decay:     0.9,
		MinLambda: 1e-6,
	}
}

// normalized replaces out-of-range fields with their defaults.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Lambda <= 0 {
		o.Lambda = def.Lambda
	}
	if o.Decay <= 0 || o.Decay >= 1 {
		o.Decay = def.Decay
	}
	if o.MinLambda <= 0 || o.MinLambda >= o.Lambda {
		o.MinLambda = min(def.MinLambda, o.Lambda/2)
	}

	return o
}
