package combine

import "github.com/katalvlaran/noisegraph/modular"

// Add forwards the pointwise sum of its two sources. Sums of two
// nominal [-1,1] fields span [-2,2]; follow with a modify.ScaleBias to
// renormalize when needed.
type Add struct {
	modular.SourceBase
}

// NewAdd returns an Add with both slots unset.
func NewAdd() *Add {
	return &Add{SourceBase: modular.NewSourceBase(2)}
}

// Evaluate returns source0 + source1 at (x, y, z).
func (a *Add) Evaluate(x, y, z float64) (float64, error) {
	if err := a.EnsureSources(); err != nil {
		return 0, err
	}

	v0, err := a.EvalSource(0, x, y, z)
	if err != nil {
		return 0, err
	}
	v1, err := a.EvalSource(1, x, y, z)
	if err != nil {
		return 0, err
	}

	return v0 + v1, nil
}
