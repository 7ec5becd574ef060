package combine

import (
	"math"

	"github.com/katalvlaran/noisegraph/modular"
)

// Min forwards the pointwise minimum of its two sources. Both sources
// are always evaluated; evaluation order is unspecified.
type Min struct {
	modular.SourceBase
}

// NewMin returns a Min with both slots unset.
func NewMin() *Min {
	return &Min{SourceBase: modular.NewSourceBase(2)}
}

// Evaluate returns min(source0, source1) at (x, y, z). Fails with
// modular.ErrUnsetSource before evaluating anything if either slot is
// unset.
func (m *Min) Evaluate(x, y, z float64) (float64, error) {
	if err := m.EnsureSources(); err != nil {
		return 0, err
	}

	v0, err := m.EvalSource(0, x, y, z)
	if err != nil {
		return 0, err
	}
	v1, err := m.EvalSource(1, x, y, z)
	if err != nil {
		return 0, err
	}

	return math.Min(v0, v1), nil
}
