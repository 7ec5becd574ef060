package combine

import (
	"math"

	"github.com/katalvlaran/noisegraph/modular"
)

// Max forwards the pointwise maximum of its two sources.
type Max struct {
	modular.SourceBase
}

// NewMax returns a Max with both slots unset.
func NewMax() *Max {
	return &Max{SourceBase: modular.NewSourceBase(2)}
}

// Evaluate returns max(source0, source1) at (x, y, z).
func (m *Max) Evaluate(x, y, z float64) (float64, error) {
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

	return math.Max(v0, v1), nil
}
