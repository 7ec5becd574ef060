package combine

import "github.com/katalvlaran/noisegraph/modular"

// Multiply forwards the pointwise product of its two sources — the
// usual way to mask one field by another.
type Multiply struct {
	modular.SourceBase
}

// NewMultiply returns a Multiply with both slots unset.
func NewMultiply() *Multiply {
	return &Multiply{SourceBase: modular.NewSourceBase(2)}
}

// Evaluate returns source0 · source1 at (x, y, z).
func (m *Multiply) Evaluate(x, y, z float64) (float64, error) {
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

	return v0 * v1, nil
}
