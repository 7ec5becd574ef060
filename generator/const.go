package generator

import "github.com/katalvlaran/noisegraph/modular"

// Const emits a fixed value at every coordinate. It is the unit of the
// combiner family: handy as a floor, a ceiling or a control level.
type Const struct {
	modular.SourceBase

	// Value is returned verbatim from every evaluation.
	Value float64
}

// NewConst returns a Const emitting value.
func NewConst(value float64) *Const {
	return &Const{SourceBase: modular.NewSourceBase(0), Value: value}
}

// Evaluate returns Value, ignoring the coordinate.
func (c *Const) Evaluate(_, _, _ float64) (float64, error) {
	return c.Value, nil
}
