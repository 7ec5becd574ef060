package transform

import "github.com/katalvlaran/noisegraph/modular"

// Translate shifts the evaluation coordinate by Offset before
// delegating: the source's features slide without distortion.
type Translate struct {
	modular.SourceBase

	// Offset is added to every evaluation coordinate.
	Offset modular.Vec3
}

// NewTranslate returns a Translate with a zero offset and its slot
// unset.
func NewTranslate() *Translate {
	return &Translate{SourceBase: modular.NewSourceBase(1)}
}

// Evaluate returns source(x+Offset.X, y+Offset.Y, z+Offset.Z).
func (t *Translate) Evaluate(x, y, z float64) (float64, error) {
	return t.EvalSource(0, x+t.Offset.X, y+t.Offset.Y, z+t.Offset.Z)
}
