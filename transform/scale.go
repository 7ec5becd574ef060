package transform

import "github.com/katalvlaran/noisegraph/modular"

// Scale multiplies the evaluation coordinate componentwise before
// delegating: factors above 1 shrink the source's features, factors
// below 1 stretch them.
type Scale struct {
	modular.SourceBase

	// Factor multiplies every evaluation coordinate, per component.
	Factor modular.Vec3
}

// NewScale returns a Scale with the identity factor (1,1,1) and its
// slot unset.
func NewScale() *Scale {
	return &Scale{
		SourceBase: modular.NewSourceBase(1),
		Factor:     modular.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// Evaluate returns source(x·Factor.X, y·Factor.Y, z·Factor.Z).
func (s *Scale) Evaluate(x, y, z float64) (float64, error) {
	return s.EvalSource(0, x*s.Factor.X, y*s.Factor.Y, z*s.Factor.Z)
}
