package modify

import (
	"math"

	"github.com/katalvlaran/noisegraph/modular"
)

// Abs forwards the absolute value of its source.
type Abs struct {
	modular.SourceBase
}

// NewAbs returns an Abs with its slot unset.
func NewAbs() *Abs {
	return &Abs{SourceBase: modular.NewSourceBase(1)}
}

// Evaluate returns |source| at (x, y, z).
func (a *Abs) Evaluate(x, y, z float64) (float64, error) {
	v, err := a.EvalSource(0, x, y, z)
	if err != nil {
		return 0, err
	}

	return math.Abs(v), nil
}

// Invert forwards the negation of its source.
type Invert struct {
	modular.SourceBase
}

// NewInvert returns an Invert with its slot unset.
func NewInvert() *Invert {
	return &Invert{SourceBase: modular.NewSourceBase(1)}
}

// Evaluate returns −source at (x, y, z).
func (n *Invert) Evaluate(x, y, z float64) (float64, error) {
	v, err := n.EvalSource(0, x, y, z)
	if err != nil {
		return 0, err
	}

	return -v, nil
}

// ScaleBias forwards source·Scale + Bias — the workhorse for
// renormalizing combined fields.
type ScaleBias struct {
	modular.SourceBase

	// Scale multiplies the source value.
	Scale float64
	// Bias is added after scaling.
	Bias float64
}

// NewScaleBias returns a ScaleBias with the identity configuration and
// its slot unset.
func NewScaleBias() *ScaleBias {
	return &ScaleBias{
		SourceBase: modular.NewSourceBase(1),
		Scale:      DefaultScale,
		Bias:       DefaultBias,
	}
}

// Evaluate returns source·Scale + Bias at (x, y, z).
func (s *ScaleBias) Evaluate(x, y, z float64) (float64, error) {
	v, err := s.EvalSource(0, x, y, z)
	if err != nil {
		return 0, err
	}

	return v*s.Scale + s.Bias, nil
}

// Exponent remaps the source through a power curve: the value is
// rescaled from [-1,1] to [0,1], raised to Exp, and mapped back.
// Exponents above 1 deepen valleys; below 1 they flatten peaks.
type Exponent struct {
	modular.SourceBase

	// Exp is the power applied to the rescaled value.
	Exp float64
}

// NewExponent returns an Exponent with the identity curve and its slot
// unset.
func NewExponent() *Exponent {
	return &Exponent{SourceBase: modular.NewSourceBase(1), Exp: DefaultExponent}
}

// Evaluate returns the power-curved source value at (x, y, z).
func (e *Exponent) Evaluate(x, y, z float64) (float64, error) {
	v, err := e.EvalSource(0, x, y, z)
	if err != nil {
		return 0, err
	}

	return math.Pow(math.Abs((v+1.0)/2.0), e.Exp)*2.0 - 1.0, nil
}
