package modify

import "github.com/katalvlaran/noisegraph/modular"

// Clamp folds its source's value into [LowerBound, UpperBound]. It is
// the explicit, caller-chosen answer to the generators' unclamped
// output: nothing upstream clamps silently.
type Clamp struct {
	modular.SourceBase

	lowerBound float64
	upperBound float64
}

// NewClamp returns a Clamp over the default band [-1, 1] with its slot
// unset.
func NewClamp() *Clamp {
	return &Clamp{
		SourceBase: modular.NewSourceBase(1),
		lowerBound: DefaultLowerBound,
		upperBound: DefaultUpperBound,
	}
}

// Bounds reports the current clamp band.
func (c *Clamp) Bounds() (lower, upper float64) {
	return c.lowerBound, c.upperBound
}

// SetBounds replaces the clamp band. Returns ErrInvalidBounds when
// lower > upper; the stored band is unchanged on error.
func (c *Clamp) SetBounds(lower, upper float64) error {
	if lower > upper {
		return ErrInvalidBounds
	}
	c.lowerBound = lower
	c.upperBound = upper

	return nil
}

// Evaluate returns the source value folded into the band at (x, y, z).
func (c *Clamp) Evaluate(x, y, z float64) (float64, error) {
	v, err := c.EvalSource(0, x, y, z)
	if err != nil {
		return 0, err
	}
	if v < c.lowerBound {
		return c.lowerBound, nil
	}
	if v > c.upperBound {
		return c.upperBound, nil
	}

	return v, nil
}
