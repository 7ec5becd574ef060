// Package noisemap defines the Grid type, sampling options, and
// sentinel errors for the noisemap subpackage of
// github.com/katalvlaran/noisegraph.
package noisemap

import "errors"

// Sentinel errors for plane sampling.
var (
	// ErrEmptyExtent indicates a non-positive grid dimension.
	ErrEmptyExtent = errors.New("noisemap: grid must have at least one column and one row")
	// ErrInvalidExtent indicates a lower coordinate bound at or above its
	// upper bound.
	ErrInvalidExtent = errors.New("noisemap: lower extent must be below upper extent")
	// ErrCellIndex indicates a grid access outside [0,Width)×[0,Height).
	ErrCellIndex = errors.New("noisemap: cell index out of range")
)

// Grid holds sampled values in row-major order: the cell at column ix,
// row iz lives at Values[iz*Width+ix]. It is plain data — hosts may
// index Values directly once dimensions are known.
type Grid struct {
	Width, Height int
	Values        []float64
}

// At returns the value at column ix, row iz, or ErrCellIndex when the
// cell lies outside the grid.
func (g *Grid) At(ix, iz int) (float64, error) {
	if ix < 0 || ix >= g.Width || iz < 0 || iz >= g.Height {
		return 0, ErrCellIndex
	}

	return g.Values[iz*g.Width+ix], nil
}

// Options contains tunable parameters for plane sampling.
type Options struct {
	// Width and Height are the grid dimensions in cells.
	Width, Height int
	// LowerX/UpperX and LowerZ/UpperZ bound the sampled extent.
	LowerX, UpperX float64
	LowerZ, UpperZ float64
	// Y is the constant height of the sampling plane.
	Y float64
	// Parallel spreads row evaluation across goroutines. Output is
	// identical either way; this is purely a throughput knob.
	Parallel bool
}

// DefaultOptions returns a 64×64 grid over the extent [-1,1]×[-1,1] at
// y=0, sampled sequentially.
func DefaultOptions() Options {
	return Options{
		Width:  64,
		Height: 64,
		LowerX: -1, UpperX: 1,
		LowerZ: -1, UpperZ: 1,
	}
}

// validate reports the first configuration fault, or nil.
func (o Options) validate() error {
	if o.Width < 1 || o.Height < 1 {
		return ErrEmptyExtent
	}
	if o.LowerX >= o.UpperX || o.LowerZ >= o.UpperZ {
		return ErrInvalidExtent
	}

	return nil
}
