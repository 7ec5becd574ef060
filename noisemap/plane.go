package noisemap

import (
	"github.com/dgravesa/go-parallel/parallel"

	"github.com/katalvlaran/noisegraph/modular"
)

// Plane samples m over the configured (x,z) extent at y = opts.Y and
// returns the resulting grid.
//
// Sampling is deterministic: the value of each cell depends only on its
// own coordinate, so the sequential and parallel paths produce
// identical grids. Parallel evaluation is safe because module
// evaluation never mutates the graph; callers must still not rewire or
// reconfigure the graph while Plane runs.
//
// Errors:
//   - ErrEmptyExtent / ErrInvalidExtent — malformed options.
//   - modular.ErrNilModule — m is nil.
//   - any evaluation error from the graph (e.g. modular.ErrUnsetSource);
//     the first failing row wins and the grid is discarded.
//
// Complexity: O(Width·Height) evaluations of m.
func Plane(m modular.Module, opts Options) (*Grid, error) {
	if m == nil {
		return nil, modular.ErrNilModule
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	grid := &Grid{
		Width:  opts.Width,
		Height: opts.Height,
		Values: make([]float64, opts.Width*opts.Height),
	}
	xStep := (opts.UpperX - opts.LowerX) / float64(opts.Width)
	zStep := (opts.UpperZ - opts.LowerZ) / float64(opts.Height)

	fillRow := func(iz int) error {
		z := opts.LowerZ + float64(iz)*zStep
		row := grid.Values[iz*opts.Width : (iz+1)*opts.Width]
		for ix := range row {
			x := opts.LowerX + float64(ix)*xStep
			v, err := m.Evaluate(x, opts.Y, z)
			if err != nil {
				return err
			}
			row[ix] = v
		}

		return nil
	}

	if !opts.Parallel {
		for iz := 0; iz < opts.Height; iz++ {
			if err := fillRow(iz); err != nil {
				return nil, err
			}
		}

		return grid, nil
	}

	// Rows are independent; collect per-row errors and report the first
	// in row order so the parallel path fails deterministically too.
	rowErrs := make([]error, opts.Height)
	parallel.For(opts.Height, func(iz, _ int) {
		rowErrs[iz] = fillRow(iz)
	})
	for _, err := range rowErrs {
		if err != nil {
			return nil, err
		}
	}

	return grid, nil
}
