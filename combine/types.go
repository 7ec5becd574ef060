// Package combine defines sentinel errors and shared defaults for the
// combine subpackage of github.com/katalvlaran/noisegraph.
package combine

import "errors"

// ErrInvalidBounds indicates SetBounds was called with lower > upper.
var ErrInvalidBounds = errors.New("combine: lower bound must not exceed upper bound")

// Default selection band for Select.
const (
	// DefaultLowerBound is the initial lower edge of the selection band.
	DefaultLowerBound = -1.0
	// DefaultUpperBound is the initial upper edge of the selection band.
	DefaultUpperBound = 1.0
	// DefaultEdgeFalloff disables feathering: selection is a hard switch.
	DefaultEdgeFalloff = 0.0
)
