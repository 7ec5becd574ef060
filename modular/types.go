// Package modular declares the Module interface, the Vec3 coordinate
// convenience type, and the sentinel errors shared by every node
// package in github.com/katalvlaran/noisegraph.
package modular

import "errors"

// Sentinel errors for graph assembly and evaluation.
var (
	// ErrUnsetSource indicates evaluation reached a required source slot
	// that was never assigned. This is an assembly mistake, not a
	// recoverable runtime condition.
	ErrUnsetSource = errors.New("modular: required source slot is unset")

	// ErrSourceIndex indicates a slot access outside [0, SourceCount()).
	ErrSourceIndex = errors.New("modular: source slot index out of range")

	// ErrNilModule indicates a nil Module where a concrete node is required.
	ErrNilModule = errors.New("modular: module must not be nil")
)

// Module is one evaluable node in a noise composition graph.
//
// SourceCount is invariant for the lifetime of an instance and is
// queryable before any source is wired. Evaluate is a pure function of
// the coordinate and the node's configuration; it recursively evaluates
// whichever wired sources the node's algorithm requires.
type Module interface {
	// SourceCount reports the fixed number of required source slots.
	SourceCount() int

	// Source returns the occupant of slot i, ErrUnsetSource if the slot
	// was never assigned, or ErrSourceIndex if i is out of range.
	Source(i int) (Module, error)

	// SetSource rewires slot i to src, replacing any prior occupant.
	// Returns ErrSourceIndex if i is out of range, ErrNilModule if src
	// is nil.
	SetSource(i int, src Module) error

	// Evaluate returns the node's value at (x, y, z).
	Evaluate(x, y, z float64) (float64, error)
}

// Vec3 is a 3-component coordinate.
type Vec3 struct {
	X, Y, Z float64
}

// EvaluateVec3 evaluates m at p. It is a convenience alias for
// m.Evaluate(p.X, p.Y, p.Z) with identical semantics.
func EvaluateVec3(m Module, p Vec3) (float64, error) {
	if m == nil {
		return 0, ErrNilModule
	}

	return m.Evaluate(p.X, p.Y, p.Z)
}
