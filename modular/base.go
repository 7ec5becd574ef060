package modular

// SourceBase implements the source-slot plumbing of the Module contract.
// Concrete nodes embed it and supply only Evaluate.
//
// The slot slice is sized exactly once, at construction, to the node's
// required arity; its length never changes afterwards. Individual slots
// start unset and may be rewired at any time between evaluations.
//
// SourceBase performs no locking: per the package concurrency model,
// rewiring must be serialized against evaluation by the caller.
type SourceBase struct {
	sources []Module
}

// NewSourceBase allocates a slot sequence for a node requiring n
// sources. Negative n is treated as zero.
func NewSourceBase(n int) SourceBase {
	if n < 0 {
		n = 0
	}

	return SourceBase{sources: make([]Module, n)}
}

// SourceCount reports the fixed number of required source slots. O(1).
func (b *SourceBase) SourceCount() int {
	return len(b.sources)
}

// Source returns the occupant of slot i.
//
// Errors:
//   - ErrSourceIndex — i is outside [0, SourceCount()).
//   - ErrUnsetSource — slot i was never assigned.
func (b *SourceBase) Source(i int) (Module, error) {
	if i < 0 || i >= len(b.sources) {
		return nil, ErrSourceIndex
	}
	if b.sources[i] == nil {
		return nil, ErrUnsetSource
	}

	return b.sources[i], nil
}

// SetSource rewires slot i to src, replacing any prior occupant.
//
// Errors:
//   - ErrSourceIndex — i is outside [0, SourceCount()).
//   - ErrNilModule   — src is nil; a slot cannot be un-assigned.
func (b *SourceBase) SetSource(i int, src Module) error {
	if i < 0 || i >= len(b.sources) {
		return ErrSourceIndex
	}
	if src == nil {
		return ErrNilModule
	}
	b.sources[i] = src

	return nil
}

// EnsureSources verifies that every required slot is assigned, so
// combining nodes can fail fast before evaluating any branch.
// Returns ErrUnsetSource on the first unset slot.
func (b *SourceBase) EnsureSources() error {
	for i := range b.sources {
		if b.sources[i] == nil {
			return ErrUnsetSource
		}
	}

	return nil
}

// EvalSource evaluates the occupant of slot i at (x, y, z), failing
// with ErrUnsetSource or ErrSourceIndex exactly as Source does.
func (b *SourceBase) EvalSource(i int, x, y, z float64) (float64, error) {
	src, err := b.Source(i)
	if err != nil {
		return 0, err
	}

	return src.Evaluate(x, y, z)
}
