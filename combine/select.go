package combine

import (
	"github.com/katalvlaran/noisegraph/coherent"
	"github.com/katalvlaran/noisegraph/modular"
)

// Select switches between its two branch sources based on the control
// source: where the control value lies inside [LowerBound, UpperBound]
// the node forwards branch B (slot 1), elsewhere branch A (slot 0).
//
// A positive EdgeFalloff feathers the switch: within EdgeFalloff of
// either bound the branches are blended by the cubic S-curve instead of
// switched. The falloff is silently narrowed to half the band width
// when the band is too small to hold it.
//
// With zero falloff Select evaluates the control and only the branch it
// selects — the contract permits this per-node choice — but it still
// verifies all three slots are wired before evaluating anything.
type Select struct {
	modular.SourceBase

	// EdgeFalloff is the width of the blended band at each bound.
	EdgeFalloff float64

	lowerBound float64
	upperBound float64
}

// NewSelect returns a Select over the default band [-1, 1] with no
// falloff and all three slots unset.
func NewSelect() *Select {
	return &Select{
		SourceBase:  modular.NewSourceBase(3),
		EdgeFalloff: DefaultEdgeFalloff,
		lowerBound:  DefaultLowerBound,
		upperBound:  DefaultUpperBound,
	}
}

// Bounds reports the current selection band.
func (s *Select) Bounds() (lower, upper float64) {
	return s.lowerBound, s.upperBound
}

// SetBounds replaces the selection band. Returns ErrInvalidBounds when
// lower > upper; the stored band is unchanged on error.
func (s *Select) SetBounds(lower, upper float64) error {
	if lower > upper {
		return ErrInvalidBounds
	}
	s.lowerBound = lower
	s.upperBound = upper

	return nil
}

// Evaluate selects between the branches at (x, y, z).
func (s *Select) Evaluate(x, y, z float64) (float64, error) {
	if err := s.EnsureSources(); err != nil {
		return 0, err
	}

	ctrl, err := s.EvalSource(SlotControl, x, y, z)
	if err != nil {
		return 0, err
	}

	// Falloff cannot exceed half the band, or the blend regions overlap.
	falloff := s.EdgeFalloff
	if half := (s.upperBound - s.lowerBound) / 2.0; falloff > half {
		falloff = half
	}

	if falloff > 0.0 {
		return s.feathered(ctrl, falloff, x, y, z)
	}

	if ctrl < s.lowerBound || ctrl > s.upperBound {
		return s.EvalSource(SlotBranchA, x, y, z)
	}

	return s.EvalSource(SlotBranchB, x, y, z)
}

// feathered evaluates the five control regions of a falloff selection:
// below the band, rising edge, inside, falling edge, above.
func (s *Select) feathered(ctrl, falloff, x, y, z float64) (float64, error) {
	switch {
	case ctrl < s.lowerBound-falloff:
		return s.EvalSource(SlotBranchA, x, y, z)

	case ctrl < s.lowerBound+falloff:
		alpha := coherent.SCurve3((ctrl - (s.lowerBound - falloff)) / (2.0 * falloff))
		return s.blendBranches(SlotBranchA, SlotBranchB, alpha, x, y, z)

	case ctrl < s.upperBound-falloff:
		return s.EvalSource(SlotBranchB, x, y, z)

	case ctrl < s.upperBound+falloff:
		alpha := coherent.SCurve3((ctrl - (s.upperBound - falloff)) / (2.0 * falloff))
		return s.blendBranches(SlotBranchB, SlotBranchA, alpha, x, y, z)

	default:
		return s.EvalSource(SlotBranchA, x, y, z)
	}
}

// blendBranches lerps from slot i to slot j by alpha.
func (s *Select) blendBranches(i, j int, alpha, x, y, z float64) (float64, error) {
	vi, err := s.EvalSource(i, x, y, z)
	if err != nil {
		return 0, err
	}
	vj, err := s.EvalSource(j, x, y, z)
	if err != nil {
		return 0, err
	}

	return coherent.Lerp(vi, vj, alpha), nil
}
