package combine

import (
	"github.com/katalvlaran/noisegraph/coherent"
	"github.com/katalvlaran/noisegraph/modular"
)

// Slot roles for the three-source selector nodes.
const (
	// SlotBranchA is the branch chosen where the control is low.
	SlotBranchA = 0
	// SlotBranchB is the branch chosen where the control is high.
	SlotBranchB = 1
	// SlotControl drives the selection.
	SlotControl = 2
)

// Blend linearly interpolates its two branch sources by the control
// source: a control of −1 yields branch A exactly, +1 yields branch B
// exactly, and values between mix proportionally. All three sources are
// always evaluated.
type Blend struct {
	modular.SourceBase
}

// NewBlend returns a Blend with all three slots unset.
func NewBlend() *Blend {
	return &Blend{SourceBase: modular.NewSourceBase(3)}
}

// Evaluate returns lerp(branchA, branchB, (control+1)/2) at (x, y, z).
func (b *Blend) Evaluate(x, y, z float64) (float64, error) {
	if err := b.EnsureSources(); err != nil {
		return 0, err
	}

	v0, err := b.EvalSource(SlotBranchA, x, y, z)
	if err != nil {
		return 0, err
	}
	v1, err := b.EvalSource(SlotBranchB, x, y, z)
	if err != nil {
		return 0, err
	}
	ctrl, err := b.EvalSource(SlotControl, x, y, z)
	if err != nil {
		return 0, err
	}

	return coherent.Lerp(v0, v1, (ctrl+1.0)/2.0), nil
}
