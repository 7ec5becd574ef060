package combine_test

import (
	"testing"

	"github.com/katalvlaran/noisegraph/combine"
	"github.com/katalvlaran/noisegraph/generator"
	"github.com/katalvlaran/noisegraph/modular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wireSelector assembles a three-source node: branch A, branch B and a
// constant control level.
func wireSelector(t *testing.T, n modular.Module, a, b, ctrl float64) {
	t.Helper()
	require.NoError(t, n.SetSource(combine.SlotBranchA, generator.NewConst(a)))
	require.NoError(t, n.SetSource(combine.SlotBranchB, generator.NewConst(b)))
	require.NoError(t, n.SetSource(combine.SlotControl, generator.NewConst(ctrl)))
}

// TestBlend_Endpoints verifies a control of −1 selects branch A
// exactly, +1 selects branch B exactly, and 0 mixes them evenly.
func TestBlend_Endpoints(t *testing.T) {
	for _, tc := range []struct {
		name string
		ctrl float64
		want float64
	}{
		{"control -1 is branch A", -1, 2.0},
		{"control +1 is branch B", 1, 8.0},
		{"control 0 is the midpoint", 0, 5.0},
	} {
		b := combine.NewBlend()
		wireSelector(t, b, 2.0, 8.0, tc.ctrl)

		v, err := b.Evaluate(0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, tc.want, v, tc.name)
	}
}

// TestBlend_UnsetControl verifies the control slot participates in the
// unset-source check.
func TestBlend_UnsetControl(t *testing.T) {
	b := combine.NewBlend()
	require.NoError(t, b.SetSource(combine.SlotBranchA, generator.NewConst(0)))
	require.NoError(t, b.SetSource(combine.SlotBranchB, generator.NewConst(1)))

	_, err := b.Evaluate(0, 0, 0)
	assert.ErrorIs(t, err, modular.ErrUnsetSource)
}

// TestSelect_HardSwitch verifies zero-falloff selection: branch B
// inside the band (bounds inclusive), branch A outside.
func TestSelect_HardSwitch(t *testing.T) {
	for _, tc := range []struct {
		name string
		ctrl float64
		want float64
	}{
		{"below band", -2.0, 10.0},
		{"at lower bound", -1.0, 20.0},
		{"inside band", 0.0, 20.0},
		{"at upper bound", 1.0, 20.0},
		{"above band", 1.5, 10.0},
	} {
		s := combine.NewSelect()
		wireSelector(t, s, 10.0, 20.0, tc.ctrl)

		v, err := s.Evaluate(0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, tc.want, v, tc.name)
	}
}

// TestSelect_EdgeFalloff verifies feathering: far from the band the
// branches are pure, at a bound the mix is exactly even, and inside the
// feathered band the value lies strictly between the branches.
func TestSelect_EdgeFalloff(t *testing.T) {
	build := func(ctrl float64) *combine.Select {
		s := combine.NewSelect()
		s.EdgeFalloff = 0.25
		require.NoError(t, s.SetBounds(-1, 1))
		wireSelector(t, s, 0.0, 100.0, ctrl)
		return s
	}

	v, err := build(-2.0).Evaluate(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "far below the band stays pure branch A")

	v, err = build(0.0).Evaluate(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, v, "deep inside the band stays pure branch B")

	v, err = build(-1.0).Evaluate(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 50.0, v, "at the bound the S-curve midpoint mixes evenly")

	v, err = build(-0.9).Evaluate(0, 0, 0)
	require.NoError(t, err)
	assert.Greater(t, v, 50.0, "rising edge leans toward branch B")
	assert.Less(t, v, 100.0, "rising edge is not yet pure branch B")
}

// TestSelect_SetBounds verifies bound validation and that a rejected
// update leaves the stored band untouched.
func TestSelect_SetBounds(t *testing.T) {
	s := combine.NewSelect()

	require.NoError(t, s.SetBounds(-0.5, 0.5))
	lower, upper := s.Bounds()
	assert.Equal(t, -0.5, lower)
	assert.Equal(t, 0.5, upper)

	assert.ErrorIs(t, s.SetBounds(1, -1), combine.ErrInvalidBounds)
	lower, upper = s.Bounds()
	assert.Equal(t, -0.5, lower, "rejected update must not change bounds")
	assert.Equal(t, 0.5, upper, "rejected update must not change bounds")
}

// TestSelect_UnsetSlotsFailBeforeControl verifies Select checks every
// slot before evaluating anything, even branches it would skip.
func TestSelect_UnsetSlotsFailBeforeControl(t *testing.T) {
	s := combine.NewSelect()
	require.NoError(t, s.SetSource(combine.SlotBranchB, generator.NewConst(1)))
	require.NoError(t, s.SetSource(combine.SlotControl, generator.NewConst(0)))

	// Control 0 selects branch B; the unset branch A must still fail.
	_, err := s.Evaluate(0, 0, 0)
	assert.ErrorIs(t, err, modular.ErrUnsetSource)
}
