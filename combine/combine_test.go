package combine_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/noisegraph/combine"
	"github.com/katalvlaran/noisegraph/generator"
	"github.com/katalvlaran/noisegraph/modular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wire2 assembles a two-source node from constant values.
func wire2(t *testing.T, n modular.Module, v0, v1 float64) {
	t.Helper()
	require.NoError(t, n.SetSource(0, generator.NewConst(v0)))
	require.NoError(t, n.SetSource(1, generator.NewConst(v1)))
}

// valuePairs covers orderings, signs, equality and extremes.
var valuePairs = [][2]float64{
	{0, 0},
	{-1, 1},
	{1, -1},
	{0.25, 0.75},
	{-2.5, -2.5},
	{1e9, -1e9},
}

// TestMin_PointwiseMinimum verifies the combiner equals math.Min for
// every value pair, exactly.
func TestMin_PointwiseMinimum(t *testing.T) {
	for _, pair := range valuePairs {
		m := combine.NewMin()
		wire2(t, m, pair[0], pair[1])

		v, err := m.Evaluate(1, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, math.Min(pair[0], pair[1]), v)
	}
}

// TestMin_UnsetSources verifies the unset-source violation for slot 0
// unset, slot 1 unset, and both unset.
func TestMin_UnsetSources(t *testing.T) {
	src := generator.NewConst(1)

	both := combine.NewMin()
	_, err := both.Evaluate(0, 0, 0)
	assert.ErrorIs(t, err, modular.ErrUnsetSource, "both slots unset")

	zeroOnly := combine.NewMin()
	require.NoError(t, zeroOnly.SetSource(0, src))
	_, err = zeroOnly.Evaluate(0, 0, 0)
	assert.ErrorIs(t, err, modular.ErrUnsetSource, "slot 1 unset")

	oneOnly := combine.NewMin()
	require.NoError(t, oneOnly.SetSource(1, src))
	_, err = oneOnly.Evaluate(0, 0, 0)
	assert.ErrorIs(t, err, modular.ErrUnsetSource, "slot 0 unset")
}

// TestMin_Arity verifies the declared arity.
func TestMin_Arity(t *testing.T) {
	assert.Equal(t, 2, combine.NewMin().SourceCount())
	assert.Equal(t, 2, combine.NewMax().SourceCount())
	assert.Equal(t, 2, combine.NewAdd().SourceCount())
	assert.Equal(t, 2, combine.NewMultiply().SourceCount())
	assert.Equal(t, 3, combine.NewBlend().SourceCount())
	assert.Equal(t, 3, combine.NewSelect().SourceCount())
}

// TestMax_PointwiseMaximum mirrors the Min contract.
func TestMax_PointwiseMaximum(t *testing.T) {
	for _, pair := range valuePairs {
		m := combine.NewMax()
		wire2(t, m, pair[0], pair[1])

		v, err := m.Evaluate(1, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, math.Max(pair[0], pair[1]), v)
	}
}

// TestAdd_PointwiseSum verifies the sum combiner.
func TestAdd_PointwiseSum(t *testing.T) {
	a := combine.NewAdd()
	wire2(t, a, 0.25, -1.5)

	v, err := a.Evaluate(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, -1.25, v)
}

// TestMultiply_PointwiseProduct verifies the product combiner.
func TestMultiply_PointwiseProduct(t *testing.T) {
	m := combine.NewMultiply()
	wire2(t, m, 0.5, -0.5)

	v, err := m.Evaluate(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, -0.25, v)
}

// TestMin_SharedSource verifies a DAG with one sub-graph feeding both
// slots: min(v, v) == v.
func TestMin_SharedSource(t *testing.T) {
	shared := generator.NewBillow()
	shared.Seed = 8
	m := combine.NewMin()
	require.NoError(t, m.SetSource(0, shared))
	require.NoError(t, m.SetSource(1, shared))

	want, err := shared.Evaluate(0.5, 0.5, 0.5)
	require.NoError(t, err)
	got, err := m.Evaluate(0.5, 0.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestMin_OverNoiseFields verifies pointwise minimum over two live
// fractal fields, not just constants.
func TestMin_OverNoiseFields(t *testing.T) {
	a := generator.NewBillow()
	a.Seed = 1
	b := generator.NewBillow()
	b.Seed = 2
	m := combine.NewMin()
	require.NoError(t, m.SetSource(0, a))
	require.NoError(t, m.SetSource(1, b))

	for x := -1.0; x <= 1.0; x += 0.26 {
		av, err := a.Evaluate(x, 0.3, -0.7)
		require.NoError(t, err)
		bv, err := b.Evaluate(x, 0.3, -0.7)
		require.NoError(t, err)
		mv, err := m.Evaluate(x, 0.3, -0.7)
		require.NoError(t, err)
		assert.Equal(t, math.Min(av, bv), mv, "at x=%v", x)
	}
}
