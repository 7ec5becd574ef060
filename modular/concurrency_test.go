package modular_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/noisegraph/modular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coordProbe encodes the evaluation coordinate so concurrent results
// are checkable without shared state.
type coordProbe struct {
	modular.SourceBase
}

func (p *coordProbe) Evaluate(x, y, z float64) (float64, error) {
	return x + 10*y + 100*z, nil
}

// relay forwards its single source untouched; stacking relays builds a
// deep shared graph cheaply.
type relay struct {
	modular.SourceBase
}

func (r *relay) Evaluate(x, y, z float64) (float64, error) {
	return r.EvalSource(0, x, y, z)
}

// TestEvaluate_ConcurrentSameGraph verifies the documented model: one
// fully wired graph may be evaluated from many goroutines at once, at
// identical and at distinct coordinates, with no interference. Run with
// -race.
func TestEvaluate_ConcurrentSameGraph(t *testing.T) {
	// Chain of relays over a probe, shared by all goroutines.
	var root modular.Module = &coordProbe{SourceBase: modular.NewSourceBase(0)}
	for i := 0; i < 8; i++ {
		r := &relay{SourceBase: modular.NewSourceBase(1)}
		require.NoError(t, r.SetSource(0, root))
		root = r
	}

	const goroutines = 16
	const perG = 200

	var wg sync.WaitGroup
	errs := make([]error, goroutines)
	mismatch := make([]bool, goroutines)
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				x := float64(i%7) * 0.25
				v, err := root.Evaluate(x, 0.5, float64(g))
				if err != nil {
					errs[g] = err
					return
				}
				if v != x+10*0.5+100*float64(g) {
					mismatch[g] = true
					return
				}
			}
		}(g)
	}
	wg.Wait()

	for g := 0; g < goroutines; g++ {
		assert.NoError(t, errs[g], "goroutine %d", g)
		assert.False(t, mismatch[g], "goroutine %d observed a foreign value", g)
	}
}
