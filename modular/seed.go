// Package modular - process-wide default seed.
//
// This file centralizes the ambient seed shared by node constructors.
//
// Goals:
//   - Determinism: a fixed default so zero-config graphs reproduce.
//   - Explicitness: the default is read once, at node construction,
//     never implicitly during evaluation — evaluation stays a pure
//     function of (node, coordinate).
//   - Isolation: tests or sessions sharing a process that need a clean
//     slate must reset it themselves; there is no automatic lifecycle.
package modular

import "sync"

// initialDefaultSeed is the fixed "zero" value of the process-wide seed.
// The value is arbitrary but stable to keep reproducible defaults.
const initialDefaultSeed uint32 = 0

var (
	seedMu      sync.RWMutex
	defaultSeed = initialDefaultSeed
)

// DefaultSeed returns the current process-wide default seed. Node
// constructors capture it; evaluation never reads it.
func DefaultSeed() uint32 {
	seedMu.RLock()
	defer seedMu.RUnlock()

	return defaultSeed
}

// SetDefaultSeed replaces the process-wide default seed. Only nodes
// constructed afterwards observe the new value; existing nodes keep the
// seed they captured.
func SetDefaultSeed(seed uint32) {
	seedMu.Lock()
	defer seedMu.Unlock()

	defaultSeed = seed
}
