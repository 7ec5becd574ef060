// Package combine provides the combiner and selector nodes of a
// noisegraph composition graph: fixed-arity modules that merge the
// pointwise outputs of already-evaluated sources.
//
// 🚀 Nodes:
//
//	Min, Max       — arity 2; the pointwise extremum of both sources.
//	Add, Multiply  — arity 2; pointwise sum and product.
//	Blend          — arity 3; linear interpolation of slots 0 and 1 by
//	                 the control signal in slot 2.
//	Select         — arity 3; chooses slot 1 where the control lies
//	                 inside [LowerBound, UpperBound] and slot 0
//	                 elsewhere, optionally feathered by EdgeFalloff.
//
// Slot indices carry semantic roles: for Blend and Select, slots 0 and
// 1 are the branches and slot 2 is the control. Every node checks that
// all required slots are wired before evaluating anything and fails
// with modular.ErrUnsetSource otherwise — an incompletely assembled
// graph is a programmer error, never a silent zero.
//
// The binary combiners and Blend always evaluate every source — no
// short-circuiting — so a shared sub-graph behaves identically however
// it is reached. Select may skip the branch a zero-falloff control has
// ruled out; that is a per-node algorithmic choice the contract permits.
//
// ⚙️ Usage:
//
//	m := combine.NewMin()
//	_ = m.SetSource(0, plains)
//	_ = m.SetSource(1, mountains)
//	v, err := m.Evaluate(x, y, z)
package combine
