// Package modular defines the node contract of a noisegraph composition
// graph: the Module interface, the source-slot plumbing every concrete
// node embeds, and the process-wide default seed.
//
// 🚀 The contract
//
//	Every node — generator, modifier, combiner, selector or transformer —
//	implements Module:
//	  • SourceCount() reports the fixed number of required source slots.
//	  • Source(i) / SetSource(i, m) read and rewire indexed slots.
//	  • Evaluate(x, y, z) returns the node's value at a coordinate,
//	    recursively pulling whichever sources its algorithm needs.
//
// Slot indices are semantic: for a selector, slot 0 and 1 are the
// branches and slot 2 is the control. A node's slot sequence is sized
// once at construction and never changes length; individual slots may be
// rewired at any time between evaluations.
//
// ⚠️ Contract violations
//
//	Evaluating a node with a required slot unset fails loudly with
//	ErrUnsetSource — never a silent zero. Slot access outside
//	[0, SourceCount()) fails with ErrSourceIndex — never wrapped or
//	clamped. Both checks are unconditional in every build configuration.
//
// Concurrency model:
//
//   - Evaluation is a pure function of (node, coordinate); it never
//     mutates configuration or wiring, so one graph may be evaluated from
//     any number of goroutines simultaneously.
//   - Rewiring a slot or changing a node's configuration concurrently
//     with evaluation of the same node is a data race; callers must
//     serialize reconfiguration against in-flight evaluations themselves.
//
// Graphs are DAGs: sharing one sub-graph between several parents is
// legal and expected. Cycles are a caller error — they are not detected,
// and evaluating a cyclic graph does not terminate.
package modular
