// Package noisegraph is your in-memory playground for composing and
// evaluating coherent-noise fields — from the gradient-noise primitive
// to full module graphs for terrain, textures and motion.
//
// 🚀 What is noisegraph?
//
//	A modern, deterministic, almost-zero-dependency library that brings together:
//		• Coherent primitive: seeded gradient noise with selectable quality kernels
//		• Node contract: fixed-arity source slots, checked wiring, pure evaluation
//		• Generators: Billow, Perlin (fBm), RidgedMulti, Const, Simplex
//		• Combiners & selectors: Min, Max, Add, Multiply, Blend, Select
//		• Modifiers: Abs, Invert, Clamp, ScaleBias, Exponent
//		• Transformers: Translate, Scale, Turbulence
//		• Sampling: concurrent plane sampling into heightmap grids
//
// ✨ Why choose noisegraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – seed-determinism, checked source slots, no hidden state
//   - Pure Go – no cgo, no asset formats, no GPU coupling
//   - Extensible – every node is one small type over the same Module contract
//
// Under the hood, everything is organized under focused subpackages:
//
//	coherent/  — the gradient coherent-noise primitive & interpolation kernels
//	modular/   — the Module contract, source-slot plumbing & default seed
//	generator/ — zero-source noise generators (Billow, Perlin, RidgedMulti, …)
//	combine/   — fixed-arity combiners & selectors (Min, Max, Blend, Select, …)
//	modify/    — single-source value modifiers (Abs, Clamp, ScaleBias, …)
//	transform/ — single-source coordinate transformers (Translate, Turbulence, …)
//	noisemap/  — plane sampling of a module graph into a 2D grid
//
// Quick ASCII example:
//
//	    Billow   RidgedMulti
//	        \     /
//	         Min
//	          │
//	       Evaluate(x,y,z)
//
//	selects the pointwise minimum of two fractal fields — a classic
//	terrain trick for carving plains into mountains.
//
// Evaluation is purely pull-based and recursive: evaluating any node
// evaluates its wired sources at the same coordinate and composes the
// results upward. Graphs are DAGs — sharing a sub-graph between several
// parents is legal and expected; cycles are a caller error and are not
// detected.
//
//	go get github.com/katalvlaran/noisegraph
package noisegraph
