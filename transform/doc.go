// Package transform provides the coordinate-transforming nodes of a
// noisegraph composition graph: each one rewrites the evaluation
// coordinate before delegating to its single source, leaving the
// source's values untouched.
//
// Nodes:
//
//	Translate  — shifts the coordinate by a fixed offset.
//	Scale      — multiplies the coordinate componentwise.
//	Turbulence — displaces the coordinate by three internal fractal
//	             noise fields, swirling the source's features.
//
// Every transformer has exactly one required source slot (slot 0) and
// fails with modular.ErrUnsetSource when evaluated unwired.
package transform
