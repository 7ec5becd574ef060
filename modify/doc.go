// Package modify provides the single-source modifier nodes of a
// noisegraph composition graph: each one forwards its source's value
// through a pointwise function of the value alone.
//
// Nodes:
//
//	Abs       — |v|
//	Invert    — −v
//	Clamp     — v folded into [LowerBound, UpperBound]
//	ScaleBias — v·Scale + Bias
//	Exponent  — |(v+1)/2|^Exp rescaled back to [-1,1]
//
// Every modifier has exactly one required source slot (slot 0) and
// fails with modular.ErrUnsetSource when evaluated unwired.
//
// Clamp exists because the fractal generators deliberately do not clamp
// their own output: wiring a Clamp downstream is the explicit way to
// impose a hard range.
package modify
