// Package starkcore is the public surface over the arithmetic core of a
// STARK proof system: prime fields, their degree-2 and degree-3 algebraic
// extensions, the boundary-assertion model, and the trace polynomial
// table.
//
// # Features
//
// - Four base prime fields (f62, f64 Goldilocks, f128, f252) behind one
//   generic Element contract
// - Quadratic and cubic extension fields generic over any extensible base
//   field
// - Batch inversion, power-series generation, and buffer reinterpretation
//   shared across every field
// - Single/Periodic/Sequence boundary assertions with overlap detection
//   and total ordering
// - A trace polynomial table supporting point evaluation and out-of-domain
//   frame construction
//
// # Quick Start
//
// Working directly with the Goldilocks field:
//
//	a := starkcore.NewF64(7)
//	b := starkcore.NewF64(13)
//	sum := a.Add(b)
//
// Lifting into its cubic extension and back:
//
//	x := starkcore.NewCubic(starkcore.NewF64(1), starkcore.NewF64(2), starkcore.NewF64(3))
//	inv := x.Inv()
//	if _, ok := x.Mul(inv).Unlift(); !ok {
//		log.Fatal("product should reduce to the base field")
//	}
//
// Declaring boundary assertions over an execution trace and checking them
// for overlap:
//
//	a := starkcore.Single(0, 3, starkcore.NewF64(1))
//	b := starkcore.Periodic(0, 0, 8, starkcore.NewF64(1))
//	if a.OverlapsWith(b) {
//		log.Fatal("conflicting boundary assertions")
//	}
//
// # Architecture
//
// - pkg/starkcore/: public API (this package) — type aliases,
//   constructors, and error types re-exporting internal/starkcore for
//   callers outside this module
// - internal/starkcore/field/: the four base fields
// - internal/starkcore/xfield/: quadratic and cubic extensions
// - internal/starkcore/assertions/: the boundary-assertion model
// - internal/starkcore/trace/: the trace polynomial table
//
// Implementation details under internal/ can change without affecting
// this package's API. Code within this module imports internal/starkcore
// directly rather than going through this package's public wrapper, since
// both live in the same module.
//
// # Non-goals
//
// This module implements the arithmetic core only. It does not include a
// Merkle commitment scheme, a FRI low-degree test, a Fiat-Shamir
// transcript, a full AIR constraint description, or a CLI; those layers
// consume the types here but live outside this module's scope.
package starkcore
