package starkcore

import (
	"github.com/vybium/starkcore/internal/starkcore/assertions"
	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/trace"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// Type aliases over internal/starkcore's generic types, so callers outside
// this module do not need (and are not permitted, by Go's internal/
// visibility rule) to import internal/starkcore directly.

// Element is the generic contract every concrete base field satisfies.
type Element[E any] = field.Element[E]

// Extensible is the capability hook a base field exposes before an
// extension field can be built over it.
type Extensible = field.Extensible

// Assertion is a boundary assertion over a base field E: Single, Periodic,
// or Sequence, as constructed by Single/Periodic/Sequence below.
type Assertion[E field.Element[E]] = assertions.Assertion[E]

// Base is the constraint an extension field's base type must satisfy.
type Base[B any] = xfield.Base[B]

// Quadratic is the degree-2 extension (irreducible x² − x − 1) over any
// base field B satisfying Extensible.
type Quadratic[B Base[B]] = xfield.Quadratic[B]

// Cubic is the degree-3 extension (irreducible x³ − x + 1) over any base
// field B satisfying Extensible.
type Cubic[B Base[B]] = xfield.Cubic[B]

// ColumnVector is a single trace-polynomial column's coefficients,
// ascending degree.
type ColumnVector[E any] = trace.ColumnVector[E]

// Table is the trace polynomial table: a main segment over a base field M
// plus zero or more auxiliary segments over an extension field X.
type Table[M field.Element[M], X field.Element[X]] = trace.Table[M, X]

// OODFrame is an out-of-domain evaluation frame produced by
// Table.GetOODFrame.
type OODFrame[X any] = trace.OODFrame[X]

