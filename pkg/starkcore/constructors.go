package starkcore

import (
	"github.com/vybium/starkcore/internal/starkcore/assertions"
	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/trace"
	"github.com/vybium/starkcore/internal/starkcore/xfield"
)

// Single constructs a boundary assertion fixing register's value at step
// of the trace.
func Single[E field.Element[E]](register, step int, value E) Assertion[E] {
	return assertions.Single(register, step, value)
}

// Periodic constructs a boundary assertion fixing register's value at
// every firstStep + k*stride for k >= 0.
func Periodic[E field.Element[E]](register, firstStep, stride int, value E) Assertion[E] {
	return assertions.Periodic(register, firstStep, stride, value)
}

// Sequence constructs a boundary assertion fixing register to values[i] at
// step firstStep + i*stride, each value used once.
func Sequence[E field.Element[E]](register, firstStep, stride int, values []E) Assertion[E] {
	return assertions.Sequence(register, firstStep, stride, values)
}

// SortAssertions sorts assertions into a total order: by stride, then
// first step, then register.
func SortAssertions[E field.Element[E]](as []Assertion[E]) {
	assertions.Sort(as)
}

// NewQuadratic builds a degree-2 extension element c0 + c1*x.
func NewQuadratic[B Base[B]](c0, c1 B) Quadratic[B] {
	return xfield.NewQuadratic(c0, c1)
}

// NewQuadraticConst lifts a base-field element into the degree-2 extension.
func NewQuadraticConst[B Base[B]](c B) Quadratic[B] {
	return xfield.NewQuadraticConst(c)
}

// NewCubic builds a degree-3 extension element c0 + c1*x + c2*x².
func NewCubic[B Base[B]](c0, c1, c2 B) Cubic[B] {
	return xfield.NewCubic(c0, c1, c2)
}

// NewCubicConst lifts a base-field element into the degree-3 extension.
func NewCubicConst[B Base[B]](c B) Cubic[B] {
	return xfield.NewCubicConst(c)
}

// NewTable constructs a trace polynomial table from its main segment.
// lift embeds a main-column coefficient (in M) into the extension field X
// used for out-of-domain evaluation.
func NewTable[M field.Element[M], X field.Element[X]](main []ColumnVector[M], lift func(M) X) *Table[M, X] {
	return trace.New(main, lift)
}
