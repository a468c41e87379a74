// Package trace implements the trace polynomial table: the main segment of
// base-field column polynomials produced by interpolating an execution
// trace, plus zero or more auxiliary segments of extension-field column
// polynomials appended once their traces become available.
//
// Structurally grounded on internal/vybium-starks-vm/protocols/master_table.go
// (columns-as-matrices, append-then-read-only lifecycle) and
// domains.go's ArithmeticDomain.Evaluate (Horner evaluation over a
// coefficient-form polynomial), generalized here from one concrete field
// pair to any base field M and extension field X satisfying field.Element.
package trace

import (
	"fmt"
	"math/big"

	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/utils"
)

// Table holds a trace's polynomial columns: a main segment over the base
// field M (each column a coefficient vector in ascending degree, length L),
// and a sequence of auxiliary segments over the extension field X, each
// with exactly L coefficients per column. lift embeds a base-field
// coefficient into X so main columns can be evaluated at a point in X.
type Table[M field.Element[M], X field.Element[X]] struct {
	main []ColumnVector[M]
	aux  [][]ColumnVector[X]
	lift func(M) X
}

// ColumnVector is a single column's coefficients, ascending degree.
type ColumnVector[E any] []E

// New constructs a table from the main segment. All columns must have the
// same length L, a power of two; a mismatch or non-power-of-two length is
// fatal, reflecting a programming error in the surrounding prover.
func New[M field.Element[M], X field.Element[X]](mainPolys []ColumnVector[M], lift func(M) X) *Table[M, X] {
	if len(mainPolys) == 0 {
		panic("trace: main segment must have at least one column")
	}
	l := len(mainPolys[0])
	if !utils.IsPowerOfTwo(l) {
		panic(fmt.Sprintf("trace: main column length %d is not a power of two", l))
	}
	for i, col := range mainPolys {
		if len(col) != l {
			panic(fmt.Sprintf("trace: main column %d has length %d, expected %d", i, len(col), l))
		}
	}
	return &Table[M, X]{main: mainPolys, lift: lift}
}

// Length returns L, the number of coefficients (rows) per column.
func (t *Table[M, X]) Length() int {
	if len(t.main) == 0 {
		return 0
	}
	return len(t.main[0])
}

// AddAuxSegment appends an auxiliary segment. Every column must have
// exactly Length() rows; a mismatch is fatal.
func (t *Table[M, X]) AddAuxSegment(auxPolys []ColumnVector[X]) {
	l := t.Length()
	for i, col := range auxPolys {
		if len(col) != l {
			panic(fmt.Sprintf("trace: aux column %d has length %d, expected %d matching main", i, len(col), l))
		}
	}
	t.aux = append(t.aux, auxPolys)
}

// MainTracePolys returns the main segment's columns, in insertion order.
// The returned slice aliases the table's own storage; callers must not
// mutate it.
func (t *Table[M, X]) MainTracePolys() []ColumnVector[M] { return t.main }

// AuxTracePolys returns every auxiliary segment's columns flattened into a
// single slice, grouped by segment and preserving each segment's insertion
// order, in the same order EvaluateAt and NumColumns count them.
func (t *Table[M, X]) AuxTracePolys() []ColumnVector[X] {
	n := 0
	for _, seg := range t.aux {
		n += len(seg)
	}
	out := make([]ColumnVector[X], 0, n)
	for _, seg := range t.aux {
		out = append(out, seg...)
	}
	return out
}

// NumMainColumns returns the number of main-segment columns.
func (t *Table[M, X]) NumMainColumns() int { return len(t.main) }

// NumAuxSegments returns the number of auxiliary segments appended so far.
func (t *Table[M, X]) NumAuxSegments() int { return len(t.aux) }

// NumColumns returns the total column count across the main segment and
// every auxiliary segment, in the order EvaluateAt returns their values.
func (t *Table[M, X]) NumColumns() int {
	n := len(t.main)
	for _, seg := range t.aux {
		n += len(seg)
	}
	return n
}

// EvaluateAt evaluates every column at z ∈ X, main columns first (lifted
// from M via Horner evaluation), then each auxiliary segment's columns in
// insertion order.
func (t *Table[M, X]) EvaluateAt(z X) []X {
	out := make([]X, 0, t.NumColumns())
	for _, col := range t.main {
		out = append(out, evaluateLifted(col, z, t.lift))
	}
	for _, seg := range t.aux {
		for _, col := range seg {
			out = append(out, evaluate(col, z))
		}
	}
	return out
}

// evaluate computes a coefficient-form polynomial's value at z via
// Horner's method.
func evaluate[X field.Element[X]](coeffs ColumnVector[X], z X) X {
	var acc X
	acc = acc.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(z).Add(coeffs[i])
	}
	return acc
}

// evaluateLifted is evaluate for base-field coefficients lifted into X as
// they are folded in.
func evaluateLifted[M field.Element[M], X field.Element[X]](coeffs ColumnVector[M], z X, lift func(M) X) X {
	var acc X
	acc = acc.Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(z).Add(lift(coeffs[i]))
	}
	return acc
}

// OODFrame is an out-of-domain evaluation frame: the current row's
// evaluations and the next row's, for every trace polynomial, concatenated
// in the same column order as EvaluateAt.
type OODFrame[X any] struct {
	Current []X
	Next    []X
}

// GetOODFrame builds the out-of-domain evaluation frame for a challenge
// point z. rootOfUnity supplies the base field's root-of-unity oracle
// (e.g. f64.RootOfUnity); maxPow is the largest transition-constraint
// degree and ratio the transition-constraint cycle length, both owned by
// the surrounding AIR layer.
//
// current holds the concatenated evaluations of every trace polynomial at
// z, z·g, z·g², …, z·g^(maxPow-1), where g is the primitive trace-domain
// root of unity of order Length(), lifted into X. next holds the
// evaluations at z·g^ratio.
func (t *Table[M, X]) GetOODFrame(z X, maxPow, ratio int, rootOfUnity func(uint32) M) OODFrame[X] {
	l := t.Length()
	g := t.lift(rootOfUnity(uint32(utils.Log2(l))))

	current := make([]X, 0, maxPow*t.NumColumns())
	point := z
	for i := 0; i < maxPow; i++ {
		current = append(current, t.EvaluateAt(point)...)
		point = point.Mul(g)
	}

	gRatio := g.Exp(big.NewInt(int64(ratio)))
	next := t.EvaluateAt(z.Mul(gRatio))

	return OODFrame[X]{Current: current, Next: next}
}
