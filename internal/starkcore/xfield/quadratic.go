package xfield

import (
	"fmt"
	"math/big"

	"github.com/vybium/starkcore/internal/starkcore/field"
)

// Base is the constraint every extension base field in this package
// requires: ordinary field arithmetic (field.Element[B]) plus the
// characteristic hook (field.Extensible) that drives Frobenius-style
// exponentiation generically.
type Base[B any] interface {
	field.Element[B]
	field.Extensible
}

// Quadratic is an element of the degree-2 extension field B[x] / (x² − x − 1),
// represented as c0 + c1·x, generalized over any base field B rather than
// one concrete field.
type Quadratic[B Base[B]] struct {
	c [2]B
}

// NewQuadratic builds c0 + c1·x.
func NewQuadratic[B Base[B]](c0, c1 B) Quadratic[B] {
	return Quadratic[B]{c: [2]B{c0, c1}}
}

// NewQuadraticConst lifts a base field element into the constant c + 0·x.
func NewQuadraticConst[B Base[B]](c B) Quadratic[B] {
	var zero B
	return Quadratic[B]{c: [2]B{c, zero.Zero()}}
}

func (q Quadratic[B]) Zero() Quadratic[B] {
	var zero B
	zero = zero.Zero()
	return Quadratic[B]{c: [2]B{zero, zero}}
}

func (q Quadratic[B]) One() Quadratic[B] {
	var b B
	return Quadratic[B]{c: [2]B{b.One(), b.Zero()}}
}

// Coefficients returns [c0, c1].
func (q Quadratic[B]) Coefficients() [2]B { return q.c }

func (q Quadratic[B]) IsZero() bool { return q.c[0].IsZero() && q.c[1].IsZero() }
func (q Quadratic[B]) IsOne() bool  { return q.c[0].IsOne() && q.c[1].IsZero() }

func (q Quadratic[B]) Equal(other Quadratic[B]) bool {
	return q.c[0].Equal(other.c[0]) && q.c[1].Equal(other.c[1])
}

// Unlift returns the base-field element when c1 is zero, and false otherwise.
func (q Quadratic[B]) Unlift() (B, bool) {
	if q.c[1].IsZero() {
		return q.c[0], true
	}
	var zero B
	return zero, false
}

func (q Quadratic[B]) Add(other Quadratic[B]) Quadratic[B] {
	return Quadratic[B]{c: [2]B{q.c[0].Add(other.c[0]), q.c[1].Add(other.c[1])}}
}

func (q Quadratic[B]) Sub(other Quadratic[B]) Quadratic[B] {
	return Quadratic[B]{c: [2]B{q.c[0].Sub(other.c[0]), q.c[1].Sub(other.c[1])}}
}

func (q Quadratic[B]) Neg() Quadratic[B] {
	return Quadratic[B]{c: [2]B{q.c[0].Neg(), q.c[1].Neg()}}
}

// Mul multiplies modulo x² − x − 1, i.e. x² = x + 1:
//
//	(a0 + a1·x)(b0 + b1·x) = a0b0 + a1b1 + (a0b1 + a1b0 + a1b1)·x
func (q Quadratic[B]) Mul(other Quadratic[B]) Quadratic[B] {
	a0, a1 := q.c[0], q.c[1]
	b0, b1 := other.c[0], other.c[1]

	a1b1 := a1.Mul(b1)
	r0 := a0.Mul(b0).Add(a1b1)
	r1 := a0.Mul(b1).Add(a1.Mul(b0)).Add(a1b1)

	return Quadratic[B]{c: [2]B{r0, r1}}
}

func (q Quadratic[B]) MulConst(scalar B) Quadratic[B] {
	return Quadratic[B]{c: [2]B{q.c[0].Mul(scalar), q.c[1].Mul(scalar)}}
}

func (q Quadratic[B]) Square() Quadratic[B] { return q.Mul(q) }

// Pow computes q^exponent by binary exponentiation.
func (q Quadratic[B]) Pow(exponent *big.Int) Quadratic[B] {
	return pow(q, q.One(), exponent)
}

// Exp is an alias for Pow satisfying field.Element[Quadratic[B]]'s naming.
func (q Quadratic[B]) Exp(exponent *big.Int) Quadratic[B] { return q.Pow(exponent) }

// Inv computes the multiplicative inverse via the conjugate formula for
// x² − x − 1: with x = a + b·x, denom = a² + ab − b² satisfies
// x · Conjugate(x) = denom (a base-field scalar), so
// Inv(x) = Conjugate(x) / denom. Inv(0) = 0, matching field.Element's
// total convention.
func (q Quadratic[B]) Inv() Quadratic[B] {
	if q.IsZero() {
		return q.Zero()
	}
	a, b := q.c[0], q.c[1]
	denom := a.Mul(a).Add(a.Mul(b)).Sub(b.Mul(b))
	return q.Conjugate().MulConst(denom.Inv())
}

func (q Quadratic[B]) Div(other Quadratic[B]) Quadratic[B] {
	return q.Mul(other.Inv())
}

// Normalize forwards to each coefficient's own Normalize.
func (q Quadratic[B]) Normalize() Quadratic[B] {
	return Quadratic[B]{c: [2]B{q.c[0].Normalize(), q.c[1].Normalize()}}
}

// Conjugate applies x ↦ 1 − x (the other root of x² − x − 1, whose roots
// sum to 1): a + b·x becomes (a+b) − b·x.
func (q Quadratic[B]) Conjugate() Quadratic[B] {
	a, b := q.c[0], q.c[1]
	return Quadratic[B]{c: [2]B{a.Add(b), b.Neg()}}
}

func (q Quadratic[B]) String() string {
	if base, ok := q.Unlift(); ok {
		return fmt.Sprintf("%s_qfe", base.String())
	}
	return fmt.Sprintf("(%s·x + %s)", q.c[1].String(), q.c[0].String())
}

// Bytes concatenates each coefficient's canonical encoding, c0 then c1.
func (q Quadratic[B]) Bytes() []byte {
	b0 := q.c[0].Bytes()
	b1 := q.c[1].Bytes()
	out := make([]byte, 0, len(b0)+len(b1))
	out = append(out, b0...)
	out = append(out, b1...)
	return out
}
