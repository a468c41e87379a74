package xfield

import (
	"fmt"
	"math/big"
)

// Cubic is an element of the degree-3 extension field B[x] / (x³ − x + 1),
// represented as c0 + c1·x + c2·x². This is the same "Shah polynomial"
// vybium-crypto/pkg/vybium-crypto/xfield hard-codes for the Goldilocks
// field, generalized here over any extensible base field B.
type Cubic[B Base[B]] struct {
	c [3]B
}

// NewCubic builds c0 + c1·x + c2·x².
func NewCubic[B Base[B]](c0, c1, c2 B) Cubic[B] {
	return Cubic[B]{c: [3]B{c0, c1, c2}}
}

// NewCubicConst lifts a base field element into the constant c + 0·x + 0·x².
func NewCubicConst[B Base[B]](c B) Cubic[B] {
	var zero B
	zero = zero.Zero()
	return Cubic[B]{c: [3]B{c, zero, zero}}
}

func (x Cubic[B]) Zero() Cubic[B] {
	var zero B
	zero = zero.Zero()
	return Cubic[B]{c: [3]B{zero, zero, zero}}
}

func (x Cubic[B]) One() Cubic[B] {
	var b B
	var zero B
	zero = zero.Zero()
	return Cubic[B]{c: [3]B{b.One(), zero, zero}}
}

// Coefficients returns [c0, c1, c2].
func (x Cubic[B]) Coefficients() [3]B { return x.c }

func (x Cubic[B]) IsZero() bool {
	return x.c[0].IsZero() && x.c[1].IsZero() && x.c[2].IsZero()
}

func (x Cubic[B]) IsOne() bool {
	return x.c[0].IsOne() && x.c[1].IsZero() && x.c[2].IsZero()
}

func (x Cubic[B]) Equal(other Cubic[B]) bool {
	return x.c[0].Equal(other.c[0]) && x.c[1].Equal(other.c[1]) && x.c[2].Equal(other.c[2])
}

// Unlift returns the base-field element when c1 = c2 = 0, and false otherwise.
func (x Cubic[B]) Unlift() (B, bool) {
	if x.c[1].IsZero() && x.c[2].IsZero() {
		return x.c[0], true
	}
	var zero B
	return zero, false
}

func (x Cubic[B]) Add(other Cubic[B]) Cubic[B] {
	return Cubic[B]{c: [3]B{
		x.c[0].Add(other.c[0]),
		x.c[1].Add(other.c[1]),
		x.c[2].Add(other.c[2]),
	}}
}

func (x Cubic[B]) Sub(other Cubic[B]) Cubic[B] {
	return Cubic[B]{c: [3]B{
		x.c[0].Sub(other.c[0]),
		x.c[1].Sub(other.c[1]),
		x.c[2].Sub(other.c[2]),
	}}
}

func (x Cubic[B]) Neg() Cubic[B] {
	return Cubic[B]{c: [3]B{x.c[0].Neg(), x.c[1].Neg(), x.c[2].Neg()}}
}

// Mul multiplies modulo x³ − x + 1, i.e. x³ = x − 1. Same derivation as
// vybium-crypto/pkg/vybium-crypto/xfield's Mul:
//
//	r0 = cf - ae - bd
//	r1 = bf + ce - ad + ae + bd
//	r2 = af + be + cd + ad
//
// (using c,b,a for this element's c0,c1,c2 and f,e,d for the other's).
func (x Cubic[B]) Mul(other Cubic[B]) Cubic[B] {
	c, b, a := x.c[0], x.c[1], x.c[2]
	f, e, d := other.c[0], other.c[1], other.c[2]

	ae := a.Mul(e)
	bd := b.Mul(d)

	r0 := c.Mul(f).Sub(ae).Sub(bd)
	r1 := b.Mul(f).Add(c.Mul(e)).Sub(a.Mul(d)).Add(ae).Add(bd)
	r2 := a.Mul(f).Add(b.Mul(e)).Add(c.Mul(d)).Add(a.Mul(d))

	return Cubic[B]{c: [3]B{r0, r1, r2}}
}

func (x Cubic[B]) MulConst(scalar B) Cubic[B] {
	return Cubic[B]{c: [3]B{x.c[0].Mul(scalar), x.c[1].Mul(scalar), x.c[2].Mul(scalar)}}
}

func (x Cubic[B]) Square() Cubic[B] { return x.Mul(x) }

// Pow computes x^exponent by binary exponentiation.
func (x Cubic[B]) Pow(exponent *big.Int) Cubic[B] {
	return pow(x, x.One(), exponent)
}

// Exp is an alias for Pow satisfying field.Element[Cubic[B]]'s naming.
func (x Cubic[B]) Exp(exponent *big.Int) Cubic[B] { return x.Pow(exponent) }

// Frobenius is the p-th power endomorphism x ↦ x^p, where p is the base
// field's characteristic. Computed as exponentiation rather than a
// per-field formula: x^p is always an automorphism of F_p^3 by
// construction, and base-field coefficients are fixed under it by
// Fermat's little theorem.
func (x Cubic[B]) Frobenius() Cubic[B] {
	var b B
	return x.Pow(b.Characteristic())
}

// Conjugate is Frobenius applied once, matching the degree-3 convention.
func (x Cubic[B]) Conjugate() Cubic[B] { return x.Frobenius() }

// Inv computes the multiplicative inverse via the norm trick: c1 =
// Frobenius(x), c2 = Frobenius(c1), numerator = c1·c2, and
// norm = x·numerator always reduces to a base-field scalar (x times all
// of its Galois conjugates is the field norm, valued in F_p). Then
// Inv(x) = numerator / norm. Inv(0) = 0.
func (x Cubic[B]) Inv() Cubic[B] {
	if x.IsZero() {
		return x.Zero()
	}
	c1 := x.Frobenius()
	c2 := c1.Frobenius()
	numerator := c1.Mul(c2)
	norm := x.Mul(numerator)
	normBase, ok := norm.Unlift()
	if !ok {
		panic("xfield: cubic norm did not reduce to the base field")
	}
	return numerator.MulConst(normBase.Inv())
}

func (x Cubic[B]) Div(other Cubic[B]) Cubic[B] {
	return x.Mul(other.Inv())
}

// Normalize forwards to each coefficient's own Normalize.
func (x Cubic[B]) Normalize() Cubic[B] {
	return Cubic[B]{c: [3]B{x.c[0].Normalize(), x.c[1].Normalize(), x.c[2].Normalize()}}
}

func (x Cubic[B]) String() string {
	if base, ok := x.Unlift(); ok {
		return fmt.Sprintf("%s_xfe", base.String())
	}
	return fmt.Sprintf("(%s·x² + %s·x + %s)", x.c[2].String(), x.c[1].String(), x.c[0].String())
}

// Bytes concatenates each coefficient's canonical encoding, c0, c1, c2.
func (x Cubic[B]) Bytes() []byte {
	b0, b1, b2 := x.c[0].Bytes(), x.c[1].Bytes(), x.c[2].Bytes()
	out := make([]byte, 0, len(b0)+len(b1)+len(b2))
	out = append(out, b0...)
	out = append(out, b1...)
	out = append(out, b2...)
	return out
}
