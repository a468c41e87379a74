// Package field declares the generic contract every concrete base field in
// this module satisfies (f62, f64, f128, f252), plus the vector primitives
// (V) that operate uniformly across all of them.
//
// A concrete field cannot be expressed as a single Go type: the STARK engine
// needs several distinct moduli, each with its own word width and reduction
// strategy. Rather than hand-duplicate the V component (batch inversion,
// power series, buffer reinterpretation) once per modulus, every concrete
// element type implements Element[E] and the generic helpers here are
// written once against that contract.
package field

import "math/big"

// Element is the contract a concrete base-field element type E implements.
// It follows the curiously-recurring pattern: methods take and return the
// concrete type, not the interface, so arithmetic never boxes through an
// interface value on the hot path of generic code instantiated over E.
//
// Equality, hashing, and serialization always operate on the canonical
// residue: Equal, Bytes, and String must agree regardless of whatever
// internal (possibly non-reduced, e.g. Montgomery) representation an
// implementation chooses to carry between operations.
type Element[E any] interface {
	Add(other E) E
	Sub(other E) E
	Neg() E
	Mul(other E) E
	Square() E
	// Inv returns the multiplicative inverse, or the zero element when the
	// receiver is zero. This is a total convention, not a mathematical
	// inverse: callers must not infer invertibility from a non-zero result.
	Inv() E
	// Exp computes receiver^exponent. exponent is a native big-integer
	// representation per spec; exponent == 0 yields One even when the
	// receiver is Zero.
	Exp(exponent *big.Int) E
	// Normalize reduces any internal non-canonical state to canonical
	// form. Idempotent.
	Normalize() E

	IsZero() bool
	IsOne() bool
	Equal(other E) bool

	// Zero and One are instance methods (rather than package-level
	// constants) so generic code holding only a type parameter E can
	// still reach the field's additive and multiplicative identities.
	Zero() E
	One() E

	// Bytes returns the canonical little-endian encoding, exactly
	// ELEMENT_BYTES long for the concrete field.
	Bytes() []byte
	String() string
}

// Extensible is the capability hook a base field must expose before an
// xfield.Quadratic[B] or xfield.Cubic[B] can be built over it. The
// degree-2 (x²−x−1) and degree-3 (x³−x+1) irreducibles are fixed and
// identical for every extensible base field in this module, so the only
// per-field datum the extension machinery actually needs is the field's
// characteristic: Frobenius on an extension element is computed as
// exponentiation by p using the extension type's own Mul, since raising to
// the p-th power is the Frobenius automorphism of F_p^d by construction,
// and coefficients in F_p are fixed by Fermat's little theorem (a^p = a).
type Extensible interface {
	Characteristic() *big.Int
}
