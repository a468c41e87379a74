// Package xfield provides generic algebraic extension fields over any base
// field satisfying field.Element[B] and field.Extensible.
//
// vybium-crypto's pkg/vybium-crypto/xfield hard-codes one degree-3
// extension over the Goldilocks field. This package generalizes the same
// arithmetic over any extensible base field: the irreducible-polynomial
// shape (x²−x−1 for Quadratic, x³−x+1 for Cubic) and the Mul formula are
// kept exactly as that package derives them, but parameterized by a type
// argument B instead of one fixed field.Element.
package xfield

import "math/big"

// pow computes base^exponent for any type that exposes Mul and a neutral
// element, using binary exponentiation. Shared by Quadratic.Pow and
// Cubic.Pow (and, via Cubic.Frobenius, by Cubic's norm-based Inv) so every
// exponentiation in this package goes through one implementation.
func pow[E interface{ Mul(E) E }](base E, one E, exponent *big.Int) E {
	if exponent.Sign() == 0 {
		return one
	}
	result := one
	b := base
	bitLen := exponent.BitLen()
	for i := 0; i < bitLen; i++ {
		if exponent.Bit(i) == 1 {
			result = result.Mul(b)
		}
		b = b.Mul(b)
	}
	return result
}

