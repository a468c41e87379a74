// Package f64 implements the Goldilocks base field F_p, p = 2^64 - 2^32 + 1.
//
// Values are stored in Montgomery form (x * 2^64 mod P) so that modular
// multiplication never needs a division. This is a direct adaptation of
// vybium-crypto's pkg/vybium-crypto/field/element.go, widened to satisfy
// the shared field.Element[Element] contract used throughout this module.
package f64

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/vybium/starkcore/internal/starkcore/field"
)

// P is the prime modulus: 2^64 - 2^32 + 1.
const P uint64 = 0xFFFFFFFF00000001

// r2 is 2^128 mod P, used to convert into Montgomery representation.
const r2 uint64 = 0xFFFFFFFE00000001

// ElementBytes is the exact on-wire size of an encoded element.
const ElementBytes = 8

// TwoAdicity is the largest k such that 2^k divides P-1.
const TwoAdicity = 32

// IsCanonical is true: every Element value is always held as a unique
// Montgomery-form representative in [0, P).
const IsCanonical = true

// Element is a field element in Montgomery form.
type Element struct {
	value uint64
}

var (
	zeroElem = Element{0}
	oneElem  = New(1)
	// twoAdicRootOfUnity is a primitive 2^32-th root of unity, derived the
	// same way plonky2/winterfell fix it: generator^((P-1)/2^32) for
	// generator = 7.
	twoAdicRootOfUnity = New(1753635133440165772)
	modulus            = new(big.Int).SetUint64(P)
)

// Zero is the additive identity.
func Zero() Element { return zeroElem }

// One is the multiplicative identity.
func One() Element { return oneElem }

// New creates an element from a canonical uint64 value, converting to
// Montgomery form.
func New(value uint64) Element {
	return Element{value: montyred(mul128(value%P, r2))}
}

// NewFromRaw creates an element directly from a Montgomery-form word, with
// no conversion. FromBytes does not use it: it decodes a canonical value
// and converts it with New.
func NewFromRaw(raw uint64) Element {
	return Element{value: raw}
}

// Value returns the canonical uint64 value (Montgomery form undone).
func (e Element) Value() uint64 {
	return montyred(uint128{lo: e.value, hi: 0})
}

func (e Element) Zero() Element { return zeroElem }
func (e Element) One() Element  { return oneElem }

func (e Element) IsZero() bool { return e.value == 0 }
func (e Element) IsOne() bool  { return e.Equal(oneElem) }

func (e Element) Equal(other Element) bool { return e.value == other.value }

func (e Element) Add(other Element) Element {
	x1, c1 := bits.Sub64(e.value, P-other.value, 0)
	if c1 != 0 {
		return Element{value: x1 + P}
	}
	return Element{value: x1}
}

func (e Element) Sub(other Element) Element {
	x1, c1 := bits.Sub64(e.value, other.value, 0)
	return Element{value: x1 - ((1 + ^P) * c1)}
}

func (e Element) Neg() Element {
	if e.IsZero() {
		return zeroElem
	}
	return Element{value: P - e.value}
}

func (e Element) Mul(other Element) Element {
	return Element{value: montyred(mul128(e.value, other.value))}
}

func (e Element) Square() Element { return e.Mul(e) }

// Inv computes the multiplicative inverse via the addition-chain exponent
// P-2, matching vybium-crypto's optimized chain. Inv(0) = 0 per the total
// convention documented on field.Element.
func (e Element) Inv() Element {
	if e.IsZero() {
		return zeroElem
	}

	exp := func(base Element, n uint64) Element {
		result := base
		for i := uint64(0); i < n; i++ {
			result = result.Square()
		}
		return result
	}

	x := e
	bin2Ones := x.Square().Mul(x)
	bin3Ones := bin2Ones.Square().Mul(x)
	bin6Ones := exp(bin3Ones, 3).Mul(bin3Ones)
	bin12Ones := exp(bin6Ones, 6).Mul(bin6Ones)
	bin24Ones := exp(bin12Ones, 12).Mul(bin12Ones)
	bin30Ones := exp(bin24Ones, 6).Mul(bin6Ones)
	bin31Ones := bin30Ones.Square().Mul(x)
	bin31Ones1Zero := bin31Ones.Square()
	bin32Ones := bin31Ones.Square().Mul(x)

	return exp(bin31Ones1Zero, 32).Mul(bin32Ones)
}

// Exp computes e^exponent via binary exponentiation on the big-integer
// exponent representation.
func (e Element) Exp(exponent *big.Int) Element {
	if exponent.Sign() == 0 {
		return oneElem
	}
	result := oneElem
	base := e
	bitLen := exponent.BitLen()
	for i := 0; i < bitLen; i++ {
		if exponent.Bit(i) == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
	}
	return result
}

// Normalize is a no-op: Montgomery-form values are always held canonically.
func (e Element) Normalize() Element { return e }

// Characteristic returns the field's prime modulus, satisfying
// field.Extensible.
func (e Element) Characteristic() *big.Int { return new(big.Int).Set(modulus) }

// RootOfUnity returns a primitive 2^n-th root of unity. Requires n <=
// TwoAdicity; requesting an order the field cannot supply is a programming
// error and panics.
func RootOfUnity(n uint32) Element {
	if n > TwoAdicity {
		panic(fmt.Sprintf("f64: requested root of unity order 2^%d exceeds two-adicity %d", n, TwoAdicity))
	}
	root := twoAdicRootOfUnity
	for i := uint32(TwoAdicity); i > n; i-- {
		root = root.Square()
	}
	return root
}

func (e Element) String() string { return fmt.Sprintf("%d", e.Value()) }

// Bytes returns the little-endian canonical encoding, exactly ElementBytes long.
func (e Element) Bytes() []byte {
	var out [ElementBytes]byte
	binary.LittleEndian.PutUint64(out[:], e.Value())
	return out[:]
}

// ToRepr returns the canonical single-word representation.
func (e Element) ToRepr() uint64 { return e.Value() }

// FromBytes decodes a canonical little-endian encoding, failing with
// field.ErrInvalidFieldElement if length is wrong or the value is >= P.
func FromBytes(b []byte) (Element, error) {
	if len(b) != ElementBytes {
		return Element{}, field.InvalidFieldElement("expected %d bytes, got %d", ElementBytes, len(b))
	}
	v := binary.LittleEndian.Uint64(b)
	if v >= P {
		return Element{}, field.InvalidFieldElement("value %d >= modulus %d", v, P)
	}
	return New(v), nil
}

// FromRandomBytes decodes an element from raw bytes if they represent a
// canonical value, mirroring the External Interfaces' from_random_bytes.
func FromRandomBytes(b []byte) (Element, bool) {
	e, err := FromBytes(b)
	if err != nil {
		return Element{}, false
	}
	return e, true
}

type uint128 struct{ lo, hi uint64 }

func mul128(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{lo: lo, hi: hi}
}

// montyred performs Montgomery reduction of a 128-bit value modulo P.
func montyred(x uint128) uint64 {
	xl, xh := x.lo, x.hi
	a, e := bits.Add64(xl, xl<<32, 0)
	b := a - (a >> 32) - e
	r, c := bits.Sub64(xh, b, 0)
	return r - ((1 + ^P) * c)
}

var _ field.Element[Element] = Element{}
var _ field.Extensible = Element{}
