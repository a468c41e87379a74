// Package f252 implements a base field F_p for the 252-bit StarkWare/Cairo
// prime 2^251 + 17*2^192 + 1.
//
// Like f128, this width has no convenient fixed-word reduction trick, so
// elements are carried as reduced math/big.Int values, following
// vybium-starks-vm's core/field.go precedent for wide moduli. It satisfies
// field.Extensible like every other field in this package, but unlike f62,
// f64 and f128 it is never instantiated as an xfield extension base: at
// 252 bits it is already wide enough to be used directly wherever a STARK
// instantiation would otherwise lift a narrower field into an extension.
package f252

import (
	"fmt"
	"math/big"

	"github.com/vybium/starkcore/internal/starkcore/field"
)

// PHex is the prime modulus: 2^251 + 17*2^192 + 1.
const PHex = "800000000000011000000000000000000000000000000000000000000000001"

// ElementBytes is the exact on-wire size of an encoded element.
const ElementBytes = 32

// TwoAdicity is the largest k such that 2^k divides P-1.
const TwoAdicity = 192

// IsCanonical is true: Element always holds its reduced residue.
const IsCanonical = true

// Generator is a generator of the field's multiplicative group.
const Generator uint64 = 3

var (
	modulus *big.Int
	pMinus2 *big.Int

	zeroElem Element
	oneElem  Element

	twoAdicRootOfUnityDec = "145784604816374866144131285430889962727208297722245411306711449302875041684"
	twoAdicRootOfUnity    Element
)

func init() {
	var ok bool
	modulus, ok = new(big.Int).SetString(PHex, 16)
	if !ok {
		panic("f252: invalid modulus literal")
	}
	pMinus2 = new(big.Int).Sub(modulus, big.NewInt(2))

	zeroElem = Element{v: big.NewInt(0)}
	oneElem = Element{v: big.NewInt(1)}

	root, ok := new(big.Int).SetString(twoAdicRootOfUnityDec, 10)
	if !ok {
		panic("f252: invalid root-of-unity literal")
	}
	twoAdicRootOfUnity = Element{v: root}
}

// Element is a field element, always held canonically reduced in [0, P).
// The zero value is not valid; use Zero() or New().
type Element struct {
	v *big.Int
}

func Zero() Element { return zeroElem }
func One() Element  { return oneElem }

// New creates an element from a big-endian non-negative integer, reducing
// it modulo P.
func New(value *big.Int) Element {
	v := new(big.Int).Mod(value, modulus)
	return Element{v: v}
}

// NewUint64 creates an element from a native unsigned integer.
func NewUint64(value uint64) Element {
	return Element{v: new(big.Int).SetUint64(value)}
}

func (e Element) bigOrZero() *big.Int {
	if e.v == nil {
		return big.NewInt(0)
	}
	return e.v
}

func (e Element) Value() *big.Int { return new(big.Int).Set(e.bigOrZero()) }

func (e Element) Zero() Element { return zeroElem }
func (e Element) One() Element  { return oneElem }

func (e Element) IsZero() bool { return e.bigOrZero().Sign() == 0 }
func (e Element) IsOne() bool  { return e.Equal(oneElem) }

func (e Element) Equal(other Element) bool {
	return e.bigOrZero().Cmp(other.bigOrZero()) == 0
}

func (e Element) Add(other Element) Element {
	sum := new(big.Int).Add(e.bigOrZero(), other.bigOrZero())
	sum.Mod(sum, modulus)
	return Element{v: sum}
}

func (e Element) Sub(other Element) Element {
	diff := new(big.Int).Sub(e.bigOrZero(), other.bigOrZero())
	diff.Mod(diff, modulus)
	return Element{v: diff}
}

func (e Element) Neg() Element {
	if e.IsZero() {
		return zeroElem
	}
	n := new(big.Int).Sub(modulus, e.bigOrZero())
	return Element{v: n}
}

func (e Element) Mul(other Element) Element {
	prod := new(big.Int).Mul(e.bigOrZero(), other.bigOrZero())
	prod.Mod(prod, modulus)
	return Element{v: prod}
}

func (e Element) Square() Element { return e.Mul(e) }

// Inv computes the multiplicative inverse via exponentiation by P-2.
// Inv(0) = 0 per the total convention documented on field.Element.
func (e Element) Inv() Element {
	if e.IsZero() {
		return zeroElem
	}
	return e.Exp(pMinus2)
}

func (e Element) Exp(exponent *big.Int) Element {
	r := new(big.Int).Exp(e.bigOrZero(), exponent, modulus)
	return Element{v: r}
}

// Normalize is a no-op: big.Int values are kept reduced after every
// operation above.
func (e Element) Normalize() Element { return e }

// Characteristic is implemented so f252 can participate in any generic
// code written against field.Element alone, but f252 is never wired as an
// xfield.Quadratic/Cubic base in this module: see SPEC_FULL.md §4.2.
func (e Element) Characteristic() *big.Int { return new(big.Int).Set(modulus) }

func RootOfUnity(n uint32) Element {
	if n > TwoAdicity {
		panic(fmt.Sprintf("f252: requested root of unity order 2^%d exceeds two-adicity %d", n, TwoAdicity))
	}
	root := twoAdicRootOfUnity
	for i := uint32(TwoAdicity); i > n; i-- {
		root = root.Square()
	}
	return root
}

func (e Element) String() string { return e.bigOrZero().String() }

// Bytes returns the little-endian canonical encoding, exactly ElementBytes
// long, zero-padded on the high end.
func (e Element) Bytes() []byte {
	out := make([]byte, ElementBytes)
	be := e.bigOrZero().Bytes()
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

func FromBytes(b []byte) (Element, error) {
	if len(b) != ElementBytes {
		return Element{}, field.InvalidFieldElement("expected %d bytes, got %d", ElementBytes, len(b))
	}
	be := make([]byte, len(b))
	for i, x := range b {
		be[len(b)-1-i] = x
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(modulus) >= 0 {
		return Element{}, field.InvalidFieldElement("value %s >= modulus", v.String())
	}
	return Element{v: v}, nil
}

func FromRandomBytes(b []byte) (Element, bool) {
	e, err := FromBytes(b)
	if err != nil {
		return Element{}, false
	}
	return e, true
}

var _ field.Element[Element] = Element{}
var _ field.Extensible = Element{}
