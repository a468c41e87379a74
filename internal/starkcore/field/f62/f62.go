// Package f62 implements a single-word base field F_p for p just under
// 2^62, used where a smaller-than-Goldilocks field suffices.
//
// Unlike f64's Montgomery reduction (which exploits P = 2^64 - 2^32 + 1's
// specific bit shape), this modulus has no such shortcut, so elements are
// kept in plain canonical form and products are reduced with
// math/bits.Div64 on the 128-bit product — still branch-light, one
// hardware DIV instruction per multiplication, preferring math/bits
// primitives over math/big on the hot arithmetic path.
package f62

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"

	"github.com/vybium/starkcore/internal/starkcore/field"
)

// P is the prime modulus: 2^62 - 111*2^39 + 1.
const P uint64 = 0x3FFFC88000000001

// ElementBytes is the exact on-wire size of an encoded element.
const ElementBytes = 8

// TwoAdicity is the largest k such that 2^k divides P-1.
const TwoAdicity = 39

// IsCanonical is true: Element always holds its reduced residue.
const IsCanonical = true

// Generator is a generator of the field's multiplicative group.
const Generator uint64 = 3

// Element is a field element, always held in canonical form in [0, P).
type Element struct {
	value uint64
}

var (
	zeroElem = Element{0}
	oneElem  = Element{1}
	// twoAdicRootOfUnity is generator^((P-1)/2^39), a primitive 2^39-th
	// root of unity.
	twoAdicRootOfUnity = Element{4421547261963328785}
	modulus            = new(big.Int).SetUint64(P)
)

func Zero() Element { return zeroElem }
func One() Element  { return oneElem }

// New creates an element from a canonical uint64 value, reducing mod P.
func New(value uint64) Element {
	return Element{value: value % P}
}

func (e Element) Value() uint64 { return e.value }

func (e Element) Zero() Element { return zeroElem }
func (e Element) One() Element  { return oneElem }

func (e Element) IsZero() bool         { return e.value == 0 }
func (e Element) IsOne() bool          { return e.value == 1 }
func (e Element) Equal(o Element) bool { return e.value == o.value }

func (e Element) Add(o Element) Element {
	sum, carry := bits.Add64(e.value, o.value, 0)
	if carry != 0 || sum >= P {
		sum -= P
	}
	return Element{value: sum}
}

func (e Element) Sub(o Element) Element {
	diff, borrow := bits.Sub64(e.value, o.value, 0)
	if borrow != 0 {
		diff += P
	}
	return Element{value: diff}
}

func (e Element) Neg() Element {
	if e.IsZero() {
		return zeroElem
	}
	return Element{value: P - e.value}
}

func (e Element) Mul(o Element) Element {
	hi, lo := bits.Mul64(e.value, o.value)
	_, rem := bits.Div64(hi, lo, P)
	return Element{value: rem}
}

func (e Element) Square() Element { return e.Mul(e) }

func (e Element) Inv() Element {
	if e.IsZero() {
		return zeroElem
	}
	// P - 2 via math/big; not on a hot path for this field size.
	exp := new(big.Int).Sub(modulus, big.NewInt(2))
	return e.Exp(exp)
}

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

func (e Element) Normalize() Element { return e }

func (e Element) Characteristic() *big.Int { return new(big.Int).Set(modulus) }

func RootOfUnity(n uint32) Element {
	if n > TwoAdicity {
		panic(fmt.Sprintf("f62: requested root of unity order 2^%d exceeds two-adicity %d", n, TwoAdicity))
	}
	root := twoAdicRootOfUnity
	for i := uint32(TwoAdicity); i > n; i-- {
		root = root.Square()
	}
	return root
}

func (e Element) String() string { return fmt.Sprintf("%d", e.value) }

func (e Element) Bytes() []byte {
	var out [ElementBytes]byte
	binary.LittleEndian.PutUint64(out[:], e.value)
	return out[:]
}

func (e Element) ToRepr() uint64 { return e.value }

func FromBytes(b []byte) (Element, error) {
	if len(b) != ElementBytes {
		return Element{}, field.InvalidFieldElement("expected %d bytes, got %d", ElementBytes, len(b))
	}
	v := binary.LittleEndian.Uint64(b)
	if v >= P {
		return Element{}, field.InvalidFieldElement("value %d >= modulus %d", v, P)
	}
	return Element{value: v}, nil
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
