package xfield

import "github.com/vybium/starkcore/internal/starkcore/field"

// AsBaseElements interprets a slice of Cubic[B] as a flat slice of its base
// field coefficients, in order [xs[0].c0, xs[0].c1, xs[0].c2, xs[1].c0, ...].
// This is a copying reinterpretation (Go generics give no safe way to alias
// the underlying array across distinct element types), but it preserves the
// zero-copy *intent* of vybium-crypto/pkg/vybium-crypto/xfield's AsFlatSlice:
// callers that need to hash or serialize every coefficient of a column of
// extension elements get one flat slice instead of iterating structs.
func AsBaseElements[B Base[B]](xs []Cubic[B]) []B {
	if len(xs) == 0 {
		return nil
	}
	out := make([]B, 0, len(xs)*3)
	for _, x := range xs {
		out = append(out, x.c[0], x.c[1], x.c[2])
	}
	return out
}

// FromBaseElements is the inverse of AsBaseElements: elements must have a
// length that is a multiple of 3.
func FromBaseElements[B Base[B]](elements []B) ([]Cubic[B], error) {
	if len(elements)%3 != 0 {
		return nil, field.InvalidLength("cubic extension needs a multiple of 3 base elements, got %d", len(elements))
	}
	out := make([]Cubic[B], len(elements)/3)
	for i := range out {
		out[i] = NewCubic(elements[3*i], elements[3*i+1], elements[3*i+2])
	}
	return out, nil
}

// AsBaseElementsQuadratic is AsBaseElements for Quadratic[B].
func AsBaseElementsQuadratic[B Base[B]](xs []Quadratic[B]) []B {
	if len(xs) == 0 {
		return nil
	}
	out := make([]B, 0, len(xs)*2)
	for _, x := range xs {
		out = append(out, x.c[0], x.c[1])
	}
	return out
}

// FromBaseElementsQuadratic is the inverse of AsBaseElementsQuadratic:
// elements must have an even length.
func FromBaseElementsQuadratic[B Base[B]](elements []B) ([]Quadratic[B], error) {
	if len(elements)%2 != 0 {
		return nil, field.InvalidLength("quadratic extension needs an even number of base elements, got %d", len(elements))
	}
	out := make([]Quadratic[B], len(elements)/2)
	for i := range out {
		out[i] = NewQuadratic(elements[2*i], elements[2*i+1])
	}
	return out, nil
}

// ElementsAsBytes flattens a slice of Cubic[B] to its raw byte encoding,
// each element contributing 3*len(B.Bytes()) bytes in c0,c1,c2 order.
func ElementsAsBytes[B Base[B]](xs []Cubic[B]) []byte {
	if len(xs) == 0 {
		return nil
	}
	elemSize := len(xs[0].Bytes())
	out := make([]byte, 0, len(xs)*elemSize)
	for _, x := range xs {
		out = append(out, x.Bytes()...)
	}
	return out
}

// BytesAsElements is the inverse of ElementsAsBytes. elementSize must be the
// exact byte width of one base field element (3*elementSize per Cubic[B]);
// a length that is not an exact multiple yields field.ErrInvalidLength, and
// a zero elementSize yields field.ErrInvalidAlignment.
func BytesAsElements[B Base[B]](b []byte, elementSize int, decode func([]byte) (B, error)) ([]Cubic[B], error) {
	if elementSize <= 0 {
		return nil, field.InvalidAlignment("element size must be positive, got %d", elementSize)
	}
	stride := 3 * elementSize
	if len(b)%stride != 0 {
		return nil, field.InvalidLength("byte buffer length %d is not a multiple of %d", len(b), stride)
	}
	n := len(b) / stride
	out := make([]Cubic[B], n)
	for i := 0; i < n; i++ {
		chunk := b[i*stride : (i+1)*stride]
		c0, err := decode(chunk[0:elementSize])
		if err != nil {
			return nil, err
		}
		c1, err := decode(chunk[elementSize : 2*elementSize])
		if err != nil {
			return nil, err
		}
		c2, err := decode(chunk[2*elementSize : 3*elementSize])
		if err != nil {
			return nil, err
		}
		out[i] = NewCubic(c0, c1, c2)
	}
	return out, nil
}

// ElementsAsBytesQuadratic is ElementsAsBytes for Quadratic[B]: each element
// contributes 2*len(B.Bytes()) bytes in c0,c1 order.
func ElementsAsBytesQuadratic[B Base[B]](xs []Quadratic[B]) []byte {
	if len(xs) == 0 {
		return nil
	}
	elemSize := len(xs[0].Bytes())
	out := make([]byte, 0, len(xs)*elemSize)
	for _, x := range xs {
		out = append(out, x.Bytes()...)
	}
	return out
}

// BytesAsElementsQuadratic is the inverse of ElementsAsBytesQuadratic.
// elementSize must be the exact byte width of one base field element
// (2*elementSize per Quadratic[B]); a length that is not an exact multiple
// yields field.ErrInvalidLength, and a zero elementSize yields
// field.ErrInvalidAlignment.
func BytesAsElementsQuadratic[B Base[B]](b []byte, elementSize int, decode func([]byte) (B, error)) ([]Quadratic[B], error) {
	if elementSize <= 0 {
		return nil, field.InvalidAlignment("element size must be positive, got %d", elementSize)
	}
	stride := 2 * elementSize
	if len(b)%stride != 0 {
		return nil, field.InvalidLength("byte buffer length %d is not a multiple of %d", len(b), stride)
	}
	n := len(b) / stride
	out := make([]Quadratic[B], n)
	for i := 0; i < n; i++ {
		chunk := b[i*stride : (i+1)*stride]
		c0, err := decode(chunk[0:elementSize])
		if err != nil {
			return nil, err
		}
		c1, err := decode(chunk[elementSize : 2*elementSize])
		if err != nil {
			return nil, err
		}
		out[i] = NewQuadratic(c0, c1)
	}
	return out, nil
}

// ZeroedVector allocates n zeroed Cubic[B] elements.
func ZeroedVector[B Base[B]](n int) []Cubic[B] {
	out := make([]Cubic[B], n)
	var zero Cubic[B]
	zero = zero.Zero()
	for i := range out {
		out[i] = zero
	}
	return out
}
