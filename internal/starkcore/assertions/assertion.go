// Package assertions implements the boundary/value-constraint model used to
// pin down cells of an execution trace: single-step, periodic and sequence
// assertions, their validation against a candidate trace shape, and their
// ordering and overlap relations.
//
// Structurally grounded on the per-register boundary modeling in
// internal/vybium-starks-vm/protocols/constraints.go (which hand-writes one
// struct per constraint kind with a closure evaluator), generalized here to
// a single three-kind record, generic over whichever base field the
// trace's registers live in.
package assertions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vybium/starkcore/internal/starkcore/field"
	"github.com/vybium/starkcore/internal/starkcore/utils"
)

// Assertion is a value constraint against one register (column) of an
// execution trace. stride == 0 denotes a Single assertion; otherwise stride
// is a power of two >= 2 and len(values) determines Periodic (1 value) vs
// Sequence (more than 1, itself a power of two).
type Assertion[E field.Element[E]] struct {
	register  int
	firstStep int
	stride    int
	values    []E
}

// Single constructs a one-step assertion: register must equal value at
// exactly step `step`.
func Single[E field.Element[E]](register, step int, value E) Assertion[E] {
	return Assertion[E]{register: register, firstStep: step, stride: 0, values: []E{value}}
}

// Periodic constructs an assertion that register equals value at every
// step congruent to firstStep modulo stride. Panics (fatal, a programming
// error in the AIR description) if stride is not a power of two >= 2 or if
// firstStep >= stride.
func Periodic[E field.Element[E]](register, firstStep, stride int, value E) Assertion[E] {
	validateStride(stride, firstStep)
	return Assertion[E]{register: register, firstStep: firstStep, stride: stride, values: []E{value}}
}

// Sequence constructs an assertion that register equals values[i] at step
// firstStep + i*stride, for each i. values must be non-empty with a
// power-of-two length; stride must pass the same validation as Periodic.
// If values has length 1, stride is renormalized to 0, collapsing the
// result to a Single assertion (same record shape, different derived
// kind). Panics on any construction failure.
func Sequence[E field.Element[E]](register, firstStep, stride int, values []E) Assertion[E] {
	if len(values) == 0 {
		panic("assertions: sequence requires at least one value")
	}
	if !utils.IsPowerOfTwo(len(values)) {
		panic(fmt.Sprintf("assertions: sequence value count %d is not a power of two", len(values)))
	}
	validateStride(stride, firstStep)
	if len(values) == 1 {
		stride = 0
	}
	return Assertion[E]{register: register, firstStep: firstStep, stride: stride, values: values}
}

func validateStride(stride, firstStep int) {
	if stride < 2 || !utils.IsPowerOfTwo(stride) {
		panic(fmt.Sprintf("assertions: stride %d must be a power of two >= 2", stride))
	}
	if firstStep >= stride {
		panic(fmt.Sprintf("assertions: first_step %d must be < stride %d", firstStep, stride))
	}
}

func (a Assertion[E]) Register() int    { return a.register }
func (a Assertion[E]) FirstStep() int   { return a.firstStep }
func (a Assertion[E]) Stride() int      { return a.stride }
func (a Assertion[E]) Values() []E      { return a.values }

func (a Assertion[E]) IsSingle() bool   { return a.stride == 0 }
func (a Assertion[E]) IsPeriodic() bool { return a.stride > 0 && len(a.values) == 1 }
func (a Assertion[E]) IsSequence() bool { return len(a.values) > 1 }

// ValidateTraceWidth reports whether this assertion's register fits inside
// a trace with w columns.
func (a Assertion[E]) ValidateTraceWidth(w int) error {
	if a.register >= w {
		return traceWidthTooShort(a.register, w)
	}
	return nil
}

// ValidateTraceLength reports whether this assertion's steps fit inside a
// trace of length L (which must itself be a power of two).
func (a Assertion[E]) ValidateTraceLength(L int) error {
	if !utils.IsPowerOfTwo(L) {
		return traceLengthNotPowerOfTwo(L)
	}
	switch {
	case a.IsSingle():
		if a.firstStep >= L {
			return traceLengthTooShort(utils.NextPowerOfTwo(a.firstStep+1), L)
		}
	case a.IsPeriodic():
		if a.stride > L {
			return traceLengthTooShort(a.stride, L)
		}
	default:
		expected := len(a.values) * a.stride
		if expected != L {
			return traceLengthNotExact(expected, L)
		}
	}
	return nil
}

// Apply invokes f(step, value) for every step this assertion covers in a
// trace of length L, in ascending step order. Returns the
// ValidateTraceLength error instead of calling f if L is incompatible.
func (a Assertion[E]) Apply(L int, f func(step int, value E)) error {
	if err := a.ValidateTraceLength(L); err != nil {
		return err
	}
	switch {
	case a.IsSingle():
		f(a.firstStep, a.values[0])
	case a.IsPeriodic():
		n := L / a.stride
		for i := 0; i < n; i++ {
			f(a.firstStep+i*a.stride, a.values[0])
		}
	default:
		for i, v := range a.values {
			f(a.firstStep+i*a.stride, v)
		}
	}
	return nil
}

// GetNumSteps returns the number of steps Apply would invoke f for, given
// trace length L.
func (a Assertion[E]) GetNumSteps(L int) (int, error) {
	if err := a.ValidateTraceLength(L); err != nil {
		return 0, err
	}
	switch {
	case a.IsSingle():
		return 1, nil
	case a.IsPeriodic():
		return L / a.stride, nil
	default:
		return len(a.values), nil
	}
}

// OverlapsWith reports whether this assertion and other ever require a
// value at the same (register, step).
func (a Assertion[E]) OverlapsWith(other Assertion[E]) bool {
	if a.register != other.register {
		return false
	}
	if a.firstStep == other.firstStep {
		return true
	}
	if a.stride != 0 && other.stride != 0 && a.stride == other.stride {
		return false
	}

	left, leftStride, right, rightStride := a.firstStep, a.stride, other.firstStep, other.stride
	if left > right {
		left, leftStride, right, rightStride = right, rightStride, left, leftStride
	}

	if leftStride == 0 {
		return false
	}
	if rightStride == 0 || leftStride < rightStride {
		return (right-left)%leftStride == 0
	}
	return false
}

// Compare implements the total order (stride, first_step, register)
// ascending, used to canonicalize assertion collections.
func (a Assertion[E]) Compare(other Assertion[E]) int {
	if a.stride != other.stride {
		return cmpInt(a.stride, other.stride)
	}
	if a.firstStep != other.firstStep {
		return cmpInt(a.firstStep, other.firstStep)
	}
	return cmpInt(a.register, other.register)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Sort orders a slice of assertions by the (stride, first_step, register)
// total order, in place. The sort is stable.
func Sort[E field.Element[E]](as []Assertion[E]) {
	sort.SliceStable(as, func(i, j int) bool { return as[i].Compare(as[j]) < 0 })
}

func (a Assertion[E]) String() string {
	switch {
	case a.IsSingle():
		return fmt.Sprintf("(register=%d, step=%d, value=%s)", a.register, a.firstStep, a.values[0].String())
	case a.IsPeriodic():
		return fmt.Sprintf("(register=%d, steps=[%d, %d, ...], value=%s)",
			a.register, a.firstStep, a.firstStep+a.stride, a.values[0].String())
	default:
		return fmt.Sprintf("(register=%d, steps=[%d, %d, ...], values=%s)",
			a.register, a.firstStep, a.firstStep+a.stride, formatValues(a.values))
	}
}

func formatValues[E field.Element[E]](values []E) string {
	if len(values) <= 2 {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = v.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("[%s, %s, ...]", values[0].String(), values[1].String())
}
