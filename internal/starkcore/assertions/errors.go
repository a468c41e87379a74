package assertions

import "fmt"

// ErrorCode identifies why an assertion failed validation against a trace's
// shape. These are recoverable: validation is called before a trace is
// accepted by the surrounding AIR layer, not on a hot path.
type ErrorCode int

const (
	// ErrTraceWidthTooShort: the assertion's register is out of bounds for
	// the trace's column count.
	ErrTraceWidthTooShort ErrorCode = iota
	// ErrTraceLengthNotPowerOfTwo: the proposed trace length is not a power
	// of two.
	ErrTraceLengthNotPowerOfTwo
	// ErrTraceLengthTooShort: a Single or Periodic assertion's steps do not
	// fit inside the proposed trace length.
	ErrTraceLengthTooShort
	// ErrTraceLengthNotExact: a Sequence assertion's values*stride does not
	// equal the proposed trace length exactly.
	ErrTraceLengthNotExact
)

func (c ErrorCode) String() string {
	switch c {
	case ErrTraceWidthTooShort:
		return "TraceWidthTooShort"
	case ErrTraceLengthNotPowerOfTwo:
		return "TraceLengthNotPowerOfTwo"
	case ErrTraceLengthTooShort:
		return "TraceLengthTooShort"
	case ErrTraceLengthNotExact:
		return "TraceLengthNotExact"
	default:
		return "UnknownAssertionError"
	}
}

// Error is the recoverable error type returned by ValidateTraceWidth and
// ValidateTraceLength. Register, Got and Expected are populated as relevant
// to Code; fields left at zero are simply unused for that code.
type Error struct {
	Code     ErrorCode
	Register int
	Expected int
	Got      int
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrTraceWidthTooShort:
		return fmt.Sprintf("assertions: TraceWidthTooShort(register=%d, width=%d)", e.Register, e.Got)
	case ErrTraceLengthNotPowerOfTwo:
		return fmt.Sprintf("assertions: TraceLengthNotPowerOfTwo(length=%d)", e.Got)
	case ErrTraceLengthTooShort:
		return fmt.Sprintf("assertions: TraceLengthTooShort(expected>=%d, length=%d)", e.Expected, e.Got)
	case ErrTraceLengthNotExact:
		return fmt.Sprintf("assertions: TraceLengthNotExact(expected=%d, length=%d)", e.Expected, e.Got)
	default:
		return fmt.Sprintf("assertions: %s", e.Code)
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func traceWidthTooShort(register, width int) *Error {
	return &Error{Code: ErrTraceWidthTooShort, Register: register, Got: width}
}

func traceLengthNotPowerOfTwo(length int) *Error {
	return &Error{Code: ErrTraceLengthNotPowerOfTwo, Got: length}
}

func traceLengthTooShort(expected, length int) *Error {
	return &Error{Code: ErrTraceLengthTooShort, Expected: expected, Got: length}
}

func traceLengthNotExact(expected, length int) *Error {
	return &Error{Code: ErrTraceLengthNotExact, Expected: expected, Got: length}
}
