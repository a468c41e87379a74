package assertions

import (
	"errors"
	"testing"

	"github.com/vybium/starkcore/internal/starkcore/field/f64"
)

// S1 — Single assertion on a length-16 trace.
func TestSingleAssertion(t *testing.T) {
	a := Single(2, 5, f64.New(7))

	if err := a.ValidateTraceWidth(4); err != nil {
		t.Errorf("ValidateTraceWidth(4) = %v, expected nil", err)
	}
	if err := a.ValidateTraceWidth(2); err == nil {
		t.Error("ValidateTraceWidth(2) should fail: register 2 >= width 2")
	} else {
		var asErr *Error
		if !errors.As(err, &asErr) || asErr.Code != ErrTraceWidthTooShort {
			t.Errorf("expected ErrTraceWidthTooShort, got %v", err)
		}
	}

	if err := a.ValidateTraceLength(16); err != nil {
		t.Errorf("ValidateTraceLength(16) = %v, expected nil", err)
	}
	if err := a.ValidateTraceLength(15); err == nil {
		t.Error("ValidateTraceLength(15) should fail: not a power of two")
	} else {
		var asErr *Error
		if !errors.As(err, &asErr) || asErr.Code != ErrTraceLengthNotPowerOfTwo {
			t.Errorf("expected ErrTraceLengthNotPowerOfTwo, got %v", err)
		}
	}

	calls := 0
	err := a.Apply(16, func(step int, value f64.Element) {
		calls++
		if step != 5 || !value.Equal(f64.New(7)) {
			t.Errorf("Apply invoked with (%d, %v), expected (5, 7)", step, value)
		}
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if calls != 1 {
		t.Errorf("Apply called f %d times, expected 1", calls)
	}

	n, err := a.GetNumSteps(16)
	if err != nil || n != 1 {
		t.Errorf("GetNumSteps(16) = (%d, %v), expected (1, nil)", n, err)
	}
}

// S2 — Periodic assertion.
func TestPeriodicAssertion(t *testing.T) {
	a := Periodic(0, 1, 8, f64.New(42))

	var steps []int
	err := a.Apply(32, func(step int, value f64.Element) {
		steps = append(steps, step)
		if !value.Equal(f64.New(42)) {
			t.Errorf("unexpected value %v at step %d", value, step)
		}
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []int{1, 9, 17, 25}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(steps), len(want))
	}
	for i, s := range steps {
		if s != want[i] {
			t.Errorf("step[%d] = %d, want %d", i, s, want[i])
		}
	}

	if n, err := a.GetNumSteps(32); err != nil || n != 4 {
		t.Errorf("GetNumSteps(32) = (%d, %v), expected (4, nil)", n, err)
	}
}

func TestPeriodicConstructionFailures(t *testing.T) {
	t.Run("StrideNotPowerOfTwo", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for non-power-of-two stride")
			}
		}()
		Periodic(0, 1, 6, f64.New(42))
	})

	t.Run("FirstStepNotLessThanStride", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic when first_step >= stride")
			}
		}()
		Periodic(0, 8, 8, f64.New(42))
	})
}

// S3 — Sequence assertion.
func TestSequenceAssertion(t *testing.T) {
	a := Sequence(1, 0, 4, []f64.Element{f64.New(10), f64.New(20), f64.New(30), f64.New(40)})

	if err := a.ValidateTraceLength(16); err != nil {
		t.Errorf("ValidateTraceLength(16) = %v, expected nil", err)
	}
	if err := a.ValidateTraceLength(8); err == nil {
		t.Error("ValidateTraceLength(8) should fail: 4*4 != 8")
	} else {
		var asErr *Error
		if !errors.As(err, &asErr) || asErr.Code != ErrTraceLengthNotExact {
			t.Errorf("expected ErrTraceLengthNotExact, got %v", err)
		}
	}

	type step struct {
		at  int
		val uint64
	}
	var got []step
	err := a.Apply(16, func(s int, v f64.Element) {
		got = append(got, step{at: s, val: v.Value()})
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := []step{{0, 10}, {4, 20}, {8, 30}, {12, 40}}
	if len(got) != len(want) {
		t.Fatalf("got %d steps, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSequenceOfLengthOneCollapsesToSingle(t *testing.T) {
	a := Sequence(1, 0, 4, []f64.Element{f64.New(7)})
	if !a.IsSingle() {
		t.Errorf("sequence of length 1 should collapse to Single, got stride=%d", a.Stride())
	}
	if a.FirstStep() != 0 {
		t.Errorf("FirstStep() = %d, expected 0", a.FirstStep())
	}
}

func TestOverlapsWith(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Assertion[f64.Element]
		expected bool
	}{
		{"different registers", Single(0, 5, f64.New(1)), Single(1, 5, f64.New(1)), false},
		{"same register same step", Single(0, 5, f64.New(1)), Single(0, 5, f64.New(2)), true},
		{"single vs single distinct steps", Single(0, 5, f64.New(1)), Single(0, 6, f64.New(1)), false},
		{"equal strides distinct phase", Periodic(0, 1, 8, f64.New(1)), Periodic(0, 3, 8, f64.New(1)), false},
		{"single inside periodic progression", Single(0, 9, f64.New(1)), Periodic(0, 1, 8, f64.New(1)), true},
		{"single outside periodic progression", Single(0, 10, f64.New(1)), Periodic(0, 1, 8, f64.New(1)), false},
		{"finer stride reaches coarser phase", Periodic(0, 1, 4, f64.New(1)), Periodic(0, 5, 8, f64.New(1)), true},
		{"coarser stride cannot reach finer phase", Periodic(0, 1, 8, f64.New(1)), Periodic(0, 3, 4, f64.New(1)), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.OverlapsWith(c.b); got != c.expected {
				t.Errorf("%v.OverlapsWith(%v) = %v, expected %v", c.a, c.b, got, c.expected)
			}
			if got := c.b.OverlapsWith(c.a); got != c.expected {
				t.Errorf("symmetric case: %v.OverlapsWith(%v) = %v, expected %v", c.b, c.a, got, c.expected)
			}
		})
	}
}

func TestSortTotalOrder(t *testing.T) {
	as := []Assertion[f64.Element]{
		Single(3, 5, f64.New(1)),
		Periodic(0, 1, 8, f64.New(1)),
		Single(1, 5, f64.New(1)),
		Single(2, 2, f64.New(1)),
	}
	Sort(as)

	for i := 1; i < len(as); i++ {
		if as[i-1].Compare(as[i]) > 0 {
			t.Errorf("not sorted at index %d: %v came before %v", i, as[i-1], as[i])
		}
	}
	// Single(2, 2, ...) has first_step 2, Single(1,5,...) has first_step 5,
	// Single(3,5,...) first_step 5 register 3 -- stride ties broken by
	// first_step then register.
	if as[0].FirstStep() != 2 {
		t.Errorf("expected first_step 2 to sort first among stride-0 entries, got %d", as[0].FirstStep())
	}
}

func TestDisplay(t *testing.T) {
	single := Single(2, 5, f64.New(7))
	if got, want := single.String(), "(register=2, step=5, value=7)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
