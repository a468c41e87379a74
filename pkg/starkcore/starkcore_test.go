package starkcore

import "testing"

func TestPublicFieldConstructors(t *testing.T) {
	a := NewF64(7)
	b := NewF64(13)
	if sum := a.Add(b); !sum.Equal(NewF64(20)) {
		t.Errorf("NewF64 Add failed: got %v", sum)
	}

	if prod := NewF62(6).Mul(NewF62(7)); !prod.Equal(NewF62(42)) {
		t.Errorf("NewF62 Mul failed: got %v", prod)
	}
	if prod := NewF128(6).Mul(NewF128(7)); !prod.Equal(NewF128(42)) {
		t.Errorf("NewF128 Mul failed: got %v", prod)
	}
	if prod := NewF252(6).Mul(NewF252(7)); !prod.Equal(NewF252(42)) {
		t.Errorf("NewF252 Mul failed: got %v", prod)
	}
}

func TestPublicExtensionConstructors(t *testing.T) {
	x := NewCubic(NewF64(1), NewF64(2), NewF64(3))
	inv := x.Inv()
	if prod := x.Mul(inv); !prod.IsOne() {
		t.Errorf("Cubic inverse failed: got %v", prod)
	}

	q := NewQuadraticConst(NewF64(9))
	base, ok := q.Unlift()
	if !ok || !base.Equal(NewF64(9)) {
		t.Errorf("Quadratic lift round trip failed: got (%v, %v)", base, ok)
	}
}

func TestPublicAssertionConstructors(t *testing.T) {
	a := Single(0, 5, NewF64(1))
	b := Periodic(0, 1, 8, NewF64(1))
	c := Sequence(1, 0, 4, []F64{NewF64(10), NewF64(20), NewF64(30), NewF64(40)})

	as := []Assertion[F64]{c, b, a}
	SortAssertions(as)
	for i := 1; i < len(as); i++ {
		if as[i-1].Compare(as[i]) > 0 {
			t.Errorf("assertions not sorted at index %d", i)
		}
	}

	if !Single(0, 9, NewF64(1)).OverlapsWith(Periodic(0, 1, 8, NewF64(1))) {
		t.Error("expected overlap between Single(0,9) and Periodic(0,1,8)")
	}
}

func TestPublicTableConstructor(t *testing.T) {
	main := []ColumnVector[F64]{
		{NewF64(1), NewF64(0), NewF64(0), NewF64(0)},
	}
	table := NewTable(main, func(b F64) Cubic[F64] { return NewCubicConst(b) })

	z := NewCubic(NewF64(5), NewF64(0), NewF64(0))
	row := table.EvaluateAt(z)
	if len(row) != 1 || !row[0].Equal(NewCubicConst(NewF64(1))) {
		t.Errorf("EvaluateAt of constant column = %v, want [1]", row)
	}
}
