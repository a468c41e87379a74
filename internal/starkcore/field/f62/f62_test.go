package f62

import (
	"math/big"
	"testing"
)

func TestBasicOperations(t *testing.T) {
	a := New(42)
	b := New(13)

	if sum := a.Add(b); !sum.Equal(New(55)) {
		t.Errorf("Add failed: got %v", sum)
	}
	if diff := a.Sub(b); !diff.Equal(New(29)) {
		t.Errorf("Sub failed: got %v", diff)
	}
	if prod := a.Mul(b); !prod.Equal(New(42 * 13)) {
		t.Errorf("Mul failed: got %v", prod)
	}
}

func TestInverse(t *testing.T) {
	a := New(42)
	if prod := a.Mul(a.Inv()); !prod.IsOne() {
		t.Errorf("a * a^-1 = %v, expected 1", prod)
	}
	if z := Zero().Inv(); !z.IsZero() {
		t.Errorf("Inv(0) = %v, expected 0", z)
	}
}

func TestExp(t *testing.T) {
	base := New(3)
	if result := base.Exp(big.NewInt(5)); !result.Equal(New(3 * 3 * 3 * 3 * 3)) {
		t.Errorf("Exp failed: got %v", result)
	}
	if r := New(9).Exp(big.NewInt(0)); !r.IsOne() {
		t.Error("x^0 should equal 1")
	}
}

func TestRoundTripBytes(t *testing.T) {
	a := New(987654321)
	decoded, err := FromBytes(a.Bytes())
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !decoded.Equal(a) {
		t.Errorf("round trip mismatch: got %v, want %v", decoded, a)
	}
}

func TestFromBytesRejectsOutOfRange(t *testing.T) {
	var raw [ElementBytes]byte
	for i := range raw {
		raw[i] = 0xFF
	}
	if _, err := FromBytes(raw[:]); err == nil {
		t.Error("expected error decoding a value >= P")
	}
}

func TestRootOfUnityOrder(t *testing.T) {
	for n := uint32(0); n <= 8; n++ {
		root := RootOfUnity(n)
		order := uint64(1) << n
		if got := root.Exp(new(big.Int).SetUint64(order)); !got.IsOne() {
			t.Errorf("root of unity of order 2^%d did not satisfy g^(2^%d) = 1", n, n)
		}
	}
}

func TestRootOfUnityExceedsTwoAdicityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic requesting root order beyond two-adicity")
		}
	}()
	RootOfUnity(TwoAdicity + 1)
}
