package f252

import "testing"

// Mirrors vybium-crypto's element_property_test.go: nested deterministic
// loops over small ranges checking the field axioms, rather than a
// third-party property-testing library.
func TestElementProperties(t *testing.T) {
	t.Run("AdditiveIdentity", func(t *testing.T) {
		for i := uint64(0); i < 100; i++ {
			a := NewUint64(i)
			if result := a.Add(Zero()); !result.Equal(a) {
				t.Errorf("%v + 0 != %v", a, a)
			}
		}
	})

	t.Run("MultiplicativeIdentity", func(t *testing.T) {
		for i := uint64(1); i < 100; i++ {
			a := NewUint64(i)
			if result := a.Mul(One()); !result.Equal(a) {
				t.Errorf("%v * 1 != %v", a, a)
			}
		}
	})

	t.Run("AdditiveInverse", func(t *testing.T) {
		for i := uint64(1); i < 100; i++ {
			a := NewUint64(i)
			if result := a.Add(a.Neg()); !result.IsZero() {
				t.Errorf("%v + (-%v) != 0", a, a)
			}
		}
	})

	t.Run("MultiplicativeInverse", func(t *testing.T) {
		for i := uint64(1); i < 100; i++ {
			a := NewUint64(i)
			if result := a.Mul(a.Inv()); !result.IsOne() {
				t.Errorf("%v * %v^-1 != 1", a, a)
			}
		}
	})

	t.Run("Commutativity", func(t *testing.T) {
		for i := uint64(1); i < 50; i++ {
			for j := uint64(1); j < 50; j++ {
				a, b := NewUint64(i), NewUint64(j)
				if !a.Add(b).Equal(b.Add(a)) {
					t.Errorf("%v + %v != %v + %v", a, b, b, a)
				}
				if !a.Mul(b).Equal(b.Mul(a)) {
					t.Errorf("%v * %v != %v * %v", a, b, b, a)
				}
			}
		}
	})

	t.Run("Associativity", func(t *testing.T) {
		for i := uint64(1); i < 20; i++ {
			for j := uint64(1); j < 20; j++ {
				for k := uint64(1); k < 20; k++ {
					a, b, c := NewUint64(i), NewUint64(j), NewUint64(k)
					if !a.Add(b).Add(c).Equal(a.Add(b.Add(c))) {
						t.Errorf("(%v + %v) + %v != %v + (%v + %v)", a, b, c, a, b, c)
					}
					if !a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))) {
						t.Errorf("(%v * %v) * %v != %v * (%v * %v)", a, b, c, a, b, c)
					}
				}
			}
		}
	})

	t.Run("Distributivity", func(t *testing.T) {
		for i := uint64(1); i < 20; i++ {
			for j := uint64(1); j < 20; j++ {
				for k := uint64(1); k < 20; k++ {
					a, b, c := NewUint64(i), NewUint64(j), NewUint64(k)
					left := a.Mul(b.Add(c))
					right := a.Mul(b).Add(a.Mul(c))
					if !left.Equal(right) {
						t.Errorf("%v * (%v + %v) != %v*%v + %v*%v", a, b, c, a, b, a, c)
					}
				}
			}
		}
	})

	t.Run("SerializationRoundTrip", func(t *testing.T) {
		for i := uint64(0); i < 100; i++ {
			a := NewUint64(i)
			decoded, err := FromBytes(a.Bytes())
			if err != nil {
				t.Errorf("FromBytes: %v", err)
				continue
			}
			if !decoded.Equal(a) {
				t.Errorf("round trip failed: %v != %v", decoded, a)
			}
		}
	})
}
