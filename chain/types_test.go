package chain

import (
	"math/big"
	"testing"
)

func TestValueFromUint64_RoundTrip(t *testing.T) {
	tests := []uint64{0, 1, 255, 1 << 32, ^uint64(0)}
	for _, v := range tests {
		got := ValueFromUint64(v).Big()
		if got.Uint64() != v || !got.IsUint64() {
			t.Fatalf("ValueFromUint64(%d).Big() = %s", v, got)
		}
	}
}

func TestValue_CheckedAdd_OkAndOverflow(t *testing.T) {
	a := ValueFromUint64(10)
	b := ValueFromUint64(20)
	sum, ok := CheckedAdd(a, b)
	if !ok || sum.Big().Uint64() != 30 {
		t.Fatalf("CheckedAdd(10,20) = %v, %v", sum.Big(), ok)
	}

	max128, _ := valueFromBig(maxValueBig)
	if _, ok := CheckedAdd(max128, ValueFromUint64(1)); ok {
		t.Fatalf("CheckedAdd overflow past 128 bits unexpectedly succeeded")
	}
}

func TestValue_CheckedSub_OkAndUnderflow(t *testing.T) {
	a := ValueFromUint64(20)
	b := ValueFromUint64(5)
	diff, ok := CheckedSub(a, b)
	if !ok || diff.Big().Uint64() != 15 {
		t.Fatalf("CheckedSub(20,5) = %v, %v", diff.Big(), ok)
	}
	if _, ok := CheckedSub(b, a); ok {
		t.Fatalf("CheckedSub(5,20) unexpectedly succeeded")
	}
}

func TestValue_Cmp(t *testing.T) {
	low := ValueFromUint64(1)
	high := ValueFromUint64(2)
	if low.Cmp(high) >= 0 {
		t.Fatalf("low.Cmp(high) = %d, want negative", low.Cmp(high))
	}
	if high.Cmp(low) <= 0 {
		t.Fatalf("high.Cmp(low) = %d, want positive", high.Cmp(low))
	}
	if low.Cmp(low) != 0 {
		t.Fatalf("low.Cmp(low) = %d, want 0", low.Cmp(low))
	}
}

func TestValue_IsZero(t *testing.T) {
	if !ZeroValue.IsZero() {
		t.Fatalf("ZeroValue.IsZero() = false")
	}
	if ValueFromUint64(1).IsZero() {
		t.Fatalf("ValueFromUint64(1).IsZero() = true")
	}
}

func TestValue_SaturatingUint64(t *testing.T) {
	over := new(big.Int).Lsh(big.NewInt(1), 100)
	v, ok := valueFromBig(over)
	if !ok {
		t.Fatalf("valueFromBig(2^100) rejected, want accepted (fits in 128 bits)")
	}
	if got := v.SaturatingUint64(); got != ^uint64(0) {
		t.Fatalf("SaturatingUint64() = %d, want max uint64", got)
	}
	if got := ValueFromUint64(42).SaturatingUint64(); got != 42 {
		t.Fatalf("SaturatingUint64() = %d, want 42", got)
	}
}

func TestOutput_Equal(t *testing.T) {
	pub := PubKey{1, 2, 3}
	a := Output{Value: ValueFromUint64(5), PubKey: pub}
	b := Output{Value: ValueFromUint64(5), PubKey: pub}
	c := Output{Value: ValueFromUint64(6), PubKey: pub}
	if !a.Equal(b) {
		t.Fatalf("identical outputs not equal")
	}
	if a.Equal(c) {
		t.Fatalf("differing outputs reported equal")
	}
}
