package digit

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Unsigned is the set of types that can serve as a digit of an unsigned
// multi-precision number.
type Unsigned = constraints.Unsigned

// Bits returns the width of D in bits.
func Bits[D constraints.Integer]() uint {
	var d D
	return uint(unsafe.Sizeof(d)) * 8
}

func Max[D Unsigned]() D { return ^D(0) }

func Zero[D Unsigned]() D { return 0 }

func One[D Unsigned]() D { return 1 }

func WrappingAdd[D Unsigned](a, b D) D { return a + b }
func WrappingSub[D Unsigned](a, b D) D { return a - b }
func WrappingMul[D Unsigned](a, b D) D { return a * b }
func WrappingDiv[D Unsigned](a, b D) D { return a / b }
func WrappingRem[D Unsigned](a, b D) D { return a % b }

// WrappingDivEuclid is identical to WrappingDiv for unsigned digits.
func WrappingDivEuclid[D Unsigned](a, b D) D { return a / b }

// WrappingRemEuclid is identical to WrappingRem for unsigned digits.
func WrappingRemEuclid[D Unsigned](a, b D) D { return a % b }

// WrappingShl shifts a left by n modulo the width of D.
func WrappingShl[D Unsigned](a D, n uint32) D {
	return a << (uint(n) & (Bits[D]() - 1))
}

// WrappingShr shifts a right by n modulo the width of D.
func WrappingShr[D Unsigned](a D, n uint32) D {
	return a >> (uint(n) & (Bits[D]() - 1))
}

func WrappingPow[D Unsigned](a D, exp uint32) D {
	v, _ := OverflowingPow(a, exp)
	return v
}

func OverflowingAdd[D Unsigned](a, b D) (D, bool) {
	s := a + b
	return s, s < a
}

func OverflowingSub[D Unsigned](a, b D) (D, bool) {
	return a - b, b > a
}

func OverflowingMul[D Unsigned](a, b D) (D, bool) {
	hi, lo := MulParts(a, b)
	return lo, hi != 0
}

// OverflowingDiv never overflows for unsigned digits; it panics if b is zero.
func OverflowingDiv[D Unsigned](a, b D) (D, bool) { return a / b, false }

// OverflowingRem never overflows for unsigned digits; it panics if b is zero.
func OverflowingRem[D Unsigned](a, b D) (D, bool) { return a % b, false }

func OverflowingDivEuclid[D Unsigned](a, b D) (D, bool) { return a / b, false }
func OverflowingRemEuclid[D Unsigned](a, b D) (D, bool) { return a % b, false }

// OverflowingShl returns a shifted left by n modulo the width of D. The
// overflow flag is set if n is not smaller than the width; it says nothing
// about bits that were shifted out.
func OverflowingShl[D Unsigned](a D, n uint32) (D, bool) {
	return WrappingShl(a, n), uint(n) >= Bits[D]()
}

// OverflowingShr is the right shift counterpart of OverflowingShl.
func OverflowingShr[D Unsigned](a D, n uint32) (D, bool) {
	return WrappingShr(a, n), uint(n) >= Bits[D]()
}

// OverflowingPow computes a**exp by repeated squaring, returning the wrapped
// result and whether any intermediate product overflowed.
func OverflowingPow[D Unsigned](a D, exp uint32) (D, bool) {
	var (
		acc      D = 1
		overflow bool
		o        bool
	)
	base := a
	for exp > 0 {
		if exp&1 == 1 {
			acc, o = OverflowingMul(acc, base)
			overflow = overflow || o
		}
		exp >>= 1
		if exp > 0 {
			base, o = OverflowingMul(base, base)
			overflow = overflow || o
		}
	}
	return acc, overflow
}

func CheckedAdd[D Unsigned](a, b D) (D, bool) {
	v, o := OverflowingAdd(a, b)
	if o {
		return 0, false
	}
	return v, true
}

func CheckedSub[D Unsigned](a, b D) (D, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

func CheckedMul[D Unsigned](a, b D) (D, bool) {
	v, o := OverflowingMul(a, b)
	if o {
		return 0, false
	}
	return v, true
}

func CheckedDiv[D Unsigned](a, b D) (D, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

func CheckedRem[D Unsigned](a, b D) (D, bool) {
	if b == 0 {
		return 0, false
	}
	return a % b, true
}

func CheckedDivEuclid[D Unsigned](a, b D) (D, bool) { return CheckedDiv(a, b) }
func CheckedRemEuclid[D Unsigned](a, b D) (D, bool) { return CheckedRem(a, b) }

func CheckedShl[D Unsigned](a D, n uint32) (D, bool) {
	if uint(n) >= Bits[D]() {
		return 0, false
	}
	return a << n, true
}

func CheckedShr[D Unsigned](a D, n uint32) (D, bool) {
	if uint(n) >= Bits[D]() {
		return 0, false
	}
	return a >> n, true
}

func CheckedPow[D Unsigned](a D, exp uint32) (D, bool) {
	v, o := OverflowingPow(a, exp)
	if o {
		return 0, false
	}
	return v, true
}

// MulParts multiplies a by b, returning the upper and lower halves of the
// double-width product.
func MulParts[D Unsigned](a, b D) (hi, lo D) {
	w := Bits[D]()
	if w == 64 {
		h, l := bits.Mul64(uint64(a), uint64(b))
		return D(h), D(l)
	}
	p := uint64(a) * uint64(b)
	return D(p >> w), D(p)
}

// AddCarry returns a + b + carry and the carry out. carry must be 0 or 1.
func AddCarry[D Unsigned](a, b, carry D) (sum, carryOut D) {
	s := a + b
	c1 := s < a
	sum = s + carry
	if c1 || sum < s {
		carryOut = 1
	}
	return sum, carryOut
}

// SubBorrow returns a - b - borrow and the borrow out. borrow must be 0 or 1.
func SubBorrow[D Unsigned](a, b, borrow D) (diff, borrowOut D) {
	d := a - b
	b1 := b > a
	diff = d - borrow
	if b1 || borrow > d {
		borrowOut = 1
	}
	return diff, borrowOut
}
