package bignum

import (
	"github.com/shabbyrobe/go-bignum/digit"
)

// The engine functions below do not allocate and do not retain their
// arguments. Only the *Resize variants change the length of a number.
//
// Operands are type parameters rather than interface values, so each storage
// type gets its own instantiation. Fixed[D] is a slice type and its Digit and
// SetDigit calls are resolved at compile time.

// AddAccumulate adds src into dst in place, aligning the least significant
// digits, and returns true if a carry is left over past the most significant
// digit of dst (the true sum needs one more digit than dst has).
//
// It panics if dst.Len() < src.Len().
func AddAccumulate[D digit.Unsigned, M MutNumber[D], S Number[D]](dst M, src S) (overflow bool) {
	dl, sl := dst.Len(), src.Len()
	if dl < sl {
		panic(errShort("add", dl, sl))
	}

	var carry D
	i := 0
	for ; i < sl; i++ {
		var s D
		s, carry = digit.AddCarry(dst.Digit(i), src.Digit(i), carry)
		dst.SetDigit(i, s)
	}
	for ; i < dl && carry != 0; i++ {
		var s D
		s, carry = digit.AddCarry(dst.Digit(i), 0, carry)
		dst.SetDigit(i, s)
	}
	return carry != 0
}

// SubAccumulate subtracts src from dst in place and returns true if a borrow
// is left over past the most significant digit of dst, meaning src was larger
// than dst. In that case dst holds the difference modulo 2^(Bits*dst.Len()).
//
// It panics if dst.Len() < src.Len().
func SubAccumulate[D digit.Unsigned, M MutNumber[D], S Number[D]](dst M, src S) (borrowed bool) {
	dl, sl := dst.Len(), src.Len()
	if dl < sl {
		panic(errShort("sub", dl, sl))
	}

	var borrow D
	i := 0
	for ; i < sl; i++ {
		var d D
		d, borrow = digit.SubBorrow(dst.Digit(i), src.Digit(i), borrow)
		dst.SetDigit(i, d)
	}
	for ; i < dl && borrow != 0; i++ {
		var d D
		d, borrow = digit.SubBorrow(dst.Digit(i), 0, borrow)
		dst.SetDigit(i, d)
	}
	return borrow != 0
}

// mulAddDigit adds lhs*d, shifted up by offset digits, into dst. Digits of
// the product that land past the end of dst are dropped; the return value
// reports whether anything non-zero was dropped.
func mulAddDigit[D digit.Unsigned, M MutNumber[D], S Number[D]](dst M, lhs S, d D, offset int) (truncated bool) {
	dl, ll := dst.Len(), lhs.Len()

	var carry D
	j := offset
	for k := 0; k < ll; k, j = k+1, j+1 {
		hi, lo := digit.MulParts(lhs.Digit(k), d)

		// lhs[k]*d + carry + dst[j] < 2^(2*Bits), so hi can't wrap.
		var c D
		lo, c = digit.AddCarry(lo, carry, 0)
		hi += c
		if j < dl {
			lo, c = digit.AddCarry(lo, dst.Digit(j), 0)
			hi += c
			dst.SetDigit(j, lo)
		} else if lo != 0 {
			truncated = true
		}
		carry = hi
	}

	for ; carry != 0 && j < dl; j++ {
		var s D
		s, carry = digit.AddCarry(dst.Digit(j), carry, 0)
		dst.SetDigit(j, s)
	}
	return truncated || carry != 0
}

// MulAccumulate adds lhs*rhs into dst using schoolbook multiplication and
// returns true if any part of the result fell outside dst. When that happens
// dst holds the sum truncated to its length.
//
// dst must not share storage with lhs or rhs.
func MulAccumulate[D digit.Unsigned, M MutNumber[D], L Number[D], R Number[D]](dst M, lhs L, rhs R) (overflow bool) {
	for i, rl := 0, rhs.Len(); i < rl; i++ {
		d := rhs.Digit(i)
		if d == 0 {
			continue
		}
		if mulAddDigit[D](dst, lhs, d, i) {
			overflow = true
		}
	}
	return overflow
}

// ShiftLeft shifts dst left by n bits without changing its length. Bits
// shifted past the most significant digit are lost.
//
// ShiftLeft returns true if n is at least the bit capacity of dst, i.e.
// n/Bits >= dst.Len(). In that case the shift count wraps modulo the bit
// capacity, matching what a native fixed-width shift does.
func ShiftLeft[D digit.Unsigned, M MutNumber[D]](dst M, n uint) (overflow bool) {
	l := dst.Len()
	w := digit.Bits[D]()
	overflow = n/w >= uint(l)
	if l == 0 {
		return overflow
	}

	n %= uint(l) * w
	digits, bits := int(n/w), n%w

	if digits > 0 {
		for i := l - 1; i >= digits; i-- {
			dst.SetDigit(i, dst.Digit(i-digits))
		}
		for i := 0; i < digits; i++ {
			dst.SetDigit(i, 0)
		}
	}

	if bits > 0 {
		for i := l - 1; i > 0; i-- {
			dst.SetDigit(i, dst.Digit(i)<<bits|dst.Digit(i-1)>>(w-bits))
		}
		dst.SetDigit(0, dst.Digit(0)<<bits)
	}
	return overflow
}

// ShiftRight shifts dst right by n bits without changing its length. Vacated
// high digits are zero-filled and shifting by the bit capacity or more clears
// dst.
//
// A right shift can't grow the value, so there is no overflow. Instead
// ShiftRight returns true if any set bit was shifted out, i.e. the result is
// not exactly dst / 2^n.
func ShiftRight[D digit.Unsigned, M MutNumber[D]](dst M, n uint) (inexact bool) {
	l := dst.Len()
	w := digit.Bits[D]()
	if n == 0 || l == 0 {
		return false
	}

	if n/w >= uint(l) {
		for i := 0; i < l; i++ {
			if dst.Digit(i) != 0 {
				inexact = true
			}
			dst.SetDigit(i, 0)
		}
		return inexact
	}

	digits, bits := int(n/w), n%w
	for i := 0; i < digits; i++ {
		if dst.Digit(i) != 0 {
			inexact = true
		}
	}
	if bits > 0 && dst.Digit(digits)<<(w-bits) != 0 {
		inexact = true
	}

	if digits > 0 {
		for i := 0; i < l-digits; i++ {
			dst.SetDigit(i, dst.Digit(i+digits))
		}
		for i := l - digits; i < l; i++ {
			dst.SetDigit(i, 0)
		}
	}

	if bits > 0 {
		last := l - digits - 1
		for i := 0; i < last; i++ {
			dst.SetDigit(i, dst.Digit(i)>>bits|dst.Digit(i+1)<<(w-bits))
		}
		dst.SetDigit(last, dst.Digit(last)>>bits)
	}
	return inexact
}

// AddResize adds src into dst, growing dst first so it is at least as long
// as src and then by one more digit if the sum carries out. The result always
// fits.
func AddResize[D digit.Unsigned, M ResizableNumber[D], S Number[D]](dst M, src S) {
	if sl := src.Len(); dst.Len() < sl {
		dst.Resize(sl)
	}
	if AddAccumulate[D](dst, src) {
		l := dst.Len()
		dst.Resize(l + 1)
		dst.SetDigit(l, 1)
	}
}

// SubResize subtracts src from dst, growing dst first so it is at least as
// long as src. It returns true if src was larger than dst; the number is not
// grown further to absorb the borrow since an unsigned magnitude can't
// represent a negative result.
func SubResize[D digit.Unsigned, M ResizableNumber[D], S Number[D]](dst M, src S) (borrowed bool) {
	if sl := src.Len(); dst.Len() < sl {
		dst.Resize(sl)
	}
	return SubAccumulate[D](dst, src)
}

// MulResize adds lhs*rhs into dst, first growing dst to at least
// SignificantLen(lhs)+SignificantLen(rhs) digits, which holds any product of
// the significant digits. The growth happens even when an operand is zero. If
// the product is non-zero and dst already holds a non-zero value, one more
// digit is reserved for the carry of the sum.
//
// dst must not share storage with lhs or rhs.
func MulResize[D digit.Unsigned, M ResizableNumber[D], L Number[D], R Number[D]](dst M, lhs L, rhs R) {
	ll, rl := SignificantLen[D](lhs), SignificantLen[D](rhs)
	need := ll + rl
	if ll > 0 && rl > 0 {
		if dl := SignificantLen[D](dst); dl > 0 {
			need = max(need, dl) + 1
		}
	}
	if dst.Len() < need {
		dst.Resize(need)
	}
	if ll == 0 || rl == 0 {
		return
	}

	if MulAccumulate[D](dst, lhs, rhs) {
		panic(errInvariant("mul"))
	}
}
