package be

import "github.com/shabbyrobe/go-bignum/digit"

// MulDigitAccumulate adds a*b into dst, aligning the least significant bytes,
// and returns true if any non-zero part of the result fell off the front of
// dst. dst keeps the truncated sum in that case.
func MulDigitAccumulate(dst, a []byte, b byte) (overflow bool) {
	return mulAddByte(dst, a, b, 0)
}

// MulAccumulate adds lhs*rhs into dst using schoolbook multiplication and
// returns true if the result does not fit. dst must not overlap lhs or rhs.
func MulAccumulate(dst, lhs, rhs []byte) (overflow bool) {
	for i := len(rhs) - 1; i >= 0; i-- {
		if rhs[i] == 0 {
			continue
		}
		if mulAddByte(dst, lhs, rhs[i], len(rhs)-1-i) {
			overflow = true
		}
	}
	return overflow
}

// Mul sets dst to lhs*rhs and returns true if the product does not fit.
func Mul(dst, lhs, rhs []byte) (overflow bool) {
	for i := range dst {
		dst[i] = 0
	}
	return MulAccumulate(dst, lhs, rhs)
}

// mulAddByte adds a*b*256^shift into dst.
func mulAddByte(dst, a []byte, b byte, shift int) (truncated bool) {
	if b == 0 {
		return false
	}

	var carry byte
	j := len(dst) - 1 - shift
	for k := len(a) - 1; k >= 0; k, j = k-1, j-1 {
		hi, lo := digit.MulParts(a[k], b)

		var c byte
		lo, c = digit.AddCarry(lo, carry, 0)
		hi += c
		if j >= 0 {
			lo, c = digit.AddCarry(lo, dst[j], 0)
			hi += c
			dst[j] = lo
		} else if lo != 0 {
			truncated = true
		}
		carry = hi
	}

	for ; carry != 0 && j >= 0; j-- {
		dst[j], carry = digit.AddCarry(dst[j], carry, 0)
	}
	return truncated || carry != 0
}
