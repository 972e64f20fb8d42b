/*
Package be implements unsigned arithmetic directly on fixed-size big-endian
byte buffers, where buf[0] is the most significant byte.

It is intended for numbers that already live in a wire format and must not be
resized. Operations never allocate; a result that doesn't fit in the
destination is truncated and reported with a boolean.

Passing a destination shorter than an operand is a programming error and
panics.
*/
package be

import (
	"fmt"
	"unsafe"

	"github.com/shabbyrobe/go-bignum/digit"
)

func mustFit(op string, dst int, operands ...int) {
	for _, n := range operands {
		if dst < n {
			panic(fmt.Errorf("be: %s destination has %d bytes, operand has %d", op, dst, n))
		}
	}
}

// AddInPlace adds rhs into dst, aligning the last (least significant) bytes,
// and returns true if a carry is left over past dst[0].
//
// It panics if len(dst) < len(rhs).
func AddInPlace(dst, rhs []byte) (overflow bool) {
	mustFit("add", len(dst), len(rhs))

	var carry byte
	i, j := len(dst)-1, len(rhs)-1
	for ; j >= 0; i, j = i-1, j-1 {
		dst[i], carry = digit.AddCarry(dst[i], rhs[j], carry)
	}
	for ; i >= 0 && carry != 0; i-- {
		dst[i], carry = digit.AddCarry(dst[i], 0, carry)
	}
	return carry != 0
}

// overlaps reports whether x and y share any bytes of memory.
func overlaps(x, y []byte) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}

func mustNotOverlap(op string, dst, rhs []byte) {
	if overlaps(dst, rhs) {
		panic(fmt.Errorf("be: %s destination overlaps rhs", op))
	}
}

// Add sets dst to lhs + rhs. lhs is right-aligned into dst and zero-extended
// on the left first, so dst may be longer than both operands. It returns true
// if the sum does not fit in dst.
//
// dst may be lhs itself, but must not overlap rhs. It panics if dst overlaps
// rhs or is shorter than lhs or rhs.
func Add(dst, lhs, rhs []byte) (overflow bool) {
	mustFit("add", len(dst), len(lhs), len(rhs))
	mustNotOverlap("add", dst, rhs)
	load(dst, lhs)
	return AddInPlace(dst, rhs)
}

// SubInPlace subtracts rhs from dst and returns true if a borrow is left over
// past dst[0], i.e. rhs was larger than dst.
//
// It panics if len(dst) < len(rhs).
func SubInPlace(dst, rhs []byte) (borrowed bool) {
	mustFit("sub", len(dst), len(rhs))

	var borrow byte
	i, j := len(dst)-1, len(rhs)-1
	for ; j >= 0; i, j = i-1, j-1 {
		dst[i], borrow = digit.SubBorrow(dst[i], rhs[j], borrow)
	}
	for ; i >= 0 && borrow != 0; i-- {
		dst[i], borrow = digit.SubBorrow(dst[i], 0, borrow)
	}
	return borrow != 0
}

// Sub sets dst to lhs - rhs, with lhs zero-extended to the length of dst. On
// borrow, dst holds the difference modulo 256^len(dst).
//
// As with Add, dst may be lhs but must not overlap rhs.
func Sub(dst, lhs, rhs []byte) (borrowed bool) {
	mustFit("sub", len(dst), len(lhs), len(rhs))
	mustNotOverlap("sub", dst, rhs)
	load(dst, lhs)
	return SubInPlace(dst, rhs)
}

// load right-aligns src into dst and zeroes the leading bytes. src and dst
// may overlap.
func load(dst, src []byte) {
	delta := len(dst) - len(src)
	copy(dst[delta:], src)
	for i := 0; i < delta; i++ {
		dst[i] = 0
	}
}

// Compare compares the values of lhs and rhs. Leading zero bytes are
// ignored, so buffers of different lengths holding the same value are equal.
// Two empty buffers are equal.
//
// The result is -1 if lhs < rhs, 0 if lhs == rhs and +1 if lhs > rhs.
func Compare(lhs, rhs []byte) int {
	lhs, rhs = trim(lhs), trim(rhs)
	if len(lhs) < len(rhs) {
		return -1
	} else if len(lhs) > len(rhs) {
		return 1
	}
	for i := range lhs {
		if lhs[i] < rhs[i] {
			return -1
		} else if lhs[i] > rhs[i] {
			return 1
		}
	}
	return 0
}

func trim(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}
