package bignum

import (
	"github.com/shabbyrobe/go-bignum/digit"
)

// Number is a read-only multi-precision unsigned integer made of digits of
// type D. Digits are little-endian: Digit(0) is the least significant.
//
// Digit panics if pos is not in [0, Len()).
type Number[D digit.Unsigned] interface {
	Digit(pos int) D
	Len() int
}

// MutNumber is a Number whose digits can be overwritten in place.
type MutNumber[D digit.Unsigned] interface {
	Number[D]
	SetDigit(pos int, d D)
}

// ResizableNumber is a MutNumber whose length can change.
//
// Resize(n) keeps the n least significant digits if n < Len(), discarding the
// rest as a narrowing integer conversion would. If n > Len(), the new most
// significant digits are zero.
type ResizableNumber[D digit.Unsigned] interface {
	MutNumber[D]
	Resize(n int)
}

// SignedNumber is a Number with a minus flag. The flag is independent of the
// magnitude: a number may be flagged as minus while every digit is zero.
type SignedNumber[D digit.Unsigned] interface {
	Number[D]
	IsMinus() bool
}

// SignedMutNumber is a SignedNumber whose flag and digits can be changed.
// SetMinus never touches the digits.
type SignedMutNumber[D digit.Unsigned] interface {
	SignedNumber[D]
	MutNumber[D]
	SetMinus(minus bool)
}

// SignificantLen returns the number of digits in n once the most significant
// zero digits have been stripped. It returns 0 if n is zero.
func SignificantLen[D digit.Unsigned, N Number[D]](n N) int {
	i := n.Len()
	for i > 0 && n.Digit(i-1) == 0 {
		i--
	}
	return i
}

func IsZero[D digit.Unsigned, N Number[D]](n N) bool {
	return SignificantLen[D](n) == 0
}

// Cmp compares the magnitudes of a and b, ignoring any difference in the
// number of most significant zero digits, and returns:
//
//	-1 if a <  b
//	 0 if a == b
//	+1 if a >  b
func Cmp[D digit.Unsigned, A Number[D], B Number[D]](a A, b B) int {
	al, bl := SignificantLen[D](a), SignificantLen[D](b)
	if al < bl {
		return -1
	} else if al > bl {
		return 1
	}
	for i := al - 1; i >= 0; i-- {
		ad, bd := a.Digit(i), b.Digit(i)
		if ad < bd {
			return -1
		} else if ad > bd {
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b have the same magnitude.
func Equal[D digit.Unsigned, A Number[D], B Number[D]](a A, b B) bool { return Cmp[D](a, b) == 0 }

// Zero sets every digit of n to zero without changing its length.
func Zero[D digit.Unsigned, M MutNumber[D]](n M) {
	for i, l := 0, n.Len(); i < l; i++ {
		n.SetDigit(i, 0)
	}
}

// Copy copies the digits of src into dst, position-aligned at the least
// significant digit. Extra digits in dst are zeroed. It panics if
// dst.Len() < src.Len().
func Copy[D digit.Unsigned, M MutNumber[D], S Number[D]](dst M, src S) {
	dl, sl := dst.Len(), src.Len()
	if dl < sl {
		panic(errShort("copy", dl, sl))
	}
	for i := 0; i < sl; i++ {
		dst.SetDigit(i, src.Digit(i))
	}
	for i := sl; i < dl; i++ {
		dst.SetDigit(i, 0)
	}
}
