package bignum

import (
	"fmt"

	"github.com/shabbyrobe/go-bignum/digit"
)

// DefaultDigit is the digit type used by Vec when none is given explicitly
// through a type alias or conversion.
type DefaultDigit = uint32

// Vec is a growable little-endian number.
//
// The zero value is an empty number, which represents zero.
type Vec[D digit.Unsigned] struct {
	digits []D
}

var (
	_ ResizableNumber[uint8]  = &Vec[uint8]{}
	_ ResizableNumber[uint64] = &Vec[uint64]{}
)

// NewVec creates an empty Vec. An empty Vec holds the value zero.
func NewVec[D digit.Unsigned]() *Vec[D] { return &Vec[D]{} }

// NewVecSized creates a Vec of exactly n zero digits.
func NewVecSized[D digit.Unsigned](n int) *Vec[D] {
	return &Vec[D]{digits: make([]D, n)}
}

// VecFrom creates a Vec that takes ownership of digits, which must be
// little-endian.
func VecFrom[D digit.Unsigned](digits []D) *Vec[D] {
	return &Vec[D]{digits: digits}
}

// VecOf is a convenience for VecFrom that copies its little-endian arguments.
func VecOf[D digit.Unsigned](digits ...D) *Vec[D] {
	return &Vec[D]{digits: append([]D(nil), digits...)}
}

func (v *Vec[D]) Len() int { return len(v.digits) }

func (v *Vec[D]) Digit(pos int) D { return v.digits[pos] }

func (v *Vec[D]) SetDigit(pos int, d D) { v.digits[pos] = d }

// Resize changes the length of v to n digits. See ResizableNumber for the
// truncation and padding rules.
func (v *Vec[D]) Resize(n int) {
	if n < 0 {
		panic(fmt.Errorf("bignum: negative length %d", n))
	}
	l := len(v.digits)
	switch {
	case n < l:
		v.digits = v.digits[:n]
	case n > l:
		if n <= cap(v.digits) {
			v.digits = v.digits[:n]
			for i := l; i < n; i++ {
				v.digits[i] = 0
			}
		} else {
			v.digits = append(v.digits, make([]D, n-l)...)
		}
	}
}

// Digits returns the little-endian digits of v. The slice aliases v.
func (v *Vec[D]) Digits() []D { return v.digits }

func (v *Vec[D]) Clone() *Vec[D] {
	return &Vec[D]{digits: append([]D(nil), v.digits...)}
}

func (v *Vec[D]) String() string {
	return AsBigInt[D](v).String()
}

// Fixed is a number stored in a caller-owned buffer that never changes
// length. Engine calls mutate it in place.
type Fixed[D digit.Unsigned] []D

var (
	_ MutNumber[uint8]  = Fixed[uint8]{}
	_ MutNumber[uint64] = Fixed[uint64]{}
)

// NewFixed allocates a Fixed of exactly n zero digits.
func NewFixed[D digit.Unsigned](n int) Fixed[D] { return make(Fixed[D], n) }

func (f Fixed[D]) Len() int { return len(f) }

func (f Fixed[D]) Digit(pos int) D { return f[pos] }

func (f Fixed[D]) SetDigit(pos int, d D) { f[pos] = d }

func (f Fixed[D]) Clone() Fixed[D] { return append(Fixed[D](nil), f...) }

func (f Fixed[D]) String() string {
	return AsBigInt[D](f).String()
}
