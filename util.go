package bignum

import "github.com/shabbyrobe/go-bignum/digit"

// RandSource is satisfied by *math/rand.Rand and math/rand/v2 sources.
type RandSource interface {
	Uint64() uint64
}

// Randomize fills every digit of dst from source.
func Randomize[D digit.Unsigned](dst MutNumber[D], source RandSource) {
	for i, l := 0, dst.Len(); i < l; i++ {
		dst.SetDigit(i, D(source.Uint64()))
	}
}

// RandVec creates a Vec of n random digits.
func RandVec[D digit.Unsigned](source RandSource, n int) *Vec[D] {
	v := NewVecSized[D](n)
	Randomize[D](v, source)
	return v
}

// Larger returns whichever of a and b has the larger magnitude, or a if they
// are equal.
func Larger[D digit.Unsigned](a, b Number[D]) Number[D] {
	if Cmp[D](a, b) < 0 {
		return b
	}
	return a
}

// Smaller returns whichever of a and b has the smaller magnitude, or a if they
// are equal.
func Smaller[D digit.Unsigned](a, b Number[D]) Number[D] {
	if Cmp[D](a, b) > 0 {
		return b
	}
	return a
}
