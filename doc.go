/*
Package bignum implements arbitrary-precision unsigned integer arithmetic as a
set of generic functions over a minimal, little-endian digit interface.

A number is anything that can report its length and read its digits; the
engine never assumes a particular storage layout. The digit type D is any
unsigned integer type, so the same algorithms run on uint8 digits in tests and
uint64 digits in production:

	a := bignum.VecOf[uint64](math.MaxUint64)
	bignum.AddResize[uint64](a, bignum.VecOf[uint64](1))
	fmt.Println(a)
	// Output: 18446744073709551616

Storage types:

	Vec[D]        growable, the zero value is zero
	Fixed[D]      a caller-owned slice that never changes length
	SignedVec[D]  a Vec with a minus flag carried alongside the magnitude

The in-place operations (AddAccumulate, SubAccumulate, MulAccumulate,
ShiftLeft, ShiftRight) work at the destination's fixed length and report carry,
borrow or truncation with a boolean. The *Resize variants grow the destination
so the result fits.

Passing a destination shorter than an operand is a programming error and
panics. Running past the top digit is never a panic; it is reported.

Arithmetic on single digits, with wrapping, checked and overflowing variants,
lives in the digit subpackage. Arithmetic directly on big-endian byte buffers
lives in the be subpackage.
*/
package bignum
