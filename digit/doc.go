/*
Package digit provides the per-width arithmetic that the multi-precision
routines in bignum and bignum/be are built from.

A digit is any primitive unsigned integer type (uint8, uint16, uint32, uint64,
uint, uintptr) or, for the signed helpers, any primitive signed integer type.
Every operation comes in three flavours:

	WrappingAdd(a, b)    // silently truncates, same as native Go arithmetic
	CheckedAdd(a, b)     // (v, ok); ok is false when the result doesn't fit
	OverflowingAdd(a, b) // (v, overflow); v is the wrapped result

MulParts is the widening multiply: it splits the double-width product of two
digits into a high and low digit such that hi*2^Bits + lo == a*b.

Division and remainder by zero panic in the Wrapping and Overflowing flavours,
just like the native operators do. The Checked flavours report ok == false.
*/
package digit
