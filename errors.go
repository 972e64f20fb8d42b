package bignum

import "fmt"

// Caller mistakes such as passing a destination that is too small are not
// recoverable and are reported with a panic carrying one of these errors.
// Arithmetic boundaries (carry, borrow, truncation) are never panics.

func errShort(op string, dst, need int) error {
	return fmt.Errorf("bignum: %s destination has %d digits, operand has %d", op, dst, need)
}

func errInvariant(op string) error {
	return fmt.Errorf("bignum: %s overflowed a destination sized to fit the result", op)
}
