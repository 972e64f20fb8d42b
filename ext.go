package bignum

import "github.com/shabbyrobe/go-bignum/digit"

// Cloner is a MutNumber that can copy itself.
type Cloner[D digit.Unsigned, T any] interface {
	MutNumber[D]
	Clone() T
}

// Add returns a copy of lhs with rhs added to it by AddAccumulate. lhs is not
// modified. The sum is truncated to lhs.Len() digits; use AddResize on the
// copy if that matters.
//
// It panics if lhs.Len() < rhs.Len().
func Add[D digit.Unsigned, T Cloner[D, T]](lhs T, rhs Number[D]) T {
	out := lhs.Clone()
	_ = AddAccumulate[D](out, rhs)
	return out
}
