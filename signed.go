package bignum

import (
	"github.com/shabbyrobe/go-bignum/digit"
)

// SignedVec is a growable little-endian magnitude with a minus flag. The
// engine only ever operates on the magnitude; the flag is carried along for
// callers that need it.
type SignedVec[D digit.Unsigned] struct {
	Vec[D]
	minus bool
}

var _ interface {
	SignedMutNumber[uint32]
	ResizableNumber[uint32]
} = &SignedVec[uint32]{}

func NewSignedVecSized[D digit.Unsigned](n int, minus bool) *SignedVec[D] {
	return &SignedVec[D]{Vec: Vec[D]{digits: make([]D, n)}, minus: minus}
}

// SignedVecFrom takes ownership of the little-endian magnitude digits.
func SignedVecFrom[D digit.Unsigned](digits []D, minus bool) *SignedVec[D] {
	return &SignedVec[D]{Vec: Vec[D]{digits: digits}, minus: minus}
}

func (s *SignedVec[D]) IsMinus() bool { return s.minus }

func (s *SignedVec[D]) SetMinus(minus bool) { s.minus = minus }

// Magnitude returns the unsigned part of s. The result aliases s.
func (s *SignedVec[D]) Magnitude() *Vec[D] { return &s.Vec }

func (s *SignedVec[D]) Clone() *SignedVec[D] {
	return &SignedVec[D]{Vec: *s.Vec.Clone(), minus: s.minus}
}

func (s *SignedVec[D]) String() string {
	b := AsBigInt[D](&s.Vec)
	if s.minus {
		// A minus zero is printed as "-0" so the flag stays visible.
		return "-" + b.String()
	}
	return b.String()
}
