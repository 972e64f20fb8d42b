package bignum

import (
	"fmt"
	"math/big"

	"github.com/shabbyrobe/go-bignum/digit"
)

// IntoBigInt sets b to the magnitude of n. If n is a SignedNumber flagged as
// minus, b is negated.
func IntoBigInt[D digit.Unsigned](n Number[D], b *big.Int) {
	b.SetUint64(0)

	w := digit.Bits[D]()
	var d big.Int
	for i := SignificantLen[D](n) - 1; i >= 0; i-- {
		b.Lsh(b, w)
		d.SetUint64(uint64(n.Digit(i)))
		b.Or(b, &d)
	}

	if s, ok := n.(SignedNumber[D]); ok && s.IsMinus() {
		b.Neg(b)
	}
}

func AsBigInt[D digit.Unsigned](n Number[D]) *big.Int {
	var v big.Int
	IntoBigInt[D](n, &v)
	return &v
}

// SetBigInt overwrites dst with the magnitude of b. If b does not fit in
// dst's digits, dst receives the truncated low digits and accurate is false.
//
// If dst is a SignedMutNumber its minus flag is set from the sign of b;
// otherwise a negative b is converted by magnitude and accurate is false.
func SetBigInt[D digit.Unsigned](dst MutNumber[D], b *big.Int) (accurate bool) {
	accurate = true
	if s, ok := dst.(SignedMutNumber[D]); ok {
		s.SetMinus(b.Sign() < 0)
	} else if b.Sign() < 0 {
		accurate = false
	}

	var (
		mag  = new(big.Int).Abs(b)
		mask = new(big.Int).SetUint64(uint64(digit.Max[D]()))
		w    = digit.Bits[D]()
		d    big.Int
	)
	for i, l := 0, dst.Len(); i < l; i++ {
		d.And(mag, mask)
		dst.SetDigit(i, D(d.Uint64()))
		mag.Rsh(mag, w)
	}
	if mag.Sign() != 0 {
		accurate = false
	}
	return accurate
}

// VecFromBigInt creates the shortest Vec that holds the magnitude of b, which
// must not be negative.
func VecFromBigInt[D digit.Unsigned](b *big.Int) *Vec[D] {
	if b.Sign() < 0 {
		panic(fmt.Errorf("bignum: negative big.Int %s", b))
	}
	w := int(digit.Bits[D]())
	v := NewVecSized[D]((b.BitLen() + w - 1) / w)
	SetBigInt[D](v, b)
	return v
}
