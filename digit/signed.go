package digit

import "golang.org/x/exp/constraints"

// Signed is the set of signed primitive types the signed helpers accept.
type Signed = constraints.Signed

func MaxSigned[D Signed]() D { return ^MinSigned[D]() }

func MinSigned[D Signed]() D { return D(-1) << (Bits[D]() - 1) }

func WrappingAddSigned[D Signed](a, b D) D { return a + b }
func WrappingSubSigned[D Signed](a, b D) D { return a - b }
func WrappingMulSigned[D Signed](a, b D) D { return a * b }

// WrappingDivSigned wraps MinSigned / -1 to MinSigned. It panics if b is zero.
func WrappingDivSigned[D Signed](a, b D) D { return a / b }

// WrappingRemSigned wraps MinSigned % -1 to zero. It panics if b is zero.
func WrappingRemSigned[D Signed](a, b D) D { return a % b }

func WrappingNeg[D Signed](a D) D { return -a }

func WrappingAbs[D Signed](a D) D {
	if a < 0 {
		return -a
	}
	return a
}

func WrappingShlSigned[D Signed](a D, n uint32) D {
	return a << (uint(n) & (Bits[D]() - 1))
}

// WrappingShrSigned is an arithmetic (sign-extending) right shift by n
// modulo the width of D.
func WrappingShrSigned[D Signed](a D, n uint32) D {
	return a >> (uint(n) & (Bits[D]() - 1))
}

func WrappingDivEuclidSigned[D Signed](a, b D) D {
	v, _ := OverflowingDivEuclidSigned(a, b)
	return v
}

func WrappingRemEuclidSigned[D Signed](a, b D) D {
	v, _ := OverflowingRemEuclidSigned(a, b)
	return v
}

func WrappingPowSigned[D Signed](a D, exp uint32) D {
	v, _ := OverflowingPowSigned(a, exp)
	return v
}

func OverflowingAddSigned[D Signed](a, b D) (D, bool) {
	s := a + b
	return s, (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0)
}

func OverflowingSubSigned[D Signed](a, b D) (D, bool) {
	d := a - b
	return d, (a >= 0) != (b >= 0) && (d >= 0) != (a >= 0)
}

func OverflowingMulSigned[D Signed](a, b D) (D, bool) {
	p := a * b
	if a == 0 || b == 0 {
		return p, false
	}
	min := MinSigned[D]()
	if (a == -1 && b == min) || (b == -1 && a == min) {
		return p, true
	}
	return p, p/b != a
}

func OverflowingDivSigned[D Signed](a, b D) (D, bool) {
	if a == MinSigned[D]() && b == -1 {
		return a, true
	}
	return a / b, false
}

func OverflowingRemSigned[D Signed](a, b D) (D, bool) {
	if a == MinSigned[D]() && b == -1 {
		return 0, true
	}
	return a % b, false
}

// OverflowingDivEuclidSigned computes the quotient q such that a == q*b + r
// with 0 <= r < |b|.
func OverflowingDivEuclidSigned[D Signed](a, b D) (D, bool) {
	if a == MinSigned[D]() && b == -1 {
		return a, true
	}
	q, r := a/b, a%b
	if r < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q, false
}

// OverflowingRemEuclidSigned computes the non-negative remainder r such that
// a == q*b + r with 0 <= r < |b|.
func OverflowingRemEuclidSigned[D Signed](a, b D) (D, bool) {
	if a == MinSigned[D]() && b == -1 {
		return 0, true
	}
	r := a % b
	if r < 0 {
		if b < 0 {
			r -= b
		} else {
			r += b
		}
	}
	return r, false
}

func OverflowingNeg[D Signed](a D) (D, bool) {
	return -a, a == MinSigned[D]()
}

func OverflowingAbs[D Signed](a D) (D, bool) {
	return WrappingAbs(a), a == MinSigned[D]()
}

func OverflowingShlSigned[D Signed](a D, n uint32) (D, bool) {
	return WrappingShlSigned(a, n), uint(n) >= Bits[D]()
}

func OverflowingShrSigned[D Signed](a D, n uint32) (D, bool) {
	return WrappingShrSigned(a, n), uint(n) >= Bits[D]()
}

func OverflowingPowSigned[D Signed](a D, exp uint32) (D, bool) {
	var (
		acc      D = 1
		overflow bool
		o        bool
	)
	base := a
	for exp > 0 {
		if exp&1 == 1 {
			acc, o = OverflowingMulSigned(acc, base)
			overflow = overflow || o
		}
		exp >>= 1
		if exp > 0 {
			base, o = OverflowingMulSigned(base, base)
			overflow = overflow || o
		}
	}
	return acc, overflow
}

func CheckedAddSigned[D Signed](a, b D) (D, bool) {
	v, o := OverflowingAddSigned(a, b)
	return checked(v, o)
}

func CheckedSubSigned[D Signed](a, b D) (D, bool) {
	v, o := OverflowingSubSigned(a, b)
	return checked(v, o)
}

func CheckedMulSigned[D Signed](a, b D) (D, bool) {
	v, o := OverflowingMulSigned(a, b)
	return checked(v, o)
}

func CheckedNeg[D Signed](a D) (D, bool) {
	v, o := OverflowingNeg(a)
	return checked(v, o)
}

func CheckedAbs[D Signed](a D) (D, bool) {
	v, o := OverflowingAbs(a)
	return checked(v, o)
}

func CheckedPowSigned[D Signed](a D, exp uint32) (D, bool) {
	v, o := OverflowingPowSigned(a, exp)
	return checked(v, o)
}

func CheckedDivSigned[D Signed](a, b D) (D, bool) {
	if b == 0 {
		return 0, false
	}
	v, o := OverflowingDivSigned(a, b)
	return checked(v, o)
}

func CheckedRemSigned[D Signed](a, b D) (D, bool) {
	if b == 0 {
		return 0, false
	}
	v, o := OverflowingRemSigned(a, b)
	return checked(v, o)
}

func CheckedDivEuclidSigned[D Signed](a, b D) (D, bool) {
	if b == 0 {
		return 0, false
	}
	v, o := OverflowingDivEuclidSigned(a, b)
	return checked(v, o)
}

func CheckedRemEuclidSigned[D Signed](a, b D) (D, bool) {
	if b == 0 {
		return 0, false
	}
	v, o := OverflowingRemEuclidSigned(a, b)
	return checked(v, o)
}

func CheckedShlSigned[D Signed](a D, n uint32) (D, bool) {
	if uint(n) >= Bits[D]() {
		return 0, false
	}
	return a << n, true
}

func CheckedShrSigned[D Signed](a D, n uint32) (D, bool) {
	if uint(n) >= Bits[D]() {
		return 0, false
	}
	return a >> n, true
}

func checked[D constraints.Integer](v D, overflow bool) (D, bool) {
	if overflow {
		return 0, false
	}
	return v, true
}
