package bignum

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-bignum/digit"
)

type fuzzOp string
type fuzzWidth string

// This is the equivalent of passing -bignum.fuzziter=2000 to 'go test':
const fuzzDefaultIterations = 2000

// The longest operand the fuzzer generates, in digits.
const fuzzMaxDigits = 7

// These ops are all enabled by default. You can instead pass them explicitly
// on the command line like so: '-bignum.fuzzop=add -bignum.fuzzop=sub', or
// use the short form '-bignum.fuzzop=add,sub,mul'.
//
// If you add a new op, search for the string 'NEWOP' in this file for all the
// places you need to update.
const (
	fuzzAdd       fuzzOp = "add"
	fuzzAddResize fuzzOp = "addresize"
	fuzzBigInt    fuzzOp = "bigint"
	fuzzCmp       fuzzOp = "cmp"
	fuzzMul       fuzzOp = "mul"
	fuzzMulResize fuzzOp = "mulresize"
	fuzzShl       fuzzOp = "shl"
	fuzzShr       fuzzOp = "shr"
	fuzzSub       fuzzOp = "sub"
	fuzzSubResize fuzzOp = "subresize"
)

const (
	fuzzWidth8  fuzzWidth = "8"
	fuzzWidth16 fuzzWidth = "16"
	fuzzWidth32 fuzzWidth = "32"
	fuzzWidth64 fuzzWidth = "64"
)

var allFuzzWidths = []fuzzWidth{fuzzWidth8, fuzzWidth16, fuzzWidth32, fuzzWidth64}

// allFuzzOps are active by default.
//
// NEWOP: Update this list if a NEW op is added otherwise it won't be
// enabled by default.
//
// Please keep this list alphabetised.
var allFuzzOps = []fuzzOp{
	fuzzAdd,
	fuzzAddResize,
	fuzzBigInt,
	fuzzCmp,
	fuzzMul,
	fuzzMulResize,
	fuzzShl,
	fuzzShr,
	fuzzSub,
	fuzzSubResize,
}

// NEWOP: update this interface if a new op is added.
type fuzzOps interface {
	Name() string // Not an op

	Add() error
	AddResize() error
	BigInt() error
	Cmp() error
	Mul() error
	MulResize() error
	Shl() error
	Shr() error
	Sub() error
	SubResize() error
}

// classic rando!
type rando struct {
	operands []*big.Int
	rng      *rand.Rand
}

func (r *rando) Operands() []*big.Int { return r.operands }

func (r *rando) Clear() {
	for i := range r.operands {
		r.operands[i] = nil
	}
	r.operands = r.operands[:0]
}

func (r *rando) Uintn(n int) uint {
	v := uint(r.rng.Intn(n))
	r.operands = append(r.operands, new(big.Int).SetUint64(uint64(v)))
	return v
}

// randDigit is biased towards zero and the maximum digit so that long carry
// and borrow chains actually happen.
func randDigit[D digit.Unsigned](rng *rand.Rand) D {
	switch rng.Intn(8) {
	case 0:
		return 0
	case 1:
		return digit.Max[D]()
	case 2:
		return 1
	default:
		return D(rng.Uint64())
	}
}

// randDigits returns a random Vec with between minLen and fuzzMaxDigits
// digits, and records it as an operand.
func randDigits[D digit.Unsigned](r *rando, minLen int) *Vec[D] {
	n := minLen + r.rng.Intn(fuzzMaxDigits-minLen+1)
	v := NewVecSized[D](n)
	for i := 0; i < n; i++ {
		v.SetDigit(i, randDigit[D](r.rng))
	}
	r.operands = append(r.operands, AsBigInt[D](v))
	return v
}

// randDigitsPair returns two random Vecs where the first is never shorter than
// the second.
func randDigitsPair[D digit.Unsigned](r *rando) (a, b *Vec[D]) {
	a, b = randDigits[D](r, 0), randDigits[D](r, 0)
	if a.Len() < b.Len() {
		a, b = b, a
		last := len(r.operands) - 1
		r.operands[last-1], r.operands[last] = r.operands[last], r.operands[last-1]
	}
	return a, b
}

// capacity returns 2^(Bits*n), one more than the largest value n digits hold.
func capacity[D digit.Unsigned](n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), digit.Bits[D]()*uint(n))
}

func checkEqualBool(u bool, b bool) error {
	if u != b {
		return fmt.Errorf("bignum(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualInt(u int, b int) error {
	if u != b {
		return fmt.Errorf("bignum(%v) != big(%v)", u, b)
	}
	return nil
}

func checkEqualNum[D digit.Unsigned](n Number[D], b *big.Int) error {
	v := AsBigInt[D](n)
	if v.Cmp(b) != 0 {
		return fmt.Errorf("bignum(%s) != big(%s)\n%s", v, b, spew.Sdump(n))
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

type fuzzDigits[D digit.Unsigned] struct {
	source *rando
}

var (
	_ fuzzOps = &fuzzDigits[uint8]{}
	_ fuzzOps = &fuzzDigits[uint64]{}
)

func (f *fuzzDigits[D]) Name() string { return fmt.Sprintf("u%d", digit.Bits[D]()) }

func (f *fuzzDigits[D]) Add() error {
	a, b := randDigitsPair[D](f.source)
	ba, bb := AsBigInt[D](a), AsBigInt[D](b)

	ov := AddAccumulate[D](a, b)

	rb := new(big.Int).Add(ba, bb)
	c := capacity[D](a.Len())
	expOv := rb.Cmp(c) >= 0
	rb.Mod(rb, c)
	return firstErr(checkEqualNum[D](a, rb), checkEqualBool(ov, expOv))
}

func (f *fuzzDigits[D]) AddResize() error {
	a, b := randDigits[D](f.source, 0), randDigits[D](f.source, 0)
	ba, bb := AsBigInt[D](a), AsBigInt[D](b)
	l := max(a.Len(), b.Len())

	AddResize[D](a, b)

	rb := new(big.Int).Add(ba, bb)
	expLen := l
	if rb.Cmp(capacity[D](l)) >= 0 {
		expLen++
	}
	return firstErr(checkEqualNum[D](a, rb), checkEqualInt(a.Len(), expLen))
}

func (f *fuzzDigits[D]) BigInt() error {
	a := randDigits[D](f.source, 0)
	ba := AsBigInt[D](a)

	v := VecFromBigInt[D](ba)
	if err := checkEqualInt(v.Len(), SignificantLen[D](a)); err != nil {
		return err
	}

	b := NewFixed[D](a.Len())
	if !SetBigInt[D](b, ba) {
		return fmt.Errorf("inaccurate conversion of %s into %d digits", ba, a.Len())
	}
	return firstErr(checkEqualNum[D](v, ba), checkEqualNum[D](b, ba))
}

func (f *fuzzDigits[D]) Cmp() error {
	a, b := randDigits[D](f.source, 0), randDigits[D](f.source, 0)
	if f.source.rng.Intn(8) == 0 {
		// Same value, different amount of zero padding:
		b = a.Clone()
		b.Resize(b.Len() + 1 + f.source.rng.Intn(3))
		f.source.operands[len(f.source.operands)-1] = AsBigInt[D](b)
	}
	ba, bb := AsBigInt[D](a), AsBigInt[D](b)
	return checkEqualInt(Cmp[D](a, b), ba.Cmp(bb))
}

func (f *fuzzDigits[D]) Mul() error {
	dst := randDigits[D](f.source, 0)
	lhs, rhs := randDigits[D](f.source, 0), randDigits[D](f.source, 0)
	bd, bl, br := AsBigInt[D](dst), AsBigInt[D](lhs), AsBigInt[D](rhs)

	ov := MulAccumulate[D](dst, lhs, rhs)

	rb := new(big.Int).Mul(bl, br)
	rb.Add(rb, bd)
	c := capacity[D](dst.Len())
	expOv := rb.Cmp(c) >= 0
	rb.Mod(rb, c)
	return firstErr(checkEqualNum[D](dst, rb), checkEqualBool(ov, expOv))
}

func (f *fuzzDigits[D]) MulResize() error {
	dst := randDigits[D](f.source, 0)
	if f.source.rng.Intn(2) == 0 {
		Zero[D](dst)
		f.source.operands[len(f.source.operands)-1] = new(big.Int)
	}
	lhs, rhs := randDigits[D](f.source, 0), randDigits[D](f.source, 0)
	bd, bl, br := AsBigInt[D](dst), AsBigInt[D](lhs), AsBigInt[D](rhs)

	MulResize[D](dst, lhs, rhs)

	rb := new(big.Int).Mul(bl, br)
	rb.Add(rb, bd)
	return checkEqualNum[D](dst, rb)
}

func (f *fuzzDigits[D]) Shl() error {
	a := randDigits[D](f.source, 0)
	w := digit.Bits[D]()
	n := f.source.Uintn(int(w)*(a.Len()+1) + 1)
	ba := AsBigInt[D](a)

	ov := ShiftLeft[D](a, n)

	expOv := n/w >= uint(a.Len())
	rb := new(big.Int)
	if a.Len() > 0 {
		rb.Lsh(ba, n%(w*uint(a.Len())))
		rb.Mod(rb, capacity[D](a.Len()))
	}
	return firstErr(checkEqualNum[D](a, rb), checkEqualBool(ov, expOv))
}

func (f *fuzzDigits[D]) Shr() error {
	a := randDigits[D](f.source, 0)
	w := digit.Bits[D]()
	n := f.source.Uintn(int(w)*(a.Len()+1) + 1)
	ba := AsBigInt[D](a)

	inexact := ShiftRight[D](a, n)

	rb := new(big.Int).Rsh(ba, n)
	back := new(big.Int).Lsh(rb, n)
	return firstErr(checkEqualNum[D](a, rb), checkEqualBool(inexact, back.Cmp(ba) != 0))
}

func (f *fuzzDigits[D]) Sub() error {
	a, b := randDigitsPair[D](f.source)
	ba, bb := AsBigInt[D](a), AsBigInt[D](b)

	borrow := SubAccumulate[D](a, b)

	rb := new(big.Int).Sub(ba, bb)
	expBorrow := rb.Sign() < 0
	rb.Mod(rb, capacity[D](a.Len()))
	return firstErr(checkEqualNum[D](a, rb), checkEqualBool(borrow, expBorrow))
}

func (f *fuzzDigits[D]) SubResize() error {
	a, b := randDigits[D](f.source, 0), randDigits[D](f.source, 0)
	ba, bb := AsBigInt[D](a), AsBigInt[D](b)
	l := max(a.Len(), b.Len())

	borrow := SubResize[D](a, b)

	rb := new(big.Int).Sub(ba, bb)
	expBorrow := rb.Sign() < 0
	rb.Mod(rb, capacity[D](l))
	return firstErr(
		checkEqualNum[D](a, rb),
		checkEqualBool(borrow, expBorrow),
		checkEqualInt(a.Len(), l))
}

func TestFuzz(t *testing.T) {
	// fuzzOpsActive comes from the -bignum.fuzzop flag, in TestMain:
	var runFuzzOps = fuzzOpsActive

	// fuzzWidthsActive comes from the -bignum.fuzzwidth flag, in TestMain:
	var runFuzzWidths = fuzzWidthsActive

	var source = &rando{rng: globalRNG} // Classic rando!
	var totalFailures int

	var fuzzTypes []fuzzOps

	for _, w := range runFuzzWidths {
		switch w {
		case fuzzWidth8:
			fuzzTypes = append(fuzzTypes, &fuzzDigits[uint8]{source: source})
		case fuzzWidth16:
			fuzzTypes = append(fuzzTypes, &fuzzDigits[uint16]{source: source})
		case fuzzWidth32:
			fuzzTypes = append(fuzzTypes, &fuzzDigits[uint32]{source: source})
		case fuzzWidth64:
			fuzzTypes = append(fuzzTypes, &fuzzDigits[uint64]{source: source})
		default:
			panic("unknown fuzz width")
		}
	}

	for _, fuzzImpl := range fuzzTypes {
		var failures = make([]int, len(runFuzzOps))

		for opIdx, op := range runFuzzOps {
			for i := 0; i < fuzzIterations; i++ {
				source.Clear()

				var err error

				// NEWOP: add a new branch here in alphabetical order if a new
				// op is added.
				switch op {
				case fuzzAdd:
					err = fuzzImpl.Add()
				case fuzzAddResize:
					err = fuzzImpl.AddResize()
				case fuzzBigInt:
					err = fuzzImpl.BigInt()
				case fuzzCmp:
					err = fuzzImpl.Cmp()
				case fuzzMul:
					err = fuzzImpl.Mul()
				case fuzzMulResize:
					err = fuzzImpl.MulResize()
				case fuzzShl:
					err = fuzzImpl.Shl()
				case fuzzShr:
					err = fuzzImpl.Shr()
				case fuzzSub:
					err = fuzzImpl.Sub()
				case fuzzSubResize:
					err = fuzzImpl.SubResize()
				default:
					panic(fmt.Errorf("unsupported op %q", op))
				}

				if err != nil {
					failures[opIdx]++
					t.Logf("%s %s: %s\n", fuzzImpl.Name(), op.Print(source.Operands()...), err)
				}
			}
		}

		for opIdx, cnt := range failures {
			if cnt > 0 {
				totalFailures += cnt
				t.Logf("impl %s, op %s: %d/%d failed", fuzzImpl.Name(), string(runFuzzOps[opIdx]), cnt, fuzzIterations)
			}
		}
	}

	if totalFailures > 0 {
		t.Fail()
	}
}

func (op fuzzOp) Print(operands ...*big.Int) string {
	// NEWOP: please add a human-readable format for your op here; this is used
	// for reporting errors and should show the operation, i.e. "2 + 2".
	strs := make([]string, len(operands))
	for i, o := range operands {
		strs[i] = o.String()
	}

	switch op {
	case fuzzBigInt:
		return fmt.Sprintf("bigint(%s)", strings.Join(strs, ", "))

	case fuzzMul, fuzzMulResize:
		if len(strs) == 3 {
			return fmt.Sprintf("%s + %s * %s", strs[0], strs[1], strs[2])
		}

	case fuzzAdd, fuzzAddResize, fuzzCmp, fuzzShl, fuzzShr, fuzzSub, fuzzSubResize:
		if len(strs) == 2 {
			return fmt.Sprintf("%s %s %s", strs[0], op.String(), strs[1])
		}
	}
	return fmt.Sprintf("%s(%s)", string(op), strings.Join(strs, ", "))
}

func (op fuzzOp) String() string {
	// NEWOP: please add a short string representation of this op, as if
	// the operands were in a sum (if that's possible)
	switch op {
	case fuzzAdd, fuzzAddResize:
		return "+"
	case fuzzCmp:
		return "<=>"
	case fuzzMul, fuzzMulResize:
		return "*"
	case fuzzShl:
		return "<<"
	case fuzzShr:
		return ">>"
	case fuzzSub, fuzzSubResize:
		return "-"
	default:
		return string(op)
	}
}
