package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	bignum "github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/go-bignum/be"
	"golang.org/x/sync/errgroup"
)

// Exhaustively checks the engine on 16-bit values held in two 8-bit digits,
// and the be package on 2-byte buffers, against native uint16 arithmetic.
// The full sweep covers every (lhs, rhs) pair; the unit tests only sample.

const usage = `Exhaustive 16-bit engine sweep

Usage: sweep [options]
`

type mismatch struct {
	Op       string
	LHS, RHS uint16
	Expected uint16
	ExpOver  bool
	Got      bignum.Fixed[uint8]
	GotOver  bool
}

func (m *mismatch) Error() string {
	return fmt.Sprintf("%s %d %d: expected %d (%v), got %s (%v)",
		m.Op, m.LHS, m.RHS, m.Expected, m.ExpOver, m.Got, m.GotOver)
}

type checkFunc func(a, b uint16) *mismatch

var ops = map[string]checkFunc{
	"add": func(a, b uint16) *mismatch {
		dst := le(a)
		over := bignum.AddAccumulate[uint8](dst, le(b))
		return check("add", a, b, a+b, uint32(a)+uint32(b) > math.MaxUint16, dst, over)
	},
	"sub": func(a, b uint16) *mismatch {
		dst := le(a)
		over := bignum.SubAccumulate[uint8](dst, le(b))
		return check("sub", a, b, a-b, b > a, dst, over)
	},
	"mul": func(a, b uint16) *mismatch {
		dst := bignum.NewFixed[uint8](2)
		over := bignum.MulAccumulate[uint8](dst, le(a), le(b))
		return check("mul", a, b, a*b, uint32(a)*uint32(b) > math.MaxUint16, dst, over)
	},
	"shl": func(a, b uint16) *mismatch {
		n := uint(b % 64)
		dst := le(a)
		over := bignum.ShiftLeft[uint8](dst, n)
		return check("shl", a, b, a<<(n%16), n >= 16, dst, over)
	},
	"shr": func(a, b uint16) *mismatch {
		n := uint(b % 64)
		dst := le(a)
		var exp uint16
		if n < 16 {
			exp = a >> n
		}
		inexact := bignum.ShiftRight[uint8](dst, n)
		expInexact := a != 0 && (n >= 16 || exp<<n != a)
		return check("shr", a, b, exp, expInexact, dst, inexact)
	},
	"beadd": func(a, b uint16) *mismatch {
		dst := make([]byte, 2)
		over := be.Add(dst, bigEndian(a), bigEndian(b))
		return check("beadd", a, b, a+b, uint32(a)+uint32(b) > math.MaxUint16, swap(dst), over)
	},
	"besub": func(a, b uint16) *mismatch {
		dst := make([]byte, 2)
		borrowed := be.Sub(dst, bigEndian(a), bigEndian(b))
		return check("besub", a, b, a-b, b > a, swap(dst), borrowed)
	},
	"bemul": func(a, b uint16) *mismatch {
		dst := make([]byte, 2)
		over := be.Mul(dst, bigEndian(a), bigEndian(b))
		return check("bemul", a, b, a*b, uint32(a)*uint32(b) > math.MaxUint16, swap(dst), over)
	},
}

func bigEndian(v uint16) []byte {
	out := make([]byte, 2)
	binary.BigEndian.PutUint16(out, v)
	return out
}

// swap converts a 2-byte big-endian result to the little-endian digits check
// expects.
func swap(b []byte) bignum.Fixed[uint8] {
	return bignum.Fixed[uint8]{b[1], b[0]}
}

func le(v uint16) bignum.Fixed[uint8] {
	out := bignum.NewFixed[uint8](2)
	binary.LittleEndian.PutUint16(out, v)
	return out
}

func check(op string, a, b, exp uint16, expOver bool, got bignum.Fixed[uint8], gotOver bool) *mismatch {
	if binary.LittleEndian.Uint16(got) == exp && expOver == gotOver {
		return nil
	}
	return &mismatch{Op: op, LHS: a, RHS: b, Expected: exp, ExpOver: expOver, Got: got, GotOver: gotOver}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		op      = "all"
		limit   = math.MaxUint16
		workers = runtime.GOMAXPROCS(0)
		verbose bool
	)

	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&op, "op", op, "Op to sweep (add, sub, mul, shl, shr, beadd, besub, bemul, all)")
	fs.IntVar(&limit, "limit", limit, "Largest lhs value to sweep")
	fs.IntVar(&workers, "workers", workers, "Number of concurrent workers")
	fs.BoolVar(&verbose, "v", verbose, "Log progress")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	if limit < 0 || limit > math.MaxUint16 {
		return fmt.Errorf("sweep: -limit must be in [0, %d]", math.MaxUint16)
	}
	if workers < 1 {
		return fmt.Errorf("sweep: -workers must be positive")
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !verbose {
		log = log.Level(zerolog.InfoLevel)
	} else {
		log = log.Level(zerolog.DebugLevel)
	}

	var names []string
	if op == "all" {
		names = []string{"add", "sub", "mul", "shl", "shr", "beadd", "besub", "bemul"}
	} else if _, ok := ops[op]; ok {
		names = []string{op}
	} else {
		return fmt.Errorf("sweep: unknown op %q", op)
	}

	for _, name := range names {
		start := time.Now()
		if err := sweep(context.Background(), log, name, ops[name], limit, workers); err != nil {
			if m, ok := err.(*mismatch); ok {
				log.Error().Str("op", name).Msg(spew.Sdump(m))
			}
			return err
		}
		log.Info().Str("op", name).Int("limit", limit).Dur("took", time.Since(start)).Msg("sweep passed")
	}
	return nil
}

// sweep splits the lhs range across workers. The first mismatch cancels the
// remaining workers.
func sweep(ctx context.Context, log zerolog.Logger, name string, fn checkFunc, limit, workers int) error {
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for l := w; l <= limit; l += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				for r := 0; r <= math.MaxUint16; r++ {
					if m := fn(uint16(l), uint16(r)); m != nil {
						return m
					}
				}
				if l%4096 == w {
					log.Debug().Str("op", name).Int("worker", w).Int("lhs", l).Msg("progress")
				}
			}
			return nil
		})
	}
	return g.Wait()
}
