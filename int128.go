package zerocalc

import (
	"math/big"
)

// int128 is a two's complement signed 128-bit integer. Arithmetic goes
// through math/big and is range checked on the way back, so every operation
// is a checked one.
type int128 struct {
	hi int64
	lo uint64
}

var (
	two128  = new(big.Int).Lsh(big.NewInt(1), 128)
	mask64  = new(big.Int).SetUint64(^uint64(0))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))

	minInt128 = int128{hi: -1 << 63}
	maxInt128 = int128{hi: 1<<63 - 1, lo: ^uint64(0)}
)

func int128From64(v int64) int128 {
	if v < 0 {
		return int128{hi: -1, lo: uint64(v)}
	}
	return int128{lo: uint64(v)}
}

// big returns a new big.Int holding x.
func (x int128) big() *big.Int {
	r := new(big.Int).SetUint64(uint64(x.hi))
	r.Lsh(r, 64)
	r.Or(r, new(big.Int).SetUint64(x.lo))
	if x.hi < 0 {
		r.Sub(r, two128)
	}
	return r
}

// int128FromBig converts v. The second result is false if v is out of range.
func int128FromBig(v *big.Int) (int128, bool) {
	if v.Cmp(minI128) < 0 || v.Cmp(maxI128) > 0 {
		return int128{}, false
	}
	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		u.Add(u, two128)
	}
	lo := new(big.Int).And(u, mask64).Uint64()
	hi := new(big.Int).Rsh(u, 64).Uint64()
	return int128{hi: int64(hi), lo: lo}, true
}

func (x int128) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

func (x int128) sign() int {
	switch {
	case x.hi < 0:
		return -1
	case x.isZero():
		return 0
	default:
		return 1
	}
}

func (x int128) float64() float64 {
	f, _ := new(big.Float).SetInt(x.big()).Float64()
	return f
}

func (x int128) String() string {
	return x.big().String()
}

func (x int128) add(y int128) (int128, bool) {
	return int128FromBig(new(big.Int).Add(x.big(), y.big()))
}

func (x int128) sub(y int128) (int128, bool) {
	return int128FromBig(new(big.Int).Sub(x.big(), y.big()))
}

func (x int128) mul(y int128) (int128, bool) {
	return int128FromBig(new(big.Int).Mul(x.big(), y.big()))
}

func (x int128) neg() (int128, bool) {
	return int128FromBig(new(big.Int).Neg(x.big()))
}

// quoRem divides with truncation toward zero. It fails for a zero divisor
// and for the one quotient that overflows, minInt128 / -1.
func (x int128) quoRem(y int128) (q, r int128, ok bool) {
	if y.isZero() {
		return int128{}, int128{}, false
	}
	bq, br := new(big.Int).QuoRem(x.big(), y.big(), new(big.Int))
	r, _ = int128FromBig(br)
	q, ok = int128FromBig(bq)
	return q, r, ok
}

// rem is the truncated remainder, with the sign of x.
func (x int128) rem(y int128) (int128, bool) {
	_, r, ok := x.quoRem(y)
	return r, ok
}

// pow computes x**e. Any base with magnitude at least 2 overflows for e > 127,
// which keeps the big.Int exponentiation small.
func (x int128) pow(e uint32) (int128, bool) {
	b := x.big()
	if b.CmpAbs(big.NewInt(1)) <= 0 {
		// 0, 1 and -1 only cycle, so only the parity of e matters.
		if e > 1 {
			e = 2 + e%2
		}
	} else if e > 127 {
		return int128{}, false
	}
	return int128FromBig(new(big.Int).Exp(b, big.NewInt(int64(e)), nil))
}
