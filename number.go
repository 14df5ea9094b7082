package zerocalc

import (
	"math"
	"math/big"
	"strconv"
)

// Kind is the tag of a Number.
type Kind uint8

const (
	// KindNaN is the error sentinel. It is the zero Kind, so the zero Number
	// is NaN.
	KindNaN Kind = iota
	// KindInt is a signed 128-bit integer.
	KindInt
	// KindFloat is a finite 64-bit float.
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindNaN:
		return "NaN"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Number is a calculator value: an integer, a float, or NaN. NaN stands for
// every failed computation (overflow, division by zero, domain errors) as
// well as IEEE NaN and infinities, and any operation with a NaN operand
// results in NaN. Numbers are comparable with ==.
type Number struct {
	kind Kind
	i    int128
	f    float64
}

// NaN returns the error sentinel.
func NaN() Number {
	return Number{}
}

// Int returns an integer Number.
func Int(v int64) Number {
	return Number{kind: KindInt, i: int128From64(v)}
}

// IntFromBig returns an integer Number with the value of v, or NaN if v does
// not fit in 128 bits.
func IntFromBig(v *big.Int) Number {
	return checked(int128FromBig(v))
}

// Float returns a float Number. NaN and infinite arguments give NaN.
func Float(v float64) Number {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Number{}
	}
	return Number{kind: KindFloat, f: v}
}

func checked(x int128, ok bool) Number {
	if !ok {
		return Number{}
	}
	return Number{kind: KindInt, i: x}
}

// Kind returns the tag of n.
func (n Number) Kind() Kind {
	return n.kind
}

// IsNaN reports whether n is the error sentinel.
func (n Number) IsNaN() bool {
	return n.kind == KindNaN
}

// Int64 returns the value of an integer Number. The second result is false
// if n is not an integer or does not fit in an int64.
func (n Number) Int64() (int64, bool) {
	if n.kind != KindInt {
		return 0, false
	}
	b := n.i.big()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// BigInt returns the value of an integer Number, or nil if n is not an
// integer.
func (n Number) BigInt() *big.Int {
	if n.kind != KindInt {
		return nil
	}
	return n.i.big()
}

// Float64 converts n to the nearest float64. NaN converts to math.NaN().
func (n Number) Float64() float64 {
	switch n.kind {
	case KindInt:
		return n.i.float64()
	case KindFloat:
		return n.f
	default:
		return math.NaN()
	}
}

// String formats n. Integers are decimal digits, floats are the shortest
// decimal that parses back to the same value, never in exponent form.
func (n Number) String() string {
	switch n.kind {
	case KindInt:
		return n.i.String()
	case KindFloat:
		return strconv.FormatFloat(n.f, 'f', -1, 64)
	default:
		return "NaN"
	}
}

// Apply performs the binary operation op with n on the left and r on the
// right.
func (n Number) Apply(op Op, r Number) Number {
	switch op {
	case OpAdd:
		return n.Add(r)
	case OpSub:
		return n.Sub(r)
	case OpMul:
		return n.Mul(r)
	case OpDiv:
		return n.Div(r)
	case OpMod:
		return n.Mod(r)
	case OpPow:
		return n.Pow(r)
	default:
		return Number{}
	}
}

// Add returns n + r.
func (n Number) Add(r Number) Number {
	switch {
	case n.kind == KindNaN || r.kind == KindNaN:
		return Number{}
	case n.kind == KindInt && r.kind == KindInt:
		return checked(n.i.add(r.i))
	default:
		return Float(n.Float64() + r.Float64())
	}
}

// Sub returns n - r.
func (n Number) Sub(r Number) Number {
	switch {
	case n.kind == KindNaN || r.kind == KindNaN:
		return Number{}
	case n.kind == KindInt && r.kind == KindInt:
		return checked(n.i.sub(r.i))
	default:
		return Float(n.Float64() - r.Float64())
	}
}

// Mul returns n * r.
func (n Number) Mul(r Number) Number {
	switch {
	case n.kind == KindNaN || r.kind == KindNaN:
		return Number{}
	case n.kind == KindInt && r.kind == KindInt:
		return checked(n.i.mul(r.i))
	default:
		return Float(n.Float64() * r.Float64())
	}
}

// Div returns n / r. Integer division is exact when the remainder is zero and
// falls back to float division otherwise.
func (n Number) Div(r Number) Number {
	switch {
	case n.kind == KindNaN || r.kind == KindNaN:
		return Number{}
	case n.kind == KindInt && r.kind == KindInt:
		q, rem, ok := n.i.quoRem(r.i)
		if rem.isZero() {
			// This still fails for a zero divisor or an overflowing quotient.
			return checked(q, ok)
		}
		return Float(n.Float64() / r.Float64())
	default:
		return Float(n.Float64() / r.Float64())
	}
}

// Mod returns the remainder of n / r. Integers use the truncated remainder,
// which has the sign of n. Floats use the Euclidean remainder, which is never
// negative.
func (n Number) Mod(r Number) Number {
	switch {
	case n.kind == KindNaN || r.kind == KindNaN:
		return Number{}
	case n.kind == KindInt && r.kind == KindInt:
		return checked(n.i.rem(r.i))
	default:
		y := r.Float64()
		m := math.Mod(n.Float64(), y)
		if m < 0 {
			m += math.Abs(y)
		}
		return Float(m)
	}
}

// Pow returns n ^ r. An integer base with an integer exponent stays an
// integer; the exponent must then be in [0, 2^32-1].
func (n Number) Pow(r Number) Number {
	switch {
	case n.kind == KindNaN || r.kind == KindNaN:
		return Number{}
	case n.kind == KindInt && r.kind == KindInt:
		if r.i.hi != 0 || r.i.lo > math.MaxUint32 {
			return Number{}
		}
		return checked(n.i.pow(uint32(r.i.lo)))
	default:
		return Float(math.Pow(n.Float64(), r.Float64()))
	}
}

// Neg returns -n.
func (n Number) Neg() Number {
	switch n.kind {
	case KindInt:
		return checked(n.i.neg())
	case KindFloat:
		return Float(-n.f)
	default:
		return Number{}
	}
}

// Abs returns the absolute value of n, keeping its kind.
func (n Number) Abs() Number {
	switch n.kind {
	case KindInt:
		if n.i.sign() < 0 {
			return checked(n.i.neg())
		}
		return n
	case KindFloat:
		return Float(math.Abs(n.f))
	default:
		return Number{}
	}
}
