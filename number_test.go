package zerocalc

import (
	"math"
	"math/big"
	"testing"
)

var (
	maxInt = Number{kind: KindInt, i: maxInt128}
	minInt = Number{kind: KindInt, i: minInt128}
)

func TestInt128RoundTrip(t *testing.T) {
	cases := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(math.MaxInt64),
		big.NewInt(math.MinInt64),
		new(big.Int).Lsh(big.NewInt(1), 64),
		new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 64)),
		maxI128,
		minI128,
	}
	for _, c := range cases {
		x, ok := int128FromBig(c)
		if !ok {
			t.Errorf("%v reported out of range", c)
			continue
		}
		if got := x.big(); got.Cmp(c) != 0 {
			t.Errorf("%v round trips to %v", c, got)
		}
	}
	if x, _ := int128FromBig(maxI128); x != maxInt128 {
		t.Errorf("max: got %#v, want %#v", x, maxInt128)
	}
	if x, _ := int128FromBig(minI128); x != minInt128 {
		t.Errorf("min: got %#v, want %#v", x, minInt128)
	}
	over := new(big.Int).Add(maxI128, big.NewInt(1))
	if _, ok := int128FromBig(over); ok {
		t.Errorf("%v not reported out of range", over)
	}
	under := new(big.Int).Sub(minI128, big.NewInt(1))
	if _, ok := int128FromBig(under); ok {
		t.Errorf("%v not reported out of range", under)
	}
}

func TestNumberOps(t *testing.T) {
	cases := []struct {
		name string
		l    Number
		op   Op
		r    Number
		want Number
	}{
		{"add", Int(2), OpAdd, Int(3), Int(5)},
		{"add-mixed", Int(2), OpAdd, Float(0.5), Float(2.5)},
		{"add-overflow", maxInt, OpAdd, Int(1), NaN()},
		{"add-nan", NaN(), OpAdd, Int(1), NaN()},
		{"add-nan-right", Float(1), OpAdd, NaN(), NaN()},
		{"sub", Int(2), OpSub, Int(3), Int(-1)},
		{"sub-overflow", minInt, OpSub, Int(1), NaN()},
		{"sub-float", Float(0.5), OpSub, Float(0.25), Float(0.25)},
		{"mul", Int(-4), OpMul, Int(3), Int(-12)},
		{"mul-overflow", maxInt, OpMul, Int(2), NaN()},
		{"mul-float-overflow", Float(math.MaxFloat64), OpMul, Float(2), NaN()},
		{"div-exact", Int(4), OpDiv, Int(2), Int(2)},
		{"div-exact-neg", Int(-9), OpDiv, Int(3), Int(-3)},
		{"div-inexact-neg", Int(-7), OpDiv, Int(2), Float(-3.5)},
		{"div-zero", Int(1), OpDiv, Int(0), NaN()},
		{"div-zero-zero", Int(0), OpDiv, Int(0), NaN()},
		{"div-float-zero", Float(1), OpDiv, Float(0), NaN()},
		{"div-mixed-zero", Float(1), OpDiv, Int(0), NaN()},
		{"div-min", minInt, OpDiv, Int(-1), NaN()},
		{"div-big", maxInt, OpDiv, maxInt, Int(1)},
		{"mod", Int(3), OpMod, Int(2), Int(1)},
		{"mod-neg", Int(-7), OpMod, Int(3), Int(-1)},
		{"mod-zero", Int(3), OpMod, Int(0), NaN()},
		{"mod-min", minInt, OpMod, Int(-1), NaN()},
		{"mod-float", Float(5.5), OpMod, Int(2), Float(1.5)},
		{"mod-float-neg", Float(-1), OpMod, Float(3), Float(2)},
		{"mod-float-neg-divisor", Float(-1), OpMod, Float(-3), Float(2)},
		{"mod-float-zero", Float(1), OpMod, Float(0), NaN()},
		{"pow", Int(2), OpPow, Int(10), Int(1024)},
		{"pow-zero", Int(0), OpPow, Int(0), Int(1)},
		{"pow-neg-base", Int(-2), OpPow, Int(3), Int(-8)},
		{"pow-min", Int(-2), OpPow, Int(127), minInt},
		{"pow-overflow", Int(2), OpPow, Int(127), NaN()},
		{"pow-overflow-big", Int(3), OpPow, Int(1 << 31), NaN()},
		{"pow-one-huge", Int(1), OpPow, Int(math.MaxUint32), Int(1)},
		{"pow-neg-one-odd", Int(-1), OpPow, Int(math.MaxUint32), Int(-1)},
		{"pow-neg-one-even", Int(-1), OpPow, Int(math.MaxUint32 - 1), Int(1)},
		{"pow-exp-too-big", Int(1), OpPow, Int(math.MaxUint32 + 1), NaN()},
		{"pow-neg-exp", Int(2), OpPow, Int(-1), NaN()},
		{"pow-float", Int(4), OpPow, Float(0.5), Float(2)},
		{"pow-float-neg-base", Float(-8), OpPow, Float(0.5), NaN()},
		{"pow-float-overflow", Float(10), OpPow, Int(400), NaN()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.l.Apply(c.op, c.r); got != c.want {
				t.Errorf("%v %v %v: want %v (%v), got %v (%v)", c.l, c.op, c.r, c.want, c.want.Kind(), got, got.Kind())
			}
		})
	}
}

func TestNumberInexactDiv(t *testing.T) {
	r := Int(2).Div(Int(3))
	if r.Kind() != KindFloat {
		t.Fatalf("2/3 gave %v, not a float", r.Kind())
	}
	if f := r.Float64(); math.Abs(f-0.6667) > 0.01 {
		t.Errorf("2/3 gave %v", f)
	}
}

func TestNumberUnary(t *testing.T) {
	cases := []struct {
		name string
		f    func(Number) Number
		x    Number
		want Number
	}{
		{"neg", Number.Neg, Int(2), Int(-2)},
		{"neg-float", Number.Neg, Float(2.5), Float(-2.5)},
		{"neg-min", Number.Neg, minInt, NaN()},
		{"neg-max", Number.Neg, maxInt, Number{kind: KindInt, i: int128{hi: -1 << 63, lo: 1}}},
		{"neg-nan", Number.Neg, NaN(), NaN()},
		{"abs", Number.Abs, Int(-2), Int(2)},
		{"abs-pos", Number.Abs, Int(2), Int(2)},
		{"abs-float", Number.Abs, Float(-0.5), Float(0.5)},
		{"abs-min", Number.Abs, minInt, NaN()},
		{"abs-nan", Number.Abs, NaN(), NaN()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.f(c.x); got != c.want {
				t.Errorf("%v: want %v, got %v", c.x, c.want, got)
			}
		})
	}
}

func TestNumberFloatNormalizes(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if n := Float(f); !n.IsNaN() || n != NaN() {
			t.Errorf("Float(%v) = %v (%v)", f, n, n.Kind())
		}
	}
	var zero Number
	if !zero.IsNaN() {
		t.Error("zero Number is not NaN")
	}
}

func TestNumberString(t *testing.T) {
	cases := []struct {
		n    Number
		want string
	}{
		{Int(0), "0"},
		{Int(-42), "-42"},
		{maxInt, "170141183460469231731687303715884105727"},
		{minInt, "-170141183460469231731687303715884105728"},
		{Float(1), "1"},
		{Float(0.1), "0.1"},
		{Float(-2.5), "-2.5"},
		{Float(1e20), "100000000000000000000"},
		{Float(1e-7), "0.0000001"},
		{NaN(), "NaN"},
	}
	for _, c := range cases {
		if got := c.n.String(); got != c.want {
			t.Errorf("want %s, got %s", c.want, got)
		}
	}
}

func TestNumberConversions(t *testing.T) {
	if v, ok := Int(-5).Int64(); !ok || v != -5 {
		t.Errorf("Int64 of -5: %d %t", v, ok)
	}
	if _, ok := maxInt.Int64(); ok {
		t.Error("max int128 fits in int64")
	}
	if _, ok := Float(1).Int64(); ok {
		t.Error("float converted to int64")
	}
	if b := maxInt.BigInt(); b == nil || b.Cmp(maxI128) != 0 {
		t.Errorf("BigInt of max: %v", b)
	}
	if b := Float(1).BigInt(); b != nil {
		t.Errorf("BigInt of float: %v", b)
	}
	if f := maxInt.Float64(); f != math.Ldexp(1, 127) {
		t.Errorf("Float64 of max: %g", f)
	}
	if f := NaN().Float64(); !math.IsNaN(f) {
		t.Errorf("Float64 of NaN: %g", f)
	}
	if n := IntFromBig(new(big.Int).Lsh(big.NewInt(1), 127)); !n.IsNaN() {
		t.Errorf("IntFromBig(2^127) = %v", n)
	}
}
