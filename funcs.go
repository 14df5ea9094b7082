package zerocalc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Function is a builtin function resolved by name at parse time. Functions
// compare equal with == when they are the same builtin.
type Function struct {
	id funcID
}

type funcID uint8

const (
	funcNone funcID = iota
	funcSin
	funcCos
	funcTan
	funcAsin
	funcAcos
	funcAtan
	funcLn
	funcLog10
	funcSqrt
	funcAbs
	funcLog
	funcRoot
	funcCount
)

type builtin struct {
	name  string
	arity int
	help  string
	call  func(s *Stack) Number
}

// builtins is the function table. It is never modified.
var builtins = [funcCount]builtin{
	funcSin:   {"sin", 1, "sine of x, x in radians", monadic(math.Sin)},
	funcCos:   {"cos", 1, "cosine of x, x in radians", monadic(math.Cos)},
	funcTan:   {"tan", 1, "tangent of x, x in radians", monadic(math.Tan)},
	funcAsin:  {"asin", 1, "arcsine of x, in radians", monadic(math.Asin)},
	funcAcos:  {"acos", 1, "arccosine of x, in radians", monadic(math.Acos)},
	funcAtan:  {"atan", 1, "arctangent of x, in radians", monadic(math.Atan)},
	funcLn:    {"ln", 1, "natural logarithm of x", monadic(math.Log)},
	funcLog10: {"log10", 1, "common logarithm of x", monadic(math.Log10)},
	funcSqrt:  {"sqrt", 1, "square root of x", monadic(math.Sqrt)},
	funcAbs:   {"abs", 1, "absolute value of x", abs},
	funcLog:   {"log", 2, "base y logarithm of x", dyadic(logb)},
	funcRoot:  {"root", 2, "y'th root of x", dyadic(root)},
}

// byName indexes builtins.
var byName = func() map[string]funcID {
	m := make(map[string]funcID, len(builtins))
	for id := funcNone + 1; id < funcCount; id++ {
		m[builtins[id].name] = id
	}
	return m
}()

// LookupFunction resolves a builtin by exact name. The error is an
// *UnknownFunctionError if there is no such function.
func LookupFunction(name string) (Function, error) {
	id, ok := byName[name]
	if !ok {
		return Function{}, &UnknownFunctionError{Name: name}
	}
	return Function{id: id}, nil
}

// Functions lists all builtins in a fixed order.
func Functions() []Function {
	r := make([]Function, 0, len(builtins)-1)
	for id := funcNone + 1; id < funcCount; id++ {
		r = append(r, Function{id: id})
	}
	return r
}

// Name returns the function's name, or the empty string for the zero
// Function.
func (f Function) Name() string {
	return builtins[f.id].name
}

// Arity returns the number of arguments the function takes.
func (f Function) Arity() int {
	return builtins[f.id].arity
}

// Help returns a short description of the function.
func (f Function) Help() string {
	return builtins[f.id].help
}

// Call invokes the function on s. It pops exactly Arity values, the last
// argument first, and returns the result without pushing it. Calling the zero
// Function results in NaN.
func (f Function) Call(s *Stack) Number {
	b := builtins[f.id]
	if b.call == nil {
		return Number{}
	}
	return b.call(s)
}

func (f Function) String() string {
	if f.id == funcNone {
		return "Function(none)"
	}
	return f.Name()
}

// monadic wraps a float64 function of one variable.
func monadic(f func(float64) float64) func(s *Stack) Number {
	return func(s *Stack) Number {
		return Float(f(s.Pop().Float64()))
	}
}

// dyadic wraps a function of two variables. NaN arguments give NaN without
// calling f.
func dyadic(f func(x, y float64) float64) func(s *Stack) Number {
	return func(s *Stack) Number {
		y := s.Pop()
		x := s.Pop()
		if x.IsNaN() || y.IsNaN() {
			return Number{}
		}
		return Float(f(x.Float64(), y.Float64()))
	}
}

func abs(s *Stack) Number {
	return s.Pop().Abs()
}

// prec is the precision in bits used for log and root on positive arguments.
// The result is rounded to float64 once at the end.
const prec = 128

// logb computes the base y logarithm of x.
func logb(x, y float64) float64 {
	if !positive(x) || !positive(y) || y == 1 {
		return math.Log(x) / math.Log(y)
	}
	return precise(func() *big.Float {
		lx := bigfloat.Log(newFloat(0), newFloat(x))
		ly := bigfloat.Log(newFloat(0), newFloat(y))
		return lx.Quo(lx, ly)
	})
}

// root computes the y'th root of x as x^(1/y).
func root(x, y float64) float64 {
	if !positive(x) || y == 0 || math.IsInf(y, 0) || math.IsNaN(y) {
		return math.Pow(x, 1/y)
	}
	return precise(func() *big.Float {
		e := newFloat(1)
		e.Quo(e, newFloat(y))
		return bigfloat.Pow(newFloat(0), newFloat(x), e)
	})
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func newFloat(x float64) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// precise evaluates f and rounds its result to float64. bigfloat panics with
// big.ErrNaN outside a function's domain; that becomes NaN.
func precise(f func() *big.Float) (r float64) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err, ok := p.(error)
		if !ok || !errors.As(err, new(big.ErrNaN)) {
			panic(p)
		}
		r = math.NaN()
	}()
	r, _ = f().Float64()
	return r
}
