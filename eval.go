package zerocalc

import "slices"

// Stack is the value stack of a Calculator. Builtin functions pop their
// arguments from it.
type Stack []Number

// Push pushes n.
func (s *Stack) Push(n Number) {
	*s = append(*s, n)
}

// Pop removes and returns the top of the stack. Popping an empty stack
// results in NaN. Programs from a Parser never do that.
func (s *Stack) Pop() Number {
	if len(*s) == 0 {
		return Number{}
	}
	n := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return n
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(*s)
}

// Calculator evaluates compiled programs. Variables assigned by one program
// remain visible to later ones. It is not safe to use a Calculator
// concurrently.
type Calculator struct {
	stack Stack
	vars  map[string]Number
}

// CalcOption is an option used when creating a calculator.
type CalcOption interface {
	calcOption()
}

type (
	varopt struct {
		name string
		val  Number
	}
	varsopt map[string]Number
)

func (varopt) calcOption()  {}
func (varsopt) calcOption() {}

// SetVar sets the value of a variable in the calculator.
func SetVar(name string, val Number) CalcOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the calculator.
func SetVars(vars map[string]Number) CalcOption {
	return varsopt(vars)
}

// NewCalculator creates a calculator with no variables other than those set
// by opts. Later options override earlier ones.
func NewCalculator(opts ...CalcOption) *Calculator {
	c := Calculator{vars: make(map[string]Number)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			c.vars[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				c.vars[k] = v
			}
		default:
			panic("zerocalc: unknown option type")
		}
	}
	return &c
}

// Eval runs a program and returns the value on top of the stack afterward.
// An empty program results in NaN.
func (c *Calculator) Eval(p Program) Number {
	c.stack = c.stack[:0]
	for _, in := range p {
		c.exec(in)
	}
	return c.stack.Pop()
}

func (c *Calculator) exec(in Instruction) {
	switch in.Kind {
	case InstrPush:
		c.stack.Push(in.Num)
	case InstrBinary:
		r := c.stack.Pop()
		l := c.stack.Pop()
		c.stack.Push(l.Apply(in.Op, r))
	case InstrUnary:
		x := c.stack.Pop()
		switch in.Op {
		case OpAdd:
			// do nothing
		case OpSub:
			x = x.Neg()
		default:
			x = Number{}
		}
		c.stack.Push(x)
	case InstrCall:
		c.stack.Push(in.Fn.Call(&c.stack))
	case InstrAssign:
		x := c.stack.Pop()
		c.vars[in.Name] = x
		c.stack.Push(x)
	case InstrLoad:
		// Missing variables are NaN, which is the zero value.
		c.stack.Push(c.vars[in.Name])
	default:
		panic("zerocalc: invalid instruction " + in.String())
	}
}

// Set sets the value of a variable. Returns c for chaining.
func (c *Calculator) Set(name string, val Number) *Calculator {
	c.vars[name] = val
	return c
}

// Lookup returns the value of a variable. The second result is false if the
// variable has never been assigned.
func (c *Calculator) Lookup(name string) (Number, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Vars returns the names of all assigned variables in sorted order.
func (c *Calculator) Vars() []string {
	names := make([]string, 0, len(c.vars))
	for k := range c.vars {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Run parses src and evaluates it. The second result is false for blank input,
// in which case the Number is NaN and the calculator is unchanged.
func (c *Calculator) Run(src string) (Number, bool, error) {
	p := NewParser(src)
	ok, err := p.Parse()
	if err != nil || !ok {
		return Number{}, false, err
	}
	return c.Eval(p.Program), true, nil
}

// EvalString is a shortcut to parse and evaluate an expression in a new
// calculator.
func EvalString(src string, opts ...CalcOption) (Number, error) {
	r, _, err := NewCalculator(opts...).Run(src)
	return r, err
}
