package zerocalc

import (
	"strconv"
	"strings"
)

// Op is an arithmetic operator.
type Op int8

const (
	OpAdd Op = iota // a + b
	OpSub           // a - b
	OpMul           // a * b
	OpDiv           // a / b
	OpMod           // a % b
	OpPow           // a ^ b
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	case OpMod:
		return "Mod"
	case OpPow:
		return "Pow"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// InstrKind is the kind of an Instruction.
type InstrKind int8

const (
	instrNone InstrKind = iota

	InstrPush   // push Num
	InstrBinary // pop right, pop left, push left Op right
	InstrUnary  // pop, push Op applied to it
	InstrCall   // Fn pops its arguments, push its result
	InstrAssign // pop, store under Name, push back
	InstrLoad   // push the value of Name
)

// Instruction is one step of a compiled program. Only the fields relevant to
// Kind are set, so instructions compare equal with == exactly when they do
// the same thing.
type Instruction struct {
	Kind InstrKind
	Num  Number
	Op   Op
	Fn   Function
	Name string
}

// Push creates an instruction pushing n.
func Push(n Number) Instruction {
	return Instruction{Kind: InstrPush, Num: n}
}

// BinaryOp creates an instruction applying a binary operator.
func BinaryOp(op Op) Instruction {
	return Instruction{Kind: InstrBinary, Op: op}
}

// UnaryOp creates an instruction applying a unary operator. Only OpAdd and
// OpSub are meaningful; others evaluate to NaN.
func UnaryOp(op Op) Instruction {
	return Instruction{Kind: InstrUnary, Op: op}
}

// CallFunction creates an instruction calling f.
func CallFunction(f Function) Instruction {
	return Instruction{Kind: InstrCall, Fn: f}
}

// Assign creates an instruction storing the top of the stack in a variable.
func Assign(name string) Instruction {
	return Instruction{Kind: InstrAssign, Name: name}
}

// LoadVariable creates an instruction pushing the value of a variable.
func LoadVariable(name string) Instruction {
	return Instruction{Kind: InstrLoad, Name: name}
}

func (in Instruction) String() string {
	switch in.Kind {
	case InstrPush:
		return in.Num.String()
	case InstrBinary:
		return in.Op.String()
	case InstrUnary:
		switch in.Op {
		case OpAdd:
			return "Plus"
		case OpSub:
			return "Neg"
		}
		return "Unary" + in.Op.String()
	case InstrCall:
		return "Call(" + in.Fn.Name() + ")"
	case InstrAssign:
		return "Assign(" + in.Name + ")"
	case InstrLoad:
		return "Load(" + in.Name + ")"
	default:
		return "$invalid$"
	}
}

// Program is a compiled expression: instructions for a stack machine in
// postfix order.
type Program []Instruction

// String formats the program as space-separated instructions, e.g.
// "1 2 3 Sub Sub" for 1-2-3.
func (p Program) String() string {
	var b strings.Builder
	for i, in := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(in.String())
	}
	return b.String()
}
