package zerocalc

import (
	"strconv"
	"strings"
)

// Grammar. Every binary level recurses into itself for its right operand, so
// operators of equal precedence group right to left: 1-2-3 is 1-(2-3).
//
// exp    = assign | exp1 | ε
// assign = ident '=' exp1
// exp1   = exp2 [ ('+' | '-') exp1 ]
// exp2   = exp3 [ ('*' | '/' | '%') exp2 ]
// exp3   = fact [ '^' exp3 ]
// fact   = ('+' | '-') fact | '(' exp1 ')' | call | assign | ident | literal
// call   = ident '(' exp1 { ',' exp1 } ')'

// Parser compiles one expression to a Program.
type Parser struct {
	// Program is the compiled expression after a successful Parse.
	Program Program

	src  string
	scan *Tokenizer
	// cur is the token being parsed; next is one token of lookahead, needed
	// to tell a variable from a call or an assignment.
	cur, next Token
}

const (
	errUnexpected = "unexpected token"
	errEOF        = "unexpected end of input"
)

// NewParser creates a parser for src.
func NewParser(src string) *Parser {
	return &Parser{src: src}
}

// Parse compiles the source. The result is false with a nil error if the
// source is blank. Otherwise, the error is a *SyntaxError if the source is
// not exactly one expression.
func (p *Parser) Parse() (bool, error) {
	p.Program = nil
	p.scan = NewTokenizer(p.src)
	p.cur = p.scan.Next()
	p.next = p.scan.Next()
	ok, err := p.parseExp()
	if err != nil {
		return false, err
	}
	if p.cur.Kind != TokenEOF {
		return false, p.fail(errUnexpected)
	}
	return ok, nil
}

// bump advances to the next token.
func (p *Parser) bump() {
	p.cur = p.next
	p.next = p.scan.Next()
}

func (p *Parser) text() string {
	return p.cur.Text(p.src)
}

func (p *Parser) emit(in Instruction) {
	p.Program = append(p.Program, in)
}

// fail creates a syntax error at the current token.
func (p *Parser) fail(msg string) error {
	return &SyntaxError{Msg: msg, Span: p.cur.Span()}
}

// wrap creates a syntax error at the current token from an underlying error.
func (p *Parser) wrap(err error) error {
	return &SyntaxError{Msg: err.Error(), Span: p.cur.Span(), Err: err}
}

func (p *Parser) parseExp() (bool, error) {
	switch {
	case p.cur.Kind == TokenEOF:
		return false, nil
	case p.cur.Kind == TokenIdent && p.next.Kind == TokenAssign:
		return p.parseAssign()
	default:
		return p.parseExp1()
	}
}

// parseBinary parses one precedence level: an operand from sub, then, if the
// current token is one of ops, the operator and a right operand from the same
// level.
func (p *Parser) parseBinary(sub, self func() (bool, error), ops map[TokenKind]Op) (bool, error) {
	has, err := sub()
	if err != nil {
		return false, err
	}
	op, ok := ops[p.cur.Kind]
	if !ok {
		return has, nil
	}
	p.bump()
	rhs, err := self()
	if err != nil {
		return false, err
	}
	if !rhs {
		return false, p.fail(errEOF)
	}
	p.emit(BinaryOp(op))
	return true, nil
}

var (
	addOps = map[TokenKind]Op{TokenAdd: OpAdd, TokenSub: OpSub}
	mulOps = map[TokenKind]Op{TokenMul: OpMul, TokenDiv: OpDiv, TokenMod: OpMod}
	powOps = map[TokenKind]Op{TokenPow: OpPow}
)

func (p *Parser) parseExp1() (bool, error) {
	return p.parseBinary(p.parseExp2, p.parseExp1, addOps)
}

func (p *Parser) parseExp2() (bool, error) {
	return p.parseBinary(p.parseExp3, p.parseExp2, mulOps)
}

func (p *Parser) parseExp3() (bool, error) {
	return p.parseBinary(p.parseFact, p.parseExp3, powOps)
}

func (p *Parser) parseAssign() (bool, error) {
	name := strings.TrimSpace(p.text())
	p.bump()
	p.bump() // =
	ok, err := p.parseExp1()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, p.fail("missing right side of assignment")
	}
	p.emit(Assign(name))
	return true, nil
}

func (p *Parser) parseFact() (bool, error) {
	switch p.cur.Kind {
	case TokenAdd, TokenSub:
		op := addOps[p.cur.Kind]
		p.bump()
		ok, err := p.parseFact()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, p.fail("unary operator needs expression")
		}
		p.emit(UnaryOp(op))
		return true, nil
	case TokenLpar:
		p.bump()
		ok, err := p.parseExp1()
		if err != nil {
			return false, err
		}
		if p.cur.Kind != TokenRpar {
			return false, p.fail("missing closing parenthesis")
		}
		p.bump()
		return ok, nil
	case TokenLiteral:
		return p.parseLiteral()
	case TokenIdent:
		switch p.next.Kind {
		case TokenLpar:
			return p.parseCall()
		case TokenAssign:
			return p.parseAssign()
		default:
			return p.parseIdent()
		}
	case TokenEOF:
		return false, nil
	default:
		return false, p.fail(errUnexpected)
	}
}

func (p *Parser) parseCall() (bool, error) {
	f, err := LookupFunction(strings.TrimSpace(p.text()))
	if err != nil {
		return false, p.wrap(err)
	}
	p.bump()
	p.bump() // (
	n := f.Arity()
	for i := 1; i <= n; i++ {
		if k := p.cur.Kind; k == TokenComma || k == TokenRpar {
			return false, p.fail(argEmpty(i))
		}
		ok, err := p.parseExp1()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, p.fail(argEmpty(i))
		}
		switch {
		case i == n && p.cur.Kind != TokenRpar:
			return false, p.fail("expected closing bracket")
		case i < n && p.cur.Kind == TokenRpar:
			return false, p.fail("invalid number of arguments")
		case i < n && p.cur.Kind != TokenComma:
			return false, p.fail("expected comma")
		}
		p.bump() // , or )
	}
	p.emit(CallFunction(f))
	return true, nil
}

func argEmpty(i int) string {
	return "argument " + strconv.Itoa(i) + " is empty"
}

func (p *Parser) parseIdent() (bool, error) {
	name := strings.TrimSpace(p.text())
	if c, err := ParseConst(name); err == nil {
		p.emit(Push(c))
	} else {
		p.emit(LoadVariable(name))
	}
	p.bump()
	return true, nil
}

// intParsers holds the integer literal parsers by base.
var intParsers = map[Base]func(string) (Number, error){
	Bin: ParseIntBin,
	Oct: ParseIntOct,
	Dec: ParseInt,
	Hex: ParseIntHex,
}

func (p *Parser) parseLiteral() (bool, error) {
	var (
		n   Number
		err error
	)
	text := p.text()
	switch k := p.cur.Literal; {
	case k.Base() != 0:
		n, err = intParsers[k.Base()](text)
	case k == LiteralFloat:
		n, err = ParseFloat(text)
	case k == LiteralString:
		return false, p.fail("unexpected string literal")
	default:
		return false, p.fail(errUnexpected)
	}
	if err != nil {
		return false, p.wrap(err)
	}
	p.emit(Push(n))
	p.bump()
	return true, nil
}
