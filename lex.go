package zerocalc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Token is a lexical token. It refers to the source by offset and never holds
// a copy of the text.
type Token struct {
	Kind    TokenKind
	Literal LiteralKind
	Start   int
	Len     int
}

// Span returns the source span of the token.
func (t Token) Span() Span {
	return Span{Start: t.Start, Len: t.Len}
}

// Text returns the token's text in src, the string it was scanned from.
func (t Token) Text(src string) string {
	return src[t.Start : t.Start+t.Len]
}

func (t Token) String() string {
	k := t.Kind.String()
	if t.Kind == TokenLiteral {
		k = t.Literal.String()
	}
	return k + "@" + strconv.Itoa(t.Start) + "+" + strconv.Itoa(t.Len)
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	// TokenUnknown is a character that starts no token.
	TokenUnknown TokenKind = iota
	// TokenEOF indicates the end of the input.
	TokenEOF
	// TokenLiteral is a number or string literal; see Token.Literal.
	TokenLiteral
	// TokenIdent is a variable, constant, or function name.
	TokenIdent
	TokenAdd // +
	TokenSub // -
	TokenMul // *
	TokenDiv // /
	TokenMod // %
	TokenPow // ^
	// TokenLpar and TokenRpar are parentheses.
	TokenLpar
	TokenRpar
	// TokenComma separates function arguments.
	TokenComma
	// TokenAssign is =.
	TokenAssign
)

var tokenKindNames = [...]string{
	TokenUnknown: "Unknown",
	TokenEOF:     "EOF",
	TokenLiteral: "Literal",
	TokenIdent:   "Ident",
	TokenAdd:     "Add",
	TokenSub:     "Sub",
	TokenMul:     "Mul",
	TokenDiv:     "Div",
	TokenMod:     "Mod",
	TokenPow:     "Pow",
	TokenLpar:    "Lpar",
	TokenRpar:    "Rpar",
	TokenComma:   "Comma",
	TokenAssign:  "Assign",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Base is the radix of an integer literal.
type Base int8

const (
	Bin Base = 2
	Oct Base = 8
	Dec Base = 10
	Hex Base = 16
)

// LiteralKind is the kind of a literal token.
type LiteralKind int8

const (
	LiteralNone LiteralKind = iota
	LiteralBinInt
	LiteralOctInt
	LiteralDecInt
	LiteralHexInt
	LiteralFloat
	LiteralString
)

// IntLiteral returns the literal kind of an integer in base b.
func IntLiteral(b Base) LiteralKind {
	switch b {
	case Bin:
		return LiteralBinInt
	case Oct:
		return LiteralOctInt
	case Hex:
		return LiteralHexInt
	default:
		return LiteralDecInt
	}
}

// Base returns the radix of an integer literal kind, or 0 for other kinds.
func (k LiteralKind) Base() Base {
	switch k {
	case LiteralBinInt:
		return Bin
	case LiteralOctInt:
		return Oct
	case LiteralDecInt:
		return Dec
	case LiteralHexInt:
		return Hex
	default:
		return 0
	}
}

func (k LiteralKind) String() string {
	switch k {
	case LiteralNone:
		return "None"
	case LiteralBinInt:
		return "BinInt"
	case LiteralOctInt:
		return "OctInt"
	case LiteralDecInt:
		return "DecInt"
	case LiteralHexInt:
		return "HexInt"
	case LiteralFloat:
		return "Float"
	case LiteralString:
		return "String"
	default:
		return "LiteralKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// eof is returned by Tokenizer.first at the end of the input. It is distinct
// from every rune, so a NUL byte in the input is just an unknown token.
const eof rune = -1

// Tokenizer scans tokens from a string on demand.
type Tokenizer struct {
	src string
	pos int
}

// NewTokenizer creates a tokenizer over src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

// first returns the rune at the cursor without consuming it.
func (t *Tokenizer) first() rune {
	if t.pos >= len(t.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(t.src[t.pos:])
	return r
}

// bump consumes the rune at the cursor. It does nothing at the end of input.
func (t *Tokenizer) bump() {
	if t.pos >= len(t.src) {
		return
	}
	_, sz := utf8.DecodeRuneInString(t.src[t.pos:])
	t.pos += sz
}

// skip consumes runes while pred holds. pred is never called with eof.
func (t *Tokenizer) skip(pred func(rune) bool) {
	for r := t.first(); r != eof && pred(r); r = t.first() {
		t.bump()
	}
}

// Next scans the next token. Once the input is exhausted, every call returns
// an EOF token positioned at the end of the input.
func (t *Tokenizer) Next() Token {
	t.skip(unicode.IsSpace)
	start := t.pos
	tok := Token{Start: start}
	switch r := t.first(); {
	case r == eof:
		tok.Kind = TokenEOF
		return tok
	case '0' <= r && r <= '9', r == '.':
		tok.Kind = TokenLiteral
		tok.Literal = t.scanNum()
	case r == '"':
		tok.Kind = TokenLiteral
		tok.Literal = t.scanString()
	case isIdentStart(r):
		t.skip(isIdent)
		tok.Kind = TokenIdent
	default:
		t.bump()
		tok.Kind = singles[r]
	}
	tok.Len = t.pos - start
	return tok
}

// singles maps one-character tokens. Missing runes map to TokenUnknown.
var singles = map[rune]TokenKind{
	'+': TokenAdd,
	'-': TokenSub,
	'*': TokenMul,
	'/': TokenDiv,
	'%': TokenMod,
	'^': TokenPow,
	'(': TokenLpar,
	')': TokenRpar,
	',': TokenComma,
	'=': TokenAssign,
}

func (t *Tokenizer) scanNum() LiteralKind {
	if t.first() == '0' {
		t.bump()
		switch t.first() {
		case 'b':
			t.bump()
			t.skip(isBinDigit)
			return IntLiteral(Bin)
		case 'o':
			t.bump()
			t.skip(isOctDigit)
			return IntLiteral(Oct)
		case 'x':
			t.bump()
			t.skip(isHexDigit)
			return IntLiteral(Hex)
		}
	}
	kind := IntLiteral(Dec)
	t.skip(isDigit)
	if t.first() == '.' {
		kind = LiteralFloat
		t.bump()
		t.skip(isDigit)
	}
	if r := t.first(); r == 'e' || r == 'E' {
		kind = LiteralFloat
		t.bump()
		t.skip(unicode.IsSpace)
		if r := t.first(); r == '+' || r == '-' {
			t.bump()
		}
		t.skip(isDigit)
	}
	return kind
}

func (t *Tokenizer) scanString() LiteralKind {
	t.bump() // opening quote
	for {
		switch t.first() {
		case eof:
			return LiteralString
		case '"':
			t.bump()
			return LiteralString
		case '\\':
			// The escaped rune is consumed unconditionally below.
			t.bump()
		}
		t.bump()
	}
}

// Digits include the separators space and underscore.

func isDigit(r rune) bool {
	return '0' <= r && r <= '9' || r == ' ' || r == '_'
}

func isBinDigit(r rune) bool {
	return r == '0' || r == '1' || r == ' ' || r == '_'
}

func isOctDigit(r rune) bool {
	return '0' <= r && r <= '7' || r == ' ' || r == '_'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdent(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
