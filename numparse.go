package zerocalc

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrSyntax means a literal has no digits or a digit invalid for its base.
	ErrSyntax = errors.New("invalid digit")
	// ErrRange means a literal is too large to represent.
	ErrRange = errors.New("value out of range")
	// ErrPrefix means a literal lacks its 0b, 0o or 0x base prefix.
	ErrPrefix = errors.New("missing base prefix")
	// ErrUnknownConst means a name is not a known constant.
	ErrUnknownConst = errors.New("unknown constant")
)

// LiteralError is an error converting the text of a numeric literal. It
// unwraps to one of ErrSyntax, ErrRange, ErrPrefix, or ErrUnknownConst.
type LiteralError struct {
	// Text is the literal as given.
	Text string
	// Kind names the literal kind, e.g. "binary" or "float".
	Kind string
	// Err is the reason.
	Err error
}

func (err *LiteralError) Error() string {
	return "invalid " + err.Kind + " literal " + strconv.Quote(err.Text) + ": " + err.Err.Error()
}

func (err *LiteralError) Unwrap() error {
	return err.Err
}

// sanitize removes digit separators: whitespace and underscores.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// parseInt128 parses digits in the given base. A single leading sign is
// accepted.
func parseInt128(text, digits, kind string, base int) (Number, error) {
	if digits == "" || digits == "+" || digits == "-" {
		return Number{}, &LiteralError{Text: text, Kind: kind, Err: ErrSyntax}
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Number{}, &LiteralError{Text: text, Kind: kind, Err: ErrSyntax}
	}
	x, ok := int128FromBig(v)
	if !ok {
		return Number{}, &LiteralError{Text: text, Kind: kind, Err: ErrRange}
	}
	return Number{kind: KindInt, i: x}, nil
}

func parsePrefixed(text, prefix, kind string, base int) (Number, error) {
	s := sanitize(text)
	if !strings.HasPrefix(s, prefix) {
		return Number{}, &LiteralError{Text: text, Kind: kind, Err: ErrPrefix}
	}
	return parseInt128(text, s[len(prefix):], kind, base)
}

// ParseInt parses a decimal integer literal. Spaces and underscores between
// digits are ignored.
func ParseInt(text string) (Number, error) {
	return parseInt128(text, sanitize(text), "decimal", 10)
}

// ParseIntBin parses a binary integer literal, which must start with 0b.
func ParseIntBin(text string) (Number, error) {
	return parsePrefixed(text, "0b", "binary", 2)
}

// ParseIntOct parses an octal integer literal, which must start with 0o.
func ParseIntOct(text string) (Number, error) {
	return parsePrefixed(text, "0o", "octal", 8)
}

// ParseIntHex parses a hexadecimal integer literal, which must start with 0x.
func ParseIntHex(text string) (Number, error) {
	return parsePrefixed(text, "0x", "hexadecimal", 16)
}

// ParseFloat parses a float literal such as "1.5", ".2e-3", or "1 000.5".
// Literals beyond the float64 range are an error rather than an infinity.
func ParseFloat(text string) (Number, error) {
	s := sanitize(text)
	if strings.ContainsAny(s, "xXpPnN") {
		// Reject hex floats and the words inf and nan, which strconv accepts.
		return Number{}, &LiteralError{Text: text, Kind: "float", Err: ErrSyntax}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(f, 0) {
			return Number{}, &LiteralError{Text: text, Kind: "float", Err: ErrRange}
		}
		if !errors.Is(err, strconv.ErrRange) {
			return Number{}, &LiteralError{Text: text, Kind: "float", Err: ErrSyntax}
		}
		// Underflow rounds to zero, which is representable.
	}
	return Float(f), nil
}

// ParseConst resolves a named constant: pi or e.
func ParseConst(name string) (Number, error) {
	switch name {
	case "pi":
		return Float(math.Pi), nil
	case "e":
		return Float(math.E), nil
	default:
		return Number{}, &LiteralError{Text: name, Kind: "constant", Err: ErrUnknownConst}
	}
}
