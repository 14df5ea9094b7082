package zerocalc

import "strconv"

// Span locates a token or an error in the source as a byte offset and a byte
// length.
type Span struct {
	Start int
	Len   int
}

// End is the offset just past the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// SyntaxError is an error compiling an expression. It implements InputError.
type SyntaxError struct {
	// Msg describes the problem without position information.
	Msg string
	// Span is the span of the offending token.
	Span Span
	// Err is the underlying error, if any, e.g. a *LiteralError.
	Err error
}

func (err *SyntaxError) Error() string {
	return errpos(err.Span.Start, err.Msg)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

func (err *SyntaxError) Pos() int {
	return err.Span.Start
}

// UnknownFunctionError is an error looking up a function name.
type UnknownFunctionError struct {
	Name string
}

func (err *UnknownFunctionError) Error() string {
	return "unknown function " + err.Name
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input to a Parser implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset of the start of the token that caused the
	// error.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)
