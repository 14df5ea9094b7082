package zerocalc

import "strings"

// Line is the outcome of one line of a sheet.
type Line struct {
	// Text is the line as given, without its line terminator.
	Text string
	// Produced is false for blank lines and lines with syntax errors.
	Produced bool
	// Program is the compiled line if Produced.
	Program Program
	// Result is the value of the line if Produced.
	Result Number
	// Err is the syntax error in the line, if any.
	Err *SyntaxError
}

// String renders the line's result: nothing for a blank line, Error for a
// syntax error, and the value otherwise.
func (l Line) String() string {
	switch {
	case l.Err != nil:
		return "Error"
	case !l.Produced:
		return ""
	default:
		return l.Result.String()
	}
}

// EvalSheet evaluates each line of text in order with a single calculator, so
// variables assigned on one line are visible on later lines. Lines end at \n;
// a trailing \r is dropped.
func EvalSheet(text string, opts ...CalcOption) []Line {
	c := NewCalculator(opts...)
	src := strings.Split(text, "\n")
	lines := make([]Line, 0, len(src))
	for _, s := range src {
		s = strings.TrimSuffix(s, "\r")
		lines = append(lines, c.line(s))
	}
	return lines
}

func (c *Calculator) line(s string) Line {
	l := Line{Text: s}
	p := NewParser(s)
	ok, err := p.Parse()
	if err != nil {
		// Parser errors are always *SyntaxError.
		l.Err = err.(*SyntaxError)
		return l
	}
	if !ok {
		return l
	}
	l.Produced = true
	l.Program = p.Program
	l.Result = c.Eval(p.Program)
	return l
}
