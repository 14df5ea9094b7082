package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"github.com/michal1024/zerocalc"
)

type printer struct {
	w     io.Writer
	color *color.Color
	echo  bool
	log   *logrus.Logger
}

// line prints the outcome of one input line. Blank lines print nothing.
func (p *printer) line(n int, l zerocalc.Line) {
	if l.Err != nil {
		p.log.WithFields(logrus.Fields{"line": n, "pos": l.Err.Pos()}).Debug(l.Err.Msg)
		p.syntaxError(l.Text, l.Err)
		return
	}
	if !l.Produced {
		return
	}
	if p.echo || p.log.IsLevelEnabled(logrus.DebugLevel) {
		p.log.WithFields(logrus.Fields{"line": n, "program": l.Program.String()}).Debug("compiled")
		if p.echo {
			fmt.Fprintf(p.w, "%v : ", l.Program)
		}
	}
	fmt.Fprintln(p.w, l.Result)
}

// syntaxError prints the source line with a run of carets under the span of
// the error, followed by the message.
func (p *printer) syntaxError(text string, err *zerocalc.SyntaxError) {
	fmt.Fprintln(p.w, text)
	fmt.Fprintln(p.w, strings.Repeat(" ", caretCol(text, err.Span))+p.color.Red(carets(text, err.Span)))
	fmt.Fprintln(p.w, p.color.Red(err.Msg))
}

// caretCol is the column of the start of s, counting runes.
func caretCol(text string, s zerocalc.Span) int {
	return utf8.RuneCountInString(text[:s.Start])
}

// carets marks the span with one caret per rune. Empty spans, such as the end
// of input, get a single caret.
func carets(text string, s zerocalc.Span) string {
	n := utf8.RuneCountInString(strings.TrimRight(text[s.Start:s.End()], " "))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("^", n)
}
