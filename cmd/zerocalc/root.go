package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/michal1024/zerocalc"
)

// errSyntax is returned when any input line has a syntax error. The errors
// themselves are already printed beside the input.
var errSyntax = errors.New("syntax errors in input")

type options struct {
	in      string
	given   []string
	echo    bool
	color   bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "zerocalc [flags] [expression...]",
		Short: "zerocalc evaluates calculator expressions",
		Long:  longHelp(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &o, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	f := cmd.Flags()
	f.StringVarP(&o.in, "in", "i", "", "input file, - for stdin (default stdin if no expressions are given)")
	f.StringArrayVar(&o.given, "given", nil, "name=value variable definition (any number of times)")
	f.BoolVar(&o.echo, "echo", false, "print compiled programs")
	f.BoolVar(&o.color, "color", isatty.IsTerminal(os.Stdout.Fd()), "color error markers")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log debug information")
	return cmd
}

func longHelp() string {
	var b strings.Builder
	b.WriteString(`zerocalc evaluates one expression per line. Variables assigned on one line
are visible on the following lines.

Numbers can have spaces and underscores: 1 000_000, 0b1010_1010, 0xff_ff.
Floats can use scientific notation: 2e-2.

Operators: + - * / % ^, grouped right to left within a precedence level.
Constants: e, pi.
Variables: x = (1 + 2), then y = x / 3.

Functions:
`)
	for _, f := range zerocalc.Functions() {
		args := "x"
		if f.Arity() == 2 {
			args = "x, y"
		}
		fmt.Fprintf(&b, "  %-12s %s\n", f.Name()+"("+args+")", f.Help())
	}
	return b.String()
}

func run(cmd *cobra.Command, o *options, args []string) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	vars, err := given(o.given, log)
	if err != nil {
		return err
	}

	var src []string
	if o.in != "" || len(args) == 0 {
		text, err := readInput(cmd.InOrStdin(), o.in)
		if err != nil {
			return err
		}
		src = append(src, strings.TrimSuffix(text, "\n"))
	}
	src = append(src, args...)

	c := color.New()
	if o.color {
		c.Enable()
	} else {
		c.Disable()
	}
	p := printer{w: cmd.OutOrStdout(), color: c, echo: o.echo, log: log}

	failed := false
	for i, l := range zerocalc.EvalSheet(strings.Join(src, "\n"), zerocalc.SetVars(vars)) {
		if l.Err != nil {
			failed = true
		}
		p.line(i+1, l)
	}
	if failed {
		return errSyntax
	}
	return nil
}

// given evaluates --given definitions in order. Each value may use the
// variables defined before it.
func given(defs []string, log *logrus.Logger) (map[string]zerocalc.Number, error) {
	vars := make(map[string]zerocalc.Number, len(defs))
	c := zerocalc.NewCalculator()
	for _, s := range defs {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 || strings.TrimSpace(d[0]) == "" {
			return nil, fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		name := strings.TrimSpace(d[0])
		r, ok, err := c.Run(d[1])
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", name, err)
		}
		if !ok {
			return nil, fmt.Errorf("setting %s: no value in %q", name, s)
		}
		log.WithFields(logrus.Fields{"name": name, "value": r}).Debug("defined variable")
		c.Set(name, r)
		vars[name] = r
	}
	return vars, nil
}

func readInput(stdin io.Reader, name string) (string, error) {
	if name == "" || name == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
