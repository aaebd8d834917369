package main

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"zappem.net/pub/io/lined"

	"zappem.net/pub/math/dcm/matrix"
	"zappem.net/pub/math/dcm/render"
	"zappem.net/pub/math/dcm/rotation"
	"zappem.net/pub/math/dcm/terms"
)

// ReplCmd is an interactive text based explorer of rotation sequences.
type ReplCmd struct {
	Precision int `help:"Decimal places to print." default:"6"`
}

const usage = `commands:
  num <axes> <deg>...    compose with angles in degrees, e.g. num zyx 30 15 10
  sym <axes> <name>...   compose with named angles, e.g. sym 321 psi theta phi
  inv                    invert the current matrix
  simp                   simplify the current symbolic matrix
  eval <name>=<deg>...   evaluate the current symbolic matrix
  latex                  print the current symbolic matrix as LaTeX
  check                  check the current matrix is a rotation
  exit                   leave
`

var (
	tok   = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9_]*|[-+]?[0-9]*\.?[0-9]+([eE][-+]?[0-9]+)?|[=,]|#.*|\s*)`)
	space = regexp.MustCompile(`^\s+$`)

	errExit = errors.New("exit")
)

// split tokenizes the input. Commas and comments are dropped.
func split(line string) (toks []string) {
	for i := 0; i < len(line); i++ {
		loc := tok.FindStringIndex(line[i:])
		if loc == nil || loc[1] == 0 {
			toks = append(toks, line[i:])
			break
		}
		start := i + loc[0]
		end := i + loc[1]
		i = end - 1
		s := line[start:end]
		if space.MatchString(s) || s == "," || strings.HasPrefix(s, "#") {
			continue
		}
		toks = append(toks, s)
	}
	return toks
}

// session holds the most recent matrix of a REPL.
type session struct {
	log       *zap.Logger
	precision int

	label string
	num   *matrix.Matrix[float64]
	sym   *matrix.Matrix[*terms.Exp]
}

func (s *session) show(w io.Writer) {
	if s.sym != nil {
		showSymbolic(w, s.label, s.sym)
		return
	}
	showNumeric(w, s.label, s.num, s.precision)
}

// exec runs one line of input, writing results to w. It returns errExit
// when the session should end.
func (s *session) exec(line string, w io.Writer) error {
	toks := split(line)
	if len(toks) == 0 {
		return nil
	}
	cmd, args := toks[0], toks[1:]
	s.log.Debug("exec", zap.String("command", cmd), zap.Strings("args", args))
	switch cmd {
	case "exit", "quit":
		return errExit
	case "help":
		fmt.Fprint(w, usage)
		return nil
	case "num", "sym":
		if len(args) == 0 {
			return fmt.Errorf("usage: %s <axes> <angle>...", cmd)
		}
		axes, err := rotation.ParseAxes(args[0])
		if err != nil {
			return err
		}
		if cmd == "num" {
			err = s.numeric(axes, args[1:])
		} else {
			err = s.symbolic(axes, args[1:])
		}
		if err != nil {
			return err
		}
		s.show(w)
		return nil
	}

	switch cmd {
	case "inv", "check", "simp", "latex", "eval":
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	if s.num == nil && s.sym == nil {
		return fmt.Errorf("%s: no matrix yet, use num or sym", cmd)
	}
	switch cmd {
	case "inv":
		if s.sym != nil {
			s.sym = rotation.Invert(s.sym)
		} else {
			s.num = rotation.Invert(s.num)
		}
		if strings.HasSuffix(s.label, "^T") {
			s.label = strings.TrimSuffix(s.label, "^T")
		} else {
			s.label += "^T"
		}
		s.show(w)
	case "check":
		if s.sym != nil {
			checkSymbolic(w, s.sym)
		} else {
			checkNumeric(w, s.num, s.precision)
		}
	case "simp", "latex", "eval":
		if s.sym == nil {
			return fmt.Errorf("%s: current matrix is not symbolic", cmd)
		}
		switch cmd {
		case "simp":
			s.sym = rotation.Simplify(s.sym)
			s.show(w)
		case "latex":
			fmt.Fprint(w, render.LaTeX(s.sym))
		case "eval":
			return s.eval(args, w)
		}
	}
	return nil
}

func (s *session) numeric(axes []rotation.Axis, args []string) error {
	rads := make([]float64, len(args))
	for i, a := range args {
		d, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("invalid angle %q", a)
		}
		rads[i] = rotation.Radians(d)
	}
	m, err := rotation.ComposeNumeric(axes, rads)
	if err != nil {
		return err
	}
	s.label, s.num, s.sym = render.Label(axes), m, nil
	return nil
}

func (s *session) symbolic(axes []rotation.Axis, names []string) error {
	m, err := rotation.ComposeSymbolic(axes, names...)
	if err != nil {
		return err
	}
	s.label, s.num, s.sym = render.Label(axes), nil, m
	return nil
}

// eval parses name = degrees triples and prints the evaluated matrix.
// The symbolic matrix stays current.
func (s *session) eval(args []string, w io.Writer) error {
	if len(args)%3 != 0 {
		return fmt.Errorf("usage: eval <name>=<deg>...")
	}
	vals := make(map[string]float64)
	for i := 0; i < len(args); i += 3 {
		if args[i+1] != "=" {
			return fmt.Errorf("usage: eval <name>=<deg>...")
		}
		d, err := strconv.ParseFloat(args[i+2], 64)
		if err != nil {
			return fmt.Errorf("invalid angle %q", args[i+2])
		}
		vals[args[i]] = d
	}
	rads := make(map[string]float64, len(vals))
	for k, v := range vals {
		rads[k] = rotation.Radians(v)
	}
	m, err := rotation.Evaluate(s.sym, rads)
	if err != nil {
		return err
	}
	showNumeric(w, s.label+" at "+formatEnv(vals), m, s.precision)
	return nil
}

// loop reads lines from next until exit or end of input.
func (s *session) loop(next func() (string, error), w io.Writer) error {
	for {
		fmt.Fprint(w, "> ")
		line, err := next()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return fmt.Errorf("unable to recover: %w", err)
		}
		switch err := s.exec(line, w); {
		case errors.Is(err, errExit):
			fmt.Fprintln(w, "exiting")
			return nil
		case err != nil:
			fmt.Fprintln(w, render.Failure.Render(err.Error()))
		}
	}
}

func (c *ReplCmd) Run(e *env) error {
	fmt.Fprintf(e.out, "dcm rotation explorer, type help for commands\n\n")
	next := e.lines
	if next == nil {
		t := lined.NewReader()
		next = t.ReadString
	}
	s := &session{log: e.log, precision: c.Precision}
	return s.loop(next, e.out)
}
