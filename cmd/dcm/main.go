// Program dcm builds direction cosine matrices from sequences of
// rotations about the principal axes, either numerically or as exact
// expressions in the sines and cosines of named angles.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"zappem.net/pub/math/dcm/render"
)

// CLI is the dcm command tree.
type CLI struct {
	Debug bool `help:"Enable debug logging."`

	Numeric  NumericCmd  `cmd:"" help:"Compose a rotation sequence with numeric angles."`
	Symbolic SymbolicCmd `cmd:"" help:"Compose a rotation sequence with named angles."`
	Run      RunCmd      `cmd:"" help:"Evaluate every sequence of a YAML batch file."`
	Repl     ReplCmd     `cmd:"" help:"Explore rotations interactively."`
}

// env is bound into every command's Run method.
type env struct {
	log *zap.Logger
	out io.Writer
	// lines supplies REPL input; nil reads the terminal.
	lines func() (string, error)
}

type app struct {
	stdout, stderr io.Writer
	exit           func(int)
	logger         func(debug bool) (*zap.Logger, error)
	lines          func() (string, error)
}

// newLogger builds the development logger when debugging and the
// production logger otherwise.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// run parses args, runs the selected command and returns the process
// exit status.
func (a *app) run(args []string) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("dcm"),
		kong.Description("Direction cosine matrices from axis-angle rotation sequences"),
		kong.UsageOnError(),
		kong.Writers(a.stdout, a.stderr),
		kong.Exit(a.exit),
	)
	if err != nil {
		fmt.Fprintln(a.stderr, render.Failure.Render(err.Error()))
		return 1
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
		return 1
	}

	log, err := a.logger(cli.Debug)
	if err != nil {
		fmt.Fprintln(a.stderr, render.Failure.Render("logger: "+err.Error()))
		return 1
	}
	defer func() { _ = log.Sync() }()

	log.Debug("running", zap.String("command", ctx.Command()))
	if err := ctx.Run(&env{log: log, out: a.stdout, lines: a.lines}); err != nil {
		log.Debug("command failed", zap.String("command", ctx.Command()), zap.Error(err))
		fmt.Fprintln(a.stderr, render.Failure.Render("error: "+err.Error()))
		return 1
	}
	return 0
}

func main() {
	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		exit:   os.Exit,
		logger: newLogger,
	}
	os.Exit(a.run(os.Args[1:]))
}
