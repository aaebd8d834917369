package main

import (
	"fmt"

	"go.uber.org/zap"

	"zappem.net/pub/math/dcm/config"
	"zappem.net/pub/math/dcm/render"
	"zappem.net/pub/math/dcm/rotation"
)

// RunCmd evaluates the sequences of a batch file.
type RunCmd struct {
	File  string `arg:"" help:"YAML batch file of rotation sequences." type:"existingfile"`
	Check bool   `help:"Report orthogonality for each matrix."`
}

func (c *RunCmd) Run(e *env) error {
	f, err := config.NewLoader().Load(c.File)
	if err != nil {
		return err
	}
	e.log.Debug("loaded", zap.String("file", c.File), zap.Int("sequences", len(f.Sequences)))
	for i, s := range f.Sequences {
		if i != 0 {
			fmt.Fprintln(e.out)
		}
		if err := c.sequence(e, f, s); err != nil {
			return fmt.Errorf("sequence %q: %w", s.Name, err)
		}
	}
	return nil
}

func (c *RunCmd) sequence(e *env, f *config.File, s config.Sequence) error {
	axes, err := s.ParsedAxes()
	if err != nil {
		return err
	}
	label := s.Name + " " + render.Label(axes)
	if s.Transpose {
		label += "^T"
	}
	if s.Symbolic() {
		m, err := rotation.ComposeSymbolic(axes, s.Symbols...)
		if err != nil {
			return err
		}
		if s.Transpose {
			m = rotation.Invert(m)
		}
		showSymbolic(e.out, label, m)
		if c.Check {
			checkSymbolic(e.out, m)
		}
		return nil
	}
	m, err := rotation.ComposeNumeric(axes, s.Radians(f.Degrees))
	if err != nil {
		return err
	}
	if s.Transpose {
		m = rotation.Invert(m)
	}
	showNumeric(e.out, label, m, f.Precision)
	if c.Check {
		checkNumeric(e.out, m, f.Precision)
	}
	return nil
}
