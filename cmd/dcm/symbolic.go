package main

import (
	"go.uber.org/zap"

	"zappem.net/pub/math/dcm/render"
	"zappem.net/pub/math/dcm/rotation"
)

// SymbolicCmd composes a sequence with named angles.
type SymbolicCmd struct {
	Axes      string             `help:"Rotation axes in order, as letters or numbers (zyx, 321)." required:""`
	Angles    []string           `help:"Angle names, one per axis." required:""`
	LaTeX     bool               `help:"Print the matrix as LaTeX." name:"latex"`
	Color     bool               `help:"Highlight LaTeX output for the terminal."`
	Style     string             `help:"Highlighting style." default:"monokai"`
	Transpose bool               `help:"Print the inverse rotation, the transpose." short:"t"`
	Check     bool               `help:"Confirm the matrix is a rotation for all angles."`
	Simplify  bool               `help:"Reduce elements using sin^2+cos^2=1."`
	Eval      map[string]float64 `help:"Also evaluate at these angles in degrees (psi=30,theta=15)." mapsep:","`
	Precision int                `help:"Decimal places for --eval." default:"6"`
}

func (c *SymbolicCmd) Run(e *env) error {
	axes, err := rotation.ParseAxes(c.Axes)
	if err != nil {
		return err
	}
	m, err := rotation.ComposeSymbolic(axes, c.Angles...)
	if err != nil {
		return err
	}
	label := render.Label(axes)
	e.log.Debug("composed", zap.String("pipeline", "symbolic"), zap.String("axes", label), zap.Strings("angles", c.Angles))
	if c.Simplify {
		m = rotation.Simplify(m)
	}
	if c.Transpose {
		m = rotation.Invert(m)
		label += "^T"
	}
	if c.LaTeX || c.Color {
		if err := showLaTeX(e.out, m, c.Color, c.Style); err != nil {
			return err
		}
	} else {
		showSymbolic(e.out, label, m)
	}
	if c.Check {
		checkSymbolic(e.out, m)
	}
	if c.Eval != nil {
		rads := make(map[string]float64, len(c.Eval))
		for k, v := range c.Eval {
			rads[k] = rotation.Radians(v)
		}
		n, err := rotation.Evaluate(m, rads)
		if err != nil {
			return err
		}
		showNumeric(e.out, label+" at "+formatEnv(c.Eval), n, c.Precision)
	}
	return nil
}
