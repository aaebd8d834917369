package main

import (
	"go.uber.org/zap"

	"zappem.net/pub/math/dcm/render"
	"zappem.net/pub/math/dcm/rotation"
)

// NumericCmd composes a sequence with numeric angles.
type NumericCmd struct {
	Axes      string    `help:"Rotation axes in order, as letters or numbers (zyx, 321)." required:""`
	Angles    []float64 `help:"Rotation angles, one per axis." required:""`
	Degrees   bool      `help:"Angles are in degrees rather than radians." short:"d"`
	Precision int       `help:"Decimal places to print." default:"6"`
	Transpose bool      `help:"Print the inverse rotation, the transpose." short:"t"`
	Check     bool      `help:"Report orthogonality and determinant."`
}

func (c *NumericCmd) Run(e *env) error {
	axes, err := rotation.ParseAxes(c.Axes)
	if err != nil {
		return err
	}
	rads := make([]float64, len(c.Angles))
	for i, a := range c.Angles {
		if c.Degrees {
			a = rotation.Radians(a)
		}
		rads[i] = a
	}
	m, err := rotation.ComposeNumeric(axes, rads)
	if err != nil {
		return err
	}
	label := render.Label(axes)
	e.log.Debug("composed", zap.String("pipeline", "numeric"), zap.String("axes", label), zap.Float64s("radians", rads))
	if c.Transpose {
		m = rotation.Invert(m)
		label += "^T"
	}
	showNumeric(e.out, label, m, c.Precision)
	if c.Check {
		checkNumeric(e.out, m, c.Precision)
	}
	return nil
}
