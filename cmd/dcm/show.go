package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"zappem.net/pub/math/dcm/matrix"
	"zappem.net/pub/math/dcm/render"
	"zappem.net/pub/math/dcm/rotation"
	"zappem.net/pub/math/dcm/terms"
)

func showNumeric(w io.Writer, label string, m *matrix.Matrix[float64], precision int) {
	fmt.Fprintln(w, render.Heading.Render(label))
	fmt.Fprint(w, render.Text(m, precision))
}

func showSymbolic(w io.Writer, label string, m *matrix.Matrix[*terms.Exp]) {
	fmt.Fprintln(w, render.Heading.Render(label))
	fmt.Fprint(w, render.Symbolic(m))
}

// showLaTeX prints m as LaTeX, highlighted in style when color is set.
func showLaTeX(w io.Writer, m *matrix.Matrix[*terms.Exp], color bool, style string) error {
	tex := render.LaTeX(m)
	if !color {
		_, err := fmt.Fprint(w, tex)
		return err
	}
	return render.Highlight(w, tex, style)
}

func verdict(ok bool) string {
	if ok {
		return render.Pass.Render("yes")
	}
	return render.Failure.Render("no")
}

// checkNumeric reports how closely m is a proper rotation.
func checkNumeric(w io.Writer, m *matrix.Matrix[float64], precision int) {
	if precision <= 0 {
		precision = render.DefaultPrecision
	}
	fmt.Fprintf(w, "orthogonal: %s  proper: %s  det: %.*f  residual: %.3g\n",
		verdict(rotation.IsOrthogonal(rotation.Float(), m)),
		verdict(rotation.IsProper(rotation.Float(), m)),
		precision, rotation.Determinant(m), rotation.Residual(m))
}

// checkSymbolic reports whether m is a proper rotation for every value
// of its angles.
func checkSymbolic(w io.Writer, m *matrix.Matrix[*terms.Exp]) {
	fmt.Fprintf(w, "orthogonal: %s  proper: %s\n",
		verdict(rotation.IsOrthogonal(rotation.Exact(), m)),
		verdict(rotation.IsProper(rotation.Exact(), m)))
}

// formatEnv lists angle values in name order, as in "phi=10 psi=30".
func formatEnv(vals map[string]float64) string {
	names := make([]string, 0, len(vals))
	for n := range vals {
		names = append(names, n)
	}
	sort.Strings(names)
	for i, n := range names {
		names[i] = fmt.Sprintf("%s=%g", n, vals[n])
	}
	return strings.Join(names, " ")
}
