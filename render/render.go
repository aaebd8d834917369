// Package render formats rotation matrices for display: fixed
// precision text for numeric matrices, expression text and LaTeX for
// symbolic ones.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"

	"zappem.net/pub/math/dcm/matrix"
	"zappem.net/pub/math/dcm/rotation"
	"zappem.net/pub/math/dcm/terms"
)

// DefaultPrecision is the number of decimal places Text uses when none
// is given.
const DefaultPrecision = 6

// DefaultStyle is the chroma style used by Highlight.
const DefaultStyle = "monokai"

var (
	headingColor = lipgloss.Color("#00D9FF")
	passColor    = lipgloss.Color("#04B575")
	failColor    = lipgloss.Color("#FF5F87")

	// Heading styles the label printed above a matrix.
	Heading = lipgloss.NewStyle().
		Bold(true).
		Foreground(headingColor)

	// Pass styles a check that held.
	Pass = lipgloss.NewStyle().
		Foreground(passColor)

	// Failure styles error output.
	Failure = lipgloss.NewStyle().
		Foreground(failColor).
		Bold(true)
)

// Text formats m one row per line with each value printed to precision
// decimal places in a field precision+4 characters wide.
func Text(m *matrix.Matrix[float64], precision int) string {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	width := precision + 4
	tiny := 0.5 * math.Pow10(-precision)
	var b strings.Builder
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			v := m.El(r, c)
			if math.Abs(v) < tiny {
				// Values that round to zero print without a sign.
				v = 0
			}
			if c != 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*.*f", width, precision, v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Label names a rotation sequence by its axes, as in "ZYX".
func Label(axes []rotation.Axis) string {
	return rotation.Axes(axes).String()
}

// Symbolic formats m one row per line with the columns aligned.
func Symbolic(m *matrix.Matrix[*terms.Exp]) string {
	cells := make([][]string, m.Rows())
	widths := make([]int, m.Cols())
	for r := range cells {
		for c, e := range m.Row(r) {
			s := e.String()
			if len(s) > widths[c] {
				widths[c] = len(s)
			}
			cells[r] = append(cells[r], s)
		}
	}
	var b strings.Builder
	for _, row := range cells {
		var line strings.Builder
		for c, s := range row {
			if c != 0 {
				line.WriteString("  ")
			}
			fmt.Fprintf(&line, "%-*s", widths[c], s)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// LaTeX formats m as a bmatrix environment.
func LaTeX(m *matrix.Matrix[*terms.Exp]) string {
	rows := make([]string, m.Rows())
	for r := range rows {
		var cs []string
		for _, e := range m.Row(r) {
			cs = append(cs, e.LaTeX())
		}
		rows[r] = strings.Join(cs, " & ")
	}
	return "\\begin{bmatrix}\n" + strings.Join(rows, " \\\\\n") + "\n\\end{bmatrix}\n"
}

// Highlight writes TeX source to w colored for a 256 color terminal.
// An empty style selects DefaultStyle.
func Highlight(w io.Writer, tex, style string) error {
	if style == "" {
		style = DefaultStyle
	}
	if err := quick.Highlight(w, tex, "latex", "terminal256", style); err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	return nil
}
