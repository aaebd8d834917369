package rotation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAxis    = errors.New("invalid rotation axis")
	ErrLengthMismatch = errors.New("axis and angle counts differ")
	ErrInvalidAngle   = errors.New("invalid rotation angle")
)

// Axis identifies one of the three principal axes.
type Axis int

const (
	X Axis = 1
	Y Axis = 2
	Z Axis = 3
)

// Valid confirms a is one of X, Y or Z.
func (a Axis) Valid() bool {
	switch a {
	case X, Y, Z:
		return true
	}
	return false
}

// String returns the letter naming the axis.
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis accepts an axis by number ("1", "2", "3") or by letter in
// either case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "x":
		return X, nil
	case "2", "y":
		return Y, nil
	case "3", "z":
		return Z, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
}

// ParseAxes parses a compact sequence of axes such as "zyx" or "321".
// Spaces and commas between axes are ignored.
func ParseAxes(s string) ([]Axis, error) {
	var axes []Axis
	for _, r := range s {
		if r == ' ' || r == ',' || r == '\t' {
			continue
		}
		a, err := ParseAxis(string(r))
		if err != nil {
			return nil, err
		}
		axes = append(axes, a)
	}
	return axes, nil
}

// Axes is a sequence of axes that displays as letters, as in "ZYX".
type Axes []Axis

func (as Axes) String() string {
	var b strings.Builder
	for _, a := range as {
		b.WriteString(a.String())
	}
	return b.String()
}
