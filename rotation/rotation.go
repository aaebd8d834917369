// Package rotation generates and composes matrices for 3D rotations
// about the principal axes.
//
// The same algorithms serve two arithmetic domains. With Float() the
// matrix elements are float64 values; with Exact() they are symbolic
// expressions in the sine and cosine of named angles.
//
// A sequence of rotations may be empty, in which case it composes to
// the identity matrix.
package rotation

import (
	"fmt"

	"zappem.net/pub/math/dcm/matrix"
)

// Algebra is the arithmetic over scalars T that rotation matrices
// need, together with trigonometry of angles A.
type Algebra[A, T any] interface {
	matrix.Ring[T]
	Cos(a A) T
	Sin(a A) T
	// NegAngle returns the angle of the opposite rotation.
	NegAngle(a A) A
	// CheckAngle reports ErrInvalidAngle for unusable angles.
	CheckAngle(a A) error
	// Equal decides whether two scalars are equal, within tolerance
	// or by identity as the domain allows.
	Equal(x, y T) bool
}

// Build returns the matrix for a right handed rotation by angle about
// the given axis.
func Build[A, T any](alg Algebra[A, T], axis Axis, angle A) (*matrix.Matrix[T], error) {
	if !axis.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAxis, int(axis))
	}
	if err := alg.CheckAngle(angle); err != nil {
		return nil, err
	}
	c, s := alg.Cos(angle), alg.Sin(angle)
	mS := alg.Neg(s)
	one, zero := alg.One(), alg.Zero()

	var rows [][]T
	switch axis {
	case X:
		rows = [][]T{
			{one, zero, zero},
			{zero, c, mS},
			{zero, s, c},
		}
	case Y:
		rows = [][]T{
			{c, zero, s},
			{zero, one, zero},
			{mS, zero, c},
		}
	case Z:
		rows = [][]T{
			{c, mS, zero},
			{s, c, zero},
			{zero, zero, one},
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidAxis, int(axis))
	}
	return matrix.FromRows(rows...)
}

// Compose multiplies the elementary rotations of a sequence in order:
// R = R(axes[0],angles[0]) * R(axes[1],angles[1]) * ... An empty
// sequence composes to the identity.
func Compose[A, T any](alg Algebra[A, T], axes []Axis, angles []A) (*matrix.Matrix[T], error) {
	if len(axes) != len(angles) {
		return nil, fmt.Errorf("%w: %d axes, %d angles", ErrLengthMismatch, len(axes), len(angles))
	}
	acc, err := matrix.Identity[T](alg, 3)
	if err != nil {
		return nil, err
	}
	for i, axis := range axes {
		r, err := Build(alg, axis, angles[i])
		if err != nil {
			return nil, fmt.Errorf("rotation %d: %w", i+1, err)
		}
		acc = acc.Mx(alg, r)
	}
	return acc, nil
}

// Invert returns the inverse of a rotation matrix, its transpose.
func Invert[T any](m *matrix.Matrix[T]) *matrix.Matrix[T] {
	return m.Transpose()
}

// Reverse returns the sequence that undoes axes and angles: the same
// rotations in the opposite order with negated angles.
func Reverse[A, T any](alg Algebra[A, T], axes []Axis, angles []A) ([]Axis, []A) {
	n := len(axes)
	rAxes := make([]Axis, n)
	for i, a := range axes {
		rAxes[n-1-i] = a
	}
	rAngles := make([]A, len(angles))
	for i, a := range angles {
		rAngles[len(angles)-1-i] = alg.NegAngle(a)
	}
	return rAxes, rAngles
}

// IsOrthogonal confirms that m times its transpose is the identity.
func IsOrthogonal[A, T any](alg Algebra[A, T], m *matrix.Matrix[T]) bool {
	if m.Rows() != m.Cols() {
		return false
	}
	id, err := matrix.Identity[T](alg, m.Rows())
	if err != nil {
		return false
	}
	return m.Mx(alg, m.Transpose()).Equal(id, alg.Equal)
}

// IsProper confirms that m is orthogonal with a determinant of +1, a
// rotation without reflection.
func IsProper[A, T any](alg Algebra[A, T], m *matrix.Matrix[T]) bool {
	if !IsOrthogonal(alg, m) {
		return false
	}
	d, err := m.Det(alg)
	return err == nil && alg.Equal(d, alg.One())
}
