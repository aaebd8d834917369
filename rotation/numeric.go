package rotation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"zappem.net/pub/math/dcm/matrix"
)

// DefaultTolerance is the Numeric comparison tolerance used when none
// is configured.
const DefaultTolerance = 1e-9

// Numeric is the float64 algebra. Angles are in radians.
type Numeric struct {
	// Tolerance bounds the absolute difference of equal values.
	Tolerance float64
}

var _ Algebra[float64, float64] = Numeric{}

// Float returns the numeric algebra with the default tolerance.
func Float() Algebra[float64, float64] {
	return Numeric{}
}

func (Numeric) Zero() float64            { return 0 }
func (Numeric) One() float64             { return 1 }
func (Numeric) Add(x, y float64) float64 { return x + y }
func (Numeric) Mul(x, y float64) float64 { return x * y }
func (Numeric) Neg(x float64) float64    { return -x }
func (Numeric) Cos(a float64) float64    { return math.Cos(a) }
func (Numeric) Sin(a float64) float64    { return math.Sin(a) }
func (Numeric) NegAngle(a float64) float64 {
	return -a
}

// CheckAngle rejects angles that are not finite.
func (Numeric) CheckAngle(a float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAngle, a)
	}
	return nil
}

// Equal compares x and y within the configured tolerance.
func (n Numeric) Equal(x, y float64) bool {
	tol := n.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return math.Abs(x-y) <= tol
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// BuildNumeric returns the elementary rotation about axis by rad
// radians.
func BuildNumeric(axis Axis, rad float64) (*matrix.Matrix[float64], error) {
	return Build(Float(), axis, rad)
}

// ComposeNumeric composes a sequence of rotations with angles in
// radians.
func ComposeNumeric(axes []Axis, rads []float64) (*matrix.Matrix[float64], error) {
	return Compose(Float(), axes, rads)
}

// Dense copies m into a gonum matrix.
func Dense(m *matrix.Matrix[float64]) *mat.Dense {
	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			d.Set(r, c, m.El(r, c))
		}
	}
	return d
}

// Residual measures how far m is from orthogonal: the Frobenius norm of
// m*m^T - I.
func Residual(m *matrix.Matrix[float64]) float64 {
	d := Dense(m)
	n, _ := d.Dims()
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	var p mat.Dense
	p.Mul(d, d.T())
	p.Sub(&p, mat.NewDiagDense(n, ones))
	return mat.Norm(&p, 2)
}

// Determinant computes the determinant of a square m.
func Determinant(m *matrix.Matrix[float64]) float64 {
	return mat.Det(Dense(m))
}
