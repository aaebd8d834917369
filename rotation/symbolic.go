package rotation

import (
	"fmt"

	"zappem.net/pub/math/dcm/factor"
	"zappem.net/pub/math/dcm/matrix"
	"zappem.net/pub/math/dcm/terms"
)

// Angle is a symbolic angle: a named symbol, possibly negated.
type Angle struct {
	Name    string
	Negated bool
}

// Sym returns the angle named name.
func Sym(name string) Angle {
	return Angle{Name: name}
}

// Syms returns one angle per name.
func Syms(names ...string) []Angle {
	as := make([]Angle, len(names))
	for i, n := range names {
		as[i] = Sym(n)
	}
	return as
}

// Neg returns the opposite angle.
func (a Angle) Neg() Angle {
	a.Negated = !a.Negated
	return a
}

func (a Angle) String() string {
	if a.Negated {
		return "-" + a.Name
	}
	return a.Name
}

// Symbolic is the algebra of expressions in sines and cosines of named
// angles. Its Equal applies sin^2+cos^2 = 1.
type Symbolic struct{}

var _ Algebra[Angle, *terms.Exp] = Symbolic{}

// Exact returns the symbolic algebra.
func Exact() Algebra[Angle, *terms.Exp] {
	return Symbolic{}
}

var one = []factor.Value{factor.D(1, 1)}

func (Symbolic) Zero() *terms.Exp               { return terms.NewExp() }
func (Symbolic) One() *terms.Exp                { return terms.NewExp(one) }
func (Symbolic) Add(x, y *terms.Exp) *terms.Exp { return x.Add(y) }
func (Symbolic) Mul(x, y *terms.Exp) *terms.Exp { return terms.Mul(x, y) }
func (Symbolic) Neg(x *terms.Exp) *terms.Exp    { return x.Neg() }
func (Symbolic) NegAngle(a Angle) Angle         { return a.Neg() }
func (Symbolic) Equal(x, y *terms.Exp) bool     { return x.Equals(y) }

// Cos returns cos(a). Cosine is even, so the sign of a is dropped.
func (Symbolic) Cos(a Angle) *terms.Exp {
	return terms.NewExp([]factor.Value{factor.C(a.Name)})
}

// Sin returns sin(a).
func (Symbolic) Sin(a Angle) *terms.Exp {
	if a.Negated {
		return terms.NewExp([]factor.Value{factor.D(-1, 1), factor.Sn(a.Name)})
	}
	return terms.NewExp([]factor.Value{factor.Sn(a.Name)})
}

// CheckAngle requires the angle name to be a valid symbol.
func (Symbolic) CheckAngle(a Angle) error {
	if !factor.ValidSymbol(a.Name) {
		return fmt.Errorf("%w: %q is not a symbol", ErrInvalidAngle, a.Name)
	}
	return nil
}

// ComposeSymbolic composes a sequence of rotations by named angles.
func ComposeSymbolic(axes []Axis, names ...string) (*matrix.Matrix[*terms.Exp], error) {
	return Compose(Exact(), axes, Syms(names...))
}

// elementary builds a symbolic rotation and panics on a bad symbol.
func elementary(axis Axis, theta string) *matrix.Matrix[*terms.Exp] {
	m, err := Build(Exact(), axis, Sym(theta))
	if err != nil {
		panic(err)
	}
	return m
}

// A matrix for rotating anticlockwise around the X-axis.
func RX(theta string) *matrix.Matrix[*terms.Exp] {
	return elementary(X, theta)
}

// A matrix for rotating anticlockwise around the Y-axis.
func RY(theta string) *matrix.Matrix[*terms.Exp] {
	return elementary(Y, theta)
}

// A matrix for rotating anticlockwise around the Z-axis.
func RZ(theta string) *matrix.Matrix[*terms.Exp] {
	return elementary(Z, theta)
}

// Simplify reduces every element of m to its canonical form modulo the
// Pythagorean identity.
func Simplify(m *matrix.Matrix[*terms.Exp]) *matrix.Matrix[*terms.Exp] {
	return matrix.Apply(m, (*terms.Exp).Simplify)
}

// Evaluate substitutes angle values in radians into a symbolic matrix.
func Evaluate(m *matrix.Matrix[*terms.Exp], env map[string]float64) (*matrix.Matrix[float64], error) {
	return matrix.ApplyErr(m, func(e *terms.Exp) (float64, error) {
		return e.Eval(env)
	})
}
