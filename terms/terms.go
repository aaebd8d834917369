// Package terms abstracts sums of products of factors.
//
// Expressions are kept fully expanded. Equality of two expressions is
// decided modulo the identity cos(x)^2+sin(x)^2 = 1, which is all that
// is needed to reason about products of rotation matrices.
package terms

import (
	"math/big"
	"sort"
	"strings"

	"zappem.net/pub/math/dcm/factor"
)

// Term is a product of a coefficient and a set of non-numerical factors.
type Term struct {
	Coeff *big.Rat
	Fact  []factor.Value
}

// Exp is a an expression or sum of terms.
type Exp struct {
	terms map[string]Term
}

// NewExp creates a new expression.
func NewExp(ts ...[]factor.Value) *Exp {
	e := &Exp{
		terms: make(map[string]Term),
	}
	for _, t := range ts {
		n, fs, s := factor.Segment(t...)
		if n == nil {
			continue
		}
		e.insert(n, fs, s)
	}
	return e
}

// IsZero confirms a simplified expression is zero.
func (e *Exp) IsZero() bool {
	return e == nil || len(e.terms) == 0
}

// keys returns the index strings of e in display order.
func (e *Exp) keys() []string {
	var s []string
	for x := range e.terms {
		s = append(s, x)
	}
	sort.Strings(s)
	return s
}

// String represents an expression of Terms as a string.
func (e *Exp) String() string {
	if e.IsZero() {
		return "0"
	}
	s := e.keys()
	for i, x := range s {
		f := e.terms[x]
		v := []factor.Value{factor.R(f.Coeff)}
		t := factor.Prod(append(v, f.Fact...)...)
		if i != 0 && t[0] != '-' {
			s[i] = "+" + t
		} else {
			s[i] = t
		}
	}
	return strings.Join(s, "")
}

// LaTeX represents an expression as a TeX fragment.
func (e *Exp) LaTeX() string {
	if e.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, x := range e.keys() {
		f := e.terms[x]
		neg := f.Coeff.Sign() < 0
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i != 0 && neg:
			b.WriteString(" - ")
		case i != 0:
			b.WriteString(" + ")
		}
		var parts []string
		c := new(big.Rat).Abs(f.Coeff)
		if len(f.Fact) == 0 || c.Cmp(big.NewRat(1, 1)) != 0 {
			parts = append(parts, factor.R(c).LaTeX())
		}
		for _, v := range f.Fact {
			parts = append(parts, v.LaTeX())
		}
		b.WriteString(strings.Join(parts, " "))
	}
	return b.String()
}

// Int generates an expression of a constant integer.
func Int(n *big.Int) *Exp {
	return NewExp([]factor.Value{factor.I(n)})
}

// Rat generates an expression of a rational number.
func Rat(r *big.Rat) *Exp {
	return NewExp([]factor.Value{factor.R(r)})
}

// insert merges a coefficient, a product of factors to an expression
// indexed by s.
func (e *Exp) insert(n *big.Rat, fs []factor.Value, s string) {
	old, ok := e.terms[s]
	if !ok {
		e.terms[s] = Term{
			Coeff: n,
			Fact:  fs,
		}
		return
	}
	// Combine with existing term.
	old.Coeff = n.Add(n, e.terms[s].Coeff)
	if old.Coeff.Cmp(&big.Rat{}) == 0 {
		delete(e.terms, s)
		return
	}
	e.terms[s] = old
}

// Exp converts a Term into a stand alone expression.
func (term Term) Exp() *Exp {
	e := &Exp{
		terms: make(map[string]Term),
	}
	e.insert(new(big.Rat).Set(term.Coeff), term.Fact, factor.Prod(term.Fact...))
	return e
}

// Sum adds together expressions. With only one argument, Sum is a
// simple duplicate function. Nil expressions are treated as zero.
func Sum(as ...*Exp) *Exp {
	e := &Exp{
		terms: make(map[string]Term),
	}
	for _, a := range as {
		if a == nil {
			continue
		}
		for s, t := range a.terms {
			m := &big.Rat{}
			e.insert(m.Set(t.Coeff), t.Fact, s)
		}
	}
	return e
}

// Add adds together two expressions and returns a single expression:
// a+b.
func (a *Exp) Add(b *Exp) *Exp {
	return Sum(a, b)
}

// Sub subtracts b from a into a new expression.
func (a *Exp) Sub(b *Exp) *Exp {
	e := Sum(a)
	if b == nil {
		return e
	}
	for s, t := range b.terms {
		m := big.NewRat(-1, 1)
		e.insert(m.Mul(m, t.Coeff), t.Fact, s)
	}
	return e
}

// Neg returns -a.
func (a *Exp) Neg() *Exp {
	return NewExp().Sub(a)
}

var zero = []factor.Value{factor.R(&big.Rat{})}

// Mul computes the product of a series of expressions. A nil argument
// makes the product zero.
func Mul(as ...*Exp) *Exp {
	var e *Exp
	for i, a := range as {
		if a == nil {
			return NewExp()
		}
		if i == 0 {
			e = Sum(a)
			continue
		}
		f := &Exp{
			terms: make(map[string]Term),
		}
		for _, p := range a.terms {
			for _, q := range e.terms {
				x := []factor.Value{factor.R(p.Coeff), factor.R(q.Coeff)}
				n, fs, s := factor.Segment(append(x, append(append([]factor.Value{}, p.Fact...), q.Fact...)...)...)
				if n == nil {
					continue
				}
				f.insert(n, fs, s)
			}
		}
		e = f
	}
	if e == nil {
		return NewExp()
	}
	return e
}

// Mul computes the product of this expression with some others.
func (e *Exp) Mul(es ...*Exp) *Exp {
	return Mul(append([]*Exp{e}, es...)...)
}

// Substituted replaces each occurrence of b in an expression with the
// expression c. If the returned boolean is true, then something was
// substituted.
func (e *Exp) Substituted(b []factor.Value, c *Exp) (*Exp, bool) {
	if len(b) == 0 || e == nil {
		return e, false
	}
	s := [][]factor.Value{}
	if c != nil {
		for _, t := range c.terms {
			s = append(s, append([]factor.Value{factor.R(t.Coeff)}, t.Fact...))
		}
	}
	g := e
	acted := false
	for {
		again := false
		f := &Exp{
			terms: make(map[string]Term),
		}
		for _, x := range g.terms {
			a := append([]factor.Value{factor.R(x.Coeff)}, x.Fact...)
			hit, y := factor.Replace(a, b, zero, 1)
			if hit == 0 {
				if n, fs, tag := factor.Segment(y...); n != nil {
					f.insert(n, fs, tag)
				}
				// If nothing substituted, then only insert once.
				continue
			}
			again = true
			for _, t := range s {
				_, y := factor.Replace(a, b, t, 1)
				n, fs, tag := factor.Segment(y...)
				if n == nil {
					continue
				}
				f.insert(n, fs, tag)
			}
		}
		g = f
		if !again {
			break
		}
		acted = true
	}
	return g, acted
}

// Substitute unconditionally attempts to substitute occurences of b
// in e with expression c. Consider using e.Substituted() to understand
// if any change was made.
func (e *Exp) Substitute(b []factor.Value, c *Exp) *Exp {
	e2, _ := e.Substituted(b, c)
	return e2
}

// Contains investigates an expression for the presence of a term, b.
func (e *Exp) Contains(b []factor.Value) bool {
	if e == nil {
		return false
	}
	for _, x := range e.terms {
		a := append([]factor.Value{factor.R(x.Coeff)}, x.Fact...)
		if hit, _ := factor.Replace(a, b, zero, 1); hit != 0 {
			return true
		}
	}
	return false
}

// Simplify rewrites every cos(x)^2 as 1-sin(x)^2 until no cosine
// appears with a power above one. Two expressions that are equal
// by the Pythagorean identity simplify to the same expression.
func (e *Exp) Simplify() *Exp {
	g := Sum(e)
	for _, s := range g.Symbols() {
		pyth := NewExp(
			[]factor.Value{factor.D(1, 1)},
			[]factor.Value{factor.D(-1, 1), factor.Tp(factor.Sin, s, 2)},
		)
		g = g.Substitute([]factor.Value{factor.Tp(factor.Cos, s, 2)}, pyth)
	}
	return g
}

// Equals compares two expressions and determines if they are always
// equal.
func (e *Exp) Equals(x *Exp) bool {
	return e.Sub(x).Simplify().IsZero()
}

// AsNumber ignores all terms that contain symbols, and just returns
// the value of the constant term. The returned boolean is true only
// when there are no non-constant terms.
func (e *Exp) AsNumber() (*big.Rat, bool) {
	ok := e.IsZero()
	if !ok {
		for _, t := range e.terms {
			if len(t.Fact) == 0 {
				return t.Coeff, len(e.terms) == 1
			}
		}
	}
	return zero[0].Num(), ok
}

// ErrUnbound is returned by Eval when env omits a symbol of the
// expression.
var ErrUnbound = factor.ErrUnbound

// Eval computes the value of an expression given values for each of
// its symbols.
func (e *Exp) Eval(env map[string]float64) (float64, error) {
	if e == nil {
		return 0, nil
	}
	sum := 0.0
	for _, s := range e.keys() {
		t := e.terms[s]
		x, _ := t.Coeff.Float64()
		for _, v := range t.Fact {
			y, err := v.Eval(env)
			if err != nil {
				return 0, err
			}
			x *= y
		}
		sum += x
	}
	return sum, nil
}

// Terms returns the terms of an expression indexed by the text of
// their factors.
func (e *Exp) Terms() map[string]Term {
	if e == nil {
		return nil
	}
	return e.terms
}

// Symbols returns the sorted unique symbol names found in an
// expression, whether they appear bare or inside a sine or cosine.
func (e *Exp) Symbols() (syms []string) {
	if e == nil {
		return nil
	}
	ss := make(map[string]bool)
	for _, t := range e.terms {
		for _, v := range t.Fact {
			if s := v.Symbol(); s != "" && !ss[s] {
				ss[s] = true
				syms = append(syms, s)
			}
		}
	}
	sort.Strings(syms)
	return
}
