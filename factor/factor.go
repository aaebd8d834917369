// Package factor defines basic factors: rationals, symbols and the
// sine or cosine of a symbol.
package factor

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"sort"
	"strings"
)

// Fn identifies a function applied to the symbol of a Value.
type Fn int

const (
	// None marks a plain symbol.
	None Fn = iota
	Cos
	Sin
)

// String returns the conventional function name.
func (f Fn) String() string {
	switch f {
	case Cos:
		return "cos"
	case Sin:
		return "sin"
	}
	return ""
}

// Value captures a single factor. It is either a number or a (possibly
// trigonometric) symbol raised to an integer power.
type Value struct {
	num *big.Rat

	fn  Fn
	pow int
	sym string
}

// IsNum indicates that v is a rational number.
func (v Value) IsNum() bool {
	return v.num != nil
}

// Num simply returns the num value of the term.
func (v Value) Num() *big.Rat {
	return v.num
}

// Fn returns the function applied to the symbol of v.
func (v Value) Fn() Fn {
	return v.fn
}

// Pow returns the power the symbol of v is raised to.
func (v Value) Pow() int {
	return v.pow
}

// Symbol returns the symbol associated with this value or "" if no
// symbol is present in v.
func (v Value) Symbol() string {
	return v.sym
}

// base returns the text of v without its power.
func (v Value) base() string {
	if v.fn == None {
		return v.sym
	}
	return fmt.Sprintf("%s(%s)", v.fn, v.sym)
}

// String displays a single factor.
func (v Value) String() string {
	if v.num != nil {
		return v.num.RatString()
	}
	if v.sym != "" {
		if v.pow == 1 {
			return v.base()
		}
		return fmt.Sprintf("%s^%d", v.base(), v.pow)
	}
	return "<ERROR>"
}

var greek = map[string]bool{
	"alpha": true, "beta": true, "gamma": true, "delta": true,
	"epsilon": true, "zeta": true, "eta": true, "theta": true,
	"iota": true, "kappa": true, "lambda": true, "mu": true,
	"nu": true, "xi": true, "pi": true, "rho": true, "sigma": true,
	"tau": true, "upsilon": true, "phi": true, "chi": true,
	"psi": true, "omega": true,
	"Gamma": true, "Delta": true, "Theta": true, "Lambda": true,
	"Xi": true, "Pi": true, "Sigma": true, "Phi": true, "Psi": true,
	"Omega": true,
}

// texSymbol renders a symbol name, spelling greek letter names as TeX
// macros and splitting a trailing digit run into a subscript.
func texSymbol(s string) string {
	i := len(s)
	for i > 1 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	name, sub := s[:i], s[i:]
	if greek[name] {
		name = `\` + name
	} else if len(name) > 1 {
		name = `\mathrm{` + name + `}`
	}
	if sub != "" {
		return name + "_{" + sub + "}"
	}
	return name
}

// LaTeX displays a single factor as a TeX fragment.
func (v Value) LaTeX() string {
	if v.num != nil {
		if v.num.IsInt() {
			return v.num.Num().String()
		}
		n := new(big.Int).Abs(v.num.Num())
		sign := ""
		if v.num.Sign() < 0 {
			sign = "-"
		}
		return fmt.Sprintf(`%s\frac{%s}{%s}`, sign, n, v.num.Denom())
	}
	if v.sym == "" {
		return "<ERROR>"
	}
	sym := texSymbol(v.sym)
	if v.fn == None {
		if v.pow == 1 {
			return sym
		}
		return fmt.Sprintf("%s^{%d}", sym, v.pow)
	}
	if v.pow == 1 {
		return fmt.Sprintf(`\%s{%s}`, v.fn, sym)
	}
	return fmt.Sprintf(`\%s^{%d}{%s}`, v.fn, v.pow, sym)
}

// ErrUnbound indicates a symbol with no value during evaluation.
var ErrUnbound = errors.New("unbound symbol")

// Eval computes the numerical value of v given values for its symbols.
func (v Value) Eval(env map[string]float64) (float64, error) {
	if v.num != nil {
		f, _ := v.num.Float64()
		return f, nil
	}
	x, ok := env[v.sym]
	if !ok {
		return 0, fmt.Errorf("%q: %w", v.sym, ErrUnbound)
	}
	switch v.fn {
	case Cos:
		x = math.Cos(x)
	case Sin:
		x = math.Sin(x)
	}
	return math.Pow(x, float64(v.pow)), nil
}

// zero is a constant zero for comparisons.
var zero = big.NewRat(0, 1)

// one is a constant one for comparisons.
var one = big.NewRat(1, 1)

// minusOne is a constant -one for comparisons.
var minusOne = big.NewRat(-1, 1)

// R copies a rational value into a number value.
func R(n *big.Rat) Value {
	c := new(big.Rat)
	return Value{num: c.Set(n)}
}

// I copies an integer value into a number value.
func I(n *big.Int) Value {
	c := new(big.Rat)
	return Value{num: c.SetInt(n)}
}

// D converts two integers to a rational number value.
func D(num, den int64) Value {
	return Value{num: big.NewRat(num, den)}
}

// S converts a string into a symbol value.
func S(sym string) Value {
	return Value{sym: sym, pow: 1}
}

// Sp converts a string, power to a symbol value.
func Sp(sym string, pow int) Value {
	return Tp(None, sym, pow)
}

// C is the cosine of a symbol.
func C(sym string) Value {
	return Tp(Cos, sym, 1)
}

// Sn is the sine of a symbol.
func Sn(sym string) Value {
	return Tp(Sin, sym, 1)
}

// Tp applies fn to a symbol and raises the result to a power.
func Tp(fn Fn, sym string, pow int) Value {
	if pow == 0 {
		return D(1, 1)
	}
	return Value{fn: fn, sym: sym, pow: pow}
}

// same indicates that two values share a symbol and function, and so
// may be combined by adding their powers.
func same(a, b Value) bool {
	return a.sym == b.sym && a.fn == b.fn
}

type ByAlpha []Value

func (a ByAlpha) Len() int      { return len(a) }
func (a ByAlpha) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ByAlpha) Less(i, j int) bool {
	if a[i].sym != a[j].sym {
		return a[i].sym < a[j].sym
	}
	if a[i].fn != a[j].fn {
		return a[i].fn < a[j].fn
	}
	// Higher powers first (after simplify this is moot).
	return a[i].pow > a[j].pow
}

// Simplify condenses an unsorted array (product) of values into a
// simplified (ordered) form. The first element of the result is the
// numerical coefficient. A zero product is returned as nil.
func Simplify(vs ...Value) []Value {
	if len(vs) == 0 {
		return nil
	}

	var syms []Value
	n := big.NewRat(1, 1)
	for _, v := range vs {
		if v.num != nil {
			if zero.Cmp(v.num) == 0 {
				return nil
			}
			n.Mul(n, v.num)
			continue
		}
		syms = append(syms, v)
	}
	sort.Sort(ByAlpha(syms))

	res := []Value{R(n)}
	for _, s := range syms {
		i := len(res) - 1
		last := res[i]
		if last.num != nil || !same(last, s) {
			res = append(res, s)
			continue
		}
		last.pow += s.pow
		if last.pow == 0 {
			res = res[:i]
			continue
		}
		res = append(res[:i], last)
	}
	return res
}

// Prod returns a string representing a product of values. This
// function does not attempt to simplify the array first.
func Prod(vs ...Value) string {
	if len(vs) == 0 {
		return "0"
	}
	var x []string
	prefix := ""
	for i, v := range vs {
		if v.num != nil && i == 0 && len(vs) != 1 {
			if one.Cmp(v.num) == 0 {
				continue
			}
			if minusOne.Cmp(v.num) == 0 {
				prefix = "-"
				continue
			}
		}
		x = append(x, v.String())
	}
	return prefix + strings.Join(x, "*")
}

// Segment simplifies a set of factors and returns the numerical
// coefficient, the non-numeric array of factors and a string
// representation of this array of non-numeric factors.
func Segment(vs ...Value) (*big.Rat, []Value, string) {
	x := Simplify(vs...)
	if len(x) == 0 {
		return nil, nil, ""
	}
	return x[0].num, x[1:], Prod(x[1:]...)
}

// Replace replaces copies of b found in a with c. The number of times b
// appeared in a is returned as well as the replaced array of factors.
func Replace(a, b, c []Value, max int) (int, []Value) {
	pn, pf, _ := Segment(b...)
	qf := Simplify(a...)
	if pn == nil {
		return 0, qf
	}
	r := pn.Inv(pn)
	n := 0
	for len(pf) > 0 && (max <= 0 || n < max) {
		var nf []Value
		i := 0
		j := 0
	GIVEUP:
		for i < len(pf) && j < len(qf) {
			t := pf[i]
			for j < len(qf) {
				u := qf[j]
				j++
				if u.num != nil || !same(t, u) {
					nf = append(nf, u)
					continue
				}
				if t.pow*u.pow < 0 {
					// Same symbol, but we require that
					// the sign of the power is the same.
					break GIVEUP
				}
				np := u.pow - t.pow
				if np*t.pow < 0 {
					break GIVEUP
				}
				if np != 0 {
					nf = append(nf, Tp(t.fn, t.sym, np))
				}
				i++
				break
			}
		}
		if i != len(pf) {
			break
		}
		// Whole match found.
		qf = Simplify(append(append(nf, qf[j:]...), append(c, R(r))...)...)
		n++
	}
	return n, qf
}

var isValidLabel = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`).MatchString

// ValidSymbol confirms that a symbol can be considered externally
// meaningful. Various packages may use other forms for book keeping
// purposes, but for "external" purposes this is the only valid form.
func ValidSymbol(token string) bool {
	return isValidLabel(token)
}
