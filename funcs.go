package wordcalc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a unary operator word's function from reals to reals. Functions
// must follow IEEE 754 conventions for arguments outside their domains,
// returning NaN or an infinity rather than failing.
type Func interface {
	// Call evaluates the function at x. ctx supplies the precision for
	// functions that compute in extended precision.
	Call(ctx *Context, x float64) float64
}

var globalfuncs = map[string]Func{
	"log":  Precise(bigfloat.Log, math.Log),
	"ln":   Precise(bigfloat.Log, math.Log),
	"exp":  Precise(bigfloat.Exp, math.Exp),
	"sqrt": Precise((*big.Float).Sqrt, math.Sqrt),
	"cbrt": Monadic(math.Cbrt),

	"sin":        Monadic(math.Sin),
	"sine":       Monadic(math.Sin),
	"cos":        Monadic(math.Cos),
	"cosine":     Monadic(math.Cos),
	"tan":        Monadic(math.Tan),
	"tangent":    Monadic(math.Tan),
	"asin":       Monadic(math.Asin),
	"arcsin":     Monadic(math.Asin),
	"arcsine":    Monadic(math.Asin),
	"acos":       Monadic(math.Acos),
	"arccos":     Monadic(math.Acos),
	"arccosine":  Monadic(math.Acos),
	"atan":       Monadic(math.Atan),
	"arctan":     Monadic(math.Atan),
	"arctangent": Monadic(math.Atan),
	"sinh":       Monadic(math.Sinh),
	"cosh":       Monadic(math.Cosh),
	"tanh":       Monadic(math.Tanh),
}

type monadic struct {
	f func(float64) float64
}

func (m monadic) Call(ctx *Context, x float64) float64 {
	return m.f(x)
}

// Monadic wraps a float64 function into a Func.
func Monadic(f func(float64) float64) Func {
	return monadic{f}
}

type precise struct {
	f      func(out, in *big.Float) *big.Float
	approx func(float64) float64
}

func (p precise) Call(ctx *Context, x float64) (r float64) {
	r = p.approx(x)
	if !finite(x) || !finite(r) {
		// Out of domain or overflowing. The approximation already has the
		// right special value.
		return r
	}
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		err := e.(error) // panic if not error
		if errors.As(err, &big.ErrNaN{}) {
			return
		}
		panic(err)
	}()
	in := new(big.Float).SetPrec(ctx.Prec()).SetFloat64(x)
	out := new(big.Float).SetPrec(ctx.Prec())
	out = p.f(out, in)
	f, _ := out.Float64()
	return f
}

// Precise wraps a function of one variable computed on big.Floats into a
// Func. f computes its result at out's precision and returns it, usually as
// out itself. approx computes the same function in float64 arithmetic. It is
// used directly for arguments whose results are NaN or infinite, and as the
// result if f panics with big.ErrNaN.
func Precise(f func(out, in *big.Float) *big.Float, approx func(float64) float64) Func {
	return precise{f: f, approx: approx}
}

// pow computes a to the b. Ordinary positive bases are computed in extended
// precision and rounded once.
func (ctx *Context) pow(a, b float64) (r float64) {
	r = math.Pow(a, b)
	if a <= 0 || a == 1 || !finite(a) || !finite(b) || !finite(r) || r == 0 {
		return r
	}
	defer func() {
		e := recover()
		if e == nil {
			return
		}
		err := e.(error) // panic if not error
		if errors.As(err, &big.ErrNaN{}) {
			return
		}
		panic(err)
	}()
	x := new(big.Float).SetPrec(ctx.Prec()).SetFloat64(a)
	y := new(big.Float).SetPrec(ctx.Prec()).SetFloat64(b)
	z := new(big.Float).SetPrec(ctx.Prec())
	z = bigfloat.Pow(z, x, y)
	f, _ := z.Float64()
	return f
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
