package wordcalc

// Context holds the configuration for normalizing and evaluating equations:
// the unary operator words it recognizes and the precision of extended
// precision intermediates. A Context is never modified after creation, so it
// is safe to use concurrently.
type Context struct {
	funcs map[string]Func
	prec  uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt map[string]Func
	precopt  uint
)

func (funcopt) ctxOption()  {}
func (funcsopt) ctxOption() {}
func (precopt) ctxOption()  {}

// SetFunc sets the function for a unary operator word. To disable a word,
// pass nil for fn; the word is then parsed as part of a number phrase.
func SetFunc(name string, fn Func) ContextOption {
	return funcopt{name, fn}
}

// SetFuncs sets any number of unary operator words. Nil functions disable
// their words.
func SetFuncs(fns map[string]Func) ContextOption {
	return funcsopt(fns)
}

// DisableDefaultFuncs disables every default unary operator word. Options
// after it may enable some again.
func DisableDefaultFuncs() ContextOption {
	m := make(funcsopt, len(globalfuncs))
	for k := range globalfuncs {
		m[k] = nil
	}
	return m
}

// Prec sets the precision in bits of intermediate results of power, log, exp,
// and sqrt. Results are always rounded to float64. Precisions below 53 are
// raised to 53.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// MinPrec is the smallest precision a context uses.
const MinPrec = 53

// NewContext creates a new evaluation context with the default unary operator
// words. If no precision is given, the default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{funcs: globalfuncs, prec: 64}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		funcs: make(map[string]Func, len(ctx.funcs)),
		prec:  ctx.prec,
	}
	for k, v := range ctx.funcs {
		n.funcs[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case funcopt:
			n.setFunc(opt.name, opt.fn)
		case funcsopt:
			for k, v := range opt {
				n.setFunc(k, v)
			}
		case precopt:
			n.prec = uint(opt)
		default:
			panic("wordcalc: unknown option type")
		}
	}
	if n.prec < MinPrec {
		n.prec = MinPrec
	}
	return &n
}

func (ctx *Context) setFunc(name string, fn Func) {
	if fn == nil {
		delete(ctx.funcs, name)
		return
	}
	ctx.funcs[name] = fn
}

// Prec returns the precision of extended precision intermediates.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Func returns the function for a unary operator word, or nil if the word is
// not a unary operator in the context.
func (ctx *Context) Func(name string) Func {
	return ctx.funcs[name]
}

var defaultContext = NewContext()
