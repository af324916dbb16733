package wordcalc

import (
	"math"
	"strconv"
)

// opKind is a binary operator.
type opKind int8

const (
	opNone opKind = iota

	opPow // left to the power of right
	opMul // left times right
	opDiv // left divided by right
	opAdd // left plus right
	opSub // left minus right
)

func (k opKind) String() string {
	switch k {
	case opNone:
		return "None"
	case opPow:
		return "^"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opAdd:
		return "+"
	case opSub:
		return "-"
	default:
		return "opKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// precedence returns the binding class of the operator. Lower classes are
// applied first.
func (k opKind) precedence() int {
	switch k {
	case opPow:
		return 0
	case opMul, opDiv:
		return 1
	case opAdd, opSub:
		return 2
	default:
		panic("wordcalc: invalid operator " + k.String())
	}
}

// lowestPrecedence is the loosest binding class.
const lowestPrecedence = 2

// apply computes the operator's result. Division by zero and similar follow
// IEEE 754 semantics.
func (k opKind) apply(ctx *Context, a, b float64) float64 {
	switch k {
	case opPow:
		return ctx.pow(a, b)
	case opMul:
		return a * b
	case opDiv:
		return a / b
	case opAdd:
		return a + b
	case opSub:
		return a - b
	default:
		panic("wordcalc: invalid operator " + k.String())
	}
}

// binaryOps maps binary operator words to their operators.
var binaryOps = map[string]opKind{
	"plus":     opAdd,
	"add":      opAdd,
	"sum":      opAdd,
	"minus":    opSub,
	"sub":      opSub,
	"subtract": opSub,
	"less":     opSub,
	"over":     opDiv,
	"divide":   opDiv,
	"times":    opMul,
	"multiply": opMul,
	"to":       opPow,
}

// constants maps the canonical names of constants to their values.
var constants = map[string]float64{
	"e":  math.E,
	"pi": math.Pi,
}
