package wordcalc

import "strconv"

// Eval evaluates an equation. Unary operators are resolved from the rightmost
// one leftward, each applied to the value of everything to its right. The
// remaining binary operators are applied by precedence: powers, then
// multiplication and division, then addition and subtraction, each class
// from left to right.
//
// Division by zero and functions applied outside their domains produce
// infinities and NaN rather than errors. The error, if any, is a *ParseError
// describing a misplaced operator or missing operand.
func (ctx *Context) Eval(eq *Equation) (float64, error) {
	items := make([]item, len(eq.items))
	copy(items, eq.items)
	for {
		k := lastFunc(items)
		if k < 0 {
			break
		}
		v, err := reduce(ctx, eq.src, items[k+1:])
		if err != nil {
			return 0, err
		}
		r := items[k].fn.Call(ctx, v)
		items = append(items[:k], item{kind: itemValue, text: strconv.FormatFloat(r, 'g', -1, 64), pos: items[k].pos, val: r})
	}
	return reduce(ctx, eq.src, items)
}

// Evaluate parses and evaluates normalized equation text. Use EvalString for
// text that has not been normalized.
func (ctx *Context) Evaluate(s string) (float64, error) {
	eq, err := ctx.Parse(s)
	if err != nil {
		return 0, err
	}
	return ctx.Eval(eq)
}

// EvalString normalizes, parses, and evaluates spoken equation text. Columns
// in errors count runes of the normalized text.
func (ctx *Context) EvalString(s string) (float64, error) {
	return ctx.Evaluate(ctx.Normalize(s))
}

// Evaluate is a shortcut to evaluate normalized text with the default unary
// operator words.
func Evaluate(s string) (float64, error) {
	return defaultContext.Evaluate(s)
}

// EvalString is a shortcut to normalize and evaluate spoken equation text
// with the default unary operator words.
func EvalString(s string) (float64, error) {
	return defaultContext.EvalString(s)
}

func lastFunc(items []item) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].kind == itemFunc {
			return i
		}
	}
	return -1
}

// reduce evaluates a list of alternating operands and binary operators.
func reduce(ctx *Context, src string, items []item) (float64, error) {
	if len(items) == 0 {
		return 0, errphrase(src, "missing operand")
	}
	nums := make([]float64, 0, len(items)/2+1)
	ops := make([]opKind, 0, len(items)/2)
	for i, it := range items {
		switch {
		case i%2 == 0 && it.kind != itemValue:
			return 0, &ParseError{Phrase: src, Word: it.text, Col: it.pos, Reason: "missing operand before"}
		case i%2 == 1 && it.kind != itemOp:
			return 0, &ParseError{Phrase: src, Word: it.text, Col: it.pos, Reason: "missing operator before"}
		case it.kind == itemValue:
			nums = append(nums, it.val)
		default:
			ops = append(ops, it.op)
		}
	}
	if len(nums) == len(ops) {
		last := items[len(items)-1]
		return 0, &ParseError{Phrase: src, Word: last.text, Col: last.pos, Reason: "missing operand after"}
	}
	for len(ops) > 0 {
		k, best := 0, lowestPrecedence+1
		for i, op := range ops {
			if p := op.precedence(); p < best {
				k, best = i, p
			}
		}
		nums[k] = ops[k].apply(ctx, nums[k], nums[k+1])
		nums = append(nums[:k+1], nums[k+2:]...)
		ops = append(ops[:k], ops[k+1:]...)
	}
	return nums[0], nil
}
