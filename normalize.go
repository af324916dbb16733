package wordcalc

import "strings"

// Normalize rewrites spoken math into the canonical vocabulary that Evaluate
// understands, using the default unary operator words. See Context.Normalize.
func Normalize(s string) string {
	return defaultContext.Normalize(s)
}

// Normalize rewrites spoken math into the canonical vocabulary that Evaluate
// understands. The text is lowercased and split into words, and then:
//
//  1. the articles "a" and "an" become "one";
//  2. "to the Y power" and "to the Y" become "to Y", and an ordinal ending Y
//     becomes its cardinal, so "to the sixth power" is "to six";
//  3. "square root of" and "root" become "sqrt", "cube root" becomes
//     "cbrt", "of" after a unary operator word is dropped, and "squared" and
//     "cubed" become "to two" and "to three";
//  4. "divided by" and "over" become "divide", "multiplied by" becomes
//     "times";
//  5. "ee" becomes "e" and "pie" becomes "pi";
//  6. "times" is inserted between a number word and a following constant, and
//     between a unary operator word and a preceding word that is not an
//     operator word, so "two pi" is "two times pi" and "five log x" is "five
//     times log x".
//
// Words that match no rule pass through unchanged. Normalize never fails, and
// normalizing its result again changes nothing.
func (ctx *Context) Normalize(s string) string {
	toks := words(s, ctx.funcs)
	w := make([]string, len(toks))
	for i, tok := range toks {
		w[i] = tok.text
	}
	w = articles(w)
	w = exponents(w)
	w = ctx.functions(w)
	w = divisions(w)
	w = constantNames(w)
	w = ctx.implicit(w)
	return strings.Join(w, " ")
}

func articles(w []string) []string {
	for i, x := range w {
		if isArticle(x) {
			w[i] = "one"
		}
	}
	return w
}

// exponents handles "raised to", "to the Y power", "to the power of Y", and
// "to the Y".
func exponents(w []string) []string {
	r := make([]string, 0, len(w))
	for i := 0; i < len(w); i++ {
		if w[i] == "raised" {
			j := i + 1
			for j < len(w) && w[j] == "raised" {
				j++
			}
			if j < len(w) && w[j] == "to" {
				continue
			}
		}
		r = append(r, w[i])
	}
	w = r
	for i := 0; i+1 < len(w); i++ {
		if w[i] != "to" || w[i+1] != "the" {
			continue
		}
		// Drop "the", "power", and "of" in "to the power of Y".
		for i+1 < len(w) && (w[i+1] == "the" || w[i+1] == "power" || w[i+1] == "of") {
			w = remove(w, i+1)
		}
		last := i + 1
		for j := i + 1; j < len(w); j++ {
			if _, ok := binaryOps[w[j]]; ok {
				break
			}
			if w[j] == "power" {
				w = remove(w, j)
				last = j - 1
				break
			}
		}
		if last < len(w) {
			w[last] = ordinalCardinal(w[last])
		}
	}
	return w
}

func ordinalCardinal(w string) string {
	if c, ok := ordinals[w]; ok {
		return c
	}
	return w
}

// functions handles roots, powers named by words, and "of" after function
// names.
func (ctx *Context) functions(w []string) []string {
	r := make([]string, 0, len(w))
	for i := 0; i < len(w); i++ {
		x := w[i]
		switch {
		case x == "square" && i+1 < len(w) && w[i+1] == "root":
			i++
			x = "sqrt"
		case x == "cube" && i+1 < len(w) && w[i+1] == "root":
			i++
			x = "cbrt"
		case x == "root":
			x = "sqrt"
		case x == "squared":
			r = append(unraised(r), "to", "two")
			continue
		case x == "cubed":
			r = append(unraised(r), "to", "three")
			continue
		}
		r = append(r, x)
		if x == "sqrt" || x == "cbrt" || ctx.funcs[x] != nil {
			for i+1 < len(w) && w[i+1] == "of" {
				i++
			}
		}
	}
	return r
}

// unraised drops a trailing run of "raised", which would otherwise join a
// following "to".
func unraised(w []string) []string {
	for len(w) > 0 && w[len(w)-1] == "raised" {
		w = w[:len(w)-1]
	}
	return w
}

func divisions(w []string) []string {
	r := make([]string, 0, len(w))
	for i := 0; i < len(w); i++ {
		x := w[i]
		switch x {
		case "divided", "divide", "over":
			x = "divide"
		case "multiplied":
			x = "times"
		default:
			r = append(r, x)
			continue
		}
		for i+1 < len(w) && w[i+1] == "by" {
			i++
		}
		r = append(r, x)
	}
	return r
}

func constantNames(w []string) []string {
	for i, x := range w {
		switch x {
		case "ee":
			w[i] = "e"
		case "pie":
			w[i] = "pi"
		}
	}
	return w
}

// implicit inserts the multiplications that speech leaves out.
func (ctx *Context) implicit(w []string) []string {
	if len(w) == 0 {
		return w
	}
	r := make([]string, 0, len(w))
	r = append(r, w[0])
	for i := 1; i < len(w); i++ {
		prev, x := w[i-1], w[i]
		switch classify(x, ctx.funcs) {
		case tokenConst:
			if isNumeralWord(prev) {
				r = append(r, "times")
			}
		case tokenFunc:
			if k := classify(prev, ctx.funcs); k != tokenOp && k != tokenFunc {
				r = append(r, "times")
			}
		}
		r = append(r, x)
	}
	return r
}

func remove(w []string, i int) []string {
	return append(w[:i], w[i+1:]...)
}
