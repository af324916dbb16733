package wordcalc_test

import (
	"fmt"
	"math"

	"github.com/zephyrtronium/wordcalc"
)

func ExampleParseNumber() {
	fmt.Println(wordcalc.ParseNumber("a hundred and fifty six thousand two hundred and twelve"))
	fmt.Println(wordcalc.ParseNumber("two and two fifths"))
	fmt.Println(wordcalc.ParseNumber("five hundred and ten point one five"))
	// Output:
	// 156212 <nil>
	// 2.4 <nil>
	// 510.15 <nil>
}

func ExampleNormalize() {
	fmt.Println(wordcalc.Normalize("Two PIE divided by square root of four"))
	fmt.Println(wordcalc.Normalize("fifteen to the eleven point five power"))
	// Output:
	// two times pi divide sqrt four
	// fifteen to eleven point five
}

func ExampleEvalString() {
	fmt.Println(wordcalc.EvalString("two and a half times four"))
	fmt.Println(wordcalc.EvalString("3 divided by sqrt twenty five"))
	fmt.Println(wordcalc.EvalString("one over zero"))
	// Output:
	// 10 <nil>
	// 0.6 <nil>
	// +Inf <nil>
}

func ExampleFunc() {
	ctx := wordcalc.NewContext(
		wordcalc.SetFunc("floor", wordcalc.Monadic(math.Floor)),
		wordcalc.SetFunc("sine", nil),
	)
	fmt.Println(ctx.EvalString("floor of pi times ten"))
	fmt.Println(ctx.EvalString("sine zero"))
	// Output:
	// 31 <nil>
	// 0 unrecognized word "sine" in "sine zero"
}
