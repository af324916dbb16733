package wordcalc

// ones maps single words to values below twenty, except ten, which is a tens
// word. Any of these may prefix "hundred", so "eleven hundred" is 1100.
var ones = map[string]int64{
	"zero":      0,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
}

var tens = map[string]int64{
	"ten":     10,
	"twenty":  20,
	"thirty":  30,
	"forty":   40,
	"fifty":   50,
	"sixty":   60,
	"seventy": 70,
	"eighty":  80,
	"ninety":  90,
}

const wordHundred = "hundred"

// groups maps magnitude group words to their multipliers.
var groups = map[string]int64{
	"thousand": 1_000,
	"million":  1_000_000,
	"billion":  1_000_000_000,
	"trillion": 1_000_000_000_000,
}

// ordinals maps ordinal words to their cardinal roots.
var ordinals = map[string]string{
	"first":       "one",
	"second":      "two",
	"third":       "three",
	"fourth":      "four",
	"fifth":       "five",
	"sixth":       "six",
	"seventh":     "seven",
	"eighth":      "eight",
	"ninth":       "nine",
	"tenth":       "ten",
	"eleventh":    "eleven",
	"twelfth":     "twelve",
	"thirteenth":  "thirteen",
	"fourteenth":  "fourteen",
	"fifteenth":   "fifteen",
	"sixteenth":   "sixteen",
	"seventeenth": "seventeen",
	"eighteenth":  "eighteen",
	"nineteenth":  "nineteen",
	"twentieth":   "twenty",
	"thirtieth":   "thirty",
	"fortieth":    "forty",
	"fiftieth":    "fifty",
	"sixtieth":    "sixty",
	"seventieth":  "seventy",
	"eightieth":   "eighty",
	"ninetieth":   "ninety",
	"hundredth":   "hundred",
	"thousandth":  "thousand",
	"millionth":   "million",
	"billionth":   "billion",
	"trillionth":  "trillion",
}

// fractions maps fraction names that are not ordinals to their denominators.
var fractions = map[string]string{
	"quarter": "four",
	"half":    "two",
	"halve":   "two",
}

// digits maps the words allowed after "point".
var digits = map[string]int64{
	"zero":  0,
	"oh":    0,
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

const (
	wordAnd   = "and"
	wordPoint = "point"
)

// cardinal returns the cardinal root of an ordinal or fraction word, or w
// itself if it is neither.
func cardinal(w string) string {
	if c, ok := fractions[w]; ok {
		return c
	}
	if c, ok := ordinals[w]; ok {
		return c
	}
	return w
}

// isDenominator reports whether w names a fraction denominator, singular or
// plural: "third", "thirds", "half", "halves".
func isDenominator(w string) bool {
	w = singular(w)
	if _, ok := fractions[w]; ok {
		return true
	}
	_, ok := ordinals[w]
	return ok
}

// singular strips a plural s. No cardinal word ends in s, so this never
// damages a number word.
func singular(w string) string {
	if len(w) > 1 && w[len(w)-1] == 's' {
		return w[:len(w)-1]
	}
	return w
}

// isArticle reports whether w is an article meaning one.
func isArticle(w string) bool {
	return w == "a" || w == "an"
}

// isNumeralWord reports whether w is any word of the number vocabulary or a
// literal numeral.
func isNumeralWord(w string) bool {
	if _, ok := ones[w]; ok {
		return true
	}
	if _, ok := tens[w]; ok {
		return true
	}
	if _, ok := groups[w]; ok {
		return true
	}
	if w == wordHundred || isDenominator(w) {
		return true
	}
	return isNumeral(w)
}
