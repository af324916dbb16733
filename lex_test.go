package wordcalc

import (
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numerals
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}},
		{"  2.5e3", []lexToken{{text: "2.5e3", kind: tokenNum, pos: 3}}},
		{"-1", []lexToken{{text: "-1", kind: tokenNum, pos: 1}}},
		{"1e", []lexToken{{text: "1e", kind: tokenWord, pos: 1}}},
		// words
		{"five", []lexToken{{text: "five", kind: tokenWord, pos: 1}}},
		{"Forty TWO", []lexToken{{text: "forty", kind: tokenWord, pos: 1}, {text: "two", kind: tokenWord, pos: 7}}},
		{"héllo wörld", []lexToken{{text: "héllo", kind: tokenWord, pos: 1}, {text: "wörld", kind: tokenWord, pos: 7}}},
		// constants
		{"e PI", []lexToken{{text: "e", kind: tokenConst, pos: 1}, {text: "pi", kind: tokenConst, pos: 3}}},
		{"ee", []lexToken{{text: "ee", kind: tokenWord, pos: 1}}},
		// operators
		{"one plus two", []lexToken{{text: "one", kind: tokenWord, pos: 1}, {text: "plus", kind: tokenOp, pos: 5}, {text: "two", kind: tokenWord, pos: 10}}},
		{"to times divide", []lexToken{{text: "to", kind: tokenOp, pos: 1}, {text: "times", kind: tokenOp, pos: 4}, {text: "divide", kind: tokenOp, pos: 10}}},
		{"sqrt\tLog", []lexToken{{text: "sqrt", kind: tokenFunc, pos: 1}, {text: "log", kind: tokenFunc, pos: 6}}},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src), globalfuncs)
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if err != nil {
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		for got, err := scan.next(); err != io.EOF; got, err = scan.next() {
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
	}
}

func TestLexFuncs(t *testing.T) {
	funcs := map[string]Func{"double": Monadic(func(x float64) float64 { return 2 * x })}
	toks := words("double sqrt", funcs)
	want := []lexToken{{text: "double", kind: tokenFunc, pos: 1}, {text: "sqrt", kind: tokenWord, pos: 8}}
	if len(toks) != len(want) {
		t.Fatalf("want %v, got %v", want, toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d: want %v, got %v", i, want[i], toks[i])
		}
	}
}

func TestIsNumeral(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"0", true},
		{"9876543210", true},
		{"1.0", true},
		{".1", true},
		{"1.", true},
		{"-1", true},
		{"+1", true},
		{"1e1", true},
		{"1E+1", true},
		{"1e-1", true},
		{".1e1", true},
		{"", false},
		{".", false},
		{"-", false},
		{"e1", false},
		{"1e", false},
		{"1e+", false},
		{"1.1.1", false},
		{"1e1.5", false},
		{"1e1e1", false},
		{"1-1", false},
		{"1a", false},
		{"inf", false},
		{"nan", false},
		{"0x10", false},
		{"1_000", false},
	}
	for _, c := range cases {
		if got := isNumeral(c.s); got != c.want {
			t.Errorf("isNumeral(%q): want %t, got %t", c.s, c.want, got)
		}
	}
}
