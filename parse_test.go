package wordcalc

import (
	"errors"
	"regexp"
	"testing"
)

func TestParseItems(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		kinds []itemKind
		str   string
	}{
		{"number", "forty two", []itemKind{itemValue}, "42"},
		{"const", "pi", []itemKind{itemValue}, "3.141592653589793"},
		{"binary", "one plus two", []itemKind{itemValue, itemOp, itemValue}, "1 + 2"},
		{"all-ops", "one plus two minus three times four divide five to six", []itemKind{itemValue, itemOp, itemValue, itemOp, itemValue, itemOp, itemValue, itemOp, itemValue, itemOp, itemValue}, "1 + 2 - 3 * 4 / 5 ^ 6"},
		{"func", "eleven plus five times log two hundred and six", []itemKind{itemValue, itemOp, itemValue, itemOp, itemFunc, itemValue}, "11 + 5 * log 206"},
		{"nested", "sqrt sqrt sixteen", []itemKind{itemFunc, itemFunc, itemValue}, "sqrt sqrt 16"},
		{"fraction", "two and a quarter over e", []itemKind{itemValue, itemOp, itemValue}, "2.25 / 2.718281828459045"},
		// Order is checked during evaluation.
		{"misplaced", "plus plus", []itemKind{itemOp, itemOp}, "+ +"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			eq, err := Parse(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if len(eq.items) != len(c.kinds) {
				t.Fatalf("%q: want %d items, got %d: %v", c.src, len(c.kinds), len(eq.items), eq)
			}
			for i, k := range c.kinds {
				if eq.items[i].kind != k {
					t.Errorf("%q: item %d has kind %d, want %d", c.src, i, eq.items[i].kind, k)
				}
			}
			if s := eq.String(); s != c.str {
				t.Errorf("%q: want string %q, got %q", c.src, c.str, s)
			}
			if s := eq.Source(); s != c.src {
				t.Errorf("%q: wrong source %q", c.src, s)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		col  int
		res  []string
	}{
		{"empty", "", 0, []string{`(?i)\bempty\b`, `\bequation\b`}},
		{"unknown", "five plus foo", 11, []string{`(?i)\bunrecognized\b`, `"foo"`}},
		{"bad-phrase", "two three", 5, []string{`(?i)\bunexpected\b`, `"three"`}},
		{"bare-group", "thousand plus one", 1, []string{`"thousand"`}},
		{"ordinal", "two plus hundredth", 10, []string{`"hundred"`}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			eq, err := Parse(c.src)
			if eq != nil {
				t.Errorf("%q parsed non-nil to %v", c.src, eq)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("%q: wrong error type %T", c.src, err)
			}
			if perr.Col != c.col {
				t.Errorf("%q: error at column %d, want %d", c.src, perr.Col, c.col)
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
		})
	}
}

func BenchmarkEvalString(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"number", "a hundred and fifty six thousand two hundred and twelve"},
		{"fraction", "five plus twenty one and a fifth"},
		{"power", "fifteen to the eleven point five power"},
		{"funcs", "eleven plus five log of two hundred and six divided by the square root of two"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				EvalString(c.src)
			}
		})
	}
}
