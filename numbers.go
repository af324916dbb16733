package wordcalc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// ParseNumber converts an English number phrase to its value. It accepts
// literal numerals ("42", "2.5e3"), integers in words ("a hundred and fifty
// six thousand two hundred and twelve"), decimal forms ("five hundred and
// ten point one five"), mixed fractions ("two and two fifths", "one and a
// half"), and a trailing ordinal or fraction word, which is read as its
// cardinal ("twenty first" is 21). A phrase ending in an ordinal or fraction
// word that is not an integer is a plain fraction ("a third", "three
// hundredths"). Input is case-insensitive.
//
// The error, if any, is a *ParseError.
func ParseNumber(s string) (float64, error) {
	w := strings.Fields(strings.ToLower(s))
	if len(w) == 0 {
		return 0, errphrase(s, "empty number")
	}
	return parseWords(s, w)
}

// IsNumber reports whether s is a number phrase that ParseNumber accepts.
func IsNumber(s string) bool {
	_, err := ParseNumber(s)
	return err == nil
}

// parseWords parses a lowercase phrase. phrase is the original text used in
// errors.
func parseWords(phrase string, w []string) (float64, error) {
	if len(w) == 1 && isNumeral(w[0]) {
		return parseNumeral(phrase, w[0])
	}
	if r, ok, err := parsePoint(phrase, w); ok {
		return r, err
	}
	if r, ok := parseFraction(phrase, w); ok {
		return r, nil
	}
	c := append([]string(nil), w...)
	c[len(c)-1] = cardinal(c[len(c)-1])
	n, err := parseInt(phrase, c)
	if err != nil {
		// "a third", "two fifths", "three hundredths"
		if isDenominator(w[len(w)-1]) {
			if r, ok := parseRatio(phrase, w); ok {
				return r, nil
			}
		}
		return 0, err
	}
	return float64(n), nil
}

// parseNumeral parses a literal numeral. Numerals too large or too small for
// float64 become infinities or zeros.
func parseNumeral(phrase, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errword(phrase, s)
	}
	return f, nil
}

// parsePoint parses the form "<integer words> point <digit words>". ok is
// false if the phrase has no "point".
func parsePoint(phrase string, w []string) (r float64, ok bool, err error) {
	k := lastIndex(w, wordPoint)
	if k < 0 {
		return 0, false, nil
	}
	frac := w[k+1:]
	if len(frac) == 0 {
		return 0, true, errphrase(phrase, `no digits after "point"`)
	}
	var whole int64
	if k > 0 {
		whole, err = parseInt(phrase, w[:k])
		if err != nil {
			return 0, true, err
		}
	}
	var b strings.Builder
	b.WriteString(strconv.FormatInt(whole, 10))
	b.WriteByte('.')
	for _, x := range frac {
		d, ok := digits[cardinal(x)]
		switch {
		case ok:
			b.WriteByte(byte('0' + d))
		case len(x) == 1 && '0' <= x[0] && x[0] <= '9':
			b.WriteByte(x[0])
		default:
			return 0, true, &ParseError{Phrase: phrase, Word: x, Reason: "expected digit"}
		}
	}
	d, err := decimal.Parse(b.String())
	if err != nil {
		return 0, true, &ParseError{Phrase: phrase, Reason: "decimal out of range: " + err.Error()}
	}
	r, _ = d.Float64()
	return r, true, nil
}

// parseFraction parses the form "<integer words> and <numerator words>
// <denominator words>", where the denominator ends in an ordinal or fraction
// word. The boundary between numerator and denominator is the first one, from
// the left, at which both sides parse as integers. ok is false if the phrase
// does not have that form.
func parseFraction(phrase string, w []string) (float64, bool) {
	if !isDenominator(w[len(w)-1]) {
		return 0, false
	}
	k := lastIndex(w, wordAnd)
	if k <= 0 || k == len(w)-1 {
		return 0, false
	}
	whole, err := parseInt(phrase, w[:k])
	if err != nil {
		return 0, false
	}
	r, ok := parseRatio(phrase, w[k+1:])
	if !ok {
		return 0, false
	}
	return float64(whole) + r, true
}

// parseRatio parses "<numerator words> <denominator words>", trying each
// boundary from the left.
func parseRatio(phrase string, w []string) (float64, bool) {
	frac := make([]string, 0, len(w))
	for _, x := range w {
		if isArticle(x) {
			x = "one"
		}
		frac = append(frac, singular(x))
	}
	for i := 1; i < len(frac); i++ {
		num, err := parseCount(phrase, frac[:i])
		if err != nil {
			continue
		}
		den, err := parseDenominator(phrase, frac[i:])
		if err != nil {
			continue
		}
		return float64(num) / float64(den), true
	}
	return 0, false
}

// parseDenominator parses the denominator of a fraction. A lone magnitude
// ordinal like "hundredth" or "thousandth" stands for its magnitude.
func parseDenominator(phrase string, w []string) (int64, error) {
	last := cardinal(w[len(w)-1])
	if len(w) == 1 {
		if last == wordHundred {
			return 100, nil
		}
		if m, ok := groups[last]; ok {
			return m, nil
		}
	}
	w = append([]string(nil), w...)
	w[len(w)-1] = last
	return parseCount(phrase, w)
}

// parseCount parses an integer phrase or a single literal integer.
func parseCount(phrase string, w []string) (int64, error) {
	if len(w) == 1 && isNumeral(w[0]) {
		n, err := strconv.ParseInt(w[0], 10, 64)
		if err != nil {
			return 0, errword(phrase, w[0])
		}
		return n, nil
	}
	return parseInt(phrase, w)
}

// parseInt parses integer words. The filler word "and" is ignored, and the
// articles "a" and "an" mean one. Each magnitude group word (thousand,
// million, ...) closes a group of the words since the previous one; the last
// group has no multiplier. The result is the sum of each group times its
// multiplier, regardless of the order in which they appear.
func parseInt(phrase string, w []string) (int64, error) {
	var (
		total int64    // sum of closed groups
		group []string // words of the group under construction
		empty = true
	)
	for _, x := range w {
		if x == wordAnd {
			continue
		}
		empty = false
		if isArticle(x) {
			x = "one"
		}
		m, ok := groups[x]
		if !ok {
			group = append(group, x)
			continue
		}
		if len(group) == 0 {
			return 0, &ParseError{Phrase: phrase, Word: x, Reason: "no value before"}
		}
		v, err := parseGroup(phrase, group)
		if err != nil {
			return 0, err
		}
		if total > math.MaxInt64-v*m {
			return 0, errphrase(phrase, "number out of range")
		}
		total += v * m
		group = group[:0]
	}
	if empty {
		return 0, errphrase(phrase, "empty number")
	}
	if len(group) > 0 {
		v, err := parseGroup(phrase, group)
		if err != nil {
			return 0, err
		}
		if total > math.MaxInt64-v {
			return 0, errphrase(phrase, "number out of range")
		}
		total += v
	}
	return total, nil
}

// parseGroup parses the words of one magnitude group: an optional "<ones>
// hundred" followed by an optional tens word and an optional ones word.
func parseGroup(phrase string, g []string) (int64, error) {
	var n int64
	rest := g
	if h := lastIndex(g, wordHundred); h >= 0 {
		switch h {
		case 0:
			return 0, &ParseError{Phrase: phrase, Word: wordHundred, Reason: "no value before"}
		case 1:
			v, ok := ones[g[0]]
			if !ok {
				return 0, errword(phrase, g[0])
			}
			n = v * 100
			rest = g[2:]
		default:
			return 0, &ParseError{Phrase: phrase, Word: g[h-1], Reason: "unexpected word"}
		}
	}
	if len(rest) == 0 {
		return n, nil
	}
	if t, ok := tens[rest[0]]; ok {
		n += t
		rest = rest[1:]
		if len(rest) == 0 {
			return n, nil
		}
	}
	v, ok := ones[rest[0]]
	if !ok {
		return 0, errword(phrase, rest[0])
	}
	if len(rest) > 1 {
		return 0, &ParseError{Phrase: phrase, Word: rest[1], Reason: "unexpected word"}
	}
	return n + v, nil
}

func lastIndex(w []string, s string) int {
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] == s {
			return i
		}
	}
	return -1
}
