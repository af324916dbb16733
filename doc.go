// Package wordcalc reads numbers and arithmetic written in English words.
//
// ParseNumber turns phrases like "a hundred and fifty six thousand two
// hundred and twelve", "two and two fifths", or "five hundred and ten point
// one five" into float64 values. It is the entry point for other packages
// that need to understand numbers in text.
//
// EvalString solves spoken equations: "five plus twenty one and a fifth",
// "fifteen to the eleven point five power", "3 divided by square root of
// twenty five". Equations are first normalized into a small canonical
// vocabulary, so "two pie" becomes "two times pi" and "five log x" becomes
// "five times log x". Unary operator words like log and sqrt apply to the
// value of everything to their right, so "log sin eleven hundred" is
// log(sin(1100)). Binary operators apply with the usual precedence: powers,
// then products and quotients, then sums and differences.
//
// Arithmetic follows IEEE 754: division by zero gives an infinity, and the
// log of a negative number is NaN. Powers, logarithms, exponentials, and
// square roots are computed in extended precision and rounded once.
//
// All functions are safe for concurrent use.
package wordcalc
