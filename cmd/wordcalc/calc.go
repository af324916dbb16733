package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/zephyrtronium/wordcalc"
)

// runner evaluates input one line at a time.
type runner struct {
	calc *wordcalc.Context
	out  io.Writer
	errs io.Writer
	// verb formats each result, with a newline appended.
	verb string
	// number parses number phrases instead of equations.
	number bool
	// echo prints the normalized text before each result.
	echo bool
}

// line evaluates one expression and prints its result. name identifies the
// input in error messages.
func (r *runner) line(name, text string) bool {
	text = strings.TrimSpace(text)
	var (
		v   float64
		err error
	)
	if r.number {
		if r.echo {
			fmt.Fprintf(r.out, "%s : ", text)
		}
		v, err = wordcalc.ParseNumber(text)
	} else {
		norm := r.calc.Normalize(text)
		if r.echo {
			fmt.Fprintf(r.out, "%s : ", norm)
		}
		v, err = r.calc.Evaluate(norm)
	}
	if err != nil {
		if r.echo {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintf(r.errs, "%s: %v\n", name, err)
		return false
	}
	fmt.Fprintf(r.out, r.verb+"\n", v)
	return true
}

// run evaluates each non-blank line of src that does not start with #. It
// returns the number of lines that failed.
func (r *runner) run(name string, src io.Reader) (failed int, err error) {
	sc := bufio.NewScanner(src)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if !r.line(fmt.Sprintf("%s:%d", name, n), text) {
			failed++
		}
	}
	if err := sc.Err(); err != nil {
		return failed, fmt.Errorf("reading %s: %w", name, err)
	}
	return failed, nil
}
