package wordcalc

import (
	"strconv"
	"strings"
)

// Equation = Term { BinaryOp Term }
// Term = { UnaryOp } Operand
// Operand = constant | number phrase
//
// A unary operator applies to the value of everything to its right, so
// "sqrt one plus three" is sqrt(1+3).

// Equation is an equation whose operands have been converted to numbers. The
// same Equation may be evaluated any number of times, concurrently.
type Equation struct {
	// src is the text the equation was parsed from.
	src string
	// items alternates operands and binary operators, with unary operators
	// interspersed.
	items []item
}

type item struct {
	kind itemKind
	// text is the word or phrase the item was parsed from.
	text string
	// pos is the column of the item's first word.
	pos  int
	val  float64
	op   opKind
	fn   Func
}

type itemKind int8

const (
	itemNone itemKind = iota

	itemValue // val
	itemOp    // val = left op right
	itemFunc  // val = fn(everything to the right)
)

// Parse parses normalized equation text using the default unary operator
// words. See Context.Parse.
func Parse(s string) (*Equation, error) {
	return defaultContext.Parse(s)
}

// Parse parses normalized equation text. Each run of words between operator
// words is an operand: either a constant, e or pi, or a number phrase
// understood by ParseNumber. Parse does not check the order of operands and
// operators; Eval reports misplaced operators.
//
// The error, if any, is a *ParseError.
func (ctx *Context) Parse(s string) (*Equation, error) {
	eq := Equation{src: s}
	var span []lexToken
	flush := func() error {
		if len(span) == 0 {
			return nil
		}
		w := make([]string, len(span))
		for i, tok := range span {
			w[i] = tok.text
		}
		text := strings.Join(w, " ")
		pos := span[0].pos
		defer func() { span = span[:0] }()
		if v, ok := constants[text]; ok {
			eq.items = append(eq.items, item{kind: itemValue, text: text, pos: pos, val: v})
			return nil
		}
		v, err := ParseNumber(text)
		if err != nil {
			return locate(err, span)
		}
		eq.items = append(eq.items, item{kind: itemValue, text: text, pos: pos, val: v})
		return nil
	}
	for _, tok := range words(s, ctx.funcs) {
		switch tok.kind {
		case tokenOp:
			if err := flush(); err != nil {
				return nil, err
			}
			eq.items = append(eq.items, item{kind: itemOp, text: tok.text, pos: tok.pos, op: binaryOps[tok.text]})
		case tokenFunc:
			if err := flush(); err != nil {
				return nil, err
			}
			eq.items = append(eq.items, item{kind: itemFunc, text: tok.text, pos: tok.pos, fn: ctx.funcs[tok.text]})
		default:
			span = append(span, tok)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(eq.items) == 0 {
		return nil, errphrase(s, "empty equation")
	}
	return &eq, nil
}

// locate sets the column of a ParseError about one of the words of span.
func locate(err error, span []lexToken) error {
	perr, ok := err.(*ParseError)
	if !ok || perr.Word == "" {
		return err
	}
	for _, tok := range span {
		if tok.text == perr.Word || cardinal(tok.text) == perr.Word {
			perr.Col = tok.pos
			break
		}
	}
	return perr
}

// String formats the equation with operands as numbers and operators as
// symbols, e.g. "5 + log 206".
func (eq *Equation) String() string {
	var b strings.Builder
	for i, it := range eq.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch it.kind {
		case itemValue:
			b.WriteString(strconv.FormatFloat(it.val, 'g', -1, 64))
		case itemOp:
			b.WriteString(it.op.String())
		case itemFunc:
			b.WriteString(it.text)
		default:
			b.WriteString("$" + it.text + "$")
		}
	}
	return b.String()
}

// Source returns the text that the equation was parsed from.
func (eq *Equation) Source() string {
	return eq.src
}
