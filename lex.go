package wordcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a literal numeral like 3, 2.5, or 1e3.
	tokenNum
	// tokenWord is any other word, usually part of a number phrase.
	tokenWord
	// tokenConst is a named constant, e or pi.
	tokenConst
	// tokenOp is a binary operator word.
	tokenOp
	// tokenFunc is a unary operator word.
	tokenFunc
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenWord:
		return "Word"
	case tokenConst:
		return "Const"
	case tokenOp:
		return "Op"
	case tokenFunc:
		return "Func"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// lexer splits text into lowercase words and classifies them.
type lexer struct {
	src   io.RuneScanner
	buf   strings.Builder
	rune  int
	funcs map[string]Func
}

func lex(src io.RuneScanner, funcs map[string]Func) *lexer {
	return &lexer{
		src:   src,
		rune:  1,
		funcs: funcs,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// next scans the next word from the input. At the end of the input, the
// result is an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) && l.buf.Len() > 0 {
				break
			}
			return lexToken{}, err
		}
		if unicode.IsSpace(r) {
			if l.buf.Len() > 0 {
				break
			}
			tok.pos++
			continue
		}
		l.buf.WriteRune(unicode.ToLower(r))
	}
	tok.text = l.buf.String()
	tok.kind = classify(tok.text, l.funcs)
	return tok, nil
}

// classify determines the kind of a lowercase word given the unary operator
// words in use.
func classify(w string, funcs map[string]Func) tokenKind {
	if _, ok := binaryOps[w]; ok {
		return tokenOp
	}
	if funcs[w] != nil {
		return tokenFunc
	}
	if _, ok := constants[w]; ok {
		return tokenConst
	}
	if isNumeral(w) {
		return tokenNum
	}
	return tokenWord
}

// words scans all words of s.
func words(s string, funcs map[string]Func) []lexToken {
	l := lex(strings.NewReader(s), funcs)
	var toks []lexToken
	for {
		tok, err := l.next()
		if err != nil {
			// strings.Reader only fails with io.EOF.
			return toks
		}
		toks = append(toks, tok)
	}
}

// isNumeral reports whether s is a literal decimal number: an optional sign,
// digits with at most one dot, and an optional exponent.
func isNumeral(s string) bool {
	var dig, dot, e, le, ed bool
	for i, r := range s {
		switch r {
		case '+', '-':
			// A sign may lead the numeral or its exponent.
			if i != 0 && !le {
				return false
			}
			le = false
		case '.':
			if dot || e {
				return false
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return false
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return false
		}
	}
	return dig && (!e || ed)
}
