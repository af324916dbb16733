package wordcalc

import "strconv"

// ParseError is an error indicating that a phrase does not follow the number
// or equation grammar. Every error resulting from invalid input is a
// *ParseError.
type ParseError struct {
	// Phrase is the text that failed to parse.
	Phrase string
	// Word is the word that was not understood. It is empty when the
	// phrase as a whole is malformed, e.g. empty.
	Word string
	// Col is the 1-based rune column of Word in the equation text given to
	// Parse, or 0 if the error has no position.
	Col int
	// Reason describes what went wrong.
	Reason string
}

func (err *ParseError) Error() string {
	msg := err.Reason
	if err.Word != "" {
		msg += " " + strconv.Quote(err.Word)
	}
	if err.Phrase != "" {
		msg += " in " + strconv.Quote(err.Phrase)
	}
	return msg
}

// Pos returns the column of the word that caused the error, or 0.
func (err *ParseError) Pos() int {
	return err.Col
}

// errword is a shortcut to create a ParseError for an unrecognized word.
func errword(phrase, word string) *ParseError {
	return &ParseError{Phrase: phrase, Word: word, Reason: "unrecognized word"}
}

// errphrase is a shortcut to create a ParseError about the whole phrase.
func errphrase(phrase, reason string) *ParseError {
	return &ParseError{Phrase: phrase, Reason: reason}
}
