package gomal

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Constants are defined by the
// scanners producing tokens.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and
// are consumed by the reader.
//
// An example would be a token for an integer:
//
//    TokType = Integer     // identifier for this kind of tokens
//    Lexeme  = "-42"       // lexeme how it appeared in the input stream
//    Value   = -42         // an int64 value, if the scanner decoded it
//    Span    = 67…70       // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
