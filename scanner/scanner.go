/*
Package scanner defines an interface for scanners to be used by the MAL reader.

The default scanner implementation is an adapter for lexmachine, living in
sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/gomal"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gomal.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gomal.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token categories are replicated here for practical reasons. Single
// character tokens use their rune value as token type.
const (
	EOF          = scanner.EOF
	Ident        = scanner.Ident
	Int          = scanner.Int
	String       = scanner.String
	Comment      = scanner.Comment
	Unterminated = -10 // string literal running into end of input
	Splice       = -11 // the two-character token ~@
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() gomal.Token
	SetErrorHandler(func(error))
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the lexmachine
// scanner.
type DefaultToken struct {
	kind   gomal.TokType
	lexeme string
	Val    interface{}
	span   gomal.Span
}

func MakeDefaultToken(typ gomal.TokType, lexeme string, span gomal.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() gomal.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() gomal.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%s%s", TokenName(t.kind), t.span)
}

// TokenName returns a human readable name for a token category.
func TokenName(typ gomal.TokType) string {
	switch typ {
	case EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case Int:
		return "integer"
	case String:
		return "string"
	case Comment:
		return "comment"
	case Unterminated:
		return "unterminated string"
	case Splice:
		return "'~@'"
	}
	if typ > 0 {
		return fmt.Sprintf("'%c'", rune(typ))
	}
	return fmt.Sprintf("token(%d)", typ)
}
