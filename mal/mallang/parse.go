package mallang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/gomal"
	"github.com/npillmayer/gomal/mal"
	"github.com/npillmayer/gomal/scanner"
	"github.com/npillmayer/gomal/scanner/lexmach"
)

// --- Grammar ---------------------------------------------------------------
//
// Form       ::=  '(' Form* ')'          // list
// Form       ::=  '[' Form* ']'          // vector
// Form       ::=  '{' (Key Form)* '}'    // dict, Key is a string or keyword
// Form       ::=  Macro Form             // ' ` ~ ~@ @
// Form       ::=  int | string | ident
//
// Whitespace, commas and comments are filtered by the scanner.

var lexer *lexmach.LMAdapter
var lexerErr error

var startOnce sync.Once // monitors one-time creation of the lexer

func createLexer() (*lexmach.LMAdapter, error) {
	startOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lexer, lexerErr = Lexer()
	})
	return lexer, lexerErr
}

// Reader reads MAL source text. It implements mal.Reader.
type Reader struct{}

var _ mal.Reader = Reader{}

// NewReader returns a reader for MAL source text.
func NewReader() Reader {
	return Reader{}
}

// Read parses text into a sequence of forms.
func (r Reader) Read(text string) ([]mal.Value, error) {
	lm, err := createLexer()
	if err != nil {
		return nil, mal.Errorf(mal.Fatal, "cannot create lexer: %v", err)
	}
	scan, err := lm.Scanner(text)
	if err != nil {
		return nil, mal.Errorf(mal.ParseError, "%v", err)
	}
	p := &parser{scan: scan}
	scan.SetErrorHandler(func(e error) {
		if p.err == nil {
			p.err = mal.Errorf(mal.ParseError, "%v", e)
		}
	})
	p.next()
	forms := []mal.Value{}
	for p.tok.TokType() != scanner.EOF {
		form, err := p.form()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	if p.err != nil {
		return nil, p.err
	}
	return forms, nil
}

// ReadForm parses text containing exactly one form.
func ReadForm(text string) (mal.Value, error) {
	forms, err := NewReader().Read(text)
	if err != nil {
		return nil, err
	}
	if len(forms) != 1 {
		return nil, mal.Errorf(mal.ParseError, "expected a single form, found %d", len(forms))
	}
	return forms[0], nil
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	scan scanner.Tokenizer
	tok  gomal.Token // lookahead
	err  error       // first scanner error
}

func (p *parser) next() {
	p.tok = p.scan.NextToken()
	tracer().Debugf("token %v", p.tok)
}

func (p *parser) errorf(format string, args ...interface{}) error {
	if p.err != nil {
		return p.err
	}
	return mal.Errorf(mal.ParseError, format, args...)
}

var readerMacros = map[gomal.TokType]mal.Symbol{
	'\'':           "quote",
	'`':            "quasiquote",
	'~':            "unquote",
	scanner.Splice: "splice-unquote",
	'@':            "deref",
}

func (p *parser) form() (mal.Value, error) {
	tok := p.tok
	switch t := tok.TokType(); t {
	case '(':
		p.next()
		elems, err := p.sequence(')')
		if err != nil {
			return nil, err
		}
		return mal.NewList(elems...), nil
	case '[':
		p.next()
		elems, err := p.sequence(']')
		if err != nil {
			return nil, err
		}
		return mal.Vector(elems), nil
	case '{':
		p.next()
		return p.dict()
	case '\'', '`', '~', '@', scanner.Splice:
		p.next()
		if p.tok.TokType() == scanner.EOF {
			return nil, p.errorf("missing form after %s", scanner.TokenName(t))
		}
		quoted, err := p.form()
		if err != nil {
			return nil, err
		}
		return mal.List{readerMacros[t], quoted}, nil
	case '^':
		return nil, p.errorf("unsupported reader macro '^' at %v", tok.Span())
	case ')', ']', '}':
		return nil, p.errorf("unexpected %s at %v", scanner.TokenName(t), tok.Span())
	case scanner.Unterminated:
		return nil, p.errorf("unterminated string starting at %d", tok.Span().From())
	case scanner.EOF:
		return nil, p.errorf("unexpected end of input")
	}
	p.next()
	return atom(tok)
}

// sequence reads forms up to a closing delimiter, which is consumed.
func (p *parser) sequence(close gomal.TokType) ([]mal.Value, error) {
	elems := []mal.Value{}
	for p.tok.TokType() != close {
		if p.tok.TokType() == scanner.EOF {
			return nil, p.errorf("expected %s, got end of input", scanner.TokenName(close))
		}
		form, err := p.form()
		if err != nil {
			return nil, err
		}
		elems = append(elems, form)
	}
	p.next()
	return elems, nil
}

// dict reads {k v ...}. With string and keyword keys only, the result is a
// dict literal. Any other key is computed at evaluation time, so the form
// is read as a call of hash-map.
func (p *parser) dict() (mal.Value, error) {
	elems, err := p.sequence('}')
	if err != nil {
		return nil, err
	}
	if len(elems)%2 != 0 {
		return nil, p.errorf("dict literal needs an even number of forms, got %d", len(elems))
	}
	d := mal.NewDict()
	for i := 0; i < len(elems); i += 2 {
		k, err := mal.KeyOf(elems[i])
		if err != nil {
			form := make(mal.List, 0, len(elems)+1)
			form = append(form, mal.Symbol("hash-map"))
			return append(form, elems...), nil
		}
		d = d.Assoc(k, elems[i+1])
	}
	return d, nil
}

// atom converts an integer, string or identifier token to a value.
func atom(tok gomal.Token) (mal.Value, error) {
	lexeme := tok.Lexeme()
	switch tok.TokType() {
	case scanner.Int:
		n, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return nil, mal.Errorf(mal.ParseError, "integer literal %s out of range", lexeme)
		}
		return mal.Int(n), nil
	case scanner.String:
		return mal.Str(unescape(lexeme[1 : len(lexeme)-1])), nil
	case scanner.Ident:
		switch {
		case lexeme == "nil":
			return mal.Nil, nil
		case lexeme == "true":
			return mal.Bool(true), nil
		case lexeme == "false":
			return mal.Bool(false), nil
		case strings.HasPrefix(lexeme, ":"):
			return mal.Keyword(lexeme), nil
		}
		return mal.Symbol(lexeme), nil
	}
	return nil, mal.Errorf(mal.ParseError, "unexpected %s at %v", scanner.TokenName(tok.TokType()), tok.Span())
}

// unescape replaces the escape sequences of string literals. An unknown
// escape stands for the escaped character.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped {
			if r == '\\' {
				escaped = true
			} else {
				b.WriteRune(r)
			}
			continue
		}
		escaped = false
		switch r {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
