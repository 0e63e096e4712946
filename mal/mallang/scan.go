package mallang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/gomal/scanner"
	"github.com/npillmayer/gomal/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// The tokens representing literal lexemes
var literals = []string{"(", ")", "[", "]", "{", "}", "'", "`", "~", "^", "@", "~@"}

// All of the non-literal tokens
var tokens = []string{"ID", "INT", "STRING", "UNTERMINATED"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int, len(tokens)+len(literals))
		tokenIds["ID"] = scanner.Ident
		tokenIds["INT"] = scanner.Int
		tokenIds["STRING"] = scanner.String
		tokenIds["UNTERMINATED"] = scanner.Unterminated
		for _, lit := range literals {
			tokenIds[lit] = int(lit[0])
		}
		tokenIds["~@"] = scanner.Splice
	})
}

// Token returns a token name and its value.
func Token(t string) (string, int) {
	initTokens()
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return t, id
}

// Lexer creates a new lexmachine lexer for MAL.
//
// Integers are added before identifiers, so on a tie a sequence of digits
// is an integer. Everything not otherwise matched up to the next whitespace
// or special character is an identifier.
func Lexer() (*lexmach.LMAdapter, error) {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\n|\r|,)+`), lexmach.Skip)
		lexer.Add([]byte(`;[^\n]*`), lexmach.Skip) // skip comments
		lexer.Add([]byte(`\"([^\\\"]|\\.)*\"`), makeToken("STRING"))
		lexer.Add([]byte(`\"([^\\\"]|\\.)*`), makeToken("UNTERMINATED"))
		lexer.Add([]byte(`\-?[0-9]+`), makeToken("INT"))
		lexer.Add([]byte("[^ \t\n\r,\\[\\]\\(\\)\\{\\}'\"`~\\^@;]+"), makeToken("ID"))
	}
	return lexmach.NewLMAdapter(init, literals, tokenIds)
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}
