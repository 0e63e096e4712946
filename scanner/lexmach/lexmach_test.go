package lexmach

import (
	"testing"

	"github.com/npillmayer/gomal/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"(+ 1 12)",
	"hello ; commented",
	`x "my string"`,
	"1,22,333",
	"~@(a)",
}

var tokenCounts = []int{1, 5, 1, 2, 3, 4}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`;[^\n]*`), Skip)
		lexer.Add([]byte(`"[^"]*"`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`[0-9]+`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`([a-z]|[A-Z]|\+|\-)+`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`( |,|\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[0-9]+`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |,|\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner("  123 (")
	tok := sc.NextToken()
	if tok.Span().From() != 2 || tok.Span().To() != 5 {
		t.Errorf("expected span (2…5) for '123', have %v", tok.Span())
	}
	tok = sc.NextToken()
	if tok.TokType() != '(' {
		t.Errorf("expected literal '(', have %d", tok.TokType())
	}
}

var literals []string       // The tokens representing literal strings
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{"(", ")", "[", "]", "'", "~@", "~"}
	tokenIds = make(map[string]int)
	tokenIds["ID"] = scanner.Ident
	tokenIds["NUM"] = scanner.Int
	tokenIds["STRING"] = scanner.String
	tokenIds["~@"] = scanner.Splice
	for _, lit := range literals {
		if len(lit) == 1 {
			tokenIds[lit] = int(lit[0])
		}
	}
}
