package parser

import (
	"testing"
)

func TestLexer_BasicTokens(t *testing.T) {
	input := `* butter
= melt
[#0 * eggs | #!0 * tofu]`
	tokens := Tokenize(input)

	expected := []struct {
		typ TokenType
		lit string
	}{
		{TokenSigil, "*"},
		{TokenPhrase, "butter"},
		{TokenSigil, "="},
		{TokenPhrase, "melt"},
		{TokenLBracket, "["},
		{TokenGate, "0"},
		{TokenSigil, "*"},
		{TokenPhrase, "eggs"},
		{TokenAlt, "|"},
		{TokenGate, "!0"},
		{TokenSigil, "*"},
		{TokenPhrase, "tofu"},
		{TokenRBracket, "]"},
		{TokenEOF, ""},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}

	for i, e := range expected {
		if tokens[i].Type != e.typ {
			t.Errorf("token %d: expected type %v, got %v", i, e.typ, tokens[i].Type)
		}
		if tokens[i].Literal != e.lit {
			t.Errorf("token %d: expected literal %q, got %q", i, e.lit, tokens[i].Literal)
		}
	}
}

func TestLexer_PhraseSpacing(t *testing.T) {
	tokens := Tokenize("= saute  until   golden ")

	if tokens[1].Type != TokenPhrase {
		t.Fatalf("expected phrase, got %v", tokens[1])
	}
	if tokens[1].Literal != "saute  until   golden" {
		t.Errorf("expected inner spacing preserved, got %q", tokens[1].Literal)
	}
}

func TestLexer_PhraseStopsAtStructure(t *testing.T) {
	tokens := Tokenize("* eggs =fry")

	expected := []struct {
		typ TokenType
		lit string
	}{
		{TokenSigil, "*"},
		{TokenPhrase, "eggs"},
		{TokenSigil, "="},
		{TokenPhrase, "fry"},
		{TokenEOF, ""},
	}
	for i, e := range expected {
		if tokens[i].Type != e.typ || tokens[i].Literal != e.lit {
			t.Errorf("token %d: expected {%v %q}, got %v", i, e.typ, e.lit, tokens[i])
		}
	}
}

func TestLexer_PhraseEndsAtNewline(t *testing.T) {
	tokens := Tokenize("* eggs\ntofu")

	if tokens[1].Literal != "eggs" {
		t.Errorf("expected phrase to stop at the newline, got %q", tokens[1].Literal)
	}
	if tokens[2].Type != TokenPhrase || tokens[2].Literal != "tofu" {
		t.Errorf("expected a separate phrase on line 2, got %v", tokens[2])
	}
	if tokens[2].Line != 2 {
		t.Errorf("expected line 2, got %d", tokens[2].Line)
	}
}

func TestLexer_Portions(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
		lit   string
	}{
		{"* 2 eggs", TokenNumber, "2"},
		{"* 0.5 milk", TokenNumber, "0.5"},
		{"* 1/2 butter", TokenNumber, "1/2"},
		{"* 2nd try", TokenPhrase, "2nd try"},
	}
	for _, tt := range tests {
		tokens := Tokenize(tt.input)
		if tokens[1].Type != tt.typ {
			t.Errorf("%q: expected type %v, got %v", tt.input, tt.typ, tokens[1].Type)
		}
		if tokens[1].Literal != tt.lit {
			t.Errorf("%q: expected literal %q, got %q", tt.input, tt.lit, tokens[1].Literal)
		}
	}
}

func TestLexer_NumberOnlyAfterIngredient(t *testing.T) {
	tokens := Tokenize("= 2 eggs")

	if tokens[1].Type != TokenPhrase {
		t.Errorf("expected a phrase after a non-ingredient sigil, got %v", tokens[1])
	}
	if tokens[1].Literal != "2 eggs" {
		t.Errorf("expected %q, got %q", "2 eggs", tokens[1].Literal)
	}
}

func TestLexer_Comments(t *testing.T) {
	input := `% breakfast for two
* eggs % free range`
	tokens := Tokenize(input)

	if tokens[0].Type != TokenSigil {
		t.Errorf("expected the leading comment to be skipped, got %v", tokens[0])
	}
	if tokens[1].Literal != "eggs" {
		t.Errorf("expected the trailing comment to be dropped, got %q", tokens[1].Literal)
	}
	if tokens[2].Type != TokenEOF {
		t.Errorf("expected EOF after the trailing comment, got %v", tokens[2])
	}
}

func TestLexer_GateMarkers(t *testing.T) {
	tests := []struct {
		input string
		lit   string
	}{
		{"#0", "0"},
		{"#0,2,7", "0,2,7"},
		{"#!1", "!1"},
		{"#", ""},
	}
	for _, tt := range tests {
		tokens := Tokenize(tt.input)
		if tokens[0].Type != TokenGate {
			t.Errorf("%q: expected a gate token, got %v", tt.input, tokens[0])
		}
		if tokens[0].Literal != tt.lit {
			t.Errorf("%q: expected literal %q, got %q", tt.input, tt.lit, tokens[0].Literal)
		}
	}
}

func TestLexer_Illegal(t *testing.T) {
	tokens := Tokenize("* eggs ^")
	if tokens[2].Type != TokenIllegal || tokens[2].Literal != "^" {
		t.Errorf("expected an illegal token for ^, got %v", tokens[2])
	}
}

func TestLexer_LineNumbers(t *testing.T) {
	input := "* butter\n\n= melt\n[ * eggs ]"
	tokens := Tokenize(input)

	lines := []int{1, 1, 3, 3, 4, 4, 4, 4}
	for i, want := range lines {
		if tokens[i].Line != want {
			t.Errorf("token %d (%v): expected line %d, got %d", i, tokens[i], want, tokens[i].Line)
		}
	}
}

func TestLexer_UTF8Phrase(t *testing.T) {
	tokens := Tokenize("* crème fraîche")
	if tokens[1].Type != TokenPhrase || tokens[1].Literal != "crème fraîche" {
		t.Errorf("expected multi-byte words to stay in one phrase, got %v", tokens[1])
	}
}
