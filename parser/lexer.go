// Package parser reads the sigil grammar for procedures and builds
// normalized flows from it.
package parser

import (
	"fmt"
)

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TokenEOF      TokenType = iota
	TokenSigil              // *, =, /, "," or ;
	TokenPhrase             // whitespace-separated words
	TokenNumber             // 2, 0.5, 1/2 (portion position only)
	TokenLBracket           // [
	TokenRBracket           // ]
	TokenAlt                // |
	TokenGate               // #0,2 or #!1 (literal without #)
	TokenIllegal            // anything else
)

// Token represents a single token from the lexer.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%v, %q, line %d}", t.Type, t.Literal, t.Line)
}

// Lexer tokenizes sigil grammar input.
type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
	line    int

	// portionOK is set after an ingredient sigil: only there does a
	// digit-leading atom lex as a number instead of a phrase word.
	portionOK bool
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipComment() {
	// Skip from % to end of line
	for l.ch != 0 && l.ch != '\n' {
		l.readChar()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		if l.ch == '%' {
			l.skipComment()
			continue
		}
		break
	}

	line := l.line
	var tok Token

	switch l.ch {
	case 0:
		tok = Token{Type: TokenEOF, Literal: "", Line: line}
	case '[':
		tok = Token{Type: TokenLBracket, Literal: "[", Line: line}
		l.readChar()
	case ']':
		tok = Token{Type: TokenRBracket, Literal: "]", Line: line}
		l.readChar()
	case '|':
		tok = Token{Type: TokenAlt, Literal: "|", Line: line}
		l.readChar()
	case '#':
		l.readChar()
		tok = Token{Type: TokenGate, Literal: l.readGate(), Line: line}
	case '*', '=', '/', ',', ';':
		tok = Token{Type: TokenSigil, Literal: string(l.ch), Line: line}
		l.readChar()
	default:
		if l.portionOK && isDigit(l.ch) && l.numberAhead() {
			num := l.readNumber()
			tok = Token{Type: TokenNumber, Literal: num, Line: line}
		} else if isWordChar(l.ch) {
			tok = Token{Type: TokenPhrase, Literal: l.readPhrase(), Line: line}
		} else {
			tok = Token{Type: TokenIllegal, Literal: string(l.ch), Line: line}
			l.readChar()
		}
	}

	l.portionOK = tok.Type == TokenSigil && tok.Literal == "*"
	return tok
}

// numberAhead reports whether the upcoming digit-leading atom is a whole
// number token. "2nd" runs straight into letters and reads as a phrase.
func (l *Lexer) numberAhead() bool {
	i := l.pos
	for i < len(l.input) && isNumberChar(l.input[i]) {
		i++
	}
	return i >= len(l.input) || !isWordChar(l.input[i])
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isNumberChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readPhrase reads words separated by single spaces or tabs, preserving
// the inner spacing. The phrase ends at a newline, a structural character,
// or end of input; trailing spaces are dropped.
func (l *Lexer) readPhrase() string {
	start := l.pos
	end := l.pos
	for {
		if isWordChar(l.ch) {
			l.readChar()
			end = l.pos
			continue
		}
		if l.ch == ' ' || l.ch == '\t' {
			l.readChar()
			continue
		}
		break
	}
	return l.input[start:end]
}

// readGate reads the gate marker body after #.
func (l *Lexer) readGate() string {
	start := l.pos
	for isDigit(l.ch) || l.ch == '!' || l.ch == ',' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// isWordChar covers ASCII letters and digits plus every byte of a
// multi-byte UTF-8 sequence, so non-ASCII text stays inside words.
func isWordChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || isDigit(ch) || ch >= 0x80
}

func isNumberChar(ch byte) bool {
	return isDigit(ch) || ch == '.' || ch == '/'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return tokens
}
