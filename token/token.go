// Package token defines the opaque leaf values that procedures are built
// from. The flow core orders and compares tokens but never interprets their
// content; meaning lives in the parser that produces them and the processor
// that folds them.
package token

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind classifies a token by the sigil that introduced it.
type Kind uint8

const (
	// Ingredient is a concrete input to the procedure ("* butter").
	Ingredient Kind = iota
	// Action is an operation on the preceding items ("= saute").
	Action
	// Combination merges prior results ("/ mix").
	Combination
	// Modifier refines the preceding concrete token (", unsalted").
	Modifier
	// Annotation attaches advisory text to the preceding token ("; gently").
	Annotation
)

var kindNames = [...]string{"ingredient", "action", "combination", "modifier", "annotation"}
var kindSigils = [...]byte{'*', '=', '/', ',', ';'}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Sigil returns the grammar character that introduces this kind.
func (k Kind) Sigil() byte {
	return kindSigils[k]
}

// KindForSigil maps a grammar sigil to its token kind.
func KindForSigil(ch byte) (Kind, bool) {
	for k, s := range kindSigils {
		if s == ch {
			return Kind(k), true
		}
	}
	return 0, false
}

// MarshalText encodes the kind as its lowercase name.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("token: unknown kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind from its lowercase name.
func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("token: unknown kind %q", text)
}

// Token is one leaf value of a procedure: a kind, its phrase text, and an
// optional measured portion (ingredients only). Tokens are immutable,
// comparable values; equality and ordering are syntactic.
type Token struct {
	Kind    Kind
	Text    string
	Portion Portion
}

// New creates a token of the given kind.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// Measured creates an ingredient token carrying a portion.
func Measured(text string, p Portion) Token {
	return Token{Kind: Ingredient, Text: text, Portion: p}
}

// Compare orders tokens by kind, then text, then portion.
func (t Token) Compare(o Token) int {
	if t.Kind != o.Kind {
		if t.Kind < o.Kind {
			return -1
		}
		return 1
	}
	if c := strings.Compare(t.Text, o.Text); c != 0 {
		return c
	}
	return t.Portion.Compare(o.Portion)
}

// String renders the token in its grammar form, e.g. "*butter" or
// "*1/2 butter".
func (t Token) String() string {
	var b strings.Builder
	b.WriteByte(t.Kind.Sigil())
	if !t.Portion.IsNone() {
		b.WriteString(t.Portion.String())
		b.WriteByte(' ')
	}
	b.WriteString(t.Text)
	return b.String()
}

type tokenJSON struct {
	Kind    Kind         `json:"kind"`
	Text    string       `json:"text"`
	Portion *portionJSON `json:"portion,omitempty"`
}

// MarshalJSON encodes the token, omitting an absent portion.
func (t Token) MarshalJSON() ([]byte, error) {
	raw := tokenJSON{Kind: t.Kind, Text: t.Text}
	if !t.Portion.IsNone() {
		raw.Portion = &portionJSON{Kind: t.Portion.Kind, Num: t.Portion.Num, Den: t.Portion.Den}
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes a token from its JSON form.
func (t *Token) UnmarshalJSON(data []byte) error {
	var raw tokenJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Token{Kind: raw.Kind, Text: raw.Text}
	if raw.Portion != nil {
		t.Portion = Portion{Kind: raw.Portion.Kind, Num: raw.Portion.Num, Den: raw.Portion.Den}
	}
	return nil
}
