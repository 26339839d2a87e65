// Package process folds resolved walks into annotated steps. Concrete
// tokens become steps; modifier and annotation tokens attach to the step
// most recently produced.
package process

import (
	"fmt"
	"strings"

	"github.com/gateflow-xyz/go-gateflow/token"
)

// Term is one modifier attached to a step: its text plus the structured
// portion when the modifier carried one.
type Term struct {
	Text    string
	Portion token.Portion
}

func (m Term) String() string {
	if m.Portion.IsNone() {
		return m.Text
	}
	return m.Portion.String() + " " + m.Text
}

// Step is one concrete unit of work: a kind, its phrase, its portion, and
// the modifiers and annotations folded onto it.
type Step struct {
	Kind    token.Kind
	Text    string
	Portion token.Portion
	Mods    []Term
	Anns    []string
}

// Modifiable reports whether a step of this kind takes modifiers.
// Modifiers describe things, so only ingredients accept them.
func Modifiable(k token.Kind) bool {
	return k == token.Ingredient
}

// Annotatable reports whether a step of this kind takes annotations.
// Every concrete kind does.
func Annotatable(k token.Kind) bool {
	switch k {
	case token.Ingredient, token.Action, token.Combination:
		return true
	}
	return false
}

// Modify attaches a modifier to the step.
func (s *Step) Modify(m Term) error {
	if !Modifiable(s.Kind) {
		return fmt.Errorf("%w: %v step %q", ErrNotModifiable, s.Kind, s.Text)
	}
	s.Mods = append(s.Mods, m)
	return nil
}

// Annotate attaches an annotation to the step.
func (s *Step) Annotate(text string) error {
	if !Annotatable(s.Kind) {
		return fmt.Errorf("%w: %v step %q", ErrNotAnnotatable, s.Kind, s.Text)
	}
	s.Anns = append(s.Anns, text)
	return nil
}

// String renders the step in grammar form with its modifiers and
// annotations inline: "*1/2 butter, unsalted; cold".
func (s Step) String() string {
	var b strings.Builder
	b.WriteByte(s.Kind.Sigil())
	if !s.Portion.IsNone() {
		b.WriteString(s.Portion.String())
		b.WriteByte(' ')
	}
	b.WriteString(s.Text)
	for _, m := range s.Mods {
		b.WriteString(", ")
		b.WriteString(m.String())
	}
	for _, a := range s.Anns {
		b.WriteString("; ")
		b.WriteString(a)
	}
	return b.String()
}

// Fold walks the token sequence left to right, turning concrete tokens
// into steps and attaching each modifier or annotation to the most recent
// step. A meta token with no step before it is an error.
func Fold(tokens []token.Token) ([]Step, error) {
	var steps []Step
	for _, tok := range tokens {
		switch tok.Kind {
		case token.Modifier:
			if len(steps) == 0 {
				return nil, fmt.Errorf("%w: modifier %q", ErrNoTarget, tok.Text)
			}
			if err := steps[len(steps)-1].Modify(Term{Text: tok.Text, Portion: tok.Portion}); err != nil {
				return nil, err
			}
		case token.Annotation:
			if len(steps) == 0 {
				return nil, fmt.Errorf("%w: annotation %q", ErrNoTarget, tok.Text)
			}
			if err := steps[len(steps)-1].Annotate(tok.Text); err != nil {
				return nil, err
			}
		default:
			steps = append(steps, Step{Kind: tok.Kind, Text: tok.Text, Portion: tok.Portion})
		}
	}
	return steps, nil
}
