package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gateflow-xyz/go-gateflow/flow"
	"github.com/gateflow-xyz/go-gateflow/gate"
	"github.com/gateflow-xyz/go-gateflow/token"
)

// Parse reads sigil grammar text and returns the normalized flow.
//
// Token lines are a sigil followed by a phrase on the same line. Ingredient
// lines may carry a leading portion: "* 1/2 butter". Splits are bracketed,
// alternatives separated by |, each alternative optionally headed by a gate
// marker: "[#0 *eggs | #!0 *tofu]". % starts a comment to end of line.
// Split sets are normalized bottom-up during the parse, and every nested
// gate must keep at least one live slot under its enclosing gates.
func Parse(src string) (*flow.Flow, error) {
	p := &parser{toks: Tokenize(src), scope: gate.NewScopeTracker()}
	return p.parseItems(false)
}

type parser struct {
	toks  []Token
	pos   int
	scope *gate.ScopeTracker
}

func (p *parser) cur() Token {
	return p.toks[p.pos]
}

func (p *parser) next() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

// parseItems reads items until end of input or, inside a split, until the
// | or ] that ends the current alternative.
func (p *parser) parseItems(inSplit bool) (*flow.Flow, error) {
	var items []flow.Item
	for {
		tok := p.cur()
		switch tok.Type {
		case TokenEOF:
			if inSplit {
				return nil, fmt.Errorf("%w: split never closed", ErrUnbalancedSplit)
			}
			return flow.New(items...), nil
		case TokenSigil:
			t, err := p.parseLine()
			if err != nil {
				return nil, err
			}
			items = append(items, flow.Tok(t))
		case TokenLBracket:
			item, err := p.parseSplit()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		case TokenAlt:
			if !inSplit {
				return nil, fmt.Errorf("%w: | at line %d", ErrBareAlternative, tok.Line)
			}
			return flow.New(items...), nil
		case TokenRBracket:
			if !inSplit {
				return nil, fmt.Errorf("%w: ] at line %d", ErrUnbalancedSplit, tok.Line)
			}
			return flow.New(items...), nil
		case TokenGate:
			return nil, fmt.Errorf("%w: #%s at line %d is not at the head of an alternative", ErrBadGate, tok.Literal, tok.Line)
		case TokenNumber:
			return nil, fmt.Errorf("%w: %q at line %d is not on an ingredient line", ErrBadPortion, tok.Literal, tok.Line)
		case TokenPhrase:
			return nil, fmt.Errorf("%w: %q at line %d has no leading sigil", ErrUnknownSigil, tok.Literal, tok.Line)
		default:
			return nil, fmt.Errorf("%w: %q at line %d", ErrUnknownSigil, tok.Literal, tok.Line)
		}
	}
}

// parseLine reads one sigil line: the sigil, an optional portion on
// ingredient lines, and the phrase.
func (p *parser) parseLine() (token.Token, error) {
	sig := p.cur()
	kind, _ := token.KindForSigil(sig.Literal[0])
	p.next()

	var portion token.Portion
	if kind == token.Ingredient && p.cur().Type == TokenNumber && p.cur().Line == sig.Line {
		parsed, err := ParsePortion(p.cur().Literal)
		if err != nil {
			return token.Token{}, fmt.Errorf("%w: %q at line %d: %v", ErrBadPortion, p.cur().Literal, p.cur().Line, err)
		}
		portion = parsed
		p.next()
	}

	phrase := p.cur()
	if phrase.Type != TokenPhrase || phrase.Line != sig.Line {
		return token.Token{}, fmt.Errorf("%w: %s at line %d", ErrEmptyPhrase, sig.Literal, sig.Line)
	}
	p.next()

	t := token.New(kind, phrase.Literal)
	t.Portion = portion
	return t, nil
}

// parseSplit reads a bracketed split and normalizes its alternatives.
func (p *parser) parseSplit() (flow.Item, error) {
	p.next() // consume [

	var splits []flow.Split
	for {
		sp, err := p.parseAlternative()
		if err != nil {
			return nil, err
		}
		splits = append(splits, sp)

		// parseItems only stops at |, ], or end of input, and end of
		// input inside a split has already errored.
		if p.cur().Type == TokenAlt {
			p.next()
			continue
		}
		p.next() // consume ]
		return flow.SplitItem{Splits: flow.NewSplitSet(splits...)}, nil
	}
}

// parseAlternative reads one alternative: an optional gate marker, then
// items. The gate is checked for live slots under the enclosing gates.
func (p *parser) parseAlternative() (flow.Split, error) {
	g := gate.AllowAll()
	line := p.cur().Line
	if tok := p.cur(); tok.Type == TokenGate {
		parsed, err := parseGate(tok.Literal, tok.Line)
		if err != nil {
			return flow.Split{}, err
		}
		g = parsed
		p.next()
	}

	if err := p.scope.Begin(g); err != nil {
		return flow.Split{}, fmt.Errorf("%w at line %d: %v", ErrDeadBranch, line, err)
	}
	f, err := p.parseItems(true)
	if err != nil {
		return flow.Split{}, err
	}
	if err := p.scope.Close(); err != nil {
		return flow.Split{}, err
	}
	return flow.NewSplit(f, g), nil
}

// parseGate reads a gate marker body: optional ! for a block gate, then
// comma-separated slot numbers.
func parseGate(body string, line int) (gate.Gate, error) {
	block := strings.HasPrefix(body, "!")
	if block {
		body = body[1:]
	}
	if body == "" {
		return gate.Gate{}, fmt.Errorf("%w: empty gate marker at line %d", ErrBadGate, line)
	}

	var slots []gate.Slot
	for _, part := range strings.Split(body, ",") {
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return gate.Gate{}, fmt.Errorf("%w: slot %q at line %d", ErrBadGate, part, line)
		}
		slots = append(slots, gate.Slot(n))
	}
	if block {
		return gate.Block(slots...), nil
	}
	return gate.Allow(slots...), nil
}
