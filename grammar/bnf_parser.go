package grammar

import (
	"fmt"
	"strings"
)

// Parse reads BNF grammar text into a Grammar: nonterminals
// written `<Name>`, terminals as single- or double-quoted literals,
// alternatives separated by `|`, productions separated by a newline or
// `;`. Productions sharing an LHS contribute additional alternatives,
// in the order they are encountered.
//
// Parse fails with an error (wrapped by the caller into GrammarError)
// if the text cannot be tokenized, is malformed, or contains no
// productions at all — the latter leaves no start rule to parse with.
func Parse(src string) (*Grammar, error) {
	lx, err := newBNFLexer()
	if err != nil {
		return nil, err
	}
	toks, err := lx.tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &bnfParser{toks: toks}
	order := []string{}
	byLHS := map[string]*Production{}
	for {
		p.skipSeparators()
		if p.at(tokEOF) {
			break
		}
		lhsName, err := p.expectNonterm()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokDefine); err != nil {
			return nil, err
		}
		alts, err := p.parseAlternatives()
		if err != nil {
			return nil, err
		}
		prod, ok := byLHS[lhsName]
		if !ok {
			prod = &Production{LHS: Nonterminal(lhsName)}
			byLHS[lhsName] = prod
			order = append(order, lhsName)
		}
		prod.Alternatives = append(prod.Alternatives, alts...)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("grammar has no productions")
	}
	prods := make([]*Production, len(order))
	for i, name := range order {
		prods[i] = byLHS[name]
	}
	return New(prods), nil
}

type bnfParser struct {
	toks []bnfToken
	pos  int
}

func (p *bnfParser) cur() bnfToken {
	return p.toks[p.pos]
}

func (p *bnfParser) at(k bnfTok) bool {
	return p.cur().kind == k
}

func (p *bnfParser) advance() bnfToken {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *bnfParser) skipSeparators() {
	for p.at(tokNewline) || p.at(tokSemi) {
		p.advance()
	}
}

func (p *bnfParser) expect(k bnfTok) error {
	if !p.at(k) {
		return fmt.Errorf("malformed grammar: unexpected token %q", p.cur().lexeme)
	}
	p.advance()
	return nil
}

func (p *bnfParser) expectNonterm() (string, error) {
	if !p.at(tokNonterm) {
		return "", fmt.Errorf("malformed grammar: expected <Nonterminal>, got %q", p.cur().lexeme)
	}
	t := p.advance()
	return strings.Trim(t.lexeme, "<>"), nil
}

// parseAlternatives parses the right-hand side of a production: zero or
// more space-separated terms per alternative (an empty alternative is a
// nullable rule), alternatives separated by `|`, up to the next
// production separator (newline, `;`) or end of input.
func (p *bnfParser) parseAlternatives() ([]Expression, error) {
	var alts []Expression
	var cur Expression
	for {
		switch {
		case p.at(tokNonterm):
			t := p.advance()
			cur = append(cur, Nonterminal(strings.Trim(t.lexeme, "<>")))
		case p.at(tokTerm):
			t := p.advance()
			cur = append(cur, Terminal(unquote(t.lexeme)))
		case p.at(tokPipe):
			p.advance()
			alts = append(alts, cur)
			cur = nil
		case p.at(tokNewline), p.at(tokSemi), p.at(tokEOF):
			alts = append(alts, cur)
			return alts, nil
		default:
			return nil, fmt.Errorf("malformed grammar: unexpected token %q in rhs", p.cur().lexeme)
		}
	}
}

func unquote(lexeme string) string {
	if len(lexeme) >= 2 {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}
