package grammar

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// bnfTok is a lexical category for the small BNF reader below, built
// the way gorgo wraps lexmachine for its own scanners
// (lr/scanner/lexmachine.go's LMAdapter).
type bnfTok int

const (
	tokNonterm bnfTok = iota
	tokTerm
	tokDefine
	tokPipe
	tokSemi
	tokNewline
	tokEOF
)

type bnfToken struct {
	kind   bnfTok
	lexeme string
}

// bnfLexer tokenizes BNF grammar source text: `<Name>` nonterminals,
// single- or double-quoted terminal literals, `::=`, `|`, alternative
// separators, `;`/newline production separators.
type bnfLexer struct {
	lexer *lexmachine.Lexer
}

func newBNFLexer() (*bnfLexer, error) {
	lx := lexmachine.NewLexer()
	add := func(pattern string, kind bnfTok) {
		lx.Add([]byte(pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return bnfToken{kind: kind, lexeme: string(m.Bytes)}, nil
		})
	}
	add(`::=`, tokDefine)
	add(`<[^>]*>`, tokNonterm)
	add(`"[^"]*"`, tokTerm)
	add(`'[^']*'`, tokTerm)
	add(`\|`, tokPipe)
	add(`;`, tokSemi)
	add(`(\n)|(\r\n)`, tokNewline)
	lx.Add([]byte(`( |\t|\r)`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return nil, nil // skip whitespace
	})
	if err := lx.Compile(); err != nil {
		return nil, fmt.Errorf("compiling BNF lexer: %w", err)
	}
	return &bnfLexer{lexer: lx}, nil
}

// tokenize runs the lexer over src and returns every token it produces.
func (bl *bnfLexer) tokenize(src string) ([]bnfToken, error) {
	scanner, err := bl.lexer.Scanner([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("scanning grammar text: %w", err)
	}
	var toks []bnfToken
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, fmt.Errorf("unrecognized grammar text at %q", string(ui.Text))
			}
			return nil, fmt.Errorf("scanning grammar text: %w", err)
		}
		if tok == nil {
			continue
		}
		toks = append(toks, tok.(bnfToken))
	}
	toks = append(toks, bnfToken{kind: tokEOF})
	return toks, nil
}
