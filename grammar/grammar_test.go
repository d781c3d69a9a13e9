package grammar

import "testing"

func TestParseSimpleGrammar(t *testing.T) {
	g, err := Parse(`<S> ::= "a" <S> | "a"`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if g.Len() != 1 {
		t.Fatalf("expected 1 production, got %d", g.Len())
	}
	start := g.Start()
	if start.LHS != Nonterminal("S") {
		t.Fatalf("expected start lhs S, got %v", start.LHS)
	}
	if len(start.Alternatives) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(start.Alternatives))
	}
	want0 := Expression{Terminal("a"), Nonterminal("S")}
	if !start.Alternatives[0].Equal(want0) {
		t.Fatalf("unexpected first alternative: %v", start.Alternatives[0])
	}
	want1 := Expression{Terminal("a")}
	if !start.Alternatives[1].Equal(want1) {
		t.Fatalf("unexpected second alternative: %v", start.Alternatives[1])
	}
}

func TestParseMergesRepeatedLHS(t *testing.T) {
	g, err := Parse("<S> ::= \"a\"\n<S> ::= \"b\"")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if g.Len() != 1 {
		t.Fatalf("expected productions with the same lhs to merge, got %d productions", g.Len())
	}
	alts := g.Alternatives("S")
	if len(alts) != 2 {
		t.Fatalf("expected 2 merged alternatives, got %d", len(alts))
	}
}

func TestParseSemicolonSeparatesProductions(t *testing.T) {
	g, err := Parse(`<P> ::= <S>; <S> ::= "1" | "2"`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if g.Len() != 2 {
		t.Fatalf("expected 2 productions, got %d", g.Len())
	}
	if g.Start().LHS != Nonterminal("P") {
		t.Fatalf("expected start production P (first in textual order), got %v", g.Start().LHS)
	}
	if !g.HasProduction("S") {
		t.Fatalf("expected grammar to know about S")
	}
}

func TestParseSingleQuotedTerminals(t *testing.T) {
	g, err := Parse(`<T> ::= 'x' | 'y'`)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	alts := g.Alternatives("T")
	if len(alts) != 2 || !alts[0].Equal(Expression{Terminal("x")}) {
		t.Fatalf("unexpected alternatives: %v", alts)
	}
}

func TestParseRejectsEmptyGrammar(t *testing.T) {
	if _, err := Parse("   \n  \n"); err == nil {
		t.Fatalf("expected an error for a grammar with no productions")
	}
}

func TestParseRejectsMalformedGrammar(t *testing.T) {
	if _, err := Parse(`<S> "a"`); err == nil {
		t.Fatalf("expected an error for a grammar missing ::=")
	}
}

func TestTermEquality(t *testing.T) {
	if Terminal("a") == Nonterminal("a") {
		t.Fatalf("a terminal and nonterminal with the same payload must not be equal")
	}
	if Terminal("a") != Terminal("a") {
		t.Fatalf("two terminals with the same payload must be equal")
	}
}
