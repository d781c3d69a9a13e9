package chart

import (
	"testing"

	"github.com/brycefield/earley/grammar"
)

func TestSetDeduplicatesByAllFourFields(t *testing.T) {
	s := NewSet(0)
	rhs := grammar.Expression{grammar.Terminal("a"), grammar.Nonterminal("B")}
	it := NewItem(grammar.Nonterminal("A"), rhs, 0)

	if !s.Add(it) {
		t.Fatalf("expected first insertion to report new")
	}
	if s.Add(it) {
		t.Fatalf("expected duplicate insertion to be rejected")
	}
	if s.Len() != 1 {
		t.Fatalf("expected set length 1, got %d", s.Len())
	}

	advanced := it.Advance()
	if !s.Add(advanced) {
		t.Fatalf("expected item with a different dot to be accepted as new")
	}
	if s.Len() != 2 {
		t.Fatalf("expected set length 2, got %d", s.Len())
	}
}

func TestSetPreservesInsertionOrder(t *testing.T) {
	s := NewSet(0)
	a := NewItem(grammar.Nonterminal("A"), grammar.Expression{grammar.Terminal("x")}, 0)
	b := NewItem(grammar.Nonterminal("B"), grammar.Expression{grammar.Terminal("y")}, 0)
	s.Add(b)
	s.Add(a)
	items := s.Items()
	if items[0].LHS != b.LHS || items[1].LHS != a.LHS {
		t.Fatalf("expected insertion order [B, A], got %v", items)
	}
}

func TestItemCompletedAndNextTerm(t *testing.T) {
	rhs := grammar.Expression{grammar.Terminal("a"), grammar.Nonterminal("B")}
	it := NewItem(grammar.Nonterminal("A"), rhs, 0)
	if it.Completed() {
		t.Fatalf("fresh item should not be completed")
	}
	next, ok := it.NextTerm()
	if !ok || next != grammar.Terminal("a") {
		t.Fatalf("expected next term to be terminal a, got %v, %v", next, ok)
	}
	it = it.Advance().Advance()
	if !it.Completed() {
		t.Fatalf("item should be completed after advancing past full rhs")
	}
	if _, ok := it.NextTerm(); ok {
		t.Fatalf("completed item should have no next term")
	}
}
