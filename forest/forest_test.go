package forest

import (
	"encoding/json"
	"testing"

	"github.com/brycefield/earley/chart"
	"github.com/brycefield/earley/grammar"
)

func TestNewViewInvertsByOrigin(t *testing.T) {
	S := grammar.Nonterminal("S")
	rhs := grammar.Expression{grammar.Terminal("a"), grammar.Terminal("b")}

	ch := chart.New(3)
	ch.At(0).Add(chart.NewItem(S, rhs, 0))
	it1 := chart.NewItem(S, rhs, 0).Advance()
	ch.At(1).Add(it1)
	it2 := it1.Advance()
	ch.At(2).Add(it2)

	view := NewView(ch)
	if len(view) != 3 {
		t.Fatalf("expected view of length 3, got %d", len(view))
	}
	if len(view[0]) != 1 {
		t.Fatalf("expected one completed item with origin 0, got %d", len(view[0]))
	}
	got := view[0][0]
	if got.LHS != S || got.End != 2 || !got.RHS.Equal(rhs) {
		t.Fatalf("unexpected completed entry: %+v", got)
	}
}

func TestBuildSimpleConcatenation(t *testing.T) {
	S := grammar.Nonterminal("S")
	rhs := grammar.Expression{grammar.Terminal("a"), grammar.Terminal("b")}
	symbols := []string{"a", "b"}

	ch := chart.New(3)
	ch.At(0).Add(chart.NewItem(S, rhs, 0))
	it1 := chart.NewItem(S, rhs, 0).Advance()
	ch.At(1).Add(it1)
	it2 := it1.Advance()
	ch.At(2).Add(it2)

	trees, err := Build(ch, []chart.Item{it2}, symbols)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected exactly 1 tree, got %d", len(trees))
	}
	tree := trees[0]
	if tree.LHS != S || len(tree.Branches) != 2 {
		t.Fatalf("unexpected tree shape: %+v", tree)
	}
	if tree.Branches[0].Kind != BranchTerminal || tree.Branches[0].Terminal != "a" {
		t.Fatalf("expected first branch to be terminal a, got %+v", tree.Branches[0])
	}
	if tree.Branches[1].Kind != BranchTerminal || tree.Branches[1].Terminal != "b" {
		t.Fatalf("expected second branch to be terminal b, got %+v", tree.Branches[1])
	}
}

// TestBuildNullableRule exercises the nullable-rule edge case:
// S ::= A "a"; A ::= <empty>, over input "a".
func TestBuildNullableRule(t *testing.T) {
	S := grammar.Nonterminal("S")
	A := grammar.Nonterminal("A")
	sRHS := grammar.Expression{A, grammar.Terminal("a")}
	aRHS := grammar.Expression{}
	symbols := []string{"a"}

	ch := chart.New(2)
	S0 := ch.At(0)
	sItem := chart.NewItem(S, sRHS, 0)
	S0.Add(sItem)
	aItem := chart.NewItem(A, aRHS, 0) // dot==0==len(rhs): completed on arrival
	S0.Add(aItem)
	sAfterA := sItem.Advance()
	S0.Add(sAfterA)

	S1 := ch.At(1)
	sCompleted := sAfterA.Advance()
	S1.Add(sCompleted)

	trees, err := Build(ch, []chart.Item{sCompleted}, symbols)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected exactly 1 tree, got %d", len(trees))
	}
	tree := trees[0]
	if len(tree.Branches) != 2 {
		t.Fatalf("expected 2 branches (nullable A, terminal a), got %d", len(tree.Branches))
	}
	if tree.Branches[0].Kind != BranchNonterminal || tree.Branches[0].Child.LHS != A {
		t.Fatalf("expected first branch to be nonterminal A, got %+v", tree.Branches[0])
	}
	if len(tree.Branches[0].Child.Branches) != 0 {
		t.Fatalf("expected A's subtree to have no branches, got %d", len(tree.Branches[0].Child.Branches))
	}
	if tree.Branches[1].Kind != BranchTerminal || tree.Branches[1].Terminal != "a" {
		t.Fatalf("expected second branch to be terminal a, got %+v", tree.Branches[1])
	}
}

// TestBuildAmbiguousYieldsDistinctTrees exercises the no-spurious-
// duplicates / ambiguity-yields-distinct-trees properties on a
// minimal hand-built chart: S ::= A | B; A ::= "a"; B ::= "a".
func TestBuildAmbiguousYieldsDistinctTrees(t *testing.T) {
	S := grammar.Nonterminal("S")
	A := grammar.Nonterminal("A")
	B := grammar.Nonterminal("B")
	symbols := []string{"a"}

	sToA := grammar.Expression{A}
	sToB := grammar.Expression{B}
	aRHS := grammar.Expression{grammar.Terminal("a")}
	bRHS := grammar.Expression{grammar.Terminal("a")}

	ch := chart.New(2)
	S0 := ch.At(0)
	S0.Add(chart.NewItem(S, sToA, 0))
	S0.Add(chart.NewItem(S, sToB, 0))
	S0.Add(chart.NewItem(A, aRHS, 0))
	S0.Add(chart.NewItem(B, bRHS, 0))

	S1 := ch.At(1)
	aCompleted := chart.NewItem(A, aRHS, 0).Advance()
	bCompleted := chart.NewItem(B, bRHS, 0).Advance()
	sViaA := chart.NewItem(S, sToA, 0).Advance()
	sViaB := chart.NewItem(S, sToB, 0).Advance()
	S1.Add(aCompleted)
	S1.Add(bCompleted)
	S1.Add(sViaA)
	S1.Add(sViaB)

	trees, err := Build(ch, []chart.Item{sViaA, sViaB}, symbols)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(trees) != 2 {
		t.Fatalf("expected exactly 2 distinct trees, got %d", len(trees))
	}
	if trees[0].Equal(trees[1]) {
		t.Fatalf("expected the two trees to be structurally distinct")
	}
	lhsSeen := map[grammar.Term]bool{}
	for _, tr := range trees {
		if len(tr.Branches) != 1 || tr.Branches[0].Kind != BranchNonterminal {
			t.Fatalf("unexpected tree shape: %+v", tr)
		}
		lhsSeen[tr.Branches[0].Child.LHS] = true
	}
	if !lhsSeen[A] || !lhsSeen[B] {
		t.Fatalf("expected one tree routed through A and one through B, got %+v", lhsSeen)
	}
}

func TestBuildEmptyViewIsForestError(t *testing.T) {
	ch := chart.New(0)
	_, err := Build(ch, nil, nil)
	if err == nil {
		t.Fatalf("expected an error for an empty completed view")
	}
}

func TestTreeJSONRoundTrip(t *testing.T) {
	tree := Tree{
		LHS: grammar.Nonterminal("S"),
		RHS: grammar.Expression{grammar.Nonterminal("A"), grammar.Terminal("a")},
		Branches: []Branch{
			NonterminalBranch(Tree{LHS: grammar.Nonterminal("A"), RHS: grammar.Expression{}}),
			TerminalBranch("a"),
		},
	}

	data, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var got Tree
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if !got.Equal(tree) {
		t.Fatalf("round-tripped tree differs: got %+v, want %+v", got, tree)
	}
}
