package forest

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/gconf"

	"github.com/brycefield/earley/chart"
	"github.com/brycefield/earley/grammar"
)

// ErrEmptyView is returned by Build when the accepted chart produced
// an empty completed view: an internal invariant violation that a
// correct recognizer never triggers.
var ErrEmptyView = fmt.Errorf("forest: completed view has no start-position entries")

// stuck reports an internal inconsistency that a correct recognizer
// should never produce, following gorgo's own stuck() helper
// (lr/earley/parsetree.go): log it, and additionally panic if the
// operator has opted into panic-on-parser-stuck, so a post-mortem can
// inspect the chart that triggered it.
func stuck(msg string) {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-parser-stuck") {
		panic(`earley: forest builder is stuck.

Configuration flag panic-on-parser-stuck is set to true. It is aimed at
helping to debug a parser and do a post-mortem of why it got stuck. However,
if this is a production environment and you did not expect this to panic,
please unset panic-on-parser-stuck to its default (false).

` + msg)
	}
}

// Build reconstructs every distinct derivation tree rooted at one of
// witnesses, the completed start-production items from an Accepted
// outcome. Trees are returned in the order their witnesses appear in
// S[n], then in first-occurrence order among the combinations produced
// for each witness; structurally identical trees are reported once.
func Build(ch *chart.Chart, witnesses []chart.Item, symbols []string) ([]Tree, error) {
	view := NewView(ch)
	if len(view) == 0 {
		stuck("completed view has no start-position entries; accepted chart is inconsistent")
		return nil, ErrEmptyView
	}
	var trees []Tree
	for _, w := range witnesses {
		root := Completed{LHS: w.LHS, RHS: w.RHS, End: len(symbols)}
		for _, t := range buildItem(0, root, view, symbols) {
			trees = appendUnique(trees, t)
		}
	}
	return trees, nil
}

// buildItem enumerates every Tree rooted at item, a completed
// production spanning [start, item.End): the core recursion
// build(startIndex, rootItem), generalized to return every valid
// derivation instead of merging ambiguous candidates into one tree's
// branches (a single-tree-with-merged-branches shortcut would violate
// "exactly N distinct trees" for genuinely ambiguous grammars — see
// DESIGN.md).
func buildItem(start int, item Completed, view View, symbols []string) []Tree {
	candidates := expandTerms(start, item.RHS, item, view, symbols)
	var trees []Tree
	for _, c := range candidates {
		if c.pos != item.End {
			continue // only completions that reach the item's own known end are valid
		}
		branches := reorderBranches(c.branches, item.RHS)
		trees = appendUnique(trees, Tree{LHS: item.LHS, RHS: item.RHS, Branches: branches})
	}
	return trees
}

// partial is one in-progress way of consuming a prefix of an item's
// RHS, starting from some position: the branches realized so far and
// the input position reached after them.
type partial struct {
	branches []Branch
	pos      int
}

// expandTerms enumerates every way of consuming terms starting at pos,
// honoring the positional limit computed from each term's successor
// and excluding root from its own completions at the same span (the
// self-recursion guard).
func expandTerms(pos int, terms grammar.Expression, root Completed, view View, symbols []string) []partial {
	if len(terms) == 0 {
		return []partial{{pos: pos}}
	}
	T := terms[0]
	rest := terms[1:]
	limit := limitFor(rest, len(symbols), len(view))

	var results []partial
	if T.IsTerminal() {
		if pos < len(symbols) && symbols[pos] == T.Payload {
			for _, tail := range expandTerms(pos+1, rest, root, view, symbols) {
				results = append(results, prepend(TerminalBranch(T.Payload), tail))
			}
		}
		return results
	}
	if pos >= len(view) {
		return nil
	}
	for _, c := range view[pos] {
		if c.LHS != T || c.End >= limit || c.Equal(root) {
			continue
		}
		for _, subtree := range buildItem(pos, c, view, symbols) {
			for _, tail := range expandTerms(c.End, rest, root, view, symbols) {
				results = append(results, prepend(NonterminalBranch(subtree), tail))
			}
		}
	}
	return results
}

// limitFor computes the positional bound L for the term preceding
// rest: a Terminal successor bounds by input length, a Nonterminal
// successor bounds by chart length, and no successor leaves the span
// unbounded (a last term may legitimately end at the input's end).
func limitFor(rest grammar.Expression, numSymbols, viewLen int) int {
	if len(rest) > 0 && rest[0].IsTerminal() {
		return numSymbols
	}
	return viewLen
}

func prepend(b Branch, tail partial) partial {
	branches := make([]Branch, 0, len(tail.branches)+1)
	branches = append(branches, b)
	branches = append(branches, tail.branches...)
	return partial{branches: branches, pos: tail.pos}
}

// reorderBranches re-orders branches so the i-th branch's governing
// term matches rhs[i]. Our builder already produces branches in RHS
// order since each recursive step consumes exactly one RHS term in
// sequence, so this is a defensive no-op in practice — kept because
// the guarantee is worth making explicit rather than assumed.
func reorderBranches(branches []Branch, rhs grammar.Expression) []Branch {
	if len(branches) != len(rhs) {
		return branches
	}
	ordered := make([]Branch, len(rhs))
	used := make([]bool, len(branches))
	for i, term := range rhs {
		for j, b := range branches {
			if used[j] || b.governingTerm() != term {
				continue
			}
			ordered[i] = b
			used[j] = true
			break
		}
	}
	for _, ok := range used {
		if !ok {
			return branches // couldn't match cleanly; leave as built
		}
	}
	return ordered
}

// treeKey computes a structural dedup key for a Tree, following the
// same structhash-based pattern gorgo's lr/earley/earley.go hash
// helper uses for item/state dedup keys — flattened to a canonical
// string first, since Tree's branches hold pointers that a naive
// structural hash would need to special-case anyway.
func treeKey(t Tree) string {
	key, err := structhash.Hash(struct{ Canonical string }{canonicalString(t)}, 1)
	if err != nil {
		panic(fmt.Sprintf("forest: could not hash tree %v: %v", t, err))
	}
	return key
}

func canonicalString(t Tree) string {
	s := t.LHS.String() + "=>"
	for _, b := range t.Branches {
		if b.Kind == BranchTerminal {
			s += "T(" + b.Terminal + ")"
		} else {
			s += "N(" + canonicalString(*b.Child) + ")"
		}
	}
	return s
}

// appendUnique appends t to trees unless a structurally identical tree
// is already present, preserving first-occurrence order.
func appendUnique(trees []Tree, t Tree) []Tree {
	key := treeKey(t)
	for _, existing := range trees {
		if treeKey(existing) == key {
			return trees
		}
	}
	return append(trees, t)
}
