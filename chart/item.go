/*
Package chart implements the Earley item (dotted production) and the
chart: an ordered sequence of insertion-ordered, deduplicating item
sets, one per input position.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package chart

import (
	"fmt"

	"github.com/cnf/structhash"

	"github.com/brycefield/earley/grammar"
)

// Item is a dotted production: a production's LHS and RHS, a dot
// position marking how much of the RHS has been recognized, and the
// chart index at which recognition of this RHS began (its origin).
// Items are value types; two items are equal iff all four fields are
// equal.
type Item struct {
	LHS    grammar.Term
	RHS    grammar.Expression
	Dot    int
	Origin int
}

// NewItem creates an Item with its dot at the start of rhs.
func NewItem(lhs grammar.Term, rhs grammar.Expression, origin int) Item {
	return Item{LHS: lhs, RHS: rhs, Dot: 0, Origin: origin}
}

// Completed reports whether the dot has reached the end of the RHS.
func (it Item) Completed() bool {
	return it.Dot == len(it.RHS)
}

// NextTerm returns the Term immediately after the dot, or false if the
// item is completed.
func (it Item) NextTerm() (grammar.Term, bool) {
	if it.Completed() {
		return grammar.Term{}, false
	}
	return it.RHS[it.Dot], true
}

// Advance returns a copy of it with the dot moved one position to the
// right. It panics if it is already completed — callers only advance
// items they have already checked via NextTerm.
func (it Item) Advance() Item {
	if it.Completed() {
		panic("chart: cannot advance a completed item")
	}
	it2 := it
	it2.Dot = it.Dot + 1
	return it2
}

func (it Item) String() string {
	s := it.LHS.String() + " ->"
	for i, t := range it.RHS {
		if i == it.Dot {
			s += " •"
		}
		s += " " + t.String()
	}
	if it.Dot == len(it.RHS) {
		s += " •"
	}
	return fmt.Sprintf("%s  (origin %d)", s, it.Origin)
}

// hashKey computes a stable dedup key for it, following the same
// structhash-based pattern gorgo's lr/earley/earley.go hash helper uses
// for backlink lookup keys: an item's identity for set membership is
// exactly its (LHS, RHS, Dot, Origin) tuple.
func (it Item) hashKey() string {
	key, err := structhash.Hash(struct {
		LHS    grammar.Term
		RHS    grammar.Expression
		Dot    int
		Origin int
	}{it.LHS, it.RHS, it.Dot, it.Origin}, 1)
	if err != nil {
		// structhash only fails on unhashable types; Item's fields are
		// all plain value types, so this cannot happen in practice.
		panic(fmt.Sprintf("chart: could not hash item %v: %v", it, err))
	}
	return key
}
