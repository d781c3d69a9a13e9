package forest

import (
	"encoding/json"
	"fmt"

	"github.com/brycefield/earley/grammar"
)

// Tree is one derivation of a production: its LHS/RHS together with
// the Branches that realize each RHS term, in the same order as the
// RHS. Tree equality is structural.
type Tree struct {
	LHS      grammar.Term
	RHS      grammar.Expression
	Branches []Branch
}

// BranchKind distinguishes a Branch's two variants.
type BranchKind int

const (
	// BranchTerminal holds a matched input symbol.
	BranchTerminal BranchKind = iota
	// BranchNonterminal holds a child Tree.
	BranchNonterminal
)

// Branch is either a Terminal (the literal symbol matched) or a
// Nonterminal (a child Tree), mirroring the Term it realizes.
type Branch struct {
	Kind     BranchKind
	Terminal string
	Child    *Tree
}

// TerminalBranch creates a Branch for a matched terminal symbol.
func TerminalBranch(symbol string) Branch {
	return Branch{Kind: BranchTerminal, Terminal: symbol}
}

// NonterminalBranch creates a Branch wrapping a child Tree.
func NonterminalBranch(child Tree) Branch {
	return Branch{Kind: BranchNonterminal, Child: &child}
}

// governingTerm returns the Term a branch realizes: the matched
// terminal's payload, or the child tree's LHS.
func (b Branch) governingTerm() grammar.Term {
	if b.Kind == BranchTerminal {
		return grammar.Terminal(b.Terminal)
	}
	return b.Child.LHS
}

// Equal reports whether two branches are structurally identical.
func (b Branch) Equal(other Branch) bool {
	if b.Kind != other.Kind {
		return false
	}
	if b.Kind == BranchTerminal {
		return b.Terminal == other.Terminal
	}
	return b.Child.Equal(*other.Child)
}

// Equal reports whether two trees are structurally identical —
// same production, same branches in the same order.
func (t Tree) Equal(other Tree) bool {
	if t.LHS != other.LHS || !t.RHS.Equal(other.RHS) {
		return false
	}
	if len(t.Branches) != len(other.Branches) {
		return false
	}
	for i, b := range t.Branches {
		if !b.Equal(other.Branches[i]) {
			return false
		}
	}
	return true
}

func (t Tree) String() string {
	return fmt.Sprintf("%s := %s", t.LHS, t.RHS)
}

// --- JSON -------------------------------------------------------------
//
// A JSON encoding of the forest is useful for interoperability and
// regression testing, so Tree and Branch marshal to a tagged-union
// shape: {"lhs":..., "rhs":[...], "branches":[...]} for a Tree, and
// either {"terminal": "..."} or {"nonterminal": {...}} for a Branch.

type treeJSON struct {
	LHS      grammar.Term    `json:"lhs"`
	RHS      grammar.Expression `json:"rhs"`
	Branches []Branch        `json:"branches"`
}

// MarshalJSON renders a Tree as {"lhs":..., "rhs":[...], "branches":[...]}.
func (t Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(treeJSON{LHS: t.LHS, RHS: t.RHS, Branches: t.Branches})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var tj treeJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return err
	}
	t.LHS, t.RHS, t.Branches = tj.LHS, tj.RHS, tj.Branches
	return nil
}

type branchJSON struct {
	Terminal    *string `json:"terminal,omitempty"`
	Nonterminal *Tree   `json:"nonterminal,omitempty"`
}

// MarshalJSON renders a Branch as the tagged union
// {"terminal": "x"} or {"nonterminal": {...}}.
func (b Branch) MarshalJSON() ([]byte, error) {
	if b.Kind == BranchTerminal {
		return json.Marshal(branchJSON{Terminal: &b.Terminal})
	}
	return json.Marshal(branchJSON{Nonterminal: b.Child})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (b *Branch) UnmarshalJSON(data []byte) error {
	var bj branchJSON
	if err := json.Unmarshal(data, &bj); err != nil {
		return err
	}
	if bj.Terminal != nil {
		b.Kind, b.Terminal, b.Child = BranchTerminal, *bj.Terminal, nil
		return nil
	}
	b.Kind, b.Child = BranchNonterminal, bj.Nonterminal
	return nil
}
