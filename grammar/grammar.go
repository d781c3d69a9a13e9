package grammar

// Production is a nonterminal together with its alternatives (the
// right-hand sides it may expand to). Alternatives are kept in
// textual order, matching how they appeared in the grammar source.
type Production struct {
	LHS          Term
	Alternatives []Expression
}

// Grammar is an ordered, immutable sequence of Productions. The first
// Production is the start production: its first alternative is the
// start expression family.
//
// Multiple textual productions sharing the same LHS are folded into
// additional alternatives of a single Production, preserving the
// order in which they were first seen and in which their alternatives
// appeared.
type Grammar struct {
	productions []*Production
	byLHS       map[string]*Production
}

// New builds a Grammar from productions already merged by LHS name, in
// the order their LHS symbols were first introduced.
func New(productions []*Production) *Grammar {
	g := &Grammar{
		productions: productions,
		byLHS:       make(map[string]*Production, len(productions)),
	}
	for _, p := range productions {
		g.byLHS[p.LHS.Payload] = p
	}
	return g
}

// Productions returns all productions in textual order.
func (g *Grammar) Productions() []*Production {
	return g.productions
}

// Start returns the start production, i.e. the first production of the
// grammar. It panics if the grammar is empty; callers (the BNF reader)
// must reject empty grammars before constructing one.
func (g *Grammar) Start() *Production {
	return g.productions[0]
}

// Len returns the number of distinct nonterminals with productions.
func (g *Grammar) Len() int {
	return len(g.productions)
}

// Alternatives returns the ordered alternatives for the nonterminal
// named name, or nil if name has no production.
func (g *Grammar) Alternatives(name string) []Expression {
	if p, ok := g.byLHS[name]; ok {
		return p.Alternatives
	}
	return nil
}

// HasProduction reports whether name is the LHS of some production.
func (g *Grammar) HasProduction(name string) bool {
	_, ok := g.byLHS[name]
	return ok
}
