package earley

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/brycefield/earley/chart"
	"github.com/brycefield/earley/grammar"
)

// tracer traces with key 'earley', following the per-package tracer()
// convention gorgo's lr/earley package uses (it selects "gorgo.lr").
func tracer() tracing.Trace {
	return tracing.Select("earley")
}

// recognize runs the Earley fixed-point loop over g and symbols,
// returning the completed chart together with the witness items —
// completed start-production items at the final position with origin
// 0 — if any. The boolean result is true iff symbols is in the
// language of g.
//
// This is a straightforward generalization of gorgo's
// Parser.innerLoop/scan/predict/complete (lr/earley/earley.go): the
// item/chart/terminal-matching machinery is replaced wholesale (string
// terminals and string-keyed nonterminals instead of integer-valued
// scanner tokens and a pre-analyzed LR grammar), but the shape — a
// growing work-queue pass per chart position, applying the three rules
// to each item as it is discovered — is unchanged; here the pass over
// S[k] is repeated until it adds no new item. Rule order here is
// Predict, Scan, Complete rather than gorgo's Scan, Predict, Complete;
// the fixed point reached is identical either way, but only this order
// gives the ordering guarantees needed for deterministic forest
// enumeration.
func recognize(g *grammar.Grammar, symbols []string) (*chart.Chart, []chart.Item, bool) {
	n := len(symbols)
	ch := chart.New(n + 1)
	start := g.Start()
	for _, alt := range start.Alternatives {
		ch.At(0).Add(chart.NewItem(start.LHS, alt, 0))
	}
	for k := 0; k < ch.Len(); k++ {
		S := ch.At(k)
		// Repeat whole passes over S[k] until one adds nothing: a nullable
		// completion at k can advance items added to S[k] after it ran.
		for before := -1; before != S.Len(); {
			before = S.Len()
			for i := 0; i < S.Len(); i++ {
				it := S.Items()[i]
				predict(g, S, it, k)
				if k+1 < ch.Len() {
					scan(ch.At(k+1), it, symbols, k)
				}
				complete(ch, S, it, k)
			}
		}
		ch.Dump(k)
	}
	witnesses := acceptingItems(ch, start, n)
	return ch, witnesses, len(witnesses) > 0
}

// predict implements the Predict rule: for an item with a Nonterminal
// Y after the dot, add Y's own start items to S[k].
func predict(g *grammar.Grammar, S *chart.Set, it chart.Item, k int) {
	next, ok := it.NextTerm()
	if !ok || !next.IsNonterminal() {
		return
	}
	for _, alt := range g.Alternatives(next.Payload) {
		S.Add(chart.NewItem(next, alt, k))
	}
}

// scan implements the Scan rule: if the Terminal after the dot matches
// the symbol at position k, advance the item into S[k+1].
func scan(S1 *chart.Set, it chart.Item, symbols []string, k int) {
	next, ok := it.NextTerm()
	if !ok || !next.IsTerminal() {
		return
	}
	if k < len(symbols) && symbols[k] == next.Payload {
		S1.Add(it.Advance())
	}
}

// complete implements the Complete rule: for a completed item
// (Y → γ •, j), advance every item in S[j] expecting Y into S[k].
func complete(ch *chart.Chart, S *chart.Set, it chart.Item, k int) {
	if !it.Completed() {
		return
	}
	Sj := ch.At(it.Origin)
	for _, jtem := range Sj.Items() {
		next, ok := jtem.NextTerm()
		if !ok || next != it.LHS {
			continue
		}
		S.Add(jtem.Advance())
	}
}

// acceptingItems returns the subset of S[n] that witness acceptance: a
// completed item with origin 0 whose (LHS, RHS) is one of the start
// production's alternatives.
func acceptingItems(ch *chart.Chart, start *grammar.Production, n int) []chart.Item {
	var witnesses []chart.Item
	for _, it := range ch.At(n).Items() {
		if !it.Completed() || it.Origin != 0 || it.LHS != start.LHS {
			continue
		}
		for _, alt := range start.Alternatives {
			if it.RHS.Equal(alt) {
				witnesses = append(witnesses, it)
				break
			}
		}
	}
	return witnesses
}
