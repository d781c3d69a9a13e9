/*
Package forest reconstructs every distinct parse tree for an accepted
Earley chart: the completed-by-start view and the recursive forest
builder that walks it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package forest

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/brycefield/earley/chart"
	"github.com/brycefield/earley/grammar"
)

// tracer traces with key 'earley.forest'.
func tracer() tracing.Trace {
	return tracing.Select("earley.forest")
}

// Completed is a completed item viewed from its start: the production
// it completes and the chart position it completed at. It plays the
// role of a backlink entry (gorgo's lr/earley/parsetree.go builds an
// equivalent view on the fly while walking backwards); here the view
// is built once, up front, indexed by start position.
type Completed struct {
	LHS grammar.Term
	RHS grammar.Expression
	End int
}

// Equal reports whether c and other are the same completed production
// over the same span — used to exclude a root item from recursing
// into itself at the same span.
func (c Completed) Equal(other Completed) bool {
	return c.LHS == other.LHS && c.RHS.Equal(other.RHS) && c.End == other.End
}

// View is the completed-by-start view: View[j] holds, in chart
// insertion order, every completed item whose origin is j.
type View [][]Completed

// NewView derives the completed-by-start view from a chart in one
// pass: for each position k, each completed item is filed under its
// origin, preserving insertion order (earlier k first, then insertion
// order within k).
func NewView(ch *chart.Chart) View {
	view := make(View, ch.Len())
	for k := 0; k < ch.Len(); k++ {
		for _, it := range ch.At(k).Items() {
			if !it.Completed() {
				continue
			}
			j := it.Origin
			view[j] = append(view[j], Completed{LHS: it.LHS, RHS: it.RHS, End: k})
		}
	}
	return view
}
