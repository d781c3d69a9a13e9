package chart

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'earley.chart', following the per-package
// tracer() convention gorgo's lr/earley package uses (it selects
// "gorgo.lr"; see lr/earley/earley.go).
func tracer() tracing.Trace {
	return tracing.Select("earley.chart")
}

// Chart is the ordered sequence of item sets S[0]…S[n] built by the
// recognizer, one set per input position plus one.
type Chart struct {
	sets []*Set
}

// New creates a Chart with n empty sets, S[0]…S[n-1].
func New(n int) *Chart {
	c := &Chart{sets: make([]*Set, n)}
	for i := range c.sets {
		c.sets[i] = NewSet(0)
	}
	return c
}

// Len returns the number of item sets in the chart.
func (c *Chart) Len() int {
	return len(c.sets)
}

// At returns the item set at position k.
func (c *Chart) At(k int) *Set {
	return c.sets[k]
}

// Dump logs every item in S[k] at debug level, mirroring gorgo's
// dumpState helper (lr/earley/debug.go) used while chasing down
// fixed-point bugs.
func (c *Chart) Dump(k int) {
	tracer().Debugf("--- state %04d ---", k)
	for i, it := range c.sets[k].Items() {
		tracer().Debugf("[%2d] %s", i, it)
	}
}
