package earley

import (
	"github.com/brycefield/earley/chart"
	"github.com/brycefield/earley/forest"
	"github.com/brycefield/earley/grammar"
)

// Outcome is the result of Evaluate: either Accepted or Rejected. It
// is a closed tagged union — the only implementations are Accepted and
// Rejected, so a type switch over Outcome is exhaustive.
type Outcome interface {
	isOutcome()
}

// Accepted is the Outcome when the input is in the grammar's language.
// It retains the full chart built during recognition, so ParseForest
// can be called any number of times without re-parsing.
type Accepted struct {
	chart     *chart.Chart
	witnesses []chart.Item
	symbols   []string
}

func (Accepted) isOutcome() {}

// Symbols returns the tokenized input that was accepted.
func (a Accepted) Symbols() []string {
	return a.symbols
}

// ChartLen returns the number of item sets in the underlying chart —
// always len(Symbols())+1.
func (a Accepted) ChartLen() int {
	return a.chart.Len()
}

// ParseForest reconstructs every distinct derivation tree for this
// outcome. It fails with ForestError only if the accepted chart is
// missing its start-position completed set, an internal invariant
// violation that a correct recognizer never produces.
func (a Accepted) ParseForest() ([]forest.Tree, error) {
	trees, err := forest.Build(a.chart, a.witnesses, a.symbols)
	if err != nil {
		return nil, &ForestError{Reason: err.Error()}
	}
	return trees, nil
}

// Rejected is the Outcome when the input is not in the grammar's
// language. Rejection is not an error: it carries no chart and has no
// ParseForest.
type Rejected struct{}

func (Rejected) isOutcome() {}

// Evaluate is the library's single entry point: it reads grammarText
// as BNF, tokenizes input per delimiter (nil means per-character, see
// Tokenize), and runs the recognizer. It fails with GrammarError if
// grammarText is malformed or has no productions.
//
// Cancellation/timeouts are not part of this contract (an aborted
// outcome would be an optional, non-core extension); Evaluate always
// runs a parse to completion.
func Evaluate(grammarText, input string, delimiter *rune) (Outcome, error) {
	g, err := grammar.Parse(grammarText)
	if err != nil {
		return nil, &GrammarError{Reason: err.Error()}
	}
	symbols := Tokenize(input, delimiter)
	ch, witnesses, ok := recognize(g, symbols)
	if !ok {
		return Rejected{}, nil
	}
	return Accepted{chart: ch, witnesses: witnesses, symbols: symbols}, nil
}

// Accept is a convenience wrapper around Evaluate: true iff the
// outcome is Accepted. GrammarError still propagates.
func Accept(grammarText, input string, delimiter *rune) (bool, error) {
	outcome, err := Evaluate(grammarText, input, delimiter)
	if err != nil {
		return false, err
	}
	_, accepted := outcome.(Accepted)
	return accepted, nil
}
