package earley

import "fmt"

// GrammarError reports that grammar text passed to Evaluate could not
// be read into a Grammar: malformed BNF, or BNF with no productions at
// all.
type GrammarError struct {
	Reason string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("earley: invalid grammar: %s", e.Reason)
}

// ForestError reports an internal inconsistency discovered while
// reconstructing a parse forest from an Accepted outcome: the
// completed-by-start view came back empty, which a correct recognizer
// never produces for a chart it itself accepted.
type ForestError struct {
	Reason string
}

func (e *ForestError) Error() string {
	return fmt.Sprintf("earley: forest reconstruction failed: %s", e.Reason)
}
