/*
Package earley implements a general context-free parsing library based
on Earley's chart-parsing algorithm. Given a grammar in Backus-Naur
Form and an input string, it decides membership in the grammar's
language and, when the input is accepted, enumerates every distinct
parse tree.

The public surface is deliberately small:

	outcome, err := earley.Evaluate(grammarText, input, nil)
	if err != nil {
		// malformed grammar text
	}
	switch o := outcome.(type) {
	case earley.Accepted:
		trees, err := o.ParseForest()
	case earley.Rejected:
		// input is not in the grammar's language
	}

Subpackages hold the internal machinery: grammar models and reads BNF
text, chart implements the Earley item and chart, forest reconstructs
derivation trees from a completed chart. Callers of this module
generally only need the root package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package earley
