package earley

import "strings"

// Tokenize splits raw input text into the symbol sequence the
// recognizer scans against. With no delimiter, the
// symbols are the input's individual runes, each rendered back as a
// one-rune string (so multi-byte UTF-8 characters remain one symbol).
// With a delimiter, the input is split on runs of that rune and empty
// fragments are discarded, supporting multi-character terminals such
// as "if"/"else".
func Tokenize(input string, delimiter *rune) []string {
	if delimiter == nil {
		runes := []rune(input)
		symbols := make([]string, len(runes))
		for i, r := range runes {
			symbols[i] = string(r)
		}
		return symbols
	}
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == *delimiter
	})
	return fields
}
