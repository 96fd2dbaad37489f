package match

import (
	"strings"
	"unicode"
)

// Fold normalizes an identifier for fuzzy matching: it lowercases it and
// strips separators, so "scatterplot_layer", "Scatterplot-Layer" and
// "ScatterplotLayer" all fold to "scatterplotlayer".
func Fold(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.' || r == '@'
}
