// Package fuzzy computes approximate concordances between two taxonomies
// from description text alone, for taxonomy pairs with no declared
// mapping table.
package fuzzy

import (
	"strings"
	"unicode"
)

// Tokenize lower-cases a description, breaks it on punctuation and
// whitespace, and returns the surviving token set: stop-words and tokens
// of length <= 2 are discarded, duplicates collapse.
func Tokenize(desc string, stop map[string]bool) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(desc), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]bool, len(fields))
	for _, tok := range fields {
		if len(tok) <= 2 || stop[tok] {
			continue
		}
		set[tok] = true
	}
	return set
}

// Similarity is the Jaccard index of two token sets: |A∩B| / |A∪B|,
// defined as 0 when either set is empty. Always within [0,1] and 1 for
// identical non-empty sets.
func Similarity(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	inter := 0
	for tok := range a {
		if b[tok] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
