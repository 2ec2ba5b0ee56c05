package refdata

// StopWords lists tokens excluded from description similarity: articles,
// connectors, and the boilerplate qualifiers tariff nomenclature leans on
// ("other", "not elsewhere specified or included" and its abbreviations).
// Tokens of length <= 2 are dropped by the tokenizer regardless.
var StopWords = map[string]bool{
	"and":       true,
	"the":       true,
	"for":       true,
	"with":      true,
	"without":   true,
	"not":       true,
	"nor":       true,
	"than":      true,
	"other":     true,
	"others":    true,
	"whether":   true,
	"thereof":   true,
	"therefor":  true,
	"elsewhere": true,
	"specified": true,
	"included":  true,
	"including": true,
	"excluding": true,
	"except":    true,
	"nes":       true,
	"nesoi":     true,
	"nec":       true,
	"n.e.s":     true,
	"n.e.c":     true,
	"parts":     true,
	"articles":  true,
	"products":  true,
	"similar":   true,
	"used":      true,
	"kind":      true,
	"kinds":     true,
}
