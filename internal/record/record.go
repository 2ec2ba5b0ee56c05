// Package record normalizes per-source raw rows into the canonical
// classification record the assemblers consume. Header lines, blank rows,
// and rows missing a mandatory code or description are filtered here; the
// tree layer never sees a non-data row.
package record

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record is one normalized classification row. Level is derived from the
// published level marker or the code's canonical length; Indent is the raw
// per-row depth counter for indent-coded sources and is not comparable
// across sources. Parent and Section are set only when the source states
// them.
type Record struct {
	Code      string
	Text      string
	Type      string
	Level     int
	Indent    int
	Parent    string
	Section   string
	Container bool // may bear subordinate rows
}

var titleCaser = cases.Title(language.English)

// TitleLabel normalizes a section/group label that arrives fully
// lower-case; anything with existing capitalization passes through
// unchanged.
func TitleLabel(s string) string {
	if s != "" && s == strings.ToLower(s) {
		return titleCaser.String(s)
	}
	return s
}
