package record

import (
	"strconv"

	"taxogen/internal/ingest"
	"taxogen/internal/taxonomy"
)

// hsTypes maps the published HS level marker to a node type. Level 5 rows
// are one-dash subheadings; the published schedule files them with the
// six-digit tier.
var hsTypes = map[string]string{
	"2": taxonomy.TypeChapter,
	"4": taxonomy.TypeHeading,
	"5": taxonomy.TypeSubheading,
	"6": taxonomy.TypeSubheading,
}

// FromHS normalizes Harmonized System rows. The source states level,
// parent, and section explicitly.
func FromHS(rows []ingest.HSRow) []Record {
	var out []Record
	for _, row := range rows {
		typ, ok := hsTypes[row.Level]
		if !ok || row.Code == "" || row.Description == "" {
			continue
		}
		level, _ := strconv.Atoi(row.Level)
		out = append(out, Record{
			Code:      row.Code,
			Text:      row.Description,
			Type:      typ,
			Level:     level,
			Parent:    row.Parent,
			Section:   row.Section,
			Container: typ != taxonomy.TypeSubheading,
		})
	}
	return out
}
