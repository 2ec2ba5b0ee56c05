package record

import "taxogen/internal/ingest"

// cpcLevels names the five CPC tiers by code length.
var cpcLevels = map[int]string{
	1: "section",
	2: "division",
	3: "group",
	4: "class",
	5: "subclass",
}

// FromCPC normalizes Central Product Classification rows. The code length
// directly encodes the level: one digit per tier.
func FromCPC(rows []ingest.DelimitedRow) []Record {
	var out []Record
	for _, row := range rows {
		if row.Code == "" || row.Title == "" {
			continue
		}
		level := len(row.Code)
		typ, ok := cpcLevels[level]
		if !ok {
			typ = "item"
		}
		out = append(out, Record{
			Code:      row.Code,
			Text:      row.Title,
			Type:      typ,
			Level:     level,
			Container: level < 5,
		})
	}
	return out
}
