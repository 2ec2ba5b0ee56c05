package record

import (
	"strconv"
	"strings"

	"taxogen/internal/ingest"
	"taxogen/internal/taxonomy"
)

// FromHTS normalizes US Harmonized Tariff Schedule rows. The export is
// indent-coded: the raw indent counter is preserved verbatim and only the
// indentation-stack assembler interprets it. Rows without a description
// are non-data rows. Codeless rows are intermediate groupings.
func FromHTS(rows []ingest.HTSRow) []Record {
	var out []Record
	for _, row := range rows {
		desc := strings.TrimSpace(row.Description)
		if desc == "" {
			continue
		}
		code := strings.TrimSpace(row.Number)
		clean := taxonomy.CleanCode(code)

		var typ string
		switch len(clean) {
		case 4:
			typ = taxonomy.TypeHeading
		case 6:
			typ = taxonomy.TypeSubheading
		case 8:
			typ = "tariff_8"
		case 10:
			typ = "tariff_10"
		default:
			typ = taxonomy.TypeGroup
		}

		indent, _ := strconv.Atoi(strings.TrimSpace(row.Indent))
		superior := strings.EqualFold(strings.TrimSpace(row.Superior), "true")

		out = append(out, Record{
			Code:   code,
			Text:   strings.TrimSpace(strings.TrimRight(desc, ":")),
			Type:   typ,
			Level:  len(clean),
			Indent: indent,
			Container: superior || typ == taxonomy.TypeHeading ||
				typ == taxonomy.TypeSubheading || typ == taxonomy.TypeGroup,
		})
	}
	return out
}
