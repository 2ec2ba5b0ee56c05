package record

import (
	"regexp"
	"strings"

	"taxogen/internal/ingest"
	"taxogen/internal/taxonomy"
)

var (
	caHeadingRe    = regexp.MustCompile(`^\d{2}\.\d{2}$`)
	caGroupRe      = regexp.MustCompile(`^\d{4}\.\d$`)
	caSubheadingRe = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}$`)
	caItemRe       = regexp.MustCompile(`^\d{4}\.\d{2}\.\d{2}\.\d{2}$`)
)

// FromTariff normalizes Canadian customs tariff rows. The dotted code's
// shape encodes the tier; dots are kept on the code for display and
// stripped only for keying. The three description columns are joined.
func FromTariff(rows []ingest.TariffRow) []Record {
	var out []Record
	for _, row := range rows {
		code := row.Tariff
		desc := joinDescs(row.Desc1, row.Desc2, row.Desc3)
		if code == "" || desc == "" {
			continue
		}

		var typ string
		var container bool
		switch {
		case caHeadingRe.MatchString(code):
			typ, container = taxonomy.TypeHeading, true
		case caGroupRe.MatchString(code):
			typ, container = taxonomy.TypeGroup, true
		case caSubheadingRe.MatchString(code):
			typ, container = taxonomy.TypeSubheading, true
		case caItemRe.MatchString(code):
			typ = "tariff_item"
		default:
			continue
		}

		out = append(out, Record{
			Code:      code,
			Text:      desc,
			Type:      typ,
			Level:     len(taxonomy.CleanCode(code)),
			Container: container,
		})
	}
	return out
}

func joinDescs(descs ...string) string {
	var parts []string
	for _, d := range descs {
		d = strings.TrimSpace(d)
		if d != "" && d != "None" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, " ")
}
