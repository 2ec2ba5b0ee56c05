package record

import (
	"regexp"
	"strings"

	"taxogen/internal/ingest"
	"taxogen/internal/taxonomy"
)

var (
	cnSectionRe    = regexp.MustCompile(`^[IVX]+$`)
	cnChapterRe    = regexp.MustCompile(`^\d{2}$`)
	cnHeadingRe    = regexp.MustCompile(`^\d{4}$`)
	cnSubheadingRe = regexp.MustCompile(`^\d{4}\s+\d{2}$`)
	cnCode8Re      = regexp.MustCompile(`^\d{4}\s+\d{2}\s+\d{2}$`)

	sectionPrefixRe = regexp.MustCompile(`^SECTION\s+[IVX]+\s*[-–]\s*`)
	chapterPrefixRe = regexp.MustCompile(`^CHAPTER\s+\d+\s*[-–]\s*`)
)

// FromCN normalizes Combined Nomenclature rows. The tier is encoded in the
// code's syntax: Roman-numeral sections, 2-digit chapters, 4-digit
// headings, "NNNN NN" subheadings and "NNNN NN NN" CN8 lines. Rows whose
// code matches none of these (dash-only description continuations, the
// workbook title) carry no code and are dropped. Each record is stamped
// with the most recently seen section so chapters can be grouped without
// a chapter-to-section table.
func FromCN(rows []ingest.CNRow) []Record {
	var out []Record
	section := ""
	for _, row := range rows {
		code := row.Code
		desc := row.Description
		if code == "" {
			continue
		}

		switch {
		case cnSectionRe.MatchString(code):
			section = code
			out = append(out, Record{
				Code:      code,
				Text:      TitleLabel(sectionPrefixRe.ReplaceAllString(desc, "")),
				Type:      taxonomy.TypeSection,
				Level:     1,
				Container: true,
			})
		case cnChapterRe.MatchString(code):
			out = append(out, Record{
				Code:      code,
				Text:      chapterPrefixRe.ReplaceAllString(desc, ""),
				Type:      taxonomy.TypeChapter,
				Level:     2,
				Section:   section,
				Container: true,
			})
		case cnHeadingRe.MatchString(code):
			out = append(out, Record{
				Code:      code,
				Text:      desc,
				Type:      taxonomy.TypeHeading,
				Level:     4,
				Section:   section,
				Container: true,
			})
		case cnSubheadingRe.MatchString(code):
			out = append(out, Record{
				Code:      strings.ReplaceAll(code, " ", ""),
				Text:      desc,
				Type:      taxonomy.TypeSubheading,
				Level:     6,
				Section:   section,
				Container: true,
			})
		case cnCode8Re.MatchString(code):
			out = append(out, Record{
				Code:    strings.ReplaceAll(code, " ", ""),
				Text:    desc,
				Type:    "cn8",
				Level:   8,
				Section: section,
			})
		}
	}
	return out
}
