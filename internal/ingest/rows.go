// Package ingest reads the raw source files behind each taxonomy and hands
// the core already-parsed row sequences. File formats live here and only
// here; nothing downstream knows whether a row came from CSV, XLSX, a JSON
// export, or a fixed-width dump.
package ingest

// HSRow is one row of the WCO Harmonized System code list. Level is the
// published 2/4/5/6 marker; Parent and Section are explicit columns.
type HSRow struct {
	Code        string
	Description string
	Level       string
	Section     string
	Parent      string
}

// SectionRow is one row of the section table shared by the HS-derived
// taxonomies. Order matters: the tree preserves the published ordering.
type SectionRow struct {
	Code string // Roman numeral
	Name string
}

// DelimitedRow is one code/title pair from a plain delimited structure
// file (CPC).
type DelimitedRow struct {
	Code  string
	Title string
}

// CNRow is one row of the Combined Nomenclature workbook. The code column
// mixes Roman-numeral sections, chapters, and spaced code groups; Dashes
// carries the indent markers the published PDF renders.
type CNRow struct {
	Key         string
	Code        string
	Dashes      string
	Description string
	Unit        string
}

// HTSRow is one entry of the USITC HTS JSON export. Indent arrives as a
// string in the export; Superior is "true" on rows that exist only to
// carry subordinate rows.
type HTSRow struct {
	Number      string `json:"htsno"`
	Indent      string `json:"indent"`
	Description string `json:"description"`
	Superior    string `json:"superior"`
}

// TariffRow is one row of the Canadian customs tariff export (TPHS table,
// exported to CSV; the published Access database is not readable here).
type TariffRow struct {
	Tariff string
	Desc1  string
	Desc2  string
	Desc3  string
}

// CensusRow is one decoded line of the Census Bureau import concordance
// (imp-code.txt, fixed-width).
type CensusRow struct {
	HTS10  string
	NAICS6 string
}
