package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readAll wraps csv.ReadAll with the lenient settings the source files
// need: ragged rows, stray quotes, UTF-8 BOM on the first header cell.
func readAll(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\uFEFF")
	}
	return rows, nil
}

// headerIndex maps column names to positions from a header row.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func col(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// ReadSections reads the shared section table (section,name) preserving
// file order.
func ReadSections(r io.Reader) ([]SectionRow, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("section table is empty")
	}
	idx := headerIndex(rows[0])
	var out []SectionRow
	for _, row := range rows[1:] {
		code := col(row, idx, "section")
		name := col(row, idx, "name")
		if code == "" || name == "" {
			continue
		}
		out = append(out, SectionRow{Code: code, Name: name})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("section table has no data rows")
	}
	return out, nil
}

// ReadHSCodes reads the HS code list (hscode,description,level,section,parent).
func ReadHSCodes(r io.Reader) ([]HSRow, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("hs code list is empty")
	}
	idx := headerIndex(rows[0])
	var out []HSRow
	for _, row := range rows[1:] {
		out = append(out, HSRow{
			Code:        col(row, idx, "hscode"),
			Description: col(row, idx, "description"),
			Level:       col(row, idx, "level"),
			Section:     col(row, idx, "section"),
			Parent:      col(row, idx, "parent"),
		})
	}
	return out, nil
}

// ReadTariffExport reads the Canadian tariff CSV export
// (TARIFF,DESC1,DESC2,DESC3).
func ReadTariffExport(r io.Reader) ([]TariffRow, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("tariff export is empty")
	}
	idx := headerIndex(rows[0])
	var out []TariffRow
	for _, row := range rows[1:] {
		out = append(out, TariffRow{
			Tariff: col(row, idx, "TARIFF"),
			Desc1:  col(row, idx, "DESC1"),
			Desc2:  col(row, idx, "DESC2"),
			Desc3:  col(row, idx, "DESC3"),
		})
	}
	return out, nil
}

// EPAFactorRow is one NAICS sector row of the EPA supply chain factor CSV.
type EPAFactorRow struct {
	NAICS                string
	Title                string
	Factor               float64
	FactorWithoutMargins float64
	Margins              float64
}

// ReadEPAFactors reads the EPA Supply Chain GHG Emission Factors CSV,
// keeping only rows with a usable NAICS code and parseable factors.
func ReadEPAFactors(r io.Reader) ([]EPAFactorRow, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("factor table is empty")
	}
	idx := headerIndex(rows[0])
	var out []EPAFactorRow
	for _, row := range rows[1:] {
		naics := col(row, idx, "2017 NAICS Code")
		if len(naics) < 4 {
			continue
		}
		factor, err1 := strconv.ParseFloat(col(row, idx, "Supply Chain Emission Factors with Margins"), 64)
		without, err2 := strconv.ParseFloat(col(row, idx, "Supply Chain Emission Factors without Margins"), 64)
		margins, err3 := strconv.ParseFloat(col(row, idx, "Margins of Supply Chain Emission Factors"), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		out = append(out, EPAFactorRow{
			NAICS:                naics,
			Title:                col(row, idx, "2017 NAICS Title"),
			Factor:               factor,
			FactorWithoutMargins: without,
			Margins:              margins,
		})
	}
	return out, nil
}
