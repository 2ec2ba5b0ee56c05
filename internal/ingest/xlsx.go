package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadCNWorkbook reads the Combined Nomenclature XLSX. Column order in the
// published workbook: CN key, CN code, dashes, description, supplementary
// unit. Rows without a description are skipped.
func ReadCNWorkbook(r io.Reader) ([]CNRow, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open cn workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("cn workbook has no sheets")
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read cn sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("cn sheet %q is empty", sheets[0])
	}

	cell := func(row []string, i int) string {
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []CNRow
	for _, row := range rows[1:] { // skip header
		desc := cell(row, 3)
		if desc == "" {
			continue
		}
		out = append(out, CNRow{
			Key:         cell(row, 0),
			Code:        cell(row, 1),
			Dashes:      cell(row, 2),
			Description: desc,
			Unit:        cell(row, 4),
		})
	}
	return out, nil
}
