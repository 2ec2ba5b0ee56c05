package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ReadCPCStructure reads the CPC structure file: Latin-1 encoded CSV of
// code,title pairs with a header line. Rows missing either field are
// skipped here; the normalizer never sees them.
func ReadCPCStructure(r io.Reader) ([]DelimitedRow, error) {
	rows, err := readAll(charmap.ISO8859_1.NewDecoder().Reader(r))
	if err != nil {
		return nil, fmt.Errorf("read cpc structure: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("cpc structure is empty")
	}
	var out []DelimitedRow
	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		out = append(out, DelimitedRow{
			Code:  strings.TrimSpace(row[0]),
			Title: strings.TrimSpace(row[1]),
		})
	}
	return out, nil
}
