package ingest

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReadHTSExport reads the USITC HTS JSON export: a flat array of entries
// carrying htsno, indent, description, and the superior flag.
func ReadHTSExport(r io.Reader) ([]HTSRow, error) {
	var rows []HTSRow
	dec := json.NewDecoder(r)
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode hts export: %w", err)
	}
	return rows, nil
}
