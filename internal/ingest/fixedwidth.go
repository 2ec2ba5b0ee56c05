package ingest

import (
	"bufio"
	"io"
	"strings"
)

// Census import concordance layout: HTS-10 in columns 0-10, NAICS-6 in
// columns 265-271. Lines shorter than the NAICS field are padding or
// continuation noise.
const censusMinLineLen = 271

// ReadCensusConcordance decodes the fixed-width Census Bureau import
// concordance. Lines whose code fields are not numeric are dropped.
func ReadCensusConcordance(r io.Reader) ([]CensusRow, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []CensusRow
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < censusMinLineLen {
			continue
		}
		hts10 := strings.TrimSpace(line[0:10])
		naics6 := strings.TrimSpace(line[265:271])
		if hts10 == "" || naics6 == "" {
			continue
		}
		if !allDigits(hts10[:min(6, len(hts10))]) || !allDigits(naics6) {
			continue
		}
		out = append(out, CensusRow{HTS10: hts10, NAICS6: naics6})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
