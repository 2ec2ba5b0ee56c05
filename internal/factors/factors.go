// Package factors joins a NAICS-keyed emission factor table to an
// HS-to-NAICS concordance, producing per-HS6 supply chain factors.
package factors

import (
	"taxogen/internal/concordance"
)

// NAICSFactor is one sector's emission intensity from the EPA supply
// chain factor table.
type NAICSFactor struct {
	Description          string
	Factor               float64
	FactorWithoutMargins float64
	Margins              float64
}

// Factor is the per-HS6 output record.
type Factor struct {
	Factor               float64 `json:"factor"`
	Unit                 string  `json:"unit"`
	NAICSCode            string  `json:"naicsCode"`
	NAICSDescription     string  `json:"naicsDescription"`
	FactorWithoutMargins float64 `json:"factorWithoutMargins"`
	Margins              float64 `json:"margins"`
	Source               string  `json:"source"`
}

// Join resolves each HS6 code of the concordance to the matched NAICS
// sector with the highest factor (the conservative choice when a code
// spans several sectors). HS6 codes whose sectors all lack a factor yield
// no entry.
func Join(hsToNAICS *concordance.Mapping, table map[string]NAICSFactor, unit, source string) map[string]Factor {
	out := make(map[string]Factor)
	for hs6, links := range hsToNAICS.Forward {
		bestCode := ""
		var best NAICSFactor
		for _, link := range links {
			f, ok := table[link.Code]
			if !ok {
				continue
			}
			if bestCode == "" || f.Factor > best.Factor {
				bestCode, best = link.Code, f
			}
		}
		if bestCode == "" {
			continue
		}
		out[hs6] = Factor{
			Factor:               best.Factor,
			Unit:                 unit,
			NAICSCode:            bestCode,
			NAICSDescription:     best.Description,
			FactorWithoutMargins: best.FactorWithoutMargins,
			Margins:              best.Margins,
			Source:               source,
		}
	}
	return out
}
