package factors

import (
	"testing"

	"taxogen/internal/concordance"
)

func TestJoin_PicksHighestFactorSector(t *testing.T) {
	conc := concordance.Build([]concordance.Pair{
		{Source: "010121", Target: "112920"},
		{Source: "010121", Target: "112990"},
	})
	table := map[string]NAICSFactor{
		"112920": {Description: "Horses and Other Equine Production", Factor: 0.969, FactorWithoutMargins: 0.892, Margins: 0.077},
		"112990": {Description: "All Other Animal Production", Factor: 1.234, FactorWithoutMargins: 1.1, Margins: 0.134},
	}

	out := Join(conc, table, "kg CO2e / 2022 USD", "EPA v1.3")

	f, ok := out["010121"]
	if !ok {
		t.Fatalf("expected an entry for 010121, got %v", out)
	}
	if f.NAICSCode != "112990" || f.Factor != 1.234 {
		t.Errorf("must pick the highest-factor sector, got %+v", f)
	}
	if f.Unit != "kg CO2e / 2022 USD" || f.Source != "EPA v1.3" {
		t.Errorf("unit/source not stamped: %+v", f)
	}
	if f.NAICSDescription != "All Other Animal Production" {
		t.Errorf("description must follow the chosen sector: %q", f.NAICSDescription)
	}
}

func TestJoin_SkipsSectorsWithoutFactors(t *testing.T) {
	conc := concordance.Build([]concordance.Pair{
		{Source: "010121", Target: "112920"},
		{Source: "020110", Target: "999999"},
	})
	table := map[string]NAICSFactor{
		"112920": {Factor: 0.969},
	}

	out := Join(conc, table, "u", "s")

	if _, ok := out["010121"]; !ok {
		t.Errorf("code with a known sector must join")
	}
	if _, ok := out["020110"]; ok {
		t.Errorf("code whose sectors all lack factors must yield nothing")
	}
}

func TestJoin_SingleSectorPassesThrough(t *testing.T) {
	conc := concordance.Build([]concordance.Pair{{Source: "100111", Target: "111140"}})
	table := map[string]NAICSFactor{
		"111140": {Description: "Wheat Farming", Factor: 0.5, FactorWithoutMargins: 0.4, Margins: 0.1},
	}
	out := Join(conc, table, "u", "s")

	f := out["100111"]
	if f.FactorWithoutMargins != 0.4 || f.Margins != 0.1 {
		t.Errorf("margin split not carried: %+v", f)
	}
}
