package concordance

import "testing"

func TestBuild_BidirectionalSymmetry(t *testing.T) {
	m := Build([]Pair{
		{Source: "010121", Target: "111900"},
		{Source: "010129", Target: "111900"},
	})

	if len(m.Forward["010121"]) != 1 || m.Forward["010121"][0].Code != "111900" {
		t.Fatalf("forward bucket wrong: %v", m.Forward["010121"])
	}
	back := m.Reverse["111900"]
	if len(back) != 2 || back[0].Code != "010121" || back[1].Code != "010129" {
		t.Fatalf("reverse bucket must list both sources in order, got %v", back)
	}
}

func TestBuild_CodesCanonicalized(t *testing.T) {
	m := Build([]Pair{{Source: "0101.21", Target: "1119 00"}})

	if _, ok := m.Forward["010121"]; !ok {
		t.Errorf("dotted source must key by cleaned code")
	}
	if _, ok := m.Reverse["111900"]; !ok {
		t.Errorf("spaced target must key by cleaned code")
	}
}

func TestBuild_PartialFlagsCrossSides(t *testing.T) {
	m := Build([]Pair{
		{Source: "0101", SourcePartial: true, Target: "1119", TargetPartial: false},
	})

	if m.Forward["0101"][0].Partial {
		t.Errorf("forward link carries the target's partial flag")
	}
	if !m.Reverse["1119"][0].Partial {
		t.Errorf("reverse link carries the source's partial flag")
	}
}

func TestBuild_Cardinality(t *testing.T) {
	m := Build([]Pair{
		{Source: "0101", Target: "1119"},
		{Source: "0102", Target: "1121"},
		{Source: "0102", Target: "1122"},
	})

	if s := m.Summary["0101"]; s.Count != 1 || s.Type != "1:1" {
		t.Errorf("single mapping must be 1:1, got %+v", s)
	}
	if s := m.Summary["0102"]; s.Count != 2 || s.Type != "1:N" {
		t.Errorf("fan-out must be 1:N, got %+v", s)
	}
	// Codes appearing only as targets are summarized from the reverse side.
	if s := m.Summary["1121"]; s.Count != 1 || s.Type != "1:1" {
		t.Errorf("target-only code missing reverse summary, got %+v", s)
	}
}

func TestBuild_RepeatedPairsNotDeduplicated(t *testing.T) {
	m := Build([]Pair{
		{Source: "0101", Target: "1119"},
		{Source: "0101", Target: "1119"},
	})

	if len(m.Forward["0101"]) != 2 {
		t.Fatalf("repeated declared pairs both count, got %d links", len(m.Forward["0101"]))
	}
	if s := m.Summary["0101"]; s.Count != 2 || s.Type != "1:N" {
		t.Errorf("duplicate inflates the cardinality, got %+v", s)
	}
}

func TestBuild_BlankSidesSkipped(t *testing.T) {
	m := Build([]Pair{
		{Source: "", Target: "1119"},
		{Source: "0101", Target: "  "},
		{Source: "0102", Target: "1121"},
	})
	if len(m.Forward) != 1 {
		t.Fatalf("pairs with a blank side must be skipped, got %v", m.Forward)
	}
}
