package compose

import (
	"testing"

	"taxogen/internal/taxonomy"
)

func TestClaim_DeterministicSuffixes(t *testing.T) {
	used := make(idSet)
	if got := used.claim("x-0101"); got != "x-0101" {
		t.Fatalf("first claim = %q", got)
	}
	if got := used.claim("x-0101"); got != "x-0101-d2" {
		t.Fatalf("second claim = %q, want -d2", got)
	}
	if got := used.claim("x-0101"); got != "x-0101-d3" {
		t.Fatalf("third claim = %q, want -d3", got)
	}
}

func TestRekeyID(t *testing.T) {
	if got := rekeyID("hs-0101", "hs", "hsplus"); got != "hsplus-0101" {
		t.Errorf("prefix swap = %q", got)
	}
	if got := rekeyID("section-I", "hs", "hsplus"); got != "hsplus-section-I" {
		t.Errorf("unprefixed id = %q, want composite prefix prepended", got)
	}
}

func backbonePart() Part {
	return Part{
		Name:   "hs",
		Prefix: "hs",
		Forest: []*taxonomy.Node{
			{
				ID: "hs-section-I", Code: "I", Name: "Live Animals", Type: taxonomy.TypeSection,
				Children: []*taxonomy.Node{
					{ID: "hs-0101", Code: "0101", Name: "Horses", Type: taxonomy.TypeHeading},
				},
			},
		},
		Lookup: taxonomy.Lookup{
			"0101": {Code: "0101", Description: "Horses", Section: "I", Level: 4, Type: taxonomy.TypeHeading},
		},
	}
}

func detailPart() Part {
	return Part{
		Name:   "cpc",
		Prefix: "cpc",
		Forest: []*taxonomy.Node{
			{
				ID: "cpc-5", Code: "5", Name: "Constructions", Type: "section",
				Children: []*taxonomy.Node{
					{ID: "cpc-53", Code: "53", Name: "Buildings", Type: "division"},
				},
			},
			{ID: "cpc-0", Code: "0", Name: "Agriculture products", Type: "section"},
		},
		Lookup: taxonomy.Lookup{
			"5":  {Code: "5", Description: "Constructions", Level: 1, Type: "section"},
			"53": {Code: "53", Description: "Buildings", Level: 2, Type: "division"},
			"0":  {Code: "0", Description: "Agriculture products", Level: 1, Type: "section"},
		},
	}
}

func TestSibling_KeepsBackboneAndFilteredDetail(t *testing.T) {
	comp := Composite{Name: "hsplus", Prefix: "hsplus", Marker: "cpc:"}
	keep := func(top string) bool { return top == "5" }

	forest, lk := Sibling(comp, backbonePart(), detailPart(), keep)

	if len(forest) != 2 {
		t.Fatalf("expected backbone root + one kept detail root, got %d", len(forest))
	}
	if forest[0].ID != "hsplus-section-I" {
		t.Errorf("backbone root not re-keyed: %q", forest[0].ID)
	}
	if forest[1].ID != "hsplus-5" || forest[1].Children[0].ID != "hsplus-53" {
		t.Errorf("detail subtree not re-keyed: %q / %q", forest[1].ID, forest[1].Children[0].ID)
	}

	if _, ok := lk["0101"]; !ok {
		t.Errorf("backbone entries keep their native keys")
	}
	e, ok := lk["cpc:53"]
	if !ok {
		t.Fatalf("kept detail entries must key under the marker, lookup: %v", lk)
	}
	if e.Origin != "cpc" || e.OriginalCode != "53" || e.Code != "cpc:53" {
		t.Errorf("detail entry not origin-tagged: %+v", e)
	}
	if _, ok := lk["cpc:0"]; ok {
		t.Errorf("filtered-out detail subtree must not reach the lookup")
	}
}

func TestSibling_DeepCopiesInputs(t *testing.T) {
	comp := Composite{Name: "hsplus", Prefix: "hsplus", Marker: "cpc:"}
	backbone := backbonePart()
	detail := detailPart()

	forest, _ := Sibling(comp, backbone, detail, func(string) bool { return true })

	forest[0].Children[0].Name = "mutated"
	forest[1].Children[0].Name = "mutated"

	if backbone.Forest[0].Children[0].Name != "Horses" {
		t.Errorf("backbone input mutated through the composite")
	}
	if detail.Forest[0].Children[0].Name != "Buildings" {
		t.Errorf("detail input mutated through the composite")
	}
}

func TestSibling_UniqueIDsAcrossParts(t *testing.T) {
	// Backbone and detail both carry a node keyed 0101 in their own
	// namespaces; re-keying into one namespace must not collide.
	backbone := Part{
		Name: "hs", Prefix: "hs",
		Forest: []*taxonomy.Node{{ID: "hs-0101", Code: "0101", Name: "Horses", Type: taxonomy.TypeHeading}},
		Lookup: taxonomy.Lookup{"0101": {Code: "0101"}},
	}
	detail := Part{
		Name: "cn", Prefix: "cn",
		Forest: []*taxonomy.Node{{ID: "cn-0101", Code: "0101", Name: "Pferde", Type: taxonomy.TypeHeading}},
		Lookup: taxonomy.Lookup{"0101": {Code: "0101"}},
	}
	forest, _ := Sibling(Composite{Name: "x", Prefix: "x", Marker: "cn:"}, backbone, detail, func(string) bool { return true })

	seen := map[string]bool{}
	taxonomy.Walk(forest, func(n *taxonomy.Node) {
		if seen[n.ID] {
			t.Errorf("duplicate id %q in composite", n.ID)
		}
		seen[n.ID] = true
	})
	if !seen["x-0101"] || !seen["x-0101-d2"] {
		t.Errorf("expected x-0101 and x-0101-d2, got %v", seen)
	}
}
