package lookup

import (
	"testing"

	"taxogen/internal/record"
	"taxogen/internal/taxonomy"
	"taxogen/internal/tree"
)

func sampleForest() []*taxonomy.Node {
	return []*taxonomy.Node{
		{
			ID: "t-section-I", Code: "I", Name: "Live Animals; Animal Products", Type: taxonomy.TypeSection,
			Children: []*taxonomy.Node{
				{
					ID: "t-01", Code: "01", Name: "Live animals", Type: taxonomy.TypeChapter,
					Children: []*taxonomy.Node{
						{
							ID: "t-0101", Code: "01.01", Name: "Horses", Type: taxonomy.TypeHeading,
							Children: []*taxonomy.Node{
								{ID: "t-010121", Code: "010121", Name: "Breeding", Type: taxonomy.TypeSubheading},
							},
						},
					},
				},
			},
		},
	}
}

func TestBuild_EveryCodedNodeIndexed(t *testing.T) {
	res := Build(sampleForest())

	if len(res.Lookup) != 3 {
		t.Fatalf("expected 3 entries (section excluded), got %d", len(res.Lookup))
	}
	if _, ok := res.Lookup["I"]; ok {
		t.Errorf("section roots must not be indexed")
	}
	for _, code := range []string{"01", "01.01", "010121"} {
		if _, ok := res.Lookup[code]; !ok {
			t.Errorf("code %q missing from lookup", code)
		}
	}
}

func TestBuild_SectionContextThreaded(t *testing.T) {
	res := Build(sampleForest())

	e := res.Lookup["010121"]
	if e.Section != "I" || e.SectionName != "Live Animals; Animal Products" {
		t.Errorf("deep node must carry its enclosing section, got %+v", e)
	}
}

func TestBuild_LevelFromCleanedCode(t *testing.T) {
	res := Build(sampleForest())

	if got := res.Lookup["01.01"].Level; got != 4 {
		t.Errorf("dotted heading level = %d, want 4 (punctuation stripped)", got)
	}
	if got := res.Lookup["010121"].Level; got != 6 {
		t.Errorf("subheading level = %d, want 6", got)
	}
}

func TestBuild_LevelIgnoresTreeDepth(t *testing.T) {
	// An eight-digit line sitting directly under a heading still reports
	// level 8.
	forest := []*taxonomy.Node{
		{
			ID: "t-0101", Code: "0101", Name: "Horses", Type: taxonomy.TypeHeading,
			Children: []*taxonomy.Node{
				{ID: "t-01012100", Code: "01012100", Name: "Breeding", Type: "tariff_8"},
			},
		},
	}
	res := Build(forest)
	if got := res.Lookup["01012100"].Level; got != 8 {
		t.Errorf("level = %d, want 8 regardless of depth", got)
	}
}

func TestBuild_DuplicateLastWinsAndReported(t *testing.T) {
	forest := []*taxonomy.Node{
		{ID: "t-0101-a", Code: "0101", Name: "First", Type: taxonomy.TypeHeading},
		{ID: "t-0101-b", Code: "0101", Name: "Second", Type: taxonomy.TypeHeading},
	}
	res := Build(forest)

	if len(res.Duplicates) != 1 || res.Duplicates[0] != "0101" {
		t.Fatalf("duplicate code must be reported, got %v", res.Duplicates)
	}
	if res.Lookup["0101"].Description != "Second" {
		t.Errorf("last visit must win, got %q", res.Lookup["0101"].Description)
	}
}

func TestBuild_RoundTripWithAssembledForest(t *testing.T) {
	// Every coded record that enters assembly comes back out of the flat
	// index, including ones the assembler could only promote to roots.
	records := []record.Record{
		{Code: "01", Text: "Live animals", Type: taxonomy.TypeChapter, Container: true},
		{Code: "0101", Text: "Horses", Type: taxonomy.TypeHeading, Container: true},
		{Code: "010121", Text: "Breeding", Type: taxonomy.TypeSubheading},
		{Code: "9999", Text: "Orphan", Type: taxonomy.TypeHeading},
	}
	forest := tree.CodePrefix{Namespace: "t", ParentOf: tree.PrefixDigits(2, 4, 6)}.Assemble(records)
	res := Build(forest)

	treeCodes := map[string]bool{}
	taxonomy.Walk(forest, func(n *taxonomy.Node) {
		if n.Type != taxonomy.TypeSection && n.Code != "" {
			treeCodes[n.Code] = true
		}
	})
	if len(res.Lookup) != len(treeCodes) {
		t.Fatalf("lookup has %d codes, tree has %d", len(res.Lookup), len(treeCodes))
	}
	for code := range treeCodes {
		if _, ok := res.Lookup[code]; !ok {
			t.Errorf("tree code %q missing from lookup", code)
		}
	}
}

func TestBuild_SectionScopedToSubtree(t *testing.T) {
	forest := []*taxonomy.Node{
		{
			ID: "t-section-I", Code: "I", Name: "Section one", Type: taxonomy.TypeSection,
			Children: []*taxonomy.Node{
				{ID: "t-01", Code: "01", Name: "Inside", Type: taxonomy.TypeChapter},
			},
		},
		{ID: "t-99", Code: "99", Name: "Orphan root", Type: taxonomy.TypeChapter},
	}
	res := Build(forest)

	if res.Lookup["01"].Section != "I" {
		t.Errorf("child of section must inherit it")
	}
	if res.Lookup["99"].Section != "" {
		t.Errorf("sibling after a section root must not inherit it, got %q", res.Lookup["99"].Section)
	}
}
