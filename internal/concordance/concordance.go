// Package concordance builds bidirectional code mappings from declared
// code-pair tables.
package concordance

import "taxogen/internal/taxonomy"

// Pair is one declared source-to-target code pair. A partial flag marks
// asymmetric coverage: the flagged side only partially covers the other
// side's scope. It is not a weight.
type Pair struct {
	Source        string
	SourcePartial bool
	Target        string
	TargetPartial bool
}

// Link is one far-side code in a multimap bucket, carrying the partial
// flag of the code it points at.
type Link struct {
	Code    string `json:"code"`
	Partial bool   `json:"partial"`
}

// Cardinality summarizes one code's mapping fan-out.
type Cardinality struct {
	Count int    `json:"count"`
	Type  string `json:"type"` // "1:1" or "1:N"
}

// Mapping is the bidirectional concordance document.
type Mapping struct {
	Forward map[string][]Link      `json:"forward"`
	Reverse map[string][]Link      `json:"reverse"`
	Summary map[string]Cardinality `json:"summaryByCode"`
}

// Build assembles the bidirectional multimaps from declared pairs. Codes
// are canonicalized (dots and spaces stripped) to match lookup keys.
// Repeated declared pairs are NOT deduplicated: both occurrences count,
// preserving whatever duplication semantics the source table carries.
func Build(pairs []Pair) *Mapping {
	m := &Mapping{
		Forward: make(map[string][]Link),
		Reverse: make(map[string][]Link),
		Summary: make(map[string]Cardinality),
	}
	for _, p := range pairs {
		src := taxonomy.CleanCode(p.Source)
		tgt := taxonomy.CleanCode(p.Target)
		if src == "" || tgt == "" {
			continue
		}
		m.Forward[src] = append(m.Forward[src], Link{Code: tgt, Partial: p.TargetPartial})
		m.Reverse[tgt] = append(m.Reverse[tgt], Link{Code: src, Partial: p.SourcePartial})
	}

	for code, links := range m.Forward {
		m.Summary[code] = cardinality(len(links))
	}
	// Target-side codes that never appear as sources get their summary
	// from the reverse bucket; on a cross-side code collision the forward
	// count stands.
	for code, links := range m.Reverse {
		if _, ok := m.Summary[code]; !ok {
			m.Summary[code] = cardinality(len(links))
		}
	}
	return m
}

func cardinality(n int) Cardinality {
	t := "1:N"
	if n == 1 {
		t = "1:1"
	}
	return Cardinality{Count: n, Type: t}
}
