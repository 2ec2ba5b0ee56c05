package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"taxogen/internal/concordance"
	"taxogen/internal/fuzzy"
	"taxogen/internal/ingest"
	"taxogen/internal/refdata"
)

func newConcordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "concord",
		Short: "Build the HS-NAICS exact concordance and the HS-CPC fuzzy concordance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.buildCensusConcordance(); err != nil {
				return fmt.Errorf("hs-naics: %w", err)
			}
			if err := a.buildFuzzyConcordance(); err != nil {
				return fmt.Errorf("hs-cpc fuzzy: %w", err)
			}
			return nil
		},
	}
}

// censusPairs collapses the 10-digit Census concordance lines into unique
// HS6-to-NAICS6 pairs. The collapse happens here because ten-digit tariff
// lines repeat each pair many times; the declared table the builder sees
// is the deduplicated one.
func (a *app) censusPairs() ([]concordance.Pair, error) {
	f, err := a.open(a.cfg.CensusImports)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ingest.ReadCensusConcordance(f)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rows))
	pairs := make([]concordance.Pair, 0, len(rows))
	for _, r := range rows {
		// Some lines carry truncated tariff codes; the shorter code still
		// keys a valid chapter/heading pair.
		hs6 := r.HTS10
		if len(hs6) > 6 {
			hs6 = hs6[:6]
		}
		key := hs6 + "|" + r.NAICS6
		if seen[key] {
			continue
		}
		seen[key] = true
		pairs = append(pairs, concordance.Pair{Source: hs6, Target: r.NAICS6})
	}
	return pairs, nil
}

func (a *app) buildCensusConcordance() error {
	pairs, err := a.censusPairs()
	if err != nil {
		return err
	}
	m := concordance.Build(pairs)
	size, err := a.writeDoc("hs-naics-concordance.json", m)
	if err != nil {
		return err
	}
	a.log.Info("exact concordance built",
		"pairs", len(pairs),
		"source_codes", len(m.Forward),
		"target_codes", len(m.Reverse),
		"bytes", size,
	)
	return nil
}

// buildFuzzyConcordance matches HS 6-digit subheadings against CPC
// subclasses by description similarity. Neither side publishes a full
// declared mapping, so this is the approximate join.
func (a *app) buildFuzzyConcordance() error {
	hs, err := buildHS(a)
	if err != nil {
		return err
	}
	cpc, err := buildCPC(a)
	if err != nil {
		return err
	}

	res, err := fuzzy.BuildMatches(hs.lookup.Lookup, cpc.lookup.Lookup, fuzzy.Options{
		LeftLevel:  6,
		RightLevel: 5,
		Threshold:  a.cfg.FuzzyThreshold,
		TopN:       a.cfg.FuzzyTopN,
		Shards:     a.cfg.FuzzyShards,
		StopWords:  refdata.StopWords,
	})
	if err != nil {
		return err
	}

	size, err := a.writeDoc("hs-cpc-fuzzy.json", res)
	if err != nil {
		return err
	}
	a.log.Info("fuzzy concordance built",
		"matched", len(res.Forward),
		"reverse", len(res.Reverse),
		"bytes", size,
	)
	return nil
}
