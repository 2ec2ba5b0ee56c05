package main

import (
	"github.com/spf13/cobra"

	"taxogen/internal/concordance"
	"taxogen/internal/factors"
	"taxogen/internal/ingest"
)

const (
	factorUnit   = "kg CO2e / 2022 USD"
	factorSource = "EPA Supply Chain GHG Emission Factors v1.3"
)

func newFactorsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "Join EPA NAICS emission factors onto HS6 codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := a.censusPairs()
			if err != nil {
				return err
			}
			conc := concordance.Build(pairs)

			f, err := a.open(a.cfg.EPAFactors)
			if err != nil {
				return err
			}
			defer f.Close()
			rows, err := ingest.ReadEPAFactors(f)
			if err != nil {
				return err
			}
			table := make(map[string]factors.NAICSFactor, len(rows))
			for _, r := range rows {
				table[r.NAICS] = factors.NAICSFactor{
					Description:          r.Title,
					Factor:               r.Factor,
					FactorWithoutMargins: r.FactorWithoutMargins,
					Margins:              r.Margins,
				}
			}

			joined := factors.Join(conc, table, factorUnit, factorSource)
			size, err := a.writeDoc("emission-factors.json", joined)
			if err != nil {
				return err
			}
			a.log.Info("emission factors built",
				"naics_sectors", len(table),
				"hs6_codes", len(conc.Forward),
				"matched", len(joined),
				"bytes", size,
			)
			return nil
		},
	}
}
