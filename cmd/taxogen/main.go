// Command taxogen regenerates the taxonomy tree and lookup documents, the
// concordances between them, the composed virtual taxonomies, and the
// emission factor join. Each subcommand sequences ingest adapters, the
// core builders, and JSON document writes; a taxonomy that fails aborts
// only itself.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"taxogen/internal/config"
)

type app struct {
	cfg config.Config
	log *slog.Logger
}

func main() {
	a := &app{
		log: slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	root := &cobra.Command{
		Use:           "taxogen",
		Short:         "Build classification trees, lookups, and concordances",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.AddCommand(
		newBuildCmd(a),
		newConcordCmd(a),
		newComposeCmd(a),
		newFactorsCmd(a),
	)

	if err := root.Execute(); err != nil {
		a.log.Error("run failed", "error", err)
		os.Exit(1)
	}
}
