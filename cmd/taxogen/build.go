package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"taxogen/internal/ingest"
	"taxogen/internal/lookup"
	"taxogen/internal/record"
	"taxogen/internal/refdata"
	"taxogen/internal/taxonomy"
	"taxogen/internal/tree"
)

// built is one finished taxonomy ready to serialize.
type built struct {
	name    string
	records int
	forest  []*taxonomy.Node
	lookup  lookup.Result
}

type builderFunc func(a *app) (*built, error)

var builders = map[string]builderFunc{
	"hs":  buildHS,
	"cpc": buildCPC,
	"cn":  buildCN,
	"hts": buildHTS,
	"ca":  buildCA,
}

// buildOrder keeps output deterministic when building everything.
var buildOrder = []string{"hs", "cpc", "cn", "hts", "ca"}

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build [taxonomy...]",
		Short: "Build tree and lookup documents (hs, cpc, cn, hts, ca)",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = buildOrder
			}
			var failed []error
			for _, name := range names {
				b, ok := builders[name]
				if !ok {
					return fmt.Errorf("unknown taxonomy %q", name)
				}
				if err := a.buildOne(name, b); err != nil {
					a.log.Error("taxonomy build failed", "taxonomy", name, "error", err)
					failed = append(failed, fmt.Errorf("%s: %w", name, err))
				}
			}
			return errors.Join(failed...)
		},
	}
}

// buildOne runs the normalize/assemble/index pipeline for one taxonomy and
// writes its two documents.
func (a *app) buildOne(name string, build builderFunc) error {
	b, err := build(a)
	if err != nil {
		return err
	}
	for _, dup := range b.lookup.Duplicates {
		a.log.Warn("duplicate code, last entry kept", "taxonomy", name, "code", dup)
	}

	treeBytes, err := a.writeDoc(name+"-tree.json", b.forest)
	if err != nil {
		return err
	}
	lookupBytes, err := a.writeDoc(name+"-lookup.json", b.lookup.Lookup)
	if err != nil {
		return err
	}

	a.log.Info("taxonomy built",
		"taxonomy", name,
		"records", b.records,
		"nodes", taxonomy.CountNodes(b.forest),
		"codes", len(b.lookup.Lookup),
		"tree_bytes", treeBytes,
		"lookup_bytes", lookupBytes,
	)
	return nil
}

func (a *app) writeDoc(filename string, v any) (int64, error) {
	return ingest.WriteDocument(filepath.Join(a.cfg.OutDir, filename), v)
}

func (a *app) open(filename string) (*os.File, error) {
	return os.Open(filepath.Join(a.cfg.RawDir, filename))
}

// loadSections reads the shared section table. It is a required input for
// the HS-derived taxonomies; a missing or empty table aborts the build.
func (a *app) loadSections(withSpecial bool) ([]tree.Section, error) {
	f, err := a.open(a.cfg.HSSections)
	if err != nil {
		return nil, fmt.Errorf("section table: %w", err)
	}
	defer f.Close()
	rows, err := ingest.ReadSections(f)
	if err != nil {
		return nil, fmt.Errorf("section table: %w", err)
	}
	sections := make([]tree.Section, 0, len(rows)+1)
	seen := make(map[string]bool, len(rows))
	for _, r := range rows {
		sections = append(sections, tree.Section{Code: r.Code, Name: r.Name})
		seen[r.Code] = true
	}
	if withSpecial && !seen[refdata.SpecialSectionCode] {
		sections = append(sections, tree.Section{
			Code: refdata.SpecialSectionCode,
			Name: refdata.SpecialSectionName,
		})
	}
	return sections, nil
}

// chapterSection names the section for a 2-digit chapter, defaulting into
// section I like the original schedule data does for malformed chapters.
func chapterSection(chapter string) string {
	if s, ok := refdata.ChapterSection[chapter]; ok {
		return s
	}
	return "I"
}

func buildHS(a *app) (*built, error) {
	sections, err := a.loadSections(false)
	if err != nil {
		return nil, err
	}
	f, err := a.open(a.cfg.HSCodes)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ingest.ReadHSCodes(f)
	if err != nil {
		return nil, err
	}

	records := record.FromHS(rows)
	forest := tree.ExplicitParent{Namespace: "hs", Sections: sections}.Assemble(records)
	return &built{name: "hs", records: len(records), forest: forest, lookup: lookup.Build(forest)}, nil
}

func buildCPC(a *app) (*built, error) {
	f, err := a.open(a.cfg.CPCStructure)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ingest.ReadCPCStructure(f)
	if err != nil {
		return nil, err
	}

	records := record.FromCPC(rows)
	forest := tree.CodePrefix{
		Namespace: "cpc",
		ParentOf:  tree.PrefixDigits(1, 2, 3, 4, 5),
	}.Assemble(records)
	return &built{name: "cpc", records: len(records), forest: forest, lookup: lookup.Build(forest)}, nil
}

func buildCN(a *app) (*built, error) {
	f, err := a.open(a.cfg.CNWorkbook)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ingest.ReadCNWorkbook(f)
	if err != nil {
		return nil, err
	}

	records := record.FromCN(rows)
	forest := tree.CodePrefix{
		Namespace: "cn",
		ParentOf:  tree.PrefixDigits(2, 4, 6, 8),
		SectionOf: func(r record.Record) string { return r.Section },
	}.Assemble(records)
	return &built{name: "cn", records: len(records), forest: forest, lookup: lookup.Build(forest)}, nil
}

func buildHTS(a *app) (*built, error) {
	sections, err := a.loadSections(true)
	if err != nil {
		return nil, err
	}
	f, err := a.open(a.cfg.HTSExport)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ingest.ReadHTSExport(f)
	if err != nil {
		return nil, err
	}

	records := record.FromHTS(rows)
	forest := tree.IndentStack{
		Namespace: "hts",
		Sections:  sections,
		SectionOf: chapterSection,
	}.Assemble(records)
	return &built{name: "hts", records: len(records), forest: forest, lookup: lookup.Build(forest)}, nil
}

func buildCA(a *app) (*built, error) {
	sections, err := a.loadSections(true)
	if err != nil {
		return nil, err
	}
	f, err := a.open(a.cfg.TariffExport)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ingest.ReadTariffExport(f)
	if err != nil {
		return nil, err
	}

	records := record.FromTariff(rows)
	forest := tree.CodePrefix{
		Namespace:   "ca",
		ParentOf:    tree.PrefixDigits(2, 4, 5, 8, 10),
		Sections:    sections,
		SectionOf:   func(r record.Record) string { return chapterSection(taxonomy.CleanCode(r.Code)[:2]) },
		AutoChapter: true,
	}.Assemble(records)
	return &built{name: "ca", records: len(records), forest: forest, lookup: lookup.Build(forest)}, nil
}
