package main

import (
	"github.com/spf13/cobra"

	"taxogen/internal/compose"
	"taxogen/internal/taxonomy"
)

// cpcServiceSections are the CPC top-level sections outside HS's goods
// coverage: constructions and the service sections.
var cpcServiceSections = map[string]bool{
	"5": true, "6": true, "7": true, "8": true, "9": true,
}

func newComposeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compose",
		Short: "Build the composed virtual taxonomies (hsplus, hscn)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.composeHSPlus(); err != nil {
				return err
			}
			return a.composeHSCN()
		},
	}
}

// composeHSPlus extends HS with CPC's service sections as siblings: the
// whole HS tree plus the CPC subtrees whose single-character section code
// is a service section.
func (a *app) composeHSPlus() error {
	hs, err := buildHS(a)
	if err != nil {
		return err
	}
	cpc, err := buildCPC(a)
	if err != nil {
		return err
	}

	forest, lk := compose.Sibling(
		compose.Composite{Name: "hsplus", Prefix: "hsplus", Marker: "cpc:"},
		compose.Part{Name: "hs", Prefix: "hs", Forest: hs.forest, Lookup: hs.lookup.Lookup},
		compose.Part{Name: "cpc", Prefix: "cpc", Forest: cpc.forest, Lookup: cpc.lookup.Lookup},
		func(topCode string) bool { return cpcServiceSections[topCode] },
	)
	return a.writeComposite("hsplus", forest, lk)
}

// composeHSCN grafts CN's 8-digit detail beneath HS's subheading leaves.
// The two taxonomies share code syntax through six digits, so resolution
// runs on prefix matching alone; every HS section bears detail.
func (a *app) composeHSCN() error {
	hs, err := buildHS(a)
	if err != nil {
		return err
	}
	cn, err := buildCN(a)
	if err != nil {
		return err
	}

	detailGroups := make(map[string]bool)
	for _, root := range hs.forest {
		detailGroups[root.Code] = true
	}

	forest, lk := compose.Nested(
		compose.Composite{Name: "hscn", Prefix: "hscn", Marker: "cn:"},
		compose.Part{Name: "hs", Prefix: "hs", Forest: hs.forest, Lookup: hs.lookup.Lookup},
		compose.Part{Name: "cn", Prefix: "cn", Forest: cn.forest, Lookup: cn.lookup.Lookup},
		nil,
		detailGroups,
	)
	return a.writeComposite("hscn", forest, lk)
}

func (a *app) writeComposite(name string, forest []*taxonomy.Node, lk taxonomy.Lookup) error {
	treeBytes, err := a.writeDoc(name+"-tree.json", forest)
	if err != nil {
		return err
	}
	lookupBytes, err := a.writeDoc(name+"-lookup.json", lk)
	if err != nil {
		return err
	}
	a.log.Info("composite built",
		"taxonomy", name,
		"nodes", taxonomy.CountNodes(forest),
		"codes", len(lk),
		"tree_bytes", treeBytes,
		"lookup_bytes", lookupBytes,
	)
	return nil
}
