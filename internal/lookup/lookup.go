// Package lookup flattens an assembled forest into the per-code metadata
// map. Traversal threads the nearest enclosing section as an explicit
// accumulator; nothing is stored on the nodes themselves.
package lookup

import (
	"taxogen/internal/taxonomy"
)

// Result carries the flat lookup plus any duplicate codes encountered.
// Duplicates must not occur in a well-formed taxonomy; when they do, the
// last-visited entry wins and the code is reported here for the driver to
// log rather than disappearing silently.
type Result struct {
	Lookup     taxonomy.Lookup
	Duplicates []string
}

// Build walks the forest depth-first and emits one entry per node owning a
// non-empty code, excluding section roots (addressable only through the
// tree). Level comes from the canonical code length, not tree depth, since
// depth can be discontinuous where intermediate levels are sparse.
func Build(forest []*taxonomy.Node) Result {
	res := Result{Lookup: make(taxonomy.Lookup)}
	walk(forest, "", "", &res)
	return res
}

func walk(nodes []*taxonomy.Node, section, sectionName string, res *Result) {
	for _, n := range nodes {
		section, sectionName := section, sectionName
		if n.Type == taxonomy.TypeSection {
			section = n.Code
			sectionName = n.Name
		} else if n.Code != "" {
			clean := taxonomy.CleanCode(n.Code)
			if _, dup := res.Lookup[n.Code]; dup {
				res.Duplicates = append(res.Duplicates, n.Code)
			}
			res.Lookup[n.Code] = taxonomy.LookupEntry{
				Code:        n.Code,
				Description: n.Name,
				Section:     section,
				SectionName: sectionName,
				Level:       len(clean),
				Type:        n.Type,
			}
		}
		walk(n.Children, section, sectionName, res)
	}
}
