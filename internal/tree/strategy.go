// Package tree assembles normalized records into classification forests.
// Three strategies exist, selected once per taxonomy: explicit-parent,
// code-prefix, and indentation-stack. All share one contract and finish
// with the same structural normalization, so leaf status is structural
// rather than an artifact of an unused container.
package tree

import (
	"fmt"
	"hash/fnv"

	"taxogen/internal/record"
	"taxogen/internal/taxonomy"
)

// Strategy turns an ordered record sequence into a forest.
type Strategy interface {
	Assemble(records []record.Record) []*taxonomy.Node
}

// Section is one pre-created top-level group root.
type Section struct {
	Code string
	Name string
}

// Normalize recursively drops empty children collections so leaves carry
// no children field at all.
func Normalize(forest []*taxonomy.Node) {
	for _, n := range forest {
		if len(n.Children) == 0 {
			n.Children = nil
			continue
		}
		Normalize(n.Children)
	}
}

// sectionNode builds a namespaced top-level group root. Lower-case labels
// from the published tables are title-cased.
func sectionNode(ns, code, name string) *taxonomy.Node {
	return &taxonomy.Node{
		ID:       ns + "-section-" + code,
		Code:     code,
		Name:     record.TitleLabel(name),
		Type:     taxonomy.TypeSection,
		Children: []*taxonomy.Node{},
	}
}

// codedNode builds a namespaced node for a record carrying a code.
func codedNode(ns string, r record.Record) *taxonomy.Node {
	n := &taxonomy.Node{
		ID:   ns + "-" + taxonomy.CleanCode(r.Code),
		Code: r.Code,
		Name: r.Text,
		Type: r.Type,
	}
	if r.Container {
		n.Children = []*taxonomy.Node{}
	}
	return n
}

// groupID derives a stable identifier for a codeless grouping row from its
// stack depth and description.
func groupID(ns string, depth int, text string) string {
	h := fnv.New32a()
	h.Write([]byte(text))
	return fmt.Sprintf("%s-group-%d-%d", ns, depth, h.Sum32()%100000)
}

// buildSections creates the pre-seeded section roots in table order and
// returns both the root list and the code index.
func buildSections(ns string, sections []Section) ([]*taxonomy.Node, map[string]*taxonomy.Node) {
	forest := make([]*taxonomy.Node, 0, len(sections))
	index := make(map[string]*taxonomy.Node, len(sections))
	for _, s := range sections {
		n := sectionNode(ns, s.Code, s.Name)
		index[s.Code] = n
		forest = append(forest, n)
	}
	return forest, index
}
