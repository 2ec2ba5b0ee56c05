package tree

import (
	"taxogen/internal/record"
	"taxogen/internal/taxonomy"
)

// ExplicitParent assembles sources that state each record's direct parent
// code. Records whose parent is unknown are promoted beneath their stated
// section; records without even that become roots. Nothing is dropped.
type ExplicitParent struct {
	Namespace string
	Sections  []Section
}

func (s ExplicitParent) Assemble(records []record.Record) []*taxonomy.Node {
	forest, sections := buildSections(s.Namespace, s.Sections)
	byCode := make(map[string]*taxonomy.Node, len(records))

	for _, r := range records {
		node := codedNode(s.Namespace, r)
		switch {
		case r.Parent != "" && byCode[taxonomy.CleanCode(r.Parent)] != nil:
			parent := byCode[taxonomy.CleanCode(r.Parent)]
			parent.Children = append(parent.Children, node)
		case r.Section != "" && sections[r.Section] != nil:
			sections[r.Section].Children = append(sections[r.Section].Children, node)
		default:
			forest = append(forest, node)
		}
		byCode[taxonomy.CleanCode(r.Code)] = node
	}

	Normalize(forest)
	return forest
}
