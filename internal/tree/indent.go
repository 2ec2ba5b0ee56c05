package tree

import (
	"taxogen/internal/record"
	"taxogen/internal/taxonomy"
)

// IndentStack assembles indent-coded sources. A stack of (indent, node)
// pairs tracks the open ancestors: each record pops entries with indent at
// or above its own, attaches to the remaining top, and is pushed only if
// it can bear children. Depth jumps larger than one level and mixed types
// at the same indent are tolerated; a record with nothing on the stack is
// grouped beneath the section of the most recent chapter seen.
type IndentStack struct {
	Namespace string
	Sections  []Section

	// SectionOf names the section for a 2-digit chapter code. Optional;
	// without it roots stay at forest level.
	SectionOf func(chapter string) string
}

type stackEntry struct {
	indent int
	node   *taxonomy.Node
}

func (s IndentStack) Assemble(records []record.Record) []*taxonomy.Node {
	forest, sections := buildSections(s.Namespace, s.Sections)

	var stack []stackEntry
	currentChapter := ""

	for _, r := range records {
		clean := taxonomy.CleanCode(r.Code)
		if len(clean) == 4 {
			currentChapter = clean[:2]
		}

		node := &taxonomy.Node{
			Code: r.Code,
			Name: r.Text,
			Type: r.Type,
		}
		if clean != "" {
			node.ID = s.Namespace + "-" + clean
		} else {
			node.ID = groupID(s.Namespace, len(stack), r.Text)
		}
		if r.Container {
			node.Children = []*taxonomy.Node{}
		}

		for len(stack) > 0 && stack[len(stack)-1].indent >= r.Indent {
			stack = stack[:len(stack)-1]
		}

		if len(stack) > 0 {
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, node)
		} else {
			chapter := currentChapter
			if chapter == "" && len(clean) >= 2 {
				chapter = clean[:2]
			}
			var sec *taxonomy.Node
			if s.SectionOf != nil {
				sec = sections[s.SectionOf(chapter)]
			}
			if sec != nil {
				sec.Children = append(sec.Children, node)
			} else {
				forest = append(forest, node)
			}
		}

		if r.Container {
			stack = append(stack, stackEntry{indent: r.Indent, node: node})
		}
	}

	Normalize(forest)
	return forest
}
