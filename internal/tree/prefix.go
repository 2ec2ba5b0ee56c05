package tree

import (
	"fmt"

	"taxogen/internal/record"
	"taxogen/internal/taxonomy"
)

// CodePrefix assembles sources whose parent code is the record's code with
// its most specific segment stripped. Parents precede children in the
// input. On a parent miss the longest still-known proper prefix wins, so
// taxonomies that skip levels on some branches still attach to the best
// available ancestor.
type CodePrefix struct {
	Namespace string

	// ParentOf derives the parent code from a canonical code; empty means
	// top-level. See PrefixDigits.
	ParentOf func(clean string) string

	// Sections pre-creates top-level group roots. Sources that carry
	// their sections as records (section-typed) leave this nil.
	Sections []Section

	// SectionOf names the top-level group for a record that cannot be
	// attached by prefix. Optional.
	SectionOf func(r record.Record) string

	// AutoChapter synthesizes numbered chapter nodes beneath sections for
	// sources whose data starts at the heading tier.
	AutoChapter bool
}

// PrefixDigits returns a parent deriver for codes whose canonical length
// steps through the given widths, e.g. PrefixDigits(2, 4, 6) for an
// HS-style chapter/heading/subheading ladder.
func PrefixDigits(widths ...int) func(string) string {
	return func(clean string) string {
		for i, w := range widths {
			if len(clean) == w {
				if i == 0 {
					return ""
				}
				return clean[:widths[i-1]]
			}
		}
		return ""
	}
}

func (s CodePrefix) Assemble(records []record.Record) []*taxonomy.Node {
	forest, sections := buildSections(s.Namespace, s.Sections)
	byCode := make(map[string]*taxonomy.Node, len(records))

	for _, r := range records {
		if r.Type == taxonomy.TypeSection {
			n := sectionNode(s.Namespace, r.Code, r.Text)
			sections[r.Code] = n
			// Sources like CPC use plain code digits for their top tier;
			// children resolve them through the prefix index.
			byCode[taxonomy.CleanCode(r.Code)] = n
			forest = append(forest, n)
			continue
		}

		clean := taxonomy.CleanCode(r.Code)
		node := codedNode(s.Namespace, r)

		parent := s.lookupParent(byCode, clean)
		if parent == nil {
			parent = s.topLevelParent(sections, byCode, r, clean)
		}
		if parent != nil {
			parent.Children = append(parent.Children, node)
		} else {
			forest = append(forest, node)
		}
		byCode[clean] = node
	}

	Normalize(forest)
	return forest
}

// lookupParent resolves the derived parent code, falling back to the
// longest known proper prefix when intermediate levels are sparse.
func (s CodePrefix) lookupParent(byCode map[string]*taxonomy.Node, clean string) *taxonomy.Node {
	if p := s.ParentOf(clean); p != "" {
		if n := byCode[p]; n != nil {
			return n
		}
	}
	for i := len(clean) - 1; i > 0; i-- {
		if n := byCode[clean[:i]]; n != nil {
			return n
		}
	}
	return nil
}

// topLevelParent places a record with no known ancestor: under a
// synthesized chapter when enabled, else under its section, else nowhere
// (the caller promotes it to a root).
func (s CodePrefix) topLevelParent(sections, byCode map[string]*taxonomy.Node, r record.Record, clean string) *taxonomy.Node {
	var section *taxonomy.Node
	if s.SectionOf != nil {
		section = sections[s.SectionOf(r)]
	}
	if section == nil && r.Section != "" {
		section = sections[r.Section]
	}

	if s.AutoChapter && len(clean) >= 4 && section != nil {
		chapter := clean[:2]
		ch := byCode[chapter]
		if ch == nil {
			ch = &taxonomy.Node{
				ID:       s.Namespace + "-" + chapter,
				Code:     chapter,
				Name:     fmt.Sprintf("Chapter %s", chapter),
				Type:     taxonomy.TypeChapter,
				Children: []*taxonomy.Node{},
			}
			byCode[chapter] = ch
			section.Children = append(section.Children, ch)
		}
		return ch
	}
	return section
}
