package compose

import (
	"sort"
	"strings"

	"taxogen/internal/concordance"
	"taxogen/internal/taxonomy"
)

// detailIndex gives code-addressed and level-addressed access to the
// detail taxonomy's nodes.
type detailIndex struct {
	byCode  map[string]*taxonomy.Node
	byLevel map[int][]*taxonomy.Node // document order
	levels  []int                    // ascending distinct code lengths
}

func indexDetail(forest []*taxonomy.Node) *detailIndex {
	idx := &detailIndex{
		byCode:  make(map[string]*taxonomy.Node),
		byLevel: make(map[int][]*taxonomy.Node),
	}
	taxonomy.Walk(forest, func(n *taxonomy.Node) {
		if n.Type == taxonomy.TypeSection || n.Code == "" {
			return
		}
		clean := taxonomy.CleanCode(n.Code)
		if _, seen := idx.byCode[clean]; !seen {
			idx.byCode[clean] = n
		}
		if len(idx.byLevel[len(clean)]) == 0 {
			idx.levels = append(idx.levels, len(clean))
		}
		idx.byLevel[len(clean)] = append(idx.byLevel[len(clean)], n)
	})
	sort.Ints(idx.levels)
	return idx
}

// finerLevels returns up to two code lengths strictly finer than w.
func (idx *detailIndex) finerLevels(w int) []int {
	var out []int
	for _, l := range idx.levels {
		if l > w {
			out = append(out, l)
			if len(out) == 2 {
				break
			}
		}
	}
	return out
}

// resolve finds the detail subtrees to graft beneath a backbone leaf.
// For each concordance target it tries a direct code match, then a
// zero-extended match at each finer tier; failing those it scans the next
// finer level, then the one after, for codes prefixed by the leaf's own
// code. The first non-empty result wins.
func (idx *detailIndex) resolve(leafClean string, targets []concordance.Link) []*taxonomy.Node {
	for _, t := range targets {
		if n := idx.byCode[t.Code]; n != nil {
			return []*taxonomy.Node{n}
		}
		for _, w := range idx.finerLevels(len(t.Code)) {
			padded := t.Code + strings.Repeat("0", w-len(t.Code))
			if n := idx.byCode[padded]; n != nil {
				return []*taxonomy.Node{n}
			}
		}
	}
	for _, w := range idx.finerLevels(len(leafClean)) {
		var found []*taxonomy.Node
		for _, n := range idx.byLevel[w] {
			if strings.HasPrefix(taxonomy.CleanCode(n.Code), leafClean) {
				found = append(found, n)
			}
		}
		if len(found) > 0 {
			return found
		}
	}
	return nil
}

// Nested grafts detail subtrees beneath the backbone's leaves. The whole
// backbone is deep-copied and re-keyed first, seeding the used-identifier
// set, so every grafted identifier is checked against the backbone's own.
// Only leaves under a detail-bearing top-level group are considered; a
// leaf with no resolvable match keeps its leaf status, which is the
// expected outcome for concordance gaps. A grafted backbone leaf becomes
// an internal node. The composed lookup is the backbone's plus one
// marker-prefixed entry per grafted node.
func Nested(comp Composite, backbone, detail Part, conc *concordance.Mapping, detailGroups map[string]bool) ([]*taxonomy.Node, taxonomy.Lookup) {
	used := make(idSet)
	var forest []*taxonomy.Node
	for _, root := range backbone.Forest {
		c := root.DeepCopy()
		rekeyTree(c, backbone.Prefix, comp.Prefix, used)
		forest = append(forest, c)
	}

	lk := make(taxonomy.Lookup, len(backbone.Lookup))
	for code, e := range backbone.Lookup {
		lk[code] = e
	}

	idx := indexDetail(detail.Forest)
	usedKeys := make(idSet)

	graft := func(leaf *taxonomy.Node) {
		clean := taxonomy.CleanCode(leaf.Code)
		var targets []concordance.Link
		if conc != nil {
			targets = conc.Forward[clean]
		}
		matches := idx.resolve(clean, targets)
		for _, m := range matches {
			c := m.DeepCopy()
			rekeyTree(c, detail.Prefix, comp.Prefix, used)
			leaf.Children = append(leaf.Children, c)

			taxonomy.Walk([]*taxonomy.Node{c}, func(n *taxonomy.Node) {
				if n.Code == "" {
					return
				}
				key := usedKeys.claim(comp.Marker + taxonomy.CleanCode(n.Code))
				e, ok := detail.Lookup[n.Code]
				if !ok {
					e = taxonomy.LookupEntry{
						Description: n.Name,
						Level:       len(taxonomy.CleanCode(n.Code)),
						Type:        n.Type,
					}
				}
				e.Code = key
				e.Origin = detail.Name
				e.OriginalCode = n.Code
				lk[key] = e
			})
		}
	}

	var walk func(nodes []*taxonomy.Node, top string)
	walk = func(nodes []*taxonomy.Node, top string) {
		for _, n := range nodes {
			if top == "" {
				// Top-level group context comes from the root list.
				walk(n.Children, n.Code)
				continue
			}
			if len(n.Children) == 0 && n.Code != "" && detailGroups[top] {
				graft(n)
				continue
			}
			walk(n.Children, top)
		}
	}
	walk(forest, "")

	return forest, lk
}
