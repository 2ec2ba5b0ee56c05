// Package compose builds virtual taxonomies out of two assembled ones:
// sibling composition concatenates disjoint subtrees, nested composition
// grafts one taxonomy's detail subtrees beneath another's leaves. Every
// node placed in a composite is a deep copy re-keyed to the composite
// namespace, and node identifiers are globally unique per composite.
package compose

import (
	"strconv"
	"strings"

	"taxogen/internal/taxonomy"
)

// Part is one input taxonomy: its name, its id namespace prefix, and its
// assembled forest plus flat lookup.
type Part struct {
	Name   string
	Prefix string
	Forest []*taxonomy.Node
	Lookup taxonomy.Lookup
}

// Composite names the output taxonomy. Marker prefixes the lookup keys of
// entries contributed by the detail side, so they cannot collide with the
// backbone's native codes.
type Composite struct {
	Name   string
	Prefix string
	Marker string
}

// idSet tracks identifiers already placed in a composite and hands out
// deterministic -d2, -d3, ... suffixes on collision.
type idSet map[string]bool

// claim returns id itself when free, else the first free suffixed form.
func (s idSet) claim(id string) string {
	if !s[id] {
		s[id] = true
		return id
	}
	for n := 2; ; n++ {
		cand := id + "-d" + strconv.Itoa(n)
		if !s[cand] {
			s[cand] = true
			return cand
		}
	}
}

// rekeyID swaps the source namespace prefix for the composite's.
func rekeyID(id, old, new string) string {
	if rest, ok := strings.CutPrefix(id, old+"-"); ok {
		return new + "-" + rest
	}
	return new + "-" + id
}

// rekeyTree re-keys every identifier in a subtree into the composite
// namespace, claiming each against the used set.
func rekeyTree(n *taxonomy.Node, old, new string, used idSet) {
	n.ID = used.claim(rekeyID(n.ID, old, new))
	for _, c := range n.Children {
		rekeyTree(c, old, new, used)
	}
}

// Sibling concatenates the whole backbone with the detail subtrees whose
// top-level code passes keep. The composed lookup holds backbone entries
// under their native codes and kept detail entries under marker-prefixed
// keys tagged with their origin.
func Sibling(comp Composite, backbone, detail Part, keep func(topCode string) bool) ([]*taxonomy.Node, taxonomy.Lookup) {
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

	usedKeys := make(idSet)
	for _, root := range detail.Forest {
		if !keep(root.Code) {
			continue
		}
		c := root.DeepCopy()
		rekeyTree(c, detail.Prefix, comp.Prefix, used)
		forest = append(forest, c)

		taxonomy.Walk([]*taxonomy.Node{root}, func(n *taxonomy.Node) {
			if n.Code == "" {
				return
			}
			e, ok := detail.Lookup[n.Code]
			if !ok {
				return
			}
			key := usedKeys.claim(comp.Marker + taxonomy.CleanCode(n.Code))
			e.Code = key
			e.Origin = detail.Name
			e.OriginalCode = n.Code
			lk[key] = e
		})
	}

	return forest, lk
}
