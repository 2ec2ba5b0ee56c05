package taxonomy

import "strings"

// Node is a recursive entry in a classification tree. Children is nil (not
// empty) for a true leaf so that leaves serialize without a children field.
type Node struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Children []*Node `json:"children,omitempty"`
}

// Node types seen across the supported taxonomies. The set is open: a
// taxonomy may introduce its own tier names (cn8, tariff_10, ...).
const (
	TypeSection    = "section"
	TypeChapter    = "chapter"
	TypeHeading    = "heading"
	TypeSubheading = "subheading"
	TypeGroup      = "group"
)

// LookupEntry is the flat per-code metadata record. Origin and OriginalCode
// are set only on entries contributed by a second taxonomy during
// composition.
type LookupEntry struct {
	Code         string `json:"code"`
	Description  string `json:"description"`
	Section      string `json:"section"`
	SectionName  string `json:"sectionName"`
	Level        int    `json:"level"`
	Type         string `json:"type"`
	Origin       string `json:"origin,omitempty"`
	OriginalCode string `json:"originalCode,omitempty"`
}

// Lookup maps canonical code to its metadata.
type Lookup map[string]LookupEntry

// CleanCode strips dots and spaces, yielding the canonical key form used by
// lookups and concordances. Level is always derived from this form, never
// from tree depth.
func CleanCode(code string) string {
	if !strings.ContainsAny(code, ". ") {
		return code
	}
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if r != '.' && r != ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DeepCopy clones a node and its entire subtree. Grafting attaches the same
// detail subtree under multiple backbone leaves; copies keep their
// identifiers independent.
func (n *Node) DeepCopy() *Node {
	if n == nil {
		return nil
	}
	c := &Node{ID: n.ID, Code: n.Code, Name: n.Name, Type: n.Type}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.DeepCopy()
		}
	}
	return c
}

// Walk visits every node of the forest depth-first in document order.
func Walk(forest []*Node, fn func(*Node)) {
	for _, n := range forest {
		fn(n)
		Walk(n.Children, fn)
	}
}

// CountNodes returns the total node count of the forest.
func CountNodes(forest []*Node) int {
	total := 0
	Walk(forest, func(*Node) { total++ })
	return total
}
