package taxonomy

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCleanCode(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0101.21.00.10", "0101210010"},
		{"0101 21 00", "01012100"},
		{"010121", "010121"},
		{"", ""},
		{"I", "I"},
	}
	for _, tt := range tests {
		if got := CleanCode(tt.in); got != tt.want {
			t.Errorf("CleanCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNodeJSON_LeafOmitsChildren(t *testing.T) {
	n := &Node{ID: "t-010121", Code: "010121", Name: "Breeding", Type: TypeSubheading}
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "children") {
		t.Errorf("leaf must serialize without a children field: %s", data)
	}

	parent := &Node{ID: "t-0101", Code: "0101", Name: "Horses", Type: TypeHeading, Children: []*Node{n}}
	data, err = json.Marshal(parent)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"children"`) {
		t.Errorf("internal node must serialize its children: %s", data)
	}
}

func TestLookupEntryJSON_OriginOmittedWhenNative(t *testing.T) {
	data, err := json.Marshal(LookupEntry{Code: "0101", Description: "Horses", Level: 4})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "origin") {
		t.Errorf("native entries must omit origin fields: %s", data)
	}

	data, err = json.Marshal(LookupEntry{Code: "cn:01012100", Origin: "cn", OriginalCode: "0101 21 00"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"origin":"cn"`) || !strings.Contains(string(data), `"originalCode"`) {
		t.Errorf("composed entries must carry origin fields: %s", data)
	}
}

func TestDeepCopy_Independent(t *testing.T) {
	orig := &Node{
		ID: "a", Code: "01", Name: "chapter",
		Children: []*Node{{ID: "b", Code: "0101", Name: "heading"}},
	}
	c := orig.DeepCopy()
	c.Children[0].Name = "mutated"

	if orig.Children[0].Name != "heading" {
		t.Errorf("copy must not share child nodes with the original")
	}
	if c.ID != "a" || c.Children[0].Code != "0101" {
		t.Errorf("copy must carry the same values: %+v", c)
	}
}

func TestWalk_DocumentOrder(t *testing.T) {
	forest := []*Node{
		{ID: "a", Children: []*Node{{ID: "b"}, {ID: "c", Children: []*Node{{ID: "d"}}}}},
		{ID: "e"},
	}
	var order []string
	Walk(forest, func(n *Node) { order = append(order, n.ID) })

	want := "a b c d e"
	if got := strings.Join(order, " "); got != want {
		t.Errorf("walk order = %q, want %q", got, want)
	}
	if CountNodes(forest) != 5 {
		t.Errorf("CountNodes = %d, want 5", CountNodes(forest))
	}
}
