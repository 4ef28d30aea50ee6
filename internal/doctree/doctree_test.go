package doctree

import "testing"

func sample() *Node {
	return NewRoot(
		NewHeading(1, NewText(" Intro "), NewElement("em", nil, NewText("duction"))),
		NewElement("p", map[string]string{"class": "lead"}, NewText("body")),
	)
}

func TestTextContent(t *testing.T) {
	h := sample().Children[0]
	if got := h.TextContent(); got != "Introduction" {
		t.Errorf("TextContent = %q, want %q", got, "Introduction")
	}
}

func TestWalk_SkipsChildren(t *testing.T) {
	var kinds []Kind
	Walk(sample(), func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return n.Kind != Heading
	})
	want := []Kind{Root, Heading, Element, Text}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("visit %d: got %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestClone_IsDeep(t *testing.T) {
	orig := sample()
	c := orig.Clone()

	c.Children[1].SetProp("class", "changed")
	c.Children[0].Children[0].Value = "changed"

	if orig.Children[1].Prop("class") != "lead" {
		t.Error("clone shares props with original")
	}
	if orig.Children[0].Children[0].Value != " Intro " {
		t.Error("clone shares text nodes with original")
	}
}

func TestPrependAndProps(t *testing.T) {
	n := NewRoot(NewText("b"))
	n.Prepend(NewText("a"))
	n.Append(NewText("c"))
	if got := n.TextContent(); got != "abc" {
		t.Errorf("TextContent = %q, want %q", got, "abc")
	}

	var e Node
	if e.Prop("id") != "" {
		t.Error("unset prop should be empty")
	}
	e.SetProp("id", "x")
	if e.Prop("id") != "x" {
		t.Errorf("Prop = %q, want %q", e.Prop("id"), "x")
	}
}
