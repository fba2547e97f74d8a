package graph

import (
	"reflect"
	"testing"
)

func TestGraph_AddNode_UpsertKeepsOrder(t *testing.T) {
	g := New()
	g.AddNode(&Node{ID: "a", FontSize: 10})
	g.AddNode(&Node{ID: "b", FontSize: 11})
	g.AddNode(&Node{ID: "a", FontSize: 12})

	if g.NodeCount() != 2 {
		t.Fatalf("expected 2 nodes, got %d", g.NodeCount())
	}

	nodes := g.Nodes()
	if nodes[0].ID != "a" || nodes[1].ID != "b" {
		t.Errorf("expected insertion order [a b], got [%s %s]", nodes[0].ID, nodes[1].ID)
	}
	if nodes[0].FontSize != 12 {
		t.Errorf("expected re-add to replace attributes, got font size %v", nodes[0].FontSize)
	}
}

func TestGraph_AddEdge_IgnoresDuplicates(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")

	want := []Edge{{From: "a", To: "b"}, {From: "a", To: "c"}}
	if got := g.Edges(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGraph_ChildrenAndParents(t *testing.T) {
	g := New()
	g.AddEdge("root", "a")
	g.AddEdge("root", "b")
	g.AddEdge("a", "c")

	if got := g.Children("root"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("expected children [a b], got %v", got)
	}
	if got := g.Parents("c"); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("expected parents [a], got %v", got)
	}
	if got := g.Children("b"); got != nil {
		t.Errorf("expected no children for leaf, got %v", got)
	}
}

func TestGraph_Outline(t *testing.T) {
	g := New()
	g.AddNode(&Node{ID: "doc", Level: 0})
	g.AddNode(&Node{ID: "Chapter 1", Level: 1})
	g.AddNode(&Node{ID: "Section 1.1", Level: 2})
	g.AddNode(&Node{ID: "Chapter 2", Level: 1})

	want := "doc\n  Chapter 1\n    Section 1.1\n  Chapter 2\n"
	if got := g.Outline(); got != want {
		t.Errorf("expected outline %q, got %q", want, got)
	}
}
