package graph

import "testing"

func TestAddNodeAssignsSequentialIndices(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	if a != 0 || b != 1 {
		t.Errorf("got indices %d,%d want 0,1", a, b)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
}

func TestAddEdgeTracksPredecessorsAndSuccessors(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b)

	if preds := g.Predecessors(b); len(preds) != 1 || preds[0] != a {
		t.Errorf("Predecessors(b) = %v, want [a]", preds)
	}
	if succs := g.Successors(a); len(succs) != 1 || succs[0] != b {
		t.Errorf("Successors(a) = %v, want [b]", succs)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestAddEdgeAllowsDuplicates(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b)
	g.AddEdge(a, b)
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if preds := g.Predecessors(b); len(preds) != 2 {
		t.Errorf("Predecessors(b) = %v, want 2 entries", preds)
	}
}

func TestDataRoundTrips(t *testing.T) {
	g := New[string]()
	a := g.AddNode("payload-a")
	if g.Data(a) != "payload-a" {
		t.Errorf("Data(a) = %q, want %q", g.Data(a), "payload-a")
	}
}

func TestAllNodesAndAllEdges(t *testing.T) {
	g := New[int]()
	a := g.AddNode(10)
	b := g.AddNode(20)
	g.AddEdge(a, b)

	nodes := g.AllNodes()
	if len(nodes) != 2 || nodes[0] != a || nodes[1] != b {
		t.Errorf("AllNodes() = %v", nodes)
	}
	edges := g.AllEdges()
	if len(edges) != 1 || edges[0] != (Edge{From: a, To: b}) {
		t.Errorf("AllEdges() = %v", edges)
	}
}
