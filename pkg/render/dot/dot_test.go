package dot

import (
	"strings"
	"testing"

	"github.com/graphreduce/graphreduce/pkg/graph"
)

func TestToDOTIncludesNodesAndEdges(t *testing.T) {
	g := graph.New[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	g.AddEdge(a, b)

	out := ToDOT(g, Options{})
	if !strings.Contains(out, `"A"`) || !strings.Contains(out, `"B"`) {
		t.Errorf("ToDOT output missing node labels: %s", out)
	}
	if !strings.Contains(out, `"A" -> "B"`) {
		t.Errorf("ToDOT output missing edge: %s", out)
	}
	if !strings.Contains(out, "rankdir=TB") {
		t.Errorf("ToDOT should default rankdir to TB: %s", out)
	}
}

func TestToDOTRespectsRankDir(t *testing.T) {
	g := graph.New[string]()
	g.AddNode("A")

	out := ToDOT(g, Options{RankDir: "LR"})
	if !strings.Contains(out, "rankdir=LR") {
		t.Errorf("ToDOT should honor custom rankdir: %s", out)
	}
}
