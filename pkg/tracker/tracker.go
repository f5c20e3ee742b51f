// Package tracker provides an incremental-computation dependency tracker
// built on top of pkg/reduce: callers declare which work-products depend on
// which inputs or other work-products, designate a set of outputs, and ask
// which inputs are upstream of which retained work-product after a change.
package tracker

import (
	"sort"

	"github.com/graphreduce/graphreduce/pkg/graph"
	"github.com/graphreduce/graphreduce/pkg/reduce"
)

// Stats summarizes a reduction: how much the declared dependency graph
// shrank once reduced down to the nodes reachable from the requested
// outputs.
type Stats struct {
	NodeCount        int
	EdgeCount        int
	ReducedNodeCount int
	ReducedEdgeCount int
}

// Tracker accumulates declared dependency edges between named inputs and
// work-products and reduces them on demand.
type Tracker struct {
	ids  map[string]graph.NodeIndex
	g    *graph.Graph[string]
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{
		ids: make(map[string]graph.NodeIndex),
		g:   graph.New[string](),
	}
}

func (t *Tracker) nodeFor(name string) graph.NodeIndex {
	if idx, ok := t.ids[name]; ok {
		return idx
	}
	idx := t.g.AddNode(name)
	t.ids[name] = idx
	return idx
}

// Declare registers that workProduct depends on upstream, where upstream
// may itself be another work-product or a raw input. Both names are
// created on first use.
func (t *Tracker) Declare(workProduct, upstream string) {
	to := t.nodeFor(workProduct)
	from := t.nodeFor(upstream)
	t.g.AddEdge(from, to)
}

// ReducedGraph is the output of Reduce: a DAG of SCC-representative
// names small enough to diff cheaply across rebuilds.
type ReducedGraph struct {
	g *graph.Graph[string]
}

// Nodes returns every retained node name, sorted for deterministic
// iteration.
func (r *ReducedGraph) Nodes() []string {
	names := make([]string, 0, r.g.NodeCount())
	for _, n := range r.g.AllNodes() {
		names = append(names, r.g.Data(n))
	}
	sort.Strings(names)
	return names
}

// Edges returns every retained edge as (from, to) name pairs.
func (r *ReducedGraph) Edges() [][2]string {
	out := make([][2]string, 0, r.g.EdgeCount())
	for _, e := range r.g.AllEdges() {
		out = append(out, [2]string{r.g.Data(e.From), r.g.Data(e.To)})
	}
	return out
}

// Reduce runs the classify/construct reduction over every edge declared
// so far, rooted at outputs. Outputs not yet declared via Declare are
// treated as isolated, single-node outputs.
func (t *Tracker) Reduce(outputs []string) (*ReducedGraph, Stats, error) {
	starts := make([]graph.NodeIndex, len(outputs))
	for i, name := range outputs {
		starts[i] = t.nodeFor(name)
	}

	out, err := reduce.New[string](t.g, starts).Compute()
	if err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{
		NodeCount:        t.g.NodeCount(),
		EdgeCount:        t.g.EdgeCount(),
		ReducedNodeCount: out.NodeCount(),
		ReducedEdgeCount: out.EdgeCount(),
	}
	return &ReducedGraph{g: out}, stats, nil
}

// Stale walks a reduced graph's edges to report which retained
// work-products are transitively downstream of any of changedInputs.
func Stale(reduced *ReducedGraph, changedInputs []string) []string {
	downstream := make(map[string][]string) // from -> []to
	for _, e := range reduced.Edges() {
		downstream[e[0]] = append(downstream[e[0]], e[1])
	}

	affected := make(map[string]bool)
	queue := append([]string(nil), changedInputs...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, next := range downstream[n] {
			if !affected[next] {
				affected[next] = true
				queue = append(queue, next)
			}
		}
	}

	out := make([]string, 0, len(affected))
	for n := range affected {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
