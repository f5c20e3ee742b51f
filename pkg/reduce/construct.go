package reduce

import "github.com/graphreduce/graphreduce/pkg/graph"

// adjacency maps a canonical cycle-head node to the canonical heads of
// every node that reached it during classification — either its DFS-tree
// parent (the node that opened it) or the opener of a cross edge whose
// already-Black target canonicalizes to the head. The first entry
// inserted for a head is its post-collapse parent.
type adjacency struct {
	order []graph.NodeIndex         // insertion order of keys, for determinism
	lists map[graph.NodeIndex][]graph.NodeIndex
}

func newAdjacency() *adjacency {
	return &adjacency{lists: make(map[graph.NodeIndex][]graph.NodeIndex)}
}

func (a *adjacency) add(head, src graph.NodeIndex) {
	list, ok := a.lists[head]
	if !ok {
		a.order = append(a.order, head)
	}
	for _, s := range list {
		if s == src {
			return
		}
	}
	a.lists[head] = append(list, src)
}

// construct canonicalizes the classifier's recorded edges through the
// union-find, decides which nodes survive into the reduced graph, and
// emits the reduced edge set.
func construct[N any](input Input[N], uf canonicalizer, dag *Dag, startNodes []graph.NodeIndex) *graph.Graph[N] {
	adj := newAdjacency()

	// Step 1: canonicalize (opener, child) for every node's DFS-tree
	// parent edge plus every recorded cross edge. Self edges (opener and
	// child canonicalize to the same head) carry no information and are
	// dropped.
	for i := 0; i < input.Len(); i++ {
		addCanonical(adj, uf, dag.parents[graph.NodeIndex(i)], graph.NodeIndex(i))
	}
	for _, e := range dag.crossEdges {
		addCanonical(adj, uf, e.from, e.to)
	}

	// Step 2: decide which canonical heads are retained: start nodes,
	// leaves, and any head that more than one distinct source reaches.
	retain := make(map[graph.NodeIndex]bool)
	for _, s := range startNodes {
		retain[graph.NodeIndex(uf.Find(int(s)))] = true
	}
	for _, l := range dag.leaves {
		retain[graph.NodeIndex(uf.Find(int(l)))] = true
	}
	for _, head := range adj.order {
		if len(adj.lists[head]) >= 2 {
			retain[head] = true
		}
	}

	out := graph.New[N]()
	outIndex := make(map[graph.NodeIndex]graph.NodeIndex, len(retain))
	for head := range retain {
		outIndex[head] = out.AddNode(input.Data(head))
	}

	// Step 3: chase a non-retained head's post-collapse parent (its
	// first-recorded adjacency source) until a retained ancestor is
	// found.
	retainedAncestor := func(n graph.NodeIndex) graph.NodeIndex {
		for !retain[n] {
			parents := adj.lists[n]
			n = parents[0]
		}
		return outIndex[n]
	}

	// Step 4: for every retained head t, add an edge from t to the
	// retained ancestor of each node that reached it.
	for _, t := range adj.order {
		sources := adj.lists[t]
		if !retain[t] {
			continue
		}
		tIdx := outIndex[t]
		for _, s := range sources {
			out.AddEdge(tIdx, retainedAncestor(s))
		}
	}

	return out
}

// canonicalizer is the subset of unionfind.UnionFind that construct
// needs; it is an interface so reduce's tests can exercise construct
// independent of unionfind's storage layout.
type canonicalizer interface {
	Find(x int) int
}

func addCanonical(adj *adjacency, uf canonicalizer, opener, child graph.NodeIndex) {
	headOpener := graph.NodeIndex(uf.Find(int(opener)))
	headChild := graph.NodeIndex(uf.Find(int(child)))
	if headOpener == headChild {
		return
	}
	adj.add(headChild, headOpener)
}
