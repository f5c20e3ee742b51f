package reduce

import "github.com/graphreduce/graphreduce/pkg/graph"

// colorState is a node's DFS visitation state during classification.
type colorState int8

const (
	white colorState = iota
	grey
	black
)

// edge is a directed pair of node indices recorded during classification,
// in "opener -> discovered" order: parent edges record (dfs-parent,
// dfs-child), cross edges record (opener, already-black target).
type edge struct {
	from graph.NodeIndex
	to   graph.NodeIndex
}

// Dag is the summary classification produces: enough information for
// construct to build the reduced graph, without yet canonicalizing
// through the union-find.
type Dag struct {
	// parents[i] is i's DFS-tree parent. A start node or any node whose
	// DFS-tree parent was never assigned (unreached) has parents[i] == i.
	parents []graph.NodeIndex

	// leaves holds every node classification found to have no
	// predecessors that participate in the walk.
	leaves []graph.NodeIndex

	// crossEdges holds every (opener, child) pair where child was
	// already Black when opener examined it.
	crossEdges []edge
}
