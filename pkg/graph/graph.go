// Package graph provides a dense-index, generic-payload directed
// multigraph. It supplies both the input contract pkg/reduce assumes
// externally (reduce.Input[N]) and the output container the reducer
// constructs its reduced DAG into.
package graph

// NodeIndex identifies a node by its position in a Graph's dense node
// array. Indices are assigned sequentially starting at 0 and are never
// reused.
type NodeIndex int

// Edge is a directed edge between two nodes, identified by index.
type Edge struct {
	From NodeIndex
	To   NodeIndex
}

// Graph is a directed multigraph over payloads of type N. Duplicate edges
// between the same pair of nodes are permitted.
type Graph[N any] struct {
	data         []N
	predecessors [][]NodeIndex
	successors   [][]NodeIndex
	edges        []Edge
}

// New returns an empty graph.
func New[N any]() *Graph[N] {
	return &Graph[N]{}
}

// AddNode appends a new node carrying data and returns its index.
func (g *Graph[N]) AddNode(data N) NodeIndex {
	idx := NodeIndex(len(g.data))
	g.data = append(g.data, data)
	g.predecessors = append(g.predecessors, nil)
	g.successors = append(g.successors, nil)
	return idx
}

// AddEdge records a directed edge from -> to. Both indices must already
// have been returned by AddNode on this graph.
func (g *Graph[N]) AddEdge(from, to NodeIndex) {
	g.edges = append(g.edges, Edge{From: from, To: to})
	g.successors[from] = append(g.successors[from], to)
	g.predecessors[to] = append(g.predecessors[to], from)
}

// Len returns the number of nodes, satisfying pkg/reduce's Input[N]
// contract.
func (g *Graph[N]) Len() int {
	return len(g.data)
}

// Data returns the payload stored at n, satisfying Input[N].
func (g *Graph[N]) Data(n NodeIndex) N {
	return g.data[n]
}

// Predecessors returns the nodes with an edge directed into n, satisfying
// Input[N]. The slice must not be mutated by the caller.
func (g *Graph[N]) Predecessors(n NodeIndex) []NodeIndex {
	return g.predecessors[n]
}

// Successors returns the nodes with an edge directed out of n.
func (g *Graph[N]) Successors(n NodeIndex) []NodeIndex {
	return g.successors[n]
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph[N]) NodeCount() int {
	return len(g.data)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph[N]) EdgeCount() int {
	return len(g.edges)
}

// AllEdges returns every edge recorded in the graph, in insertion order.
// The slice must not be mutated by the caller.
func (g *Graph[N]) AllEdges() []Edge {
	return g.edges
}

// AllNodes returns every node index in the graph, in insertion order.
func (g *Graph[N]) AllNodes() []NodeIndex {
	nodes := make([]NodeIndex, len(g.data))
	for i := range nodes {
		nodes[i] = NodeIndex(i)
	}
	return nodes
}
