// Package reduce implements a two-phase directed-multigraph reduction:
// classify nodes via an iterative DFS with interleaved union-find cycle
// collapsing, then construct a reduced DAG over the surviving SCC
// representatives.
//
// Concurrency: a single GraphReduce[N] is used for one Compute call at a
// time. The classify phase is an explicit-stack iterative walk, never
// recursive, so it scales to arbitrarily deep chains without growing the
// Go call stack.
package reduce

import "github.com/graphreduce/graphreduce/pkg/graph"

// Input is the external graph contract this package assumes: a dense,
// index-addressable multigraph whose edges are consulted by walking
// predecessors outward from a set of output nodes. *graph.Graph[N]
// satisfies this directly.
type Input[N any] interface {
	Len() int
	Predecessors(n graph.NodeIndex) []graph.NodeIndex
	Data(n graph.NodeIndex) N
}

// GraphReduce runs the classify/construct reduction over a single Input.
// Construct it with New and call Compute once per distinct start-node
// set; re-running Compute on the same GraphReduce after mutating the
// underlying Input produces undefined results.
type GraphReduce[N any] struct {
	input      Input[N]
	startNodes []graph.NodeIndex
}

// New returns a GraphReduce over input, rooted at startNodes: the
// outputs whose transitive predecessors must be preserved.
func New[N any](input Input[N], startNodes []graph.NodeIndex) *GraphReduce[N] {
	return &GraphReduce[N]{input: input, startNodes: startNodes}
}

// Compute runs the full classify-then-construct reduction and returns the
// reduced graph. It returns a non-nil error only when input violates the
// Input[N] contract or a start node lies on a cycle reached from itself;
// such errors are never recoverable and Compute makes no further progress
// once one is detected.
func (r *GraphReduce[N]) Compute() (*graph.Graph[N], error) {
	c := newClassifier(r.input)
	if err := c.walk(r.startNodes); err != nil {
		return nil, err
	}

	dag := &Dag{
		parents:    c.parents,
		leaves:     c.leaves,
		crossEdges: c.crossEdges,
	}

	return construct(r.input, c.uf, dag, r.startNodes), nil
}
