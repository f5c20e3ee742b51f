package reduce

import (
	"github.com/graphreduce/graphreduce/pkg/graph"
	"github.com/graphreduce/graphreduce/pkg/unionfind"
)

// frame is one entry in the explicit DFS stack: the node currently being
// opened, its predecessors (fetched once), and a cursor over which of
// them have been examined so far.
type frame struct {
	node        graph.NodeIndex
	children    []graph.NodeIndex
	idx         int
	anyChildren bool
}

// classifier runs an iterative DFS, recording DFS-tree parents, leaves,
// cross edges, and unioning cycle participants as back edges are
// discovered.
type classifier[N any] struct {
	input Input[N]
	uf    *unionfind.UnionFind

	state   []colorState
	greyPos []int
	parents []graph.NodeIndex

	stack []frame // the live DFS path; pushed on open, popped on black

	leaves     []graph.NodeIndex
	crossEdges []edge
}

func newClassifier[N any](input Input[N]) *classifier[N] {
	n := input.Len()
	c := &classifier[N]{
		input:   input,
		uf:      unionfind.New(n),
		state:   make([]colorState, n),
		greyPos: make([]int, n),
		parents: make([]graph.NodeIndex, n),
	}
	for i := range c.parents {
		c.parents[i] = graph.NodeIndex(i)
	}
	return c
}

// walk runs the classification DFS from every start node, in order,
// skipping any already visited via an earlier start node's subtree.
func (c *classifier[N]) walk(startNodes []graph.NodeIndex) error {
	for _, s := range startNodes {
		if c.state[s] != white {
			continue
		}
		if err := c.open(s); err != nil {
			return err
		}
	}
	return nil
}

// open drives the iterative DFS rooted at start, using c.stack as the
// explicit work stack in place of recursion so arbitrarily deep chains
// never grow the Go call stack.
func (c *classifier[N]) open(start graph.NodeIndex) error {
	c.push(start)

	for len(c.stack) > 0 {
		top := &c.stack[len(c.stack)-1]

		if top.idx >= len(top.children) {
			if err := c.close(); err != nil {
				return err
			}
			continue
		}

		child := top.children[top.idx]
		top.idx++

		if err := c.walkEdge(top.node, child, top); err != nil {
			return err
		}
	}
	return nil
}

func (c *classifier[N]) push(n graph.NodeIndex) {
	pos := len(c.stack)
	c.state[n] = grey
	c.greyPos[n] = pos
	c.stack = append(c.stack, frame{
		node:     n,
		children: c.input.Predecessors(n),
	})
}

// close finishes the node on top of the stack: marks it Black, records
// it as a leaf if no predecessor ever counted as a child, and pops it
// off the live path.
func (c *classifier[N]) close() error {
	top := c.stack[len(c.stack)-1]
	if !top.anyChildren {
		c.leaves = append(c.leaves, top.node)
	}
	c.state[top.node] = black
	c.stack = c.stack[:len(c.stack)-1]
	return nil
}

// walkEdge handles one predecessor edge parent <- child discovered while
// opening parent.
func (c *classifier[N]) walkEdge(parent, child graph.NodeIndex, parentFrame *frame) error {
	if child == parent {
		// Self-loops carry no reduction information; ignore.
		return nil
	}
	parentFrame.anyChildren = true

	switch c.state[child] {
	case white:
		c.parents[child] = parent
		c.push(child)

	case grey:
		pos := c.greyPos[child]
		if pos < 0 || pos >= len(c.stack) || c.stack[pos].node != child {
			return contractViolation("walkEdge", "grey node %d has inconsistent stack position", child)
		}
		if pos == 0 {
			return contractViolation("walkEdge", "back edge targets the root of the active DFS path")
		}
		// Every node between child and parent on the live path is part
		// of the same cycle: unify them all with parent.
		for _, f := range c.stack[pos:] {
			c.uf.Union(int(parent), int(f.node))
		}

	case black:
		c.crossEdges = append(c.crossEdges, edge{from: parent, to: child})

	default:
		return contractViolation("walkEdge", "node %d has unknown color state", child)
	}
	return nil
}
