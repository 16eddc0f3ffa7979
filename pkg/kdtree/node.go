// Package kdtree implements the scene's spatial acceleration index: a
// surface-area-heuristic KD-tree built once over the scene's geometry and
// traversed front-to-back by every ray the tracer casts.
package kdtree

import "github.com/jpeterson-dev/wray/pkg/core"

// Node is a tagged variant of Split (Shapes == nil) or Leaf (Shapes != nil).
// Split nodes own their children; Leaf nodes hold non-owning references
// into the scene's geometry arena.
type Node struct {
	Axis   int         // split axis, meaningful only for Split nodes
	Split  float64     // split position along Axis
	Box    core.AABB   // bounding box of this node
	Left   *Node       // nil for Leaf nodes
	Right  *Node       // nil for Leaf nodes
	Shapes []core.Shape // non-nil only for Leaf nodes
}

// IsLeaf reports whether this node is a Leaf.
func (n *Node) IsLeaf() bool {
	return n.Shapes != nil
}

// Stats summarizes the shape of a built tree, useful for CLI reporting.
type Stats struct {
	Nodes       int
	Leaves      int
	MaxDepth    int
	TotalShapes int // sum over leaves; a shape straddling a split plane is counted in both children
}

// CollectStats walks the tree computing Stats.
func CollectStats(root *Node) Stats {
	var s Stats
	if root == nil {
		return s
	}
	collectStats(root, 0, &s)
	return s
}

func collectStats(n *Node, depth int, s *Stats) {
	s.Nodes++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	if n.IsLeaf() {
		s.Leaves++
		s.TotalShapes += len(n.Shapes)
		return
	}
	collectStats(n.Left, depth+1, s)
	collectStats(n.Right, depth+1, s)
}
