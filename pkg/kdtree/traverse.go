package kdtree

import (
	"math"

	"github.com/jpeterson-dev/wray/pkg/core"
)

// Intersect traverses the tree looking for the closest shape hit by ray
// within [tMin, tMax], descending only the side(s) of each split that the
// ray's clipped interval reaches, left child first when it reaches both.
// It returns the closest Isect, or
// ok == false if nothing in this subtree is hit within the interval.
func (n *Node) Intersect(ray core.Ray, tMin, tMax float64) (*core.Isect, bool) {
	if n == nil {
		return nil, false
	}

	clippedMin, clippedMax, hitBox := n.Box.Intersect(ray, tMin, tMax)
	if !hitBox {
		return nil, false
	}

	if n.IsLeaf() {
		return intersectLeaf(n.Shapes, ray, clippedMin, clippedMax)
	}

	pMin := ray.At(clippedMin).Get(n.Axis)
	pMax := ray.At(clippedMax).Get(n.Axis)

	// Near-parallel-to-axis rays make p_min/p_max unreliable; bias both
	// toward descending both children rather than risk mis-classifying
	// which side the ray actually travels through.
	if math.Abs(ray.Direction.Get(n.Axis)) < core.RayEpsilon {
		pMin -= 1e-6
		pMax += 1e-6
	}

	switch {
	case n.Split > pMin && n.Split > pMax:
		return n.Left.Intersect(ray, clippedMin, clippedMax)
	case n.Split < pMin && n.Split < pMax:
		return n.Right.Intersect(ray, clippedMin, clippedMax)
	default:
		// Ambiguous: the ray's span on this axis straddles the split
		// plane. The reference traversal does not prune here — it always
		// tests both children, left first — so closest-hit results match
		// exactly rather than relying on a front-to-back early exit.
		if isect, ok := n.Left.Intersect(ray, clippedMin, clippedMax); ok {
			if right, rok := n.Right.Intersect(ray, clippedMin, clippedMax); rok && right.T < isect.T {
				return right, true
			}
			return isect, true
		}
		return n.Right.Intersect(ray, clippedMin, clippedMax)
	}
}

func intersectLeaf(shapes []core.Shape, ray core.Ray, tMin, tMax float64) (*core.Isect, bool) {
	var closest *core.Isect
	hit := false
	for _, shape := range shapes {
		if isect, ok := shape.Intersect(ray, tMin, tMax); ok {
			if !hit || isect.T < closest.T {
				closest = isect
				hit = true
				tMax = isect.T
			}
		}
	}
	return closest, hit
}
