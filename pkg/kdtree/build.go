package kdtree

import (
	"math"

	"github.com/jpeterson-dev/wray/pkg/core"
)

// Build recursively builds a KD-tree over objects bounded by box. It
// returns a Leaf once len(objects) <= leafSize or depthLimit is reached,
// when box has zero surface area (no split plane can be costed), or when
// the lowest-cost split leaves one side with no objects.
func Build(objects []core.Shape, box core.AABB, depthLimit, leafSize int) *Node {
	if objects == nil {
		objects = []core.Shape{} // a nil Shapes slice would mark the node as a Split
	}
	if len(objects) <= leafSize || depthLimit <= 0 {
		return &Node{Box: box, Shapes: objects}
	}

	axis, pos, found := selectSplit(objects, box)
	if !found {
		return &Node{Box: box, Shapes: objects}
	}

	leftBox := box.ClipMax(axis, pos)
	rightBox := box.ClipMin(axis, pos)

	var leftObjs, rightObjs []core.Shape
	for _, obj := range objects {
		inLeft, inRight := routeObject(obj, axis, pos)
		if inLeft {
			leftObjs = append(leftObjs, obj)
		}
		if inRight {
			rightObjs = append(rightObjs, obj)
		}
	}

	// A split that fails to separate the objects degenerates to a leaf
	// rather than recursing forever.
	if len(leftObjs) == 0 || len(rightObjs) == 0 {
		return &Node{Box: box, Shapes: objects}
	}

	return &Node{
		Axis:  axis,
		Split: pos,
		Box:   box,
		Left:  Build(leftObjs, leftBox, depthLimit-1, leafSize),
		Right: Build(rightObjs, rightBox, depthLimit-1, leafSize),
	}
}

// routeObject decides which child(ren) obj belongs to at a split plane.
// An object whose bounding box degenerates to exactly the split plane on
// this axis (min == max == pos) satisfies neither strict inequality; the
// reference implementation's tie-break for this case is an unreachable
// branch (glm::length(normal) < 0 is never true), so such objects fall
// through to the else branch and are routed right.
func routeObject(obj core.Shape, axis int, pos float64) (inLeft, inRight bool) {
	box := obj.BoundingBox()
	min := box.Min.Get(axis)
	max := box.Max.Get(axis)

	inLeft = min < pos
	inRight = max > pos
	if !inLeft && !inRight {
		inRight = true
	}
	return inLeft, inRight
}

// selectSplit evaluates the SAH cost of every candidate plane — each
// object's bbox min and max on each axis — and returns the minimum-cost
// plane, breaking ties by the first one encountered (axis-major,
// object-order, min-before-max).
func selectSplit(objects []core.Shape, box core.AABB) (axis int, pos float64, found bool) {
	parentArea := box.SurfaceArea()
	if parentArea <= 0 {
		return 0, 0, false
	}

	bestCost := math.Inf(1)
	for a := 0; a < 3; a++ {
		for _, obj := range objects {
			b := obj.BoundingBox()
			for _, candidate := range [2]float64{b.Min.Get(a), b.Max.Get(a)} {
				cost := sahCost(objects, box, a, candidate, parentArea)
				if cost < bestCost {
					bestCost = cost
					axis = a
					pos = candidate
					found = true
				}
			}
		}
	}
	return axis, pos, found
}

// sahCost computes (Nl*A(leftBox) + Nr*A(rightBox)) / A(parentBox) for a
// candidate plane, where Nl counts objects whose bbox min lies strictly
// below the plane and Nr counts those whose bbox max lies strictly above.
func sahCost(objects []core.Shape, box core.AABB, axis int, pos, parentArea float64) float64 {
	leftBox := box.ClipMax(axis, pos)
	rightBox := box.ClipMin(axis, pos)

	nl, nr := 0, 0
	for _, obj := range objects {
		b := obj.BoundingBox()
		if b.Min.Get(axis) < pos {
			nl++
		}
		if b.Max.Get(axis) > pos {
			nr++
		}
	}

	return (float64(nl)*leftBox.SurfaceArea() + float64(nr)*rightBox.SurfaceArea()) / parentArea
}

// BoundsOf computes the union bounding box of a set of objects.
func BoundsOf(objects []core.Shape) core.AABB {
	if len(objects) == 0 {
		return core.AABB{}
	}
	box := objects[0].BoundingBox()
	for _, obj := range objects[1:] {
		box = box.Union(obj.BoundingBox())
	}
	return box
}
