// Package scene owns the renderable world: the geometry list, lights,
// camera, optional cube-map background, and the KD-tree spatial index
// built over the geometry once at setup time.
package scene

import (
	"github.com/jpeterson-dev/wray/pkg/core"
	"github.com/jpeterson-dev/wray/pkg/kdtree"
)

// Scene implements core.SceneView. Intersect dispatches to the KD-tree
// when one has been built, and falls back to a linear scan otherwise.
type Scene struct {
	Shapes    []core.Shape
	LightList []core.Light
	Cube      core.CubeMap
	Cam       *Camera

	root *kdtree.Node
}

// NewScene creates an empty scene. Populate Shapes/LightList/Cube/Cam
// directly, then call BuildIndex before rendering if KD acceleration is
// wanted.
func NewScene(cam *Camera) *Scene {
	return &Scene{Cam: cam}
}

// BuildIndex builds the KD-tree over the current Shapes. It must be
// called again after Shapes changes; the tree does not track mutation.
func (s *Scene) BuildIndex(depthLimit, leafSize int) {
	if len(s.Shapes) == 0 {
		s.root = nil
		return
	}
	box := kdtree.BoundsOf(s.Shapes)
	s.root = kdtree.Build(s.Shapes, box, depthLimit, leafSize)
}

// Intersect finds the closest shape hit by ray, within the tracer's
// standard interval [RayEpsilon, 1e9].
func (s *Scene) Intersect(ray core.Ray) (*core.Isect, bool) {
	const tMax = 1e9
	if s.root != nil {
		return s.root.Intersect(ray, core.RayEpsilon, tMax)
	}
	return s.intersectLinear(ray, core.RayEpsilon, tMax)
}

func (s *Scene) intersectLinear(ray core.Ray, tMin, tMax float64) (*core.Isect, bool) {
	var closest *core.Isect
	hit := false
	for _, shape := range s.Shapes {
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

func (s *Scene) Lights() []core.Light { return s.LightList }

func (s *Scene) CubeMap() core.CubeMap { return s.Cube }

// KDStats summarizes the built KD-tree, or the zero Stats if BuildIndex
// has not been called (or the scene has no geometry).
func (s *Scene) KDStats() kdtree.Stats {
	return kdtree.CollectStats(s.root)
}
