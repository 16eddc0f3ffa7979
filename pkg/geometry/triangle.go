package geometry

import (
	"github.com/jpeterson-dev/wray/pkg/core"
)

// Triangle represents a single triangle defined by three vertices.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   core.Material
	normal     core.Vec3
	bbox       core.AABB
}

// NewTriangle creates a new triangle from three vertices, deriving its
// normal from winding order.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// NewTriangleWithNormal creates a new triangle using a supplied normal
// rather than deriving one from winding order.
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material, normal: normal.Normalize()}
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)
	return t
}

// Normal returns the triangle's (constant) unit normal.
func (t *Triangle) Normal(point core.Vec3) core.Vec3 {
	return t.normal
}

// Intersect tests if ray intersects the triangle using the
// Möller-Trumbore algorithm.
func (t *Triangle) Intersect(ray core.Ray, tMin, tMax float64) (*core.Isect, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -core.RayEpsilon && a < core.RayEpsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	point := ray.At(tParam)
	normal, front := core.FrontFace(ray.Direction, t.normal)

	return &core.Isect{
		T:        tParam,
		Point:    point,
		Normal:   normal,
		Front:    front,
		Material: t.Material,
		UV:       core.Vec3{X: u, Y: v},
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle.
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}
