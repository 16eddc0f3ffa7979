package geometry

import (
	"math"

	"github.com/jpeterson-dev/wray/pkg/core"
)

// Plane represents an infinite plane defined by a point and a normal.
type Plane struct {
	Point    core.Vec3
	N        core.Vec3 // always normalized
	Material core.Material
}

// NewPlane creates a new plane.
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		N:        normal.Normalize(),
		Material: material,
	}
}

// Normal returns the plane's (constant) unit normal.
func (p *Plane) Normal(point core.Vec3) core.Vec3 {
	return p.N
}

// Intersect tests if ray intersects the plane within [tMin, tMax].
func (p *Plane) Intersect(ray core.Ray, tMin, tMax float64) (*core.Isect, bool) {
	denominator := ray.Direction.Dot(p.N)
	if math.Abs(denominator) < core.RayEpsilon {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.N) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	normal, front := core.FrontFace(ray.Direction, p.N)

	return &core.Isect{
		T:        t,
		Point:    point,
		Normal:   normal,
		Front:    front,
		Material: p.Material,
	}, true
}

// axisAlignment classifies which world axis a plane's normal is closest to.
type axisAlignment int

const (
	notAxisAligned axisAlignment = iota
	xAxisAligned
	yAxisAligned
	zAxisAligned
)

func getAxisAlignment(normal core.Vec3) axisAlignment {
	const tolerance = 1e-6
	if math.Abs(normal.Y) > 1-tolerance && math.Abs(normal.X) < tolerance && math.Abs(normal.Z) < tolerance {
		return yAxisAligned
	}
	if math.Abs(normal.X) > 1-tolerance && math.Abs(normal.Y) < tolerance && math.Abs(normal.Z) < tolerance {
		return xAxisAligned
	}
	if math.Abs(normal.Z) > 1-tolerance && math.Abs(normal.X) < tolerance && math.Abs(normal.Y) < tolerance {
		return zAxisAligned
	}
	return notAxisAligned
}

// BoundingBox returns a bounding box for this plane. Axis-aligned planes
// get a thin box along that axis so the KD-tree can still cull them;
// other orientations fall back to a large box.
func (p *Plane) BoundingBox() core.AABB {
	const largeValue = 1e6
	const epsilon = 0.001

	switch getAxisAlignment(p.N) {
	case xAxisAligned:
		x := p.Point.X
		return core.NewAABB(
			core.Vec3{X: x - epsilon, Y: -largeValue, Z: -largeValue},
			core.Vec3{X: x + epsilon, Y: largeValue, Z: largeValue},
		)
	case yAxisAligned:
		y := p.Point.Y
		return core.NewAABB(
			core.Vec3{X: -largeValue, Y: y - epsilon, Z: -largeValue},
			core.Vec3{X: largeValue, Y: y + epsilon, Z: largeValue},
		)
	case zAxisAligned:
		z := p.Point.Z
		return core.NewAABB(
			core.Vec3{X: -largeValue, Y: -largeValue, Z: z - epsilon},
			core.Vec3{X: largeValue, Y: largeValue, Z: z + epsilon},
		)
	default:
		return core.NewAABB(
			core.Vec3{X: -largeValue, Y: -largeValue, Z: -largeValue},
			core.Vec3{X: largeValue, Y: largeValue, Z: largeValue},
		)
	}
}
