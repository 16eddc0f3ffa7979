package core

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a new AABB from min and max corners.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Intersect clips [tMin, tMax] to the portion of the ray's parametric
// interval that lies inside the box, using the slab method. It returns
// false when the clipped interval is empty (tMax < tMin) or entirely
// behind the ray origin (tMax < 0).
func (aabb AABB) Intersect(ray Ray, tMin, tMax float64) (float64, float64, bool) {
	for axis := 0; axis < 3; axis++ {
		boxMin := aabb.Min.Get(axis)
		boxMax := aabb.Max.Get(axis)
		origin := ray.Origin.Get(axis)
		direction := ray.Direction.Get(axis)

		if math.Abs(direction) < RayEpsilon {
			if origin < boxMin || origin > boxMax {
				return tMin, tMax, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (boxMin - origin) * invDirection
		t2 := (boxMax - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}

	if tMax < tMin || tMax < 0 {
		return tMin, tMax, false
	}
	return tMin, tMax, true
}

// Union returns an AABB that bounds both this AABB and another.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the center point of the AABB.
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis.
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns 2*(ex*ey + ey*ez + ex*ez), the SAH cost term.
func (aabb AABB) SurfaceArea() float64 {
	e := aabb.Size()
	return 2.0 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// ClipMin returns a copy of the box with axis's minimum corner moved to pos.
func (aabb AABB) ClipMin(axis int, pos float64) AABB {
	clipped := aabb
	switch axis {
	case 0:
		clipped.Min.X = pos
	case 1:
		clipped.Min.Y = pos
	default:
		clipped.Min.Z = pos
	}
	return clipped
}

// ClipMax returns a copy of the box with axis's maximum corner moved to pos.
func (aabb AABB) ClipMax(axis int, pos float64) AABB {
	clipped := aabb
	switch axis {
	case 0:
		clipped.Max.X = pos
	case 1:
		clipped.Max.Y = pos
	default:
		clipped.Max.Z = pos
	}
	return clipped
}
