package core

// Shape is the primitive ray-surface intersection contract. Implementations
// must report a consistent outward normal and a Material reference valid
// for the lifetime of the hit.
type Shape interface {
	// BoundingBox returns a box enclosing the entire shape.
	BoundingBox() AABB

	// Intersect returns the nearest hit along the positive ray parameter
	// within [tMin, tMax], or ok=false if there is none.
	Intersect(ray Ray, tMin, tMax float64) (isect *Isect, ok bool)

	// Normal returns the outward unit normal at a point on the shape's
	// surface. Isect.Normal is already populated by Intersect; Normal is
	// exposed separately so callers (e.g. shadow tests) can re-query it.
	Normal(point Vec3) Vec3
}
