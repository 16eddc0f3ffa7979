package core

// Isect records the nearest surface hit along a ray. After a successful
// intersect, T is > 0 and Normal is finite. When an Isect seeds a child
// ray, the child's origin is offset by RayEpsilon along the child
// direction (see Ray.Bias) to prevent self-intersection.
type Isect struct {
	T        float64
	Point    Vec3
	Normal   Vec3
	Front    bool // true if the ray hit the outward-facing side (see FrontFace)
	Material Material
	UV       Vec3 // auxiliary coordinates the material may consume; Z unused
}

// FrontFace reports whether the ray arrived from the side the outward
// normal points to, and returns the normal oriented to face the ray.
func FrontFace(rayDir, outwardNormal Vec3) (Vec3, bool) {
	front := rayDir.Dot(outwardNormal) < 0
	if front {
		return outwardNormal, true
	}
	return outwardNormal.Negate(), false
}
