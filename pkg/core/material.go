package core

// Material is the contract the ray tracer core consumes from material
// evaluation. BRDF internals are an external collaborator (see
// pkg/material for a concrete implementation); the core only needs a
// direct-illumination "shade" operation plus reflective/transmissive
// coefficient queries.
type Material interface {
	// Shade computes direct illumination at isect: diffuse, specular,
	// ambient, and per-light shadow attenuation.
	Shade(scene SceneView, ray Ray, isect *Isect) Vec3

	// Kr returns the reflective coefficient at isect.
	Kr(isect *Isect) Vec3

	// Kt returns the transmissive coefficient at isect.
	Kt(isect *Isect) Vec3

	// Refl reports whether this material contributes a reflected ray.
	Refl() bool

	// Trans reports whether this material contributes a refracted ray.
	Trans() bool

	// Index returns the material's index of refraction.
	Index() float64
}
