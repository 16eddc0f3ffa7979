package material

import "github.com/jpeterson-dev/wray/pkg/core"

// BasicMaterial is a fixed ambient+diffuse+specular (Phong) material with
// optional mirror reflection and dielectric refraction, matching the
// coefficient set the core tracer queries directly.
type BasicMaterial struct {
	Ambient   core.Vec3
	Diffuse   core.Vec3
	Specular  core.Vec3
	Shininess float64

	KrCoeff core.Vec3 // reflective coefficient; zero disables the reflection branch
	KtCoeff core.Vec3 // transmissive coefficient; zero disables the refraction branch

	RefractiveIndex float64 // meaningful only when KtCoeff is non-zero
}

// NewBasicMaterial creates an opaque (non-reflective, non-transmissive)
// Phong material.
func NewBasicMaterial(ambient, diffuse, specular core.Vec3, shininess float64) *BasicMaterial {
	return &BasicMaterial{Ambient: ambient, Diffuse: diffuse, Specular: specular, Shininess: shininess}
}

// NewMirrorMaterial creates a material whose shade term is a dim diffuse
// base plus a strong reflective coefficient, suitable for mirror planes.
func NewMirrorMaterial(tint, kr core.Vec3) *BasicMaterial {
	return &BasicMaterial{
		Ambient: tint.Multiply(0.02),
		Diffuse: tint.Multiply(0.05),
		KrCoeff: kr,
	}
}

// NewGlassMaterial creates a transmissive dielectric with the given
// refractive index and transmission coefficient.
func NewGlassMaterial(kt core.Vec3, refractiveIndex float64) *BasicMaterial {
	return &BasicMaterial{
		KtCoeff:         kt,
		KrCoeff:         core.Vec3{X: 0.05, Y: 0.05, Z: 0.05},
		RefractiveIndex: refractiveIndex,
	}
}

func (m *BasicMaterial) Shade(scene core.SceneView, ray core.Ray, isect *core.Isect) core.Vec3 {
	return phongShade(scene, ray, isect, m.Ambient, m.Diffuse, m.Specular, m.Shininess)
}

func (m *BasicMaterial) Kr(isect *core.Isect) core.Vec3 { return m.KrCoeff }
func (m *BasicMaterial) Kt(isect *core.Isect) core.Vec3 { return m.KtCoeff }

func (m *BasicMaterial) Refl() bool  { return m.KrCoeff != (core.Vec3{}) }
func (m *BasicMaterial) Trans() bool { return m.KtCoeff != (core.Vec3{}) }

func (m *BasicMaterial) Index() float64 {
	if m.RefractiveIndex == 0 {
		return 1
	}
	return m.RefractiveIndex
}
