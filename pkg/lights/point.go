package lights

import "github.com/jpeterson-dev/wray/pkg/core"

// PointLight radiates from a fixed position with quadratic falloff.
type PointLight struct {
	Position   core.Vec3
	ColorVal   core.Vec3
	Kc, Kl, Kq float64 // constant, linear, quadratic attenuation coefficients
}

// NewPointLight creates a point light with the given attenuation
// coefficients. DistanceAttenuation clamps its result to at most 1, so
// Kc below 1 (including 0) still never brightens the light.
func NewPointLight(position, color core.Vec3, kc, kl, kq float64) *PointLight {
	return &PointLight{Position: position, ColorVal: color, Kc: kc, Kl: kl, Kq: kq}
}

func (l *PointLight) Color() core.Vec3 { return l.ColorVal }

func (l *PointLight) GetDirection(p core.Vec3) core.Vec3 {
	return l.Position.Subtract(p).Normalize()
}

func (l *PointLight) DistanceAttenuation(p core.Vec3) float64 {
	d := l.Position.Subtract(p).Length()
	denom := l.Kc + l.Kl*d + l.Kq*d*d
	if denom <= 0 {
		return 1
	}
	atten := 1.0 / denom
	if atten > 1 {
		return 1
	}
	return atten
}

func (l *PointLight) ShadowAttenuation(scene core.SceneView, p core.Vec3) core.Vec3 {
	dir := l.GetDirection(p)
	distance := l.Position.Subtract(p).Length()
	return shadowAttenuation(scene, p, dir, distance, l.ColorVal)
}

// shadowAttenuation is shared by directional and point lights: casts a
// shadow ray from p toward the light and returns lightColor unattenuated
// if nothing occludes it before maxDistance (maxDistance < 0 means
// unbounded, used by directional lights), or lightColor cut by the
// occluder's transmissive coefficient otherwise. Only a single occluder
// is considered; occluders are not chained.
func shadowAttenuation(scene core.SceneView, p, dir core.Vec3, maxDistance float64, lightColor core.Vec3) core.Vec3 {
	ray := core.NewRay(p, dir).Bias()
	isect, hit := scene.Intersect(ray)
	if !hit || (maxDistance >= 0 && isect.T >= maxDistance) {
		return lightColor
	}
	return lightColor.MultiplyVec(isect.Material.Kt(isect))
}
