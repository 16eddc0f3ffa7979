// Package material implements the "shade" operation the core tracer
// consumes: direct illumination (ambient, diffuse, specular) plus the
// kr/kt coefficients that drive reflection and refraction.
package material

import (
	"math"

	"github.com/jpeterson-dev/wray/pkg/core"
)

// phongShade computes ambient + per-light diffuse/specular contribution
// at a hit point, shared by every concrete material so each only needs
// to supply its own diffuse/specular/ambient/shininess at the hit.
func phongShade(scene core.SceneView, ray core.Ray, isect *core.Isect, ambient, diffuse, specular core.Vec3, shininess float64) core.Vec3 {
	color := ambient

	viewDir := ray.Direction.Negate().Normalize()

	for _, light := range scene.Lights() {
		lightDir := light.GetDirection(isect.Point)
		nDotL := isect.Normal.Dot(lightDir)
		if nDotL <= 0 {
			continue
		}

		lightColor := light.ShadowAttenuation(scene, isect.Point)
		atten := light.DistanceAttenuation(isect.Point)
		if atten <= 0 {
			continue
		}

		color = color.Add(diffuse.MultiplyVec(lightColor).Multiply(nDotL * atten))

		reflected := lightDir.Negate().Reflect(isect.Normal)
		rDotV := reflected.Dot(viewDir)
		if rDotV > 0 && shininess > 0 {
			color = color.Add(specular.MultiplyVec(lightColor).Multiply(math.Pow(rDotV, shininess) * atten))
		}
	}

	return color
}
