package lights

import "github.com/jpeterson-dev/wray/pkg/core"

// DirectionalLight shines uniformly from a fixed orientation, as if from
// an infinitely distant source (the sun). Distance attenuation is always
// 1; direction toward the light is constant for every point.
type DirectionalLight struct {
	Orientation core.Vec3 // direction the light travels; toward-light is its negation
	ColorVal    core.Vec3
}

// NewDirectionalLight creates a directional light traveling along
// orientation (need not be normalized).
func NewDirectionalLight(orientation, color core.Vec3) *DirectionalLight {
	return &DirectionalLight{Orientation: orientation.Normalize(), ColorVal: color}
}

func (l *DirectionalLight) Color() core.Vec3 { return l.ColorVal }

func (l *DirectionalLight) GetDirection(p core.Vec3) core.Vec3 {
	return l.Orientation.Negate()
}

func (l *DirectionalLight) DistanceAttenuation(p core.Vec3) float64 { return 1 }

func (l *DirectionalLight) ShadowAttenuation(scene core.SceneView, p core.Vec3) core.Vec3 {
	return shadowAttenuation(scene, p, l.GetDirection(p), -1, l.ColorVal)
}
