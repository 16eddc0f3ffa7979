package scene

import (
	"github.com/jpeterson-dev/wray/pkg/core"
	"github.com/jpeterson-dev/wray/pkg/geometry"
	"github.com/jpeterson-dev/wray/pkg/lights"
	"github.com/jpeterson-dev/wray/pkg/material"
)

// Builtins maps scene names (as accepted by the CLI's --scene flag) to
// their constructors, in the order the "scenes" command lists them.
var Builtins = []struct {
	Name        string
	Description string
	New         func() *Scene
}{
	{"empty", "no geometry, no cube map", NewEmptyScene},
	{"red-sphere", "single diffuse red sphere, directional light", NewRedSphereScene},
	{"mirror-plane", "red sphere over a mirrored plane", NewMirrorPlaneScene},
	{"glass-checkerboard", "glass sphere over a checkerboard plane", NewGlassOverCheckerboardScene},
	{"silhouette", "high-contrast sphere for AA edge testing", NewSilhouetteScene},
	{"point-light", "diffuse patch lit by an attenuating point light", NewPointLightAttenuationScene},
}

// NewEmptyScene builds a scene with no geometry and no cube map.
func NewEmptyScene() *Scene {
	cam := NewCamera(core.Vec3{Z: 3}, core.Vec3{}, core.Vec3{Y: 1}, 60, 1)
	return NewScene(cam)
}

// NewRedSphereScene builds a single diffuse red sphere at the origin
// lit by a directional light traveling along -z, viewed from +z.
func NewRedSphereScene() *Scene {
	cam := NewCamera(core.Vec3{Z: 3}, core.Vec3{}, core.Vec3{Y: 1}, 60, 1)
	s := NewScene(cam)

	red := material.NewBasicMaterial(
		core.Vec3{X: 0.1},
		core.Vec3{X: 0.8},
		core.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
		16,
	)
	s.Shapes = []core.Shape{geometry.NewSphere(core.Vec3{}, 1.0, red)}
	s.LightList = []core.Light{lights.NewDirectionalLight(core.Vec3{Z: -1}, core.Vec3{X: 1, Y: 1, Z: 1})}
	return s
}

// NewMirrorPlaneScene builds a mirror-finished plane at y=0 under a red
// sphere, lit by a directional light.
func NewMirrorPlaneScene() *Scene {
	cam := NewCamera(core.Vec3{X: 0, Y: 2, Z: 5}, core.Vec3{Y: 0}, core.Vec3{Y: 1}, 60, 1)
	s := NewScene(cam)

	red := material.NewBasicMaterial(core.Vec3{X: 0.1}, core.Vec3{X: 0.8}, core.Vec3{}, 0)
	mirror := material.NewMirrorMaterial(core.Vec3{X: 1, Y: 1, Z: 1}, core.Vec3{X: 0.9, Y: 0.9, Z: 0.9})

	s.Shapes = []core.Shape{
		geometry.NewSphere(core.Vec3{Y: 1}, 1.0, red),
		geometry.NewPlane(core.Vec3{}, core.Vec3{Y: 1}, mirror),
	}
	s.LightList = []core.Light{lights.NewDirectionalLight(core.Vec3{X: -1, Y: -1, Z: -1}, core.Vec3{X: 1, Y: 1, Z: 1})}
	return s
}

// NewGlassOverCheckerboardScene builds a glass sphere (index 1.5)
// suspended over a checkerboard plane, lit by a directional light.
func NewGlassOverCheckerboardScene() *Scene {
	cam := NewCamera(core.Vec3{X: 0, Y: 2, Z: 5}, core.Vec3{Y: 0}, core.Vec3{Y: 1}, 60, 1)
	s := NewScene(cam)

	glass := material.NewGlassMaterial(core.Vec3{X: 0.9, Y: 0.9, Z: 0.9}, 1.5)
	dark := material.NewBasicMaterial(core.Vec3{X: 0.05}, core.Vec3{X: 0.1}, core.Vec3{}, 0)
	light := material.NewBasicMaterial(core.Vec3{X: 0.1, Y: 0.1, Z: 0.1}, core.Vec3{X: 0.9, Y: 0.9, Z: 0.9}, core.Vec3{}, 0)
	board := material.NewCheckerboard(dark, light, 1.0)

	s.Shapes = []core.Shape{
		geometry.NewSphere(core.Vec3{Y: 1.2}, 1.0, glass),
		geometry.NewPlane(core.Vec3{}, core.Vec3{Y: 1}, board),
	}
	s.LightList = []core.Light{lights.NewDirectionalLight(core.Vec3{X: -1, Y: -1, Z: -1}, core.Vec3{X: 1, Y: 1, Z: 1})}
	return s
}

// NewSilhouetteScene builds a high-contrast sphere-against-background
// scene suitable for exercising the adaptive-AA edge pass.
func NewSilhouetteScene() *Scene {
	cam := NewCamera(core.Vec3{Z: 3}, core.Vec3{}, core.Vec3{Y: 1}, 60, 1)
	s := NewScene(cam)

	white := material.NewBasicMaterial(core.Vec3{X: 1, Y: 1, Z: 1}, core.Vec3{X: 1, Y: 1, Z: 1}, core.Vec3{}, 0)
	s.Shapes = []core.Shape{geometry.NewSphere(core.Vec3{}, 1.0, white)}
	s.LightList = []core.Light{lights.NewDirectionalLight(core.Vec3{Z: -1}, core.Vec3{X: 1, Y: 1, Z: 1})}
	return s
}

// NewPointLightAttenuationScene builds a unit diffuse patch lit by a
// white point light at distance 10 with purely quadratic falloff.
func NewPointLightAttenuationScene() *Scene {
	cam := NewCamera(core.Vec3{Z: 3}, core.Vec3{}, core.Vec3{Y: 1}, 60, 1)
	s := NewScene(cam)

	patch := material.NewBasicMaterial(core.Vec3{}, core.Vec3{X: 1, Y: 1, Z: 1}, core.Vec3{}, 0)
	s.Shapes = []core.Shape{geometry.NewPlane(core.Vec3{}, core.Vec3{Z: 1}, patch)}
	s.LightList = []core.Light{lights.NewPointLight(core.Vec3{Z: 10}, core.Vec3{X: 1, Y: 1, Z: 1}, 0, 0, 1)}
	return s
}
