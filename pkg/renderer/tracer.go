// Package renderer implements the recursive Whitted tracer core (direct
// shade plus reflection/refraction recursion) and the parallel image
// driver that walks it over a pixel buffer.
package renderer

import (
	"math"

	"github.com/jpeterson-dev/wray/pkg/core"
)

// Tracer evaluates traceRay against a fixed scene and attenuation
// threshold. It holds no per-call mutable state, so a single Tracer is
// shared by every worker.
type Tracer struct {
	Scene     core.SceneView
	Threshold float64
}

// NewTracer creates a tracer over scene with attenuation cutoff threshold.
func NewTracer(scene core.SceneView, threshold float64) *Tracer {
	return &Tracer{Scene: scene, Threshold: threshold}
}

// TraceRay returns the color seen along ray, recursing into reflection
// and refraction up to depth bounces, cut short once thresh's components
// all fall below the tracer's threshold.
func (tr *Tracer) TraceRay(ray core.Ray, thresh core.Vec3, depth int) (color core.Vec3, t float64) {
	if depth < 0 {
		return core.Vec3{}, 0
	}
	if thresh.X < tr.Threshold && thresh.Y < tr.Threshold && thresh.Z < tr.Threshold {
		return core.Vec3{}, 0
	}

	isect, hit := tr.Scene.Intersect(ray)
	if !hit {
		if cubeMap := tr.Scene.CubeMap(); cubeMap != nil {
			return cubeMap.Sample(ray.Direction.Normalize()), 0
		}
		return core.Vec3{}, 0
	}

	m := isect.Material
	d := ray.Direction.Normalize()
	n := isect.Normal

	color = m.Shade(tr.Scene, ray, isect)

	if m.Refl() {
		rDir := d.Subtract(n.Multiply(2 * d.Dot(n))).Normalize()
		rRay := core.NewRay(isect.Point, rDir)
		rRay.Kind = core.RayReflection
		rRay = rRay.Bias()
		kr := m.Kr(isect)
		childColor, _ := tr.TraceRay(rRay, kr.MultiplyVec(thresh), depth-1)
		color = color.Add(kr.MultiplyVec(childColor))
	}

	if m.Trans() {
		if tDir, ok := tr.refractDirection(d, n, m, isect); ok {
			tRay := core.NewRay(isect.Point, tDir)
			tRay.Kind = core.RayRefraction
			tRay = tRay.Bias()

			kt := m.Kt(isect)
			childColor, _ := tr.TraceRay(tRay, kt.MultiplyVec(thresh), depth-1)
			color = color.Add(kt.MultiplyVec(childColor))
		}
	}

	return color, isect.T
}

// refractDirection computes the refracted direction per Snell's law,
// reporting ok == false on total internal reflection. n must already be
// oriented to oppose d (core.FrontFace's convention, which every Shape's
// Intersect follows), so d.Dot(n) alone can never distinguish entering
// from exiting a material — isect.Front carries that distinction
// instead: Front true means the ray hit the outer surface (entering,
// air -> material); Front false means it hit the surface from inside
// (exiting, material -> air), which swaps which index of refraction
// leads the ratio. isect is otherwise used only for its Material's
// Index(); d/n are passed separately so tests can exercise the geometry
// in isolation.
func (tr *Tracer) refractDirection(d, n core.Vec3, m core.Material, isect *core.Isect) (core.Vec3, bool) {
	etaFrom, etaTo := 1.0, m.Index()
	if !isect.Front {
		etaFrom, etaTo = etaTo, etaFrom
	}

	eta := etaFrom / etaTo
	c := math.Abs(d.Dot(n))
	k := 1 + (eta*c-eta)*(eta*c+eta)
	if k <= 0 {
		return core.Vec3{}, false // total internal reflection
	}

	tDir := n.Multiply(eta*c - math.Sqrt(k)).Add(d.Multiply(eta)).Normalize()
	return tDir, true
}
