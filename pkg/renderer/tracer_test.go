package renderer

import (
	"math"
	"testing"

	"github.com/jpeterson-dev/wray/pkg/core"
)

type fakeMaterial struct {
	shadeColor core.Vec3
	kr, kt     core.Vec3
	refl, tran bool
	index      float64
}

func (m fakeMaterial) Shade(core.SceneView, core.Ray, *core.Isect) core.Vec3 { return m.shadeColor }
func (m fakeMaterial) Kr(*core.Isect) core.Vec3                             { return m.kr }
func (m fakeMaterial) Kt(*core.Isect) core.Vec3                             { return m.kt }
func (m fakeMaterial) Refl() bool                                           { return m.refl }
func (m fakeMaterial) Trans() bool                                          { return m.tran }
func (m fakeMaterial) Index() float64                                      { return m.index }

type fakeScene struct {
	isect *core.Isect
	hit   bool
}

func (s fakeScene) Intersect(core.Ray) (*core.Isect, bool) { return s.isect, s.hit }
func (fakeScene) Lights() []core.Light                      { return nil }
func (fakeScene) CubeMap() core.CubeMap                     { return nil }

type fakeCubeMap struct{ color core.Vec3 }

func (c fakeCubeMap) Sample(dir core.Vec3) core.Vec3 { return c.color }

func TestTraceRay_DepthNegativeReturnsBlack(t *testing.T) {
	tr := NewTracer(fakeScene{hit: true}, 0.001)
	color, _ := tr.TraceRay(core.NewRay(core.Vec3{}, core.Vec3{Z: -1}), core.Vec3{X: 1, Y: 1, Z: 1}, -1)
	if color != (core.Vec3{}) {
		t.Errorf("expected black for depth < 0, got %v", color)
	}
}

func TestTraceRay_ThresholdCutoff(t *testing.T) {
	tr := NewTracer(fakeScene{hit: true}, 0.5)
	color, _ := tr.TraceRay(core.NewRay(core.Vec3{}, core.Vec3{Z: -1}), core.Vec3{X: 0.1, Y: 0.1, Z: 0.1}, 5)
	if color != (core.Vec3{}) {
		t.Errorf("expected black when every threshold component is below the cutoff, got %v", color)
	}
}

func TestTraceRay_MissWithCubeMap(t *testing.T) {
	scene := fakeScene{hit: false}
	tr := NewTracer(&cubeMapScene{fakeScene: scene, cube: fakeCubeMap{color: core.Vec3{X: 0.3, Y: 0.4, Z: 0.5}}}, 0.001)

	color, _ := tr.TraceRay(core.NewRay(core.Vec3{}, core.Vec3{Z: -1}), core.Vec3{X: 1, Y: 1, Z: 1}, 5)
	if color != (core.Vec3{X: 0.3, Y: 0.4, Z: 0.5}) {
		t.Errorf("expected background color from cube map, got %v", color)
	}
}

type cubeMapScene struct {
	fakeScene
	cube core.CubeMap
}

func (s *cubeMapScene) CubeMap() core.CubeMap { return s.cube }

func TestTraceRay_DepthZero_NoRecursion(t *testing.T) {
	m := fakeMaterial{shadeColor: core.Vec3{X: 0.5}, kr: core.Vec3{X: 1, Y: 1, Z: 1}, refl: true, index: 1}
	isect := &core.Isect{T: 1, Point: core.Vec3{Z: -1}, Normal: core.Vec3{Z: 1}, Material: m}
	tr := NewTracer(fakeScene{isect: isect, hit: true}, 0.001)

	color, _ := tr.TraceRay(core.NewRay(core.Vec3{}, core.Vec3{Z: -1}), core.Vec3{X: 1, Y: 1, Z: 1}, 0)
	if math.Abs(color.X-0.5) > 1e-9 {
		t.Errorf("expected direct shade only (reflection recursion exhausted at depth 0), got %v", color)
	}
}

func TestTraceRay_TotalInternalReflection(t *testing.T) {
	m := fakeMaterial{kt: core.Vec3{X: 1, Y: 1, Z: 1}, tran: true, index: 1.5}
	// Front: false — the ray is hitting the surface from inside the
	// denser medium, exiting toward air, which is the only direction
	// total internal reflection can occur.
	isect := &core.Isect{T: 1, Point: core.Vec3{}, Normal: core.Vec3{Y: 1}, Front: false, Material: m}
	tr := NewTracer(fakeScene{isect: isect, hit: true}, 0.001)

	// A ray grazing at a steep angle past the critical angle for n=1.5
	// should hit total internal reflection and add no refractive
	// contribution.
	grazing := core.NewRay(core.Vec3{}, core.Vec3{X: 0.99, Y: 0.14}.Normalize())

	_, ok := tr.refractDirection(grazing.Direction.Normalize(), core.Vec3{Y: 1}, m, isect)
	if ok {
		t.Error("expected total internal reflection (ok == false) for a steep grazing ray")
	}
}

func TestRefractDirection_FrontFlagControlsEtaDirection(t *testing.T) {
	// core.FrontFace guarantees d.Dot(n) < 0 regardless of whether the
	// ray is entering or exiting, so entering/exiting must come from
	// isect.Front, never from the sign of d.Dot(n). Same (d, n) pair,
	// only Front differs.
	m := fakeMaterial{kt: core.Vec3{X: 1, Y: 1, Z: 1}, tran: true, index: 1.5}
	tr := NewTracer(fakeScene{hit: false}, 0.001)

	d := core.Vec3{X: 0.99, Y: -0.14}.Normalize()
	n := core.Vec3{Y: 1}
	if d.Dot(n) >= 0 {
		t.Fatalf("test setup invalid: d.Dot(n) must be negative, got %v", d.Dot(n))
	}

	entering := &core.Isect{Front: true, Material: m}
	if _, ok := tr.refractDirection(d, n, m, entering); !ok {
		t.Error("expected entering refraction (air -> glass) to succeed at this grazing angle")
	}

	exiting := &core.Isect{Front: false, Material: m}
	if _, ok := tr.refractDirection(d, n, m, exiting); ok {
		t.Error("expected exiting refraction (glass -> air) to hit total internal reflection at this grazing angle")
	}
}

func TestRefract_SlabRoundTrip(t *testing.T) {
	m := fakeMaterial{kt: core.Vec3{X: 1, Y: 1, Z: 1}, tran: true, index: 1.5}
	tr := NewTracer(fakeScene{hit: false}, 0.001)

	incoming := core.Vec3{X: 0.3, Y: -1}.Normalize()
	n := core.Vec3{Y: 1}
	isectEnter := &core.Isect{Point: core.Vec3{Y: 0}, Front: true, Material: m}

	entering, ok := tr.refractDirection(incoming, n, m, isectEnter)
	if !ok {
		t.Fatal("expected entering refraction to succeed at a shallow angle")
	}

	// Exiting back through a parallel interface: the slab's far face has
	// outward normal -n, which core.FrontFace flips back to n so it keeps
	// opposing the ray, and Front is false since this hit is from inside
	// the slab.
	exitNormal := n
	isectExit := &core.Isect{Point: core.Vec3{Y: -1}, Front: false, Material: m}
	exiting, ok := tr.refractDirection(entering, exitNormal, m, isectExit)
	if !ok {
		t.Fatal("expected exiting refraction to succeed")
	}

	diff := exiting.Subtract(incoming).Length()
	if diff > 1e-9 {
		t.Errorf("expected slab round-trip to preserve direction within 1e-9, got diff=%v (in=%v out=%v)", diff, incoming, exiting)
	}
}
