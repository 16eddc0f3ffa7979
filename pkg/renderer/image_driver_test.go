package renderer

import (
	"testing"
	"time"

	"github.com/jpeterson-dev/wray/pkg/core"
)

type flatScene struct {
	color core.Vec3
}

func (s flatScene) Intersect(ray core.Ray) (*core.Isect, bool) {
	return &core.Isect{T: 1, Material: flatMaterial{color: s.color}, Normal: core.Vec3{Z: 1}}, true
}
func (flatScene) Lights() []core.Light { return nil }
func (flatScene) CubeMap() core.CubeMap { return nil }

type flatMaterial struct{ color core.Vec3 }

func (m flatMaterial) Shade(core.SceneView, core.Ray, *core.Isect) core.Vec3 { return m.color }
func (flatMaterial) Kr(*core.Isect) core.Vec3                              { return core.Vec3{} }
func (flatMaterial) Kt(*core.Isect) core.Vec3                              { return core.Vec3{} }
func (flatMaterial) Refl() bool                                            { return false }
func (flatMaterial) Trans() bool                                           { return false }
func (flatMaterial) Index() float64                                       { return 1 }

type fixedCamera struct{}

func (fixedCamera) GetRay(x, y float64) core.Ray {
	return core.NewRay(core.Vec3{}, core.Vec3{Z: -1})
}

func TestImageDriver_TraceImage_FillsEveryPixel(t *testing.T) {
	tr := NewTracer(flatScene{color: core.Vec3{X: 1, Y: 0.5, Z: 0.25}}, 0.001)
	cfg := DefaultConfig()
	cfg.NumThreads = 4
	cfg.MaxRecursionDepth = 0

	d := NewImageDriver(tr, fixedCamera{}, cfg)
	d.TraceSetup(5, 7)
	d.TraceImage()
	d.WaitRender()

	for j := 0; j < 7; j++ {
		for i := 0; i < 5; i++ {
			c := d.getPixel(i, j)
			if c.X < 0.99 {
				t.Fatalf("pixel (%d,%d) was never written: %v", i, j, c)
			}
		}
	}
}

func TestImageDriver_WaitRender_CollectsEveryWorkerID(t *testing.T) {
	tr := NewTracer(flatScene{}, 0.001)
	cfg := DefaultConfig()
	cfg.NumThreads = 8
	cfg.MaxRecursionDepth = 0

	d := NewImageDriver(tr, fixedCamera{}, cfg)
	d.TraceSetup(16, 16)
	d.TraceImage()
	d.WaitRender() // must return; a worker id never reported would hang the test
}

func TestImageDriver_CheckRender_PollingDoesNotLoseCompletions(t *testing.T) {
	tr := NewTracer(flatScene{}, 0.001)
	cfg := DefaultConfig()
	cfg.NumThreads = 4
	cfg.MaxRecursionDepth = 0

	d := NewImageDriver(tr, fixedCamera{}, cfg)
	d.TraceSetup(16, 16)
	d.TraceImage()

	// Poll repeatedly, as a UI thread would. Each false result must leave
	// every already-reported id intact so a later call still sees them.
	deadline := time.Now().Add(5 * time.Second)
	for !d.CheckRender() {
		if time.Now().After(deadline) {
			t.Fatal("CheckRender never returned true; a completion id was lost")
		}
		time.Sleep(time.Millisecond)
	}

	// The finished-set was cleared by the successful CheckRender; a
	// second pass must be able to reuse it from a clean slate.
	d.TraceImage()
	d.WaitRender() // must not hang on stale state from the first pass
}

func TestImageDriver_GetSetPixel_RoundTrip(t *testing.T) {
	d := &ImageDriver{width: 4, height: 4, buffer: make([]byte, 4*4*3)}
	d.setPixel(2, 1, core.Vec3{X: 0.5, Y: 1.0, Z: 0.0})
	got := d.getPixel(2, 1)

	if got.X < 0.49 || got.X > 0.51 {
		t.Errorf("expected X~0.5 after byte quantization, got %v", got.X)
	}
	if got.Y != 1.0 || got.Z != 0.0 {
		t.Errorf("expected Y=1 Z=0, got %v", got)
	}
}

func TestImageDriver_GetSetPixel_Clamps(t *testing.T) {
	d := &ImageDriver{width: 2, height: 2, buffer: make([]byte, 2*2*3)}
	d.setPixel(0, 0, core.Vec3{X: 2.0, Y: -1.0, Z: 0.5})
	got := d.getPixel(0, 0)

	if got.X != 1.0 {
		t.Errorf("expected X clamped to 1.0, got %v", got.X)
	}
	if got.Y != 0.0 {
		t.Errorf("expected Y clamped to 0.0, got %v", got.Y)
	}
}

func TestImageDriver_AAImage_NoSamplesIsNoop(t *testing.T) {
	tr := NewTracer(flatScene{color: core.Vec3{X: 1, Y: 1, Z: 1}}, 0.001)
	cfg := DefaultConfig()
	cfg.NumThreads = 1
	cfg.Samples = 0

	d := NewImageDriver(tr, fixedCamera{}, cfg)
	d.TraceSetup(4, 4)
	d.TraceImage()
	d.WaitRender()

	before := make([]byte, len(d.buffer))
	copy(before, d.buffer)

	d.AAImage()

	for i := range before {
		if before[i] != d.buffer[i] {
			t.Fatalf("expected AAImage to be a no-op when SuperSamples()==0, buffer changed at byte %d", i)
		}
	}
}

func TestImageDriver_AAImage_InteriorPixelsUnchangedWhenFlat(t *testing.T) {
	tr := NewTracer(flatScene{color: core.Vec3{X: 0.4, Y: 0.4, Z: 0.4}}, 0.001)
	cfg := DefaultConfig()
	cfg.NumThreads = 2
	cfg.Samples = 3
	cfg.AAThresh = 0.1
	cfg.MaxRecursionDepth = 0

	d := NewImageDriver(tr, fixedCamera{}, cfg)
	d.TraceSetup(6, 6)
	d.TraceImage()
	d.WaitRender()

	before := make([]byte, len(d.buffer))
	copy(before, d.buffer)

	d.AAImage()

	// A perfectly flat image has no edges, so AA is a pure no-op.
	for i := range before {
		if before[i] != d.buffer[i] {
			t.Fatalf("expected interior pixels to be unchanged for a flat image, buffer changed at byte %d", i)
		}
	}
}
