package renderer

import (
	"sync"

	"github.com/jpeterson-dev/wray/pkg/core"
)

// Camera is the minimal surface the image driver needs from a scene's
// camera: a mapping from normalized screen coordinates to a primary ray.
type Camera interface {
	GetRay(x, y float64) core.Ray
}

// ImageDriver owns the pixel buffer and drives the worker set that fills
// it, following the source's pixel-stride-per-worker model: worker id
// visits p = id, id+threads, id+2*threads, ... and derives (i,j) from p.
type ImageDriver struct {
	tracer *Tracer
	camera Camera
	config core.Config

	width, height int
	buffer        []byte

	mu       sync.Mutex
	cond     *sync.Cond
	finished map[int]bool // worker ids that have reported completion
	threads  int          // worker count for the in-flight pass
}

// NewImageDriver creates a driver for the given tracer, camera, and
// configuration. Call TraceSetup before any tracing pass.
func NewImageDriver(tracer *Tracer, camera Camera, config core.Config) *ImageDriver {
	d := &ImageDriver{tracer: tracer, camera: camera, config: config}
	d.cond = sync.NewCond(&d.mu)
	return d
}

// TraceSetup (re)allocates a zeroed pixel buffer of w*h*3 bytes. It does
// not copy the configuration, which each pass reads from the driver's
// core.Config when it runs, and it does not build the KD-tree (see
// Scene.BuildIndex). Must be called before TraceImage or AAImage.
func (d *ImageDriver) TraceSetup(w, h int) {
	d.width = w
	d.height = h
	d.buffer = make([]byte, w*h*3)
}

// Buffer returns the current RGB pixel buffer, width*height*3 bytes.
func (d *ImageDriver) Buffer() []byte { return d.buffer }

// getPixel reads the RGB triple at (i,j) as a [0,1]^3 color.
func (d *ImageDriver) getPixel(i, j int) core.Vec3 {
	off := (i + j*d.width) * 3
	return core.Vec3{
		X: float64(d.buffer[off]) / 255.0,
		Y: float64(d.buffer[off+1]) / 255.0,
		Z: float64(d.buffer[off+2]) / 255.0,
	}
}

// setPixel writes a clamped [0,1]^3 color at (i,j), quantized to bytes.
func (d *ImageDriver) setPixel(i, j int, c core.Vec3) {
	c = c.Clamp(0, 1)
	off := (i + j*d.width) * 3
	d.buffer[off] = byte(255 * c.X)
	d.buffer[off+1] = byte(255 * c.Y)
	d.buffer[off+2] = byte(255 * c.Z)
}

// tracePixel traces a single pixel and writes its quantized color.
func (d *ImageDriver) tracePixel(i, j int) {
	x := float64(i) / float64(d.width)
	y := float64(j) / float64(d.height)
	ray := d.camera.GetRay(x, y)

	thresh := core.Vec3{X: 1, Y: 1, Z: 1}
	color, _ := d.tracer.TraceRay(ray, thresh, d.config.Depth())
	d.setPixel(i, j, color)
}

// startWorkers resets the finished-set for a new pass of threads workers
// and returns the worker count to use.
func (d *ImageDriver) startWorkers() int {
	threads := d.config.Threads()
	if threads <= 0 {
		threads = 1
	}
	d.mu.Lock()
	d.threads = threads
	d.finished = make(map[int]bool, threads)
	d.mu.Unlock()
	return threads
}

// markFinished records that worker id has completed its pass and wakes
// anyone blocked in WaitRender.
func (d *ImageDriver) markFinished(id int) {
	d.mu.Lock()
	d.finished[id] = true
	d.cond.Broadcast()
	d.mu.Unlock()
}

// TraceImage spawns the worker set and returns immediately; use
// WaitRender to block until every worker has finished, or CheckRender to
// poll non-blockingly.
func (d *ImageDriver) TraceImage() {
	threads := d.startWorkers()

	total := d.width * d.height
	for id := 0; id < threads; id++ {
		go func(id int) {
			for p := id; p < total; p += threads {
				// Preserve the source's unconventional pairing: height
				// divides the pixel index, not width.
				i := p / d.height
				j := p % d.height
				d.tracePixel(i, j)
			}
			d.markFinished(id)
		}(id)
	}
}

// WaitRender blocks until every spawned worker has reported completion.
// It observes the finished-set without clearing it; pair it with
// CheckRender within a single pass, not both.
func (d *ImageDriver) WaitRender() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for len(d.finished) < d.threads {
		d.cond.Wait()
	}
}

// CheckRender reports whether every worker has finished without blocking
// on workers that have not yet reported. It never consumes a completion
// id on a false result, so repeated polling across the same pass
// eventually observes true once every worker has reported; on a true
// result it clears the finished-set for the next pass.
func (d *ImageDriver) CheckRender() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.finished) < d.threads {
		return false
	}
	d.finished = make(map[int]bool, d.threads)
	return true
}

// AAImage performs the adaptive supersampling pass: pixels whose color
// differs from any of their 8 in-bounds neighbors by more than the
// configured AA threshold (on any channel) are resampled on an s x s
// sub-pixel grid and averaged.
func (d *ImageDriver) AAImage() {
	s := d.config.SuperSamples()
	if s <= 0 {
		return
	}

	original := make([]byte, len(d.buffer))
	copy(original, d.buffer)
	snapshot := func(i, j int) core.Vec3 {
		off := (i + j*d.width) * 3
		return core.Vec3{
			X: float64(original[off]) / 255.0,
			Y: float64(original[off+1]) / 255.0,
			Z: float64(original[off+2]) / 255.0,
		}
	}

	threads := d.startWorkers()
	total := d.width * d.height
	for id := 0; id < threads; id++ {
		go func(id int) {
			for p := id; p < total; p += threads {
				i := p / d.height
				j := p % d.height
				if d.isEdge(snapshot, i, j) {
					d.resample(i, j, s)
				}
			}
			d.markFinished(id)
		}(id)
	}
	d.WaitRender()
}

func (d *ImageDriver) isEdge(at func(i, j int) core.Vec3, i, j int) bool {
	self := at(i, j)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ni, nj := i+dx, j+dy
			if ni < 0 || ni >= d.width || nj < 0 || nj >= d.height {
				continue
			}
			n := at(ni, nj)
			thresh := d.config.AAThreshold()
			if absf(n.X-self.X) > thresh || absf(n.Y-self.Y) > thresh || absf(n.Z-self.Z) > thresh {
				return true
			}
		}
	}
	return false
}

func (d *ImageDriver) resample(i, j, s int) {
	w, h := float64(d.width), float64(d.height)
	var sum core.Vec3
	thresh := core.Vec3{X: 1, Y: 1, Z: 1}
	for a := 0; a < s; a++ {
		for b := 0; b < s; b++ {
			x := (float64(i) - 0.5) / w + float64(a)/(w*float64(s))
			y := (float64(j) - 0.5) / h + float64(b)/(h*float64(s))
			ray := d.camera.GetRay(x, y)
			c, _ := d.tracer.TraceRay(ray, thresh, d.config.Depth())
			sum = sum.Add(c)
		}
	}
	avg := sum.Multiply(1.0 / float64(s*s))
	d.setPixel(i, j, avg)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
