package material

import (
	"math"

	"github.com/jpeterson-dev/wray/pkg/core"
)

// Checkerboard is a procedural material that alternates between two
// Phong coefficient sets based on the parity of the hit point's
// world-space cell on two axes, without any texture-loading machinery.
type Checkerboard struct {
	Odd, Even *BasicMaterial
	CellSize  float64
}

// NewCheckerboard creates a checkerboard material alternating between
// odd and even, with squares cellSize world units wide.
func NewCheckerboard(odd, even *BasicMaterial, cellSize float64) *Checkerboard {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Checkerboard{Odd: odd, Even: even, CellSize: cellSize}
}

func (c *Checkerboard) cellAt(isect *core.Isect) *BasicMaterial {
	ix := int64(math.Floor(isect.Point.X / c.CellSize))
	iz := int64(math.Floor(isect.Point.Z / c.CellSize))
	if (ix+iz)%2 == 0 {
		return c.Even
	}
	return c.Odd
}

func (c *Checkerboard) Shade(scene core.SceneView, ray core.Ray, isect *core.Isect) core.Vec3 {
	return c.cellAt(isect).Shade(scene, ray, isect)
}

func (c *Checkerboard) Kr(isect *core.Isect) core.Vec3 { return c.cellAt(isect).Kr(isect) }
func (c *Checkerboard) Kt(isect *core.Isect) core.Vec3 { return c.cellAt(isect).Kt(isect) }
func (c *Checkerboard) Refl() bool                     { return c.Odd.Refl() || c.Even.Refl() }
func (c *Checkerboard) Trans() bool                    { return c.Odd.Trans() || c.Even.Trans() }
func (c *Checkerboard) Index() float64                 { return c.Even.Index() }
