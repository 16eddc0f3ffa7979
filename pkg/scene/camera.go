package scene

import (
	"math"

	"github.com/jpeterson-dev/wray/pkg/core"
)

// Camera maps normalized screen coordinates (x,y) in [0,1]^2 to primary
// rays from a fixed eye point through an image-plane viewport.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera builds a camera at eye, looking toward lookAt, with the
// given vertical field of view (degrees) and aspect ratio (width/height).
func NewCamera(eye, lookAt, up core.Vec3, vfovDegrees, aspectRatio float64) *Camera {
	theta := vfovDegrees * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspectRatio * halfHeight

	w := eye.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(2 * halfWidth)
	vertical := v.Multiply(2 * halfHeight)
	lowerLeftCorner := eye.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          eye,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// NewDefaultCamera builds a camera at the origin looking down -Z, the
// simplest useful setup for scenes that don't care about framing.
func NewDefaultCamera(aspectRatio float64) *Camera {
	return NewCamera(core.Vec3{}, core.Vec3{Z: -1}, core.Vec3{Y: 1}, 60, aspectRatio)
}

// GetRay generates a ray for normalized screen coordinates (x,y), where
// (0,0) is the bottom-left corner of the image and (1,1) the top-right.
func (c *Camera) GetRay(x, y float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(x)).
		Add(c.vertical.Multiply(y)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
