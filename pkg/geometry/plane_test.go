package geometry

import (
	"math"
	"testing"

	"github.com/jpeterson-dev/wray/pkg/core"
)

func TestPlane_Intersect_Basic(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	isect, hit := plane.Intersect(ray, 0.001, 1000.0)
	if !hit {
		t.Fatal("expected hit, got miss")
	}

	if math.Abs(isect.T-1.0) > 1e-9 {
		t.Errorf("expected t=1.0, got t=%f", isect.T)
	}

	tolerance := 1e-9
	want := core.NewVec3(0, 0, 0)
	if math.Abs(isect.Point.X-want.X) > tolerance ||
		math.Abs(isect.Point.Y-want.Y) > tolerance ||
		math.Abs(isect.Point.Z-want.Z) > tolerance {
		t.Errorf("expected hit point %v, got %v", want, isect.Point)
	}
}

func TestPlane_Intersect_ParallelRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))

	if _, hit := plane.Intersect(ray, 0.001, 1000.0); hit {
		t.Error("expected miss for a ray parallel to the plane")
	}
}

func TestPlane_Intersect_BehindRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))

	if _, hit := plane.Intersect(ray, 0.001, 1000.0); hit {
		t.Error("expected miss when the intersection lies behind the ray origin")
	}
}

func TestPlane_Intersect_FaceNormal(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedNormal core.Vec3
		expectedFront  bool
	}{
		{
			name:           "hit from above",
			rayOrigin:      core.NewVec3(0, 1, 0),
			rayDirection:   core.NewVec3(0, -1, 0),
			expectedNormal: core.NewVec3(0, 1, 0),
			expectedFront:  true,
		},
		{
			name:           "hit from below",
			rayOrigin:      core.NewVec3(0, -1, 0),
			rayDirection:   core.NewVec3(0, 1, 0),
			expectedNormal: core.NewVec3(0, -1, 0),
			expectedFront:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			isect, hit := plane.Intersect(ray, 0.001, 1000.0)
			if !hit {
				t.Fatal("expected hit, got miss")
			}

			tolerance := 1e-9
			if math.Abs(isect.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(isect.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(isect.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("expected normal %v, got %v", tt.expectedNormal, isect.Normal)
			}
			if isect.Front != tt.expectedFront {
				t.Errorf("expected Front=%v, got %v", tt.expectedFront, isect.Front)
			}
		})
	}
}

func TestPlane_BoundingBox_AxisAligned(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0), nil)
	box := plane.BoundingBox()

	if box.Max.Y-box.Min.Y > 1.0 {
		t.Errorf("expected a thin bounding box along Y for a Y-aligned plane, got min=%v max=%v", box.Min, box.Max)
	}
}

func TestPlane_BoundingBox_NotAxisAligned(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0).Normalize(), nil)
	box := plane.BoundingBox()

	if box.Max.X-box.Min.X < 1000 {
		t.Errorf("expected a large bounding box for a non-axis-aligned plane, got %v", box)
	}
}
