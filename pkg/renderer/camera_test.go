package renderer

import (
	"testing"

	"github.com/df07/rayforge/pkg/core"
	"github.com/df07/rayforge/pkg/geometry"
	"github.com/df07/rayforge/pkg/scene"
)

// TestPrimaryRayCornerPixelSign is scenario S2: with fov=90 on a 3x3
// framebuffer, the top-left pixel (0,0) must look up and to the left, i.e.
// its direction's X and Y components must both be negative-x/positive-y
// (roughly (-1,1,1) before normalization). A left-handed right vector
// mirrors this to positive X, which earlier versions of RecomputeBasis did.
func TestPrimaryRayCornerPixelSign(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), 90)
	ray := camera.PrimaryRay(0, 0, 3, 3)

	if ray.Direction.X() >= 0 {
		t.Errorf("pixel (0,0) direction.X = %v, want negative (camera must use a right-handed basis)", ray.Direction.X())
	}
	if ray.Direction.Y() <= 0 {
		t.Errorf("pixel (0,0) direction.Y = %v, want positive", ray.Direction.Y())
	}
	if ray.Direction.Z() <= 0 {
		t.Errorf("pixel (0,0) direction.Z = %v, want positive", ray.Direction.Z())
	}
}

// TestPrimaryRayHandednessAgainstOffAxisSphere pins the same sign bug at
// the renderer level with an asymmetric scene: a sphere offset along +X is
// only visible through pixels on the right half of the frame. A mirrored
// (left-handed) basis would make the sphere visible on the left half
// instead, which neither TestShadePixelCombinedMode nor the single-sphere
// scenarios (both centered on pixel (1,1), where ndc_x == ndc_y == 0) can
// detect.
func TestPrimaryRayHandednessAgainstOffAxisSphere(t *testing.T) {
	s := &scene.Scene{
		Spheres: []geometry.Sphere{{Origin: core.NewVec3(3, 0, 5), Radius: 1}},
	}
	camera := NewCamera(core.NewVec3(0, 0, 0), 90)

	rightRay := camera.PrimaryRay(2, 1, 3, 3)
	if _, ok := s.Hit(rightRay, rightRay.TMin, rightRay.TMax); !ok {
		t.Error("expected the rightmost column's ray to hit a sphere offset along +X")
	}

	leftRay := camera.PrimaryRay(0, 1, 3, 3)
	if _, ok := s.Hit(leftRay, leftRay.TMin, leftRay.TMax); ok {
		t.Error("expected the leftmost column's ray to miss a sphere offset along +X")
	}
}
