package renderer

import (
	"math"

	"github.com/df07/rayforge/pkg/core"
)

// Camera holds the mutable fields the external camera controller pushes
// between frames (Origin, FOVAngle, TotalPitch, TotalYaw) plus the
// camera-to-world basis the renderer recomputes from them once per frame.
type Camera struct {
	Origin     core.Vec3
	FOVAngle   float32 // degrees
	TotalPitch float32 // radians
	TotalYaw   float32 // radians

	cameraToWorld core.Matrix
	fovScale      float32
}

// NewCamera builds a camera looking down +Z from the origin.
func NewCamera(origin core.Vec3, fovAngleDegrees float32) *Camera {
	c := &Camera{Origin: origin, FOVAngle: fovAngleDegrees}
	c.RecomputeBasis()
	return c
}

// RecomputeBasis rebuilds the camera-to-world matrix from the current
// Origin/TotalPitch/TotalYaw and the fov_scale = tan(fov/2) used by primary
// ray generation. Must be called once per frame before rays are cast,
// after the camera controller has applied its updates.
func (c *Camera) RecomputeBasis() {
	yaw := core.RotationY(c.TotalYaw)
	pitch := core.RotationX(c.TotalPitch)
	rotation := yaw.Mul(pitch)

	forward := rotation.TransformVector(core.NewVec3(0, 0, 1)).Normalize()
	up := rotation.TransformVector(core.NewVec3(0, 1, 0)).Normalize()
	right := up.Cross(forward).Normalize()
	up = forward.Cross(right).Normalize()

	c.cameraToWorld = core.NewBasisMatrix(right, up, forward, c.Origin)
	c.fovScale = float32(math.Tan(float64(c.FOVAngle) * math.Pi / 180 / 2))
}

// PrimaryRay builds the world-space primary ray for pixel (px, py) in a
// width x height framebuffer, per the pinhole-camera formula: NDC
// coordinates scaled by aspect ratio and fov_scale, normalized in camera
// space, then rotated into world space by the camera-to-world basis.
func (c *Camera) PrimaryRay(px, py, width, height int) core.Ray {
	aspect := float32(width) / float32(height)

	ndcX := (2*(float32(px)+0.5)/float32(width) - 1) * aspect * c.fovScale
	ndcY := (1 - 2*(float32(py)+0.5)/float32(height)) * c.fovScale

	dirCamera := core.NewVec3(ndcX, ndcY, 1).Normalize()
	dirWorld := c.cameraToWorld.TransformVector(dirCamera)

	return core.NewRay(c.Origin, dirWorld)
}
