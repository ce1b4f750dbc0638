// Package geometry implements the primitive intersection kernels (sphere,
// plane, triangle) and the mesh BVH acceleration structure built on top of
// them.
package geometry

import "github.com/df07/rayforge/pkg/core"

// CullMode selects which triangle winding a ray is allowed to hit.
type CullMode int

const (
	CullFrontFace CullMode = iota
	CullBackFace
	CullNone
)

// Invert swaps FrontFace and BackFace, leaving None unchanged. Any-hit
// (shadow) queries invert the mesh's declared cull mode so that a
// back-face-culled mesh still blocks light from the far side.
func (c CullMode) Invert() CullMode {
	switch c {
	case CullFrontFace:
		return CullBackFace
	case CullBackFace:
		return CullFrontFace
	default:
		return CullNone
	}
}

// HitTriangle runs the Möller-Trumbore ray-triangle test against a single
// triangle (v0, v1, v2) with the given face normal, honoring cullMode.
// On a hit it fills hit.Origin/Normal/T/MaterialIndex and returns true.
func HitTriangle(ray core.Ray, v0, v1, v2, normal core.Vec3, cullMode CullMode, materialIndex byte, tMin, tMax float32, hit *core.HitRecord) bool {
	facing := normal.Dot(ray.Direction)
	switch cullMode {
	case CullFrontFace:
		if facing < 0 {
			return false
		}
	case CullBackFace:
		if facing > 0 {
			return false
		}
	}

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := ray.Direction.Cross(edge2)
	det := edge1.Dot(h)
	if det > -1e-8 && det < 1e-8 {
		return false
	}
	invDet := 1 / det

	s := ray.Origin.Sub(v0)
	u := invDet * s.Dot(h)
	if u < 0 || u > 1 {
		return false
	}

	q := s.Cross(edge1)
	v := invDet * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return false
	}

	t := invDet * edge2.Dot(q)
	if t <= tMin || t >= tMax {
		return false
	}

	hit.T = t
	hit.Origin = ray.At(t)
	hit.Normal = normal
	hit.MaterialIndex = materialIndex
	hit.DidHit = true
	return true
}
