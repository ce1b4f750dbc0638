package geometry

import "github.com/df07/rayforge/pkg/core"

// Plane is an infinite plane defined by a point and a normal.
type Plane struct {
	Origin        core.Vec3
	Normal        core.Vec3
	MaterialIndex byte
}

// Hit intersects a ray with the plane. Only the face the normal points
// toward is hittable: denom > 0 means the ray approaches from behind the
// normal and is rejected outright.
func (p Plane) Hit(ray core.Ray, tMin, tMax float32, hit *core.HitRecord) bool {
	denom := ray.Direction.Dot(p.Normal)
	if denom > 0 {
		return false
	}

	t := p.Origin.Sub(ray.Origin).Dot(p.Normal) / denom
	if t <= tMin || t >= tMax {
		return false
	}

	hit.T = t
	hit.Origin = ray.At(t)
	hit.Normal = p.Normal
	hit.MaterialIndex = p.MaterialIndex
	hit.DidHit = true
	return true
}
