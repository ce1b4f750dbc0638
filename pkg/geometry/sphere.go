package geometry

import (
	"math"

	"github.com/df07/rayforge/pkg/core"
)

// Sphere is defined by a center, radius and material index.
type Sphere struct {
	Origin        core.Vec3
	Radius        float32
	MaterialIndex byte
}

// Hit solves the ray-sphere intersection via the projection method: the
// sphere center is projected onto the ray, and the squared perpendicular
// distance from the center to the ray is compared against the squared
// radius. Only the nearer root is considered a hit.
func (s Sphere) Hit(ray core.Ray, tMin, tMax float32, hit *core.HitRecord) bool {
	toCenter := s.Origin.Sub(ray.Origin)
	proj := toCenter.Dot(ray.Direction)
	perpSq := toCenter.LengthSquared() - proj*proj
	radiusSq := s.Radius * s.Radius
	if perpSq > radiusSq {
		return false
	}

	t := proj - float32(math.Sqrt(float64(radiusSq-perpSq)))
	if t <= tMin || t >= tMax {
		return false
	}

	point := ray.At(t)
	hit.T = t
	hit.Origin = point
	hit.Normal = point.Sub(s.Origin).Normalize()
	hit.MaterialIndex = s.MaterialIndex
	hit.DidHit = true
	return true
}
