package core

import "math"

// DefaultTMin is the shadow-acne bias applied to freshly cast rays.
const DefaultTMin = 1e-4

// Ray is a parametric ray with a precomputed inverse direction for the
// AABB slab test.
type Ray struct {
	Origin, Direction, InvDirection Vec3
	TMin, TMax                     float32
}

// NewRay builds a ray with the default [TMin, +Inf) valid range.
func NewRay(origin, direction Vec3) Ray {
	return NewRayRange(origin, direction, DefaultTMin, float32(math.Inf(1)))
}

// NewRayRange builds a ray with an explicit valid t range.
func NewRayRange(origin, direction Vec3, tMin, tMax float32) Ray {
	return Ray{
		Origin:       origin,
		Direction:    direction,
		InvDirection: Vec3{1 / direction[0], 1 / direction[1], 1 / direction[2]},
		TMin:         tMin,
		TMax:         tMax,
	}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
