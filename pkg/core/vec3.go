// Package core holds the math and geometry primitives shared by every
// other rendering package: vectors, matrices, colors, rays and AABBs.
package core

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Vec3 is a single-precision 3-vector. It is defined on top of f32.Vec3
// so that axis-indexed access (v[0], v[1], v[2]) is free, matching how
// BVH split-axis code wants to address components generically.
type Vec3 f32.Vec3

// NewVec3 builds a vector from its components.
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

// Axis returns the component along axis 0 (X), 1 (Y) or 2 (Z).
func (v Vec3) Axis(axis int) float32 { return v[axis] }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}
func (v Vec3) MulVec(o Vec3) Vec3 { return Vec3{v[0] * o[0], v[1] * o[1], v[2] * o[2]} }
func (v Vec3) Negate() Vec3       { return Vec3{-v[0], -v[1], -v[2]} }

func (v Vec3) Dot(o Vec3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec3) LengthSquared() float32 { return v.Dot(v) }

func (v Vec3) Length() float32 { return float32(math.Sqrt(float64(v.LengthSquared()))) }

// Normalize returns a unit vector in the same direction, or the zero
// vector if v has zero length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1.0 / l)
}

// Reflect mirrors v about normal n: R = I - 2*(I.N)*N.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// MinVec3 / MaxVec3 return the component-wise min/max of two vectors.
func MinVec3(a, b Vec3) Vec3 {
	return Vec3{minf32(a[0], b[0]), minf32(a[1], b[1]), minf32(a[2], b[2])}
}

func MaxVec3(a, b Vec3) Vec3 {
	return Vec3{maxf32(a[0], b[0]), maxf32(a[1], b[1]), maxf32(a[2], b[2])}
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
