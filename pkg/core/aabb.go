package core

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB returns a box inverted so the first Grow call establishes
// real bounds.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

func NewAABB(min, max Vec3) AABB { return AABB{Min: min, Max: max} }

// Grow extends the box to include a point.
func (b AABB) Grow(p Vec3) AABB {
	return AABB{Min: MinVec3(b.Min, p), Max: MaxVec3(b.Max, p)}
}

// GrowBox extends the box to include another box.
func (b AABB) GrowBox(o AABB) AABB {
	return AABB{Min: MinVec3(b.Min, o.Min), Max: MaxVec3(b.Max, o.Max)}
}

// Area is the SAH surface-area proxy: sx*sy + sy*sz + sz*sx, half the
// true surface area. Only relative ordering matters for split selection
// so the missing factor of 2 is irrelevant.
func (b AABB) Area() float32 {
	s := b.Max.Sub(b.Min)
	return s[0]*s[1] + s[1]*s[2] + s[2]*s[0]
}

// Hit runs the slab test against a ray using its precomputed inverse
// direction, returning whether the ray's [tMin, tMax] interval overlaps
// the box.
func (b AABB) Hit(ray Ray, tMin, tMax float32) bool {
	for axis := 0; axis < 3; axis++ {
		t1 := (b.Min[axis] - ray.Origin[axis]) * ray.InvDirection[axis]
		t2 := (b.Max[axis] - ray.Origin[axis]) * ray.InvDirection[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMax < tMin {
			return false
		}
	}
	return tMax > 0 && tMax >= tMin
}
