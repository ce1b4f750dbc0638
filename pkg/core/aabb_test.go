package core

import "testing"

func TestAABBGrow(t *testing.T) {
	b := EmptyAABB()
	b = b.Grow(NewVec3(1, 2, 3))
	b = b.Grow(NewVec3(-1, 5, 0))

	if b.Min != NewVec3(-1, 2, 0) {
		t.Errorf("Min = %v, want (-1,2,0)", b.Min)
	}
	if b.Max != NewVec3(1, 5, 3) {
		t.Errorf("Max = %v, want (1,5,3)", b.Max)
	}
}

func TestAABBGrowBox(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-2, 0, 0), NewVec3(0, 2, 0.5))

	u := a.GrowBox(b)
	if u.Min != NewVec3(-2, 0, 0) || u.Max != NewVec3(1, 2, 1) {
		t.Errorf("GrowBox = %v..%v", u.Min, u.Max)
	}
}

func TestAABBArea(t *testing.T) {
	// A 2x3x4 box: sx*sy+sy*sz+sz*sx = 6+12+8 = 26, half the true surface area.
	b := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 3, 4))
	if got := b.Area(); !approxEqual(got, 26, 1e-4) {
		t.Errorf("Area = %v, want 26", got)
	}
}

func TestAABBHitSlab(t *testing.T) {
	b := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	hitRay := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	if !b.Hit(hitRay, hitRay.TMin, hitRay.TMax) {
		t.Error("expected ray through origin to hit unit box")
	}

	missRay := NewRay(NewVec3(5, 5, -5), NewVec3(0, 0, 1))
	if b.Hit(missRay, missRay.TMin, missRay.TMax) {
		t.Error("expected parallel offset ray to miss box")
	}

	behindRay := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1))
	if b.Hit(behindRay, behindRay.TMin, behindRay.TMax) {
		t.Error("expected ray pointing away from box to miss")
	}
}

func TestAABBHitConservativeForAncestors(t *testing.T) {
	// Growing a box can only ever widen its slab-test interval: any ray that
	// hits the smaller box must also hit the box that contains it.
	inner := NewAABB(NewVec3(0, 0, 4), NewVec3(1, 1, 5))
	outer := inner.GrowBox(NewAABB(NewVec3(-3, -3, 4), NewVec3(-2, -2, 5)))

	ray := NewRay(NewVec3(0.5, 0.5, 0), NewVec3(0, 0, 1))
	if !inner.Hit(ray, ray.TMin, ray.TMax) {
		t.Fatal("expected ray to hit inner box")
	}
	if !outer.Hit(ray, ray.TMin, ray.TMax) {
		t.Error("expected ray hitting inner box to also hit its parent's box")
	}
}
