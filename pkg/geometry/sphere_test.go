package geometry

import (
	"math"
	"testing"

	"github.com/df07/rayforge/pkg/core"
)

func TestSphereHitCenter(t *testing.T) {
	s := Sphere{Origin: core.NewVec3(0, 0, 5), Radius: 1, MaterialIndex: 3}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	var hit core.HitRecord
	if !s.Hit(ray, ray.TMin, float32(math.Inf(1)), &hit) {
		t.Fatal("expected hit")
	}
	if diff := hit.T - 4; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("T = %v, want 4", hit.T)
	}
	if hit.MaterialIndex != 3 {
		t.Errorf("MaterialIndex = %v, want 3", hit.MaterialIndex)
	}
	wantNormal := core.NewVec3(0, 0, -1)
	if hit.Normal.Sub(wantNormal).Length() > 1e-4 {
		t.Errorf("Normal = %v, want %v", hit.Normal, wantNormal)
	}
}

func TestSphereMissOutsideRadius(t *testing.T) {
	s := Sphere{Origin: core.NewVec3(0, 0, 5), Radius: 1}
	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, 0, 1))

	var hit core.HitRecord
	if s.Hit(ray, ray.TMin, float32(math.Inf(1)), &hit) {
		t.Fatal("expected miss for ray passing well outside sphere")
	}
}

func TestSphereBehindRayOrigin(t *testing.T) {
	s := Sphere{Origin: core.NewVec3(0, 0, -5), Radius: 1}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	var hit core.HitRecord
	if s.Hit(ray, ray.TMin, float32(math.Inf(1)), &hit) {
		t.Fatal("expected miss for sphere behind ray origin")
	}
}
