// Package scene owns the primitive, material and light tables that make up
// a renderable frame and implements the closest-hit / any-hit queries the
// renderer issues per pixel and per shadow ray.
package scene

import (
	"github.com/df07/rayforge/pkg/core"
	"github.com/df07/rayforge/pkg/geometry"
	"github.com/df07/rayforge/pkg/material"
)

// Scene is the read-only (during a frame) collection of everything a
// render needs: primitives, meshes, the material table they index into by
// byte, and the lights the shading loop iterates.
type Scene struct {
	Spheres   []geometry.Sphere
	Planes    []geometry.Plane
	Meshes    []*geometry.TriangleMesh
	Materials []material.Material
	Lights    []Light
}

// Material looks up a material by its byte index, per the material table
// contract materials are addressed through.
func (s *Scene) Material(index byte) material.Material {
	return s.Materials[index]
}

// Hit runs the scene's closest-hit query: spheres, then planes, then
// meshes (each through its own BVH), overwriting hit whenever a closer t
// is found. Ties are broken by iteration order (spheres before planes
// before meshes), matching the order primitives are tested in.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float32) (core.HitRecord, bool) {
	hit := core.NewHitRecord()
	anyHit := false

	for _, sphere := range s.Spheres {
		if sphere.Hit(ray, tMin, tMax, &hit) {
			tMax = hit.T
			anyHit = true
		}
	}
	for _, plane := range s.Planes {
		if plane.Hit(ray, tMin, tMax, &hit) {
			tMax = hit.T
			anyHit = true
		}
	}
	for _, mesh := range s.Meshes {
		if mesh.Hit(ray, tMin, tMax, false, &hit) {
			tMax = hit.T
			anyHit = true
		}
	}

	return hit, anyHit
}

// AnyHit runs an any-hit (shadow) query: it returns true as soon as any
// primitive blocks the ray, short-circuiting across spheres, planes and
// meshes in that order. Meshes are queried with their cull mode inverted,
// per the any-hit cull-mode inversion rule.
func (s *Scene) AnyHit(ray core.Ray, tMin, tMax float32) bool {
	var hit core.HitRecord

	for _, sphere := range s.Spheres {
		if sphere.Hit(ray, tMin, tMax, &hit) {
			return true
		}
	}
	for _, plane := range s.Planes {
		if plane.Hit(ray, tMin, tMax, &hit) {
			return true
		}
	}
	for _, mesh := range s.Meshes {
		if mesh.Hit(ray, tMin, tMax, true, &hit) {
			return true
		}
	}

	return false
}
