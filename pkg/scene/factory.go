package scene

import (
	"github.com/df07/rayforge/pkg/core"
	"github.com/df07/rayforge/pkg/geometry"
	"github.com/df07/rayforge/pkg/material"
)

// NewSingleSphereScene builds the minimal scene used to exercise the S1-S3
// end-to-end scenarios: one white Lambert sphere at (0,0,5) radius 1, lit by
// a single point light at the camera origin.
func NewSingleSphereScene() *Scene {
	white := material.NewLambert(1, core.NewColorRGB(1, 1, 1))

	return &Scene{
		Spheres: []geometry.Sphere{
			{Origin: core.NewVec3(0, 0, 5), Radius: 1, MaterialIndex: 0},
		},
		Materials: []material.Material{white},
		Lights: []Light{
			{Type: PointLight, Origin: core.NewVec3(0, 0, 0), Color: core.NewColorRGB(1, 1, 1), Intensity: 25},
		},
	}
}

// NewSunlitSphereScene is NewSingleSphereScene lit by a directional light
// instead of a point light, exercising the constant-radiance, infinite-
// distance light path.
func NewSunlitSphereScene() *Scene {
	white := material.NewLambert(1, core.NewColorRGB(1, 1, 1))

	return &Scene{
		Spheres: []geometry.Sphere{
			{Origin: core.NewVec3(0, 0, 5), Radius: 1, MaterialIndex: 0},
		},
		Materials: []material.Material{white},
		Lights: []Light{
			{Type: DirectionalLight, Direction: core.NewVec3(0, 0, 1).Normalize(), Color: core.NewColorRGB(1, 1, 1), Intensity: 1},
		},
	}
}

// NewCornellBoxScene builds a minimal five-plane Cornell-box-style scene:
// floor, ceiling, back wall and two side walls, each a distinct Lambert
// material, lit by a single point light near the ceiling.
func NewCornellBoxScene() *Scene {
	red := material.NewLambert(0.9, core.NewColorRGB(0.8, 0.1, 0.1))
	green := material.NewLambert(0.9, core.NewColorRGB(0.1, 0.8, 0.1))
	white := material.NewLambert(0.9, core.NewColorRGB(0.9, 0.9, 0.9))

	return &Scene{
		Planes: []geometry.Plane{
			{Origin: core.NewVec3(0, -1, 0), Normal: core.NewVec3(0, 1, 0), MaterialIndex: 2},  // floor
			{Origin: core.NewVec3(0, 3, 0), Normal: core.NewVec3(0, -1, 0), MaterialIndex: 2},   // ceiling
			{Origin: core.NewVec3(0, 0, 8), Normal: core.NewVec3(0, 0, -1), MaterialIndex: 2},   // back wall
			{Origin: core.NewVec3(-2, 0, 0), Normal: core.NewVec3(1, 0, 0), MaterialIndex: 0},   // left wall (red)
			{Origin: core.NewVec3(2, 0, 0), Normal: core.NewVec3(-1, 0, 0), MaterialIndex: 1},   // right wall (green)
		},
		Materials: []material.Material{red, green, white},
		Lights: []Light{
			{Type: PointLight, Origin: core.NewVec3(0, 2.5, 3), Color: core.NewColorRGB(1, 1, 1), Intensity: 30},
		},
	}
}
