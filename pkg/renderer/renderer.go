package renderer

import (
	"math"

	"github.com/df07/rayforge/pkg/core"
	"github.com/df07/rayforge/pkg/scene"
)

// LightingMode selects which terms of the direct-lighting equation the
// shading loop accumulates, cycled by an external control.
type LightingMode int

const (
	ObservedArea LightingMode = iota
	Radiance
	BRDF
	Combined
)

// CycleLightingMode advances to the next mode, wrapping after Combined.
func CycleLightingMode(m LightingMode) LightingMode {
	return (m + 1) % 4
}

// shadowBias offsets the shadow ray's origin along the surface normal to
// avoid self-intersection (shadow acne).
const shadowBias = 0.05

// Renderer evaluates the shading equation for a scene snapshot. A Renderer
// does not mutate the scene, camera or materials it reads; all of those
// are assumed stable for the duration of a render call.
type Renderer struct {
	Scene          *scene.Scene
	Camera         *Camera
	ShadowsEnabled bool
	Mode           LightingMode
}

func NewRenderer(s *scene.Scene, camera *Camera) *Renderer {
	return &Renderer{Scene: s, Camera: camera, ShadowsEnabled: true, Mode: Combined}
}

// ShadePixel casts the primary ray for (px, py), resolves the closest hit
// and accumulates the direct-lighting contribution of every light in the
// scene, returning background black on a miss.
func (r *Renderer) ShadePixel(px, py, width, height int) core.ColorRGB {
	ray := r.Camera.PrimaryRay(px, py, width, height)

	hit, ok := r.Scene.Hit(ray, core.DefaultTMin, float32(math.Inf(1)))
	if !ok {
		return core.ColorRGB{}
	}

	viewDir := ray.Direction.Negate().Normalize()
	mat := r.Scene.Material(hit.MaterialIndex)

	var accum core.ColorRGB
	for _, light := range r.Scene.Lights {
		offsetOrigin := hit.Origin.Add(hit.Normal.Mul(shadowBias))
		toLight := light.DirectionToLight(offsetOrigin)

		var dist float32
		var lightDir core.Vec3
		if light.Type == scene.DirectionalLight {
			dist = float32(math.Inf(1))
			lightDir = toLight.Normalize()
		} else {
			dist = toLight.Length()
			if dist == 0 {
				continue
			}
			lightDir = toLight.Mul(1 / dist)
		}

		oa := hit.Normal.Dot(lightDir)
		if oa <= 0 {
			continue
		}

		if r.ShadowsEnabled {
			shadowRay := core.NewRayRange(offsetOrigin, lightDir, core.DefaultTMin, dist)
			if r.Scene.AnyHit(shadowRay, shadowRay.TMin, shadowRay.TMax) {
				continue
			}
		}

		switch r.Mode {
		case ObservedArea:
			accum = accum.Add(core.NewColorRGB(oa, oa, oa))
		case Radiance:
			accum = accum.Add(light.Radiance(hit.Origin))
		case BRDF:
			accum = accum.Add(mat.Shade(hit, lightDir, viewDir))
		case Combined:
			shaded := mat.Shade(hit, lightDir, viewDir)
			radiance := light.Radiance(hit.Origin)
			accum = accum.Add(shaded.MulColor(radiance).Mul(oa))
		}
	}

	return accum
}
