package scene

import "github.com/df07/rayforge/pkg/core"

// LightType selects a Light's radiance model.
type LightType int

const (
	PointLight LightType = iota
	DirectionalLight
)

// Light is a point or directional emitter. Directional lights carry a
// fixed Direction and contribute constant radiance regardless of the
// queried point, unlike point lights whose contribution falls off with
// inverse-square distance.
type Light struct {
	Type      LightType
	Origin    core.Vec3
	Direction core.Vec3
	Color     core.ColorRGB
	Intensity float32
}

// DirectionToLight returns the unnormalized vector from p toward the
// light. For a point light this is Origin-p; for a directional light it is
// the negated, fixed Direction (infinite distance, so any point yields the
// same direction).
func (l Light) DirectionToLight(p core.Vec3) core.Vec3 {
	switch l.Type {
	case PointLight:
		return l.Origin.Sub(p)
	case DirectionalLight:
		return l.Direction.Negate()
	default:
		return core.Vec3{}
	}
}

// Radiance returns the light's contribution at point p: inverse-square
// falloff for point lights, constant for directional lights.
func (l Light) Radiance(p core.Vec3) core.ColorRGB {
	switch l.Type {
	case PointLight:
		toLight := l.Origin.Sub(p)
		distSq := toLight.LengthSquared()
		if distSq == 0 {
			return core.ColorRGB{}
		}
		return l.Color.Mul(l.Intensity / distSq)
	case DirectionalLight:
		return l.Color.Mul(l.Intensity)
	default:
		return core.ColorRGB{}
	}
}
