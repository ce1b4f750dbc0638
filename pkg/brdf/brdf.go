// Package brdf implements the reflectance-distribution functions shared by
// the material dispatch table: Lambert diffuse, Phong specular, Schlick
// Fresnel, the GGX normal distribution and Smith-Schlick geometry term.
package brdf

import (
	"math"

	"github.com/df07/rayforge/pkg/core"
)

const pi = math.Pi

// Lambert returns the diffuse reflectance kd*cd/pi.
func Lambert(kd float32, cd core.ColorRGB) core.ColorRGB {
	return cd.Mul(kd / pi)
}

// Phong returns the scalar specular term ks*max(r.v, 0)^exp, broadcast to
// every RGB channel. r is the reflection of the light direction about the
// surface normal.
func Phong(ks float32, exp float32, r, v core.Vec3) core.ColorRGB {
	cos := r.Dot(v)
	if cos <= 0 {
		return core.ColorRGB{}
	}
	s := ks * float32(math.Pow(float64(cos), float64(exp)))
	return core.NewColorRGB(s, s, s)
}

// SchlickFresnel computes F(h,v,f0) = f0 + (1-f0)*(1-h.v)^5.
func SchlickFresnel(h, v core.Vec3, f0 core.ColorRGB) core.ColorRGB {
	cos := h.Dot(v)
	if cos < 0 {
		cos = 0
	}
	factor := float32(math.Pow(float64(1-cos), 5))
	one := core.NewColorRGB(1, 1, 1)
	return f0.Add(one.Sub(f0).Mul(factor))
}

// GGXDistribution evaluates the Trowbridge-Reitz (GGX) normal distribution
// using the UE4 convention alpha = roughness^2.
func GGXDistribution(n, h core.Vec3, roughness float32) float32 {
	alpha := roughness * roughness
	alphaSq := alpha * alpha
	nh := n.Dot(h)
	if nh < 0 {
		nh = 0
	}
	denom := nh*nh*(alphaSq-1) + 1
	return alphaSq / (pi * denom * denom)
}

// SchlickGGX evaluates the direct-lighting Schlick-GGX geometry term for a
// single direction x, with k = (roughness+1)^2/8.
func SchlickGGX(n, x core.Vec3, roughness float32) float32 {
	nx := n.Dot(x)
	if nx < 0 {
		nx = 0
	}
	k := (roughness + 1) * (roughness + 1) / 8
	return nx / (nx*(1-k) + k)
}

// SmithGeometry combines the view and light geometry terms: G = G1(v)*G1(l).
func SmithGeometry(n, v, l core.Vec3, roughness float32) float32 {
	return SchlickGGX(n, v, roughness) * SchlickGGX(n, l, roughness)
}
