// Package material implements the tagged-variant material dispatch used by
// the shading kernel: each variant evaluates Shade(hit, l, v) against the
// BRDF library in pkg/brdf.
package material

import (
	"math"

	"github.com/df07/rayforge/pkg/brdf"
	"github.com/df07/rayforge/pkg/core"
)

// Kind tags which variant a Material holds.
type Kind int

const (
	SolidColor Kind = iota
	Lambert
	LambertPhong
	CookTorrance
)

// Material is a tagged union over the four shading variants. Only the
// fields relevant to Kind are meaningful.
type Material struct {
	Kind Kind

	Color core.ColorRGB // SolidColor

	Kd float32       // Lambert, LambertPhong diffuse coefficient
	Cd core.ColorRGB // Lambert, LambertPhong diffuse color

	Ks  float32 // LambertPhong specular coefficient
	Exp float32 // LambertPhong Phong exponent

	Albedo    core.ColorRGB // CookTorrance
	Metalness float32       // CookTorrance
	Roughness float32       // CookTorrance
}

var dielectricF0 = core.NewColorRGB(0.04, 0.04, 0.04)

func NewSolidColor(c core.ColorRGB) Material {
	return Material{Kind: SolidColor, Color: c}
}

func NewLambert(kd float32, cd core.ColorRGB) Material {
	return Material{Kind: Lambert, Kd: kd, Cd: cd}
}

func NewLambertPhong(kd float32, cd core.ColorRGB, ks, exp float32) Material {
	return Material{Kind: LambertPhong, Kd: kd, Cd: cd, Ks: ks, Exp: exp}
}

func NewCookTorrance(albedo core.ColorRGB, metalness, roughness float32) Material {
	return Material{Kind: CookTorrance, Albedo: albedo, Metalness: metalness, Roughness: roughness}
}

// Shade evaluates the material's BRDF for a unit light direction l and unit
// view direction v against the surface normal in hit.
func (m Material) Shade(hit core.HitRecord, l, v core.Vec3) core.ColorRGB {
	switch m.Kind {
	case SolidColor:
		return m.Color

	case Lambert:
		return brdf.Lambert(m.Kd, m.Cd)

	case LambertPhong:
		diffuse := brdf.Lambert(m.Kd, m.Cd)
		r := l.Negate().Reflect(hit.Normal)
		specular := brdf.Phong(m.Ks, m.Exp, r, v)
		return diffuse.Add(specular)

	case CookTorrance:
		return m.shadeCookTorrance(hit, l, v)

	default:
		return core.ColorRGB{}
	}
}

func (m Material) shadeCookTorrance(hit core.HitRecord, l, v core.Vec3) core.ColorRGB {
	n := hit.Normal
	h := v.Add(l).Normalize()

	nv := n.Dot(v)
	nl := n.Dot(l)
	if nv <= 0 || nl <= 0 {
		return core.ColorRGB{}
	}

	f0 := core.LerpColor(dielectricF0, m.Albedo, m.Metalness)
	f := brdf.SchlickFresnel(h, v, f0)
	d := brdf.GGXDistribution(n, h, m.Roughness)
	g := brdf.SmithGeometry(n, v, l, m.Roughness)

	one := core.NewColorRGB(1, 1, 1)
	kd := one.Sub(f).Mul(1 - m.Metalness)
	diffuse := kd.MulColor(m.Albedo).Mul(1 / float32(math.Pi))

	specularScale := d * g / (4 * nv * nl)
	if specularScale < 0 {
		specularScale = 0
	}
	specular := f.Mul(specularScale)

	return diffuse.Add(specular)
}
